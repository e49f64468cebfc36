// Package linear provides a synchronous, line-oriented renderer for reconnect progress.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/reattach/internal/core/domain"
	"go.trai.ch/reattach/internal/core/ports"
	"go.trai.ch/reattach/internal/ui/output"
	"go.trai.ch/reattach/internal/ui/style"
)

// Renderer implements ports.Renderer.
// It outputs chronological lines prefixed with the application name. Results go to
// stdout, problems and failures to stderr.
type Renderer struct {
	stdout *termenv.Output
	stderr *termenv.Output

	mu sync.Mutex
}

// NewRenderer creates a new Renderer. colored selects whether lines may carry ANSI colors.
func NewRenderer(stdout, stderr io.Writer, colored bool) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: output.New(stdout, colored),
		stderr: output.New(stderr, colored),
	}
}

// OnVersions prints one selectable extra version per line, or the discovery problem.
func (r *Renderer) OnVersions(app string, versions []string, problem string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if problem != "" {
		r.printLocked(r.stderr, app, r.icon(r.stderr, style.Warning, style.Yellow)+" "+problem)
		return
	}
	if len(versions) == 0 {
		r.printLocked(r.stdout, app, r.stdout.String("No extra versions found").Faint().String())
		return
	}
	for _, version := range versions {
		r.printLocked(r.stdout, app, version)
	}
}

// OnApplicationStart prints the directory the application's tests are reconnected from.
func (r *Renderer) OnApplicationStart(app, reconnectDir string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printLocked(r.stdout, app, "Reconnecting to test results in directory "+reconnectDir)
}

// OnTestReconnected prints the outcome of one test.
func (r *Renderer) OnTestReconnected(app, relPath string, state ports.TestState) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var category string
	if state != nil {
		category = state.Category()
	}
	icon, color := style.Outcome(category)
	r.printLocked(r.stdout, app, r.icon(r.stdout, icon, color)+" "+relPath+domain.ProgressText(category))
}

// OnTestFailed prints a test whose files could not be copied.
func (r *Renderer) OnTestFailed(app, relPath string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printLocked(r.stderr, app, fmt.Sprintf("%s %s failed: %v", r.icon(r.stderr, style.Cross, style.Red), relPath, err))
}

// OnSummary prints the totals for an application.
func (r *Renderer) OnSummary(app string, hydrated, recomputed, failed int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	icon := r.icon(r.stdout, style.Check, style.Green)
	if failed > 0 {
		icon = r.icon(r.stdout, style.Cross, style.Red)
	}
	r.printLocked(r.stdout, app, fmt.Sprintf("%s %d restored, %d recomputing, %d failed", icon, hydrated, recomputed, failed))
}

func (r *Renderer) icon(out *termenv.Output, icon string, color lipgloss.Color) string {
	return out.String(icon).Foreground(out.Color(string(color))).String()
}

// printLocked prints a line with the application prefix.
// Must be called with r.mu held.
func (r *Renderer) printLocked(out *termenv.Output, app, line string) {
	prefix := out.String(fmt.Sprintf("[%s]", app)).Faint().String()
	_, _ = fmt.Fprintf(out, "%s %s\n", prefix, line)
}
