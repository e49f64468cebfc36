package teststate

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/reattach/internal/core/domain"
	"go.trai.ch/reattach/internal/core/ports"
	"go.trai.ch/zerr"
)

// Test is a live test whose working directory lives under a work root, laid out like a
// run directory: "<workRoot>/<app identity>/<relPath>".
type Test struct {
	app      *domain.Application
	relPath  string
	workRoot string
	writeDir string

	state ports.TestState
	hosts []string
}

// NewTest creates a Test of the application at relPath.
func NewTest(app *domain.Application, relPath, workRoot string) *Test {
	return &Test{
		app:      app,
		relPath:  relPath,
		workRoot: workRoot,
		writeDir: filepath.Join(workRoot, app.Identity(), filepath.FromSlash(relPath)),
	}
}

// RelPath returns the test's path relative to its application directory.
func (t *Test) RelPath() string {
	return t.relPath
}

// WriteDir returns the test's working directory.
func (t *Test) WriteDir() string {
	return t.writeDir
}

// SetExecutionHosts records the hosts the previous run executed on.
func (t *Test) SetExecutionHosts(hosts []string) {
	t.hosts = hosts
}

// ExecutionHosts returns the hosts recorded with SetExecutionHosts or carried by the state.
func (t *Test) ExecutionHosts() []string {
	if t.hosts == nil && t.state != nil {
		return t.state.ExecutionHosts()
	}
	return t.hosts
}

// ChangeState installs a new state.
func (t *Test) ChangeState(state ports.TestState) {
	t.state = state
}

// State returns the installed state, nil when the test must be recomputed.
func (t *Test) State() ports.TestState {
	return t.state
}

// MakeWriteDirectory replaces the working directory with an empty one.
func (t *Test) MakeWriteDirectory() error {
	if err := os.RemoveAll(t.writeDir); err != nil {
		return zerr.With(err, "path", t.writeDir)
	}
	if err := os.MkdirAll(t.writeDir, domain.DirPerm); err != nil {
		return zerr.With(err, "path", t.writeDir)
	}
	return nil
}

// TmpFileName returns where a raw result file is written. Bare stems such as "output"
// get the application identity appended, names that already carry one are kept.
func (t *Test) TmpFileName(name string) string {
	if !strings.Contains(name, domain.TagSeparator) {
		name = name + domain.TagSeparator + t.app.Identity()
	}
	return filepath.Join(t.writeDir, name)
}

// WriteTmpFile writes a raw result file to TmpFileName(name).
func (t *Test) WriteTmpFile(name string, data []byte) error {
	path := t.TmpFileName(name)
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(err, "path", path)
	}
	return nil
}

// Save writes the installed state into the working directory, so the work root can be
// reconnected to later. Tests without a state are left alone.
func (t *Test) Save() error {
	if t.state == nil {
		return nil
	}

	state := FromTestState(t.state, t.workRoot)
	if len(state.Hosts) == 0 {
		state.Hosts = t.hosts
	}

	var buf bytes.Buffer
	if err := NewCodec().Encode(&buf, state); err != nil {
		return zerr.With(err, "test", t.relPath)
	}

	path := domain.StateFilePath(t.writeDir)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWriteDirCreateFailed.Error()), "path", path)
	}
	if err := os.WriteFile(path, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateEncodeFailed.Error()), "path", path)
	}
	return nil
}
