// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
)

// Outcome returns the icon and color for a reconnected test outcome category.
// An empty category is a test whose results are recomputed.
func Outcome(category string) (string, lipgloss.Color) {
	switch category {
	case "":
		return Tilde, Iris
	case "success":
		return Check, Green
	case "failure", "unrunnable", "crash", "killed":
		return Cross, Red
	default:
		return Dot, Yellow
	}
}
