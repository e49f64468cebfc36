// Package detector provides environment detection for output mode selection.
package detector

import (
	"os"

	"go.trai.ch/reattach/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents how progress and log output is colored.
type OutputMode int

const (
	// ModeAuto colors output when it goes to an interactive terminal outside CI.
	ModeAuto OutputMode = iota
	// ModeColor always colors output.
	ModeColor
	// ModePlain never colors output.
	ModePlain
)

// String returns the flag value of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeColor:
		return "color"
	case ModePlain:
		return "plain"
	default:
		return "auto"
	}
}

// ParseMode parses the value of the --output-mode flag.
// "ci" and "linear" are accepted as aliases for plain output.
func ParseMode(flag string) (OutputMode, error) {
	switch flag {
	case "auto", "":
		return ModeAuto, nil
	case "color", "colour":
		return ModeColor, nil
	case "plain", "ci", "linear":
		return ModePlain, nil
	default:
		return ModeAuto, zerr.With(domain.ErrInvalidOutputMode, "mode", flag)
	}
}

// DetectEnvironment returns the recommended output mode based on the environment.
// It checks if stderr is a TTY and if CI environment variables are set.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModePlain
	}
	return ModeColor
}

// ResolveMode applies the user's choice to the auto-detected mode.
func ResolveMode(autoDetected, requested OutputMode) OutputMode {
	if requested == ModeAuto {
		return autoDetected
	}
	return requested
}

// Colored reports whether output should carry colors for the requested mode.
func Colored(requested OutputMode) bool {
	return ResolveMode(DetectEnvironment(), requested) == ModeColor
}
