// Package output provides utilities for creating termenv.Output with a consistent
// color profile across the CLI.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Profile returns the color profile to render with.
// NO_COLOR and a disabled preference both force Ascii. A colored preference uses the
// terminal's detected capabilities and falls back to ANSI when none are detected.
func Profile(colored bool) termenv.Profile {
	if !colored || os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if p := termenv.EnvColorProfile(); p != termenv.Ascii {
		return p
	}
	return termenv.ANSI
}

// New creates a new termenv.Output writing to w.
// If w is nil, os.Stderr is used.
func New(w io.Writer, colored bool, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(Profile(colored)),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
