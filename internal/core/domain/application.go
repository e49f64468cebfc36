package domain

import (
	"path/filepath"
	"slices"
	"strings"
)

// Application is a configured application under test together with its active versions.
type Application struct {
	// Name is the application name, the first segment of every identity.
	Name string
	// Versions are the active version tags, least specific first.
	Versions []string
	// Checkout is the location of the application's source checkout.
	Checkout string
	// WriteDirRoot is the root under which previous runs are written.
	WriteDirRoot string
	// Tests lists test paths relative to the application directory of a run.
	// When empty, tests are discovered from the reconnect directory.
	Tests []string

	unsaveable []string
}

// Identity returns the dotted identity "<name>[.<version>...]".
func (a *Application) Identity() string {
	return JoinTags(append([]string{a.Name}, a.Versions...)...)
}

// String implements fmt.Stringer.
func (a *Application) String() string {
	return a.Identity()
}

// Description returns a human-readable label used in messages.
func (a *Application) Description() string {
	if len(a.Versions) == 0 {
		return "application " + a.Name
	}
	return "application " + a.Name + ", version " + strings.Join(a.Versions, TagSeparator)
}

// VersionSet returns the active versions as a set.
func (a *Application) VersionSet() VersionSet {
	return NewVersionSet(a.Versions...)
}

// WithExtraVersion returns a copy of the application with the dotted extra version appended.
func (a *Application) WithExtraVersion(extra string) *Application {
	cp := *a
	cp.Versions = append(slices.Clone(a.Versions), SplitTags(extra)...)
	cp.Tests = slices.Clone(a.Tests)
	cp.unsaveable = slices.Clone(a.unsaveable)
	return &cp
}

// AddUnsaveableVersion marks a version under which results must never be saved.
func (a *Application) AddUnsaveableVersion(version string) {
	if !slices.Contains(a.unsaveable, version) {
		a.unsaveable = append(a.unsaveable, version)
	}
}

// UnsaveableVersions returns the versions registered with AddUnsaveableVersion.
func (a *Application) UnsaveableVersions() []string {
	return slices.Clone(a.unsaveable)
}

// IsSaveable reports whether results may be saved under the application's current versions.
func (a *Application) IsSaveable() bool {
	for _, v := range a.Versions {
		if slices.Contains(a.unsaveable, v) {
			return false
		}
	}
	return true
}

// PreviousWriteDir resolves where previous runs are searched for.
// An empty target means the application's write root, an absolute target is used as is,
// and a relative target is taken to live under the write root.
func (a *Application) PreviousWriteDir(target string) string {
	switch {
	case target == "":
		return a.WriteDirRoot
	case filepath.IsAbs(target):
		return target
	default:
		return filepath.Join(a.WriteDirRoot, target)
	}
}
