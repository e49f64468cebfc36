// Package reconnect locates the results of previous runs and reattaches tests to them.
package reconnect

import (
	"maps"
	"slices"
	"strings"

	"go.trai.ch/reattach/internal/core/domain"
)

// RunDirCache maps dotted identities to the run directories discovered for them,
// and remembers which version tags were synthesized from run timestamps.
//
// A RunDirCache is not safe for concurrent use.
type RunDirCache struct {
	entries map[string]string
	dated   domain.VersionSet
}

// NewRunDirCache creates an empty RunDirCache.
func NewRunDirCache() *RunDirCache {
	return &RunDirCache{
		entries: make(map[string]string),
		dated:   make(domain.VersionSet),
	}
}

// Cache stores path under every dotted prefix of the application's identity, or of
// "<app name>.<versionTag>" when versionTag is given. The full key always overwrites,
// shorter prefixes are only written when absent. It returns the full key.
func (c *RunDirCache) Cache(app *domain.Application, path, versionTag string) string {
	parts := []string{app.Name}
	if versionTag != "" {
		parts = append(parts, domain.SplitTags(versionTag)...)
	} else {
		parts = append(parts, app.Versions...)
	}

	for i := range parts {
		key := strings.Join(parts[:i+1], domain.TagSeparator)
		if _, ok := c.entries[key]; ok && i < len(parts)-1 {
			continue
		}
		c.entries[key] = path
	}
	return strings.Join(parts, domain.TagSeparator)
}

// Find returns the path cached for key. On a miss the last component is stripped and
// the lookup retried until no components remain.
func (c *RunDirCache) Find(key string) (string, bool) {
	for key != "" {
		if path, ok := c.entries[key]; ok {
			return path, true
		}
		idx := strings.LastIndex(key, domain.TagSeparator)
		if idx < 0 {
			break
		}
		key = key[:idx]
	}
	return "", false
}

// FindFor returns the run directory cached for the application's identity.
func (c *RunDirCache) FindFor(app *domain.Application) (string, bool) {
	return c.Find(app.Identity())
}

// AddDatedVersion records a version tag synthesized from a run timestamp.
func (c *RunDirCache) AddDatedVersion(tag string) {
	c.dated[tag] = struct{}{}
}

// IsDatedVersion reports whether tag was recorded with AddDatedVersion.
func (c *RunDirCache) IsDatedVersion(tag string) bool {
	return c.dated.Contains(tag)
}

// DatedVersions returns the recorded dated versions in lexicographic order.
func (c *RunDirCache) DatedVersions() []string {
	return c.dated.Sorted()
}

// datedSet returns the recorded dated versions as a set.
func (c *RunDirCache) datedSet() domain.VersionSet {
	return maps.Clone(c.dated)
}

// Len returns the number of cached keys.
func (c *RunDirCache) Len() int {
	return len(c.entries)
}

// Keys returns the cached keys in lexicographic order.
func (c *RunDirCache) Keys() []string {
	return slices.Sorted(maps.Keys(c.entries))
}
