package domain

import (
	"maps"
	"slices"
)

// VersionSet is an unordered set of configuration version tags.
// Comparisons are set-theoretic and never depend on tag order.
type VersionSet map[string]struct{}

// NewVersionSet creates a VersionSet holding the given tags.
func NewVersionSet(tags ...string) VersionSet {
	s := make(VersionSet, len(tags))
	for _, tag := range tags {
		s[tag] = struct{}{}
	}
	return s
}

// Contains reports whether tag is in the set.
func (s VersionSet) Contains(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Len returns the number of tags in the set.
func (s VersionSet) Len() int {
	return len(s)
}

// IsSubsetOf reports whether every tag of s is also in other.
func (s VersionSet) IsSubsetOf(other VersionSet) bool {
	if len(s) > len(other) {
		return false
	}
	for tag := range s {
		if !other.Contains(tag) {
			return false
		}
	}
	return true
}

// IsSupersetOf reports whether every tag of other is also in s.
func (s VersionSet) IsSupersetOf(other VersionSet) bool {
	return other.IsSubsetOf(s)
}

// Difference returns the tags of s that are not in other.
func (s VersionSet) Difference(other VersionSet) VersionSet {
	diff := make(VersionSet)
	for tag := range s {
		if !other.Contains(tag) {
			diff[tag] = struct{}{}
		}
	}
	return diff
}

// Equal reports whether both sets hold exactly the same tags.
func (s VersionSet) Equal(other VersionSet) bool {
	return len(s) == len(other) && s.IsSubsetOf(other)
}

// Sorted returns the tags in lexicographic order.
func (s VersionSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// FilterList returns the tags of list that are in s, keeping the order of list.
func (s VersionSet) FilterList(list []string) []string {
	var out []string
	for _, tag := range list {
		if s.Contains(tag) {
			out = append(out, tag)
		}
	}
	return out
}

// VersionsMatch reports whether a run decoded into the given alternative sets can serve
// an application with the given versions. The run may carry additional tags.
func VersionsMatch(appVersions VersionSet, decoded []VersionSet) bool {
	for _, set := range decoded {
		if appVersions.IsSubsetOf(set) {
			return true
		}
	}
	return false
}
