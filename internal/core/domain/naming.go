package domain

import "strings"

const (
	// TagSeparator separates version tags inside names and identities.
	TagSeparator = "."

	// AlternativeSeparator separates alternative tag groups in a run directory name.
	AlternativeSeparator = "++"
)

// ParseRunDirVersionLists decodes the version tag groups encoded in a run directory name
// of the form "<descriptor>.<tags>[++<tags>...].<timestamp>.<pid>".
// Each alternative group keeps the order its tags were written in.
// It returns false when the name carries no version information.
func ParseRunDirVersionLists(basename string) ([][]string, bool) {
	parts := strings.Split(basename, TagSeparator)
	if len(parts) < 3 || parts[0] == StaticGUIDescriptor {
		return nil, false
	}

	groups := strings.Split(strings.Join(parts[1:len(parts)-2], TagSeparator), AlternativeSeparator)
	lists := make([][]string, 0, len(groups))
	for _, group := range groups {
		lists = append(lists, SplitTags(group))
	}
	return lists, true
}

// ParseRunDirVersionSets is ParseRunDirVersionLists with each group reduced to a set.
func ParseRunDirVersionSets(basename string) ([]VersionSet, bool) {
	lists, ok := ParseRunDirVersionLists(basename)
	if !ok {
		return nil, false
	}
	sets := make([]VersionSet, 0, len(lists))
	for _, list := range lists {
		sets = append(sets, NewVersionSet(list...))
	}
	return sets, true
}

// ParseAppDirVersionSet decodes an application subdirectory name of the form
// "<appName>.<tag>.<tag>...". It returns false when the name belongs to another application.
func ParseAppDirVersionSet(basename, appName string) (VersionSet, bool) {
	stem, rest, _ := strings.Cut(basename, TagSeparator)
	if stem != appName {
		return nil, false
	}
	return NewVersionSet(SplitTags(rest)...), true
}

// ParseDatedVersion extracts the timestamp component of a run directory name, used to tell
// apart runs that encode the same versions. It returns false when the timestamp or the
// trailing pid is malformed.
func ParseDatedVersion(basename string) (string, bool) {
	parts := strings.Split(basename, TagSeparator)
	if len(parts) < 3 {
		return "", false
	}

	stamp, pid := parts[len(parts)-2], parts[len(parts)-1]
	if stamp == "" || !isDigit(stamp[0]) || !isNumeric(pid) {
		return "", false
	}
	return stamp, true
}

// SplitTags splits a dotted tag string, dropping empty components.
func SplitTags(s string) []string {
	var tags []string
	for tag := range strings.SplitSeq(s, TagSeparator) {
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// JoinTags joins non-empty tag strings with the tag separator.
func JoinTags(tags ...string) string {
	nonEmpty := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag != "" {
			nonEmpty = append(nonEmpty, tag)
		}
	}
	return strings.Join(nonEmpty, TagSeparator)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
