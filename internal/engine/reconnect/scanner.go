package reconnect

import (
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/reattach/internal/core/domain"
	"go.trai.ch/reattach/internal/core/ports"
	"go.trai.ch/zerr"
)

// Scanner finds the run directories an application can be reconnected to and turns
// them into selectable extra versions, caching every run directory it reports.
type Scanner struct {
	fs     ports.FileSystem
	cache  *RunDirCache
	logger ports.Logger
}

// NewScanner creates a Scanner populating the given cache.
func NewScanner(fsys ports.FileSystem, cache *RunDirCache, logger ports.Logger) *Scanner {
	return &Scanner{fs: fsys, cache: cache, logger: logger}
}

// RunDirs lists the run directories directly under root that the application ran in
// and whose encoded versions match it, in lexicographic order.
func (s *Scanner) RunDirs(app *domain.Application, root string) ([]string, error) {
	entries, err := s.fs.ReadDir(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReconnectFailed.Error()), "root", root)
	}

	appVersions := app.VersionSet()
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		sets, ok := domain.ParseRunDirVersionSets(entry.Name())
		if !ok || !domain.VersionsMatch(appVersions, sets) {
			continue
		}
		names = append(names, entry.Name())
	}
	slices.Sort(names)

	dirs := make([]string, 0, len(names))
	for _, name := range names {
		dir := filepath.Join(root, name)
		if s.isRunDirectoryFor(app, dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs, nil
}

// isRunDirectoryFor reports whether dir holds a subdirectory named after the application,
// or any entry matching "<name>.*".
func (s *Scanner) isRunDirectoryFor(app *domain.Application, dir string) bool {
	if ok, err := s.fs.IsDir(filepath.Join(dir, app.Name)); err == nil && ok {
		return true
	}

	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return false
	}
	pattern := app.Name + domain.TagSeparator + "*"
	for _, entry := range entries {
		if matched, _ := doublestar.Match(pattern, entry.Name()); matched {
			return true
		}
	}
	return false
}

// runDirGroup is a run of consecutive directories encoding identical version lists.
type runDirGroup struct {
	lists [][]string
	dirs  []string
}

// groupRunDirs groups consecutive directories with identical decoded version lists.
// dirs must already be sorted by basename; the first member of every group is its
// canonical directory. Directories without version information are dropped.
func groupRunDirs(dirs []string) []runDirGroup {
	var groups []runDirGroup
	for _, dir := range dirs {
		lists, ok := domain.ParseRunDirVersionLists(filepath.Base(dir))
		if !ok {
			continue
		}
		if n := len(groups); n > 0 && slices.EqualFunc(groups[n-1].lists, lists, slices.Equal[[]string]) {
			groups[n-1].dirs = append(groups[n-1].dirs, dir)
			continue
		}
		groups = append(groups, runDirGroup{lists: lists, dirs: []string{dir}})
	}
	return groups
}

// Versions caches the given sorted run directories for the application and returns the
// extra versions that select them, in lexicographic order.
func (s *Scanner) Versions(app *domain.Application, dirs []string) []string {
	appVersions := app.VersionSet()
	var versions []string
	for _, group := range groupRunDirs(dirs) {
		for _, list := range group.lists {
			extra := domain.JoinTags(extraTags(list, appVersions)...)
			version := domain.JoinTags(list...)
			switch {
			case extra != "" && len(group.dirs) == 1:
				versions = append(versions, extra)
				s.cacheRunDir(app, group.dirs[0], version)
			case extra != "":
				for _, dir := range group.dirs {
					dated, ok := s.datedVersion(dir)
					if !ok {
						continue
					}
					versions = append(versions, domain.JoinTags(extra, dated))
					s.cacheRunDir(app, dir, domain.JoinTags(version, dated))
				}
			default:
				s.cacheRunDir(app, group.dirs[0], "")
				for _, dir := range group.dirs[1:] {
					dated, ok := s.datedVersion(dir)
					if !ok {
						continue
					}
					versions = append(versions, dated)
					s.cacheRunDir(app, dir, domain.JoinTags(version, dated))
				}
			}
		}
	}
	slices.Sort(versions)
	return versions
}

// datedVersion parses and records the dated version of a run directory.
func (s *Scanner) datedVersion(dir string) (string, bool) {
	dated, ok := domain.ParseDatedVersion(filepath.Base(dir))
	if !ok {
		s.logger.Debug("Skipping run directory with malformed timestamp " + dir)
		return "", false
	}
	s.cache.AddDatedVersion(dated)
	return dated, true
}

func (s *Scanner) cacheRunDir(app *domain.Application, dir, version string) {
	key := s.cache.Cache(app, dir, version)
	s.logger.Debug("Caching " + key + " = " + dir)
}

// extraTags returns the tags of list that the application does not already carry,
// in list order and without repeats.
func extraTags(list []string, appVersions domain.VersionSet) []string {
	seen := make(domain.VersionSet, len(list))
	var extra []string
	for _, tag := range list {
		if appVersions.Contains(tag) || seen.Contains(tag) {
			continue
		}
		seen[tag] = struct{}{}
		extra = append(extra, tag)
	}
	return extra
}
