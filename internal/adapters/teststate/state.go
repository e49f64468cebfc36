// Package teststate stores test outcomes as YAML and models the live tests they are restored into.
package teststate

import (
	"path/filepath"
	"strings"
)

// LifecycleComplete marks an outcome whose comparison has finished.
const LifecycleComplete = "complete"

// Result is the comparison result of one output file.
type Result struct {
	File   string `yaml:"file"`
	Status string `yaml:"status"`
	Path   string `yaml:"path,omitempty"`
}

// State is the serialized outcome of a test run.
type State struct {
	Outcome         string   `yaml:"category"`
	BriefText       string   `yaml:"briefText,omitempty"`
	FreeText        string   `yaml:"freeText,omitempty"`
	LifecycleChange string   `yaml:"lifecycleChange,omitempty"`
	Hosts           []string `yaml:"executionHosts,omitempty"`
	TmpRoot         string   `yaml:"tmpRoot,omitempty"`
	Results         []Result `yaml:"results,omitempty"`
}

// Category returns the outcome category.
func (s *State) Category() string {
	return s.Outcome
}

// HasResults reports whether the outcome holds comparison results.
func (s *State) HasResults() bool {
	return len(s.Results) > 0
}

// ExecutionHosts returns the hosts the test ran on.
func (s *State) ExecutionHosts() []string {
	return s.Hosts
}

// ClearLifecycleChange drops the completion marker.
func (s *State) ClearLifecycleChange() {
	s.LifecycleChange = ""
}

// IsComplete reports whether the outcome is marked as complete.
func (s *State) IsComplete() bool {
	return s.LifecycleChange == LifecycleComplete
}

// RewriteTmpRoot moves every path recorded under the outcome's temporary root to newTmpRoot.
func (s *State) RewriteTmpRoot(newTmpRoot string) {
	oldTmpRoot := s.TmpRoot
	if oldTmpRoot == "" || newTmpRoot == "" || oldTmpRoot == newTmpRoot {
		return
	}

	for i := range s.Results {
		s.Results[i].Path = rebase(s.Results[i].Path, oldTmpRoot, newTmpRoot)
	}
	s.FreeText = strings.ReplaceAll(s.FreeText, oldTmpRoot+string(filepath.Separator), newTmpRoot+string(filepath.Separator))
	s.TmpRoot = newTmpRoot
}

func rebase(path, oldRoot, newRoot string) string {
	if path == oldRoot {
		return newRoot
	}
	if rest, ok := strings.CutPrefix(path, oldRoot+string(filepath.Separator)); ok {
		return filepath.Join(newRoot, rest)
	}
	return path
}
