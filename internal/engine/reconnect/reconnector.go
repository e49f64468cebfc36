package reconnect

import (
	"bytes"
	"path/filepath"

	"go.trai.ch/reattach/internal/core/domain"
	"go.trai.ch/reattach/internal/core/ports"
	"go.trai.ch/zerr"
)

// Reconnector restores the previous outcome of individual tests from a reconnect directory.
type Reconnector struct {
	rootDirToCopy   string
	fullRecalculate bool
	fs              ports.FileSystem
	decoder         ports.StateDecoder
	logger          ports.Logger
}

// NewReconnector creates a Reconnector reading from rootDirToCopy.
func NewReconnector(
	rootDirToCopy string,
	fullRecalculate bool,
	fsys ports.FileSystem,
	decoder ports.StateDecoder,
	logger ports.Logger,
) *Reconnector {
	return &Reconnector{
		rootDirToCopy:   rootDirToCopy,
		fullRecalculate: fullRecalculate,
		fs:              fsys,
		decoder:         decoder,
		logger:          logger,
	}
}

// RootDir returns the directory tests are reconnected from.
func (r *Reconnector) RootDir() string {
	return r.rootDirToCopy
}

// Reconnect restores the previous outcome of the test. The returned state, if any, has
// been installed on the test. A nil state means the raw results were copied into the
// test's write directory and must be recomputed. Only copy failures are returned.
func (r *Reconnector) Reconnect(test ports.Test) (ports.TestState, error) {
	location := filepath.Join(r.rootDirToCopy, test.RelPath())
	r.logger.Debug("Reconnecting to test at " + location)

	if ok, err := r.fs.IsDir(location); err != nil || !ok {
		state := domain.NewUnrunnable("no results", "No file found to load results from under "+location)
		test.ChangeState(state)
		return state, nil
	}

	state := r.loadState(test, location)
	if r.fullRecalculate || state == nil {
		if err := r.copyFiles(test, location); err != nil {
			return nil, err
		}
	}

	if state != nil {
		test.ChangeState(state)
	}
	r.logger.Debug("Reconnected " + test.RelPath() + StateText(state))
	return state, nil
}

// loadState decodes the outcome stored at location. It returns nil when there is no
// outcome, when it cannot be decoded, or when the modify policy rejects it.
func (r *Reconnector) loadState(test ports.Test, location string) ports.TestState {
	stateFile := domain.StateFilePath(location)
	data, err := r.fs.ReadFile(stateFile)
	if err != nil {
		return nil
	}

	state, err := r.decoder.Decode(bytes.NewReader(data), filepath.Dir(r.rootDirToCopy))
	if err != nil {
		r.logger.Debug("Could not read " + stateFile + ", recomputing: " + err.Error())
		return nil
	}
	if !r.acceptState(test, state) {
		return nil
	}
	return state
}

// acceptState decides whether a decoded outcome is installed. In full recalculation
// mode finished outcomes are rejected after handing their execution hosts to the test,
// and unfinished ones lose their completion marker.
func (r *Reconnector) acceptState(test ports.Test, state ports.TestState) bool {
	if !r.fullRecalculate {
		return true
	}
	if state.HasResults() {
		test.SetExecutionHosts(state.ExecutionHosts())
		return false
	}
	state.ClearLifecycleChange()
	return true
}

// copyFiles copies every plain file at location into a fresh write directory of the test.
func (r *Reconnector) copyFiles(test ports.Test, location string) error {
	if err := test.MakeWriteDirectory(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWriteDirCreateFailed.Error()), "test", test.RelPath())
	}

	entries, err := r.fs.ReadDir(location)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileCopyFailed.Error()), "path", location)
	}

	for _, entry := range entries {
		src := filepath.Join(location, entry.Name())
		info, err := r.fs.Stat(src)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		data, err := r.fs.ReadFile(src)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrFileCopyFailed.Error()), "path", src)
		}
		if err := test.WriteTmpFile(entry.Name(), data); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrFileCopyFailed.Error()), "test", test.RelPath())
		}
	}
	return nil
}

// StateText describes the outcome of a reconnection for progress output.
func StateText(state ports.TestState) string {
	if state == nil {
		return domain.ProgressText("")
	}
	return domain.ProgressText(state.Category())
}
