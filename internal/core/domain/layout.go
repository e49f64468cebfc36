package domain

import "path/filepath"

const (
	// ReattachDirName is the name of the internal workspace directory.
	ReattachDirName = ".reattach"

	// WorkDirName is the name of the directory reconnected tests are written into.
	WorkDirName = "work"

	// ConfigFileName is the name of the suite configuration file.
	ConfigFileName = "reattach.yaml"

	// FrameworkTmpDirName is the per-test directory holding framework-owned files.
	FrameworkTmpDirName = "framework_tmp"

	// TestStateFileName is the name of the serialized outcome inside FrameworkTmpDirName.
	TestStateFileName = "teststate"

	// StaticGUIDescriptor is the reserved run descriptor that never carries version information.
	StaticGUIDescriptor = "static_gui"

	// DefaultTmpRoot is the default root under which previous runs are searched.
	DefaultTmpRoot = "~/texttesttmp"

	// TmpRootEnv overrides the configured root under which previous runs are searched.
	TmpRootEnv = "TEXTTEST_TMP"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultWorkPath returns the default root for reconnected test working directories.
// It joins .reattach and work.
func DefaultWorkPath() string {
	return filepath.Join(ReattachDirName, WorkDirName)
}

// StateFilePath returns the location of the serialized outcome for a test reconnect location.
func StateFilePath(location string) string {
	return filepath.Join(location, FrameworkTmpDirName, TestStateFileName)
}
