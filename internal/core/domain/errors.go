package domain

import "go.trai.ch/zerr"

var (
	// ErrReconnectFailed is returned when no run directory or application directory can be pinned down
	// for a reconnection that was actually requested.
	ErrReconnectFailed = zerr.New("reconnection failed")

	// ErrUnknownVersion is returned when a selected extra version is not among the discovered ones.
	ErrUnknownVersion = zerr.New("unknown reconnect version")

	// ErrApplicationNotFound is returned when a requested application is not defined in the configuration.
	ErrApplicationNotFound = zerr.New("application not found")

	// ErrNoApplications is returned when the configuration defines no applications.
	ErrNoApplications = zerr.New("no applications configured")

	// ErrReconnectIncomplete is returned when one or more tests could not be reconnected.
	ErrReconnectIncomplete = zerr.New("reconnection incomplete")

	// ErrWriteDirCreateFailed is returned when a test's working directory cannot be created.
	ErrWriteDirCreateFailed = zerr.New("failed to create test write directory")

	// ErrFileCopyFailed is returned when a result file cannot be copied into a test's working directory.
	ErrFileCopyFailed = zerr.New("failed to copy result file")

	// ErrStateDecodeFailed is returned when a serialized test state cannot be decoded.
	ErrStateDecodeFailed = zerr.New("failed to decode test state")

	// ErrStateEncodeFailed is returned when a test state cannot be encoded.
	ErrStateEncodeFailed = zerr.New("failed to encode test state")

	// ErrTestDiscoveryFailed is returned when the tests under a reconnect directory cannot be listed.
	ErrTestDiscoveryFailed = zerr.New("failed to discover tests")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when the config file cannot be found.
	ErrConfigNotFound = zerr.New("could not find reattach.yaml")

	// ErrInvalidApplicationName is returned when an application name is empty or contains invalid characters.
	ErrInvalidApplicationName = zerr.New("application name can only contain alphanumeric characters, hyphens and underscores")

	// ErrDuplicateApplication is returned when two applications share the same name.
	ErrDuplicateApplication = zerr.New("duplicate application name")

	// ErrInvalidVersionTag is returned when a version tag is empty or contains a separator.
	ErrInvalidVersionTag = zerr.New("invalid version tag, tags must be non-empty and contain neither '.' nor '++'")

	// ErrInvalidOutputMode is returned when the requested output mode is not one of auto, color or plain.
	ErrInvalidOutputMode = zerr.New("invalid output mode, expected auto, color or plain")

	// ErrHomeDirExpandFailed is returned when a path starting with ~ cannot be expanded.
	ErrHomeDirExpandFailed = zerr.New("failed to expand home directory")
)
