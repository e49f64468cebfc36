package ports

import "io/fs"

// FileSystem abstracts the read-only filesystem operations used while discovering
// and reading previous runs.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Stat returns file info for the given path.
	Stat(path string) (fs.FileInfo, error)
	// ReadDir returns the entries of the directory at path, sorted by name.
	ReadDir(path string) ([]fs.DirEntry, error)
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)
}
