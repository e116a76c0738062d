package convargs

import "os"

// FileSystem abstracts the filesystem queries the path resolver performs.
// One parse issues at most four queries: source existence, source directory
// check, target parent directory check, and target directory check. Relative
// paths are interpreted against the process working directory.
type FileSystem interface {
	// Exists reports whether a file or directory exists at path.
	Exists(path string) bool
	// IsDir reports whether path exists and is a directory.
	IsDir(path string) bool
	// Getwd returns the current working directory.
	Getwd() (string, error)
}

// OSFileSystem implements FileSystem against the real filesystem via the os
// package. It is the default used by New when Options.FS is nil.
type OSFileSystem struct{}

// Exists implements FileSystem.
func (OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir implements FileSystem.
func (OSFileSystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Getwd implements FileSystem.
func (OSFileSystem) Getwd() (string, error) {
	return os.Getwd()
}
