package types

import (
	"io/fs"
)

// FS is the filesystem interface required for scaffold operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error

	// Lstat is used to detect pre-existing destination entries without
	// following links. For testing, implementations may fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)
}

// PackageRegistry is the external package-manager lookup the pipeline
// consumes. It never installs anything; it only reports what is already
// installed.
type PackageRegistry interface {
	// Find returns the package registered under name, or an error carrying
	// the not-found code when no such package is installed.
	Find(name string) (*Package, error)
}
