package types

import (
	"path/filepath"
)

// Package is a read-only snapshot of one installed package for the duration
// of a scaffold run. The registry resolves Name and InstallPath; Extra is
// the package's declared extra configuration, kept opaque until the
// file-mapping reader walks it.
type Package struct {
	// Name is the unique package name, e.g. "acme/base-theme".
	Name string

	// InstallPath is the absolute directory the package is installed in.
	InstallPath string

	// Extra contains the package's declared extra configuration.
	Extra map[string]interface{}
}

// FilePath returns the full path to a file within the package.
func (p *Package) FilePath(relative string) string {
	return filepath.Join(p.InstallPath, relative)
}
