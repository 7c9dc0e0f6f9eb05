package registry

import (
	"github.com/scaffoldkit/scafgo/pkg/errors"
	"github.com/scaffoldkit/scafgo/pkg/types"
)

// MemoryRegistry is an in-memory PackageRegistry. It is the registry of
// choice for tests and for callers that assemble packages programmatically.
type MemoryRegistry struct {
	packages Registry[*types.Package]
}

// NewMemory creates an empty in-memory package registry.
func NewMemory() *MemoryRegistry {
	return &MemoryRegistry{packages: New[*types.Package]()}
}

// Add registers a package under its name, replacing any previous entry.
func (m *MemoryRegistry) Add(pkg *types.Package) error {
	if pkg == nil || pkg.Name == "" {
		return errors.New(errors.ErrInvalidInput, "package must have a name")
	}
	return m.packages.Register(pkg.Name, pkg)
}

// Find returns the package registered under name.
func (m *MemoryRegistry) Find(name string) (*types.Package, error) {
	pkg, err := m.packages.Get(name)
	if err != nil {
		return nil, errors.Newf(errors.ErrPackageNotFound, "package '%s' is not installed", name)
	}
	return pkg, nil
}
