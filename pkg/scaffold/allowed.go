package scaffold

import (
	"github.com/scaffoldkit/scafgo/pkg/errors"
	"github.com/scaffoldkit/scafgo/pkg/logging"
	"github.com/scaffoldkit/scafgo/pkg/types"
)

// AllowedPackages is the ordered set of packages permitted to contribute
// scaffold files, in ascending override precedence. The root project
// package is always last, giving it ultimate override authority.
type AllowedPackages struct {
	names  []string
	byName map[string]*types.Package
}

// Names returns the package names in precedence order.
func (a *AllowedPackages) Names() []string {
	return a.names
}

// Get returns the package registered under name, if allowed.
func (a *AllowedPackages) Get(name string) (*types.Package, bool) {
	pkg, ok := a.byName[name]
	return pkg, ok
}

// Has reports whether name is in the allowed set. This is a capability
// check, independent of where a mapping mentioning the name came from.
func (a *AllowedPackages) Has(name string) bool {
	_, ok := a.byName[name]
	return ok
}

func (a *AllowedPackages) append(pkg *types.Package) {
	if _, exists := a.byName[pkg.Name]; !exists {
		a.names = append(a.names, pkg.Name)
	}
	a.byName[pkg.Name] = pkg
}

// resolveAllowedPackages builds the allowed-package set from the configured
// name list. Names missing from the registry are skipped with a diagnostic;
// duplicates are idempotent. The root package is appended last regardless of
// whether the list mentions it, so listing it has no separate effect. An
// empty list degenerates to root-only scaffolding.
func resolveAllowedPackages(reg types.PackageRegistry, configured []string, root *types.Package, result *Result) *AllowedPackages {
	logger := logging.GetLogger("scaffold")

	allowed := &AllowedPackages{byName: make(map[string]*types.Package)}
	for _, name := range configured {
		if name == root.Name {
			// Root is appended last below; its listed position is irrelevant.
			continue
		}
		if allowed.Has(name) {
			continue
		}

		pkg, err := reg.Find(name)
		if err != nil {
			result.addDiagnostic(errors.ErrPackageNotFound, name, "",
				"allowed package is not installed and contributes nothing")
			continue
		}
		allowed.append(pkg)
	}

	allowed.append(root)

	logger.Debug().Strs("packages", allowed.Names()).Msg("Resolved allowed packages")
	return allowed
}
