package scaffold

import (
	"strings"

	"github.com/scaffoldkit/scafgo/pkg/config"
	"github.com/scaffoldkit/scafgo/pkg/errors"
	"github.com/scaffoldkit/scafgo/pkg/types"
)

// readFileMapping extracts a package's declared raw file mapping from its
// extra configuration at the well-known key path. The raw shape is
// owner package name -> source relative path -> destination value. A
// package without a mapping yields an empty map and a diagnostic; being in
// the allowed list purely to be overridden is legitimate.
func readFileMapping(pkg *types.Package, result *Result) map[string]interface{} {
	raw := lookupKeyPath(pkg.Extra, strings.Split(config.FileMappingKey, "."))
	if raw == nil {
		result.addDiagnostic(errors.ErrNoFileMapping, pkg.Name, "",
			"package provides no file mapping")
		return map[string]interface{}{}
	}

	mapping, ok := raw.(map[string]interface{})
	if !ok {
		result.addDiagnostic(errors.ErrPackageInvalid, pkg.Name, "",
			"package file mapping is not a mapping structure")
		return map[string]interface{}{}
	}
	return mapping
}

// lookupKeyPath walks a nested map along the given key path.
func lookupKeyPath(data map[string]interface{}, path []string) interface{} {
	var current interface{} = data
	for _, key := range path {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		current, ok = m[key]
		if !ok {
			return nil
		}
	}
	return current
}
