package scaffold

import (
	"regexp"

	"github.com/scaffoldkit/scafgo/pkg/types"
)

// tokenPattern matches [name]-style symbolic location tokens inside a
// destination path.
var tokenPattern = regexp.MustCompile(`\[([^\[\]]+)\]`)

// InterpolateTokens substitutes every recognized [name] token in the
// destination with its resolved location path. Unrecognized tokens are
// left verbatim: callers may use literal bracketed text.
func InterpolateTokens(destination string, locations types.ResolvedLocations) string {
	return tokenPattern.ReplaceAllStringFunc(destination, func(match string) string {
		name := match[1 : len(match)-1]
		if path, ok := locations[name]; ok {
			return path
		}
		return match
	})
}

// interpolateMapping rewrites every string-typed destination value in the
// consolidated mapping and returns a new mapping. Disabled sentinels and
// malformed sections pass through untouched; the executor diagnoses them.
func interpolateMapping(consolidated map[string]interface{}, locations types.ResolvedLocations) map[string]interface{} {
	out := make(map[string]interface{}, len(consolidated))
	for pkgName, section := range consolidated {
		sectionMap, ok := section.(map[string]interface{})
		if !ok {
			out[pkgName] = section
			continue
		}

		rewritten := make(map[string]interface{}, len(sectionMap))
		for source, destVal := range sectionMap {
			if s, ok := destVal.(string); ok {
				rewritten[source] = InterpolateTokens(s, locations)
			} else {
				rewritten[source] = destVal
			}
		}
		out[pkgName] = rewritten
	}
	return out
}
