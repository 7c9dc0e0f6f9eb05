package scaffold

import (
	"path/filepath"
	"sort"

	"github.com/scaffoldkit/scafgo/pkg/config"
	"github.com/scaffoldkit/scafgo/pkg/errors"
	"github.com/scaffoldkit/scafgo/pkg/logging"
	"github.com/scaffoldkit/scafgo/pkg/types"
)

// resolveLocations expands the configured symbolic locations into absolute
// directory paths, creating each directory unless the run is read-only
// (dry-run). A missing web-root is a fatal configuration error and is
// detected before any directory is created, so a failed run leaves the
// filesystem untouched.
func resolveLocations(fsys types.FS, projectDir string, raw map[string]string, createDirs bool) (types.ResolvedLocations, error) {
	logger := logging.GetLogger("scaffold")

	if _, ok := raw[config.WebRootLocation]; !ok {
		return nil, errors.Newf(errors.ErrWebRootMissing,
			"required location '%s' is not configured", config.WebRootLocation)
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	resolved := make(types.ResolvedLocations, len(raw))
	for _, name := range names {
		path := raw[name]
		if !filepath.IsAbs(path) {
			path = filepath.Join(projectDir, path)
		}
		path = filepath.Clean(path)

		if createDirs {
			if err := fsys.MkdirAll(path, 0755); err != nil {
				return nil, errors.Wrapf(err, errors.ErrDirCreate,
					"failed to create location '%s' at %s", name, path)
			}
		}

		resolved[name] = path
		logger.Debug().Str("location", name).Str("path", path).Msg("Resolved location")
	}

	return resolved, nil
}
