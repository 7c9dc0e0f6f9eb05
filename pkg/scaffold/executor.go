package scaffold

import (
	"path/filepath"
	"sort"

	"github.com/scaffoldkit/scafgo/pkg/errors"
	"github.com/scaffoldkit/scafgo/pkg/logging"
	"github.com/scaffoldkit/scafgo/pkg/types"
)

// executor performs the file operations for the final, interpolated
// mapping. It is built once per run and carries only read-only state.
type executor struct {
	fs         types.FS
	projectDir string
	allowed    *AllowedPackages
	symlink    bool
	dryRun     bool
}

// execute walks the consolidated mapping in deterministic order: allowed
// packages in precedence order first, then any remaining mentioned
// packages sorted by name (those only ever produce a not-allowed
// diagnostic). Source paths are sorted within each package. The first
// failed file operation aborts the run; entries already placed stay on
// disk.
func (e *executor) execute(mapping map[string]interface{}, result *Result) error {
	for _, pkgName := range e.packageOrder(mapping) {
		if !e.allowed.Has(pkgName) {
			result.addDiagnostic(errors.ErrPackageNotAllowed, pkgName, "",
				"package is mentioned in file mappings but is not an allowed package")
			continue
		}

		sectionMap, ok := mapping[pkgName].(map[string]interface{})
		if !ok {
			result.addDiagnostic(errors.ErrPackageInvalid, pkgName, "",
				"file mapping entry for package is not a mapping structure")
			continue
		}

		sources := make([]string, 0, len(sectionMap))
		for source := range sectionMap {
			sources = append(sources, source)
		}
		sort.Strings(sources)

		for _, source := range sources {
			dest, ok := types.DestinationFromValue(sectionMap[source])
			if !ok {
				result.addDiagnostic(errors.ErrInvalidInput, pkgName, source,
					"destination must be a path string or false")
				continue
			}
			if dest.Disabled() {
				logger := logging.GetLogger("scaffold")
				logger.Debug().Str("package", pkgName).Str("source", source).Msg("Mapping entry disabled, skipping")
				continue
			}
			if err := e.executeOne(pkgName, source, dest.Path(), result); err != nil {
				return err
			}
		}
	}
	return nil
}

// packageOrder returns the mapping's package keys in observable iteration
// order: allowed precedence order, then leftover names sorted.
func (e *executor) packageOrder(mapping map[string]interface{}) []string {
	ordered := make([]string, 0, len(mapping))
	seen := make(map[string]bool, len(mapping))
	for _, name := range e.allowed.Names() {
		if _, ok := mapping[name]; ok {
			ordered = append(ordered, name)
			seen[name] = true
		}
	}

	var rest []string
	for name := range mapping {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)

	return append(ordered, rest...)
}

// executeOne places a single scaffold file. Validation problems are
// diagnostics that skip the entry; a failed copy or symlink is fatal.
func (e *executor) executeOne(pkgName, sourceRel, destPath string, result *Result) error {
	logger := logging.GetLogger("scaffold")

	pkg, _ := e.allowed.Get(pkgName)
	source := pkg.FilePath(filepath.FromSlash(sourceRel))

	info, err := e.fs.Stat(source)
	if err != nil {
		result.addDiagnostic(errors.ErrSourceMissing, pkgName, sourceRel,
			"scaffold source file does not exist, skipping")
		return nil
	}
	if info.IsDir() {
		result.addDiagnostic(errors.ErrSourceIsDir, pkgName, sourceRel,
			"scaffold source is a directory, skipping")
		return nil
	}

	dest := destPath
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(e.projectDir, dest)
	}
	dest = filepath.Clean(dest)

	verb := VerbCopy
	if e.symlink {
		verb = VerbSymlink
	}

	if e.dryRun {
		result.addOperation(FileOperation{
			Package:     pkgName,
			Source:      source,
			Destination: dest,
			Verb:        verb,
			Simulated:   true,
		})
		return nil
	}

	// Replace any pre-existing destination entry outright; scaffolded files
	// are never appended to or merged with what is already there.
	if existing, lerr := e.fs.Lstat(dest); lerr == nil {
		var rmErr error
		if existing.IsDir() {
			rmErr = e.fs.RemoveAll(dest)
		} else {
			rmErr = e.fs.Remove(dest)
		}
		if rmErr != nil {
			return errors.Wrapf(rmErr, errors.ErrDestinationRm,
				"failed to replace existing destination %s", dest).
				WithDetail("source", source).WithDetail("verb", string(verb))
		}
	}

	if err := e.fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create parent directory for %s", dest).
			WithDetail("source", source).WithDetail("verb", string(verb))
	}

	if e.symlink {
		target, err := filepath.Rel(filepath.Dir(dest), source)
		if err != nil {
			target = source
		}
		if err := e.fs.Symlink(target, dest); err != nil {
			return errors.Wrapf(err, errors.ErrSymlinkFailed,
				"failed to symlink %s to %s", source, dest).
				WithDetail("verb", string(VerbSymlink))
		}
	} else {
		data, err := e.fs.ReadFile(source)
		if err == nil {
			err = e.fs.WriteFile(dest, data, info.Mode().Perm())
		}
		if err != nil {
			return errors.Wrapf(err, errors.ErrCopyFailed,
				"failed to copy %s to %s", source, dest).
				WithDetail("verb", string(VerbCopy))
		}
	}

	result.addOperation(FileOperation{
		Package:     pkgName,
		Source:      source,
		Destination: dest,
		Verb:        verb,
	})
	logger.Info().
		Str("package", pkgName).
		Str("verb", string(verb)).
		Str("source", source).
		Str("destination", dest).
		Msg("Scaffolded file")
	return nil
}
