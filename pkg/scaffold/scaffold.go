package scaffold

import (
	"path/filepath"

	"github.com/scaffoldkit/scafgo/pkg/config"
	"github.com/scaffoldkit/scafgo/pkg/errors"
	"github.com/scaffoldkit/scafgo/pkg/events"
	"github.com/scaffoldkit/scafgo/pkg/filesystem"
	"github.com/scaffoldkit/scafgo/pkg/logging"
	"github.com/scaffoldkit/scafgo/pkg/types"
)

// RunOptions configures one scaffold run.
type RunOptions struct {
	// ProjectDir is the root project directory. Relative destinations and
	// locations resolve against it, and it is the root package's install
	// path.
	ProjectDir string

	// Config is the root project's scaffold configuration.
	Config *config.Options

	// Registry resolves allowed package names to installed packages.
	Registry types.PackageRegistry

	// FS is the filesystem to operate on; defaults to the OS filesystem.
	FS types.FS

	// Hooks receives the pre-scaffold and post-scaffold lifecycle events.
	// May be nil.
	Hooks *events.Dispatcher

	// DryRun reports planned operations without touching the filesystem.
	DryRun bool
}

// Run executes the scaffold pipeline: pre-scaffold hook, allowed-package
// resolution, mapping reads and merge, location resolution and token
// interpolation, file operations, post-scaffold hook. The returned Result
// carries operations and diagnostics even when the run aborts with an
// error; files placed before a fatal failure remain on disk.
func Run(opts RunOptions) (*Result, error) {
	logger := logging.GetLogger("scaffold")

	if opts.Config == nil {
		return nil, errors.New(errors.ErrInvalidInput, "scaffold run requires a configuration")
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	projectDir, err := filepath.Abs(opts.ProjectDir)
	if err != nil {
		projectDir = opts.ProjectDir
	}

	logger.Debug().
		Str("projectDir", projectDir).
		Bool("symlink", opts.Config.Symlink).
		Bool("dryRun", opts.DryRun).
		Msg("Starting scaffold run")

	result := NewResult()
	opts.Hooks.Fire(events.PreScaffold)

	root := opts.Config.RootPackage(projectDir)
	allowed := resolveAllowedPackages(opts.Registry, opts.Config.AllowedPackages, root, result)

	consolidated := consolidateMappings(allowed, result)

	locations, err := resolveLocations(fsys, projectDir, opts.Config.Locations, !opts.DryRun)
	if err != nil {
		return result, err
	}
	result.Locations = locations

	interpolated := interpolateMapping(consolidated, locations)

	exec := &executor{
		fs:         fsys,
		projectDir: projectDir,
		allowed:    allowed,
		symlink:    opts.Config.Symlink,
		dryRun:     opts.DryRun,
	}
	if err := exec.execute(interpolated, result); err != nil {
		return result, err
	}

	opts.Hooks.Fire(events.PostScaffold)

	logger.Debug().
		Int("operations", len(result.Operations)).
		Int("diagnostics", len(result.Diagnostics)).
		Msg("Scaffold run complete")
	return result, nil
}
