package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scaffoldkit/scafgo/pkg/config"
	scafgoerrors "github.com/scaffoldkit/scafgo/pkg/errors"
	"github.com/scaffoldkit/scafgo/pkg/events"
	"github.com/scaffoldkit/scafgo/pkg/registry"
	"github.com/scaffoldkit/scafgo/pkg/testutil"
)

// scaffoldEnv is a disposable project with an install root and a registry.
type scaffoldEnv struct {
	projectDir  string
	installRoot string
	registry    *registry.MemoryRegistry
}

func newScaffoldEnv(t *testing.T) *scaffoldEnv {
	t.Helper()
	tmp := t.TempDir()
	return &scaffoldEnv{
		projectDir:  tmp,
		installRoot: testutil.CreateDir(t, tmp, "install"),
		registry:    registry.NewMemory(),
	}
}

// addPackage installs source files for a package and registers it with the
// given raw file mapping.
func (env *scaffoldEnv) addPackage(t *testing.T, name string, mapping map[string]interface{}, files map[string]string) {
	t.Helper()
	installPath := filepath.Join(env.installRoot, filepath.FromSlash(name))
	for rel, content := range files {
		testutil.CreateFile(t, installPath, rel, content)
	}
	require.NoError(t, env.registry.Add(testutil.MakePackage(name, installPath, mapping)))
}

func (env *scaffoldEnv) run(t *testing.T, cfg *config.Options, dryRun bool) (*Result, error) {
	t.Helper()
	return Run(RunOptions{
		ProjectDir: env.projectDir,
		Config:     cfg,
		Registry:   env.registry,
		DryRun:     dryRun,
	})
}

func webRootConfig(allowed ...string) *config.Options {
	return &config.Options{
		Name:            "my/project",
		AllowedPackages: allowed,
		Locations:       map[string]string{"web-root": "web"},
	}
}

func ownMapping(pkg string, entries map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{pkg: entries}
}

func TestRun_NilConfigRejected(t *testing.T) {
	env := newScaffoldEnv(t)

	result, err := Run(RunOptions{
		ProjectDir: env.projectDir,
		Registry:   env.registry,
	})

	require.Error(t, err)
	assert.True(t, scafgoerrors.IsErrorCode(err, scafgoerrors.ErrInvalidInput))
	assert.Nil(t, result)
}

func TestRun_CopyMode(t *testing.T) {
	env := newScaffoldEnv(t)
	env.addPackage(t, "a/pkg",
		ownMapping("a/pkg", map[string]interface{}{"file.txt": "[web-root]/file.txt"}),
		map[string]string{"file.txt": "scaffold content"})

	result, err := env.run(t, webRootConfig("a/pkg"), false)
	require.NoError(t, err)

	dest := filepath.Join(env.projectDir, "web", "file.txt")
	assert.Equal(t, "scaffold content", testutil.ReadFile(t, dest))
	assert.False(t, testutil.SymlinkExists(t, dest))

	require.Len(t, result.Operations, 1)
	assert.Equal(t, VerbCopy, result.Operations[0].Verb)
	assert.Equal(t, "a/pkg", result.Operations[0].Package)
}

func TestRun_CopyReplacesExistingDestination(t *testing.T) {
	env := newScaffoldEnv(t)
	env.addPackage(t, "a/pkg",
		ownMapping("a/pkg", map[string]interface{}{"file.txt": "[web-root]/file.txt"}),
		map[string]string{"file.txt": "new content"})

	stale := testutil.CreateFile(t, env.projectDir, "web/file.txt", "stale content that is much longer")

	_, err := env.run(t, webRootConfig("a/pkg"), false)
	require.NoError(t, err)

	// Fully replaced, not appended or merged
	assert.Equal(t, "new content", testutil.ReadFile(t, stale))
}

func TestRun_SymlinkMode(t *testing.T) {
	env := newScaffoldEnv(t)
	env.addPackage(t, "a/pkg",
		ownMapping("a/pkg", map[string]interface{}{"file.txt": "[web-root]/file.txt"}),
		map[string]string{"file.txt": "linked content"})

	cfg := webRootConfig("a/pkg")
	cfg.Symlink = true

	result, err := env.run(t, cfg, false)
	require.NoError(t, err)

	dest := filepath.Join(env.projectDir, "web", "file.txt")
	assert.True(t, testutil.SymlinkExists(t, dest))

	// The link target resolves to the original source file
	resolved, err := filepath.EvalSymlinks(dest)
	require.NoError(t, err)
	source, err := filepath.EvalSymlinks(filepath.Join(env.installRoot, "a", "pkg", "file.txt"))
	require.NoError(t, err)
	assert.Equal(t, source, resolved)

	assert.Equal(t, "linked content", testutil.ReadFile(t, dest))
	require.Len(t, result.Operations, 1)
	assert.Equal(t, VerbSymlink, result.Operations[0].Verb)
}

func TestRun_SymlinkReplacesExistingFile(t *testing.T) {
	env := newScaffoldEnv(t)
	env.addPackage(t, "a/pkg",
		ownMapping("a/pkg", map[string]interface{}{"file.txt": "[web-root]/file.txt"}),
		map[string]string{"file.txt": "linked"})

	testutil.CreateFile(t, env.projectDir, "web/file.txt", "plain file")

	cfg := webRootConfig("a/pkg")
	cfg.Symlink = true

	_, err := env.run(t, cfg, false)
	require.NoError(t, err)
	assert.True(t, testutil.SymlinkExists(t, filepath.Join(env.projectDir, "web", "file.txt")))
}

func TestRun_HigherPrecedencePackageOverrides(t *testing.T) {
	env := newScaffoldEnv(t)
	env.addPackage(t, "a/pkg",
		ownMapping("a/pkg", map[string]interface{}{"file.txt": "[web-root]/a.txt"}),
		map[string]string{"file.txt": "from a"})
	// b overrides the destination of a's file; the source still lives in a
	env.addPackage(t, "b/pkg",
		ownMapping("a/pkg", map[string]interface{}{"file.txt": "[web-root]/b.txt"}),
		nil)

	_, err := env.run(t, webRootConfig("a/pkg", "b/pkg"), false)
	require.NoError(t, err)

	assert.False(t, testutil.FileExists(t, filepath.Join(env.projectDir, "web", "a.txt")))
	assert.Equal(t, "from a", testutil.ReadFile(t, filepath.Join(env.projectDir, "web", "b.txt")))
}

func TestRun_DisabledSentinelSuppressesEntry(t *testing.T) {
	env := newScaffoldEnv(t)
	env.addPackage(t, "a/pkg",
		ownMapping("a/pkg", map[string]interface{}{
			"file.txt":  "[web-root]/file.txt",
			"other.txt": "[web-root]/other.txt",
		}),
		map[string]string{"file.txt": "suppressed", "other.txt": "placed"})

	// The root project disables a/pkg's file.txt via its inline mapping
	cfg := webRootConfig("a/pkg")
	cfg.FileMapping = ownMapping("a/pkg", map[string]interface{}{"file.txt": false})

	result, err := env.run(t, cfg, false)
	require.NoError(t, err)

	assert.False(t, testutil.FileExists(t, filepath.Join(env.projectDir, "web", "file.txt")))
	assert.Equal(t, "placed", testutil.ReadFile(t, filepath.Join(env.projectDir, "web", "other.txt")))
	require.Len(t, result.Operations, 1)
}

func TestRun_RootHasUltimateOverrideAuthority(t *testing.T) {
	env := newScaffoldEnv(t)
	env.addPackage(t, "a/pkg",
		ownMapping("a/pkg", map[string]interface{}{"file.txt": "[web-root]/file.txt"}),
		map[string]string{"file.txt": "content"})

	cfg := webRootConfig("a/pkg")
	cfg.FileMapping = ownMapping("a/pkg", map[string]interface{}{"file.txt": "[web-root]/moved.txt"})

	_, err := env.run(t, cfg, false)
	require.NoError(t, err)

	assert.False(t, testutil.FileExists(t, filepath.Join(env.projectDir, "web", "file.txt")))
	assert.Equal(t, "content", testutil.ReadFile(t, filepath.Join(env.projectDir, "web", "moved.txt")))
}

func TestRun_MissingSourceSkipsEntryAndContinues(t *testing.T) {
	env := newScaffoldEnv(t)
	env.addPackage(t, "a/pkg",
		ownMapping("a/pkg", map[string]interface{}{
			"ghost.txt":   "[web-root]/ghost.txt",
			"present.txt": "[web-root]/present.txt",
		}),
		map[string]string{"present.txt": "here"})

	result, err := env.run(t, webRootConfig("a/pkg"), false)
	require.NoError(t, err)

	assert.Equal(t, "here", testutil.ReadFile(t, filepath.Join(env.projectDir, "web", "present.txt")))
	assert.False(t, testutil.FileExists(t, filepath.Join(env.projectDir, "web", "ghost.txt")))

	var codes []scafgoerrors.ErrorCode
	for _, d := range result.Diagnostics {
		codes = append(codes, d.Code)
	}
	assert.Contains(t, codes, scafgoerrors.ErrSourceMissing)
}

func TestRun_DirectorySourceSkipped(t *testing.T) {
	env := newScaffoldEnv(t)
	env.addPackage(t, "a/pkg",
		ownMapping("a/pkg", map[string]interface{}{"subdir": "[web-root]/subdir"}),
		nil)
	testutil.CreateDir(t, filepath.Join(env.installRoot, "a", "pkg"), "subdir")

	result, err := env.run(t, webRootConfig("a/pkg"), false)
	require.NoError(t, err)

	assert.Empty(t, result.Operations)

	var codes []scafgoerrors.ErrorCode
	for _, d := range result.Diagnostics {
		codes = append(codes, d.Code)
	}
	assert.Contains(t, codes, scafgoerrors.ErrSourceIsDir)
}

func TestRun_NotAllowedPackageMentionedInMappings(t *testing.T) {
	env := newScaffoldEnv(t)
	// a/pkg declares entries for rogue/pkg, which is not in the allowed set
	env.addPackage(t, "a/pkg",
		map[string]interface{}{
			"a/pkg":     map[string]interface{}{"file.txt": "[web-root]/file.txt"},
			"rogue/pkg": map[string]interface{}{"evil.txt": "[web-root]/evil.txt"},
		},
		map[string]string{"file.txt": "fine"})

	result, err := env.run(t, webRootConfig("a/pkg"), false)
	require.NoError(t, err)

	assert.Equal(t, "fine", testutil.ReadFile(t, filepath.Join(env.projectDir, "web", "file.txt")))
	assert.False(t, testutil.FileExists(t, filepath.Join(env.projectDir, "web", "evil.txt")))

	var codes []scafgoerrors.ErrorCode
	for _, d := range result.Diagnostics {
		codes = append(codes, d.Code)
	}
	assert.Contains(t, codes, scafgoerrors.ErrPackageNotAllowed)
}

func TestRun_MissingWebRootAbortsBeforeTouchingFilesystem(t *testing.T) {
	env := newScaffoldEnv(t)
	env.addPackage(t, "a/pkg",
		ownMapping("a/pkg", map[string]interface{}{"file.txt": "[web-root]/file.txt"}),
		map[string]string{"file.txt": "content"})

	cfg := webRootConfig("a/pkg")
	cfg.Locations = map[string]string{}

	_, err := env.run(t, cfg, false)
	require.Error(t, err)
	assert.True(t, scafgoerrors.IsErrorCode(err, scafgoerrors.ErrWebRootMissing))

	// Only the install root existed before; nothing else was created
	entries, readErr := os.ReadDir(env.projectDir)
	require.NoError(t, readErr)
	require.Len(t, entries, 1)
	assert.Equal(t, "install", entries[0].Name())
}

func TestRun_DryRunReportsWithoutTouchingFilesystem(t *testing.T) {
	env := newScaffoldEnv(t)
	env.addPackage(t, "a/pkg",
		ownMapping("a/pkg", map[string]interface{}{"file.txt": "[web-root]/file.txt"}),
		map[string]string{"file.txt": "content"})

	result, err := env.run(t, webRootConfig("a/pkg"), true)
	require.NoError(t, err)

	require.Len(t, result.Operations, 1)
	assert.True(t, result.Operations[0].Simulated)
	assert.False(t, testutil.DirExists(t, filepath.Join(env.projectDir, "web")))
}

func TestRun_FiresLifecycleHooksInOrder(t *testing.T) {
	env := newScaffoldEnv(t)

	var fired []events.Event
	hooks := events.NewDispatcher()
	hooks.Subscribe(events.PreScaffold, func(e events.Event) { fired = append(fired, e) })
	hooks.Subscribe(events.PostScaffold, func(e events.Event) { fired = append(fired, e) })

	_, err := Run(RunOptions{
		ProjectDir: env.projectDir,
		Config:     webRootConfig(),
		Registry:   env.registry,
		Hooks:      hooks,
	})
	require.NoError(t, err)

	assert.Equal(t, []events.Event{events.PreScaffold, events.PostScaffold}, fired)
}

func TestRun_RootOnlyScaffolding(t *testing.T) {
	env := newScaffoldEnv(t)
	testutil.CreateFile(t, env.projectDir, "assets/robots.txt", "User-agent: *")

	cfg := webRootConfig()
	cfg.FileMapping = ownMapping("my/project", map[string]interface{}{
		"assets/robots.txt": "[web-root]/robots.txt",
	})

	result, err := env.run(t, cfg, false)
	require.NoError(t, err)

	assert.Equal(t, "User-agent: *", testutil.ReadFile(t, filepath.Join(env.projectDir, "web", "robots.txt")))
	require.Len(t, result.Operations, 1)
	assert.Equal(t, "my/project", result.Operations[0].Package)
}

func TestRun_OperationsFollowPrecedenceOrder(t *testing.T) {
	env := newScaffoldEnv(t)
	env.addPackage(t, "b/pkg",
		ownMapping("b/pkg", map[string]interface{}{
			"z.txt": "[web-root]/z.txt",
			"a.txt": "[web-root]/a.txt",
		}),
		map[string]string{"z.txt": "z", "a.txt": "a"})
	env.addPackage(t, "a/pkg",
		ownMapping("a/pkg", map[string]interface{}{"m.txt": "[web-root]/m.txt"}),
		map[string]string{"m.txt": "m"})

	// b/pkg is listed first, so its entries come first, sources sorted
	result, err := env.run(t, webRootConfig("b/pkg", "a/pkg"), false)
	require.NoError(t, err)

	require.Len(t, result.Operations, 3)
	assert.Equal(t, "b/pkg", result.Operations[0].Package)
	assert.True(t, filepath.Base(result.Operations[0].Destination) == "a.txt")
	assert.Equal(t, "b/pkg", result.Operations[1].Package)
	assert.True(t, filepath.Base(result.Operations[1].Destination) == "z.txt")
	assert.Equal(t, "a/pkg", result.Operations[2].Package)
}
