package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/scaffoldkit/scafgo/pkg/errors"
	"github.com/scaffoldkit/scafgo/pkg/logging"
	"github.com/scaffoldkit/scafgo/pkg/types"
)

// WebRootLocation is the symbolic location every project must configure;
// all destination computation depends on it.
const WebRootLocation = "web-root"

// FileMappingKey is the well-known key path inside a package's extra
// configuration that holds its scaffold file mapping.
const FileMappingKey = "scaffold.file-mapping"

// descriptorNames are the project descriptor filenames probed in the
// project directory, in priority order.
var descriptorNames = []string{"scafgo.toml", ".scafgo.toml", "scafgo.yaml", ".scafgo.yaml"}

// Options is the root project's scaffold configuration.
type Options struct {
	// Name identifies the root project package. Empty names fall back to
	// the anonymous root name so the root override invariant still holds.
	Name string `koanf:"name"`

	// AllowedPackages lists the packages permitted to contribute scaffold
	// files, in ascending override precedence.
	AllowedPackages []string `koanf:"allowed-packages"`

	// Locations maps symbolic location names to raw, possibly relative
	// path strings. Must include web-root.
	Locations map[string]string `koanf:"locations"`

	// Symlink selects symlink mode instead of copy mode.
	Symlink bool `koanf:"symlink"`

	// FileMapping is the root project's own inline mapping, in the same
	// shape as a package's declared mapping.
	FileMapping map[string]interface{} `koanf:"file-mapping"`
}

// AnonymousRootName is used as the root package identity when the project
// descriptor declares no name.
const AnonymousRootName = "__root__"

// RootName returns the root project package name, never empty.
func (o *Options) RootName() string {
	if o.Name == "" {
		return AnonymousRootName
	}
	return o.Name
}

// RootPackage builds the root project's Package snapshot. Its install path
// is the project directory and its extra configuration carries the inline
// file mapping under the well-known key, so the file-mapping reader treats
// the root exactly like any other package.
func (o *Options) RootPackage(projectDir string) *types.Package {
	pkg := &types.Package{
		Name:        o.RootName(),
		InstallPath: projectDir,
	}
	if len(o.FileMapping) > 0 {
		pkg.Extra = map[string]interface{}{
			"scaffold": map[string]interface{}{
				"file-mapping": o.FileMapping,
			},
		}
	}
	return pkg
}

// Load reads the project descriptor from projectDir and returns the
// scaffold Options. Configuration layers, later overriding earlier:
// built-in defaults, the descriptor file, then SCAFGO_* environment
// variables.
func Load(projectDir string) (*Options, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Defaults
	defaults := map[string]interface{}{
		"symlink": false,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Project descriptor, first filename that exists wins
	path := findDescriptor(projectDir)
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse project descriptor %s", path)
		}
		logger.Debug().Str("descriptor", path).Msg("loaded project descriptor")
	} else {
		logger.Debug().Str("projectDir", projectDir).Msg("no project descriptor found, using defaults")
	}

	// 3. Environment overrides, e.g. SCAFGO_SYMLINK=true
	err := k.Load(env.Provider("SCAFGO_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "SCAFGO_")), "_", "-")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var opts Options
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &opts,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &opts, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode scaffold options")
	}

	return &opts, nil
}

// findDescriptor returns the first project descriptor present, or "".
func findDescriptor(projectDir string) string {
	for _, name := range descriptorNames {
		path := filepath.Join(projectDir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// parserFor picks the koanf parser matching a descriptor filename.
func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
