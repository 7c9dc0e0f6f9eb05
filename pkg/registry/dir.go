package registry

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/scaffoldkit/scafgo/pkg/errors"
	"github.com/scaffoldkit/scafgo/pkg/logging"
	"github.com/scaffoldkit/scafgo/pkg/types"
)

// descriptorNames are the package descriptor filenames probed inside an
// installed package directory, in priority order.
var descriptorNames = []string{"scafgo.toml", ".scafgo.toml", "scafgo.yaml", ".scafgo.yaml"}

// DirRegistry resolves packages from an install root on disk. A package
// named "vendor/pkg" is expected at <root>/vendor/pkg with an optional
// descriptor file carrying its extra configuration.
type DirRegistry struct {
	root string
}

// NewDir creates a registry over the given install root directory.
func NewDir(root string) *DirRegistry {
	return &DirRegistry{root: root}
}

// Find locates a package directory under the install root and loads its
// descriptor. A package directory without a descriptor is still a valid
// package; it simply carries no extra configuration.
func (d *DirRegistry) Find(name string) (*types.Package, error) {
	logger := logging.GetLogger("registry")

	installPath := filepath.Join(d.root, filepath.FromSlash(name))
	info, err := os.Stat(installPath)
	if err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrPackageNotFound, "package '%s' is not installed under %s", name, d.root)
	}

	pkg := &types.Package{Name: name, InstallPath: installPath}

	descriptor := findDescriptor(installPath)
	if descriptor == "" {
		logger.Debug().Str("package", name).Msg("package has no descriptor file")
		return pkg, nil
	}

	extra, err := loadDescriptorExtra(descriptor)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPackageInvalid, "failed to read descriptor for package '%s'", name)
	}
	pkg.Extra = extra

	logger.Debug().Str("package", name).Str("descriptor", descriptor).Msg("loaded package descriptor")
	return pkg, nil
}

// findDescriptor returns the first descriptor file present in dir, or "".
func findDescriptor(dir string) string {
	for _, name := range descriptorNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// loadDescriptorExtra parses a descriptor file and returns its "extra"
// section as a nested map.
func loadDescriptorExtra(path string) (map[string]interface{}, error) {
	k := koanf.New(".")

	parser := DescriptorParser(path)
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	raw := k.Raw()
	extra, ok := raw["extra"].(map[string]interface{})
	if !ok {
		return nil, nil
	}
	return extra, nil
}

// DescriptorParser picks the koanf parser matching a descriptor filename.
func DescriptorParser(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
