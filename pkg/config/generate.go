package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/scaffoldkit/scafgo/pkg/errors"
)

// starterDescriptor is the shape written by WriteStarter. Kept separate from
// Options so the generated file shows the keys a new project actually edits.
type starterDescriptor struct {
	Name            string            `toml:"name"`
	AllowedPackages []string          `toml:"allowed-packages"`
	Locations       map[string]string `toml:"locations"`
	Symlink         bool              `toml:"symlink"`
}

// WriteStarter writes a starter scafgo.toml into projectDir. It refuses to
// overwrite an existing descriptor.
func WriteStarter(projectDir, name string) (string, error) {
	if existing := findDescriptor(projectDir); existing != "" {
		return "", errors.Newf(errors.ErrConfigLoad, "project already has a descriptor at %s", existing)
	}

	starter := starterDescriptor{
		Name:            name,
		AllowedPackages: []string{},
		Locations: map[string]string{
			WebRootLocation: "web",
		},
		Symlink: false,
	}

	data, err := toml.Marshal(starter)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrConfigLoad, "failed to render starter descriptor")
	}

	path := filepath.Join(projectDir, "scafgo.toml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrConfigLoad, "failed to write %s", path)
	}
	return path, nil
}
