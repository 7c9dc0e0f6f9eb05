package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/scaffoldkit/scafgo/pkg/types"
)

// MakePackage builds an in-memory package whose extra configuration carries
// the given raw file mapping (owner package name -> source -> destination).
func MakePackage(name, installPath string, fileMapping map[string]interface{}) *types.Package {
	pkg := &types.Package{Name: name, InstallPath: installPath}
	if fileMapping != nil {
		pkg.Extra = map[string]interface{}{
			"scaffold": map[string]interface{}{
				"file-mapping": fileMapping,
			},
		}
	}
	return pkg
}

// InstallPackage lays a package fixture out on disk under installRoot: its
// directory, a scafgo.yaml descriptor declaring the file mapping, and the
// given source files. It returns the package's install path.
func InstallPackage(t *testing.T, installRoot, name string, fileMapping map[string]interface{}, files map[string]string) string {
	t.Helper()

	installPath := filepath.Join(installRoot, filepath.FromSlash(name))
	if err := os.MkdirAll(installPath, 0755); err != nil {
		t.Fatalf("Failed to create package directory %s: %v", installPath, err)
	}

	descriptor := map[string]interface{}{
		"name": name,
	}
	if fileMapping != nil {
		descriptor["extra"] = map[string]interface{}{
			"scaffold": map[string]interface{}{
				"file-mapping": fileMapping,
			},
		}
	}

	data, err := yaml.Marshal(descriptor)
	if err != nil {
		t.Fatalf("Failed to render descriptor for package %s: %v", name, err)
	}
	if err := os.WriteFile(filepath.Join(installPath, "scafgo.yaml"), data, 0644); err != nil {
		t.Fatalf("Failed to write descriptor for package %s: %v", name, err)
	}

	for rel, content := range files {
		CreateFile(t, installPath, rel, content)
	}

	return installPath
}
