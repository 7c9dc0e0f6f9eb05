package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scafgoerrors "github.com/scaffoldkit/scafgo/pkg/errors"
	"github.com/scaffoldkit/scafgo/pkg/testutil"
	"github.com/scaffoldkit/scafgo/pkg/types"
)

func TestReadFileMapping_ReturnsDeclaredMapping(t *testing.T) {
	pkg := testutil.MakePackage("acme/base", "/install/acme/base", map[string]interface{}{
		"acme/base": map[string]interface{}{
			"robots.txt": "[web-root]/robots.txt",
		},
	})
	result := NewResult()

	mapping := readFileMapping(pkg, result)

	require.Contains(t, mapping, "acme/base")
	assert.Empty(t, result.Diagnostics)
}

func TestReadFileMapping_AbsentKeyYieldsEmptyAndDiagnostic(t *testing.T) {
	pkg := &types.Package{Name: "acme/base", InstallPath: "/install/acme/base"}
	result := NewResult()

	mapping := readFileMapping(pkg, result)

	assert.Empty(t, mapping)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, scafgoerrors.ErrNoFileMapping, result.Diagnostics[0].Code)
	assert.Equal(t, "acme/base", result.Diagnostics[0].Package)
}

func TestReadFileMapping_PartialKeyPathYieldsEmpty(t *testing.T) {
	pkg := &types.Package{
		Name: "acme/base",
		Extra: map[string]interface{}{
			"scaffold": map[string]interface{}{},
		},
	}
	result := NewResult()

	mapping := readFileMapping(pkg, result)

	assert.Empty(t, mapping)
	require.Len(t, result.Diagnostics, 1)
}

func TestReadFileMapping_NonMappingValueYieldsDiagnostic(t *testing.T) {
	pkg := &types.Package{
		Name: "acme/base",
		Extra: map[string]interface{}{
			"scaffold": map[string]interface{}{
				"file-mapping": "not-a-mapping",
			},
		},
	}
	result := NewResult()

	mapping := readFileMapping(pkg, result)

	assert.Empty(t, mapping)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, scafgoerrors.ErrPackageInvalid, result.Diagnostics[0].Code)
}
