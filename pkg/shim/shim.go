// Package shim writes the project-root autoload shim after scaffolding
// completes. It is a one-shot templated file write, structurally separate
// from the resolution pipeline; it only consumes the resolved web-root
// path.
package shim

import (
	"bytes"
	"path/filepath"
	"text/template"

	"github.com/scaffoldkit/scafgo/pkg/errors"
	"github.com/scaffoldkit/scafgo/pkg/logging"
	"github.com/scaffoldkit/scafgo/pkg/types"
)

// FileName is the autoload shim filename written into the web root.
const FileName = "autoload.php"

var autoloadTemplate = template.Must(template.New("autoload").Parse(`<?php

/**
 * @file
 * Includes the project autoloader.
 *
 * Generated by scafgo. Do not edit.
 */

return require __DIR__ . '/{{ .RelativeAutoload }}';
`))

// Write renders the autoload shim into webRoot, pointing at the autoloader
// inside vendorDir via a relative path. It returns the written file path.
func Write(fsys types.FS, webRoot, vendorDir string) (string, error) {
	logger := logging.GetLogger("shim")

	autoload := filepath.Join(vendorDir, "autoload.php")
	rel, err := filepath.Rel(webRoot, autoload)
	if err != nil {
		rel = autoload
	}

	var buf bytes.Buffer
	data := struct{ RelativeAutoload string }{RelativeAutoload: filepath.ToSlash(rel)}
	if err := autoloadTemplate.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, errors.ErrShimWrite, "failed to render autoload shim")
	}

	path := filepath.Join(webRoot, FileName)
	if err := fsys.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrShimWrite, "failed to write autoload shim to %s", path)
	}

	logger.Info().Str("path", path).Msg("Wrote autoload shim")
	return path, nil
}
