package scaffold

import (
	"github.com/scaffoldkit/scafgo/pkg/errors"
	"github.com/scaffoldkit/scafgo/pkg/logging"
	"github.com/scaffoldkit/scafgo/pkg/types"
)

// Verb names the file operation performed for one mapping entry.
type Verb string

const (
	// VerbCopy is a byte-for-byte copy of the source file.
	VerbCopy Verb = "copy"

	// VerbSymlink is a relative symbolic link pointing at the source.
	VerbSymlink Verb = "symlink"
)

// FileOperation records one executed (or, in dry-run mode, planned)
// placement.
type FileOperation struct {
	Package     string
	Source      string
	Destination string
	Verb        Verb
	Simulated   bool
}

// Diagnostic records a non-fatal problem that skipped an entry but let the
// run continue.
type Diagnostic struct {
	Code    errors.ErrorCode
	Package string
	Source  string
	Message string
}

// Result is the outcome of one scaffold run: the operations performed, the
// diagnostics raised, and the resolved locations downstream consumers (such
// as the autoload shim writer) need.
type Result struct {
	Operations  []FileOperation
	Diagnostics []Diagnostic
	Locations   types.ResolvedLocations
}

// NewResult creates an empty run result.
func NewResult() *Result {
	return &Result{}
}

func (r *Result) addOperation(op FileOperation) {
	r.Operations = append(r.Operations, op)
}

// addDiagnostic appends and surfaces a diagnostic. Diagnostics are reported
// immediately, one line per affected entry, in pipeline order.
func (r *Result) addDiagnostic(code errors.ErrorCode, pkg, source, message string) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		Code:    code,
		Package: pkg,
		Source:  source,
		Message: message,
	})

	logger := logging.GetLogger("scaffold")
	logger.Warn().
		Str("code", string(code)).
		Str("package", pkg).
		Str("source", source).
		Msg(message)
}
