package scafgo

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/scaffoldkit/scafgo/pkg/scaffold"
)

// RenderResult prints a scaffold run's outcome: one line per file operation
// in pipeline order, then the diagnostics.
func RenderResult(result *scaffold.Result) {
	for _, op := range result.Operations {
		verb := string(op.Verb)
		if op.Simulated {
			verb = "would " + verb
		}
		pterm.Success.Printfln("%s %s %s %s",
			verb, op.Source, pterm.Gray("->"), op.Destination)
	}

	for _, diag := range result.Diagnostics {
		subject := diag.Package
		if diag.Source != "" {
			subject = fmt.Sprintf("%s:%s", diag.Package, diag.Source)
		}
		pterm.Warning.Printfln("%s: %s", subject, diag.Message)
	}

	if len(result.Operations) == 0 && len(result.Diagnostics) == 0 {
		pterm.Info.Println("Nothing to scaffold")
	}
}
