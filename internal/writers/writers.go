// internal/writers/writers.go
package writers

import (
	"fmt"
	"io"

	"github.com/RPINerd/SimpleCoverage/core/cover"
	"github.com/RPINerd/SimpleCoverage/internal/output"
)

// Options selects and parameterizes a report format.
type Options struct {
	Format string // text | json | jsonl
	Header bool   // text only
	// Render, when non-nil, appends a per-target block after each text row
	// (used for --pretty coverage maps). It is called with the row's index
	// into Result.Targets.
	Render func(int, cover.TargetCoverage) string
}

// Write renders a complete coverage result in the selected format.
func Write(out io.Writer, r cover.Result, o Options) error {
	switch o.Format {
	case "text":
		return output.WriteText(out, r, o.Header, o.Render)
	case "json":
		return output.WriteJSON(out, r)
	case "jsonl":
		return output.WriteJSONL(out, r)
	default:
		return fmt.Errorf("unsupported output %q", o.Format)
	}
}
