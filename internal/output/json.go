// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"github.com/RPINerd/SimpleCoverage/core/cover"
)

// WriteJSON emits the whole report as one indented JSON document.
func WriteJSON(w io.Writer, r cover.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToReportV1(r))
}

// WriteJSONL emits one JSON line per target, then one summary line.
func WriteJSONL(w io.Writer, r cover.Result) error {
	enc := json.NewEncoder(w)
	for _, tc := range r.Targets {
		if err := enc.Encode(ToTargetV1(tc)); err != nil {
			return err
		}
	}
	return enc.Encode(struct {
		Overall OverallV1 `json:"overall"`
	}{Overall: OverallV1{LengthBP: r.Length, CoveredBP: r.Covered, Percent: r.Percent}})
}
