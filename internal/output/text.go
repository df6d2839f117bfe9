// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"github.com/RPINerd/SimpleCoverage/core/cover"
)

const textHeader = "target_id\tcovered_bp\tlength_bp\tpercent\tmean_depth"

// WriteText renders the result as TSV: one row per target, then a TOTAL row
// with the length-weighted overall percentage. render, when non-nil, appends
// an extra block (e.g. a coverage map) after each target row. It receives the
// row's index into r.Targets so callers can attach per-row data without
// keying on the target ID, which need not be unique.
func WriteText(w io.Writer, r cover.Result, header bool, render func(int, cover.TargetCoverage) string) error {
	if header {
		if _, err := fmt.Fprintln(w, textHeader); err != nil {
			return err
		}
	}
	for i, tc := range r.Targets {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%.2f\t%.2f\n",
			tc.TargetID, tc.Covered, tc.Length, tc.Percent, tc.MeanDepth); err != nil {
			return err
		}
		if render != nil {
			if _, err := io.WriteString(w, render(i, tc)); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "TOTAL\t%d\t%d\t%.2f\t-\n", r.Covered, r.Length, r.Percent)
	return err
}
