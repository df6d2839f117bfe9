// internal/output/api.go
package output

import "github.com/RPINerd/SimpleCoverage/core/cover"

// SchemaVersion identifies the JSON output shape.
const SchemaVersion = "1"

// TargetV1 is the stable per-target JSON shape.
type TargetV1 struct {
	TargetID  string  `json:"target_id"`
	LengthBP  int     `json:"length_bp"`
	CoveredBP int     `json:"covered_bp"`
	Percent   float64 `json:"percent"`
	MeanDepth float64 `json:"mean_depth"`
}

// OverallV1 is the stable aggregate JSON shape.
type OverallV1 struct {
	LengthBP  int     `json:"length_bp"`
	CoveredBP int     `json:"covered_bp"`
	Percent   float64 `json:"percent"`
}

// ReportV1 is the top-level JSON document.
type ReportV1 struct {
	Version string     `json:"version"`
	Overall OverallV1  `json:"overall"`
	Targets []TargetV1 `json:"targets"`
}

// ToTargetV1 maps a core coverage slice onto the wire shape.
func ToTargetV1(tc cover.TargetCoverage) TargetV1 {
	return TargetV1{
		TargetID:  tc.TargetID,
		LengthBP:  tc.Length,
		CoveredBP: tc.Covered,
		Percent:   tc.Percent,
		MeanDepth: tc.MeanDepth,
	}
}

// ToReportV1 maps a full result onto the wire shape.
func ToReportV1(r cover.Result) ReportV1 {
	rep := ReportV1{
		Version: SchemaVersion,
		Overall: OverallV1{LengthBP: r.Length, CoveredBP: r.Covered, Percent: r.Percent},
	}
	for _, tc := range r.Targets {
		rep.Targets = append(rep.Targets, ToTargetV1(tc))
	}
	return rep
}
