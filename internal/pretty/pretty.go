// internal/pretty/pretty.go
package pretty

import (
	"fmt"
	"strings"

	"github.com/RPINerd/SimpleCoverage/core/cover"
	"github.com/RPINerd/SimpleCoverage/core/engine"
	"github.com/RPINerd/SimpleCoverage/core/seq"
)

// RenderMap draws an ASCII coverage map for one target, wrapped at columns
// positions per block. Each block shows the matches overlapping the window
// (query bases at their target offsets, mismatching bases lowercased, '-'
// padding), a per-position depth row ('+' for depth above 9), and the target
// sequence itself.
//
// queries maps query ID to its (forward) base sequence; '-' strand matches
// are rendered with the reverse complement.
func RenderMap(target seq.Sequence, queries map[string][]byte, matches []engine.Match, columns int) string {
	if columns < 1 {
		columns = 80
	}
	depth := cover.Depth(target.Len(), matches)

	var b strings.Builder
	fmt.Fprintf(&b, "# coverage map for %s\n", target.ID)

	for off := 0; off < target.Len(); off += columns {
		end := off + columns
		if end > target.Len() {
			end = target.Len()
		}

		for _, m := range matches {
			if m.Pos >= end || m.End() <= off {
				continue
			}
			b.Write(alignRow(target, queries, m, off, end))
			b.WriteByte('\n')
		}

		for i := off; i < end; i++ {
			b.WriteByte(depthDigit(depth[i]))
		}
		b.WriteByte('\n')
		b.Write(target.Seq[off:end])
		b.WriteString("\n\n")
	}
	return b.String()
}

func alignRow(target seq.Sequence, queries map[string][]byte, m engine.Match, off, end int) []byte {
	pat := queries[m.QueryID]
	if m.Strand == '-' {
		pat = seq.RevComp(pat)
	}
	row := make([]byte, end-off)
	for i := range row {
		pos := off + i
		if pos < m.Pos || pos >= m.End() {
			row[i] = '-'
			continue
		}
		c := byte('?')
		if j := pos - m.Pos; j < len(pat) {
			c = pat[j]
		}
		if c != target.Seq[pos] {
			c += 'a' - 'A' // lowercase marks a mismatch
		}
		row[i] = c
	}
	return row
}

func depthDigit(d int) byte {
	if d > 9 {
		return '+'
	}
	return byte('0' + d)
}
