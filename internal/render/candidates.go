package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rocketscienceinc/playground/internal/playground"
)

// Candidates lists runs of at least minLen moves, longest first, one per line:
//
//	horizontal 0..2 len=3: [  0,  0]:X [  1,  0]:X [  2,  0]:X
func Candidates(candidates []*playground.Candidate, minLen int) string {
	selected := make([]*playground.Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Len() >= minLen {
			selected = append(selected, candidate)
		}
	}

	slices.SortStableFunc(selected, func(a, b *playground.Candidate) int {
		return b.Len() - a.Len()
	})

	var report strings.Builder
	for _, candidate := range selected {
		fmt.Fprintf(&report, "%s %d..%d len=%d:", candidate.Axis(), candidate.Low(), candidate.High(), candidate.Len())
		for _, move := range candidate.Moves() {
			report.WriteString(" ")
			report.WriteString(move.String())
		}
		report.WriteString("\n")
	}

	return report.String()
}
