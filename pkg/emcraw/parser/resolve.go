package parser

import "github.com/Elietshi1004/emcraw/pkg/emcraw/models"

// Resolve returns the indices of the contiguous run of measurement
// blocks immediately preceding the declaring block, nearest first.
//
// The scan walks strictly backward from declaring-1. A block whose
// header row carries a test identity key (Sample:, Project:, ...) is the
// boundary of the previous configuration's parameter section and is
// never crossed. Any other non-measurement block also ends the run: a
// gap signals an unrelated table that must not be merged in. The scan
// never looks ahead past the declaring block.
func Resolve(doc *models.Document, declaring int) []int {
	var run []int
	for i := declaring - 1; i >= 0; i-- {
		b := doc.Block(i)
		if IsBoundaryHeader(b) {
			break
		}
		if Classify(b) != models.BlockMeasurement {
			break
		}
		run = append(run, i)
	}
	return run
}
