package parser

import (
	"strings"

	"github.com/Elietshi1004/emcraw/pkg/emcraw/models"
)

// parameterKeywords flag a block as a candidate parameter table when any
// of them appears anywhere in its text.
var parameterKeywords = []string{
	"sample", "project", "operator", "test configuration",
	"operating mode", "conclusion", "rbw", "span", "reference level",
}

// identityKeys are the parameter keys that open a configuration's
// parameter section. A block whose header row carries one of these marks
// the boundary of the previous configuration during backward association.
var identityKeys = []string{
	"sample:", "project:", "operator:", "test configuration:", "operating mode:",
}

// Classify derives the kind of a block from its content. Classification
// is idempotent and never cached. Parameter detection takes priority: a
// block declaring a configuration ("name test:" row) is a parameter
// block even when its free text also mentions a limit.
func Classify(b models.Block) models.BlockKind {
	if len(b.Rows) == 0 {
		return models.BlockOther
	}
	if isParameterBlock(b) {
		return models.BlockParameter
	}
	if isMeasurementBlock(b) {
		return models.BlockMeasurement
	}
	return models.BlockOther
}

// IsBoundaryHeader reports whether the block's header row carries a test
// identity key (Sample:, Project:, ...). Used by the association
// resolver to stop at the previous configuration's parameter section.
func IsBoundaryHeader(b models.Block) bool {
	for _, cell := range b.Header() {
		low := strings.ToLower(CleanText(cell))
		for _, key := range identityKeys {
			if strings.Contains(low, key) {
				return true
			}
		}
	}
	return false
}

func isParameterBlock(b models.Block) bool {
	text := strings.ToLower(blockText(b))
	if strings.Contains(text, "name test") {
		return true
	}
	found := false
	for _, kw := range parameterKeywords {
		if strings.Contains(text, kw) {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	// Key/value shape: first cell is a key, at most one value cell, for
	// the majority of non-empty rows.
	kv, nonEmpty := 0, 0
	for _, row := range b.Rows {
		filled := 0
		for _, cell := range row {
			if CleanText(cell) != "" {
				filled++
			}
		}
		if filled == 0 {
			continue
		}
		nonEmpty++
		if CleanText(row.Cell(0)) != "" && filled <= 2 {
			kv++
		}
	}
	return nonEmpty > 0 && kv*2 >= nonEmpty
}

// isMeasurementBlock reports whether the block is a measurement grid: at
// least a header row plus one data row, with a frequency, limit or
// margin column. Shorter blocks are not classifiable as measurements.
func isMeasurementBlock(b models.Block) bool {
	if len(b.Rows) < 2 {
		return false
	}
	for _, cell := range b.Header() {
		low := strings.ToLower(NormalizeHeader(cell))
		if strings.Contains(low, "frequency") ||
			strings.Contains(low, "limit") ||
			strings.Contains(low, "margin") {
			return true
		}
	}
	return false
}

func blockText(b models.Block) string {
	var sb strings.Builder
	for _, row := range b.Rows {
		for _, cell := range row {
			if sb.Len() > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(CleanText(cell))
		}
	}
	return sb.String()
}
