package parser

import (
	"strings"

	"github.com/Elietshi1004/emcraw/pkg/emcraw/models"
)

// ExtractParams harvests the test setup parameters for a configuration.
//
// The declaring block is inspected first, then the remaining candidate
// blocks (any block containing a parameter keyword) in document order;
// the first block yielding at least one value wins. When no candidate
// block yields anything, a global fallback pass scans every cell for
// "Key: Value" text.
func ExtractParams(doc *models.Document, cfg models.Configuration) models.TestParams {
	p := models.TestParams{
		SampleID:      cfg.SampleID,
		Configuration: cfg.Name,
	}

	for _, bi := range candidateBlocks(doc, cfg.BlockIndex) {
		found := false
		for _, row := range doc.Block(bi).Rows {
			key, value := splitKeyValue(row)
			if value == "" {
				continue
			}
			found = true
			assignParam(&p, normalizeKey(key), value)
		}
		if found {
			return p
		}
	}

	// Fallback: scan every cell for "Key: Value" text, filling only
	// parameters still empty.
	for _, block := range doc.Blocks {
		for _, row := range block.Rows {
			for _, cell := range row {
				k, v, ok := strings.Cut(CleanText(cell), ":")
				if !ok {
					continue
				}
				v = CleanText(v)
				if v == "" {
					continue
				}
				assignParamIfEmpty(&p, normalizeKey(k), v)
			}
		}
	}
	return p
}

// candidateBlocks returns the declaring block followed by every other
// block whose text contains a parameter keyword, in document order.
func candidateBlocks(doc *models.Document, declaring int) []int {
	out := []int{declaring}
	for bi, block := range doc.Blocks {
		if bi == declaring {
			continue
		}
		text := strings.ToLower(blockText(block))
		for _, kw := range parameterKeywords {
			if strings.Contains(text, kw) {
				out = append(out, bi)
				break
			}
		}
	}
	return out
}

// splitKeyValue extracts a key and value from a parameter row. Handles
// value-in-second-cell, "Key: Value" packed into the first cell, and
// value in a later cell.
func splitKeyValue(row models.Row) (key, value string) {
	cells := make([]string, len(row))
	for i, c := range row {
		cells[i] = CleanText(c)
	}
	if len(cells) == 0 {
		return "", ""
	}

	if len(cells) >= 2 && cells[1] != "" {
		return cells[0], cells[1]
	}
	if k, v, ok := strings.Cut(cells[0], ":"); ok {
		return k, CleanText(v)
	}
	for i := 1; i < len(cells); i++ {
		if cells[i] != "" {
			return cells[0], cells[i]
		}
	}
	return cells[0], ""
}

func normalizeKey(k string) string {
	return strings.TrimSpace(strings.ReplaceAll(strings.ToLower(CleanText(k)), ":", ""))
}

// assignParam routes one key/value pair to its TestParams field. Keys
// match on substrings so minor wording differences are tolerated.
func assignParam(p *models.TestParams, key, value string) {
	switch {
	case strings.Contains(key, "sample"):
		p.SampleID = value
	case strings.Contains(key, "project"):
		p.Project = value
	case strings.Contains(key, "operator"):
		p.Operator = value
	case strings.Contains(key, "test configuration"), strings.Contains(key, "test cfg"):
		p.TestConfiguration = value
	case strings.Contains(key, "operating mode"), strings.HasPrefix(key, "mode"):
		mode, conclusion := splitModeConclusion(value)
		p.OperatingMode = mode
		if conclusion != "" {
			p.Conclusion = conclusion
		}
	case strings.Contains(key, "conclusion"):
		p.Conclusion = value
	case strings.Contains(key, "rbw"):
		p.RBW = value
	case strings.Contains(key, "span"):
		p.Span = value
	case strings.Contains(key, "reference") && strings.Contains(key, "level"):
		p.ReferenceLevel = value
	default:
		if p.Other == nil {
			p.Other = make(map[string]string)
		}
		p.Other[key] = value
	}
}

func assignParamIfEmpty(p *models.TestParams, key, value string) {
	switch {
	case strings.Contains(key, "project") && p.Project == "":
		p.Project = value
	case strings.Contains(key, "operator") && p.Operator == "":
		p.Operator = value
	case strings.Contains(key, "test configuration") && p.TestConfiguration == "":
		p.TestConfiguration = value
	case strings.Contains(key, "operating mode") && p.OperatingMode == "":
		p.OperatingMode = value
	case strings.Contains(key, "conclusion") && p.Conclusion == "":
		p.Conclusion = value
	}
}

// splitModeConclusion handles values like "Mode 3, Conclusion: comply"
// where the conclusion rides along in the operating mode cell.
func splitModeConclusion(value string) (mode, conclusion string) {
	low := strings.ToLower(value)
	idx := strings.Index(low, "conclusion")
	if idx < 0 {
		return value, ""
	}
	mode = strings.TrimRight(strings.TrimSpace(strings.ReplaceAll(value[:idx], ":", "")), ",")
	mode = strings.TrimSpace(mode)
	conclusion = strings.TrimSpace(strings.ReplaceAll(value[idx+len("conclusion"):], ":", ""))
	return mode, conclusion
}
