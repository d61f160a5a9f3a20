package parser

import (
	"strings"

	"github.com/Elietshi1004/emcraw/pkg/emcraw/models"
	"github.com/Elietshi1004/emcraw/pkg/emcraw/observe"
)

// ExtractRows collects the normalized measurement rows of a
// configuration from its resolved block run. Row order within each
// block and the backward-scan order across blocks are preserved.
// Duplicate rows, introduced when overlapping runs visit the same
// physical table for more than one configuration, are suppressed on the
// (frequency, measure) composite key.
func ExtractRows(doc *models.Document, cfg models.Configuration, blocks []int, obs observe.Observer) []models.Measurement {
	var out []models.Measurement
	seen := make(map[string]bool)

	for _, bi := range blocks {
		for _, m := range ExtractBlockRows(doc.Block(bi), cfg) {
			key := m.Key()
			if seen[key] {
				obs.RowDeduplicated(cfg, key)
				continue
			}
			seen[key] = true
			obs.RowAccepted(m)
			out = append(out, m)
		}
	}
	return out
}

// ExtractBlockRows turns the data rows of one measurement block into
// Measurement records by zipping normalized headers with cleaned cell
// values. Fully blank rows are skipped. Blocks too short to carry data
// yield nothing.
func ExtractBlockRows(b models.Block, cfg models.Configuration) []models.Measurement {
	if !isMeasurementBlock(b) {
		return nil
	}

	header := b.Header()
	headers := make([]string, len(header))
	for i, cell := range header {
		headers[i] = NormalizeHeader(cell)
	}

	var out []models.Measurement
	for _, row := range b.DataRows() {
		if rowEmpty(row) {
			continue
		}
		m := models.Measurement{
			SampleID:      cfg.SampleID,
			Configuration: cfg.Name,
			Detector:      models.DetectorUnknown,
			Polarization:  "Vertical",
			Comment:       "-",
		}
		for i, h := range headers {
			assignField(&m, h, row.Cell(i))
		}
		out = append(out, m)
	}
	return out
}

// assignField maps one normalized header to its Measurement field. The
// case order mirrors the header rule priorities: detector measure
// columns before limit columns, q-peak before peak, and composite
// detector-minus-limit columns land on the source margin.
func assignField(m *models.Measurement, header, raw string) {
	h := strings.ToLower(header)
	val := CleanValue(raw)

	switch {
	case strings.Contains(h, "frequency"):
		m.Frequency = val
	case strings.TrimSpace(h) == "sr":
		m.SampleRate = val
	case strings.Contains(h, "cispr") && strings.Contains(h, "avg") && !strings.Contains(h, "lim"):
		m.Measure = val
		m.Detector = models.DetectorCISPRAvg
	case strings.Contains(h, "q-peak") && !strings.Contains(h, "lim"):
		m.Measure = val
		m.Detector = models.DetectorQPeak
	case strings.Contains(h, "peak") && !strings.Contains(h, "lim") && !strings.Contains(h, "-"):
		m.Measure = val
		m.Detector = models.DetectorPeak
	case strings.Contains(h, "lim") &&
		(strings.Contains(h, "avg") || strings.Contains(h, "peak")):
		m.Limit = val
	case strings.Contains(h, "margin"),
		strings.Contains(h, "-") &&
			(strings.Contains(h, "avg") || strings.Contains(h, "peak")):
		m.RawMargin = val
	case strings.Contains(h, "detector"):
		if t := CleanText(raw); t != "" {
			m.Detector = models.Detector(t)
		}
	case strings.Contains(h, "pol"):
		if t := CleanText(raw); t != "" {
			m.Polarization = t
		}
	case strings.Contains(h, "corr"):
		m.Correction = val
	case strings.Contains(h, "comment"):
		if t := CleanText(raw); t != "" {
			m.Comment = t
		}
	default:
		if t := CleanText(raw); t != "" {
			if m.Extra == nil {
				m.Extra = make(map[string]string)
			}
			m.Extra[header] = t
		}
	}
}

func rowEmpty(row models.Row) bool {
	for _, cell := range row {
		if CleanText(cell) != "" {
			return false
		}
	}
	return true
}
