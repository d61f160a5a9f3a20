// Package rules applies the conformity rules to extracted measurements:
// margin computation, per-row verdicts, and per-section and global
// aggregation.
package rules

import (
	"math"

	"github.com/Elietshi1004/emcraw/pkg/emcraw/models"
)

// MarginNA is the sentinel margin for rows where no numeric margin can
// be determined. Such rows get verdict "-" and never count as failures.
const MarginNA = "N/A"

// Apply evaluates every measurement exactly once and returns the
// evaluated rows in the same order. Inputs are not mutated.
//
// Margin = round(Limit - Measure, 2); positive margin means compliant.
// When measure or limit is missing or non-numeric, the margin column
// carried by the source table is used if numeric, otherwise the margin
// is the "N/A" sentinel.
func Apply(ms []models.Measurement) []models.Measurement {
	out := make([]models.Measurement, len(ms))
	for i, m := range ms {
		out[i] = Evaluate(m)
	}
	return out
}

// Evaluate computes margin, overtaking and conformity for one row.
// Margin and verdict are always set together.
func Evaluate(m models.Measurement) models.Measurement {
	switch {
	case m.Measure.Numeric && m.Limit.Numeric:
		m.Margin = models.Number(round2(m.Limit.Num - m.Measure.Num))
	case m.RawMargin.Numeric:
		m.Margin = m.RawMargin
	default:
		m.Margin = models.TextValue(MarginNA)
	}

	// Overtaking is reported as a placeholder, matching the report
	// layout of the measurement receivers.
	m.Overtaking = "-"

	switch {
	case m.Margin.Numeric && m.Margin.Num >= 0:
		m.Conformity = models.VerdictOK
	case m.Margin.Numeric:
		m.Conformity = models.VerdictNOK
	default:
		m.Conformity = models.VerdictNone
	}
	return m
}

// Summarize groups evaluated measurements by detector section and
// returns one summary per section plus the global verdict. Sections
// appear in first-seen order so repeated runs produce identical output.
// The global verdict is OK only when every section verdict is OK; every
// section is still summarized after the first failure.
func Summarize(ms []models.Measurement) ([]models.SectionSummary, models.Verdict) {
	var order []string
	bySection := make(map[string]*models.SectionSummary)

	for _, m := range ms {
		sec := string(m.Detector)
		if sec == "" {
			sec = string(models.DetectorUnknown)
		}
		s, ok := bySection[sec]
		if !ok {
			s = &models.SectionSummary{Section: sec}
			bySection[sec] = s
			order = append(order, sec)
		}
		s.Rows++
		if m.Conformity == models.VerdictNOK {
			s.Fails++
		}
	}

	global := models.VerdictOK
	summaries := make([]models.SectionSummary, 0, len(order))
	for _, sec := range order {
		s := bySection[sec]
		if s.Fails == 0 {
			s.Verdict = models.VerdictOK
		} else {
			s.Verdict = models.VerdictNOK
			global = models.VerdictNOK
		}
		summaries = append(summaries, *s)
	}
	return summaries, global
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
