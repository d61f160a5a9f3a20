// Package parser turns raw document blocks into normalized measurement
// data: header normalization, value cleaning, block classification,
// configuration discovery and measurement association.
package parser

import "strings"

// expander fixes known mis-encodings and expands abbreviated column
// labels. It must run before any header matching: the margin and limit
// patterns below assume the expanded form.
var expander = strings.NewReplacer(
	"Âµ", "µ",
	"dBμV", "dBµV",
	"Lim.Avg", "Limit Avg",
	"Lim.Peak", "Limit Peak",
	"Lim.Q-Peak", "Limit Q-Peak",
	"CISPR.AVG", "CISPR Avg",
)

// headerRules maps lower-cased header substrings to canonical field
// labels, first match wins. Ordering is load-bearing: the composite
// margin patterns (detector minus limit) come before the plain limit and
// detector patterns that would otherwise claim the same header, and
// q-peak comes before peak.
var headerRules = []struct {
	pattern   string
	canonical string
}{
	{"cispr avg-limit avg", "Margin (dB)"},
	{"peak-limit peak", "Margin (dB)"},
	{"q-peak-limit q-peak", "Margin (dB)"},
	{"peak-limit", "Margin (dB)"},
	{"cispr-limit", "Margin (dB)"},
	{"q-peak-limit", "Margin (dB)"},
	{"limit peak", "Limit Peak (dBµV/m)"},
	{"limit avg", "Limit Avg (dBµV/m)"},
	{"limit q-peak", "Limit Q-Peak (dBµV/m)"},
	{"cispr avg", "CISPR.AVG (dBµV/m)"},
	{"q-peak", "Q-Peak (dBµV/m)"},
	{"peak", "Peak (dBµV/m)"},
	{"cispr", "CISPR.AVG (dBµV/m)"},
	{"frequency", "Frequency (MHz)"},
	{"detector", "Detector type"},
	{"comment", "Comment"},
	{"applied limit", "Applied limit"},
	{"margin", "Margin (dB)"},
	{"antenna position", "Antenna Position"},
	{"polarization", "Polarization"},
}

// ExpandHeader repairs mis-encoded units and expands abbreviated column
// labels ("Lim.Avg" -> "Limit Avg", "Âµ" -> "µ").
func ExpandHeader(s string) string {
	return expander.Replace(s)
}

// NormalizeHeader maps a raw header cell to its canonical field label.
// Unmatched headers pass through as expanded, cleaned text, so the
// function is total and idempotent.
func NormalizeHeader(s string) string {
	h := CleanText(ExpandHeader(s))
	low := strings.ToLower(h)
	for _, r := range headerRules {
		if strings.Contains(low, r.pattern) {
			return r.canonical
		}
	}
	return h
}
