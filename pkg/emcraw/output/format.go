// Package output renders extraction reports as JSON, CSV and XLSX.
package output

import (
	"strconv"

	"github.com/Elietshi1004/emcraw/pkg/emcraw/models"
)

// Options control number formatting and spreadsheet styling.
type Options struct {
	// FreqDigitsBelow10 is the number of decimals for frequencies under
	// 10 MHz; FreqDigitsFrom10 applies from 10 MHz up.
	FreqDigitsBelow10 int
	FreqDigitsFrom10  int
	// DBDigits is the number of decimals for dB values.
	DBDigits int
	// Verdict and header colors as RRGGBB hex.
	PassColor   string
	FailColor   string
	HeaderColor string
}

// DefaultOptions returns the standard report formatting.
func DefaultOptions() Options {
	return Options{
		FreqDigitsBelow10: 5,
		FreqDigitsFrom10:  3,
		DBDigits:          2,
		PassColor:         "008000",
		FailColor:         "C80000",
		HeaderColor:       "4472C4",
	}
}

// Columns is the flattened export row schema: the canonical field set
// with the sample and configuration columns appended.
var Columns = []string{
	"Frequency (MHz)",
	"SR",
	"Detector type",
	"Measure (dBµV/m)",
	"Limit (dBµV/m)",
	"Margin (dB)",
	"Overtaking (dB)",
	"Conformity",
	"Polarization",
	"Correction (dB)",
	"Comment",
	"Sample ID",
	"Configuration",
}

// FlattenRow renders one measurement as a flat export row following
// Columns.
func (o Options) FlattenRow(m models.Measurement) []string {
	return []string{
		o.formatFrequency(m.Frequency),
		m.SampleRate.String(),
		string(m.Detector),
		o.formatDB(m.Measure),
		o.formatDB(m.Limit),
		o.formatDB(m.Margin),
		m.Overtaking,
		string(m.Conformity),
		m.Polarization,
		o.formatDB(m.Correction),
		m.Comment,
		m.SampleID,
		m.Configuration,
	}
}

func (o Options) formatFrequency(v models.Value) string {
	if !v.Numeric {
		return v.Text
	}
	digits := o.FreqDigitsFrom10
	if v.Num < 10 {
		digits = o.FreqDigitsBelow10
	}
	return strconv.FormatFloat(v.Num, 'f', digits, 64)
}

func (o Options) formatDB(v models.Value) string {
	if !v.Numeric {
		return v.Text
	}
	return strconv.FormatFloat(v.Num, 'f', o.DBDigits, 64)
}
