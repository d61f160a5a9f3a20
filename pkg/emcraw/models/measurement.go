package models

// Detector identifies the measurement detector a value was taken with.
type Detector string

const (
	DetectorCISPRAvg Detector = "CISPR.AVG"
	DetectorPeak     Detector = "Peak"
	DetectorQPeak    Detector = "Q-Peak"
	// DetectorUnknown is used when no detector column was recognized.
	DetectorUnknown Detector = "Unknown"
)

// Verdict is the conformity classification of a measurement or aggregate.
type Verdict string

const (
	VerdictOK  Verdict = "OK"
	VerdictNOK Verdict = "NOK"
	// VerdictNone marks rows whose margin could not be computed; such
	// rows never count as failures.
	VerdictNone Verdict = "-"
)

// Measurement is one normalized measurement row, tagged with the sample
// and configuration it belongs to. The extractor fills the source fields;
// the rule engine sets Margin, Overtaking and Conformity exactly once.
type Measurement struct {
	SampleID      string `json:"sample_id"`
	Configuration string `json:"configuration"`

	Frequency    Value    `json:"frequency"`
	SampleRate   Value    `json:"sample_rate,omitzero"`
	Detector     Detector `json:"detector"`
	Measure      Value    `json:"measure"`
	Limit        Value    `json:"limit"`
	RawMargin    Value    `json:"raw_margin,omitzero"` // margin column as it appeared in the source table
	Polarization string   `json:"polarization"`
	Correction   Value    `json:"correction,omitzero"`
	Comment      string   `json:"comment"`

	Margin     Value   `json:"margin"`
	Overtaking string  `json:"overtaking"`
	Conformity Verdict `json:"conformity"`

	// Extra holds unmapped columns keyed by their normalized header.
	Extra map[string]string `json:"extra,omitempty"`
}

// Key returns the composite deduplication key. Re-scanning overlapping
// block runs may visit the same physical row twice; two rows with equal
// frequency and measure are the same row.
func (m Measurement) Key() string {
	return m.Frequency.String() + "_" + m.Measure.String()
}
