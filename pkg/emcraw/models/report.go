package models

// SectionSummary aggregates the rule-evaluated rows of one detector
// section. Recomputed per run, never persisted.
type SectionSummary struct {
	Section string  `json:"section"`
	Rows    int     `json:"rows"`
	Fails   int     `json:"fails"`
	Verdict Verdict `json:"verdict"`
}

// ConfigResult holds everything extracted and evaluated for a single
// configuration: its measurement rows in source order, its test
// parameters, and the per-section and overall verdicts.
type ConfigResult struct {
	Configuration Configuration    `json:"configuration"`
	Params        TestParams       `json:"params"`
	Measurements  []Measurement    `json:"measurements"`
	Sections      []SectionSummary `json:"sections"`
	Verdict       Verdict          `json:"verdict"`
}

// SampleResult groups the configurations of one sample identifier in
// discovery order.
type SampleResult struct {
	SampleID string          `json:"sample_id"`
	Configs  []*ConfigResult `json:"configs"`
}

// Config returns the result for the named configuration, or nil.
func (s *SampleResult) Config(name string) *ConfigResult {
	for _, c := range s.Configs {
		if c.Configuration.Name == name {
			return c
		}
	}
	return nil
}

// Report is the hierarchical output of one extraction run:
// sample -> configuration -> evaluated measurements plus summaries.
type Report struct {
	// RunID uniquely tags this extraction run for traceability.
	RunID string `json:"run_id"`
	// Source is the file name of the input document.
	Source string `json:"source"`
	// Samples holds per-sample results in discovery order.
	Samples []*SampleResult `json:"samples"`
}

// Sample returns the result for the given sample ID, or nil.
func (r *Report) Sample(id string) *SampleResult {
	for _, s := range r.Samples {
		if s.SampleID == id {
			return s
		}
	}
	return nil
}
