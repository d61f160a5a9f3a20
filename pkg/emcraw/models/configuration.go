package models

// Configuration is one discovered test configuration: the pairing of a
// sample identifier with the free-text setup name declared after it.
// Configurations are discovered once and never mutated.
type Configuration struct {
	// SampleID matches the sample identifier grammar, e.g.
	// "CRE2-2025-TP002-02".
	SampleID string `json:"sample_id"`
	// Name is the remainder of the composite identifier after the first
	// underscore, e.g. "ER_In front of harness RBW 9kHz".
	Name string `json:"name"`
	// FullName is the composite identifier exactly as declared.
	FullName string `json:"full_name"`
	// BlockIndex is the index of the declaring parameter block within
	// the document.
	BlockIndex int `json:"block_index"`
}

// TestParams holds the test setup parameters harvested from the parameter
// tables surrounding a configuration declaration.
type TestParams struct {
	SampleID          string `json:"sample_id,omitempty"`
	Configuration     string `json:"configuration,omitempty"`
	Project           string `json:"project,omitempty"`
	Operator          string `json:"operator,omitempty"`
	TestConfiguration string `json:"test_configuration,omitempty"`
	OperatingMode     string `json:"operating_mode,omitempty"`
	Conclusion        string `json:"conclusion,omitempty"`
	RBW               string `json:"rbw,omitempty"`
	Span              string `json:"span,omitempty"`
	ReferenceLevel    string `json:"reference_level,omitempty"`
	// Other collects key/value rows that matched no known parameter.
	Other map[string]string `json:"other,omitempty"`
}
