package emcraw

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elietshi1004/emcraw/pkg/emcraw/models"
)

func rawDocument() *models.Document {
	return models.NewDocument("raw01.docx",
		// Block 0: measurements for the first configuration.
		[][]string{
			{"Frequency (MHz)", "CISPR.AVG", "Lim.Avg", "CISPR.AVG-Lim.Avg"},
			{"30.000", "40,5", "45,0", "4,5"},
		},
		// Block 1: declaring parameter table.
		[][]string{
			{"Name Test:", "CRE2-2025-TP002-02_ER_In front of harness RBW 9kHz"},
			{"Operator:", "NDN/WD"},
			{"RBW:", "9 kHz"},
		},
		// Block 2: measurements for the second configuration, one row
		// over the limit.
		[][]string{
			{"Frequency (MHz)", "Peak", "Lim.Peak"},
			{"76.000", "52,1", "60,0"},
			{"108.000", "63,4", "60,0"},
		},
		// Block 3: second declaring parameter table.
		[][]string{
			{"Name Test:", "CRE2-2025-TP002-02_ER_Behind harness RBW 120kHz"},
		},
	)
}

func TestExtractDocument(t *testing.T) {
	report, err := ExtractDocument(rawDocument(), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, report.Samples, 1)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, "raw01.docx", report.Source)

	sample := report.Sample("CRE2-2025-TP002-02")
	require.NotNil(t, sample)
	require.Len(t, sample.Configs, 2)

	front := sample.Config("ER_In front of harness RBW 9kHz")
	require.NotNil(t, front)
	require.Len(t, front.Measurements, 1)

	m := front.Measurements[0]
	assert.Equal(t, models.Number(30), m.Frequency)
	assert.Equal(t, models.DetectorCISPRAvg, m.Detector)
	assert.Equal(t, models.Number(40.5), m.Measure)
	assert.Equal(t, models.Number(45), m.Limit)
	assert.Equal(t, models.Number(4.5), m.Margin)
	assert.Equal(t, models.VerdictOK, m.Conformity)
	assert.Equal(t, models.VerdictOK, front.Verdict)

	behind := sample.Config("ER_Behind harness RBW 120kHz")
	require.NotNil(t, behind)
	require.Len(t, behind.Measurements, 2)
	assert.Equal(t, models.VerdictOK, behind.Measurements[0].Conformity)
	assert.Equal(t, models.VerdictNOK, behind.Measurements[1].Conformity)
	assert.Equal(t, models.VerdictNOK, behind.Verdict)

	require.Len(t, behind.Sections, 1)
	assert.Equal(t, models.SectionSummary{
		Section: "Peak", Rows: 2, Fails: 1, Verdict: models.VerdictNOK,
	}, behind.Sections[0])
}

// The first configuration must not claim the measurement tables behind
// the second configuration's boundary, and vice versa.
func TestExtractDocumentAssociationBoundary(t *testing.T) {
	report, err := ExtractDocument(rawDocument(), DefaultOptions())
	require.NoError(t, err)

	sample := report.Sample("CRE2-2025-TP002-02")
	front := sample.Config("ER_In front of harness RBW 9kHz")
	behind := sample.Config("ER_Behind harness RBW 120kHz")

	for _, m := range front.Measurements {
		assert.NotEqual(t, models.Number(76), m.Frequency)
		assert.NotEqual(t, models.Number(108), m.Frequency)
	}
	for _, m := range behind.Measurements {
		assert.NotEqual(t, models.Number(30), m.Frequency)
	}
}

func TestExtractDocumentModes(t *testing.T) {
	opts := DefaultOptions()
	opts.Mode = ModeLight
	report, err := ExtractDocument(rawDocument(), opts)
	require.NoError(t, err)
	front := report.Sample("CRE2-2025-TP002-02").Config("ER_In front of harness RBW 9kHz")
	assert.Empty(t, front.Params.Operator)

	opts.Mode = ModeStandard
	report, err = ExtractDocument(rawDocument(), opts)
	require.NoError(t, err)
	front = report.Sample("CRE2-2025-TP002-02").Config("ER_In front of harness RBW 9kHz")
	assert.Equal(t, "NDN/WD", front.Params.Operator)
	assert.Equal(t, "9 kHz", front.Params.RBW)
}

func TestExtractDocumentEmpty(t *testing.T) {
	_, err := ExtractDocument(&models.Document{Source: "empty.docx"}, DefaultOptions())
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestExtractDocumentBoundedWorkers(t *testing.T) {
	opts := DefaultOptions()
	opts.Workers = 1
	report, err := ExtractDocument(rawDocument(), opts)
	require.NoError(t, err)
	require.Len(t, report.Samples, 1)
	assert.Len(t, report.Samples[0].Configs, 2)
}

func TestExtractMissingFile(t *testing.T) {
	_, err := Extract("does-not-exist.docx", DefaultOptions())
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestExtractCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0o644))

	_, err := Extract(path, DefaultOptions())
	var xerr *ExtractionError
	require.ErrorAs(t, err, &xerr)
	assert.Equal(t, path, xerr.Source)
	assert.Equal(t, "load", xerr.Component)
}
