package output

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elietshi1004/emcraw/pkg/emcraw/models"
)

func sampleReport() *models.Report {
	pass := sampleMeasurement()
	fail := sampleMeasurement()
	fail.Frequency = models.Number(108)
	fail.Detector = models.DetectorPeak
	fail.Measure = models.Number(63.4)
	fail.Limit = models.Number(60)
	fail.Margin = models.Number(-3.4)
	fail.Conformity = models.VerdictNOK

	return &models.Report{
		RunID:  "run-1",
		Source: "report.docx",
		Samples: []*models.SampleResult{{
			SampleID: "CRE2-2025-TP002-02",
			Configs: []*models.ConfigResult{{
				Configuration: models.Configuration{
					SampleID: "CRE2-2025-TP002-02",
					Name:     "ER_In front of harness RBW 9kHz",
				},
				Measurements: []models.Measurement{pass, fail},
				Sections: []models.SectionSummary{
					{Section: "CISPR.AVG", Rows: 1, Fails: 0, Verdict: models.VerdictOK},
					{Section: "Peak", Rows: 1, Fails: 1, Verdict: models.VerdictNOK},
				},
				Verdict: models.VerdictNOK,
			}},
		}},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleReport(), DefaultOptions()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, Columns, records[0])
	assert.Equal(t, "30.000", records[1][0])
	assert.Equal(t, "OK", records[1][7])
	assert.Equal(t, "108.000", records[2][0])
	assert.Equal(t, "-3.40", records[2][5])
	assert.Equal(t, "NOK", records[2][7])
}

func TestWriteCSVEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, &models.Report{}, DefaultOptions()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, Columns, records[0])
}
