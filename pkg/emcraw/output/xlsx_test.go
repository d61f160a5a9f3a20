package output

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteXLSX(path, sampleReport(), DefaultOptions()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{measurementsSheet, summarySheet}, f.GetSheetList())

	rows, err := f.GetRows(measurementsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Columns, rows[0])
	assert.Equal(t, "30.000", rows[1][0])
	assert.Equal(t, "OK", rows[1][7])
	assert.Equal(t, "NOK", rows[2][7])

	summary, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(summary), 6)
	assert.Equal(t, []string{"Sample ID", "CRE2-2025-TP002-02"}, summary[0])
	assert.Equal(t, []string{"Configuration", "ER_In front of harness RBW 9kHz"}, summary[1])
	assert.Equal(t, []string{"Section", "Rows", "Fails", "Verdict"}, summary[2])
	assert.Equal(t, []string{"CISPR.AVG", "1", "0", "OK"}, summary[3])
	assert.Equal(t, []string{"Peak", "1", "1", "NOK"}, summary[4])
	assert.Equal(t, []string{"Global verdict", "NOK"}, summary[5])
}

func TestJSONRoundtrip(t *testing.T) {
	report := sampleReport()

	compact, err := ToJSON(report, false)
	require.NoError(t, err)
	pretty, err := ToJSON(report, true)
	require.NoError(t, err)

	assert.Less(t, len(compact), len(pretty))
	assert.Contains(t, string(compact), `"run_id":"run-1"`)
	assert.Contains(t, string(compact), `"verdict":"NOK"`)
}
