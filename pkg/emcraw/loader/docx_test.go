package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tabmodel "github.com/tsawler/tabula/model"

	"github.com/Elietshi1004/emcraw/pkg/emcraw/models"
)

func TestFromTables(t *testing.T) {
	first := tabmodel.NewTable(2, 3)
	require.NoError(t, first.SetCell(0, 0, tabmodel.Cell{Text: "Frequency (MHz)"}))
	require.NoError(t, first.SetCell(0, 1, tabmodel.Cell{Text: "CISPR.AVG"}))
	require.NoError(t, first.SetCell(0, 2, tabmodel.Cell{Text: "Lim.Avg"}))
	require.NoError(t, first.SetCell(1, 0, tabmodel.Cell{Text: "30.000"}))
	require.NoError(t, first.SetCell(1, 1, tabmodel.Cell{Text: "40,5"}))
	require.NoError(t, first.SetCell(1, 2, tabmodel.Cell{Text: "45,0"}))

	second := tabmodel.NewTable(1, 2)
	require.NoError(t, second.SetCell(0, 0, tabmodel.Cell{Text: "Name Test:"}))
	require.NoError(t, second.SetCell(0, 1, tabmodel.Cell{Text: " CRE2-2025-TP002-02_ER "}))

	doc := FromTables("report.docx", []*tabmodel.Table{first, second})
	assert.Equal(t, "report.docx", doc.Source)
	require.Len(t, doc.Blocks, 2)

	assert.Equal(t, models.Row{"Frequency (MHz)", "CISPR.AVG", "Lim.Avg"}, doc.Blocks[0].Header())
	assert.Equal(t, models.Row{"30.000", "40,5", "45,0"}, doc.Blocks[0].Rows[1])
	// Cell text is preserved verbatim; trimming is the parser's job.
	assert.Equal(t, " CRE2-2025-TP002-02_ER ", doc.Blocks[1].Rows[0].Cell(1))
}

func TestFromTablesEmpty(t *testing.T) {
	doc := FromTables("empty.docx", nil)
	assert.Equal(t, "empty.docx", doc.Source)
	assert.Empty(t, doc.Blocks)
}

func TestLoadDocxMissingFile(t *testing.T) {
	_, err := LoadDocx("no-such-file.docx")
	assert.Error(t, err)
}
