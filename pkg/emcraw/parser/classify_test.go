package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Elietshi1004/emcraw/pkg/emcraw/models"
)

func block(rows ...[]string) models.Block {
	b := models.Block{}
	for _, r := range rows {
		b.Rows = append(b.Rows, models.Row(r))
	}
	return b
}

func TestClassifyParameterBlock(t *testing.T) {
	b := block(
		[]string{"Sample:", "CRE2-2025-TP002-02"},
		[]string{"Project:", "P-1234"},
		[]string{"Operator:", "NDN/WD"},
		[]string{"Operating mode:", "Mode 3"},
	)
	assert.Equal(t, models.BlockParameter, Classify(b))
}

func TestClassifyMeasurementBlock(t *testing.T) {
	b := block(
		[]string{"Frequency (MHz)", "CISPR.AVG", "Lim.Avg", "CISPR.AVG-Lim.Avg"},
		[]string{"30.000", "40,5", "45,0", "4,5"},
	)
	assert.Equal(t, models.BlockMeasurement, Classify(b))
}

// Limit and margin columns alone already mark a measurement grid.
func TestClassifyMeasurementByLimitHeader(t *testing.T) {
	b := block(
		[]string{"Lim.Peak (dBµV/m)", "Peak (dBµV/m)"},
		[]string{"60,0", "52,1"},
	)
	assert.Equal(t, models.BlockMeasurement, Classify(b))
}

func TestClassifyOther(t *testing.T) {
	b := block(
		[]string{"Some", "free"},
		[]string{"text", "table"},
	)
	assert.Equal(t, models.BlockOther, Classify(b))
}

// A block with fewer than two rows cannot be a measurement grid.
func TestClassifyShortBlock(t *testing.T) {
	b := block([]string{"Frequency (MHz)", "Lim.Avg"})
	assert.Equal(t, models.BlockOther, Classify(b))

	assert.Equal(t, models.BlockOther, Classify(models.Block{}))
}

// A configuration-declaring block is always a parameter block, even when
// its text also mentions a limit.
func TestClassifyNameTestPriority(t *testing.T) {
	b := block(
		[]string{"Name Test:", "CRE2-2025-TP002-02_ER_Limit check RBW 9kHz"},
		[]string{"RBW:", "9 kHz"},
	)
	assert.Equal(t, models.BlockParameter, Classify(b))
}

func TestIsBoundaryHeader(t *testing.T) {
	assert.True(t, IsBoundaryHeader(block(
		[]string{"Sample:", "CRE2-2025-TP002-02"},
		[]string{"Project:", "P-1234"},
	)))
	assert.True(t, IsBoundaryHeader(block(
		[]string{"Operating mode:", "Mode 3"},
	)))
	assert.False(t, IsBoundaryHeader(block(
		[]string{"Frequency (MHz)", "Peak"},
		[]string{"30.000", "52,1"},
	)))
	assert.False(t, IsBoundaryHeader(models.Block{}))
}
