package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Elietshi1004/emcraw/pkg/emcraw/models"
)

func TestCleanValue(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Value
	}{
		{"40,5", models.Number(40.5)},
		{"45.0", models.Number(45)},
		{" 44.00 ", models.Number(44)},
		{"30.000", models.Number(30)},
		{"-3,25", models.Number(-3.25)},
		{"120", models.Number(120)},
		{"-", models.TextValue("-")},
		{"", models.TextValue("")},
		{"  N/A ", models.TextValue("N/A")},
		{"Vertical", models.TextValue("Vertical")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CleanValue(tt.input), "input %q", tt.input)
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  Operator:  NDN/WD ", "Operator: NDN/WD"},
		{"a b", "a b"},
		{"zero​width", "zerowidth"},
		{"tabs\tand\nbreaks\r", "tabs and breaks"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CleanText(tt.input), "input %q", tt.input)
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "40.5", models.Number(40.5).String())
	assert.Equal(t, "30", models.Number(30).String())
	assert.Equal(t, "-", models.TextValue("-").String())
	assert.True(t, models.Value{}.Empty())
	assert.False(t, models.Number(0).Empty())
}
