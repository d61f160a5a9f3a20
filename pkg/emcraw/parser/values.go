package parser

import (
	"strconv"
	"strings"

	"github.com/Elietshi1004/emcraw/pkg/emcraw/models"
)

// invisibles removes or flattens characters Word is fond of inserting:
// non-breaking and zero-width spaces, tabs and line breaks.
var invisibles = strings.NewReplacer(
	" ", " ",
	"​", "",
	"\t", " ",
	"\r", " ",
	"\n", " ",
)

// CleanText normalizes a cell text: strips invisible characters and
// collapses runs of whitespace.
func CleanText(s string) string {
	return strings.Join(strings.Fields(invisibles.Replace(s)), " ")
}

// CleanValue cleans a raw cell and attempts a numeric parse. Decimal
// commas are treated as decimal points. Non-numeric cells (dashes,
// blanks, free text) are returned as trimmed text; cleaning never fails.
func CleanValue(s string) models.Value {
	t := strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(strings.ReplaceAll(t, ",", "."), 64); err == nil {
		return models.Number(f)
	}
	return models.TextValue(t)
}
