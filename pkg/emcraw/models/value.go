package models

import (
	"encoding/json"
	"strconv"
)

// Value holds one cleaned cell value: either a number or the original
// trimmed text. Cleaning never fails; non-numeric cells (dashes, blanks,
// free text) are carried as text.
type Value struct {
	// Num is the parsed number when Numeric is true.
	Num float64
	// Text is the trimmed original text when Numeric is false.
	Text string
	// Numeric reports whether Num carries the value.
	Numeric bool
}

// Number builds a numeric Value.
func Number(f float64) Value {
	return Value{Num: f, Numeric: true}
}

// TextValue builds a textual Value.
func TextValue(s string) Value {
	return Value{Text: s}
}

// Empty reports whether the value carries neither a number nor text.
func (v Value) Empty() bool {
	return !v.Numeric && v.Text == ""
}

// String renders the value for output: numbers without trailing zeros,
// text verbatim.
func (v Value) String() string {
	if v.Numeric {
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	}
	return v.Text
}

// MarshalJSON encodes numeric values as JSON numbers and everything
// else as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Numeric {
		return json.Marshal(v.Num)
	}
	return json.Marshal(v.Text)
}

// UnmarshalJSON accepts either a JSON number or a string.
func (v *Value) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*v = Number(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*v = TextValue(s)
	return nil
}
