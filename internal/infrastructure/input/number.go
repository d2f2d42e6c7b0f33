package input

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a form-style numeric field. It accepts JSON numbers, numeric
// strings, empty strings and null. Anything that is not a finite number
// leaves it unset with a zero Value, the way an empty form field reads.
type Number struct {
	Value float64
	Set   bool
}

// NewNumber returns a set Number.
func NewNumber(v float64) Number {
	return Number{Value: v, Set: true}
}

// ParseNumber parses user text into a Number.
func ParseNumber(raw string) Number {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Number{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Number{}
	}
	return Number{Value: v, Set: true}
}

// Ptr returns nil for an unset Number and a pointer to the value otherwise.
func (n Number) Ptr() *float64 {
	if !n.Set {
		return nil
	}
	v := n.Value
	return &v
}

// UnmarshalJSON implements json.Unmarshaler. It never fails on valid JSON.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		*n = ParseNumber(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*n = ParseNumber(string(data))
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Set {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(n.Value, 'f', -1, 64)), nil
}

// Text is a form-style text field. Numbers are kept as their literal text;
// null, objects, arrays and booleans read as empty.
type Text string

// UnmarshalJSON implements json.Unmarshaler. It never fails on valid JSON.
func (t *Text) UnmarshalJSON(data []byte) error {
	*t = ""
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			*t = Text(s)
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*t = Text(data)
	}
	return nil
}
