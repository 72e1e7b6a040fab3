package model

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Float is an optional number that decodes leniently: numbers and numeric
// strings are accepted, anything else ("N/A", "", objects) decodes as absent.
type Float struct {
	Value float64
	Valid bool
}

// F returns a present Float.
func F(v float64) Float { return Float{Value: v, Valid: true} }

// Or returns the value, or def when absent.
func (f Float) Or(def float64) float64 {
	if !f.Valid {
		return def
	}
	return f.Value
}

// MarshalJSON encodes an absent value as null.
func (f Float) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// UnmarshalJSON never fails.
func (f *Float) UnmarshalJSON(b []byte) error {
	*f = Float{}
	b = bytes.TrimSpace(b)
	var s string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
	} else {
		s = string(b)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	*f = Float{Value: v, Valid: true}
	return nil
}

var firstInt = regexp.MustCompile(`\d+`)

// Int is an integer that decodes leniently: a JSON number is truncated and a
// string yields its first run of digits ("2010–2015" is 2010). Anything else decodes as 0.
type Int int

// UnmarshalJSON never fails.
func (i *Int) UnmarshalJSON(b []byte) error {
	*i = 0
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		if m := firstInt.FindString(s); m != "" {
			if v, err := strconv.Atoi(m); err == nil {
				*i = Int(v)
			}
		}
		return nil
	}
	if v, err := strconv.ParseFloat(string(b), 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		*i = Int(v)
	}
	return nil
}

// FirstInt returns the first run of digits in s, or ok=false when there is none.
func FirstInt(s string) (n int, ok bool) {
	m := firstInt.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}
