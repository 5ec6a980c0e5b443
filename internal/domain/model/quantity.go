package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

var jsonNull = []byte("null")

// MaxCount is the largest whole-number quantity accepted from input. It keeps
// boxCount * units sums well inside the int range.
const MaxCount = 1_000_000

// Count is a whole-number input field that the operator may leave empty.
// The zero value is empty.
type Count struct {
	value int
	set   bool
}

// CountOf returns a Count holding n.
func CountOf(n int) Count {
	return Count{value: n, set: true}
}

// EmptyCount returns a cleared Count.
func EmptyCount() Count {
	return Count{}
}

// IsEmpty reports whether the field was left empty.
func (c Count) IsEmpty() bool {
	return !c.set
}

// Int returns the stored value, treating empty as 0.
func (c Count) Int() int {
	if !c.set {
		return 0
	}
	return c.value
}

// Positive reports whether the field holds a value greater than zero.
func (c Count) Positive() bool {
	return c.set && c.value > 0
}

// MarshalJSON encodes empty as null.
func (c Count) MarshalJSON() ([]byte, error) {
	if !c.set {
		return jsonNull, nil
	}
	return []byte(strconv.Itoa(c.value)), nil
}

// UnmarshalJSON accepts null, "" or a JSON number.
func (c *Count) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) || bytes.Equal(data, []byte(`""`)) {
		*c = Count{}
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = CountOf(n)
	return nil
}

// Measure is a decimal input field (dimensions, weight) that may be left empty.
type Measure struct {
	value float64
	set   bool
}

// MeasureOf returns a Measure holding v.
func MeasureOf(v float64) Measure {
	return Measure{value: v, set: true}
}

// EmptyMeasure returns a cleared Measure.
func EmptyMeasure() Measure {
	return Measure{}
}

// IsEmpty reports whether the field was left empty.
func (m Measure) IsEmpty() bool {
	return !m.set
}

// Float returns the stored value, treating empty as 0.
func (m Measure) Float() float64 {
	if !m.set {
		return 0
	}
	return m.value
}

// Positive reports whether the field holds a value greater than zero.
func (m Measure) Positive() bool {
	return m.set && m.value > 0
}

// MarshalJSON encodes empty as null.
func (m Measure) MarshalJSON() ([]byte, error) {
	if !m.set {
		return jsonNull, nil
	}
	return []byte(strconv.FormatFloat(m.value, 'f', -1, 64)), nil
}

// UnmarshalJSON accepts null, "" or a JSON number.
func (m *Measure) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) || bytes.Equal(data, []byte(`""`)) {
		*m = Measure{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = MeasureOf(v)
	return nil
}
