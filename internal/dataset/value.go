package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindNumber
	KindText
	KindDate
	KindBool
)

// Value is a tagged variant representing a single table cell. Exactly one of
// the payload fields is meaningful, selected by Kind.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
	Time time.Time
	Bool bool
}

// Null returns the null cell value.
func Null() Value {
	return Value{Kind: KindNull}
}

// Number returns a numeric cell value.
func Number(f float64) Value {
	return Value{Kind: KindNumber, Num: f}
}

// Text returns a text cell value.
func Text(s string) Value {
	return Value{Kind: KindText, Str: s}
}

// Date returns a date cell value.
func Date(t time.Time) Value {
	return Value{Kind: KindDate, Time: t}
}

// Bool returns a boolean cell value.
func Boolean(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// IsNull reports whether the value is null or a NaN number.
func (v Value) IsNull() bool {
	if v.Kind == KindNull {
		return true
	}
	return v.Kind == KindNumber && math.IsNaN(v.Num)
}

// String returns the canonical text form of the value. Null renders as the
// empty string. The canonical form is what lands in CSV output and what
// de-duplication and sampling key on.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindText:
		return v.Str
	case KindDate:
		if v.Time.Hour() == 0 && v.Time.Minute() == 0 && v.Time.Second() == 0 {
			return v.Time.Format("2006-01-02")
		}
		return v.Time.Format("2006-01-02 15:04:05")
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}

// Equal reports value equality between two cells. Nulls compare equal to
// nulls; values of different kinds are never equal.
func (v Value) Equal(o Value) bool {
	if v.IsNull() || o.IsNull() {
		return v.IsNull() && o.IsNull()
	}
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNumber:
		return v.Num == o.Num
	case KindText:
		return v.Str == o.Str
	case KindDate:
		return v.Time.Equal(o.Time)
	case KindBool:
		return v.Bool == o.Bool
	}
	return true
}

// dateLayouts are the textual date forms the readers and coercion accept.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	time.RFC3339,
}

// ParseNumber attempts a numeric parse of a textual cell, accepting integer
// and floating-point forms. Inf and NaN spellings are rejected so that the
// placeholder vocabulary stays authoritative for "nan".
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseDate attempts to parse a textual cell as a date.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseBool attempts to parse a textual cell as a boolean.
func ParseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}
