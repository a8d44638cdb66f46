package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{name: "integer", input: "42", want: 42, ok: true},
		{name: "float", input: "3.14", want: 3.14, ok: true},
		{name: "negative", input: "-7.5", want: -7.5, ok: true},
		{name: "scientific", input: "1e3", want: 1000, ok: true},
		{name: "padded", input: " 12 ", want: 12, ok: true},
		{name: "empty", input: "", ok: false},
		{name: "word", input: "abc", ok: false},
		{name: "nan spelling rejected", input: "NaN", ok: false},
		{name: "inf rejected", input: "Inf", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumber(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2020-01-02")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), got)

	_, ok = ParseDate("not a date")
	assert.False(t, ok)

	got, ok = ParseDate("2020-01-02 13:30:00")
	assert.True(t, ok)
	assert.Equal(t, 13, got.Hour())
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{name: "null", value: Null(), want: ""},
		{name: "integer-valued number", value: Number(3), want: "3"},
		{name: "fractional number", value: Number(1.5), want: "1.5"},
		{name: "text", value: Text("hello"), want: "hello"},
		{name: "date", value: Date(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)), want: "2020-01-02"},
		{name: "datetime", value: Date(time.Date(2020, 1, 2, 13, 30, 0, 0, time.UTC)), want: "2020-01-02 13:30:00"},
		{name: "bool", value: Boolean(true), want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestValueEqual(t *testing.T) {
	assert.True(t, Null().Equal(Null()))
	assert.True(t, Number(2).Equal(Number(2)))
	assert.False(t, Number(2).Equal(Text("2")), "kinds differ")
	assert.False(t, Number(2).Equal(Null()))
	assert.True(t, Text("x").Equal(Text("x")))

	d := time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, Date(d).Equal(Date(d)))
	assert.False(t, Date(d).Equal(Date(d.AddDate(0, 0, 1))))
}
