package calculation

import (
	"encoding/json"
	"math"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSafeNumber(t *testing.T) {
	def := d("7")

	tests := []struct {
		name     string
		in       interface{}
		expected string
	}{
		{"nil", nil, "7"},
		{"NaN", math.NaN(), "7"},
		{"positive infinity", math.Inf(1), "7"},
		{"negative infinity", math.Inf(-1), "7"},
		{"float", 12.5, "12.5"},
		{"int", 42, "42"},
		{"int64", int64(-3), "-3"},
		{"uint8", uint8(9), "9"},
		{"numeric string", " 1500.25 ", "1500.25"},
		{"empty string", "", "7"},
		{"garbage string", "abc", "7"},
		{"NaN string", "NaN", "7"},
		{"json number", json.Number("0.035"), "0.035"},
		{"decimal", d("3.3"), "3.3"},
		{"true", true, "1"},
		{"false", false, "0"},
		{"unsupported type", []int{1}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, d(tt.expected), SafeNumber(tt.in, def))
		})
	}
}

func TestSafeInt(t *testing.T) {
	assert.Equal(t, 60, SafeInt(60.9, 0))
	assert.Equal(t, -2, SafeInt(-2.7, 0))
	assert.Equal(t, 65, SafeInt("65", 0))
	assert.Equal(t, 60, SafeInt(nil, 60))
	assert.Equal(t, 60, SafeInt(math.NaN(), 60))
	assert.Equal(t, 0, SafeInt(decimal.Zero, 60))
	assert.Equal(t, 0, SafeInt("1e19", 0), "out of range falls back")
	assert.Equal(t, 60, SafeInt("-9300000000000000000", 60))
	assert.Equal(t, math.MaxInt, SafeInt(strconv.Itoa(math.MaxInt), 0))
}
