package calc

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatScientific(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"positive infinity", math.Inf(1), "∞"},
		{"negative infinity", math.Inf(-1), "-∞"},
		{"nan", math.NaN(), "NaN"},
		{"zero", 0, "0"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"integer", 14, "14"},
		{"negative integer", -7, "-7"},
		{"threshold integer", 1e15, "1000000000000000"},
		{"large", 1e16, "1e+16"},
		{"large rounded", 1.23456789e20, "1.2345679e+20"},
		{"large negative", -2e16, "-2e+16"},
		{"tiny", 1e-11, "1e-11"},
		{"tiny fraction", 1.5e-12, "1.5e-12"},
		{"tiny negative", -1e-12, "-1e-12"},
		{"smallest fixed", 1e-10, "0.0000000001"},
		{"fraction", 2.5, "2.5"},
		{"negative fraction", -2.5, "-2.5"},
		{"float noise", 0.1 + 0.2, "0.3"},
		{"repeating", 1.0 / 3.0, "0.3333333333"},
		{"mixed", 123456.789, "123456.789"},
		{"rounds up to integer", 0.99999999999, "1"},
		{"pi", math.Pi, "3.1415926536"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatScientific(tt.in))
			assert.Equal(t, tt.want, Format(tt.in, ModeScientific))
		})
	}
}

func TestFormatBasic(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"integer", 5, "5"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"large integer", 1e20, "100000000000000000000"},
		{"fraction", 2.5, "2.5"},
		{"repeating", 1.0 / 3.0, "0.3333333333"},
		{"float noise", 0.1 + 0.2, "0.3"},
		{"large fraction", 1.5e13 + 0.5, "1.50e+13"},
		{"small", 1e-5, "1e-05"},
		{"positive infinity", math.Inf(1), "inf"},
		{"negative infinity", math.Inf(-1), "-inf"},
		{"nan", math.NaN(), "nan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBasic(tt.in))
			assert.Equal(t, tt.want, Format(tt.in, ModeBasic))
		})
	}
}

func TestFormatPoliciesDiffer(t *testing.T) {
	x := 1234567890123.5
	assert.Equal(t, "1234567890123.5", FormatScientific(x))
	assert.Equal(t, "1.23e+12", FormatBasic(x))
}

func TestFormatIsTotal(t *testing.T) {
	inputs := []float64{
		0, math.Copysign(0, -1), math.Inf(1), math.Inf(-1), math.NaN(),
		math.MaxFloat64, -math.MaxFloat64, math.SmallestNonzeroFloat64, 1e-300, 1e300,
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			assert.NotEmpty(t, FormatScientific(in))
			assert.NotEmpty(t, FormatBasic(in))
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	inputs := []float64{
		0, 14, -2.5, 1.0 / 3.0, 2.0 / 3.0, math.Pi, math.E, 123456.789,
		1e15, 1e16, 1.23456789e20, -9.87654321e18, 1e-11, -1e-12, 1e-10, 0.1 + 0.2,
	}
	for _, in := range inputs {
		first := FormatScientific(in)
		parsed, err := strconv.ParseFloat(first, 64)
		require.NoError(t, err, first)
		assert.Equal(t, first, FormatScientific(parsed), "input %v", in)
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "scientific", ModeScientific.String())
	assert.Equal(t, "basic", ModeBasic.String())
}

func TestOperand(t *testing.T) {
	assert.Equal(t, "100", Operand(100))
	assert.Equal(t, "2.5", Operand(2.5))
	assert.Equal(t, "-3", Operand(-3))
	assert.Equal(t, "1e+21", Operand(1e21))
	assert.Equal(t, "inf", Operand(math.Inf(1)))
}
