package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"50", "0.5", true},
		{"200+50", "200+0.5", true},
		{"8×25", "8×0.25", true},
		{"3÷5", "3÷0.05", true},
		{"7+", "7+", false},
		{"", "", false},
		{"(1+2)", "(1+2)", false},
	}

	for _, tt := range tests {
		got, ok := Percent(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
	}
}

func TestToggleSign(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"3", "-3", true},
		{"-3", "3", true},
		{"5+3", "5+-3", true},
		{"5+-3", "5+3", true},
		{"5-3", "5--3", true},
		{"5--3", "5-3", true},
		{"2×4", "2×-4", true},
		{"2×-4", "2×4", true},
		{"5+", "5+", false},
	}

	for _, tt := range tests {
		got, ok := ToggleSign(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
	}
}

func TestToggleSignEvaluates(t *testing.T) {
	toggled, ok := ToggleSign("10-4")
	assert.True(t, ok)
	v, err := Evaluate(Sanitize(toggled))
	assert.NoError(t, err)
	assert.Equal(t, 14.0, v)
}
