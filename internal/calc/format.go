package calc

import (
	"math"
	"strconv"
	"strings"
)

// Mode selects a display policy. The two policies use different
// thresholds and precision and are not interchangeable.
type Mode int

const (
	// ModeScientific is used for evaluated expressions, memory and scientific operations.
	ModeScientific Mode = iota
	// ModeBasic is used for two-operand basic arithmetic.
	ModeBasic
)

func (m Mode) String() string {
	if m == ModeBasic {
		return "basic"
	}
	return "scientific"
}

// Format renders num under the given policy. It never fails.
func Format(num float64, mode Mode) string {
	if mode == ModeBasic {
		return FormatBasic(num)
	}
	return FormatScientific(num)
}

// FormatScientific renders num for the expression display.
func FormatScientific(num float64) string {
	switch {
	case math.IsInf(num, 1):
		return "∞"
	case math.IsInf(num, -1):
		return "-∞"
	case math.IsNaN(num):
		return "NaN"
	}

	abs := math.Abs(num)
	if abs > 1e15 || (abs > 0 && abs < 1e-10) {
		return strconv.FormatFloat(num, 'g', 8, 64)
	}

	if num == math.Trunc(num) {
		return integer(num)
	}

	formatted := strconv.FormatFloat(num, 'f', 10, 64)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimSuffix(formatted, ".")
	if formatted == "" || formatted == "-" || formatted == "-0" {
		return "0"
	}
	return formatted
}

// FormatBasic renders num for the basic two-operand calculator.
func FormatBasic(num float64) string {
	switch {
	case math.IsInf(num, 1):
		return "inf"
	case math.IsInf(num, -1):
		return "-inf"
	case math.IsNaN(num):
		return "nan"
	}

	if num == math.Trunc(num) {
		return integer(num)
	}
	if math.Abs(num) > 1e12 {
		return strconv.FormatFloat(num, 'e', 2, 64)
	}
	return strconv.FormatFloat(num, 'g', 10, 64)
}

// integer renders an integral float exactly, without a sign on zero.
func integer(num float64) string {
	if num == 0 {
		return "0"
	}
	return strconv.FormatFloat(num, 'f', 0, 64)
}

// Operand renders an operand for expression strings such as "log_10(100)".
func Operand(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	if math.Abs(v) >= 1e21 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
