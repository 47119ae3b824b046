package render

import (
	"math"
	"strconv"

	"github.com/GriffinCanCode/calculator/internal/calc"
)

// Number is a float64 that survives JSON encoding when non-finite
type Number float64

// MarshalJSON implements json.Marshaler
func (n Number) MarshalJSON() ([]byte, error) {
	v := float64(n)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return []byte(strconv.Quote(calc.Operand(v))), nil
	}
	return []byte(strconv.FormatFloat(v, 'g', -1, 64)), nil
}

func numbers(values []float64) []Number {
	out := make([]Number, len(values))
	for i, v := range values {
		out[i] = Number(v)
	}
	return out
}
