package operations

import (
	gomath "math"

	"github.com/GriffinCanCode/calculator/internal/calc"
	"github.com/GriffinCanCode/calculator/internal/providers/math/common"
	"github.com/GriffinCanCode/calculator/internal/types"
)

// TrigOps handles trigonometric operations on angles in degrees
type TrigOps struct {
	*common.MathOps
}

// GetTools returns trig tool definitions
func (t *TrigOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.sin",
			Tag:         "sin",
			Name:        "Sine",
			Description: "Calculate sine (in degrees)",
			Parameters: []types.Parameter{
				{Name: "angle", Type: "number", Description: "Angle in degrees", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.cos",
			Tag:         "cos",
			Name:        "Cosine",
			Description: "Calculate cosine (in degrees)",
			Parameters: []types.Parameter{
				{Name: "angle", Type: "number", Description: "Angle in degrees", Required: true},
			},
			Returns: "number",
		},
	}
}

// Radians converts degrees to radians
func Radians(degrees float64) float64 {
	return degrees * (gomath.Pi / 180)
}

// Sine calculates sin of an angle given in degrees
func (t *TrigOps) Sine(angle float64) common.CalculationResult {
	return t.Success(gomath.Sin(Radians(angle)), common.TagSin, []float64{angle}, "sin("+calc.Operand(angle)+"°)")
}

// Cosine calculates cos of an angle given in degrees
func (t *TrigOps) Cosine(angle float64) common.CalculationResult {
	return t.Success(gomath.Cos(Radians(angle)), common.TagCos, []float64{angle}, "cos("+calc.Operand(angle)+"°)")
}
