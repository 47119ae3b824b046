package utilities

import (
	gomath "math"
	"sort"

	"github.com/GriffinCanCode/calculator/internal/calc"
	"github.com/GriffinCanCode/calculator/internal/providers/math/common"
	"github.com/GriffinCanCode/calculator/internal/types"
)

var constants = map[string]float64{
	"pi":  gomath.Pi,
	"e":   gomath.E,
	"phi": (1 + gomath.Sqrt(5)) / 2,
}

// ConstantsOps provides named mathematical constants
type ConstantsOps struct {
	*common.MathOps
}

// GetTools returns constant tool definitions
func (c *ConstantsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.const",
			Tag:         "const",
			Name:        "Constant",
			Description: "Get value of a named constant (pi, e, phi)",
			Parameters: []types.Parameter{
				{Name: "name", Type: "string", Description: "Constant name", Required: true},
			},
			Returns: "number",
		},
	}
}

// Constant returns the named constant
func (c *ConstantsOps) Constant(name string) common.CalculationResult {
	value, ok := constants[name]
	if !ok {
		return common.Failuref(calc.KindUnknownConstant, common.TagConst, nil, "Unknown constant: %s", name)
	}
	return c.Success(value, common.TagConst, []float64{value}, "constant("+name+")")
}

// Names lists the known constants in sorted order
func Names() []string {
	names := make([]string, 0, len(constants))
	for name := range constants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
