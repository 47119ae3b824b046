package math

import (
	"fmt"
	gomath "math"

	"github.com/GriffinCanCode/calculator/internal/calc"
	"github.com/GriffinCanCode/calculator/internal/providers/math/common"
	"github.com/GriffinCanCode/calculator/internal/providers/math/operations"
	"github.com/GriffinCanCode/calculator/internal/providers/math/utilities"
	"github.com/GriffinCanCode/calculator/internal/types"
)

// Provider implements the scientific operation set
type Provider struct {
	arithmetic *operations.ArithmeticOps
	trig       *operations.TrigOps
	constants  *utilities.ConstantsOps
}

// NewProvider creates a math provider that reports successful results to rec.
// rec may be nil.
func NewProvider(rec common.Recorder) *Provider {
	ops := &common.MathOps{Recorder: rec}

	return &Provider{
		arithmetic: &operations.ArithmeticOps{MathOps: ops},
		trig:       &operations.TrigOps{MathOps: ops},
		constants:  &utilities.ConstantsOps{MathOps: ops},
	}
}

// Definition returns service metadata with all module tools
func (m *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, m.arithmetic.GetTools()...)
	tools = append(tools, m.trig.GetTools()...)
	tools = append(tools, m.constants.GetTools()...)

	return types.Service{
		ID:          "math",
		Name:        "Scientific Operations",
		Description: "Roots, powers, logarithms, trigonometry (degrees), factorials and constants",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"arithmetic",
			"trigonometry",
			"constants",
		},
		Tools: tools,
	}
}

// SquareRoot calculates √x
func (m *Provider) SquareRoot(x float64) common.CalculationResult {
	return m.arithmetic.SquareRoot(x)
}

// Power raises base to exponent
func (m *Provider) Power(base, exponent float64) common.CalculationResult {
	return m.arithmetic.Power(base, exponent)
}

// Logarithm calculates log_base(x)
func (m *Provider) Logarithm(x, base float64) common.CalculationResult {
	return m.arithmetic.Logarithm(x, base)
}

// Sine calculates sin of an angle in degrees
func (m *Provider) Sine(angle float64) common.CalculationResult {
	return m.trig.Sine(angle)
}

// Cosine calculates cos of an angle in degrees
func (m *Provider) Cosine(angle float64) common.CalculationResult {
	return m.trig.Cosine(angle)
}

// Factorial calculates n! for the integer part of n
func (m *Provider) Factorial(n float64) common.CalculationResult {
	return m.arithmetic.Factorial(n)
}

// Constant returns a named constant (pi, e, phi)
func (m *Provider) Constant(name string) common.CalculationResult {
	return m.constants.Constant(name)
}

// Perform routes an operation tag and its operands to the matching method.
// Arity is checked before dispatch.
func (m *Provider) Perform(tag string, operands []float64) common.CalculationResult {
	switch tag {
	case "sqrt", "sin", "cos", "fact":
		if len(operands) != 1 {
			return common.Failuref(calc.KindArity, tag, operands, "%s requires exactly 1 operand", tag)
		}
	case "log":
		switch len(operands) {
		case 1:
			operands = []float64{operands[0], 10}
		case 2:
		default:
			return common.Failure(calc.KindArity, tag, operands, "log requires 1 or 2 operands")
		}
	case "pow":
		if len(operands) != 2 {
			return common.Failure(calc.KindArity, tag, operands, "pow requires exactly 2 operands")
		}
	default:
		return unsupported(tag, operands)
	}

	switch tag {
	case "sqrt":
		return m.SquareRoot(operands[0])
	case "sin":
		return m.Sine(operands[0])
	case "cos":
		return m.Cosine(operands[0])
	case "log":
		return m.Logarithm(operands[0], operands[1])
	case "pow":
		return m.Power(operands[0], operands[1])
	case "fact":
		n := operands[0]
		if gomath.IsNaN(n) || gomath.IsInf(n, 0) {
			return common.Failure(calc.KindArity, tag, operands, "Factorial requires a valid integer input")
		}
		return m.Factorial(gomath.Trunc(n))
	}
	return unsupported(tag, operands)
}

func unsupported(tag string, operands []float64) common.CalculationResult {
	return common.Failure(calc.KindUnknownOperation, tag, operands, fmt.Sprintf("Operation %s not supported", tag))
}

// Unsupported is the result returned for tags no provider handles
func Unsupported(tag string, operands []float64) common.CalculationResult {
	return unsupported(tag, operands)
}
