package operations

import (
	"fmt"
	gomath "math"

	"github.com/GriffinCanCode/calculator/internal/calc"
	"github.com/GriffinCanCode/calculator/internal/providers/math/common"
	"github.com/GriffinCanCode/calculator/internal/types"
)

// MaxFactorial is the largest n accepted by Factorial.
const MaxFactorial = 20

// ArithmeticOps handles roots, powers, logarithms and factorials
type ArithmeticOps struct {
	*common.MathOps
}

// GetTools returns arithmetic tool definitions
func (a *ArithmeticOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.sqrt",
			Tag:         "sqrt",
			Name:        "Square Root",
			Description: "Calculate square root of a non-negative number",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Number", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.power",
			Tag:         "pow",
			Name:        "Power",
			Description: "Raise base to the power of exponent (base^exponent)",
			Parameters: []types.Parameter{
				{Name: "base", Type: "number", Description: "Base", Required: true},
				{Name: "exponent", Type: "number", Description: "Exponent", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.log",
			Tag:         "log",
			Name:        "Logarithm",
			Description: "Calculate log of x in the given base (default 10)",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Positive number", Required: true},
				{Name: "base", Type: "number", Description: "Base, positive and not 1 (default: 10)", Required: false},
			},
			Returns: "number",
		},
		{
			ID:          "math.factorial",
			Tag:         "fact",
			Name:        "Factorial",
			Description: "Calculate n! for the integer part of n (0 to 20)",
			Parameters: []types.Parameter{
				{Name: "n", Type: "number", Description: "Non-negative integer, at most 20", Required: true},
			},
			Returns: "number",
		},
	}
}

// SquareRoot calculates √x
func (a *ArithmeticOps) SquareRoot(x float64) common.CalculationResult {
	operands := []float64{x}
	if x < 0 {
		return common.Failure(calc.KindDomain, common.TagSqrt, operands, "Square root of negative number")
	}

	return a.Success(gomath.Sqrt(x), common.TagSqrt, operands, "√"+calc.Operand(x))
}

// Power raises base to exponent
func (a *ArithmeticOps) Power(base, exponent float64) common.CalculationResult {
	operands := []float64{base, exponent}
	if base == 0 && exponent < 0 {
		return common.Failure(calc.KindDomain, common.TagPower, operands, "math domain error")
	}

	result := gomath.Pow(base, exponent)
	finite := common.ValidateNumber(base, "base") == nil && common.ValidateNumber(exponent, "exponent") == nil
	if finite && gomath.IsNaN(result) {
		return common.Failure(calc.KindDomain, common.TagPower, operands, "math domain error")
	}
	if finite && gomath.IsInf(result, 0) {
		return common.Failure(calc.KindDomain, common.TagPower, operands, "math range error")
	}

	expr := fmt.Sprintf("%s^%s", calc.Operand(base), calc.Operand(exponent))
	return a.Success(result, common.TagPower, operands, expr)
}

// Logarithm calculates log_base(x)
func (a *ArithmeticOps) Logarithm(x, base float64) common.CalculationResult {
	operands := []float64{x, base}
	if x <= 0 {
		return common.Failure(calc.KindDomain, common.TagLog, operands, "Logarithm of non-positive number")
	}
	if base <= 0 || base == 1 {
		return common.Failure(calc.KindDomain, common.TagLog, operands, "Invalid logarithm base")
	}

	result := gomath.Log(x) / gomath.Log(base)
	expr := fmt.Sprintf("log_%s(%s)", calc.Operand(base), calc.Operand(x))
	return a.Success(result, common.TagLog, operands, expr)
}

// Factorial calculates n! for the integer part of n
func (a *ArithmeticOps) Factorial(n float64) common.CalculationResult {
	switch {
	case gomath.IsNaN(n):
		return common.Failure(calc.KindDomain, common.TagFactorial, []float64{n}, "cannot convert float NaN to integer")
	case gomath.IsInf(n, 0):
		return common.Failure(calc.KindDomain, common.TagFactorial, []float64{n}, "cannot convert float infinity to integer")
	}

	k := gomath.Trunc(n)
	if k < 0 {
		return common.Failure(calc.KindDomain, common.TagFactorial, []float64{n}, "Factorial not defined for negative numbers")
	}
	if k > MaxFactorial {
		return common.Failure(calc.KindDomain, common.TagFactorial, []float64{n},
			fmt.Sprintf("Factorial too large for computation (max %d!)", MaxFactorial))
	}

	nInt := uint64(k)
	result := uint64(1)
	for i := uint64(2); i <= nInt; i++ {
		result *= i
	}

	return a.Success(float64(result), common.TagFactorial, []float64{k}, fmt.Sprintf("%d!", nInt))
}
