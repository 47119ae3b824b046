package basic

import (
	"github.com/GriffinCanCode/calculator/internal/calc"
	"github.com/GriffinCanCode/calculator/internal/types"
)

// Provider describes the two-operand arithmetic every session supports
type Provider struct{}

// NewProvider creates a basic arithmetic provider
func NewProvider() *Provider {
	return &Provider{}
}

// Definition returns service metadata for add, sub, mul and div
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:           "basic",
		Name:         "Basic Arithmetic",
		Description:  "Two-operand addition, subtraction, multiplication and division",
		Category:     types.CategoryArithmetic,
		Capabilities: []string{"arithmetic"},
		Tools: []types.Tool{
			tool("add", calc.OpAdd, "Add", "Add two numbers"),
			tool("sub", calc.OpSubtract, "Subtract", "Subtract b from a"),
			tool("mul", calc.OpMultiply, "Multiply", "Multiply two numbers"),
			tool("div", calc.OpDivide, "Divide", "Divide a by b"),
		},
	}
}

func tool(tag, symbol, name, description string) types.Tool {
	return types.Tool{
		ID:          "basic." + tag,
		Tag:         tag,
		Name:        name + " (" + symbol + ")",
		Description: description,
		Parameters: []types.Parameter{
			{Name: "a", Type: "number", Description: "Left operand", Required: true},
			{Name: "b", Type: "number", Description: "Right operand", Required: true},
		},
		Returns: "number",
	}
}
