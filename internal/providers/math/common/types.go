package common

import (
	"fmt"
	gomath "math"

	"github.com/GriffinCanCode/calculator/internal/calc"
)

// Operation tags recorded in results and history
const (
	TagSqrt      = "√"
	TagPower     = "^"
	TagLog       = "log"
	TagSin       = "sin"
	TagCos       = "cos"
	TagConst     = "const"
	TagFactorial = "!"
)

// CalculationResult is the outcome of a single operation.
// On failure Value is 0 and Error is non-empty.
type CalculationResult struct {
	Value      float64   `json:"value" yaml:"value"`
	Operation  string    `json:"operation" yaml:"operation"`
	Operands   []float64 `json:"operands" yaml:"operands"`
	Expression string    `json:"expression,omitempty" yaml:"expression,omitempty"`
	Error      string    `json:"error,omitempty" yaml:"error,omitempty"`
	Kind       calc.Kind `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// OK reports whether the operation succeeded
func (r CalculationResult) OK() bool {
	return r.Error == ""
}

// Err returns the failure as a *calc.Error, or nil on success
func (r CalculationResult) Err() error {
	if r.OK() {
		return nil
	}
	return &calc.Error{Kind: r.Kind, Msg: r.Error}
}

// Recorder receives every successful result, in order
type Recorder interface {
	Record(result CalculationResult)
}

// RecorderFunc adapts a function to Recorder
type RecorderFunc func(CalculationResult)

// Record calls f(result)
func (f RecorderFunc) Record(result CalculationResult) { f(result) }

// MathOps provides common math helpers shared by every operation group
type MathOps struct {
	Recorder Recorder
}

// Success records and returns a successful result
func (m *MathOps) Success(value float64, operation string, operands []float64, expression string) CalculationResult {
	res := CalculationResult{
		Value:      value,
		Operation:  operation,
		Operands:   operands,
		Expression: expression,
	}
	if m != nil && m.Recorder != nil {
		m.Recorder.Record(res)
	}
	return res
}

// Failure creates a failed result. Nothing is recorded.
func Failure(kind calc.Kind, operation string, operands []float64, message string) CalculationResult {
	if operands == nil {
		operands = []float64{}
	}
	return CalculationResult{
		Value:     0,
		Operation: operation,
		Operands:  operands,
		Error:     message,
		Kind:      kind,
	}
}

// Failuref is Failure with a format string
func Failuref(kind calc.Kind, operation string, operands []float64, format string, args ...interface{}) CalculationResult {
	return Failure(kind, operation, operands, fmt.Sprintf(format, args...))
}

// ValidateNumber checks if a number is finite
func ValidateNumber(x float64, name string) error {
	if gomath.IsNaN(x) {
		return fmt.Errorf("%s is NaN", name)
	}
	if gomath.IsInf(x, 0) {
		return fmt.Errorf("%s is infinite", name)
	}
	return nil
}
