package math

import (
	gomath "math"
	"testing"

	"github.com/GriffinCanCode/calculator/internal/calc"
	"github.com/GriffinCanCode/calculator/internal/providers/math/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledger struct {
	records []common.CalculationResult
}

func (l *ledger) Record(r common.CalculationResult) {
	l.records = append(l.records, r)
}

func newTestProvider() (*Provider, *ledger) {
	l := &ledger{}
	return NewProvider(l), l
}

func TestScientificOperations(t *testing.T) {
	t.Run("Square root", func(t *testing.T) {
		p, l := newTestProvider()
		res := p.SquareRoot(16)
		require.True(t, res.OK())
		assert.Equal(t, 4.0, res.Value)
		assert.Equal(t, "√16", res.Expression)
		assert.Equal(t, common.TagSqrt, res.Operation)
		assert.Equal(t, []float64{16}, res.Operands)
		assert.Len(t, l.records, 1)
	})

	t.Run("Square root of negative", func(t *testing.T) {
		p, l := newTestProvider()
		res := p.SquareRoot(-1)
		assert.False(t, res.OK())
		assert.Equal(t, "Square root of negative number", res.Error)
		assert.Equal(t, calc.KindDomain, res.Kind)
		assert.Equal(t, 0.0, res.Value)
		assert.ErrorIs(t, res.Err(), calc.ErrDomain)
		assert.Empty(t, l.records)
	})

	t.Run("Power", func(t *testing.T) {
		p, l := newTestProvider()
		res := p.Power(2, 10)
		require.True(t, res.OK())
		assert.Equal(t, 1024.0, res.Value)
		assert.Equal(t, "2^10", res.Expression)
		assert.Equal(t, []float64{2, 10}, res.Operands)
		assert.Len(t, l.records, 1)

		res = p.Power(2.5, 2)
		assert.Equal(t, "2.5^2", res.Expression)
		assert.Equal(t, 6.25, res.Value)
	})

	t.Run("Power failures", func(t *testing.T) {
		p, l := newTestProvider()
		assert.Equal(t, "math domain error", p.Power(0, -1).Error)
		assert.Equal(t, "math domain error", p.Power(-8, 1.0/3.0).Error)
		assert.Equal(t, "math range error", p.Power(10, 400).Error)
		assert.Empty(t, l.records)
	})

	t.Run("Logarithm", func(t *testing.T) {
		p, l := newTestProvider()
		res := p.Logarithm(100, 10)
		require.True(t, res.OK())
		assert.InDelta(t, 2.0, res.Value, 1e-12)
		assert.Equal(t, "log_10(100)", res.Expression)
		assert.Equal(t, common.TagLog, res.Operation)
		assert.Equal(t, []float64{100, 10}, res.Operands)
		assert.Len(t, l.records, 1)

		res = p.Logarithm(8, 2)
		assert.InDelta(t, 3.0, res.Value, 1e-12)
		assert.Equal(t, "log_2(8)", res.Expression)
	})

	t.Run("Logarithm failures", func(t *testing.T) {
		p, l := newTestProvider()
		assert.Equal(t, "Logarithm of non-positive number", p.Logarithm(0, 10).Error)
		assert.Equal(t, "Logarithm of non-positive number", p.Logarithm(-5, 10).Error)
		assert.Equal(t, "Invalid logarithm base", p.Logarithm(10, 1).Error)
		assert.Equal(t, "Invalid logarithm base", p.Logarithm(10, 0).Error)
		assert.Equal(t, "Invalid logarithm base", p.Logarithm(10, -2).Error)
		assert.Empty(t, l.records)
	})

	t.Run("Trigonometry in degrees", func(t *testing.T) {
		p, l := newTestProvider()
		res := p.Sine(30)
		assert.InDelta(t, 0.5, res.Value, 1e-12)
		assert.Equal(t, "sin(30°)", res.Expression)

		res = p.Cosine(60)
		assert.InDelta(t, 0.5, res.Value, 1e-12)
		assert.Equal(t, "cos(60°)", res.Expression)

		res = p.Sine(90)
		assert.InDelta(t, 1.0, res.Value, 1e-12)
		assert.Len(t, l.records, 3)
	})

	t.Run("Constants", func(t *testing.T) {
		p, l := newTestProvider()
		res := p.Constant("phi")
		require.True(t, res.OK())
		assert.InDelta(t, 1.6180339887, res.Value, 1e-10)
		assert.Equal(t, "constant(phi)", res.Expression)
		assert.Equal(t, common.TagConst, res.Operation)
		assert.Equal(t, []float64{res.Value}, res.Operands)
		require.Len(t, l.records, 1)
		assert.Equal(t, common.TagConst, l.records[0].Operation)

		assert.Equal(t, gomath.Pi, p.Constant("pi").Value)
		assert.Equal(t, gomath.E, p.Constant("e").Value)
	})

	t.Run("Unknown constant", func(t *testing.T) {
		p, l := newTestProvider()
		res := p.Constant("tau")
		assert.Equal(t, "Unknown constant: tau", res.Error)
		assert.Equal(t, calc.KindUnknownConstant, res.Kind)
		assert.Empty(t, res.Operands)
		assert.Empty(t, l.records)
	})

	t.Run("Factorial", func(t *testing.T) {
		p, l := newTestProvider()
		res := p.Factorial(20)
		require.True(t, res.OK())
		assert.Equal(t, float64(2432902008176640000), res.Value)
		assert.Equal(t, "20!", res.Expression)

		res = p.Factorial(0)
		assert.Equal(t, 1.0, res.Value)

		res = p.Factorial(5.9)
		assert.Equal(t, 120.0, res.Value)
		assert.Equal(t, "5!", res.Expression)
		assert.Equal(t, []float64{5}, res.Operands)
		assert.Len(t, l.records, 3)
	})

	t.Run("Factorial failures", func(t *testing.T) {
		p, l := newTestProvider()
		res := p.Factorial(21)
		assert.Equal(t, "Factorial too large for computation (max 20!)", res.Error)
		assert.Equal(t, calc.KindDomain, res.Kind)
		assert.Equal(t, []float64{21}, res.Operands)

		res = p.Factorial(-1)
		assert.Equal(t, "Factorial not defined for negative numbers", res.Error)
		assert.Empty(t, l.records)
	})
}

func TestPerform(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		operands []float64
		want     float64
		expr     string
	}{
		{"sqrt", "sqrt", []float64{9}, 3, "√9"},
		{"log default base", "log", []float64{1000}, 3, "log_10(1000)"},
		{"log explicit base", "log", []float64{8, 2}, 3, "log_2(8)"},
		{"fact truncates", "fact", []float64{4.7}, 24, "4!"},
		{"fact negative fraction truncates to zero", "fact", []float64{-0.5}, 1, "0!"},
		{"pow", "pow", []float64{3, 2}, 9, "3^2"},
		{"cos", "cos", []float64{0}, 1, "cos(0°)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, l := newTestProvider()
			res := p.Perform(tt.tag, tt.operands)
			require.True(t, res.OK(), res.Error)
			assert.InDelta(t, tt.want, res.Value, 1e-12)
			assert.Equal(t, tt.expr, res.Expression)
			assert.Len(t, l.records, 1)
		})
	}
}

func TestPerformFailures(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		operands []float64
		kind     calc.Kind
		msg      string
	}{
		{"sqrt arity", "sqrt", []float64{1, 2}, calc.KindArity, "sqrt requires exactly 1 operand"},
		{"sin arity", "sin", nil, calc.KindArity, "sin requires exactly 1 operand"},
		{"log arity", "log", []float64{1, 2, 3}, calc.KindArity, "log requires 1 or 2 operands"},
		{"log empty", "log", nil, calc.KindArity, "log requires 1 or 2 operands"},
		{"pow arity", "pow", []float64{2}, calc.KindArity, "pow requires exactly 2 operands"},
		{"fact nan", "fact", []float64{gomath.NaN()}, calc.KindArity, "Factorial requires a valid integer input"},
		{"fact inf", "fact", []float64{gomath.Inf(1)}, calc.KindArity, "Factorial requires a valid integer input"},
		{"fact too large", "fact", []float64{21}, calc.KindDomain, "Factorial too large for computation (max 20!)"},
		{"sqrt domain", "sqrt", []float64{-4}, calc.KindDomain, "Square root of negative number"},
		{"unknown", "tan", []float64{1}, calc.KindUnknownOperation, "Operation tan not supported"},
		{"const is not dispatched", "const", []float64{1}, calc.KindUnknownOperation, "Operation const not supported"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, l := newTestProvider()
			res := p.Perform(tt.tag, tt.operands)
			assert.False(t, res.OK())
			assert.Equal(t, tt.kind, res.Kind)
			assert.Equal(t, tt.msg, res.Error)
			assert.Equal(t, 0.0, res.Value)
			assert.Empty(t, l.records)
		})
	}
}

func TestNilRecorder(t *testing.T) {
	p := NewProvider(nil)
	assert.NotPanics(t, func() {
		res := p.SquareRoot(4)
		assert.Equal(t, 2.0, res.Value)
	})
}

func TestDefinition(t *testing.T) {
	p, _ := newTestProvider()
	def := p.Definition()

	assert.Equal(t, "math", def.ID)
	assert.Len(t, def.Tools, 7)

	tool, ok := def.FindTool("log")
	require.True(t, ok)
	required, total := tool.Arity()
	assert.Equal(t, 1, required)
	assert.Equal(t, 2, total)

	for _, tool := range def.Tools {
		if tool.Tag == "const" {
			continue
		}
		res := p.Perform(tool.Tag, nil)
		assert.NotEqual(t, calc.KindUnknownOperation, res.Kind, "tool %s is not dispatched", tool.Tag)
	}
}
