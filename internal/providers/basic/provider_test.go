package basic

import (
	"testing"

	"github.com/GriffinCanCode/calculator/internal/calc"
	"github.com/GriffinCanCode/calculator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinition(t *testing.T) {
	def := NewProvider().Definition()

	assert.Equal(t, "basic", def.ID)
	assert.Equal(t, types.CategoryArithmetic, def.Category)
	require.Len(t, def.Tools, 4)

	for _, tool := range def.Tools {
		t.Run(tool.Tag, func(t *testing.T) {
			required, total := tool.Arity()
			assert.Equal(t, 2, required)
			assert.Equal(t, 2, total)

			// every tag is an operator alias the session accepts
			_, ok := calc.NormalizeOp(tool.Tag)
			assert.True(t, ok)
		})
	}
}
