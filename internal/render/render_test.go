package render

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/GriffinCanCode/calculator/internal/calc"
	mathprovider "github.com/GriffinCanCode/calculator/internal/providers/math"
	"github.com/GriffinCanCode/calculator/internal/providers/math/common"
	"github.com/GriffinCanCode/calculator/internal/providers/math/statistics"
	"github.com/GriffinCanCode/calculator/internal/session"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"text", FormatText, true},
		{"JSON", FormatJSON, true},
		{" yaml ", FormatYAML, true},
		{"", FormatText, true},
		{"xml", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextOutput(t *testing.T) {
	t.Run("Answer", func(t *testing.T) {
		var buf bytes.Buffer
		r := New(&buf, FormatText)
		require.NoError(t, r.Answer(NewAnswer("2+3*4", "14", nil)))
		assert.Equal(t, "14\n", buf.String())
	})

	t.Run("Answer error", func(t *testing.T) {
		var buf bytes.Buffer
		r := New(&buf, FormatText)
		_, err := calc.Evaluate("10/0")
		require.NoError(t, r.Answer(NewAnswer("10/0", "", err)))
		assert.Equal(t, "Error: Division by zero: \"10/0\"\n", buf.String())
	})

	t.Run("Operation", func(t *testing.T) {
		var buf bytes.Buffer
		r := New(&buf, FormatText)
		res := mathprovider.NewProvider(nil).Logarithm(100, 10)
		require.NoError(t, r.Operation(res, "2"))
		assert.Equal(t, "log_10(100) = 2\n", buf.String())
	})

	t.Run("Operation error", func(t *testing.T) {
		var buf bytes.Buffer
		r := New(&buf, FormatText)
		res := mathprovider.NewProvider(nil).SquareRoot(-1)
		require.NoError(t, r.Operation(res, ""))
		assert.Equal(t, "Error: Square root of negative number\n", buf.String())
	})

	t.Run("History", func(t *testing.T) {
		s := session.New()
		_, err := s.Calculate("1+1")
		require.NoError(t, err)
		_, err = s.Calculate("2*3")
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, New(&buf, FormatText).History(s.History().List(0)))
		assert.Equal(t, "  1. 1+1 = 2\n  2. 2*3 = 6\n", buf.String())
	})

	t.Run("Empty history", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(&buf, FormatText).History(nil))
		assert.Equal(t, "(no history)\n", buf.String())
	})

	t.Run("Summary", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(&buf, FormatText).Summary(statistics.Summarize([]float64{1, 2, 3})))
		out := buf.String()
		assert.Contains(t, out, "count:  3\n")
		assert.Contains(t, out, "mean:   2\n")
		assert.Contains(t, out, "stdev:  1\n")
	})

	t.Run("Memory", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(&buf, FormatText).Memory(3.5))
		assert.Equal(t, "M = 3.5\n", buf.String())
	})

	t.Run("Service", func(t *testing.T) {
		var buf bytes.Buffer
		def := mathprovider.NewProvider(nil).Definition()
		require.NoError(t, New(&buf, FormatText).Service(def))
		out := buf.String()
		assert.Contains(t, out, def.Name)
		for _, tool := range def.Tools {
			assert.Contains(t, out, tool.Tag)
		}
	})

	t.Run("Counts", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(&buf, FormatText).Counts(map[string]float64{"sqrt/ok": 2, "=/error": 1}))
		assert.Equal(t, "=/error          1\nsqrt/ok          2\n", buf.String())
	})
}

func TestJSONOutput(t *testing.T) {
	t.Run("Answer", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(&buf, FormatJSON).Answer(NewAnswer("1/3", "0.3333333333", nil)))
		assert.JSONEq(t, `{"input":"1/3","result":"0.3333333333"}`, buf.String())
	})

	t.Run("Answer error", func(t *testing.T) {
		var buf bytes.Buffer
		err := &calc.Error{Kind: calc.KindInvalidExpression, Msg: "Invalid expression: empty expression"}
		require.NoError(t, New(&buf, FormatJSON).Answer(NewAnswer("", "", err)))
		assert.JSONEq(t, `{"input":"","error":"Invalid expression: empty expression","kind":"invalid_expression"}`, buf.String())
	})

	t.Run("Operation", func(t *testing.T) {
		var buf bytes.Buffer
		res := mathprovider.NewProvider(nil).Factorial(5)
		require.NoError(t, New(&buf, FormatJSON).Operation(res, "120"))
		assert.JSONEq(t, `{"operation":"!","operands":[5],"expression":"5!","value":120,"display":"120"}`, buf.String())
	})

	t.Run("Non-finite values", func(t *testing.T) {
		var buf bytes.Buffer
		res := common.CalculationResult{
			Value:     math.Inf(1),
			Operation: common.TagSqrt,
			Operands:  []float64{math.Inf(1)},
		}
		require.NoError(t, New(&buf, FormatJSON).Operation(res, "∞"))
		assert.JSONEq(t, `{"operation":"√","operands":["inf"],"value":"inf","display":"∞"}`, buf.String())
	})

	t.Run("History", func(t *testing.T) {
		s := session.New()
		_, err := s.Calculate("6/4")
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, New(&buf, FormatJSON).History(s.History().List(0)))
		assert.Contains(t, buf.String(), `"expression": "6/4"`)
		assert.Contains(t, buf.String(), `"result": "1.5"`)
	})
}

func TestYAMLOutput(t *testing.T) {
	t.Run("Summary", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(&buf, FormatYAML).Summary(statistics.Summarize([]float64{2, 4})))

		var got map[string]interface{}
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.EqualValues(t, 2, got["count"])
		assert.EqualValues(t, 3, got["mean"])
	})

	t.Run("Memory", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(&buf, FormatYAML).Memory(-2.25))

		var got Memory
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, Number(-2.25), got.Value)
		assert.Equal(t, "-2.25", got.Display)
	})

	t.Run("Service", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(&buf, FormatYAML).Service(mathprovider.NewProvider(nil).Definition()))
		assert.Contains(t, buf.String(), "id: math\n")
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteErrors(t *testing.T) {
	for _, f := range []Format{FormatText, FormatJSON, FormatYAML} {
		r := New(failingWriter{}, f)
		assert.Error(t, r.Message("hello"), f)
	}
}
