package render

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/GriffinCanCode/calculator/internal/calc"
	"github.com/GriffinCanCode/calculator/internal/providers/math/common"
	"github.com/GriffinCanCode/calculator/internal/providers/math/statistics"
	"github.com/GriffinCanCode/calculator/internal/session"
	"github.com/GriffinCanCode/calculator/internal/types"
	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
)

// Format selects the output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates an output format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// Answer is the outcome of evaluating one line of input
type Answer struct {
	Input  string `json:"input" yaml:"input"`
	Result string `json:"result,omitempty" yaml:"result,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
	Kind   string `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// NewAnswer builds an Answer from a Calculate result
func NewAnswer(input, result string, err error) Answer {
	a := Answer{Input: input, Result: result}
	if err != nil {
		a.Result = ""
		a.Error = err.Error()
		a.Kind = string(calc.KindOf(err))
	}
	return a
}

// Operation is a rendered CalculationResult
type Operation struct {
	Operation  string   `json:"operation" yaml:"operation"`
	Operands   []Number `json:"operands" yaml:"operands"`
	Expression string   `json:"expression,omitempty" yaml:"expression,omitempty"`
	Value      Number   `json:"value" yaml:"value"`
	Display    string   `json:"display,omitempty" yaml:"display,omitempty"`
	Error      string   `json:"error,omitempty" yaml:"error,omitempty"`
	Kind       string   `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// NewOperation pairs a result with its display string
func NewOperation(res common.CalculationResult, display string) Operation {
	return Operation{
		Operation:  res.Operation,
		Operands:   numbers(res.Operands),
		Expression: res.Expression,
		Value:      Number(res.Value),
		Display:    display,
		Error:      res.Error,
		Kind:       string(res.Kind),
	}
}

// Record is a rendered history entry
type Record struct {
	ID         string    `json:"id" yaml:"id"`
	Expression string    `json:"expression" yaml:"expression"`
	Result     string    `json:"result" yaml:"result"`
	Operation  string    `json:"operation" yaml:"operation"`
	Operands   []Number  `json:"operands" yaml:"operands"`
	Value      Number    `json:"value" yaml:"value"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// Memory is the memory cell's displayed value
type Memory struct {
	Value   Number `json:"value" yaml:"value"`
	Display string `json:"display" yaml:"display"`
}

// Renderer writes values to out in a fixed format
type Renderer struct {
	out    io.Writer
	format Format
}

// New creates a renderer
func New(out io.Writer, format Format) *Renderer {
	if format == "" {
		format = FormatText
	}
	return &Renderer{out: out, format: format}
}

// Format returns the renderer's output format
func (r *Renderer) Format() Format { return r.format }

// Answer writes the outcome of Calculate
func (r *Renderer) Answer(a Answer) error {
	if r.format != FormatText {
		return r.encode(a)
	}
	if a.Error != "" {
		return r.line("Error: " + a.Error)
	}
	return r.line(a.Result)
}

// Operation writes a scientific or basic operation result
func (r *Renderer) Operation(res common.CalculationResult, display string) error {
	op := NewOperation(res, display)
	if r.format != FormatText {
		return r.encode(op)
	}
	if op.Error != "" {
		return r.line("Error: " + op.Error)
	}
	if op.Expression == "" {
		return r.line(display)
	}
	return r.line(op.Expression + " = " + display)
}

// History writes ledger records, oldest first
func (r *Renderer) History(records []session.Record) error {
	rows := make([]Record, len(records))
	for i, rec := range records {
		rows[i] = Record{
			ID:         rec.ID.String(),
			Expression: rec.Expression,
			Result:     rec.Result,
			Operation:  rec.Operation,
			Operands:   numbers(rec.Operands),
			Value:      Number(rec.Value),
			CreatedAt:  rec.CreatedAt,
		}
	}
	if r.format != FormatText {
		return r.encode(rows)
	}

	if len(rows) == 0 {
		return r.line("(no history)")
	}
	var b strings.Builder
	for i, rec := range records {
		fmt.Fprintf(&b, "%3d. %s\n", i+1, rec.String())
	}
	return r.write(b.String())
}

// Summary writes history statistics
func (r *Renderer) Summary(s statistics.Summary) error {
	if r.format != FormatText {
		return r.encode(s)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "count:  %d\n", s.Count)
	if s.Count > 0 {
		fmt.Fprintf(&b, "sum:    %s\n", calc.FormatScientific(s.Sum))
		fmt.Fprintf(&b, "mean:   %s\n", calc.FormatScientific(s.Mean))
		fmt.Fprintf(&b, "median: %s\n", calc.FormatScientific(s.Median))
		fmt.Fprintf(&b, "min:    %s\n", calc.FormatScientific(s.Min))
		fmt.Fprintf(&b, "max:    %s\n", calc.FormatScientific(s.Max))
		fmt.Fprintf(&b, "stdev:  %s\n", calc.FormatScientific(s.Stdev))
	}
	if s.Skipped > 0 {
		fmt.Fprintf(&b, "skipped: %d non-finite\n", s.Skipped)
	}
	return r.write(b.String())
}

// Memory writes the memory cell's value
func (r *Renderer) Memory(v float64) error {
	m := Memory{Value: Number(v), Display: calc.FormatScientific(v)}
	if r.format != FormatText {
		return r.encode(m)
	}
	return r.line("M = " + m.Display)
}

// Service writes a capability description, used for help output
func (r *Renderer) Service(svc types.Service) error {
	if r.format != FormatText {
		return r.encode(svc)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", svc.Name, svc.Description)
	for _, tool := range svc.Tools {
		params := make([]string, len(tool.Parameters))
		for i, p := range tool.Parameters {
			params[i] = p.Name
			if !p.Required {
				params[i] += "?"
			}
		}
		fmt.Fprintf(&b, "  %-6s %-16s %s\n", tool.Tag, strings.Join(params, " "), tool.Description)
	}
	return r.write(b.String())
}

// Counts writes operation counters keyed "operation/status"
func (r *Renderer) Counts(counts map[string]float64) error {
	if r.format != FormatText {
		return r.encode(counts)
	}

	if len(counts) == 0 {
		return r.line("(no operations)")
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%-16s %d\n", k, int64(counts[k]))
	}
	return r.write(b.String())
}

// Message writes a free-form status line. Structured formats wrap it.
func (r *Renderer) Message(msg string) error {
	if r.format != FormatText {
		return r.encode(map[string]string{"message": msg})
	}
	return r.line(msg)
}

func (r *Renderer) encode(v interface{}) error {
	var (
		data []byte
		err  error
	)
	switch r.format {
	case FormatJSON:
		data, err = sonic.MarshalIndent(v, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case FormatYAML:
		data, err = yaml.Marshal(v)
		if err == nil {
			data = append([]byte("---\n"), data...)
		}
	default:
		return fmt.Errorf("unsupported output format %q", r.format)
	}
	if err != nil {
		return fmt.Errorf("%s encoding error: %w", r.format, err)
	}
	_, err = r.out.Write(data)
	return err
}

func (r *Renderer) line(s string) error {
	return r.write(s + "\n")
}

func (r *Renderer) write(s string) error {
	_, err := io.WriteString(r.out, s)
	return err
}
