package session

import (
	"strings"
	"time"

	"github.com/GriffinCanCode/calculator/internal/calc"
	"github.com/GriffinCanCode/calculator/internal/logging"
	"github.com/GriffinCanCode/calculator/internal/monitoring"
	mathprovider "github.com/GriffinCanCode/calculator/internal/providers/math"
	"github.com/GriffinCanCode/calculator/internal/providers/math/common"
	"github.com/GriffinCanCode/calculator/internal/providers/math/statistics"
	"github.com/GriffinCanCode/calculator/internal/shared/id"
	"github.com/GriffinCanCode/calculator/internal/types"
)

// OpEvaluate tags records produced by Calculate.
const OpEvaluate = "="

// Session owns one history ledger and one memory cell. The scientific
// operation set is an optional extension attached with WithScientific.
//
// A Session is not safe for concurrent use; it belongs to a single UI.
type Session struct {
	id         id.SessionID
	createdAt  time.Time
	history    *History
	memory     *Memory
	scientific *mathprovider.Provider

	ids     *id.Generator
	logger  *logging.Logger
	metrics *monitoring.Metrics
	now     func() time.Time
}

// Option configures a Session
type Option func(*Session)

// WithScientific attaches the scientific operation set
func WithScientific() Option {
	return func(s *Session) {
		s.scientific = mathprovider.NewProvider(s)
	}
}

// WithLogger sets the session logger
func WithLogger(l *logging.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records operation metrics into m
func WithMetrics(m *monitoring.Metrics) Option {
	return func(s *Session) {
		s.metrics = m
	}
}

// WithClock overrides the time source used for record timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides the ID generator
func WithIDGenerator(g *id.Generator) Option {
	return func(s *Session) {
		if g != nil {
			s.ids = g
		}
	}
}

// Metrics returns the collector the session records into; nil when disabled.
func (s *Session) Metrics() *monitoring.Metrics { return s.metrics }

// New creates a session with an empty ledger and a zero memory cell
func New(opts ...Option) *Session {
	s := &Session{
		history: NewHistory(),
		memory:  &Memory{},
		ids:     id.Default(),
		logger:  logging.NewNop(),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.id = s.ids.NewSessionID()
	s.createdAt = s.now()
	s.logger = s.logger.ForSession(s.id)
	return s
}

// ID returns the session identifier
func (s *Session) ID() id.SessionID { return s.id }

// CreatedAt returns when the session was opened
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// Metadata summarizes the session's current state
func (s *Session) Metadata() types.SessionMetadata {
	return types.SessionMetadata{
		ID:         s.id.String(),
		CreatedAt:  s.createdAt,
		Scientific: s.scientific != nil,
		Records:    s.history.Len(),
		Memory:     s.memory.Recall(),
	}
}

// History returns the session's ledger
func (s *Session) History() *History { return s.history }

// Memory returns the session's memory cell
func (s *Session) Memory() *Memory { return s.memory }

// Scientific returns the scientific extension, if attached
func (s *Session) Scientific() (*mathprovider.Provider, bool) {
	return s.scientific, s.scientific != nil
}

// Calculate sanitizes, evaluates and formats raw input. Blank input yields
// "0" and no record. On success a record tagged "=" is appended; on failure
// the *calc.Error is returned and the ledger is untouched.
func (s *Session) Calculate(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "0", nil
	}

	start := s.now()
	v, err := calc.Evaluate(calc.Sanitize(raw))
	s.metrics.RecordOperation(OpEvaluate, err, s.now().Sub(start))
	if err != nil {
		s.logger.Failure(OpEvaluate, raw, err)
		return "", err
	}

	formatted := calc.FormatScientific(v)
	s.append(common.CalculationResult{
		Value:      v,
		Operation:  OpEvaluate,
		Operands:   []float64{},
		Expression: raw,
	}, formatted)
	return formatted, nil
}

// Evaluate sanitizes and evaluates raw input without touching the ledger
func (s *Session) Evaluate(raw string) (float64, error) {
	return calc.Evaluate(calc.Sanitize(raw))
}

// Basic runs a two-operand operation (+, -, ×, ÷ or their word aliases)
// and formats the value with the basic display policy.
func (s *Session) Basic(op string, a, b float64) (common.CalculationResult, string) {
	operands := []float64{a, b}
	sym, ok := calc.NormalizeOp(op)
	if !ok {
		res := mathprovider.Unsupported(op, operands)
		s.observe(res, time.Duration(0), op)
		return res, ""
	}

	start := s.now()
	v, err := calc.Arithmetic(sym, a, b)
	elapsed := s.now().Sub(start)
	if err != nil {
		res := common.Failure(calc.KindOf(err), sym, operands, err.Error())
		s.observe(res, elapsed, sym)
		return res, ""
	}

	res := common.CalculationResult{
		Value:      v,
		Operation:  sym,
		Operands:   operands,
		Expression: calc.Operand(a) + " " + sym + " " + calc.Operand(b),
	}
	formatted := calc.FormatBasic(v)
	s.append(res, formatted)
	s.observe(res, elapsed, sym)
	return res, formatted
}

// Perform dispatches a scientific operation by tag. Without the scientific
// extension every tag is unsupported.
func (s *Session) Perform(tag string, operands []float64) common.CalculationResult {
	if s.scientific == nil {
		res := mathprovider.Unsupported(tag, operands)
		s.observe(res, 0, tag)
		return res
	}

	start := s.now()
	res := s.scientific.Perform(tag, operands)
	s.observe(res, s.now().Sub(start), tag)
	return res
}

// Constant looks up a named constant through the scientific extension
func (s *Session) Constant(name string) common.CalculationResult {
	if s.scientific == nil {
		res := mathprovider.Unsupported(common.TagConst, nil)
		s.observe(res, 0, common.TagConst)
		return res
	}

	res := s.scientific.Constant(name)
	s.observe(res, 0, common.TagConst)
	return res
}

// Record implements common.Recorder; the scientific extension appends
// its successful results here.
func (s *Session) Record(res common.CalculationResult) {
	s.append(res, calc.FormatScientific(res.Value))
}

// MemoryAdd evaluates raw and adds the value to memory
func (s *Session) MemoryAdd(raw string) error {
	v, err := s.Evaluate(raw)
	if err != nil {
		return err
	}
	s.memory.Add(v)
	s.metrics.SetMemory(s.memory.Recall())
	return nil
}

// MemorySubtract evaluates raw and subtracts the value from memory
func (s *Session) MemorySubtract(raw string) error {
	v, err := s.Evaluate(raw)
	if err != nil {
		return err
	}
	s.memory.Subtract(v)
	s.metrics.SetMemory(s.memory.Recall())
	return nil
}

// MemoryRecall returns the memory value formatted for display
func (s *Session) MemoryRecall() string {
	return calc.FormatScientific(s.memory.Recall())
}

// MemoryClear resets memory to 0
func (s *Session) MemoryClear() {
	s.memory.Clear()
	s.metrics.SetMemory(0)
}

// ClearHistory empties the ledger
func (s *Session) ClearHistory() {
	s.history.Clear()
	s.metrics.SetHistorySize(0)
}

// Summary describes the values recorded in the ledger
func (s *Session) Summary() statistics.Summary {
	return statistics.Summarize(s.history.Values())
}

// Close discards the session's ledger and memory
func (s *Session) Close() {
	s.ClearHistory()
	s.MemoryClear()
	s.logger.Debug("session closed")
}

func (s *Session) append(res common.CalculationResult, formatted string) {
	s.history.Append(Record{
		ID:         s.ids.NewRecordID(),
		Expression: res.Expression,
		Result:     formatted,
		Operation:  res.Operation,
		Operands:   res.Operands,
		Value:      res.Value,
		CreatedAt:  s.now(),
	})
	s.metrics.SetHistorySize(s.history.Len())
	s.logger.Calculation(res.Operation, res.Expression, formatted)
}

func (s *Session) observe(res common.CalculationResult, elapsed time.Duration, operation string) {
	err := res.Err()
	s.metrics.RecordOperation(operation, err, elapsed)
	if err != nil {
		s.logger.Failure(operation, input(res), err)
	}
}

// input renders what a result was computed from. Failures carry no
// expression, so their operands are joined instead.
func input(res common.CalculationResult) string {
	if res.Expression != "" {
		return res.Expression
	}
	parts := make([]string, len(res.Operands))
	for i, v := range res.Operands {
		parts[i] = calc.Operand(v)
	}
	return strings.Join(parts, " ")
}
