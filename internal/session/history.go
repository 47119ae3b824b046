package session

import (
	"time"

	"github.com/GriffinCanCode/calculator/internal/shared/id"
)

// Record is one entry in the history ledger. Records are never mutated
// after they are appended.
type Record struct {
	ID         id.RecordID `json:"id" yaml:"id"`
	Expression string      `json:"expression" yaml:"expression"`
	Result     string      `json:"result" yaml:"result"`
	Operation  string      `json:"operation" yaml:"operation"`
	Operands   []float64   `json:"operands" yaml:"operands"`
	Value      float64     `json:"value" yaml:"value"`
	CreatedAt  time.Time   `json:"created_at" yaml:"created_at"`
}

// String renders the record the way the history display shows it
func (r Record) String() string {
	return r.Expression + " = " + r.Result
}

// History is an append-only ledger of calculations, most recent last.
// It has no capacity bound and does not deduplicate.
type History struct {
	records []Record
}

// NewHistory creates an empty ledger
func NewHistory() *History {
	return &History{}
}

// Append adds a record to the end of the ledger
func (h *History) Append(r Record) {
	r.Operands = cloneOperands(r.Operands)
	h.records = append(h.records, r)
}

// List returns the most recent limit records in order, oldest first.
// limit <= 0 returns every record. The returned slice is a copy.
func (h *History) List(limit int) []Record {
	start := 0
	if limit > 0 && limit < len(h.records) {
		start = len(h.records) - limit
	}

	out := make([]Record, len(h.records)-start)
	for i, r := range h.records[start:] {
		r.Operands = cloneOperands(r.Operands)
		out[i] = r
	}
	return out
}

// Clear truncates the ledger to empty
func (h *History) Clear() {
	h.records = nil
}

// Len returns the number of records
func (h *History) Len() int {
	return len(h.records)
}

// Values returns the numeric value of every record, oldest first
func (h *History) Values() []float64 {
	values := make([]float64, len(h.records))
	for i, r := range h.records {
		values[i] = r.Value
	}
	return values
}

func cloneOperands(ops []float64) []float64 {
	if ops == nil {
		return []float64{}
	}
	out := make([]float64, len(ops))
	copy(out, ops)
	return out
}
