package session

// Memory is the calculator's single accumulator (M+, M-, MR, MC).
type Memory struct {
	value float64
}

// Add adds v to the accumulator
func (m *Memory) Add(v float64) { m.value += v }

// Subtract subtracts v from the accumulator
func (m *Memory) Subtract(v float64) { m.value -= v }

// Recall returns the accumulator
func (m *Memory) Recall() float64 { return m.value }

// Clear resets the accumulator to 0
func (m *Memory) Clear() { m.value = 0 }
