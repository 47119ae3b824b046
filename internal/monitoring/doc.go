// Package monitoring provides Prometheus metrics for calculator sessions.
//
// Metrics Exposed:
//   - calc_operations_total{operation,status}: operations by outcome
//   - calc_evaluation_duration_seconds{operation}: evaluation latency
//   - calc_history_records: size of the history ledger
//   - calc_memory_value: current memory cell value
//
// Collectors live on a private registry. A nil *Metrics is valid and
// records nothing.
package monitoring
