// Package math provides the scientific operation set of the calculator.
//
// This package is organized into specialized modules:
//   - operations: square root, power, logarithm, factorial, sine and cosine (degrees)
//   - utilities: named constants (pi, e, phi)
//   - common: CalculationResult and the success/failure helpers
//
// The provider is an optional extension: a session without it still
// evaluates plain arithmetic. Every successful call is handed to the
// Recorder passed to NewProvider; failed calls are not.
//
// Example Usage:
//
//	provider := math.NewProvider(ledger)
//	res := provider.Perform("log", []float64{100, 10})
//	// res.Value == 2, res.Expression == "log_10(100)"
package math
