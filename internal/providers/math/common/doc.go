// Package common holds the result type and helpers shared by the math
// operation groups.
//
// Every operation returns a CalculationResult rather than an error:
//   - Success fills Value, Operation, Operands and Expression and hands the
//     result to the configured Recorder (the session's history ledger)
//   - Failure fills Error and Kind, leaves Value at 0 and records nothing
//
// Example Usage:
//
//	ops := &common.MathOps{Recorder: common.RecorderFunc(func(r common.CalculationResult) {
//		fmt.Println(r.Expression, r.Value)
//	})}
//	res := ops.Success(4, common.TagSqrt, []float64{16}, "√16")
package common
