// Package calc is the expression core of the calculator.
//
// It turns raw user text into a displayed result in three steps:
//   - Sanitize: maps × and ÷ to * and /, drops whitespace and anything outside [0-9+\-*/().]
//   - Evaluate: plain numbers take a fast path, everything else goes through a
//     recursive-descent parser that only understands arithmetic
//   - Format: renders a float64 under the scientific or basic display policy
//
// Failures are *Error values classified by Kind; compare them with errors.Is
// against ErrInvalidExpression, ErrDivisionByZero and the other sentinels.
//
// Example Usage:
//
//	v, err := calc.Evaluate(calc.Sanitize("2 + 3 × 4"))
//	if err != nil {
//		return err
//	}
//	fmt.Println(calc.Format(v, calc.ModeScientific)) // 14
package calc
