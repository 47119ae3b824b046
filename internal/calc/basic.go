package calc

// Basic operation symbols, as shown in history expressions.
const (
	OpAdd      = "+"
	OpSubtract = "-"
	OpMultiply = "×"
	OpDivide   = "÷"
)

// NormalizeOp maps keyboard and word aliases onto the basic operation symbols.
func NormalizeOp(op string) (string, bool) {
	switch op {
	case OpAdd, "add":
		return OpAdd, true
	case OpSubtract, "sub", "subtract":
		return OpSubtract, true
	case OpMultiply, "*", "mul", "multiply":
		return OpMultiply, true
	case OpDivide, "/", "div", "divide":
		return OpDivide, true
	}
	return "", false
}

// Arithmetic applies a basic two-operand operation
func Arithmetic(op string, a, b float64) (float64, error) {
	sym, ok := NormalizeOp(op)
	if !ok {
		return 0, Newf(KindUnknownOperation, "Operation %s not supported", op)
	}

	switch sym {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	default:
		if b == 0 {
			return 0, &Error{Kind: KindDivisionByZero, Msg: "Cannot divide by zero"}
		}
		return a / b, nil
	}
}
