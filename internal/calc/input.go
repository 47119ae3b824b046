package calc

import (
	"strconv"
	"strings"
)

// lastOperand splits raw into everything before its trailing operand and the
// operand itself. Operators are + - * / × ÷ and parentheses.
func lastOperand(raw string) (head, operand string) {
	i := strings.LastIndexAny(raw, "+-*/×÷()")
	if i < 0 {
		return "", raw
	}
	// × and ÷ are multi-byte; skip the whole rune.
	_, size := firstRune(raw[i:])
	return raw[:i+size], raw[i+size:]
}

func firstRune(s string) (rune, int) {
	for _, r := range s {
		return r, len(string(r))
	}
	return 0, 0
}

// Percent divides the trailing operand of raw by 100. ok is false, and raw
// is returned unchanged, when there is no numeric trailing operand.
func Percent(raw string) (string, bool) {
	head, operand := lastOperand(raw)
	if operand == "" {
		return raw, false
	}
	v, err := strconv.ParseFloat(operand, 64)
	if err != nil {
		return raw, false
	}
	return head + FormatScientific(v/100), true
}

// ToggleSign negates the trailing operand of raw, removing a unary minus
// when one is already present.
func ToggleSign(raw string) (string, bool) {
	head, operand := lastOperand(raw)
	if operand == "" {
		return raw, false
	}

	if strings.HasSuffix(head, "-") && isUnaryPosition(head[:len(head)-1]) {
		return head[:len(head)-1] + operand, true
	}
	return head + "-" + operand, true
}

// isUnaryPosition reports whether a '-' following before would be a sign
// rather than a subtraction.
func isUnaryPosition(before string) bool {
	if before == "" {
		return true
	}
	return strings.HasSuffix(before, "+") || strings.HasSuffix(before, "-") ||
		strings.HasSuffix(before, "*") || strings.HasSuffix(before, "/") ||
		strings.HasSuffix(before, "×") || strings.HasSuffix(before, "÷") ||
		strings.HasSuffix(before, "(")
}
