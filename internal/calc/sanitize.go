package calc

import (
	"strings"
	"unicode"
)

var glyphs = strings.NewReplacer("×", "*", "÷", "/")

// Sanitize normalizes raw input into the restricted expression alphabet.
// Multiplication and division glyphs become '*' and '/', whitespace is
// removed, and every character outside [0-9+\-*/().] is dropped. It never
// fails; malformed input surfaces later as an evaluation error.
func Sanitize(raw string) string {
	raw = glyphs.Replace(raw)

	var sb strings.Builder
	sb.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		if allowed(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func allowed(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	switch r {
	case '+', '-', '*', '/', '(', ')', '.':
		return true
	}
	return false
}
