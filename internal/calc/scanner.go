package calc

import (
	"errors"
	"fmt"
	"strconv"
)

// Token is the lexical class of a scanned item
type Token int

const (
	EOF Token = iota
	NUMBER
	PLUS
	MINUS
	STAR
	SLASH
	LPAREN
	RPAREN
)

func (t Token) String() string {
	switch t {
	case EOF:
		return "end of input"
	case NUMBER:
		return "number"
	case PLUS:
		return "'+'"
	case MINUS:
		return "'-'"
	case STAR:
		return "'*'"
	case SLASH:
		return "'/'"
	case LPAREN:
		return "'('"
	case RPAREN:
		return "')'"
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// Item is a scanned token with its source text and byte offset.
type Item struct {
	Token Token
	Value float64 // set for NUMBER
	Text  string
	Pos   int
}

// scan splits an expression into items. Anything outside the arithmetic
// alphabet is rejected here, so the parser never sees identifiers.
func scan(src string) ([]Item, error) {
	items := make([]Item, 0, len(src)/2+1)

	for i := 0; i < len(src); {
		c := src[i]
		switch c {
		case '+':
			items = append(items, Item{Token: PLUS, Text: "+", Pos: i})
			i++
		case '-':
			items = append(items, Item{Token: MINUS, Text: "-", Pos: i})
			i++
		case '*':
			items = append(items, Item{Token: STAR, Text: "*", Pos: i})
			i++
		case '/':
			items = append(items, Item{Token: SLASH, Text: "/", Pos: i})
			i++
		case '(':
			items = append(items, Item{Token: LPAREN, Text: "(", Pos: i})
			i++
		case ')':
			items = append(items, Item{Token: RPAREN, Text: ")", Pos: i})
			i++
		default:
			if !isDigit(c) && c != '.' {
				return nil, fmt.Errorf("unexpected character %q at offset %d", c, i)
			}
			start := i
			digits, dots := 0, 0
			for i < len(src) && (isDigit(src[i]) || src[i] == '.') {
				if src[i] == '.' {
					dots++
				} else {
					digits++
				}
				i++
			}
			text := src[start:i]
			if digits == 0 || dots > 1 {
				return nil, fmt.Errorf("malformed number %q at offset %d", text, start)
			}
			v, err := parseNumber(text)
			if err != nil {
				return nil, fmt.Errorf("malformed number %q at offset %d", text, start)
			}
			items = append(items, Item{Token: NUMBER, Value: v, Text: text, Pos: start})
		}
	}

	return append(items, Item{Token: EOF, Pos: len(src)}), nil
}

// parseNumber accepts out-of-range literals as ±Inf, like float64 overflow elsewhere.
func parseNumber(text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return v, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
