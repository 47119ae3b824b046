package calc

import (
	"fmt"
	"regexp"
)

// plainNumber matches a single signed decimal literal.
var plainNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// Evaluate computes the value of a sanitized arithmetic expression.
//
// Plain numeric entry is returned directly. Anything else is scanned and
// parsed with a grammar that only knows numbers, the four binary operators,
// unary signs and parentheses:
//
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/') unary)*
//	unary   := ('+' | '-') unary | primary
//	primary := number | '(' expr ')'
//
// Input that was not sanitized is still safe: unknown bytes are rejected by
// the scanner. Division by zero yields ErrDivisionByZero; every other failure
// is ErrInvalidExpression carrying the original text.
func Evaluate(expr string) (float64, error) {
	if plainNumber.MatchString(expr) {
		v, err := parseNumber(expr)
		if err != nil {
			return 0, invalidExpression(expr, err.Error())
		}
		return v, nil
	}

	node, err := Parse(expr)
	if err != nil {
		return 0, err
	}
	return node.Eval(expr)
}

// Node is an arithmetic syntax tree node
type Node interface {
	// Eval computes the node's value; src is the text reported in errors.
	Eval(src string) (float64, error)
	String() string
}

// Literal is a numeric constant
type Literal float64

func (l Literal) Eval(string) (float64, error) { return float64(l), nil }
func (l Literal) String() string              { return fmt.Sprintf("%g", float64(l)) }

// Unary applies a sign to its operand
type Unary struct {
	Op Token
	X  Node
}

func (u *Unary) Eval(src string) (float64, error) {
	v, err := u.X.Eval(src)
	if err != nil {
		return 0, err
	}
	if u.Op == MINUS {
		return -v, nil
	}
	return v, nil
}

func (u *Unary) String() string {
	if u.Op == MINUS {
		return "(-" + u.X.String() + ")"
	}
	return "(+" + u.X.String() + ")"
}

// Binary applies one of + - * / to two operands
type Binary struct {
	Op   Token
	L, R Node
}

func (b *Binary) Eval(src string) (float64, error) {
	// Operator chains parse into left-deep trees; walk the left spine
	// iteratively so long chains do not recurse once per operator.
	spine := []*Binary{b}
	left := b.L
	for {
		lb, ok := left.(*Binary)
		if !ok {
			break
		}
		spine = append(spine, lb)
		left = lb.L
	}

	acc, err := left.Eval(src)
	if err != nil {
		return 0, err
	}
	for i := len(spine) - 1; i >= 0; i-- {
		n := spine[i]
		y, err := n.R.Eval(src)
		if err != nil {
			return 0, err
		}
		if acc, err = apply(n.Op, acc, y, src); err != nil {
			return 0, err
		}
	}
	return acc, nil
}

func apply(op Token, x, y float64, src string) (float64, error) {
	switch op {
	case PLUS:
		return x + y, nil
	case MINUS:
		return x - y, nil
	case STAR:
		return x * y, nil
	case SLASH:
		if y == 0 {
			return 0, divisionByZero(src)
		}
		return x / y, nil
	}
	return 0, invalidExpression(src, "unknown operator "+op.String())
}

func (b *Binary) String() string {
	var op string
	switch b.Op {
	case PLUS:
		op = "+"
	case MINUS:
		op = "-"
	case STAR:
		op = "*"
	case SLASH:
		op = "/"
	}
	return "(" + b.L.String() + " " + op + " " + b.R.String() + ")"
}

// Parse builds the syntax tree for expr without evaluating it
func Parse(expr string) (Node, error) {
	if expr == "" {
		return nil, invalidExpression(expr, "empty expression")
	}

	items, err := scan(expr)
	if err != nil {
		return nil, invalidExpression(expr, err.Error())
	}

	p := &parser{src: expr, items: items}
	node, err := p.expression()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Token != EOF {
		return nil, p.unexpected(tok)
	}
	return node, nil
}

// maxDepth bounds nested signs and parentheses so deep input fails
// cleanly instead of exhausting the stack.
const maxDepth = 1000

type parser struct {
	src   string
	items []Item
	pos   int
	depth int
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > maxDepth {
		return invalidExpression(p.src, "expression nested too deeply")
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

func (p *parser) peek() Item { return p.items[p.pos] }

func (p *parser) next() Item {
	it := p.items[p.pos]
	if it.Token != EOF {
		p.pos++
	}
	return it
}

func (p *parser) unexpected(it Item) error {
	if it.Token == EOF {
		return invalidExpression(p.src, "unexpected end of input")
	}
	return invalidExpression(p.src, fmt.Sprintf("unexpected %s at offset %d", it.Token, it.Pos))
}

func (p *parser) expression() (Node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		switch op := p.peek().Token; op {
		case PLUS, MINUS:
			p.next()
			right, err := p.term()
			if err != nil {
				return nil, err
			}
			left = &Binary{Op: op, L: left, R: right}
		default:
			return left, nil
		}
	}
}

func (p *parser) term() (Node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		switch op := p.peek().Token; op {
		case STAR, SLASH:
			p.next()
			right, err := p.unary()
			if err != nil {
				return nil, err
			}
			left = &Binary{Op: op, L: left, R: right}
		default:
			return left, nil
		}
	}
}

func (p *parser) unary() (Node, error) {
	switch op := p.peek().Token; op {
	case PLUS, MINUS:
		p.next()
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: op, X: x}, nil
	}
	return p.primary()
}

func (p *parser) primary() (Node, error) {
	it := p.next()
	switch it.Token {
	case NUMBER:
		return Literal(it.Value), nil
	case LPAREN:
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()
		x, err := p.expression()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.Token != RPAREN {
			if closing.Token == EOF {
				return nil, invalidExpression(p.src, "missing ')'")
			}
			return nil, p.unexpected(closing)
		}
		return x, nil
	}
	return nil, p.unexpected(it)
}
