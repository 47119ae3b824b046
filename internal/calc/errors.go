package calc

import (
	"errors"
	"fmt"
)

// Kind classifies engine failures.
type Kind string

const (
	KindInvalidExpression Kind = "invalid_expression"
	KindDivisionByZero    Kind = "division_by_zero"
	KindDomain            Kind = "domain_error"
	KindUnknownOperation  Kind = "unknown_operation"
	KindUnknownConstant   Kind = "unknown_constant"
	KindArity             Kind = "arity_error"
)

// Sentinels for errors.Is matching. Only the Kind is compared.
var (
	ErrInvalidExpression = &Error{Kind: KindInvalidExpression}
	ErrDivisionByZero    = &Error{Kind: KindDivisionByZero}
	ErrDomain            = &Error{Kind: KindDomain}
	ErrUnknownOperation  = &Error{Kind: KindUnknownOperation}
	ErrUnknownConstant   = &Error{Kind: KindUnknownConstant}
	ErrArity             = &Error{Kind: KindArity}
)

// Error is the structured failure returned by the engine
type Error struct {
	Kind Kind
	Expr string // original text, when the failure came from evaluation
	Msg  string
}

// Error implements the error interface
func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Expr != "":
		return fmt.Sprintf("%s: %q", e.Msg, e.Expr)
	case e.Msg != "":
		return e.Msg
	default:
		return string(e.Kind)
	}
}

// Is reports whether target carries the same Kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Newf builds an Error of the given kind
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func invalidExpression(expr, msg string) *Error {
	return &Error{Kind: KindInvalidExpression, Expr: expr, Msg: "Invalid expression: " + msg}
}

func divisionByZero(expr string) *Error {
	return &Error{Kind: KindDivisionByZero, Expr: expr, Msg: "Division by zero"}
}

// KindOf extracts the Kind from err, or "" when err is not an engine error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
