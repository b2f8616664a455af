package core

import (
	"errors"
	"fmt"
)

const DefaultMaxDepth = 256

type ErrorKind int

const (
	NoError ErrorKind = iota
	InvalidStatementShape
	UndefinedVariable
	InvalidExpression
	InvalidToken
	DivisionByZero
	NestingTooDeep
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidStatementShape:
		return "InvalidStatementShape"
	case UndefinedVariable:
		return "UndefinedVariable"
	case InvalidExpression:
		return "InvalidExpression"
	case InvalidToken:
		return "InvalidToken"
	case DivisionByZero:
		return "DivisionByZero"
	case NestingTooDeep:
		return "NestingTooDeep"
	default:
		return "NoError"
	}
}

// Error is the failure of a single statement. Subject holds the offending
// name, token or line depending on Kind.
type Error struct {
	Kind    ErrorKind
	Subject string
	Limit   int
	position
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidStatementShape:
		return "Invalid expression: " + e.Subject
	case UndefinedVariable:
		return "Undefined variable: " + e.Subject
	case InvalidToken:
		return "Invalid token: " + e.Subject
	case DivisionByZero:
		return "Division by zero"
	case NestingTooDeep:
		return fmt.Sprintf("Nesting too deep: exceeds %d", e.Limit)
	default:
		return "Invalid expression"
	}
}

// Column is the 1-based column of the offending token, or 0 when the error
// is not tied to one.
func (e *Error) Column() int {
	return e.col
}

// KindOf reports the kind of err, or NoError when err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return NoError
}

func invalidExpression(tok token) *Error {
	return &Error{Kind: InvalidExpression, position: tok.Pos}
}

type Config struct {
	// maximum number of open groups, and of nested reductions; values
	// below 1 mean DefaultMaxDepth
	MaxDepth int
}

func (c Config) maxDepth() int {
	if c.MaxDepth < 1 {
		return DefaultMaxDepth
	}
	return c.MaxDepth
}
