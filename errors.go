package matcalc

import (
	"errors"
	"fmt"
)

// Errors surfacing from tokenizing, compiling and executing an expression.
// Failures of linear algebra routines use the sentinels of package matrix.
var (
	// ErrUndefinedName flags a reference to a name not in the symbol table.
	ErrUndefinedName = errors.New("undefined name")

	// ErrInvalidSyntax flags malformed expressions: operand underflow,
	// left-over operands, unbalanced parentheses, wrong argument counts.
	ErrInvalidSyntax = errors.New("invalid expression syntax")

	// ErrLexical flags input characters which do not start any token.
	ErrLexical = errors.New("unrecognized input")

	// ErrInvalidName flags an attempt to store a matrix under a name a user
	// may not use.
	ErrInvalidName = errors.New("invalid matrix name")

	// ErrNoResult flags an attempt to store the last result when there is none.
	ErrNoResult = errors.New("no valid result to store")
)

// EvaluationError is the single error type returned from evaluating an
// expression. It carries the expression and the underlying cause, which may
// be tested with errors.Is.
type EvaluationError struct {
	Expression string
	Err        error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("cannot evaluate %q: %v", e.Expression, e.Err)
}

// Unwrap returns the underlying cause.
func (e *EvaluationError) Unwrap() error {
	return e.Err
}
