package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors of the linear algebra routines. Routines return them wrapped
// with an operation tag; test with errors.Is.
var (
	// ErrBadShape flags a requested shape with rows < 1 or cols < 1, or a
	// ragged input grid.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch flags operands with incompatible dimensions.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare flags a non-square matrix where a square one is required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular flags a matrix with determinant 0 which was to be inverted.
	ErrSingular = errors.New("matrix: matrix is singular")

	// ErrDivisionByZero flags a division by a zero scalar or element.
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrNotInteger flags a non-integral exponent or dimension argument.
	ErrNotInteger = errors.New("matrix: integer argument required")
)

// Operation tags for error wrapping.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opDiv      = "Div"
	opHadamard = "Hadamard"
	opDet      = "Det"
	opMinor    = "Minor"
	opCofactor = "Cofactor"
	opAdjoint  = "Adjoint"
	opInverse  = "Inverse"
	opTrace    = "Trace"
	opPower    = "Power"
	opDot      = "Dot"
	opKron     = "Kron"
	opIdentity = "Identity"
	opZeros    = "Zeros"
	opFromRows = "FromRows"
)

// matrixErrorf wraps err with an operation tag, keeping err visible to errors.Is.
func matrixErrorf(tag string, err error, format string, args ...interface{}) error {
	if format == "" {
		return fmt.Errorf("%s: %w", tag, err)
	}
	return fmt.Errorf("%s: %w: %s", tag, err, fmt.Sprintf(format, args...))
}
