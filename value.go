package matcalc

import (
	"fmt"
	"math"

	"github.com/npillmayer/matcalc/matrix"
)

// ValueType represents the type of a value.
type ValueType int8

// Value types
const (
	Undefined ValueType = iota
	ScalarType
	MatrixType
)

func (t ValueType) String() string {
	switch t {
	case ScalarType:
		return "scalar"
	case MatrixType:
		return "matrix"
	}
	return "undefined"
}

// --- Value -----------------------------------------------------------------

// Value is an interface for all values which matcalc can handle.
// It is a closed sum type with variants Scalar and Matrix.
//
// Coercion rules: a 1×1 Matrix coerces to a Scalar wherever a scalar is
// required (exponents, divisors, dimension arguments); a Scalar coerces to a
// 1×1 matrix wherever a matrix is required.
type Value interface {
	Self() ValueBase // helper indirection, see type ValueBase
	Type() ValueType // type of the value
	String() string
}

// ValueBase is a helper struct for operations on values.
type ValueBase struct {
	V Value
}

// IsScalar is a predicate: is it a Scalar or a 1×1 Matrix?
func (b ValueBase) IsScalar() bool {
	switch v := b.V.(type) {
	case Scalar:
		return true
	case Matrix:
		return v.M.IsScalar()
	}
	return false
}

// AsScalar coerces a value to a float. Fails for matrices larger than 1×1.
func (b ValueBase) AsScalar() (float64, error) {
	switch v := b.V.(type) {
	case Scalar:
		return float64(v), nil
	case Matrix:
		if v.M.IsScalar() {
			return v.M.At(0, 0), nil
		}
		return 0, fmt.Errorf("%w: scalar expected, have %d×%d matrix",
			matrix.ErrDimensionMismatch, v.M.Rows(), v.M.Cols())
	}
	return 0, fmt.Errorf("%w: scalar expected, have %v", ErrInvalidSyntax, b.V)
}

// AsInt coerces a value to an integer. Fails for non-scalars, for scalars
// with a fractional part and for magnitudes beyond math.MaxInt32.
func (b ValueBase) AsInt() (int, error) {
	f, err := b.AsScalar()
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: have %g", matrix.ErrNotInteger, f)
	}
	if math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %g out of range", matrix.ErrNotInteger, f)
	}
	return int(f), nil
}

// AsMatrix coerces a value to a matrix. Scalars result in 1×1 matrices.
func (b ValueBase) AsMatrix() *matrix.Matrix {
	switch v := b.V.(type) {
	case Scalar:
		return matrix.Scalar(float64(v))
	case Matrix:
		return v.M
	}
	tracer().Errorf("value is not of type matrix: %v", b.V)
	return nil
}

// --- Scalar ----------------------------------------------------------------

// Scalar is a single real number.
type Scalar float64

// Self returns this scalar, wrapped into a ValueBase struct.
func (s Scalar) Self() ValueBase {
	return ValueBase{s}
}

// Type returns ScalarType.
func (s Scalar) Type() ValueType {
	return ScalarType
}

func (s Scalar) String() string {
	return fmt.Sprintf("%g", float64(s))
}

// --- Matrix ----------------------------------------------------------------

// Matrix is a value holding a (non-nil) matrix.
type Matrix struct {
	M *matrix.Matrix
}

// Self returns this matrix, wrapped into a ValueBase struct.
func (m Matrix) Self() ValueBase {
	return ValueBase{m}
}

// Type returns MatrixType.
func (m Matrix) Type() ValueType {
	return MatrixType
}

func (m Matrix) String() string {
	return m.M.String()
}

// FromMatrix wraps a matrix into a value. 1×1 matrices result in a Scalar.
func FromMatrix(m *matrix.Matrix) Value {
	if m.IsScalar() {
		return Scalar(m.At(0, 0))
	}
	return Matrix{M: m}
}
