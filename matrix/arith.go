package matrix

import "math"

// Add returns a + b. Operands must have the same dimensions.
func Add(a, b *Matrix) (*Matrix, error) {
	if !a.SameShape(b) {
		return nil, matrixErrorf(opAdd, ErrDimensionMismatch,
			"%d×%d + %d×%d", a.rows, a.cols, b.rows, b.cols)
	}
	return zipWith(a, b, func(x, y float64) float64 { return x + y }), nil
}

// Sub returns a - b. Operands must have the same dimensions.
func Sub(a, b *Matrix) (*Matrix, error) {
	if !a.SameShape(b) {
		return nil, matrixErrorf(opSub, ErrDimensionMismatch,
			"%d×%d - %d×%d", a.rows, a.cols, b.rows, b.cols)
	}
	return zipWith(a, b, func(x, y float64) float64 { return x - y }), nil
}

// Mul returns the matrix product a·b. If either operand is 1×1 it is
// broadcast as a scalar factor; otherwise a.Cols() must equal b.Rows().
func Mul(a, b *Matrix) (*Matrix, error) {
	switch {
	case a.IsScalar() && b.IsScalar():
		return Scalar(a.data[0] * b.data[0]), nil
	case a.IsScalar():
		return Scale(b, a.data[0]), nil
	case b.IsScalar():
		return Scale(a, b.data[0]), nil
	}
	if a.cols != b.rows {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch,
			"%d×%d · %d×%d", a.rows, a.cols, b.rows, b.cols)
	}
	if err := checkShape(opMul, a.rows, b.cols); err != nil {
		return nil, err
	}
	r := newMatrix(a.rows, b.cols)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < b.cols; j++ {
			var sum float64
			for k := 0; k < a.cols; k++ {
				sum += a.at(i, k) * b.at(k, j)
			}
			r.set(i, j, sum)
		}
	}
	return r, nil
}

// Div divides every element of a by the 1×1 matrix b.
func Div(a, b *Matrix) (*Matrix, error) {
	if !b.IsScalar() {
		return nil, matrixErrorf(opDiv, ErrDimensionMismatch,
			"divisor must be 1×1, is %d×%d", b.rows, b.cols)
	}
	d := b.data[0]
	if d == 0 {
		return nil, matrixErrorf(opDiv, ErrDivisionByZero, "")
	}
	return mapElements(a, func(x float64) float64 { return x / d }), nil
}

// Hadamard applies op elementwise to a and b, which must have the same
// dimensions.
func Hadamard(a, b *Matrix, op func(x, y float64) float64) (*Matrix, error) {
	if !a.SameShape(b) {
		return nil, matrixErrorf(opHadamard, ErrDimensionMismatch,
			"%d×%d ∘ %d×%d", a.rows, a.cols, b.rows, b.cols)
	}
	return zipWith(a, b, op), nil
}

// Scale multiplies every element of m by s.
func Scale(m *Matrix, s float64) *Matrix {
	return mapElements(m, func(x float64) float64 { return x * s })
}

// Neg returns -m.
func Neg(m *Matrix) *Matrix {
	return mapElements(m, func(x float64) float64 { return -x })
}

// ElemPow raises every element of m to the power e.
func ElemPow(m *Matrix, e float64) *Matrix {
	return mapElements(m, func(x float64) float64 { return math.Pow(x, e) })
}

// HasZero is a predicate: does m contain an element equal to 0?
func HasZero(m *Matrix) bool {
	for _, v := range m.data {
		if v == 0 {
			return true
		}
	}
	return false
}

// Transpose returns the transpose of m.
func Transpose(m *Matrix) *Matrix {
	t := newMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.set(j, i, m.at(i, j))
		}
	}
	return t
}

// Dot returns the dot product of two vectors as a 1×1 matrix. Row and column
// vectors may be mixed, but both must have the same length.
func Dot(a, b *Matrix) (*Matrix, error) {
	if !a.IsVector() || !b.IsVector() {
		return nil, matrixErrorf(opDot, ErrDimensionMismatch,
			"vectors required, have %d×%d and %d×%d", a.rows, a.cols, b.rows, b.cols)
	}
	if len(a.data) != len(b.data) {
		return nil, matrixErrorf(opDot, ErrDimensionMismatch,
			"vector lengths %d and %d differ", len(a.data), len(b.data))
	}
	var sum float64
	for k, v := range a.data { // row-major storage of a vector is its element sequence
		sum += v * b.data[k]
	}
	return Scalar(sum), nil
}

// Kron returns the Kronecker product a ⊗ b. The result must not exceed
// MaxElements.
func Kron(a, b *Matrix) (*Matrix, error) {
	if len(a.data) > MaxElements/len(b.data) {
		return nil, matrixErrorf(opKron, ErrBadShape, "%d×%d ⊗ %d×%d exceeds %d elements",
			a.rows, a.cols, b.rows, b.cols, MaxElements)
	}
	k := newMatrix(a.rows*b.rows, a.cols*b.cols)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			f := a.at(i, j)
			for p := 0; p < b.rows; p++ {
				for q := 0; q < b.cols; q++ {
					k.set(i*b.rows+p, j*b.cols+q, f*b.at(p, q))
				}
			}
		}
	}
	return k, nil
}

func mapElements(m *Matrix, f func(float64) float64) *Matrix {
	r := newMatrix(m.rows, m.cols)
	for k, v := range m.data {
		r.data[k] = f(v)
	}
	return r
}

func zipWith(a, b *Matrix, f func(x, y float64) float64) *Matrix {
	r := newMatrix(a.rows, a.cols)
	for k, v := range a.data {
		r.data[k] = f(v, b.data[k])
	}
	return r
}
