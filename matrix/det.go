package matrix

// Det returns the determinant of a square matrix, computed by cofactor
// expansion along the first row.
func Det(m *Matrix) (float64, error) {
	if !m.IsSquare() {
		return 0, matrixErrorf(opDet, ErrNonSquare, "%d×%d", m.rows, m.cols)
	}
	return det(m), nil
}

// det expects a square matrix.
func det(m *Matrix) float64 {
	switch m.rows {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}
	var d float64
	for j := 0; j < m.cols; j++ {
		if a := m.at(0, j); a != 0 {
			d += a * cofactor(m, 0, j)
		}
	}
	return d
}

// Minor returns m with row r and column c removed. m must have at least two
// rows and two columns.
func Minor(m *Matrix, r, c int) (*Matrix, error) {
	if m.rows < 2 || m.cols < 2 {
		return nil, matrixErrorf(opMinor, ErrBadShape, "no minor of %d×%d", m.rows, m.cols)
	}
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return nil, matrixErrorf(opMinor, ErrBadShape,
			"index (%d,%d) out of range for %d×%d", r, c, m.rows, m.cols)
	}
	return minor(m, r, c), nil
}

func minor(m *Matrix, r, c int) *Matrix {
	mm := newMatrix(m.rows-1, m.cols-1)
	k := 0
	for i := 0; i < m.rows; i++ {
		if i == r {
			continue
		}
		for j := 0; j < m.cols; j++ {
			if j == c {
				continue
			}
			mm.data[k] = m.at(i, j)
			k++
		}
	}
	return mm
}

// Cofactor returns (-1)^(r+c) · det(Minor(m, r, c)) of a square matrix.
func Cofactor(m *Matrix, r, c int) (float64, error) {
	if !m.IsSquare() {
		return 0, matrixErrorf(opCofactor, ErrNonSquare, "%d×%d", m.rows, m.cols)
	}
	if _, err := Minor(m, r, c); err != nil {
		return 0, err
	}
	return cofactor(m, r, c), nil
}

func cofactor(m *Matrix, r, c int) float64 {
	d := det(minor(m, r, c))
	if (r+c)%2 == 1 {
		return -d
	}
	return d
}

// Adjoint returns the adjugate of a square matrix, i.e. the transpose of its
// cofactor matrix. The adjugate of a 1×1 matrix is [1].
func Adjoint(m *Matrix) (*Matrix, error) {
	if !m.IsSquare() {
		return nil, matrixErrorf(opAdjoint, ErrNonSquare, "%d×%d", m.rows, m.cols)
	}
	return adjoint(m), nil
}

func adjoint(m *Matrix) *Matrix {
	n := m.rows
	adj := newMatrix(n, n)
	if n == 1 {
		adj.data[0] = 1
		return adj
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			adj.set(j, i, cofactor(m, i, j)) // transposed
		}
	}
	return adj
}

// Inverse returns adj(m) / det(m) for a square, non-singular matrix.
func Inverse(m *Matrix) (*Matrix, error) {
	if !m.IsSquare() {
		return nil, matrixErrorf(opInverse, ErrNonSquare, "%d×%d", m.rows, m.cols)
	}
	d := det(m)
	if d == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular, "determinant is 0")
	}
	tracer().Debugf("inverting %d×%d matrix with det = %g", m.rows, m.cols, d)
	return Scale(adjoint(m), 1/d), nil
}

// Trace returns the sum of the diagonal of a square matrix.
func Trace(m *Matrix) (float64, error) {
	if !m.IsSquare() {
		return 0, matrixErrorf(opTrace, ErrNonSquare, "%d×%d", m.rows, m.cols)
	}
	var t float64
	for i := 0; i < m.rows; i++ {
		t += m.at(i, i)
	}
	return t, nil
}

// Power returns m^n for a square matrix m. Power(m, 0) is the identity,
// negative exponents raise the inverse of m.
func Power(m *Matrix, n int) (*Matrix, error) {
	if !m.IsSquare() {
		return nil, matrixErrorf(opPower, ErrNonSquare, "%d×%d", m.rows, m.cols)
	}
	if n == 0 {
		return Identity(m.rows)
	}
	e := uint64(n)
	if n < 0 {
		inv, err := Inverse(m)
		if err != nil {
			return nil, matrixErrorf(opPower, err, "negative exponent %d", n)
		}
		m, e = inv, uint64(-(n+1))+1 // n may be math.MinInt
	}
	// square-and-multiply
	var r *Matrix
	for sq := m; ; {
		if e&1 == 1 {
			if r == nil {
				r = sq
			} else if p, err := Mul(r, sq); err != nil {
				return nil, err
			} else {
				r = p
			}
		}
		if e >>= 1; e == 0 {
			break
		}
		p, err := Mul(sq, sq)
		if err != nil {
			return nil, err
		}
		sq = p
	}
	return r, nil
}
