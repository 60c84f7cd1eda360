package matrix

import "math"

// RowEchelon transforms m by Gaussian elimination. If reduced is false, the
// result is in row echelon form: every pivot is a leading 1 with zeros below
// it. If reduced is true, the pivot columns are cleared above the pivots as
// well, giving the reduced row echelon form.
//
// Pivots are chosen by partial pivoting: within the current column the row
// with the largest magnitude is swapped into place. Magnitudes up to Epsilon
// count as 0, and are flushed to exactly 0 in the result.
func RowEchelon(m *Matrix, reduced bool) *Matrix {
	mat := m.clone()
	lead := 0
	for r := 0; r < mat.rows && lead < mat.cols; r++ {
		p := pivotRow(mat, r, lead)
		for p < 0 {
			lead++
			if lead == mat.cols {
				return flushZeros(mat)
			}
			p = pivotRow(mat, r, lead)
		}
		mat.swapRows(p, r)
		mat.scaleRow(r, 1/mat.at(r, lead))
		start := r + 1
		if reduced {
			start = 0
		}
		for i := start; i < mat.rows; i++ {
			if i != r {
				mat.eliminate(i, r, lead)
			}
		}
		tracer().Debugf("pivot at (%d,%d)", r, lead)
		lead++
	}
	return flushZeros(mat)
}

// Rank returns the number of non-zero rows of the row echelon form of m.
func Rank(m *Matrix) int {
	ref := RowEchelon(m, false)
	rank := 0
	for i := 0; i < ref.rows; i++ {
		for j := 0; j < ref.cols; j++ {
			if ref.at(i, j) != 0 {
				rank++
				break
			}
		}
	}
	return rank
}

// pivotRow finds the row at or below r with the largest magnitude in column
// col. Returns -1 if all candidates are (nearly) zero.
func pivotRow(mat *Matrix, r, col int) int {
	best, pivot := Epsilon, -1
	for i := r; i < mat.rows; i++ {
		if a := math.Abs(mat.at(i, col)); a > best {
			best, pivot = a, i
		}
	}
	return pivot
}

func (m *Matrix) swapRows(i, k int) {
	if i == k {
		return
	}
	for j := 0; j < m.cols; j++ {
		a, b := m.at(i, j), m.at(k, j)
		m.set(i, j, b)
		m.set(k, j, a)
	}
}

func (m *Matrix) scaleRow(i int, f float64) {
	for j := 0; j < m.cols; j++ {
		m.set(i, j, m.at(i, j)*f)
	}
}

// eliminate subtracts a multiple of the pivot row r from row i, clearing
// column col of row i.
func (m *Matrix) eliminate(i, r, col int) {
	f := m.at(i, col)
	if f == 0 {
		return
	}
	for j := 0; j < m.cols; j++ {
		m.set(i, j, m.at(i, j)-f*m.at(r, j))
	}
}

func flushZeros(m *Matrix) *Matrix {
	for k, v := range m.data {
		if math.Abs(v) < Epsilon {
			m.data[k] = 0
		}
	}
	return m
}
