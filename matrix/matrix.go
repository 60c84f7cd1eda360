package matrix

import (
	"bytes"
	"fmt"
	"math"
)

// Epsilon is the magnitude below which elimination results are treated as 0.
const Epsilon = 1e-10

// MaxElements is the largest number of elements a matrix may hold.
const MaxElements = 1 << 24

// Matrix is an immutable rectangular grid of float64 values, stored row-major.
// The zero value is not a valid matrix; use one of the constructors.
type Matrix struct {
	rows, cols int
	data       []float64
}

// newMatrix allocates a zero-filled matrix without shape checks.
func newMatrix(rows, cols int) *Matrix {
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// FromRows creates a matrix from a grid of rows. The grid is copied.
// Every row must have the same, non-zero length.
func FromRows(grid [][]float64) (*Matrix, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrBadShape, "empty grid")
	}
	m := newMatrix(len(grid), len(grid[0]))
	for i, row := range grid {
		if len(row) != m.cols {
			return nil, matrixErrorf(opFromRows, ErrBadShape,
				"row %d has %d elements, expected %d", i, len(row), m.cols)
		}
		copy(m.data[i*m.cols:], row)
	}
	return m, nil
}

// checkShape returns ErrBadShape, tagged with op, if a rows×cols matrix is
// empty or exceeds MaxElements.
func checkShape(op string, rows, cols int) error {
	if rows < 1 || cols < 1 {
		return matrixErrorf(op, ErrBadShape, "%d×%d", rows, cols)
	}
	if rows > MaxElements/cols {
		return matrixErrorf(op, ErrBadShape, "%d×%d exceeds %d elements", rows, cols, MaxElements)
	}
	return nil
}

// MustFromRows is like FromRows, but panics on malformed grids. It is
// intended for literals in code and tests.
func MustFromRows(grid [][]float64) *Matrix {
	m, err := FromRows(grid)
	if err != nil {
		panic(err)
	}
	return m
}

// Scalar creates a 1×1 matrix.
func Scalar(x float64) *Matrix {
	m := newMatrix(1, 1)
	m.data[0] = x
	return m
}

// Zeros creates a rows×cols matrix filled with 0.
func Zeros(rows, cols int) (*Matrix, error) {
	if err := checkShape(opZeros, rows, cols); err != nil {
		return nil, err
	}
	return newMatrix(rows, cols), nil
}

// Identity creates an n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	if err := checkShape(opIdentity, n, n); err != nil {
		return nil, err
	}
	m := newMatrix(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// At returns the element at row i, column j. Indices are 0-based and must be
// in range.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %d×%d", i, j, m.rows, m.cols))
	}
	return m.data[i*m.cols+j]
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	r := make([]float64, m.cols)
	copy(r, m.data[i*m.cols:(i+1)*m.cols])
	return r
}

// Grid returns a copy of the matrix as a slice of rows.
func (m *Matrix) Grid() [][]float64 {
	grid := make([][]float64, m.rows)
	for i := range grid {
		grid[i] = m.Row(i)
	}
	return grid
}

// IsSquare is a predicate: rows == cols ?
func (m *Matrix) IsSquare() bool {
	return m.rows == m.cols
}

// IsScalar is a predicate: is this a 1×1 matrix?
func (m *Matrix) IsScalar() bool {
	return m.rows == 1 && m.cols == 1
}

// IsVector is a predicate: does this matrix have a single row or a single column?
func (m *Matrix) IsVector() bool {
	return m.rows == 1 || m.cols == 1
}

// SameShape is a predicate: do m and o have identical dimensions?
func (m *Matrix) SameShape(o *Matrix) bool {
	return m.rows == o.rows && m.cols == o.cols
}

// Equal is a predicate: same shape and identical elements.
func (m *Matrix) Equal(o *Matrix) bool {
	return m.EqualApprox(o, 0)
}

// EqualApprox is a predicate: same shape and elements differing by at most eps.
func (m *Matrix) EqualApprox(o *Matrix, eps float64) bool {
	if m == nil || o == nil {
		return m == o
	}
	if !m.SameShape(o) {
		return false
	}
	for k, v := range m.data {
		if math.Abs(v-o.data[k]) > eps {
			return false
		}
	}
	return true
}

// String returns the matrix in bracket notation, rows separated by ';'.
func (m *Matrix) String() string {
	var b bytes.Buffer
	b.WriteByte('[')
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.cols+j])
		}
	}
	b.WriteByte(']')
	return b.String()
}

// clone creates a private, mutable copy of m.
func (m *Matrix) clone() *Matrix {
	c := newMatrix(m.rows, m.cols)
	copy(c.data, m.data)
	return c
}

func (m *Matrix) at(i, j int) float64 {
	return m.data[i*m.cols+j]
}

func (m *Matrix) set(i, j int, v float64) {
	m.data[i*m.cols+j] = v
}
