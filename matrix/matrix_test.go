package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/matcalc/matrix"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

var (
	a22 = matrix.MustFromRows([][]float64{{1, 2}, {3, 4}})
	a33 = matrix.MustFromRows([][]float64{{2, 1, 1}, {1, 3, 2}, {1, 0, 0}})
	b23 = matrix.MustFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
)

func TestFromRowsRejectsRaggedGrid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "matcalc.matrix")
	defer teardown()
	//
	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	assert.True(t, errors.Is(err, matrix.ErrBadShape))
	_, err = matrix.FromRows(nil)
	assert.True(t, errors.Is(err, matrix.ErrBadShape))
	_, err = matrix.Zeros(0, 3)
	assert.True(t, errors.Is(err, matrix.ErrBadShape))
	_, err = matrix.Identity(-1)
	assert.True(t, errors.Is(err, matrix.ErrBadShape))
}

func TestFromRowsCopiesInput(t *testing.T) {
	grid := [][]float64{{1, 2}, {3, 4}}
	m := matrix.MustFromRows(grid)
	grid[0][0] = 99
	assert.Equal(t, 1.0, m.At(0, 0))
	g := m.Grid()
	g[1][1] = 99
	assert.Equal(t, 4.0, m.At(1, 1))
}

func TestAddSub(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "matcalc.matrix")
	defer teardown()
	//
	sum, err := matrix.Add(a22, a22)
	require.NoError(t, err)
	assert.True(t, sum.Equal(matrix.MustFromRows([][]float64{{2, 4}, {6, 8}})))
	diff, err := matrix.Sub(a22, a22)
	require.NoError(t, err)
	zero, _ := matrix.Zeros(2, 2)
	assert.True(t, diff.Equal(zero))
	_, err = matrix.Add(a22, b23)
	assert.True(t, errors.Is(err, matrix.ErrDimensionMismatch))
	_, err = matrix.Sub(b23, a22)
	assert.True(t, errors.Is(err, matrix.ErrDimensionMismatch))
}

func TestMul(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "matcalc.matrix")
	defer teardown()
	//
	p, err := matrix.Mul(a22, b23)
	require.NoError(t, err)
	expected := matrix.MustFromRows([][]float64{{9, 12, 15}, {19, 26, 33}})
	assert.True(t, p.Equal(expected), "have %s", p)
	_, err = matrix.Mul(b23, a22)
	assert.True(t, errors.Is(err, matrix.ErrDimensionMismatch))
	// scalars broadcast from either side
	s, err := matrix.Mul(matrix.Scalar(2), b23)
	require.NoError(t, err)
	assert.True(t, s.Equal(matrix.Scale(b23, 2)))
	s, err = matrix.Mul(b23, matrix.Scalar(2))
	require.NoError(t, err)
	assert.True(t, s.Equal(matrix.Scale(b23, 2)))
}

func TestMulIdentityIsNeutral(t *testing.T) {
	for _, m := range []*matrix.Matrix{a22, a33, matrix.Scalar(7)} {
		id, err := matrix.Identity(m.Rows())
		require.NoError(t, err)
		p, err := matrix.Mul(m, id)
		require.NoError(t, err)
		assert.True(t, p.Equal(m), "A·I = %s, expected %s", p, m)
	}
}

func TestDiv(t *testing.T) {
	q, err := matrix.Div(a22, matrix.Scalar(2))
	require.NoError(t, err)
	assert.True(t, q.Equal(matrix.MustFromRows([][]float64{{0.5, 1}, {1.5, 2}})))
	_, err = matrix.Div(a22, matrix.Scalar(0))
	assert.True(t, errors.Is(err, matrix.ErrDivisionByZero))
	_, err = matrix.Div(a22, a22)
	assert.True(t, errors.Is(err, matrix.ErrDimensionMismatch))
}

func TestHadamard(t *testing.T) {
	h, err := matrix.Hadamard(a22, a22, func(x, y float64) float64 { return x * y })
	require.NoError(t, err)
	assert.True(t, h.Equal(matrix.MustFromRows([][]float64{{1, 4}, {9, 16}})))
	_, err = matrix.Hadamard(a22, b23, func(x, y float64) float64 { return x * y })
	assert.True(t, errors.Is(err, matrix.ErrDimensionMismatch))
}

func TestTranspose(t *testing.T) {
	tr := matrix.Transpose(b23)
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	assert.Equal(t, 4.0, tr.At(0, 1))
	assert.True(t, matrix.Transpose(tr).Equal(b23))
}

func TestDeterminant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "matcalc.matrix")
	defer teardown()
	//
	for i, x := range []struct {
		m *matrix.Matrix
		d float64
	}{
		{m: matrix.Scalar(5), d: 5},
		{m: a22, d: -2},
		{m: a33, d: -1},
		{m: matrix.MustFromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}), d: 0},
		{m: matrix.MustFromRows([][]float64{
			{1, 0, 2, -1}, {3, 0, 0, 5}, {2, 1, 4, -3}, {1, 0, 5, 0}}), d: 30},
	} {
		d, err := matrix.Det(x.m)
		require.NoError(t, err)
		assert.InDelta(t, x.d, d, tolerance, "test %d", i)
	}
	_, err := matrix.Det(b23)
	assert.True(t, errors.Is(err, matrix.ErrNonSquare))
}

func TestMinorAndCofactor(t *testing.T) {
	mm, err := matrix.Minor(a33, 0, 1)
	require.NoError(t, err)
	assert.True(t, mm.Equal(matrix.MustFromRows([][]float64{{1, 2}, {1, 0}})))
	c, err := matrix.Cofactor(a33, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, c) // -(1·0 - 2·1)
	_, err = matrix.Minor(a33, 3, 0)
	assert.True(t, errors.Is(err, matrix.ErrBadShape))
	_, err = matrix.Cofactor(b23, 0, 0)
	assert.True(t, errors.Is(err, matrix.ErrNonSquare))
}

func TestAdjoint(t *testing.T) {
	adj, err := matrix.Adjoint(a22)
	require.NoError(t, err)
	assert.True(t, adj.Equal(matrix.MustFromRows([][]float64{{4, -2}, {-3, 1}})))
	_, err = matrix.Adjoint(b23)
	assert.True(t, errors.Is(err, matrix.ErrNonSquare))
}

func TestInverse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "matcalc.matrix")
	defer teardown()
	//
	for _, m := range []*matrix.Matrix{a22, a33, matrix.Scalar(4)} {
		inv, err := matrix.Inverse(m)
		require.NoError(t, err)
		p, err := matrix.Mul(m, inv)
		require.NoError(t, err)
		id, _ := matrix.Identity(m.Rows())
		assert.True(t, p.EqualApprox(id, tolerance), "A·inv(A) = %s", p)
	}
	singular := matrix.MustFromRows([][]float64{{1, 2}, {2, 4}})
	_, err := matrix.Inverse(singular)
	assert.True(t, errors.Is(err, matrix.ErrSingular))
	_, err = matrix.Inverse(b23)
	assert.True(t, errors.Is(err, matrix.ErrNonSquare))
}

func TestTrace(t *testing.T) {
	tr, err := matrix.Trace(a33)
	require.NoError(t, err)
	assert.Equal(t, 5.0, tr)
	_, err = matrix.Trace(b23)
	assert.True(t, errors.Is(err, matrix.ErrNonSquare))
}

func TestPower(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "matcalc.matrix")
	defer teardown()
	//
	for _, m := range []*matrix.Matrix{a22, a33} {
		p0, err := matrix.Power(m, 0)
		require.NoError(t, err)
		id, _ := matrix.Identity(m.Rows())
		assert.True(t, p0.Equal(id))
		pm1, err := matrix.Power(m, -1)
		require.NoError(t, err)
		inv, _ := matrix.Inverse(m)
		assert.True(t, pm1.EqualApprox(inv, tolerance))
	}
	p3, err := matrix.Power(a22, 3)
	require.NoError(t, err)
	assert.True(t, p3.Equal(matrix.MustFromRows([][]float64{{37, 54}, {81, 118}})), "A^3 = %s", p3)
	_, err = matrix.Power(b23, 2)
	assert.True(t, errors.Is(err, matrix.ErrNonSquare))
	_, err = matrix.Power(matrix.MustFromRows([][]float64{{1, 2}, {2, 4}}), -2)
	assert.True(t, errors.Is(err, matrix.ErrSingular))
}

func TestDot(t *testing.T) {
	d, err := matrix.Dot(matrix.MustFromRows([][]float64{{1, 0}}), matrix.MustFromRows([][]float64{{0, 1}}))
	require.NoError(t, err)
	assert.True(t, d.Equal(matrix.Scalar(0)))
	col := matrix.Transpose(matrix.MustFromRows([][]float64{{4, 5, 6}}))
	d, err = matrix.Dot(matrix.MustFromRows([][]float64{{1, 2, 3}}), col)
	require.NoError(t, err)
	assert.Equal(t, 32.0, d.At(0, 0))
	_, err = matrix.Dot(a22, a22)
	assert.True(t, errors.Is(err, matrix.ErrDimensionMismatch))
	_, err = matrix.Dot(matrix.MustFromRows([][]float64{{1, 2}}), col)
	assert.True(t, errors.Is(err, matrix.ErrDimensionMismatch))
}

func TestKron(t *testing.T) {
	id, _ := matrix.Identity(2)
	k, err := matrix.Kron(id, a22)
	require.NoError(t, err)
	expected := matrix.MustFromRows([][]float64{
		{1, 2, 0, 0},
		{3, 4, 0, 0},
		{0, 0, 1, 2},
		{0, 0, 3, 4},
	})
	assert.True(t, k.Equal(expected), "kron = %s", k)
}

func TestElemPow(t *testing.T) {
	p := matrix.ElemPow(a22, 2)
	assert.True(t, p.Equal(matrix.MustFromRows([][]float64{{1, 4}, {9, 16}})))
}

func TestPowerExtremeExponents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "matcalc.matrix")
	defer teardown()
	//
	flip := matrix.MustFromRows([][]float64{{1, 0}, {0, -1}})
	id, _ := matrix.Identity(2)
	p, err := matrix.Power(flip, math.MinInt)
	require.NoError(t, err)
	assert.True(t, p.Equal(id), "flip^MinInt = %s", p)
	p, err = matrix.Power(flip, math.MaxInt)
	require.NoError(t, err)
	assert.True(t, p.Equal(flip), "flip^MaxInt = %s", p)
	p5, err := matrix.Power(a22, 5)
	require.NoError(t, err)
	p2, _ := matrix.Power(a22, 2)
	p3, _ := matrix.Power(a22, 3)
	expected, _ := matrix.Mul(p3, p2)
	assert.True(t, p5.Equal(expected), "A^5 = %s", p5)
}

func TestShapeLimits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "matcalc.matrix")
	defer teardown()
	//
	_, err := matrix.Identity(1 << 32)
	assert.True(t, errors.Is(err, matrix.ErrBadShape))
	_, err = matrix.Identity(math.MaxInt)
	assert.True(t, errors.Is(err, matrix.ErrBadShape))
	_, err = matrix.Zeros(1<<32, 1<<32)
	assert.True(t, errors.Is(err, matrix.ErrBadShape))
	_, err = matrix.Zeros(matrix.MaxElements, 2)
	assert.True(t, errors.Is(err, matrix.ErrBadShape))
	_, err = matrix.Zeros(1<<12, 1<<12+1)
	assert.True(t, errors.Is(err, matrix.ErrBadShape))
	_, err = matrix.Zeros(0, 3)
	assert.True(t, errors.Is(err, matrix.ErrBadShape))
	row, _ := matrix.Zeros(1, 1<<13)
	col := matrix.Transpose(row)
	_, err = matrix.Kron(row, row)
	assert.True(t, errors.Is(err, matrix.ErrBadShape))
	_, err = matrix.Kron(col, row)
	assert.True(t, errors.Is(err, matrix.ErrBadShape))
	_, err = matrix.Mul(col, row)
	assert.True(t, errors.Is(err, matrix.ErrBadShape))
}
