package matrix_test

import (
	"testing"

	"github.com/npillmayer/matcalc/matrix"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestReducedRowEchelon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "matcalc.matrix")
	defer teardown()
	//
	m := matrix.MustFromRows([][]float64{{1, 2, -1, -4}, {2, 3, -1, -11}, {-2, 0, -3, 22}})
	rref := matrix.RowEchelon(m, true)
	expected := matrix.MustFromRows([][]float64{{1, 0, 0, -8}, {0, 1, 0, 1}, {0, 0, 1, -2}})
	assert.True(t, rref.EqualApprox(expected, tolerance), "rref = %s", rref)
	assert.True(t, m.Equal(matrix.MustFromRows([][]float64{{1, 2, -1, -4}, {2, 3, -1, -11}, {-2, 0, -3, 22}})),
		"operand must not be modified")
}

func TestRowEchelonShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "matcalc.matrix")
	defer teardown()
	//
	m := matrix.MustFromRows([][]float64{{0, 2, 4}, {1, 1, 1}, {2, 4, 6}, {3, 3, 3}})
	ref := matrix.RowEchelon(m, false)
	lastLead := -1
	for i := 0; i < ref.Rows(); i++ {
		lead := -1
		for j := 0; j < ref.Cols(); j++ {
			if ref.At(i, j) != 0 {
				lead = j
				break
			}
		}
		if lead < 0 {
			lastLead = ref.Cols() // zero rows only at the bottom
			continue
		}
		assert.Greater(t, lead, lastLead, "row %d of %s", i, ref)
		assert.InDelta(t, 1.0, ref.At(i, lead), tolerance, "leading entry of row %d", i)
		for k := i + 1; k < ref.Rows(); k++ {
			assert.Equal(t, 0.0, ref.At(k, lead), "below pivot (%d,%d)", i, lead)
		}
		lastLead = lead
	}
}

func TestRowEchelonFlushesTinyValues(t *testing.T) {
	m := matrix.MustFromRows([][]float64{{1, 1e-12}, {0, 1e-11}})
	ref := matrix.RowEchelon(m, false)
	assert.Equal(t, 0.0, ref.At(0, 1))
	assert.Equal(t, 0.0, ref.At(1, 1))
}

func TestRank(t *testing.T) {
	for i, x := range []struct {
		m    *matrix.Matrix
		rank int
	}{
		{m: a22, rank: 2},
		{m: a33, rank: 3},
		{m: b23, rank: 2},
		{m: matrix.MustFromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}), rank: 2},
		{m: matrix.MustFromRows([][]float64{{0, 0}, {0, 0}}), rank: 0},
		{m: matrix.MustFromRows([][]float64{{1, 2}, {2, 4}, {3, 6}}), rank: 1},
	} {
		assert.Equal(t, x.rank, matrix.Rank(x.m), "test %d", i)
	}
}

func TestRankInvariantUnderRowPermutation(t *testing.T) {
	rows := [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, {0, 1, 0}}
	expected := matrix.Rank(matrix.MustFromRows(rows))
	for _, perm := range [][]int{{3, 2, 1, 0}, {1, 3, 0, 2}, {2, 0, 3, 1}} {
		permuted := make([][]float64, len(rows))
		for i, p := range perm {
			permuted[i] = rows[p]
		}
		assert.Equal(t, expected, matrix.Rank(matrix.MustFromRows(permuted)), "permutation %v", perm)
	}
}
