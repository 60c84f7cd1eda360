package varparse

import (
	"errors"
	"testing"

	"github.com/npillmayer/matcalc"
	"github.com/npillmayer/matcalc/matrix"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseMatrix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "matcalc.vars")
	defer teardown()
	//
	for i, x := range []struct {
		literal string
		grid    [][]float64
	}{
		{literal: "[1 2; 3 4]", grid: [][]float64{{1, 2}, {3, 4}}},
		{literal: "1, -2.5; 0, 1e-3", grid: [][]float64{{1, -2.5}, {0, 0.001}}},
		{literal: "[7]", grid: [][]float64{{7}}},
		{literal: "[1 2 3\n4 5 6]", grid: [][]float64{{1, 2, 3}, {4, 5, 6}}},
		{literal: "[.5 +1]", grid: [][]float64{{0.5, 1}}},
	} {
		m, err := ParseMatrix(x.literal)
		if err != nil {
			t.Errorf("test %d: unexpected error %v", i, err)
			continue
		}
		if !m.Equal(matrix.MustFromRows(x.grid)) {
			t.Errorf("test %d: expected %v, have %s", i, x.grid, m)
		}
	}
}

func TestParseMatrixErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "matcalc.vars")
	defer teardown()
	//
	for i, x := range []struct {
		literal string
		err     error
	}{
		{literal: "[1 2; 3]", err: matrix.ErrBadShape},
		{literal: "[]", err: matrix.ErrBadShape},
		{literal: "[1 2", err: matcalc.ErrInvalidSyntax},
		{literal: "[[1]]", err: matcalc.ErrInvalidSyntax},
		{literal: "[1 x]", err: matcalc.ErrLexical},
	} {
		_, err := ParseMatrix(x.literal)
		if !errors.Is(err, x.err) {
			t.Errorf("test %d: expected %v, have %v", i, x.err, err)
		}
	}
}
