package variables_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/matcalc"
	"github.com/npillmayer/matcalc/matrix"
	"github.com/npillmayer/matcalc/variables"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "matcalc.vars")
	defer teardown()
	//
	symtab := variables.NewSymbolTable()
	a := matrix.MustFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, symtab.Insert("A", a))
	m, ok := symtab.Lookup("A")
	require.True(t, ok)
	assert.True(t, m.Equal(a))
	_, ok = symtab.Lookup("B")
	assert.False(t, ok)
	// replace
	require.NoError(t, symtab.Insert("A", matrix.Scalar(1)))
	m, _ = symtab.Lookup("A")
	assert.True(t, m.IsScalar())
	assert.Equal(t, 1, symtab.Size())
}

func TestInvalidNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "matcalc.vars")
	defer teardown()
	//
	symtab := variables.NewSymbolTable()
	for _, name := range []string{"", "1A", "a-b", "det", "rref", "#lit0", "A B"} {
		err := symtab.Insert(name, matrix.Scalar(1))
		assert.True(t, errors.Is(err, matcalc.ErrInvalidName), "name %q", name)
	}
	for _, name := range []string{"A", "_tmp", "x2", "Result_1", "dett"} {
		assert.NoError(t, symtab.Insert(name, matrix.Scalar(1)), "name %q", name)
	}
}

func TestRemove(t *testing.T) {
	symtab := variables.NewSymbolTable()
	require.NoError(t, symtab.Insert("A", matrix.Scalar(1)))
	assert.True(t, symtab.Remove("A"))
	assert.False(t, symtab.Remove("A"))
	_, ok := symtab.Lookup("A")
	assert.False(t, ok)
}

func TestNamesAreSortedAndPersistent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "matcalc.vars")
	defer teardown()
	//
	symtab := variables.NewSymbolTable()
	for _, name := range []string{"C", "A", "B"} {
		require.NoError(t, symtab.Insert(name, matrix.Scalar(1)))
	}
	scratch := symtab.OpenScratch()
	scratch.Register(matrix.Scalar(42))
	assert.Equal(t, []string{"A", "B", "C"}, symtab.Names())
	assert.Equal(t, 4, symtab.Size())
	scratch.Release()
	assert.Equal(t, 3, symtab.Size())
}

func TestScratchRelease(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "matcalc.vars")
	defer teardown()
	//
	symtab := variables.NewSymbolTable()
	scratch := symtab.OpenScratch()
	n1 := scratch.Register(matrix.Scalar(1))
	n2 := scratch.Register(matrix.Scalar(2))
	assert.NotEqual(t, n1, n2)
	assert.True(t, strings.HasPrefix(n1, variables.EphemeralPrefix))
	assert.Error(t, variables.CheckName(n1), "ephemeral names must not be valid user names")
	m, ok := symtab.Lookup(n2)
	require.True(t, ok)
	assert.Equal(t, 2.0, m.At(0, 0))
	assert.Equal(t, 2, symtab.EphemeralCount())
	assert.Equal(t, []string{n1, n2}, scratch.Names())
	scratch.Release()
	assert.Equal(t, 0, symtab.EphemeralCount())
	scratch.Release() // idempotent
	assert.Equal(t, 0, symtab.Size())
}

func TestEphemeralNamesDoNotRepeat(t *testing.T) {
	symtab := variables.NewSymbolTable()
	s1 := symtab.OpenScratch()
	n1 := s1.Register(matrix.Scalar(1))
	s1.Release()
	s2 := symtab.OpenScratch()
	n2 := s2.Register(matrix.Scalar(1))
	defer s2.Release()
	assert.NotEqual(t, n1, n2)
}

func TestStoredValueRoundTrip(t *testing.T) {
	symtab := variables.NewSymbolTable()
	result := matrix.MustFromRows([][]float64{{1.5, -2}, {0, 1e-3}, {7, 8}})
	require.NoError(t, symtab.Insert("R", result))
	m, ok := symtab.Lookup("R")
	require.True(t, ok)
	assert.Equal(t, result.Rows(), m.Rows())
	assert.Equal(t, result.Cols(), m.Cols())
	assert.True(t, m.Equal(result))
}
