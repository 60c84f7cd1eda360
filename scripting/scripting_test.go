package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/matcalc/evaluator"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"
)

func TestDefineAndEval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "matcalc.lua")
	defer teardown()
	//
	ev := evaluator.NewEvaluator()
	lscript := NewScripting(ev)
	defer lscript.Close()
	err := lscript.DoString(`
		matcalc.define("A", {{1, 2}, {3, 4}})
		d = matcalc.eval("det(A)")
		t = matcalc.eval("transpose(A)")
	`)
	require.NoError(t, err)
	assert.Equal(t, lua.LNumber(-2), lscript.L.GetGlobal("d"))
	tbl, ok := lscript.L.GetGlobal("t").(*lua.LTable)
	require.True(t, ok)
	row, ok := tbl.RawGetInt(1).(*lua.LTable)
	require.True(t, ok)
	assert.Equal(t, lua.LNumber(3), row.RawGetInt(2))
	assert.Equal(t, []string{"A"}, ev.Names())
}

func TestStoreRemoveNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "matcalc.lua")
	defer teardown()
	//
	ev := evaluator.NewEvaluator()
	lscript := NewScripting(ev)
	defer lscript.Close()
	err := lscript.DoString(`
		matcalc.define("v", {1, 2, 3})
		matcalc.eval("v .* v")
		matcalc.store("w")
		n = #matcalc.names()
		removed = matcalc.remove("v")
		again = matcalc.remove("v")
	`)
	require.NoError(t, err)
	assert.Equal(t, lua.LNumber(2), lscript.L.GetGlobal("n"))
	assert.Equal(t, lua.LTrue, lscript.L.GetGlobal("removed"))
	assert.Equal(t, lua.LFalse, lscript.L.GetGlobal("again"))
	assert.Equal(t, []string{"w"}, ev.Names())
}

func TestErrorsRaiseLuaErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "matcalc.lua")
	defer teardown()
	//
	lscript := NewScripting(evaluator.NewEvaluator())
	defer lscript.Close()
	assert.Error(t, lscript.DoString(`matcalc.eval("det(X)")`))
	assert.Error(t, lscript.DoString(`matcalc.define("det", {1})`))
	assert.Error(t, lscript.DoString(`matcalc.define("A", {{1, 2}, {3}})`))
	err := lscript.DoString(`ok = pcall(matcalc.eval, "1 +")`)
	require.NoError(t, err)
	assert.Equal(t, lua.LFalse, lscript.L.GetGlobal("ok"))
}

func TestDoFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "matcalc.lua")
	defer teardown()
	//
	script := filepath.Join(t.TempDir(), "setup.lua")
	require.NoError(t, os.WriteFile(script, []byte(`matcalc.define("I", {{1, 0}, {0, 1}})`), 0644))
	ev := evaluator.NewEvaluator()
	lscript := NewScripting(ev)
	defer lscript.Close()
	require.NoError(t, lscript.DoFile(script))
	assert.Equal(t, []string{"I"}, ev.Names())
	assert.Error(t, lscript.DoFile(filepath.Join(t.TempDir(), "missing.lua")))
}
