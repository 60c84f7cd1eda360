/*
Package scripting makes matcalc available to Lua scripts.

A script sees a global table 'matcalc' with the following functions:

	matcalc.define(name, {{1, 2}, {3, 4}})   -- store a matrix
	matcalc.eval("det(A) * A")               -- evaluate, returns number or table
	matcalc.store(name)                      -- store the last result
	matcalc.remove(name)                     -- delete a matrix, returns boolean
	matcalc.names()                          -- list of stored names, sorted

Matrices are passed as tables of rows. Scalar results are returned as Lua
numbers. Errors raise a Lua error, which aborts the script unless caught by
pcall.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package scripting

import (
	"errors"
	"fmt"

	"github.com/npillmayer/matcalc"
	"github.com/npillmayer/matcalc/evaluator"
	"github.com/npillmayer/matcalc/matrix"
	"github.com/npillmayer/schuko/tracing"
	lua "github.com/yuin/gopher-lua"
)

// tracer traces with key 'matcalc.lua'.
func tracer() tracing.Trace {
	return tracing.Select("matcalc.lua")
}

// ModuleName is the name of the global Lua table holding the matcalc API.
const ModuleName = "matcalc"

// Scripting is a Lua state bound to an evaluation session.
type Scripting struct {
	L  *lua.LState
	ev *evaluator.Evaluator
}

// NewScripting creates a Lua state operating on the session ev.
// Clients have to call Close when done.
func NewScripting(ev *evaluator.Evaluator) *Scripting {
	lscript := &Scripting{
		L:  lua.NewState(),
		ev: ev,
	}
	lscript.register()
	return lscript
}

// Close shuts down the Lua state.
func (lscript *Scripting) Close() {
	lscript.L.Close()
}

// DoFile runs a Lua script file.
func (lscript *Scripting) DoFile(filename string) error {
	tracer().P("script", filename).Infof("running Lua script")
	if err := lscript.L.DoFile(filename); err != nil {
		return fmt.Errorf("lua script %s: %w", filename, err)
	}
	return nil
}

// DoString runs a Lua chunk.
func (lscript *Scripting) DoString(chunk string) error {
	return lscript.L.DoString(chunk)
}

func (lscript *Scripting) register() {
	L := lscript.L
	mod := L.NewTable()
	L.SetField(mod, "define", L.NewFunction(lscript.define))
	L.SetField(mod, "eval", L.NewFunction(lscript.eval))
	L.SetField(mod, "store", L.NewFunction(lscript.store))
	L.SetField(mod, "remove", L.NewFunction(lscript.remove))
	L.SetField(mod, "names", L.NewFunction(lscript.names))
	L.SetGlobal(ModuleName, mod)
}

// --- API functions ---------------------------------------------------------

func (lscript *Scripting) define(L *lua.LState) int {
	name := L.CheckString(1)
	tbl := L.CheckTable(2)
	m, err := tableToMatrix(tbl)
	if err != nil {
		L.ArgError(2, err.Error())
		return 0
	}
	if err := lscript.ev.DefineMatrix(name, m); err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	tracer().P("var", name).Debugf("defined by script")
	return 0
}

func (lscript *Scripting) eval(L *lua.LState) int {
	expr := L.CheckString(1)
	v, err := lscript.ev.Evaluate(expr)
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(valueToLua(L, v))
	return 1
}

func (lscript *Scripting) store(L *lua.LState) int {
	if err := lscript.ev.Store(L.CheckString(1)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (lscript *Scripting) remove(L *lua.LState) int {
	err := lscript.ev.Delete(L.CheckString(1))
	if err != nil && !errors.Is(err, matcalc.ErrUndefinedName) {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LBool(err == nil))
	return 1
}

func (lscript *Scripting) names(L *lua.LState) int {
	tbl := L.NewTable()
	for _, name := range lscript.ev.Names() {
		tbl.Append(lua.LString(name))
	}
	L.Push(tbl)
	return 1
}

// --- Conversions -----------------------------------------------------------

// tableToMatrix converts a table of rows into a matrix. A flat table of
// numbers is read as a single row.
func tableToMatrix(tbl *lua.LTable) (*matrix.Matrix, error) {
	var grid [][]float64
	var flat []float64
	for i := 1; i <= tbl.Len(); i++ {
		switch v := tbl.RawGetInt(i).(type) {
		case lua.LNumber:
			flat = append(flat, float64(v))
		case *lua.LTable:
			var row []float64
			for j := 1; j <= v.Len(); j++ {
				n, ok := v.RawGetInt(j).(lua.LNumber)
				if !ok {
					return nil, fmt.Errorf("row %d, column %d: number expected", i, j)
				}
				row = append(row, float64(n))
			}
			grid = append(grid, row)
		default:
			return nil, fmt.Errorf("element %d: number or row expected", i)
		}
	}
	if len(flat) > 0 {
		if len(grid) > 0 {
			return nil, errors.New("cannot mix numbers and rows")
		}
		grid = [][]float64{flat}
	}
	return matrix.FromRows(grid)
}

// valueToLua converts a scalar to a number and a matrix to a table of rows.
func valueToLua(L *lua.LState, v matcalc.Value) lua.LValue {
	if v.Self().IsScalar() {
		x, _ := v.Self().AsScalar()
		return lua.LNumber(x)
	}
	m := v.Self().AsMatrix()
	tbl := L.NewTable()
	for i := 0; i < m.Rows(); i++ {
		row := L.NewTable()
		for _, x := range m.Row(i) {
			row.Append(lua.LNumber(x))
		}
		tbl.Append(row)
	}
	return tbl
}
