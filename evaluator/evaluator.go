package evaluator

import (
	"fmt"

	"github.com/npillmayer/matcalc"
	"github.com/npillmayer/matcalc/grammar"
	"github.com/npillmayer/matcalc/matrix"
	"github.com/npillmayer/matcalc/variables"
	"github.com/npillmayer/matcalc/variables/varparse"
	"github.com/npillmayer/matcalc/vm"
)

// Evaluate evaluates an infix expression against a symbol table. Failures
// are reported as *matcalc.EvaluationError. Ephemeral entries created for
// the literals of expression are removed before Evaluate returns.
func Evaluate(expression string, symtab *variables.SymbolTable) (matcalc.Value, error) {
	scratch := symtab.OpenScratch()
	defer scratch.Release()
	tokens, err := grammar.Tokenize(expression, scratch)
	if err != nil {
		return nil, evalError(expression, err)
	}
	program := vm.Compile(tokens)
	result, err := vm.NewMachine(symtab).Run(program)
	if err != nil {
		return nil, evalError(expression, err)
	}
	tracer().P("expr", expression).Debugf("= %s", result)
	return result, nil
}

func evalError(expression string, err error) error {
	tracer().P("expr", expression).Errorf("%v", err)
	return &matcalc.EvaluationError{Expression: expression, Err: err}
}

// === Evaluator =============================================================

// Evaluator is an evaluation session: a symbol table of named matrices
// together with the result of the most recent evaluation.
type Evaluator struct {
	symtab *variables.SymbolTable
	last   matcalc.Value // result of the last successful evaluation, or nil
}

// NewEvaluator creates an evaluation session.
// It is fully initialized and empty.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		symtab: variables.NewSymbolTable(),
	}
}

// Symbols returns the symbol table of the session.
func (ev *Evaluator) Symbols() *variables.SymbolTable {
	return ev.symtab
}

// Evaluate evaluates an expression and remembers its result. A failed
// evaluation clears the last result.
func (ev *Evaluator) Evaluate(expression string) (matcalc.Value, error) {
	result, err := Evaluate(expression, ev.symtab)
	if err != nil {
		ev.last = nil
		return nil, err
	}
	ev.last = result
	return result, nil
}

// LastResult returns the result of the last successful evaluation, if any.
func (ev *Evaluator) LastResult() (matcalc.Value, bool) {
	return ev.last, ev.last != nil
}

// Store inserts the last result into the symbol table under name.
func (ev *Evaluator) Store(name string) error {
	if ev.last == nil {
		return matcalc.ErrNoResult
	}
	if err := ev.symtab.Insert(name, ev.last.Self().AsMatrix()); err != nil {
		return err
	}
	tracer().P("var", name).Infof("stored %s", ev.last)
	return nil
}

// Define stores a matrix under name. The matrix is given as a literal, e.g.
// "[1 2; 3 4]".
func (ev *Evaluator) Define(name string, literal string) (*matrix.Matrix, error) {
	if err := variables.CheckName(name); err != nil {
		return nil, err
	}
	m, err := varparse.ParseMatrix(literal)
	if err != nil {
		return nil, err
	}
	return m, ev.DefineMatrix(name, m)
}

// DefineMatrix stores m under name.
func (ev *Evaluator) DefineMatrix(name string, m *matrix.Matrix) error {
	return ev.symtab.Insert(name, m)
}

// Delete removes the matrix stored under name.
func (ev *Evaluator) Delete(name string) error {
	if err := variables.CheckName(name); err != nil {
		return err
	}
	if !ev.symtab.Remove(name) {
		return fmt.Errorf("%w: %s", matcalc.ErrUndefinedName, name)
	}
	return nil
}

// Show returns the matrix stored under name.
func (ev *Evaluator) Show(name string) (*matrix.Matrix, error) {
	if err := variables.CheckName(name); err != nil {
		return nil, err
	}
	m, ok := ev.symtab.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", matcalc.ErrUndefinedName, name)
	}
	return m, nil
}

// Names returns the names of all stored matrices, sorted.
func (ev *Evaluator) Names() []string {
	return ev.symtab.Names()
}
