package evaluator

import (
	"github.com/npillmayer/matcalc"
)

// Interpreter interprets matcalc command lines.
type Interpreter struct {
	evaluator *Evaluator // expression evaluator
}

// Result is the outcome of a command line.
type Result struct {
	Command Command
	Name    string        // name argument of the command, if any
	Value   matcalc.Value // for eval, let and show
	Names   []string      // for list
}

// NewInterpreter creates a new interpreter with an empty session.
func NewInterpreter() *Interpreter {
	return &Interpreter{
		evaluator: NewEvaluator(),
	}
}

// Evaluator returns the session of the interpreter.
func (intp *Interpreter) Evaluator() *Evaluator {
	return intp.evaluator
}

// Execute interprets one command line:
//
//	let NAME = [1 2; 3 4]   define a matrix
//	store NAME              store the last result
//	delete NAME             delete a matrix
//	show NAME               return a matrix
//	list                    list the names of all matrices
//
// Every other line is evaluated as an expression.
func (intp *Interpreter) Execute(line string) (Result, error) {
	cl := parseCommand(line)
	tracer().P("cmd", cl.cmd).Debugf("execute %q", line)
	r := Result{Command: cl.cmd, Name: cl.name}
	var err error
	switch cl.cmd {
	case CmdLet:
		mat, e := intp.evaluator.Define(cl.name, cl.text)
		if err = e; err == nil {
			r.Value = matcalc.FromMatrix(mat)
		}
	case CmdStore:
		err = intp.evaluator.Store(cl.name)
		if err == nil {
			r.Value, _ = intp.evaluator.LastResult()
		}
	case CmdDelete:
		err = intp.evaluator.Delete(cl.name)
	case CmdShow:
		mat, e := intp.evaluator.Show(cl.name)
		if err = e; err == nil {
			r.Value = matcalc.FromMatrix(mat)
		}
	case CmdList:
		r.Names = intp.evaluator.Names()
	default:
		r.Value, err = intp.evaluator.Evaluate(cl.text)
	}
	return r, err
}
