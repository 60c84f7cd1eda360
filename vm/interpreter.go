package vm

import (
	"errors"
	"fmt"

	"github.com/npillmayer/matcalc"
	"github.com/npillmayer/matcalc/corelang"
	"github.com/npillmayer/matcalc/matrix"
)

// ErrNoProgramToExecute flags an empty input program
var ErrNoProgramToExecute error = errors.New("no program to execute")

// Resolver looks up matrices by name. It is implemented by
// variables.SymbolTable.
type Resolver interface {
	Lookup(name string) (*matrix.Matrix, bool)
}

// Machine is a stack machine executing postfix programs.
// A Machine is not safe for concurrent use.
type Machine struct {
	symbols Resolver
	stack   *corelang.ExprStack // operand stack
	regs    RegisterSet         // registers to store op arguments in
}

// NewMachine creates a machine resolving operands from symbols.
func NewMachine(symbols Resolver) *Machine {
	return &Machine{
		symbols: symbols,
		stack:   corelang.NewExprStack(),
	}
}

// Run executes a program and returns the single value it leaves on the
// stack. The stack is cleared on every exit path.
func (m *Machine) Run(program Program) (matcalc.Value, error) {
	defer m.stack.Clear()
	if len(program) == 0 {
		return nil, fmt.Errorf("%w: %v", matcalc.ErrInvalidSyntax, ErrNoProgramToExecute)
	}
	tracer().Debugf("machine starts fetch, decode, execute loop")
	for pc, op := range program {
		m.regs.DecodeArg(op)
		if err := m.Execute(op); err != nil {
			tracer().P("pc", pc).Debugf("error executing %s: %v", op, err)
			return nil, err
		}
	}
	if m.stack.Size() != 1 {
		m.stack.Dump()
		return nil, fmt.Errorf("%w: %d values left after evaluation, expected 1",
			matcalc.ErrInvalidSyntax, m.stack.Size())
	}
	result, _ := m.stack.Pop()
	return result, nil
}

// Execute executes a single instruction. The argument of op is expected to
// be decoded into the registers.
func (m *Machine) Execute(op Op) error {
	tracer().Debugf("executing %s %s", op.opcode, op)
	switch op.opcode {
	case OpNop:
	case OpLoad:
		mat, ok := m.symbols.Lookup(m.regs.S)
		if !ok {
			return fmt.Errorf("%w: %s", matcalc.ErrUndefinedName, m.regs.S)
		}
		m.stack.Push(matcalc.FromMatrix(mat))
	case OpBinary, OpUnary:
		return m.stack.ApplyOperator(m.regs.O)
	case OpCall:
		return m.stack.CallFunction(m.regs.F, m.regs.Arity)
	case OpMalformed:
		return fmt.Errorf("%w: %s", matcalc.ErrInvalidSyntax, m.regs.S)
	default:
		return fmt.Errorf("%w: unknown opcode %d", matcalc.ErrInvalidSyntax, op.opcode)
	}
	return nil
}
