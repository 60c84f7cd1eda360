package corelang

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/npillmayer/matcalc"
)

// === Expression Stack ======================================================

// ExprStack is a stack of values, used by the evaluation machine.
// Operators and functions pop their operands from the stack and push
// their result.
type ExprStack struct {
	stack *linkedliststack.Stack // a stack of matcalc.Value
}

// NewExprStack creates
// a new expression stack. It is fully initialized and empty.
func NewExprStack() *ExprStack {
	return &ExprStack{
		stack: linkedliststack.New(),
	}
}

// Top is part of
// stack functionality. Will return nil if stack is empty.
func (es *ExprStack) Top() matcalc.Value {
	tos, ok := es.stack.Peek()
	if !ok {
		return nil
	}
	return tos.(matcalc.Value)
}

// Pop is part of
// stack functionality.
func (es *ExprStack) Pop() (matcalc.Value, bool) {
	tos, ok := es.stack.Pop()
	if !ok {
		return nil, false
	}
	return tos.(matcalc.Value), true
}

// Push is part of
// stack functionality.
func (es *ExprStack) Push(v matcalc.Value) *ExprStack {
	es.stack.Push(v)
	return es
}

// PopArgs pops n values and returns them in push order, i.e. the value
// pushed first is at index 0.
func (es *ExprStack) PopArgs(n int, op string) ([]matcalc.Value, error) {
	if err := es.CheckOperands(n, op); err != nil {
		return nil, err
	}
	args := make([]matcalc.Value, n)
	for i := n - 1; i >= 0; i-- {
		args[i], _ = es.Pop()
	}
	return args, nil
}

// IsEmpty is part of
// stack functionality.
func (es *ExprStack) IsEmpty() bool {
	return es.stack.Empty()
}

// Size is part of
// stack functionality.
func (es *ExprStack) Size() int {
	return es.stack.Size()
}

// Clear removes all values from the stack.
func (es *ExprStack) Clear() {
	es.stack.Clear()
}

// Dump is an
// internal helper: dump expression stack. This is printed to the trace
// with level=DEBUG.
func (es *ExprStack) Dump() {
	tracer().P("size", es.Size()).Debugf("Expression Stack, TOS first:")
	it := es.stack.Iterator()
	for it.Next() {
		tracer().P("#", it.Index()).Debugf("    %s", it.Value())
	}
}

// CheckOperands checks
// the operands on the stack for an operation: there have to be at least
// n operands on the stack.
func (es *ExprStack) CheckOperands(n int, op string) error {
	if n < 0 {
		return fmt.Errorf("%w: illegal operand count %d for %s", matcalc.ErrInvalidSyntax, n, op)
	}
	if es.Size() < n {
		return fmt.Errorf("%w: %s needs %d operand(s), but %d on stack",
			matcalc.ErrInvalidSyntax, op, n, es.Size())
	}
	return nil
}
