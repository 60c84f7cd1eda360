package vm

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/matcalc/grammar"
)

// pending is an entry of the operator stack.
type pending struct {
	tok  grammar.Token
	op   grammar.Op // operator, with unary minus resolved
	call bool       // for '(': opens the argument list of a function
	args int        // for call parentheses: arguments seen so far
}

// Compile converts a token sequence in infix order into a postfix program.
//
// Operators of equal precedence associate to the left. A '-' is a unary
// minus if it starts an expression, i.e. if it is the first token or follows
// an operator, '(' or ','. Function calls are compiled to a single
// instruction "func:arity", where arity is the number of arguments found
// between the parentheses.
func Compile(tokens []grammar.Token) Program {
	var program Program
	ops := arraystack.New()
	prev := grammar.Token{}
	for _, tok := range tokens {
		switch tok.Type {
		case grammar.Number, grammar.Ident:
			program = append(program, Load(tok.Name))
		case grammar.Function:
			ops.Push(&pending{tok: tok})
		case grammar.LeftParen:
			ops.Push(&pending{
				tok:  tok,
				call: prev.Type == grammar.Function,
				args: 1,
			})
		case grammar.Comma:
			if prev.Type == grammar.Comma || prev.Type == grammar.LeftParen {
				program = append(program, Malformed("missing argument"))
			}
			program = popUntilParen(ops, program)
			if top, ok := peek(ops); !ok || !top.call {
				program = append(program, Malformed("comma outside of argument list"))
			} else {
				top.args++
			}
		case grammar.RightParen:
			program = popUntilParen(ops, program)
			top, ok := peek(ops)
			if !ok || top.tok.Type != grammar.LeftParen {
				program = append(program, Malformed("unbalanced ')'"))
				break
			}
			ops.Pop() // discard '('
			if !top.call {
				if prev.Type == grammar.LeftParen {
					program = append(program, Malformed("empty parentheses"))
				}
				break
			}
			arity := top.args
			if prev.Type == grammar.LeftParen {
				arity = 0
			} else if prev.Type == grammar.Comma {
				program = append(program, Malformed("missing argument"))
			}
			fn, _ := ops.Pop()
			program = append(program, Call(fn.(*pending).tok.Func, arity))
		case grammar.Operator:
			op := tok.Op
			if op == grammar.Sub && startsOperand(prev) {
				op = grammar.Neg
				ops.Push(&pending{tok: tok, op: op})
				break
			}
			for {
				top, ok := peek(ops)
				if !ok || top.tok.Type != grammar.Operator || top.op.Precedence() < op.Precedence() {
					break
				}
				ops.Pop()
				program = append(program, emit(top))
			}
			ops.Push(&pending{tok: tok, op: op})
		}
		prev = tok
	}
	for !ops.Empty() {
		p, _ := ops.Pop()
		top := p.(*pending)
		switch top.tok.Type {
		case grammar.Operator:
			program = append(program, emit(top))
		case grammar.LeftParen:
			program = append(program, Malformed("unbalanced '('"))
		case grammar.Function:
			program = append(program, Malformed("missing argument list for "+top.tok.Func.String()))
		}
	}
	tracer().Debugf("postfix: %s", program)
	return program
}

// startsOperand is true if a token following prev starts a new operand.
func startsOperand(prev grammar.Token) bool {
	switch prev.Type {
	case grammar.NoToken, grammar.Operator, grammar.LeftParen, grammar.Comma:
		return true
	}
	return false
}

// popUntilParen moves operators to the output until a '(' is on top of the
// operator stack. Function entries stop the loop as well; they are always
// directly below their '('.
func popUntilParen(ops *arraystack.Stack, program Program) Program {
	for {
		top, ok := peek(ops)
		if !ok || top.tok.Type != grammar.Operator {
			return program
		}
		ops.Pop()
		program = append(program, emit(top))
	}
}

func peek(ops *arraystack.Stack) (*pending, bool) {
	p, ok := ops.Peek()
	if !ok {
		return nil, false
	}
	return p.(*pending), true
}

func emit(p *pending) Op {
	if p.op.IsUnary() {
		return Unary(p.op)
	}
	return Binary(p.op)
}
