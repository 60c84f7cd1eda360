package vm

import (
	"fmt"
	"strings"

	"github.com/npillmayer/matcalc/grammar"
)

// OpCode is the operation code of an instruction.
type OpCode uint8

const (
	OpNop       OpCode = iota
	OpLoad             // LOAD ⟪name⟫ : push the value of a symbol onto the stack
	OpBinary           // BINARY ⟪op⟫ : pop B and A, push A op B
	OpUnary            // UNARY ⟪op⟫ : pop A, push op A
	OpCall             // CALL ⟪func:arity⟫ : pop arity arguments, push result
	OpMalformed        // MALFORMED ⟪reason⟫ : structural error in the source
)

func (code OpCode) String() string {
	switch code {
	case OpNop:
		return "NOP"
	case OpLoad:
		return "LOAD"
	case OpBinary:
		return "BINARY"
	case OpUnary:
		return "UNARY"
	case OpCall:
		return "CALL"
	case OpMalformed:
		return "MALFORMED"
	}
	return "?"
}

// Op is an instruction of a postfix program.
type Op struct {
	opcode OpCode
	arg    interface{}
}

// call is the argument of OpCall.
type call struct {
	f     grammar.Func
	arity int
}

// Load creates an instruction pushing the value of a symbol.
func Load(name string) Op {
	return Op{opcode: OpLoad, arg: name}
}

// Binary creates an instruction for a binary operator.
func Binary(op grammar.Op) Op {
	return Op{opcode: OpBinary, arg: op}
}

// Unary creates an instruction for a prefix operator.
func Unary(op grammar.Op) Op {
	return Op{opcode: OpUnary, arg: op}
}

// Call creates an instruction calling a built-in function with arity
// arguments.
func Call(f grammar.Func, arity int) Op {
	return Op{opcode: OpCall, arg: call{f: f, arity: arity}}
}

// Malformed creates an instruction flagging a structural error.
func Malformed(reason string) Op {
	return Op{opcode: OpMalformed, arg: reason}
}

// OpCode returns the operation code of op.
func (op Op) OpCode() OpCode {
	return op.opcode
}

// String returns the postfix notation of an instruction: a symbol name, an
// operator symbol or "func:arity".
func (op Op) String() string {
	switch op.opcode {
	case OpLoad:
		return op.arg.(string)
	case OpBinary, OpUnary:
		return op.arg.(grammar.Op).String()
	case OpCall:
		c := op.arg.(call)
		return fmt.Sprintf("%s:%d", c.f, c.arity)
	case OpMalformed:
		return "<" + op.arg.(string) + ">"
	}
	return op.opcode.String()
}

// Program is a sequence of instructions in postfix order.
type Program []Op

func (p Program) String() string {
	s := make([]string, len(p))
	for i, op := range p {
		s[i] = op.String()
	}
	return strings.Join(s, " ")
}

// RegisterSet holds the decoded argument of the current instruction.
type RegisterSet struct {
	S     string       // symbol name or malformation reason
	O     grammar.Op   // operator
	F     grammar.Func // function
	Arity int          // argument count
}

// DecodeArg loads the argument of op into the registers.
func (rset *RegisterSet) DecodeArg(op Op) {
	switch op.opcode {
	case OpLoad, OpMalformed:
		rset.S = op.arg.(string)
	case OpBinary, OpUnary:
		rset.O = op.arg.(grammar.Op)
	case OpCall:
		c := op.arg.(call)
		rset.F, rset.Arity = c.f, c.arity
	}
}
