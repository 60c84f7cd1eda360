package grammar

import (
	"fmt"

	"github.com/npillmayer/matcalc/matrix"
)

// TokType is the category of a token.
type TokType int

// Token categories
const (
	NoToken  TokType = iota
	Number           // numeric literal, registered under an ephemeral name
	Ident            // reference to a named matrix
	Operator         // binary (or unary) operator
	Function         // built-in function name
	Comma
	LeftParen
	RightParen
)

func (t TokType) String() string {
	switch t {
	case Number:
		return "Number"
	case Ident:
		return "Ident"
	case Operator:
		return "Operator"
	case Function:
		return "Function"
	case Comma:
		return "Comma"
	case LeftParen:
		return "LeftParen"
	case RightParen:
		return "RightParen"
	}
	return "NoToken"
}

// Token is a lexical unit of an expression.
type Token struct {
	Type   TokType
	Lexeme string // input text of the token
	Name   string // symbol table name, for Number and Ident
	Op     Op     // for Operator
	Func   Func   // for Function
	Column int    // 1-based column of the first character
}

func (t Token) String() string {
	switch t.Type {
	case Number, Ident:
		return fmt.Sprintf("%s(%s)", t.Type, t.Name)
	case Operator:
		return fmt.Sprintf("%s(%s)", t.Type, t.Op)
	case Function:
		return fmt.Sprintf("%s(%s)", t.Type, t.Func)
	}
	return t.Type.String()
}

// LiteralRegistry stores numeric literals under ephemeral names.
// It is implemented by variables.Scratch.
type LiteralRegistry interface {
	Register(*matrix.Matrix) string
}

// --- Operators -------------------------------------------------------------

// Op enumerates the operators of the expression language.
type Op int8

// Operators. Neg is never produced by the tokenizer: a '-' token is Sub, and
// it is up to the converter to decide from context that it is a unary minus.
const (
	NoOp    Op = iota
	Add        // +
	Sub        // -
	Mul        // *
	Div        // /
	ElemMul    // .*
	ElemDiv    // ./
	ElemPow    // .^
	Pow        // ^
	Neg        // unary -
)

var opSymbols = [...]string{"?", "+", "-", "*", "/", ".*", "./", ".^", "^", "neg"}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opSymbols) {
		return "?"
	}
	return opSymbols[op]
}

var opFromLexeme = map[string]Op{
	"+": Add, "-": Sub, "*": Mul, "/": Div,
	".*": ElemMul, "./": ElemDiv, ".^": ElemPow, "^": Pow,
}

// Precedence returns the binding strength of an operator. Unary minus binds
// tighter than multiplicative operators, but looser than exponentiation, so
// that -2^2 = -4 and -A*B = (-A)*B.
func (op Op) Precedence() int {
	switch op {
	case Add, Sub:
		return 1
	case Mul, Div, ElemMul, ElemDiv:
		return 2
	case Neg:
		return 3
	case Pow, ElemPow:
		return 4
	}
	return 0
}

// IsUnary is a predicate: is op a prefix operator?
func (op Op) IsUnary() bool {
	return op == Neg
}

// --- Functions -------------------------------------------------------------

// Func enumerates the built-in functions.
type Func int8

// Built-in functions
const (
	NoFunc Func = iota
	Det
	Inv
	Transpose
	Adj
	Trace
	Power
	Ref
	Rref
	Rank
	Identity
	Zeros
	Dot
	Kron
	maxFunc // marker, must be last
)

var funcNames = [...]string{
	"?", "det", "inv", "transpose", "adj", "trace", "power",
	"ref", "rref", "rank", "identity", "zeros", "dot", "kron",
}

func (f Func) String() string {
	if f <= NoFunc || f >= maxFunc {
		return "?"
	}
	return funcNames[f]
}

var funcFromName map[string]Func

func init() {
	funcFromName = make(map[string]Func, int(maxFunc))
	for f := NoFunc + 1; f < maxFunc; f++ {
		funcFromName[funcNames[f]] = f
	}
}

// Functions returns all built-in functions.
func Functions() []Func {
	fs := make([]Func, 0, int(maxFunc)-1)
	for f := NoFunc + 1; f < maxFunc; f++ {
		fs = append(fs, f)
	}
	return fs
}

// LookupFunction returns the function for a name, if any.
func LookupFunction(name string) (Func, bool) {
	f, ok := funcFromName[name]
	return f, ok
}

// IsFunction is a predicate: is name a built-in function name?
func IsFunction(name string) bool {
	_, ok := funcFromName[name]
	return ok
}
