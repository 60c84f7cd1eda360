package corelang

import (
	"fmt"
	"math"

	"github.com/npillmayer/matcalc"
	"github.com/npillmayer/matcalc/grammar"
	"github.com/npillmayer/matcalc/matrix"
)

// BinaryOp is the implementation of a binary operator.
type BinaryOp func(a, b matcalc.Value) (matcalc.Value, error)

// UnaryOp is the implementation of a prefix operator.
type UnaryOp func(a matcalc.Value) (matcalc.Value, error)

// Builtin is the implementation of a built-in function, together with the
// number of arguments it expects.
type Builtin struct {
	Arity int
	Call  func(args []matcalc.Value) (matcalc.Value, error)
}

var binaryOps = map[grammar.Op]BinaryOp{
	grammar.Add:     matrixOp(matrix.Add),
	grammar.Sub:     matrixOp(matrix.Sub),
	grammar.Mul:     matrixOp(matrix.Mul),
	grammar.Div:     matrixOp(matrix.Div),
	grammar.ElemMul: elementwise(func(x, y float64) float64 { return x * y }),
	grammar.ElemDiv: elemDiv,
	grammar.ElemPow: elemPow,
	grammar.Pow:     pow,
}

var unaryOps = map[grammar.Op]UnaryOp{
	grammar.Neg: func(a matcalc.Value) (matcalc.Value, error) {
		return matcalc.FromMatrix(matrix.Neg(a.Self().AsMatrix())), nil
	},
}

var builtins = map[grammar.Func]Builtin{
	grammar.Det: {1, func(args []matcalc.Value) (matcalc.Value, error) {
		return scalarResult(matrix.Det(args[0].Self().AsMatrix()))
	}},
	grammar.Inv: {1, func(args []matcalc.Value) (matcalc.Value, error) {
		return matrixResult(matrix.Inverse(args[0].Self().AsMatrix()))
	}},
	grammar.Transpose: {1, func(args []matcalc.Value) (matcalc.Value, error) {
		return matcalc.FromMatrix(matrix.Transpose(args[0].Self().AsMatrix())), nil
	}},
	grammar.Adj: {1, func(args []matcalc.Value) (matcalc.Value, error) {
		return matrixResult(matrix.Adjoint(args[0].Self().AsMatrix()))
	}},
	grammar.Trace: {1, func(args []matcalc.Value) (matcalc.Value, error) {
		return scalarResult(matrix.Trace(args[0].Self().AsMatrix()))
	}},
	grammar.Power: {2, func(args []matcalc.Value) (matcalc.Value, error) {
		n, err := args[1].Self().AsInt()
		if err != nil {
			return nil, err
		}
		return matrixResult(matrix.Power(args[0].Self().AsMatrix(), n))
	}},
	grammar.Ref: {1, func(args []matcalc.Value) (matcalc.Value, error) {
		return matcalc.FromMatrix(matrix.RowEchelon(args[0].Self().AsMatrix(), false)), nil
	}},
	grammar.Rref: {1, func(args []matcalc.Value) (matcalc.Value, error) {
		return matcalc.FromMatrix(matrix.RowEchelon(args[0].Self().AsMatrix(), true)), nil
	}},
	grammar.Rank: {1, func(args []matcalc.Value) (matcalc.Value, error) {
		return matcalc.Scalar(matrix.Rank(args[0].Self().AsMatrix())), nil
	}},
	grammar.Identity: {1, func(args []matcalc.Value) (matcalc.Value, error) {
		n, err := args[0].Self().AsInt()
		if err != nil {
			return nil, err
		}
		return matrixResult(matrix.Identity(n))
	}},
	grammar.Zeros: {2, func(args []matcalc.Value) (matcalc.Value, error) {
		r, err := args[0].Self().AsInt()
		if err != nil {
			return nil, err
		}
		c, err := args[1].Self().AsInt()
		if err != nil {
			return nil, err
		}
		return matrixResult(matrix.Zeros(r, c))
	}},
	grammar.Dot: {2, func(args []matcalc.Value) (matcalc.Value, error) {
		return matrixResult(matrix.Dot(args[0].Self().AsMatrix(), args[1].Self().AsMatrix()))
	}},
	grammar.Kron: {2, func(args []matcalc.Value) (matcalc.Value, error) {
		return matrixResult(matrix.Kron(args[0].Self().AsMatrix(), args[1].Self().AsMatrix()))
	}},
}

// LookupBuiltin returns the implementation of a built-in function.
func LookupBuiltin(f grammar.Func) (Builtin, bool) {
	b, ok := builtins[f]
	return b, ok
}

// --- Stack operations ------------------------------------------------------

// ApplyOperator pops the operands of op from the stack, applies op and
// pushes the result. Binary operators pop B first, then A, and compute A op B.
func (es *ExprStack) ApplyOperator(op grammar.Op) error {
	if op.IsUnary() {
		impl, ok := unaryOps[op]
		if !ok {
			return fmt.Errorf("%w: no implementation for operator %s", matcalc.ErrInvalidSyntax, op)
		}
		args, err := es.PopArgs(1, op.String())
		if err != nil {
			return err
		}
		r, err := impl(args[0])
		if err != nil {
			return err
		}
		es.Push(r)
		tracer().P("op", op).Debugf("result %s", r)
		return nil
	}
	impl, ok := binaryOps[op]
	if !ok {
		return fmt.Errorf("%w: no implementation for operator %s", matcalc.ErrInvalidSyntax, op)
	}
	args, err := es.PopArgs(2, op.String())
	if err != nil {
		return err
	}
	r, err := impl(args[0], args[1])
	if err != nil {
		return err
	}
	es.Push(r)
	tracer().P("op", op).Debugf("result %s", r)
	return nil
}

// CallFunction pops arity arguments from the stack, calls the built-in
// function f and pushes the result. The argument count has to match the
// arity of f.
func (es *ExprStack) CallFunction(f grammar.Func, arity int) error {
	b, ok := builtins[f]
	if !ok {
		return fmt.Errorf("%w: unknown function %s", matcalc.ErrInvalidSyntax, f)
	}
	if arity != b.Arity {
		return fmt.Errorf("%w: %s expects %d argument(s), called with %d",
			matcalc.ErrInvalidSyntax, f, b.Arity, arity)
	}
	args, err := es.PopArgs(arity, f.String())
	if err != nil {
		return err
	}
	r, err := b.Call(args)
	if err != nil {
		return err
	}
	es.Push(r)
	tracer().P("func", f).Debugf("result %s", r)
	return nil
}

// --- Operator implementations ----------------------------------------------

func matrixOp(f func(a, b *matrix.Matrix) (*matrix.Matrix, error)) BinaryOp {
	return func(a, b matcalc.Value) (matcalc.Value, error) {
		return matrixResult(f(a.Self().AsMatrix(), b.Self().AsMatrix()))
	}
}

func elementwise(f func(x, y float64) float64) BinaryOp {
	return func(a, b matcalc.Value) (matcalc.Value, error) {
		return matrixResult(matrix.Hadamard(a.Self().AsMatrix(), b.Self().AsMatrix(), f))
	}
}

func elemDiv(a, b matcalc.Value) (matcalc.Value, error) {
	divisor := b.Self().AsMatrix()
	if matrix.HasZero(divisor) {
		return nil, fmt.Errorf("./: %w", matrix.ErrDivisionByZero)
	}
	return elementwise(func(x, y float64) float64 { return x / y })(a, b)
}

func elemPow(a, b matcalc.Value) (matcalc.Value, error) {
	e, err := b.Self().AsScalar()
	if err != nil {
		return nil, err
	}
	return matcalc.FromMatrix(matrix.ElemPow(a.Self().AsMatrix(), e)), nil
}

// pow is ordinary exponentiation for a scalar base and matrix power for a
// matrix base. The exponent of a matrix power has to be an integer.
func pow(a, b matcalc.Value) (matcalc.Value, error) {
	if a.Self().IsScalar() {
		x, _ := a.Self().AsScalar()
		e, err := b.Self().AsScalar()
		if err != nil {
			return nil, err
		}
		return matcalc.Scalar(math.Pow(x, e)), nil
	}
	n, err := b.Self().AsInt()
	if err != nil {
		return nil, err
	}
	return matrixResult(matrix.Power(a.Self().AsMatrix(), n))
}

func matrixResult(m *matrix.Matrix, err error) (matcalc.Value, error) {
	if err != nil {
		return nil, err
	}
	return matcalc.FromMatrix(m), nil
}

func scalarResult(x float64, err error) (matcalc.Value, error) {
	if err != nil {
		return nil, err
	}
	return matcalc.Scalar(x), nil
}
