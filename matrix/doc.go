/*
Package matrix implements the matrix values of matcalc and the linear algebra
routines operating on them.

A Matrix is a rectangular grid of float64 values with at least one row and one
column. Matrices are immutable once created: every operation allocates a fresh
result and leaves its operands untouched. Routines which conceptually work in
place, e.g. Gaussian elimination, operate on a private copy.

A 1×1 matrix doubles as a scalar, a matrix with a single row or column doubles
as a vector. Callers wanting an explicit scalar/matrix distinction should use
type matcalc.Value.

# Errors

All routines report failures by returning one of the sentinel errors of this
package, wrapped with the name of the operation ("Mul: matrix: dimension
mismatch"). Use errors.Is to test for a condition.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package matrix

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'matcalc.matrix'.
func tracer() tracing.Trace {
	return tracing.Select("matcalc.matrix")
}
