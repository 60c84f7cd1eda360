/*
Package corelang implements the core operations of the matcalc expression
language: the expression stack used by the evaluation machine, and the
dispatch tables mapping operators and built-in functions to the routines of
package matrix.

Operators and functions are closed enumerations (see package grammar). Every
enumeration member has an entry in a dispatch table; there is no lookup by
name after tokenizing.

# Coercion

Values on the stack are either scalars or matrices. A 1×1 matrix is accepted
wherever a scalar argument is required (exponents, divisors, dimensions), and
a scalar is accepted wherever a matrix is required. Results of size 1×1 are
pushed as scalars.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package corelang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'matcalc.core'.
func tracer() tracing.Trace {
	return tracing.Select("matcalc.core")
}
