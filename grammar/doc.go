/*
Package grammar implements the tokenizer for matcalc expressions.

Expressions are infix formulas over named matrices, numeric literals and
built-in functions:

	2 * inv(A) .* B^2 - power(C, -1)

The tokenizer splits an expression into tokens: numbers, identifiers,
function names, operators, commas and parentheses. Numeric literals are not
kept as numbers but registered as 1×1 matrices under an ephemeral name,
which the token carries instead. This lets all subsequent stages treat every
operand uniformly as a reference to a named matrix.

Input is normalized before scanning: full-width characters, as produced by
some input methods, are folded to their ASCII counterparts. Characters which
do not start any token are rejected with matcalc.ErrLexical.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'matcalc.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("matcalc.grammar")
}
