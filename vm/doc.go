/*
Package vm compiles token sequences into postfix programs and executes them.

Compile implements a shunting-yard converter, extended for unary minus and
for function calls with argument counting. It never fails: structural errors
in the input (unbalanced parentheses, stray commas, functions without an
argument list) are compiled into a malformed instruction, which is rejected
when the program is executed.

A Machine is a small stack machine. Operand instructions push values from the
symbol table, operator and call instructions are dispatched to package
corelang. After the last instruction exactly one value has to remain on the
stack.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package vm

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'matcalc.vm'
func tracer() tracing.Trace {
	return tracing.Select("matcalc.vm")
}
