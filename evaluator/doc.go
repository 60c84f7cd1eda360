/*
Package evaluator is the entry point for evaluating matcalc expressions.

Evaluate runs the complete pipeline for a single expression: tokenizing
(package grammar), conversion to postfix (package vm), and execution on a
stack machine. Numeric literals of an expression live in the symbol table
as ephemeral entries for the duration of the call only; they are removed on
every exit path.

An Evaluator adds session state on top: the last successful result, which
may be stored under a name, and commands for defining, deleting and listing
named matrices. An Interpreter reads command lines and dispatches them to
an Evaluator.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package evaluator

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'matcalc.eval'.
func tracer() tracing.Trace {
	return tracing.Select("matcalc.eval")
}
