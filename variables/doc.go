/*
Package variables implements the symbol table of matcalc.

The symbol table maps names to matrices. There are two classes of names:

Persistent names are created by users: matrices entered by hand, results
stored under a name, or matrices defined by scripts. They live until they
are explicitly removed. A persistent name must be an identifier
(letters, digits and '_', not starting with a digit) and must not collide
with a built-in function name.

Ephemeral names are generated by the tokenizer for numeric literals
of a single expression. They are drawn from a Scratch, which is opened
before an expression is tokenized and released after evaluation, whether
evaluation succeeded or not:

	scratch := symtab.OpenScratch()
	defer scratch.Release()

Ephemeral names start with '#', a character which cannot be part of an
identifier, and carry a serial number unique for the lifetime of the table.
They can therefore never collide with persistent names or with each other.

Package variables is not safe for concurrent use; matcalc evaluates one
expression at a time.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package variables

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'matcalc.vars'.
func tracer() tracing.Trace {
	return tracing.Select("matcalc.vars")
}
