/*
Package matcalc is an interactive calculator for matrix algebra.

Users type infix expressions referencing named matrices and built-in functions,
e.g.

	det(A) * inv(B) + 2 * identity(3)

and matcalc evaluates them to a matrix or a scalar. The evaluation engine
consists of a tokenizer (package grammar), a shunting-yard converter and a
postfix stack machine (package vm), dispatch tables for operators and
functions (package corelang), a symbol table for named matrices
(package variables) and a library of linear algebra routines
(package matrix). Package evaluator ties these together.

This package holds the types shared by all of them: values and the errors
surfacing at the evaluation boundary.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package matcalc

import (
	"io"
	"os"

	"github.com/knadh/koanf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'matcalc'.
func tracer() tracing.Trace {
	return tracing.Select("matcalc")
}

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// Tracefile is the file we write our log output, if not nil.
var Tracefile io.WriteCloser

// DefaultPrecision is the number of decimals results are rounded to for
// display, if not configured otherwise.
const DefaultPrecision = 4

// Precision returns the configured number of decimals for displaying results.
func Precision() int {
	if Configuration == nil || !Configuration.Exists("display.precision") {
		return DefaultPrecision
	}
	p := Configuration.Int("display.precision")
	if p < 0 {
		tracer().Errorf("invalid display precision %d, using %d", p, DefaultPrecision)
		return DefaultPrecision
	}
	return p
}

// Exit exits the application. It gracefully shuts down all resources.
func Exit(errcode int) {
	if Tracefile != nil {
		Tracefile.Close()
	}
	os.Exit(errcode)
}
