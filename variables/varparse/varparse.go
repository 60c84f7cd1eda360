/*
Package varparse reads matrix literals, as typed by users at the REPL or
handed over from scripts, and turns them into matrices.

A matrix literal lists its rows in brackets, separated by semicolons or
newlines. Row elements are separated by whitespace or commas:

	[1 2 3; 4 5 6]
	[1, -2.5; 0, 1e-3]

Brackets are optional.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package varparse

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/npillmayer/matcalc"
	"github.com/npillmayer/matcalc/matrix"
	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'matcalc.vars'.
func tracer() tracing.Trace {
	return tracing.Select("matcalc.vars")
}

// Token types of matrix literals.
const (
	tokNumber int = iota + 1
	tokRowSep
	tokOpen
	tokClose
)

var literalLexer *lexmachine.Lexer
var lexerErr error
var lexerOnce sync.Once

func initLexer() {
	lexerOnce.Do(func() {
		lexer := lexmachine.NewLexer()
		lexer.Add([]byte(`[\+\-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][\+\-]?[0-9]+)?`), token(tokNumber))
		lexer.Add([]byte(`;|\n`), token(tokRowSep))
		lexer.Add([]byte(`\[`), token(tokOpen))
		lexer.Add([]byte(`\]`), token(tokClose))
		lexer.Add([]byte(`( |\t|\r|,)+`), skip)
		if lexerErr = lexer.Compile(); lexerErr == nil {
			literalLexer = lexer
		}
	})
}

func token(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// ParseMatrix reads a matrix literal.
func ParseMatrix(literal string) (*matrix.Matrix, error) {
	initLexer()
	if lexerErr != nil {
		return nil, lexerErr
	}
	scanner, err := literalLexer.Scanner([]byte(literal))
	if err != nil {
		return nil, err
	}
	var grid [][]float64
	var row []float64
	depth := 0
	for tok, err, eos := scanner.Next(); !eos; tok, err, eos = scanner.Next() {
		if ui, is := err.(*machines.UnconsumedInput); is {
			return nil, fmt.Errorf("%w: matrix literal at column %d", matcalc.ErrLexical, ui.FailColumn)
		} else if err != nil {
			return nil, err
		}
		t := tok.(*lexmachine.Token)
		switch t.Type {
		case tokNumber:
			f, err := strconv.ParseFloat(t.Value.(string), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: malformed number %q", matcalc.ErrLexical, t.Value)
			}
			row = append(row, f)
		case tokRowSep:
			if len(row) > 0 {
				grid = append(grid, row)
				row = nil
			}
		case tokOpen:
			depth++
			if depth > 1 {
				return nil, fmt.Errorf("%w: nested brackets in matrix literal", matcalc.ErrInvalidSyntax)
			}
		case tokClose:
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%w: unbalanced brackets in matrix literal", matcalc.ErrInvalidSyntax)
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("%w: unbalanced brackets in matrix literal", matcalc.ErrInvalidSyntax)
	}
	if len(row) > 0 {
		grid = append(grid, row)
	}
	tracer().Debugf("matrix literal with %d rows", len(grid))
	return matrix.FromRows(grid)
}
