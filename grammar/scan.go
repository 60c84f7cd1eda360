package grammar

import (
	"fmt"
	"strconv"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/matcalc"
	"github.com/npillmayer/matcalc/matrix"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
	"golang.org/x/text/width"
)

// Operator lexemes. lexmachine prefers the longest match, so ".*" wins
// over "." followed by "*".
var operators = []string{`\+`, `\-`, `\*`, `/`, `\^`, `\.\*`, `\./`, `\.\^`}

var exprLexer *lexmachine.Lexer // created in initLexer()
var lexerErr error

var initOnce sync.Once // monitors one-time creation of the lexer

func initLexer() {
	initOnce.Do(func() {
		tracer().Infof("creating expression lexer")
		lexer := lexmachine.NewLexer()
		lexer.Add([]byte(`[0-9]+(\.[0-9]+)?|\.[0-9]+`), makeToken(Number))
		lexer.Add([]byte(`[A-Za-z_][A-Za-z0-9_]*`), makeSymbol())
		for _, op := range operators {
			lexer.Add([]byte(op), makeToken(Operator))
		}
		lexer.Add([]byte(`\(`), makeToken(LeftParen))
		lexer.Add([]byte(`\)`), makeToken(RightParen))
		lexer.Add([]byte(`,`), makeToken(Comma))
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("cannot compile expression lexer: %v", lexerErr)
			return
		}
		exprLexer = lexer
	})
}

func makeToken(t TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(t), string(m.Bytes), m), nil
	}
}

// makeSymbol separates function names from identifiers.
func makeSymbol() lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		lexeme := string(m.Bytes)
		if IsFunction(lexeme) {
			return s.Token(int(Function), lexeme, m), nil
		}
		return s.Token(int(Ident), lexeme, m), nil
	}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// Tokenize splits an expression into tokens. Numeric literals are registered
// with literals, and the resulting Number tokens carry the registered name.
func Tokenize(input string, literals LiteralRegistry) ([]Token, error) {
	initLexer()
	if lexerErr != nil {
		return nil, lexerErr
	}
	text := []byte(width.Fold.String(input))
	scanner, err := exprLexer.Scanner(text)
	if err != nil {
		return nil, err
	}
	var tokens []Token
	for tok, err, eos := scanner.Next(); !eos; tok, err, eos = scanner.Next() {
		if ui, is := err.(*machines.UnconsumedInput); is {
			r, _ := utf8.DecodeRune(text[ui.StartTC:])
			return nil, fmt.Errorf("%w: %q at column %d", matcalc.ErrLexical, r, ui.StartColumn)
		} else if err != nil {
			return nil, err
		}
		lmtok := tok.(*lexmachine.Token)
		token := Token{
			Type:   TokType(lmtok.Type),
			Lexeme: lmtok.Value.(string),
			Column: lmtok.StartColumn,
		}
		switch token.Type {
		case Number:
			f, err := strconv.ParseFloat(token.Lexeme, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: malformed number %q", matcalc.ErrLexical, token.Lexeme)
			}
			token.Name = literals.Register(matrix.Scalar(f))
		case Ident:
			token.Name = token.Lexeme
		case Operator:
			token.Op = opFromLexeme[token.Lexeme]
		case Function:
			token.Func, _ = LookupFunction(token.Lexeme)
		}
		tracer().Debugf("token %s", token)
		tokens = append(tokens, token)
	}
	return tokens, nil
}
