package verify

import (
	"go/scanner"
	"go/token"
)

// unsupportedTokens are the operators the capture cannot decompose.
var unsupportedTokens = map[token.Token]string{
	token.SHL:  "<<",
	token.SHR:  ">>",
	token.LAND: "&&",
	token.LOR:  "||",
}

// scanBoundary tokenizes the captured source and rejects unsupported
// operators at bracket depth zero. Operators inside parentheses,
// brackets, or braces bound tighter than the capture and are ordinary
// operand internals, so "(a && b) == c" passes while "a && b" does not.
//
// The source text is display material; fragments that do not tokenize as
// Go pass untouched. Only the four unsupported operators are hunted.
func scanBoundary(source string) error {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(source))

	var s scanner.Scanner
	s.Init(file, []byte(source), nil, 0)

	depth := 0
	for {
		_, tok, _ := s.Scan()
		switch tok {
		case token.EOF:
			return nil
		case token.LPAREN, token.LBRACK, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACK, token.RBRACE:
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				if op, ok := unsupportedTokens[tok]; ok {
					return &UnsupportedOperatorError{Operator: op, Source: source}
				}
			}
		}
	}
}
