// Package parser implements the recursive-descent parser described in
// spec §4.3: it wraps internal/lexer in a Cursor and produces an
// internal/ast.Root from (function | statement)* at the top level.
package parser

import (
	"github.com/shpl-lang/shpl/internal/ast"
	"github.com/shpl-lang/shpl/internal/lexer"
	"github.com/shpl-lang/shpl/internal/scripterr"
)

// Parse lexes and parses source into a Root. Lexer errors accumulated
// during the run are reported before any parser error, since a broken
// token stream makes the parse result unreliable; internal/scripterr
// renders whichever error surfaces into the positioned diagnostic spec
// §7 describes.
func Parse(source string) (*ast.Root, error) {
	lex := lexer.New(source)
	cursor := NewCursor(lex)

	root, parseErr := parseRoot(cursor)

	if errs := lex.Errors(); len(errs) > 0 {
		first := errs[0]
		return nil, &scripterr.LexerError{Message: first.Message, Offset: first.Offset}
	}
	if parseErr != nil {
		return nil, parseErr
	}
	return root, nil
}

func parseRoot(c *Cursor) (*ast.Root, error) {
	start := c.Current().Start
	root := &ast.Root{}
	for !c.Is(lexer.EOF) {
		if c.IsKeyword("func") {
			fn, err := parseFunction(c)
			if err != nil {
				return nil, err
			}
			root.Functions = append(root.Functions, fn)
			continue
		}
		stmt, err := parseStatement(c)
		if err != nil {
			return nil, err
		}
		root.Statements = append(root.Statements, stmt)
	}
	root.Position_ = ast.Position{Start: start, End: c.Current().End}
	return root, nil
}
