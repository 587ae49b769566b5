package parser

import (
	"github.com/shpl-lang/shpl/internal/ast"
	"github.com/shpl-lang/shpl/internal/lexer"
)

// parseFunction parses `function ::= 'func' ident '(' params? ')' ':' type
// block` (spec §3.2, §4.3).
func parseFunction(c *Cursor) (*ast.Function, error) {
	start := c.Current().Start
	if err := c.ExpectKeyword("func"); err != nil {
		return nil, err
	}
	nameTok, err := c.Expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := c.Expect(lexer.LeftBracket); err != nil {
		return nil, err
	}
	var params []ast.Parameter
	for !c.Is(lexer.RightBracket) {
		pname, err := c.Expect(lexer.Identifier)
		if err != nil {
			return nil, err
		}
		if _, err := c.Expect(lexer.Colon); err != nil {
			return nil, err
		}
		ptype, err := ParseType(c)
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Parameter{Name: pname.Text, Type: ptype})
		if c.Is(lexer.Comma) {
			c.Next()
			continue
		}
		break
	}
	if _, err := c.Expect(lexer.RightBracket); err != nil {
		return nil, err
	}
	if _, err := c.Expect(lexer.Colon); err != nil {
		return nil, err
	}
	returnType, err := ParseType(c)
	if err != nil {
		return nil, err
	}
	body, err := ParseBlock(c)
	if err != nil {
		return nil, err
	}
	return &ast.Function{
		Name: nameTok.Text, Parameters: params, ReturnType: returnType, Body: body,
		Position_: ast.Position{Start: start, End: body.Position_.End},
	}, nil
}
