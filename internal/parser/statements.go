package parser

import (
	"github.com/shpl-lang/shpl/internal/ast"
	"github.com/shpl-lang/shpl/internal/lexer"
)

// parseStatement parses one `statement` production (spec §4.3), dispatching
// on keyword, falling back to the assignment-vs-expression-statement
// ambiguity resolved by parseAssignOrExprStmt.
func parseStatement(c *Cursor) (ast.Statement, error) {
	tok := c.Current()
	if tok.Kind == lexer.Keyword {
		switch tok.Text {
		case "var":
			return parseVarStatement(c)
		case "return":
			return parseReturn(c)
		case "exit":
			return parseExit(c)
		case "break":
			c.Next()
			end, err := c.Expect(lexer.Semicolon)
			if err != nil {
				return nil, err
			}
			return &ast.Break{Position_: ast.Position{Start: tok.Start, End: end.End}}, nil
		case "continue":
			c.Next()
			end, err := c.Expect(lexer.Semicolon)
			if err != nil {
				return nil, err
			}
			return &ast.Continue{Position_: ast.Position{Start: tok.Start, End: end.End}}, nil
		}
	}
	return parseAssignOrExprStmt(c)
}

// parseTarget parses `target ::= ident | '(' ident (',' ident)* ','? ')'`.
func parseTarget(c *Cursor) (ast.Target, error) {
	tok := c.Current()
	if tok.Kind == lexer.Identifier {
		c.Next()
		return ast.Target{Names: []string{tok.Text}, Position_: ast.Position{Start: tok.Start, End: tok.End}}, nil
	}
	if tok.Kind != lexer.LeftBracket {
		return ast.Target{}, unexpected(tok, "an assignment target")
	}
	c.Next()
	var names []string
	for !c.Is(lexer.RightBracket) {
		nameTok, err := c.Expect(lexer.Identifier)
		if err != nil {
			return ast.Target{}, err
		}
		names = append(names, nameTok.Text)
		if c.Is(lexer.Comma) {
			c.Next()
			continue
		}
		break
	}
	end, err := c.Expect(lexer.RightBracket)
	if err != nil {
		return ast.Target{}, err
	}
	return ast.Target{Names: names, Position_: ast.Position{Start: tok.Start, End: end.End}}, nil
}

// parseVarStatement parses `decl | declAssign`, both starting with
// `'var' 'mut'?`. A single `ident : type` with no `=` is a Declaration
// (must be `mut` — spec §4.3 edge case: an uninitialized, non-mut
// variable is a parse-time error); anything followed by `=` is a
// DeclarationAssignment over a possibly-tuple target. `ident : type =
// expr` is also a DeclarationAssignment: the annotation is parsed but not
// kept, so the variable takes the initializer's type and the annotation
// is not checked against it.
func parseVarStatement(c *Cursor) (ast.Statement, error) {
	start := c.Current().Start
	if err := c.ExpectKeyword("var"); err != nil {
		return nil, err
	}
	mutable := c.EatKeyword("mut")

	if c.Current().Kind == lexer.Identifier && c.Peek(1).Kind == lexer.Colon {
		nameTok := c.Next()
		c.Next() // ':'
		t, err := ParseType(c)
		if err != nil {
			return nil, err
		}
		if c.Is(lexer.Equals) {
			c.Next()
			value, err := ParseExpression(c)
			if err != nil {
				return nil, err
			}
			end, err := c.Expect(lexer.Semicolon)
			if err != nil {
				return nil, err
			}
			return &ast.DeclarationAssignment{
				Mutable:   mutable,
				Target:    ast.Target{Names: []string{nameTok.Text}, Position_: ast.Position{Start: nameTok.Start, End: nameTok.End}},
				Value:     value,
				Position_: ast.Position{Start: start, End: end.End},
			}, nil
		}
		end, err := c.Expect(lexer.Semicolon)
		if err != nil {
			return nil, err
		}
		if !mutable {
			return nil, errorAt(nameTok, "uninitialized variable %q must be declared mut", nameTok.Text)
		}
		return &ast.Declaration{
			Name: nameTok.Text, Mutable: mutable, Type: t,
			Position_: ast.Position{Start: start, End: end.End},
		}, nil
	}

	target, err := parseTarget(c)
	if err != nil {
		return nil, err
	}
	if _, err := c.Expect(lexer.Equals); err != nil {
		return nil, err
	}
	value, err := ParseExpression(c)
	if err != nil {
		return nil, err
	}
	end, err := c.Expect(lexer.Semicolon)
	if err != nil {
		return nil, err
	}
	return &ast.DeclarationAssignment{
		Mutable: mutable, Target: target, Value: value,
		Position_: ast.Position{Start: start, End: end.End},
	}, nil
}

func parseReturn(c *Cursor) (ast.Statement, error) {
	start := c.Current().Start
	if err := c.ExpectKeyword("return"); err != nil {
		return nil, err
	}
	if c.Is(lexer.Semicolon) {
		end := c.Next()
		return &ast.Return{Position_: ast.Position{Start: start, End: end.End}}, nil
	}
	value, err := ParseExpression(c)
	if err != nil {
		return nil, err
	}
	end, err := c.Expect(lexer.Semicolon)
	if err != nil {
		return nil, err
	}
	return &ast.Return{Value: value, Position_: ast.Position{Start: start, End: end.End}}, nil
}

func parseExit(c *Cursor) (ast.Statement, error) {
	start := c.Current().Start
	if err := c.ExpectKeyword("exit"); err != nil {
		return nil, err
	}
	value, err := ParseExpression(c)
	if err != nil {
		return nil, err
	}
	end, err := c.Expect(lexer.Semicolon)
	if err != nil {
		return nil, err
	}
	return &ast.Exit{Value: value, Position_: ast.Position{Start: start, End: end.End}}, nil
}

// parseAssignOrExprStmt resolves the target/expression ambiguity at
// statement start: a target followed by a bare `=` (not `==`) is an
// Assignment; anything else backtracks to a plain `exprStmt ';'`. The
// trailing ';' is optional when the expression is a bare while/for/if or
// block expression, since its closing '}' already ends the statement.
func parseAssignOrExprStmt(c *Cursor) (ast.Statement, error) {
	start := c.Current().Start
	cp := c.Checkpoint()

	target, terr := parseTarget(c)
	if terr == nil && c.Is(lexer.Equals) && c.Peek(1).Kind != lexer.Equals {
		c.Next() // '='
		value, err := ParseExpression(c)
		if err != nil {
			return nil, err
		}
		end, err := c.Expect(lexer.Semicolon)
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Target: target, Value: value, Position_: ast.Position{Start: start, End: end.End}}, nil
	}

	c.Backtrack(cp)
	expr, err := ParseExpression(c)
	if err != nil {
		return nil, err
	}
	if !c.Is(lexer.Semicolon) && len(expr.Operations) == 0 && len(expr.First.Accessors) == 0 {
		switch expr.First.Content.(type) {
		case *ast.WhileExpression, *ast.ForExpression, *ast.BranchExpression, *ast.BlockExpression:
			return &ast.ExpressionStmt{Value: expr, Position_: ast.Position{Start: start, End: expr.Position_.End}}, nil
		}
	}
	end, err := c.Expect(lexer.Semicolon)
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Value: expr, Position_: ast.Position{Start: start, End: end.End}}, nil
}
