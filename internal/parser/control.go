package parser

import (
	"github.com/shpl-lang/shpl/internal/ast"
	"github.com/shpl-lang/shpl/internal/lexer"
)

// ParseBlock parses `{ statement* }`, used as a function body, loop body,
// branch body, and block-expression content.
func ParseBlock(c *Cursor) (*ast.Block, error) {
	start, err := c.Expect(lexer.LeftCurly)
	if err != nil {
		return nil, err
	}
	var statements []ast.Statement
	for !c.Is(lexer.RightCurly) && !c.Is(lexer.EOF) {
		stmt, err := parseStatement(c)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	end, err := c.Expect(lexer.RightCurly)
	if err != nil {
		return nil, err
	}
	return &ast.Block{Statements: statements, Position_: ast.Position{Start: start.Start, End: end.End}}, nil
}

func parseBlockExpression(c *Cursor) (ast.ExpressionContent, error) {
	start := c.Current().Start
	body, err := ParseBlock(c)
	if err != nil {
		return nil, err
	}
	return &ast.BlockExpression{Body: body, Position_: ast.Position{Start: start, End: body.Position_.End}}, nil
}

func parseWhile(c *Cursor) (ast.ExpressionContent, error) {
	start := c.Current().Start
	if err := c.ExpectKeyword("while"); err != nil {
		return nil, err
	}
	cond, err := ParseExpression(c)
	if err != nil {
		return nil, err
	}
	body, err := ParseBlock(c)
	if err != nil {
		return nil, err
	}
	return &ast.WhileExpression{Condition: cond, Body: body, Position_: ast.Position{Start: start, End: body.Position_.End}}, nil
}

func parseFor(c *Cursor) (ast.ExpressionContent, error) {
	start := c.Current().Start
	if err := c.ExpectKeyword("for"); err != nil {
		return nil, err
	}
	nameTok, err := c.Expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	if err := c.ExpectKeyword("in"); err != nil {
		return nil, err
	}
	source, err := ParseExpression(c)
	if err != nil {
		return nil, err
	}
	body, err := ParseBlock(c)
	if err != nil {
		return nil, err
	}
	return &ast.ForExpression{
		LoopVariable: nameTok.Text,
		Source:       source,
		Body:         body,
		Position_:    ast.Position{Start: start, End: body.Position_.End},
	}, nil
}

// parseBranch parses an if/else-if/else chain (spec §3.2, §4.3).
func parseBranch(c *Cursor) (ast.ExpressionContent, error) {
	start := c.Current().Start
	branch := &ast.BranchExpression{}
	for {
		if err := c.ExpectKeyword("if"); err != nil {
			return nil, err
		}
		cond, err := ParseExpression(c)
		if err != nil {
			return nil, err
		}
		body, err := ParseBlock(c)
		if err != nil {
			return nil, err
		}
		branch.Branches = append(branch.Branches, ast.ConditionalBranch{Condition: cond, Body: body})
		branch.Position_.End = body.Position_.End

		if !c.IsKeyword("else") {
			break
		}
		c.Next()
		if c.IsKeyword("if") {
			continue
		}
		elseBody, err := ParseBlock(c)
		if err != nil {
			return nil, err
		}
		branch.Else = elseBody
		branch.Position_.End = elseBody.Position_.End
		break
	}
	branch.Position_.Start = start
	return branch, nil
}
