package parser

import (
	"github.com/shpl-lang/shpl/internal/ast"
	"github.com/shpl-lang/shpl/internal/lexer"
)

// parseOperator matches one of the single- or double-token operator
// spellings at the cursor, returning false if none matches. The lexer
// never combines multi-character operators (`==`, `!=`, `<=`, `>=`,
// `&&`, `||`) into one token (spec §3.1), so the parser looks ahead one
// extra token and backtracks on a near-miss, grounded on
// original_source/src/components/root/operator.rs's `match_tokens!`.
func parseOperator(c *Cursor) (ast.Operator, bool) {
	switch c.Current().Kind {
	case lexer.Plus:
		c.Next()
		return ast.Add, true
	case lexer.Dash:
		c.Next()
		return ast.Subtract, true
	case lexer.Star:
		c.Next()
		return ast.Multiply, true
	case lexer.ForwardSlash:
		c.Next()
		return ast.Divide, true
	case lexer.Percent:
		c.Next()
		return ast.Remainder, true
	case lexer.Equals:
		if c.Peek(1).Kind == lexer.Equals {
			c.Next()
			c.Next()
			return ast.Equal, true
		}
		return 0, false
	case lexer.Bang:
		if c.Peek(1).Kind == lexer.Equals {
			c.Next()
			c.Next()
			return ast.NotEqual, true
		}
		return 0, false
	case lexer.LeftAngle:
		cp := c.Checkpoint()
		c.Next()
		if c.Is(lexer.Equals) {
			c.Next()
			return ast.LessThanOrEqual, true
		}
		c.Backtrack(cp)
		c.Next()
		return ast.LessThan, true
	case lexer.RightAngle:
		cp := c.Checkpoint()
		c.Next()
		if c.Is(lexer.Equals) {
			c.Next()
			return ast.GreaterThanOrEqual, true
		}
		c.Backtrack(cp)
		c.Next()
		return ast.GreaterThan, true
	case lexer.And:
		if c.Peek(1).Kind == lexer.And {
			c.Next()
			c.Next()
			return ast.And, true
		}
		return 0, false
	case lexer.Pipe:
		if c.Peek(1).Kind == lexer.Pipe {
			c.Next()
			c.Next()
			return ast.Or, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// isArrow reports whether the cursor sits at a pipeline stage separator
// `=>` without consuming it.
func isArrow(c *Cursor) bool {
	return c.Current().Kind == lexer.Equals && c.Peek(1).Kind == lexer.RightAngle
}

func eatArrow(c *Cursor) {
	c.Next()
	c.Next()
}
