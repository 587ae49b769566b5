package parser

import (
	"strconv"

	"github.com/shpl-lang/shpl/internal/ast"
	"github.com/shpl-lang/shpl/internal/lexer"
)

// ParseExpression parses `expr ::= base (op base)*` (spec §4.3). Operators
// are collected flat, with no precedence climbing — chaining-class
// validation is internal/typecheck's job, not the parser's.
func ParseExpression(c *Cursor) (*ast.Expression, error) {
	first, err := parseBase(c)
	if err != nil {
		return nil, err
	}
	expr := &ast.Expression{First: first, Position_: first.Position_}
	for {
		cp := c.Checkpoint()
		op, ok := parseOperator(c)
		if !ok {
			c.Backtrack(cp)
			break
		}
		right, err := parseBase(c)
		if err != nil {
			return nil, err
		}
		expr.Operations = append(expr.Operations, ast.OperatorOperand{Operator: op, Right: right})
		expr.Position_.End = right.Position_.End
	}
	return expr, nil
}

// parseBase parses `base ::= content ('.' accessor | '[' expr ']')*`.
func parseBase(c *Cursor) (*ast.BaseExpression, error) {
	content, err := parseContent(c)
	if err != nil {
		return nil, err
	}
	base := &ast.BaseExpression{Content: content, Position_: content.Pos()}
	for {
		switch {
		case c.Is(lexer.Dot):
			c.Next()
			accessor, err := parseAccessor(c)
			if err != nil {
				return nil, err
			}
			base.Accessors = append(base.Accessors, accessor)
			base.Position_.End = accessor.Pos().End
		case c.Is(lexer.LeftSquare):
			if next := c.Peek(1); next.Kind == lexer.Keyword && next.Text == "cap" {
				// `[cap ...]` is a pipeline stage's capture list, left for
				// parseStage; it is not a subscript.
				return base, nil
			}
			start := c.Current().Start
			c.Next()
			index, err := ParseExpression(c)
			if err != nil {
				return nil, err
			}
			end, err := c.Expect(lexer.RightSquare)
			if err != nil {
				return nil, err
			}
			base.Accessors = append(base.Accessors, &ast.SubscriptAccessor{
				Index:     index,
				Position_: ast.Position{Start: start, End: end.End},
			})
			base.Position_.End = end.End
		default:
			return base, nil
		}
	}
}

// parseAccessor parses one `.N` or `.name[(args)]` accessor, given that
// the leading `.` has already been consumed.
func parseAccessor(c *Cursor) (ast.Accessor, error) {
	tok := c.Current()
	if tok.Kind == lexer.IntegerLiteral {
		c.Next()
		n, err := strconv.ParseUint(tok.Text, 10, 32)
		if err != nil {
			return nil, errorAt(tok, "tuple index out of range: %s", tok.Text)
		}
		return &ast.TupleIndexAccessor{Index: uint32(n), Position_: ast.Position{Start: tok.Start, End: tok.End}}, nil
	}
	nameTok, err := expectIdentOrKeywordName(c)
	if err != nil {
		return nil, err
	}
	accessor := &ast.FieldAccessor{Name: nameTok.Text, Position_: ast.Position{Start: nameTok.Start, End: nameTok.End}}
	if c.Is(lexer.LeftBracket) {
		args, end, err := parseArgList(c)
		if err != nil {
			return nil, err
		}
		accessor.Arguments = args
		accessor.HasArgs = true
		accessor.Position_.End = end
	}
	return accessor, nil
}

// expectIdentOrKeywordName accepts either an Identifier or a Keyword
// token as an accessor name: builtin instance methods (`ends_with`,
// `len`, `push`, `pop`) are plain identifiers, but nothing in the
// grammar reserves accessor names against the keyword set, so a keyword
// spelling is accepted too for forward compatibility with future
// builtins.
func expectIdentOrKeywordName(c *Cursor) (lexer.Token, error) {
	tok := c.Current()
	if tok.Kind == lexer.Identifier || tok.Kind == lexer.Keyword {
		c.Next()
		return tok, nil
	}
	return lexer.Token{}, unexpected(tok, "accessor name")
}

// parseArgList parses a parenthesized, comma-separated (trailing comma
// allowed) expression list, given that the cursor sits at the opening
// '('.
func parseArgList(c *Cursor) ([]*ast.Expression, int, error) {
	if _, err := c.Expect(lexer.LeftBracket); err != nil {
		return nil, 0, err
	}
	var args []*ast.Expression
	for !c.Is(lexer.RightBracket) {
		arg, err := ParseExpression(c)
		if err != nil {
			return nil, 0, err
		}
		args = append(args, arg)
		if c.Is(lexer.Comma) {
			c.Next()
			continue
		}
		break
	}
	end, err := c.Expect(lexer.RightBracket)
	if err != nil {
		return nil, 0, err
	}
	return args, end.End, nil
}

// parseContent dispatches on the current token to one of the `content`
// alternatives (spec §4.3). Order follows
// original_source/src/components/root/expressions/mod.rs's
// `expression_content!` macro list: literals, collections, bracket/tuple,
// control-flow expressions, pipeline, block, then variable-or-call.
func parseContent(c *Cursor) (ast.ExpressionContent, error) {
	tok := c.Current()
	switch {
	case tok.Kind == lexer.DoubleQuote:
		c.Next()
		return parseStringLiteral(c, tok.Start)
	case tok.Kind == lexer.Keyword && (tok.Text == "true" || tok.Text == "false"):
		c.Next()
		return &ast.BooleanLiteral{Value: tok.Text == "true", Position_: ast.Position{Start: tok.Start, End: tok.End}}, nil
	case tok.Kind == lexer.IntegerLiteral:
		return parseIntegerLiteral(c)
	case tok.Kind == lexer.Backtick:
		c.Next()
		return parseCommandLiteral(c, tok.Start)
	case tok.Kind == lexer.LeftSquare:
		return parseArrayLiteral(c)
	case tok.Kind == lexer.LeftBracket:
		return parseBracketOrTuple(c)
	case tok.Kind == lexer.Keyword && tok.Text == "if":
		return parseBranch(c)
	case tok.Kind == lexer.Keyword && tok.Text == "while":
		return parseWhile(c)
	case tok.Kind == lexer.Keyword && tok.Text == "for":
		return parseFor(c)
	case tok.Kind == lexer.Keyword && tok.Text == "exec":
		return parsePipeline(c)
	case tok.Kind == lexer.LeftCurly:
		return parseBlockExpression(c)
	case tok.Kind == lexer.Identifier:
		return parseVariableOrCall(c)
	default:
		return nil, unexpected(tok, "an expression")
	}
}

func parseIntegerLiteral(c *Cursor) (ast.ExpressionContent, error) {
	tok := c.Next()
	n, err := strconv.ParseInt(tok.Text, 10, 32)
	if err != nil {
		return nil, errorAt(tok, "integer literal out of range: %s", tok.Text)
	}
	return &ast.IntegerLiteral{Value: int32(n), Position_: ast.Position{Start: tok.Start, End: tok.End}}, nil
}

func parseArrayLiteral(c *Cursor) (ast.ExpressionContent, error) {
	start := c.Current().Start
	c.Next()
	var elements []*ast.Expression
	for !c.Is(lexer.RightSquare) {
		e, err := ParseExpression(c)
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
		if c.Is(lexer.Comma) {
			c.Next()
			continue
		}
		break
	}
	end, err := c.Expect(lexer.RightSquare)
	if err != nil {
		return nil, err
	}
	return &ast.ArrayLiteral{Elements: elements, Position_: ast.Position{Start: start, End: end.End}}, nil
}

func parseVariableOrCall(c *Cursor) (ast.ExpressionContent, error) {
	tok, err := c.Expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	v := &ast.VariableOrCall{Name: tok.Text, Position_: ast.Position{Start: tok.Start, End: tok.End}}
	if c.Is(lexer.LeftBracket) {
		args, end, err := parseArgList(c)
		if err != nil {
			return nil, err
		}
		v.Arguments = args
		v.HasArgs = true
		v.Position_.End = end
	}
	return v, nil
}

// parseBracketOrTuple implements the bracket-vs-tuple disambiguation
// (spec §4.3): `(expr)` is a bracket expression, `(expr, ...)` is a
// tuple. Bracket is tried first; a checkpoint lets the tuple matcher
// re-consume the same prefix on failure.
func parseBracketOrTuple(c *Cursor) (ast.ExpressionContent, error) {
	start := c.Current().Start
	cp := c.Checkpoint()
	c.Next() // consume '('

	first, err := ParseExpression(c)
	if err != nil {
		c.Backtrack(cp)
		return parseTupleLiteral(c)
	}

	if c.Is(lexer.Comma) {
		elements := []*ast.Expression{first}
		for c.Is(lexer.Comma) {
			c.Next()
			if c.Is(lexer.RightBracket) {
				break
			}
			e, err := ParseExpression(c)
			if err != nil {
				return nil, err
			}
			elements = append(elements, e)
		}
		end, err := c.Expect(lexer.RightBracket)
		if err != nil {
			return nil, err
		}
		return &ast.TupleLiteral{Elements: elements, Position_: ast.Position{Start: start, End: end.End}}, nil
	}

	end, err := c.Expect(lexer.RightBracket)
	if err != nil {
		c.Backtrack(cp)
		return parseTupleLiteral(c)
	}
	return &ast.BracketExpression{Inner: first, Position_: ast.Position{Start: start, End: end.End}}, nil
}

func parseTupleLiteral(c *Cursor) (ast.ExpressionContent, error) {
	start, err := c.Expect(lexer.LeftBracket)
	if err != nil {
		return nil, err
	}
	var elements []*ast.Expression
	for !c.Is(lexer.RightBracket) {
		e, err := ParseExpression(c)
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
		if c.Is(lexer.Comma) {
			c.Next()
			continue
		}
		break
	}
	end, err := c.Expect(lexer.RightBracket)
	if err != nil {
		return nil, err
	}
	return &ast.TupleLiteral{Elements: elements, Position_: ast.Position{Start: start.Start, End: end.End}}, nil
}
