package parser

import (
	"github.com/shpl-lang/shpl/internal/ast"
	"github.com/shpl-lang/shpl/internal/lexer"
)

// parseStringLiteral parses the body of a `"..."` string literal, given
// that the opening DoubleQuote has already been consumed. It accumulates
// StringSegments around `${expr}` interpolations (spec §4.1's
// TemplateVariable context, §9's full-expression interpolation decision)
// until the closing DoubleQuote.
func parseStringLiteral(c *Cursor, start int) (*ast.StringLiteral, error) {
	lit := &ast.StringLiteral{}
	var prefix string
	for {
		tok := c.Current()
		switch tok.Kind {
		case lexer.StringLiteral:
			c.Next()
			prefix += tok.Text
		case lexer.Dollar:
			c.Next()
			if _, err := c.Expect(lexer.LeftCurly); err != nil {
				return nil, err
			}
			expr, err := ParseExpression(c)
			if err != nil {
				return nil, err
			}
			if _, err := c.Expect(lexer.RightCurly); err != nil {
				return nil, err
			}
			lit.Segments = append(lit.Segments, ast.StringSegment{Prefix: prefix, Value: expr})
			prefix = ""
		case lexer.DoubleQuote:
			end := tok.End
			c.Next()
			lit.Tail = prefix
			lit.Position_ = ast.Position{Start: start, End: end}
			return lit, nil
		case lexer.EOF:
			return nil, errorAt(tok, "unterminated string literal")
		default:
			return nil, unexpected(tok, "string content or closing '\"'")
		}
	}
}

// parseQuotedRun parses a `"..."` substring inside a command literal word
// (the ctxCommand -> ctxString transition), returning its text as a
// StringLiteral fragment merged into the enclosing word by the caller.
func parseQuotedRun(c *Cursor) (*ast.StringLiteral, error) {
	tok, err := c.Expect(lexer.DoubleQuote)
	if err != nil {
		return nil, err
	}
	return parseStringLiteral(c, tok.Start)
}

// parseCommandLiteral parses the body of a “ `...` “ command literal,
// given that the opening Backtick has already been consumed. Words are
// whitespace-separated; the lexer does not emit a token for the skipped
// whitespace, so adjacency between consecutive tokens' byte offsets is
// what tells the parser whether two fragments belong to the same word
// (spec §4.1's Command context: "whitespace is a separator (skipped)").
func parseCommandLiteral(c *Cursor, start int) (*ast.CommandLiteral, error) {
	lit := &ast.CommandLiteral{}
	for {
		tok := c.Current()
		if tok.Kind == lexer.Backtick {
			end := tok.End
			c.Next()
			lit.Position_ = ast.Position{Start: start, End: end}
			return lit, nil
		}
		if tok.Kind == lexer.EOF {
			return nil, errorAt(tok, "unterminated command literal")
		}
		word, err := parseCommandWord(c)
		if err != nil {
			return nil, err
		}
		lit.Words = append(lit.Words, word)
	}
}

// parseCommandWord consumes one maximal run of position-adjacent
// fragments — bare StringLiteral tokens and `"..."` quoted runs — that
// together form a single command word.
func parseCommandWord(c *Cursor) (*ast.StringLiteral, error) {
	word := &ast.StringLiteral{Position_: ast.Position{Start: c.Current().Start}}
	var prefix string
	prevEnd := -1

	appendQuoted := func(q *ast.StringLiteral) {
		for _, seg := range q.Segments {
			word.Segments = append(word.Segments, ast.StringSegment{Prefix: prefix + seg.Prefix, Value: seg.Value})
			prefix = ""
		}
		prefix += q.Tail
	}

	for {
		tok := c.Current()
		adjacent := prevEnd == -1 || tok.Start == prevEnd
		if !adjacent {
			break
		}
		switch tok.Kind {
		case lexer.StringLiteral:
			c.Next()
			prefix += tok.Text
			prevEnd = tok.End
		case lexer.DoubleQuote:
			q, err := parseQuotedRun(c)
			if err != nil {
				return nil, err
			}
			appendQuoted(q)
			prevEnd = q.Position_.End
		default:
			if prevEnd == -1 {
				return nil, unexpected(tok, "command word")
			}
			word.Position_.End = prevEnd
			word.Tail = prefix
			return word, nil
		}
	}
	word.Position_.End = prevEnd
	word.Tail = prefix
	return word, nil
}
