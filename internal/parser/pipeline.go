package parser

import (
	"github.com/shpl-lang/shpl/internal/ast"
	"github.com/shpl-lang/shpl/internal/lexer"
)

// captureFieldNames maps a capture clause's field identifier to its
// CaptureField, and doubles as the BindName default when no `as` rename
// is given (spec §4.4 point 3, §4.3's `captures` grammar).
var captureFieldNames = map[string]ast.CaptureField{
	"stderr":    ast.CaptureStderr,
	"exit_code": ast.CaptureExitCode,
}

// parsePipeline parses `pipeline ::= 'exec' stage ('=>' stage)*`.
func parsePipeline(c *Cursor) (ast.ExpressionContent, error) {
	start := c.Current().Start
	if err := c.ExpectKeyword("exec"); err != nil {
		return nil, err
	}
	pipe := &ast.PipelineExpression{}
	stage, err := parseStage(c)
	if err != nil {
		return nil, err
	}
	pipe.Stages = append(pipe.Stages, stage)
	for isArrow(c) {
		eatArrow(c)
		stage, err := parseStage(c)
		if err != nil {
			return nil, err
		}
		pipe.Stages = append(pipe.Stages, stage)
	}
	pipe.Position_ = ast.Position{Start: start, End: pipe.Stages[len(pipe.Stages)-1].Position_.End}
	return pipe, nil
}

// parseStage parses `stage ::= expr captures?`.
func parseStage(c *Cursor) (ast.PipelineStage, error) {
	start := c.Current().Start
	expr, err := ParseExpression(c)
	if err != nil {
		return ast.PipelineStage{}, err
	}
	end := expr.Position_.End
	var captures []ast.Capture
	if c.Is(lexer.LeftSquare) {
		captures, end, err = parseCaptures(c)
		if err != nil {
			return ast.PipelineStage{}, err
		}
	}
	return ast.PipelineStage{Expr: expr, Captures: captures, Position_: ast.Position{Start: start, End: end}}, nil
}

// parseCaptures parses `captures ::= '[' ('cap' ident ('as' ident)?)*,? ']'`.
func parseCaptures(c *Cursor) ([]ast.Capture, int, error) {
	if _, err := c.Expect(lexer.LeftSquare); err != nil {
		return nil, 0, err
	}
	var captures []ast.Capture
	for !c.Is(lexer.RightSquare) {
		capStart := c.Current().Start
		if err := c.ExpectKeyword("cap"); err != nil {
			return nil, 0, err
		}
		nameTok, err := c.Expect(lexer.Identifier)
		if err != nil {
			return nil, 0, err
		}
		field, ok := captureFieldNames[nameTok.Text]
		if !ok {
			return nil, 0, errorAt(nameTok, "unknown capture field %q (expected stderr or exit_code)", nameTok.Text)
		}
		bindName := nameTok.Text
		end := nameTok.End
		if c.EatKeyword("as") {
			bindTok, err := c.Expect(lexer.Identifier)
			if err != nil {
				return nil, 0, err
			}
			bindName = bindTok.Text
			end = bindTok.End
		}
		captures = append(captures, ast.Capture{Field: field, BindName: bindName, Position_: ast.Position{Start: capStart, End: end}})
		if c.Is(lexer.Comma) {
			c.Next()
			continue
		}
		break
	}
	end, err := c.Expect(lexer.RightSquare)
	if err != nil {
		return nil, 0, err
	}
	return captures, end.End, nil
}
