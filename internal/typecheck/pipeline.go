package typecheck

import (
	"github.com/shpl-lang/shpl/internal/ast"
)

// inferPipeline validates spec §4.4's pipeline-expression rules: the
// first stage's type determines the source (a literal string, an
// Open-mode file handle, or itself a command); every later stage must be
// a command, except the last, which may instead be a Write/Append file
// handle destination. Captures always declare fresh bindings in the
// enclosing scope s, never assigning an existing one (spec §4.4 point
// 3), mirroring internal/runtime.Scope.declare's shadow-not-overwrite
// behavior.
func (c *Checker) inferPipeline(s *scope, n *ast.PipelineExpression) (ast.Type, error) {
	if len(n.Stages) == 0 {
		return nil, execErr(n, "pipeline must have at least one stage")
	}

	for i, stage := range n.Stages {
		t, err := c.inferExpression(s, stage.Expr, false)
		if err != nil {
			return nil, err
		}

		switch {
		case i == 0:
			switch t.(type) {
			case ast.StringType, ast.CommandType:
			case ast.FileHandleType:
				// Further narrowed to Open mode only at runtime; the
				// type system has no per-mode FileHandle subtype.
			default:
				return nil, execErr(stage, "pipeline source must be a string, file handle, or command, got %s", t)
			}
		case i == len(n.Stages)-1:
			switch t.(type) {
			case ast.CommandType, ast.FileHandleType:
			default:
				return nil, execErr(stage, "pipeline stage must be a command or file handle, got %s", t)
			}
		default:
			if _, ok := t.(ast.CommandType); !ok {
				return nil, execErr(stage, "pipeline stage must be a command, got %s", t)
			}
		}

		for _, cap := range stage.Captures {
			switch cap.Field {
			case ast.CaptureStderr:
				s.declare(cap.BindName, ast.StringType{}, false)
			case ast.CaptureExitCode:
				s.declare(cap.BindName, ast.IntegerType{}, false)
			}
		}
	}

	return ast.StringType{}, nil
}
