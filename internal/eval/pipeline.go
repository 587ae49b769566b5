package eval

import (
	"github.com/shpl-lang/shpl/internal/ast"
	"github.com/shpl-lang/shpl/internal/pipeline"
	"github.com/shpl-lang/shpl/internal/value"
)

// evalPipeline implements spec §4.4's pipeline-expression evaluation: it
// resolves every stage's expression to a Value, hands the ordered list
// to the Pipeline Executor (internal/pipeline) exactly once, then
// declares each stage's `cap` captures in the enclosing scope, in source
// order, per spec §5's ordering guarantee. If a command exits non-zero
// and its exit code was not captured, the pipeline fails fatally (spec
// §4.4 point 3).
func (e *Evaluator) evalPipeline(n *ast.PipelineExpression) (value.Value, error) {
	stages := make([]pipeline.Stage, len(n.Stages))
	hasStderrCapture := make([]bool, len(n.Stages))
	for i, stage := range n.Stages {
		v, err := e.evalExpression(stage.Expr, false)
		if err != nil {
			return nil, err
		}
		for _, cap := range stage.Captures {
			if cap.Field == ast.CaptureStderr {
				hasStderrCapture[i] = true
			}
		}
		stages[i] = pipeline.Stage{Value: v, CaptureStderr: hasStderrCapture[i]}
	}

	// Mirror internal/pipeline.Run's own source/destination
	// classification so captures can be matched back to the right
	// command-stage index in n.Stages.
	commandIndices := make([]int, 0, len(n.Stages))
	start := 0
	if len(stages) > 0 {
		switch stages[0].Value.(type) {
		case value.String, value.FileHandle:
			start = 1
		}
	}
	end := len(stages)
	if end > start {
		if _, ok := stages[end-1].Value.(value.FileHandle); ok {
			end--
		}
	}
	for i := start; i < end; i++ {
		commandIndices = append(commandIndices, i)
	}

	result, err := pipeline.Run(stages)
	if err != nil {
		return nil, execErr(n, "%s", err)
	}

	for j, out := range result.CommandOutputs {
		stageIdx := commandIndices[j]
		stage := n.Stages[stageIdx]
		exitCaptured := false
		for _, cap := range stage.Captures {
			switch cap.Field {
			case ast.CaptureStderr:
				text := ""
				if out.Stderr != nil {
					text = *out.Stderr
				}
				if err := e.stack.DeclareVariable(cap.BindName, ast.StringType{}, false, value.String{Text: text}); err != nil {
					return nil, execErr(n, "%s", err)
				}
			case ast.CaptureExitCode:
				exitCaptured = true
				if err := e.stack.DeclareVariable(cap.BindName, ast.IntegerType{}, false, value.Integer{Val: int32(out.ExitCode)}); err != nil {
					return nil, execErr(n, "%s", err)
				}
			}
		}
		if !exitCaptured && out.ExitCode != 0 {
			return nil, execErr(n, "pipeline command exited with status %d", out.ExitCode)
		}
	}

	return value.String{Text: result.Stdout}, nil
}
