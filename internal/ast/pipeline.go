package ast

// PipelineExpression is `exec stage1 => stage2 => ...`: command stages
// connected to the next via an OS pipe, optionally preceded by a string
// or file-handle source stage and followed by a file-handle destination
// stage (spec §4.4, §4.5).
type PipelineExpression struct {
	Stages    []PipelineStage
	Position_ Position
}

func (p *PipelineExpression) Pos() Position          { return p.Position_ }
func (p *PipelineExpression) expressionContentNode() {}

// PipelineStage is one stage of a pipeline: the expression producing the
// command to run, plus any captures declared on it.
type PipelineStage struct {
	Expr      *Expression
	Captures  []Capture
	Position_ Position
}

func (s PipelineStage) Pos() Position { return s.Position_ }

// CaptureField names which side channel of a stage's process a Capture
// reads.
type CaptureField int

const (
	CaptureStderr CaptureField = iota
	CaptureExitCode
)

// Capture is a `stderr`/`exit_code` capture clause on a pipeline stage.
// It always declares BindName as a new variable in the enclosing scope
// (spec §4.4 point 3) — it never assigns to an existing one, even if a
// variable with that name is already in scope.
type Capture struct {
	Field     CaptureField
	BindName  string
	Position_ Position
}

func (c Capture) Pos() Position { return c.Position_ }
