// Package eval is the tree-walking evaluator of spec §4.4: it executes
// a type-checked Root's statements and expressions against
// internal/runtime's scope stack, dispatching to internal/builtins and
// internal/pipeline, and propagating control-flow signals
// (Return/Break/Continue/Exit) the way spec §9's EvaluationException
// union describes. Grounded on go-dws internal/interp/interpreter.go's
// statement/expression dispatch shape, adapted to this tree's flat
// operator chains and exception-as-error-value control flow instead of
// go-dws's NodeType-on-Value sentinel style.
package eval

import (
	"fmt"
	"io"

	"github.com/shpl-lang/shpl/internal/ast"
	"github.com/shpl-lang/shpl/internal/builtins"
	"github.com/shpl-lang/shpl/internal/runtime"
	"github.com/shpl-lang/shpl/internal/scripterr"
	"github.com/shpl-lang/shpl/internal/value"
)

// ControlKind tags the four control-flow signals spec §9's
// EvaluationException union can carry (besides a plain fatal error).
type ControlKind int

const (
	CFReturn ControlKind = iota
	CFBreak
	CFContinue
	CFExit
)

// ControlFlow is the non-error half of spec §4.4's EvaluationException:
// a signal that propagates up through statement/block execution until a
// matching handler (function return, loop, or the root) absorbs it,
// rather than a fatal failure.
type ControlFlow struct {
	Kind     ControlKind
	Value    value.Value
	ExitCode uint8
}

func (c *ControlFlow) Error() string {
	switch c.Kind {
	case CFReturn:
		return "return"
	case CFBreak:
		return "break"
	case CFContinue:
		return "continue"
	case CFExit:
		return "exit"
	default:
		return "control flow"
	}
}

// Evaluator holds the execution state for one script run: the function
// table and scope/call stack (internal/runtime), and the I/O
// environment builtins dispatch against.
type Evaluator struct {
	stack *runtime.Stack
	env   *builtins.Env
}

// New creates an Evaluator over root's functions, ready to Run its
// top-level statements. maxDepth is the call-stack depth cap (spec §5,
// default internal/runtime.DefaultMaxCallStackDepth, overridable via
// internal/config).
func New(root *ast.Root, maxDepth int, env *builtins.Env) (*Evaluator, error) {
	stack := runtime.NewStack(maxDepth)
	for _, fn := range root.Functions {
		if err := stack.DeclareFunction(fn); err != nil {
			return nil, err
		}
	}
	return &Evaluator{stack: stack, env: env}, nil
}

// Run executes root's top-level statements in a fresh scope and returns
// the script's process exit code (spec §6.1): 0 on normal completion,
// the `exit`-supplied code on an Exit signal, or a fatal error.
func (e *Evaluator) Run(root *ast.Root) (uint8, error) {
	e.stack.PushScope()
	defer e.stack.PopScope()

	for _, stmt := range root.Statements {
		if err := e.execRootStatement(stmt); err != nil {
			if cf, ok := err.(*ControlFlow); ok && cf.Kind == CFExit {
				return cf.ExitCode, nil
			}
			return 0, attachCallStack(e.stack, err)
		}
	}
	return 0, nil
}

// execRootStatement runs one top-level statement. Per ast.ExpressionStmt's
// own doc comment, a non-Void result from a top-level expression
// statement is printed (raw text for a String, String() otherwise) —
// this is how a bare `exec ...;` pipeline's stdout reaches the terminal
// when its result isn't explicitly passed to `out`.
func (e *Evaluator) execRootStatement(stmt ast.Statement) error {
	es, ok := stmt.(*ast.ExpressionStmt)
	if !ok {
		return e.execStatement(stmt)
	}
	v, err := e.evalExpression(es.Value, false)
	if err != nil {
		return err
	}
	if _, isVoid := v.(value.Void); isVoid {
		return nil
	}
	if _, err := io.WriteString(e.env.Stdout, interpolatedText(v)); err != nil {
		return execErr(es, "%s", err)
	}
	return nil
}

func attachCallStack(stack *runtime.Stack, err error) error {
	if ee, ok := err.(*scripterr.ExecutionError); ok && len(ee.CallStack) == 0 {
		return ee.WithCallStack(stack.CallStack())
	}
	return err
}

func execErr(n ast.Node, format string, args ...interface{}) *scripterr.ExecutionError {
	pos := n.Pos()
	return &scripterr.ExecutionError{Message: fmt.Sprintf(format, args...), Start: pos.Start, End: pos.End}
}
