package eval

import (
	"github.com/shpl-lang/shpl/internal/ast"
	"github.com/shpl-lang/shpl/internal/value"
)

func (e *Evaluator) execStatement(stmt ast.Statement) error {
	switch st := stmt.(type) {
	case *ast.Declaration:
		if err := e.stack.DeclareVariable(st.Name, st.Type, st.Mutable, nil); err != nil {
			return execErr(st, "%s", err)
		}
		return nil

	case *ast.DeclarationAssignment:
		arrayHint := len(st.Target.Names) == 1 && st.Mutable
		val, err := e.evalExpression(st.Value, arrayHint)
		if err != nil {
			return err
		}
		return e.declareTarget(st, st.Target, st.Mutable, val)

	case *ast.Assignment:
		arrayHint := false
		if len(st.Target.Names) == 1 && st.Target.Names[0] != "_" {
			if t, ok := e.stack.LookupVariableType(st.Target.Names[0]); ok {
				if at, ok := t.(ast.ArrayType); ok {
					arrayHint = at.Mutable
				}
			}
		}
		val, err := e.evalExpression(st.Value, arrayHint)
		if err != nil {
			return err
		}
		return e.assignTarget(st, st.Target, val)

	case *ast.ExpressionStmt:
		_, err := e.evalExpression(st.Value, false)
		return err

	case *ast.Return:
		var v value.Value = value.Void{}
		if st.Value != nil {
			val, err := e.evalExpression(st.Value, false)
			if err != nil {
				return err
			}
			v = val
		}
		return &ControlFlow{Kind: CFReturn, Value: v}

	case *ast.Exit:
		v, err := e.evalExpression(st.Value, false)
		if err != nil {
			return err
		}
		code, ok := v.(value.Integer)
		if !ok {
			return execErr(st, "'exit' requires an integer value")
		}
		return &ControlFlow{Kind: CFExit, ExitCode: uint8(code.Val)}

	case *ast.Break:
		return &ControlFlow{Kind: CFBreak}

	case *ast.Continue:
		return &ControlFlow{Kind: CFContinue}

	default:
		return execErr(stmt, "unhandled statement type %T", stmt)
	}
}

func (e *Evaluator) declareTarget(node ast.Node, target ast.Target, mutable bool, val value.Value) error {
	if len(target.Names) == 1 {
		if err := e.stack.DeclareVariable(target.Names[0], val.Type(), mutable, val); err != nil {
			return execErr(node, "%s", err)
		}
		return nil
	}
	tup, ok := val.(value.Tuple)
	if !ok || len(tup.Elements) != len(target.Names) {
		return execErr(node, "cannot destructure value into %d names", len(target.Names))
	}
	for i, name := range target.Names {
		if err := e.stack.DeclareVariable(name, tup.Elements[i].Type(), mutable, tup.Elements[i]); err != nil {
			return execErr(node, "%s", err)
		}
	}
	return nil
}

func (e *Evaluator) assignTarget(node ast.Node, target ast.Target, val value.Value) error {
	if len(target.Names) == 1 {
		if err := e.stack.AssignVariable(target.Names[0], val); err != nil {
			return execErr(node, "%s", err)
		}
		return nil
	}
	tup, ok := val.(value.Tuple)
	if !ok || len(tup.Elements) != len(target.Names) {
		return execErr(node, "cannot destructure value into %d names", len(target.Names))
	}
	for i, name := range target.Names {
		if err := e.stack.AssignVariable(name, tup.Elements[i]); err != nil {
			return execErr(node, "%s", err)
		}
	}
	return nil
}

// runBlock executes block's statements directly in the evaluator's
// current scope; callers that need a fresh scope (loops, branches,
// block expressions, function bodies) push one before calling this.
func (e *Evaluator) runBlock(block *ast.Block) error {
	for _, stmt := range block.Statements {
		if err := e.execStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}
