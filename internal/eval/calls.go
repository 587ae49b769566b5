package eval

import (
	"github.com/shpl-lang/shpl/internal/ast"
	"github.com/shpl-lang/shpl/internal/builtins"
	"github.com/shpl-lang/shpl/internal/value"
)

func (e *Evaluator) evalVariableOrCall(n *ast.VariableOrCall) (value.Value, error) {
	if !n.HasArgs {
		v, err := e.stack.ResolveVariable(n.Name)
		if err != nil {
			return nil, execErr(n, "%s", err)
		}
		return v, nil
	}

	args := make([]value.Value, len(n.Arguments))
	for i, argExpr := range n.Arguments {
		v, err := e.evalExpression(argExpr, false)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if fn, ok := e.stack.LookupFunction(n.Name); ok {
		return e.callFunction(n, fn, args)
	}
	if builtins.IsFree(n.Name) {
		v, err := builtins.Call(e.env, n.Name, args)
		if err != nil {
			return nil, execErr(n, "%s", err)
		}
		return v, nil
	}
	return nil, execErr(n, "undefined function %q", n.Name)
}

// callFunction implements spec §4.4's function-call protocol: push the
// call-stack frame (failing if the depth cap is reached), replace the
// active scope stack with a single fresh scope holding the parameters
// as immutable locals (so the call cannot see or capture the caller's
// variables), execute the body, and restore the caller's scopes before
// checking the returned value's type against the declared return type.
func (e *Evaluator) callFunction(node ast.Node, fn *ast.Function, args []value.Value) (value.Value, error) {
	if err := e.stack.PushCall(fn.Name); err != nil {
		return nil, execErr(node, "%s", err)
	}
	defer e.stack.PopCall()

	previous := e.stack.SwapScopes(nil)
	e.stack.PushScope()
	for i, p := range fn.Parameters {
		if err := e.stack.DeclareVariable(p.Name, p.Type, false, args[i]); err != nil {
			e.stack.SwapScopes(previous)
			return nil, execErr(node, "%s", err)
		}
	}

	var result value.Value = value.Void{}
	err := e.runBlock(fn.Body)
	if err != nil {
		cf, ok := err.(*ControlFlow)
		if !ok || cf.Kind != CFReturn {
			e.stack.SwapScopes(previous)
			return nil, err
		}
		result = cf.Value
	}

	e.stack.SwapScopes(previous)

	if !result.Type().Equal(fn.ReturnType) {
		return nil, execErr(node, "function %q returned %s, expected %s", fn.Name, result.Type(), fn.ReturnType)
	}
	return result, nil
}
