package eval

import (
	"github.com/shpl-lang/shpl/internal/ast"
	"github.com/shpl-lang/shpl/internal/builtins"
	"github.com/shpl-lang/shpl/internal/value"
)

// evalExpression evaluates a flat operator chain strictly left-to-right
// (spec §4.4 and §5's ordering guarantee), applying every operator
// eagerly — including `&&`/`||`, per SPEC_FULL.md §9's resolution of the
// short-circuit Open Question. arrayHint threads the enclosing
// declaration/assignment's `mut` flag down to a bare array-literal
// expression, mirroring internal/typecheck's identical hint (see
// DESIGN.md).
func (e *Evaluator) evalExpression(expr *ast.Expression, arrayHint bool) (value.Value, error) {
	left, err := e.evalBase(expr.First, arrayHint)
	if err != nil {
		return nil, err
	}
	for _, op := range expr.Operations {
		right, err := e.evalBase(op.Right, false)
		if err != nil {
			return nil, err
		}
		left, err = applyOperator(expr, op.Operator, left, right)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func applyOperator(node ast.Node, op ast.Operator, left, right value.Value) (value.Value, error) {
	switch op {
	case ast.Add:
		switch l := left.(type) {
		case value.Integer:
			r, ok := right.(value.Integer)
			if !ok {
				return nil, execErr(node, "'+' requires two integers or two strings")
			}
			sum := int64(l.Val) + int64(r.Val)
			if sum > 2147483647 || sum < -2147483648 {
				return nil, execErr(node, "integer overflow in '+'")
			}
			return value.Integer{Val: int32(sum)}, nil
		case value.String:
			r, ok := right.(value.String)
			if !ok {
				return nil, execErr(node, "'+' requires two integers or two strings")
			}
			return value.String{Text: l.Text + r.Text}, nil
		default:
			return nil, execErr(node, "'+' requires two integers or two strings")
		}

	case ast.Subtract, ast.Multiply, ast.Divide, ast.Remainder:
		l, lok := left.(value.Integer)
		r, rok := right.(value.Integer)
		if !lok || !rok {
			return nil, execErr(node, "%s requires two integers", op)
		}
		switch op {
		case ast.Subtract:
			return value.Integer{Val: l.Val - r.Val}, nil
		case ast.Multiply:
			return value.Integer{Val: l.Val * r.Val}, nil
		case ast.Divide:
			if r.Val == 0 {
				return nil, execErr(node, "division by zero")
			}
			return value.Integer{Val: l.Val / r.Val}, nil
		case ast.Remainder:
			if r.Val == 0 {
				return nil, execErr(node, "modulo by zero")
			}
			return value.Integer{Val: l.Val % r.Val}, nil
		}

	case ast.LessThan, ast.GreaterThan, ast.LessThanOrEqual, ast.GreaterThanOrEqual:
		l, lok := left.(value.Integer)
		r, rok := right.(value.Integer)
		if !lok || !rok {
			return nil, execErr(node, "%s requires two integers", op)
		}
		switch op {
		case ast.LessThan:
			return value.Boolean{Val: l.Val < r.Val}, nil
		case ast.GreaterThan:
			return value.Boolean{Val: l.Val > r.Val}, nil
		case ast.LessThanOrEqual:
			return value.Boolean{Val: l.Val <= r.Val}, nil
		case ast.GreaterThanOrEqual:
			return value.Boolean{Val: l.Val >= r.Val}, nil
		}

	case ast.Equal:
		return value.Boolean{Val: value.Equal(left, right)}, nil
	case ast.NotEqual:
		return value.Boolean{Val: !value.Equal(left, right)}, nil

	case ast.And, ast.Or:
		l, lok := left.(value.Boolean)
		r, rok := right.(value.Boolean)
		if !lok || !rok {
			return nil, execErr(node, "%s requires two booleans", op)
		}
		if op == ast.And {
			return value.Boolean{Val: l.Val && r.Val}, nil
		}
		return value.Boolean{Val: l.Val || r.Val}, nil
	}

	return nil, execErr(node, "unsupported operator %s", op)
}

func (e *Evaluator) evalBase(b *ast.BaseExpression, arrayHint bool) (value.Value, error) {
	current, err := e.evalContent(b.Content, arrayHint)
	if err != nil {
		return nil, err
	}
	for _, acc := range b.Accessors {
		current, err = e.evalAccessor(current, acc)
		if err != nil {
			return nil, err
		}
	}
	return current, nil
}

func (e *Evaluator) evalAccessor(receiver value.Value, acc ast.Accessor) (value.Value, error) {
	switch a := acc.(type) {
	case *ast.TupleIndexAccessor:
		tup, ok := receiver.(value.Tuple)
		if !ok || int(a.Index) >= len(tup.Elements) {
			return nil, execErr(a, "tuple index %d out of range", a.Index)
		}
		return tup.Elements[a.Index], nil

	case *ast.SubscriptAccessor:
		idxVal, err := e.evalExpression(a.Index, false)
		if err != nil {
			return nil, err
		}
		idx, ok := idxVal.(value.Integer)
		if !ok {
			return nil, execErr(a, "array index must be an integer")
		}
		arr, ok := receiver.(value.Array)
		if !ok {
			return nil, execErr(a, "'[...]' requires an array")
		}
		el, ok := arr.At(int(idx.Val))
		if !ok {
			return nil, execErr(a, "array index %d out of range (len %d)", idx.Val, arr.Len())
		}
		return el, nil

	case *ast.FieldAccessor:
		args := make([]value.Value, len(a.Arguments))
		for i, argExpr := range a.Arguments {
			v, err := e.evalExpression(argExpr, false)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		result, err := builtins.CallInstance(receiver, a.Name, args)
		if err != nil {
			return nil, execErr(a, "%s", err)
		}
		return result, nil

	default:
		return nil, execErr(acc, "unhandled accessor type %T", acc)
	}
}

func (e *Evaluator) evalStringText(lit *ast.StringLiteral) (string, error) {
	var sb []byte
	for _, seg := range lit.Segments {
		sb = append(sb, seg.Prefix...)
		v, err := e.evalExpression(seg.Value, false)
		if err != nil {
			return "", err
		}
		sb = append(sb, interpolatedText(v)...)
	}
	sb = append(sb, lit.Tail...)
	return string(sb), nil
}

// interpolatedText renders v for insertion into a string/command
// interpolation: strings insert their raw text (not the quoted §6.3
// debug form `fmt`/`str` produce), everything else uses its normal
// String() rendering.
func interpolatedText(v value.Value) string {
	if s, ok := v.(value.String); ok {
		return s.Text
	}
	return v.String()
}

func (e *Evaluator) evalContent(content ast.ExpressionContent, arrayHint bool) (value.Value, error) {
	switch n := content.(type) {
	case *ast.StringLiteral:
		text, err := e.evalStringText(n)
		if err != nil {
			return nil, err
		}
		return value.String{Text: text}, nil

	case *ast.BooleanLiteral:
		return value.Boolean{Val: n.Value}, nil

	case *ast.IntegerLiteral:
		return value.Integer{Val: n.Value}, nil

	case *ast.CommandLiteral:
		return e.evalCommandLiteral(n)

	case *ast.ArrayLiteral:
		elements := make([]value.Value, len(n.Elements))
		for i, el := range n.Elements {
			v, err := e.evalExpression(el, false)
			if err != nil {
				return nil, err
			}
			elements[i] = v
		}
		elemType := elements[0].Type()
		return value.NewArray(elemType, arrayHint, elements), nil

	case *ast.TupleLiteral:
		elements := make([]value.Value, len(n.Elements))
		for i, el := range n.Elements {
			v, err := e.evalExpression(el, false)
			if err != nil {
				return nil, err
			}
			elements[i] = v
		}
		return value.Tuple{Elements: elements}, nil

	case *ast.BracketExpression:
		return e.evalExpression(n.Inner, arrayHint)

	case *ast.VariableOrCall:
		return e.evalVariableOrCall(n)

	case *ast.WhileExpression:
		return e.evalWhile(n)

	case *ast.ForExpression:
		return e.evalFor(n)

	case *ast.BranchExpression:
		return e.evalBranch(n)

	case *ast.BlockExpression:
		e.stack.PushScope()
		err := e.runBlock(n.Body)
		e.stack.PopScope()
		if err != nil {
			return nil, err
		}
		return value.Void{}, nil

	case *ast.PipelineExpression:
		return e.evalPipeline(n)

	default:
		return nil, execErr(content, "unhandled expression content %T", content)
	}
}

func (e *Evaluator) evalCommandLiteral(n *ast.CommandLiteral) (value.Value, error) {
	words := make([]string, len(n.Words))
	for i, w := range n.Words {
		text, err := e.evalStringText(w)
		if err != nil {
			return nil, err
		}
		words[i] = text
	}
	if len(words) == 0 {
		return nil, execErr(n, "command literal must name a program")
	}
	return value.Command{Program: words[0], Arguments: words[1:]}, nil
}

func (e *Evaluator) evalWhile(n *ast.WhileExpression) (value.Value, error) {
	for {
		condVal, err := e.evalExpression(n.Condition, false)
		if err != nil {
			return nil, err
		}
		cond, ok := condVal.(value.Boolean)
		if !ok {
			return nil, execErr(n, "while condition must be boolean")
		}
		if !cond.Val {
			return value.Void{}, nil
		}

		e.stack.PushScope()
		err = e.runBlock(n.Body)
		e.stack.PopScope()
		if err != nil {
			if cf, ok := err.(*ControlFlow); ok {
				if cf.Kind == CFBreak {
					return value.Void{}, nil
				}
				if cf.Kind == CFContinue {
					continue
				}
			}
			return nil, err
		}
	}
}

func (e *Evaluator) evalFor(n *ast.ForExpression) (value.Value, error) {
	srcVal, err := e.evalExpression(n.Source, false)
	if err != nil {
		return nil, err
	}
	arr, ok := srcVal.(value.Array)
	if !ok {
		return nil, execErr(n, "for-in requires an array source")
	}
	release, ok := arr.Borrow()
	if !ok {
		return nil, execErr(n, "array is already mutably borrowed")
	}
	defer release()

	for i := 0; i < arr.Len(); i++ {
		el, _ := arr.At(i)
		e.stack.PushScope()
		if err := e.stack.DeclareVariable(n.LoopVariable, el.Type(), false, el); err != nil {
			e.stack.PopScope()
			return nil, execErr(n, "%s", err)
		}
		err := e.runBlock(n.Body)
		e.stack.PopScope()
		if err != nil {
			if cf, ok := err.(*ControlFlow); ok {
				if cf.Kind == CFBreak {
					return value.Void{}, nil
				}
				if cf.Kind == CFContinue {
					continue
				}
			}
			return nil, err
		}
	}
	return value.Void{}, nil
}

func (e *Evaluator) evalBranch(n *ast.BranchExpression) (value.Value, error) {
	for _, branch := range n.Branches {
		condVal, err := e.evalExpression(branch.Condition, false)
		if err != nil {
			return nil, err
		}
		cond, ok := condVal.(value.Boolean)
		if !ok {
			return nil, execErr(n, "if condition must be boolean")
		}
		if cond.Val {
			e.stack.PushScope()
			err := e.runBlock(branch.Body)
			e.stack.PopScope()
			if err != nil {
				return nil, err
			}
			return value.Void{}, nil
		}
	}
	if n.Else != nil {
		e.stack.PushScope()
		err := e.runBlock(n.Else)
		e.stack.PopScope()
		if err != nil {
			return nil, err
		}
	}
	return value.Void{}, nil
}
