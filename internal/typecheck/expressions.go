package typecheck

import (
	"github.com/shpl-lang/shpl/internal/ast"
	"github.com/shpl-lang/shpl/internal/builtins"
)

// inferExpression types a flat operator chain (spec §4.3/§4.4):
// evaluates the first base, then folds in each (operator, base) pair
// left to right, rejecting chains that mix incompatible chaining
// classes. arrayHint propagates the enclosing declaration/assignment's
// `mut` flag into a bare array-literal expression (see DESIGN.md's
// array-literal-mutability decision) — it is ignored everywhere except
// that one case.
func (c *Checker) inferExpression(s *scope, e *ast.Expression, arrayHint bool) (ast.Type, error) {
	current, err := c.inferBase(s, e.First, arrayHint)
	if err != nil {
		return nil, err
	}
	var prevOp *ast.Operator
	for _, op := range e.Operations {
		if prevOp != nil && !prevOp.ChainsWith(op.Operator) {
			return nil, execErr(e, "cannot chain %s with %s in the same expression", prevOp, op.Operator)
		}
		right, err := c.inferBase(s, op.Right, false)
		if err != nil {
			return nil, err
		}
		current, err = operatorResult(e, op.Operator, current, right)
		if err != nil {
			return nil, err
		}
		o := op.Operator
		prevOp = &o
	}
	return current, nil
}

func operatorResult(e *ast.Expression, op ast.Operator, left, right ast.Type) (ast.Type, error) {
	switch op {
	case ast.Add:
		if left.Equal(ast.IntegerType{}) && right.Equal(ast.IntegerType{}) {
			return ast.IntegerType{}, nil
		}
		if left.Equal(ast.StringType{}) && right.Equal(ast.StringType{}) {
			return ast.StringType{}, nil
		}
		return nil, execErr(e, "'+' requires two integers or two strings, got %s and %s", left, right)

	case ast.Subtract, ast.Multiply, ast.Divide, ast.Remainder:
		if !left.Equal(ast.IntegerType{}) || !right.Equal(ast.IntegerType{}) {
			return nil, execErr(e, "%s requires two integers, got %s and %s", op, left, right)
		}
		return ast.IntegerType{}, nil

	case ast.LessThan, ast.GreaterThan, ast.LessThanOrEqual, ast.GreaterThanOrEqual:
		if !left.Equal(ast.IntegerType{}) || !right.Equal(ast.IntegerType{}) {
			return nil, execErr(e, "%s requires two integers, got %s and %s", op, left, right)
		}
		return ast.BooleanType{}, nil

	case ast.Equal, ast.NotEqual:
		if !left.Equal(right) {
			return nil, execErr(e, "%s requires operands of the same type, got %s and %s", op, left, right)
		}
		return ast.BooleanType{}, nil

	case ast.And, ast.Or:
		if !left.Equal(ast.BooleanType{}) || !right.Equal(ast.BooleanType{}) {
			return nil, execErr(e, "%s requires two booleans, got %s and %s", op, left, right)
		}
		return ast.BooleanType{}, nil

	default:
		return nil, execErr(e, "unknown operator %s", op)
	}
}

func (c *Checker) inferBase(s *scope, b *ast.BaseExpression, arrayHint bool) (ast.Type, error) {
	current, err := c.inferContent(s, b.Content, arrayHint)
	if err != nil {
		return nil, err
	}
	for _, acc := range b.Accessors {
		current, err = c.applyAccessor(s, b, current, acc)
		if err != nil {
			return nil, err
		}
	}
	return current, nil
}

func (c *Checker) applyAccessor(s *scope, b *ast.BaseExpression, receiver ast.Type, acc ast.Accessor) (ast.Type, error) {
	switch a := acc.(type) {
	case *ast.TupleIndexAccessor:
		tup, ok := receiver.(ast.TupleType)
		if !ok {
			return nil, execErr(a, "'.%d' requires a tuple, got %s", a.Index, receiver)
		}
		if int(a.Index) >= len(tup.Elements) {
			return nil, execErr(a, "tuple index %d out of range (len %d)", a.Index, len(tup.Elements))
		}
		return tup.Elements[a.Index], nil

	case *ast.SubscriptAccessor:
		arr, ok := receiver.(ast.ArrayType)
		if !ok {
			return nil, execErr(a, "'[...]' requires an array, got %s", receiver)
		}
		idxType, err := c.inferExpression(s, a.Index, false)
		if err != nil {
			return nil, err
		}
		if !idxType.Equal(ast.IntegerType{}) {
			return nil, execErr(a, "array index must be an integer, got %s", idxType)
		}
		return arr.Element, nil

	case *ast.FieldAccessor:
		argTypes := make([]ast.Type, len(a.Arguments))
		for i, arg := range a.Arguments {
			t, err := c.inferExpression(s, arg, false)
			if err != nil {
				return nil, err
			}
			argTypes[i] = t
		}
		result, err := builtins.CheckInstanceCall(receiver, a.Name, argTypes)
		if err != nil {
			return nil, execErr(a, "%s", err)
		}
		return result, nil

	default:
		return nil, execErr(b, "unhandled accessor type %T", acc)
	}
}

func (c *Checker) checkStringLiteral(s *scope, lit *ast.StringLiteral) error {
	for _, seg := range lit.Segments {
		if _, err := c.inferExpression(s, seg.Value, false); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) inferContent(s *scope, content ast.ExpressionContent, arrayHint bool) (ast.Type, error) {
	switch n := content.(type) {
	case *ast.StringLiteral:
		if err := c.checkStringLiteral(s, n); err != nil {
			return nil, err
		}
		return ast.StringType{}, nil

	case *ast.BooleanLiteral:
		return ast.BooleanType{}, nil

	case *ast.IntegerLiteral:
		return ast.IntegerType{}, nil

	case *ast.CommandLiteral:
		for _, word := range n.Words {
			if err := c.checkStringLiteral(s, word); err != nil {
				return nil, err
			}
		}
		return ast.CommandType{}, nil

	case *ast.ArrayLiteral:
		if len(n.Elements) == 0 {
			return nil, execErr(n, "array literal must have at least one element")
		}
		elemType, err := c.inferExpression(s, n.Elements[0], false)
		if err != nil {
			return nil, err
		}
		for _, el := range n.Elements[1:] {
			t, err := c.inferExpression(s, el, false)
			if err != nil {
				return nil, err
			}
			if !t.Equal(elemType) {
				return nil, execErr(n, "array elements must share one type: %s vs %s", elemType, t)
			}
		}
		return ast.ArrayType{Element: elemType, Mutable: arrayHint}, nil

	case *ast.TupleLiteral:
		elems := make([]ast.Type, len(n.Elements))
		for i, el := range n.Elements {
			t, err := c.inferExpression(s, el, false)
			if err != nil {
				return nil, err
			}
			elems[i] = t
		}
		return ast.TupleType{Elements: elems}, nil

	case *ast.BracketExpression:
		return c.inferExpression(s, n.Inner, arrayHint)

	case *ast.VariableOrCall:
		return c.inferVariableOrCall(s, n)

	case *ast.WhileExpression:
		return c.inferWhile(s, n)

	case *ast.ForExpression:
		return c.inferFor(s, n)

	case *ast.BranchExpression:
		return c.inferBranch(s, n)

	case *ast.BlockExpression:
		if err := c.checkBlock(s, KindBlock, n.Body); err != nil {
			return nil, err
		}
		return ast.VoidType{}, nil

	case *ast.PipelineExpression:
		return c.inferPipeline(s, n)

	default:
		return nil, execErr(content, "unhandled expression content %T", content)
	}
}

func (c *Checker) inferVariableOrCall(s *scope, n *ast.VariableOrCall) (ast.Type, error) {
	if !n.HasArgs {
		b, ok := s.lookup(n.Name)
		if !ok {
			return nil, execErr(n, "undeclared variable %q", n.Name)
		}
		return b.typ, nil
	}

	argTypes := make([]ast.Type, len(n.Arguments))
	for i, arg := range n.Arguments {
		t, err := c.inferExpression(s, arg, false)
		if err != nil {
			return nil, err
		}
		argTypes[i] = t
	}

	if fn, ok := c.functions[n.Name]; ok {
		if len(fn.Parameters) != len(argTypes) {
			return nil, execErr(n, "%s expects %d argument(s), got %d", n.Name, len(fn.Parameters), len(argTypes))
		}
		for i, p := range fn.Parameters {
			if !p.Type.Equal(argTypes[i]) {
				return nil, execErr(n, "%s argument %d must be %s, got %s", n.Name, i+1, p.Type, argTypes[i])
			}
		}
		return fn.ReturnType, nil
	}

	result, err := builtins.CheckFreeCall(n.Name, argTypes)
	if err != nil {
		return nil, execErr(n, "%s", err)
	}
	return result, nil
}

func (c *Checker) inferWhile(s *scope, n *ast.WhileExpression) (ast.Type, error) {
	condType, err := c.inferExpression(s, n.Condition, false)
	if err != nil {
		return nil, err
	}
	if !condType.Equal(ast.BooleanType{}) {
		return nil, execErr(n, "while condition must be boolean, got %s", condType)
	}
	if err := c.checkBlock(s, KindLooped, n.Body); err != nil {
		return nil, err
	}
	return ast.VoidType{}, nil
}

func (c *Checker) inferFor(s *scope, n *ast.ForExpression) (ast.Type, error) {
	srcType, err := c.inferExpression(s, n.Source, false)
	if err != nil {
		return nil, err
	}
	arr, ok := srcType.(ast.ArrayType)
	if !ok {
		return nil, execErr(n, "for-in requires an array source, got %s", srcType)
	}
	loopScope := newScope(KindLooped, s)
	loopScope.declare(n.LoopVariable, arr.Element, false)
	for _, stmt := range n.Body.Statements {
		if err := c.checkStatement(loopScope, stmt); err != nil {
			return nil, err
		}
	}
	return ast.VoidType{}, nil
}

func (c *Checker) inferBranch(s *scope, n *ast.BranchExpression) (ast.Type, error) {
	for _, branch := range n.Branches {
		condType, err := c.inferExpression(s, branch.Condition, false)
		if err != nil {
			return nil, err
		}
		if !condType.Equal(ast.BooleanType{}) {
			return nil, execErr(n, "if condition must be boolean, got %s", condType)
		}
		if err := c.checkBlock(s, KindConditional, branch.Body); err != nil {
			return nil, err
		}
	}
	if n.Else != nil {
		if err := c.checkBlock(s, KindConditional, n.Else); err != nil {
			return nil, err
		}
	}
	return ast.VoidType{}, nil
}
