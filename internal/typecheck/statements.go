package typecheck

import (
	"github.com/shpl-lang/shpl/internal/ast"
)

func (c *Checker) checkStatement(s *scope, stmt ast.Statement) error {
	switch st := stmt.(type) {
	case *ast.Declaration:
		if st.Name != "_" && s.declaredHere(st.Name) {
			return execErr(st, "%q is already declared in this scope", st.Name)
		}
		s.declare(st.Name, st.Type, st.Mutable)
		return nil

	case *ast.DeclarationAssignment:
		names := st.Target.Names
		for _, name := range names {
			if name != "_" && s.declaredHere(name) {
				return execErr(st, "%q is already declared in this scope", name)
			}
		}
		hint := len(names) == 1
		valType, err := c.inferExpression(s, st.Value, hint && st.Mutable)
		if err != nil {
			return err
		}
		if len(names) == 1 {
			s.declare(names[0], valType, st.Mutable)
			return nil
		}
		tup, ok := valType.(ast.TupleType)
		if !ok || len(tup.Elements) != len(names) {
			return execErr(st, "cannot destructure %s into %d names", valType, len(names))
		}
		for i, name := range names {
			s.declare(name, tup.Elements[i], st.Mutable)
		}
		return nil

	case *ast.Assignment:
		names := st.Target.Names
		var declaredTypes []ast.Type
		for _, name := range names {
			if name == "_" {
				declaredTypes = append(declaredTypes, nil)
				continue
			}
			b, ok := s.lookup(name)
			if !ok {
				return execErr(st, "undeclared variable %q", name)
			}
			if !b.mutable {
				return execErr(st, "cannot assign to immutable variable %q", name)
			}
			declaredTypes = append(declaredTypes, b.typ)
		}
		arrayHint := len(names) == 1 && declaredTypes[0] != nil
		mutHint := false
		if arrayHint {
			if at, ok := declaredTypes[0].(ast.ArrayType); ok {
				mutHint = at.Mutable
			}
		}
		valType, err := c.inferExpression(s, st.Value, arrayHint && mutHint)
		if err != nil {
			return err
		}
		if len(names) == 1 {
			if declaredTypes[0] != nil && !declaredTypes[0].Equal(valType) {
				return execErr(st, "cannot assign %s to variable of type %s", valType, declaredTypes[0])
			}
			return nil
		}
		tup, ok := valType.(ast.TupleType)
		if !ok || len(tup.Elements) != len(names) {
			return execErr(st, "cannot destructure %s into %d names", valType, len(names))
		}
		for i, dt := range declaredTypes {
			if dt != nil && !dt.Equal(tup.Elements[i]) {
				return execErr(st, "cannot assign %s to variable of type %s", tup.Elements[i], dt)
			}
		}
		return nil

	case *ast.ExpressionStmt:
		_, err := c.inferExpression(s, st.Value, false)
		return err

	case *ast.Return:
		fnScope, ok := s.ancestorOfKind(KindFunction)
		if !ok {
			return execErr(st, "'return' outside a function")
		}
		var valType ast.Type = ast.VoidType{}
		if st.Value != nil {
			t, err := c.inferExpression(s, st.Value, false)
			if err != nil {
				return err
			}
			valType = t
		}
		if !valType.Equal(fnScope.returnType) {
			return execErr(st, "return type %s does not match declared return type %s", valType, fnScope.returnType)
		}
		return nil

	case *ast.Exit:
		if _, ok := s.ancestorOfKind(KindRoot); !ok {
			return execErr(st, "'exit' outside the top-level script")
		}
		t, err := c.inferExpression(s, st.Value, false)
		if err != nil {
			return err
		}
		if !t.Equal(ast.IntegerType{}) {
			return execErr(st, "'exit' requires an integer, got %s", t)
		}
		return nil

	case *ast.Break:
		if _, ok := s.ancestorOfKind(KindLooped); !ok {
			return execErr(st, "'break' outside a loop")
		}
		return nil

	case *ast.Continue:
		if _, ok := s.ancestorOfKind(KindLooped); !ok {
			return execErr(st, "'continue' outside a loop")
		}
		return nil

	default:
		return execErr(stmt, "unhandled statement type %T", stmt)
	}
}
