// Package typecheck implements spec §4.6's pre-evaluation validation
// pass: a scope-kind-tagged symbol table walk that rejects duplicate
// declarations, misplaced return/exit/break/continue, invalid operator
// combinations, and malformed array literals before the evaluator ever
// runs. Grounded on go-dws internal/semantic's analyzer/pass-context
// scope-stack design.
package typecheck

import (
	"fmt"

	"github.com/shpl-lang/shpl/internal/ast"
	"github.com/shpl-lang/shpl/internal/scripterr"
)

// Checker walks a Root once, failing fast on the first violation (the
// same fail-fast posture internal/parser takes, per DESIGN.md, rather
// than go-dws's accumulate-and-report style — spec §4.6 does not ask for
// multi-error reporting).
type Checker struct {
	functions map[string]*ast.Function
}

// New creates an empty Checker.
func New() *Checker {
	return &Checker{functions: make(map[string]*ast.Function)}
}

// Check validates root, returning the first violation found as an
// *scripterr.ExecutionError (spec §7: type-check failures are
// ExecutionErrors).
func Check(root *ast.Root) error {
	c := New()
	return c.check(root)
}

func (c *Checker) check(root *ast.Root) error {
	for _, fn := range root.Functions {
		if _, exists := c.functions[fn.Name]; exists {
			return execErr(fn, "function %q is already declared", fn.Name)
		}
		c.functions[fn.Name] = fn
	}

	rootScope := newScope(KindRoot, nil)
	for _, stmt := range root.Statements {
		if err := c.checkStatement(rootScope, stmt); err != nil {
			return err
		}
	}

	for _, fn := range root.Functions {
		if err := c.checkFunction(fn); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) checkFunction(fn *ast.Function) error {
	fnScope := newScope(KindFunction, nil)
	fnScope.returnType = fn.ReturnType
	seen := make(map[string]bool)
	for _, p := range fn.Parameters {
		if p.Name != "_" {
			if seen[p.Name] {
				return execErr(fn, "function %q has duplicate parameter %q", fn.Name, p.Name)
			}
			seen[p.Name] = true
		}
		fnScope.declare(p.Name, p.Type, false)
	}
	for _, stmt := range fn.Body.Statements {
		if err := c.checkStatement(fnScope, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) checkBlock(parent *scope, kind Kind, block *ast.Block) error {
	s := newScope(kind, parent)
	for _, stmt := range block.Statements {
		if err := c.checkStatement(s, stmt); err != nil {
			return err
		}
	}
	return nil
}

func execErr(n ast.Node, format string, args ...interface{}) *scripterr.ExecutionError {
	pos := n.Pos()
	return &scripterr.ExecutionError{Message: fmt.Sprintf(format, args...), Start: pos.Start, End: pos.End}
}
