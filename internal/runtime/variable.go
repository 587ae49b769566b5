// Package runtime holds the evaluator's mutable execution state: scopes,
// the variable table within each scope, the immutable function table,
// and the call stack. internal/eval drives this state machine; this
// package only enforces the invariants spec.md §3.4 and §4.4 attach to
// it (discard identifier, fixed declared types, mutability, recursion
// support, call-stack depth).
package runtime

import (
	"github.com/shpl-lang/shpl/internal/ast"
	"github.com/shpl-lang/shpl/internal/value"
)

// discardName is the identifier that silently drops any declaration or
// assignment (spec §3.3).
const discardName = "_"

// Variable is one binding inside a Scope: its declared type, mutability,
// and current value (absent until first assigned, for `var x: T;` with
// no initializer).
type Variable struct {
	Type    ast.Type
	Mutable bool
	Value   value.Value
	has     bool
}

func newVariable(t ast.Type, mutable bool) *Variable {
	return &Variable{Type: t, Mutable: mutable}
}

func (v *Variable) set(val value.Value) {
	v.Value = val
	v.has = true
}
