package runtime

import "github.com/shpl-lang/shpl/internal/ast"

// Scope is one lexical level of variable bindings (spec §3.4). Scopes
// form a stack inside Stack; function calls replace the whole stack with
// a single fresh Scope so functions cannot capture outer variables.
type Scope struct {
	variables map[string]*Variable
	// hidden holds bindings shadowed by a redeclaration of the same name
	// within this scope. They are kept alive until the scope is popped,
	// so destruction order stays deterministic even though Go has no
	// destructors to actually run (grounded on
	// original_source/src/components/stack.rs's Scope.hidden_variables).
	// Array borrow state is not tied to these bindings: a borrow is
	// released by the code that took it (e.g. the for-in loop).
	hidden []*Variable
}

func newScope() *Scope {
	return &Scope{variables: make(map[string]*Variable)}
}

// declare creates variable_name as a fresh binding of the given type and
// mutability, pushing any existing binding of the same name onto the
// hidden list rather than discarding it outright. A no-op for the
// discard identifier.
func (s *Scope) declare(name string, t ast.Type, mutable bool) *Variable {
	if name == discardName {
		return newVariable(t, mutable)
	}
	v := newVariable(t, mutable)
	if old, ok := s.variables[name]; ok {
		s.hidden = append(s.hidden, old)
	}
	s.variables[name] = v
	return v
}

func (s *Scope) get(name string) (*Variable, bool) {
	v, ok := s.variables[name]
	return v, ok
}
