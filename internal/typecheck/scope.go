package typecheck

import "github.com/shpl-lang/shpl/internal/ast"

// Kind tags a scope with the structural role spec §4.6 validates
// placement against: Root (top level, where `exit` is legal), Function
// (where `return` is legal, carrying its declared return type), Looped
// (where `break`/`continue` are legal), Conditional, and plain Block.
// Grounded on go-dws internal/semantic/pass_context.go's
// ScopeGlobal/ScopeFunction/ScopeBlock, generalized with the two
// additional kinds spec §4.6 names that the teacher's simpler DWScript
// scope model has no need for.
type Kind int

const (
	KindRoot Kind = iota
	KindBlock
	KindFunction
	KindLooped
	KindConditional
)

type binding struct {
	typ     ast.Type
	mutable bool
}

// scope is one level of the typechecker's symbol table — the static
// analogue of internal/runtime.Scope, tracking declared types instead of
// values. A Function-kind scope has a nil parent by construction:
// functions cannot capture outer variables or statements (spec §3.4),
// so "ancestor" placement checks for return/exit/break/continue must not
// see past a function's own boundary.
type scope struct {
	kind       Kind
	returnType ast.Type
	vars       map[string]binding
	parent     *scope
}

func newScope(kind Kind, parent *scope) *scope {
	return &scope{kind: kind, vars: make(map[string]binding), parent: parent}
}

func (s *scope) declare(name string, t ast.Type, mutable bool) {
	if name == "_" {
		return
	}
	s.vars[name] = binding{typ: t, mutable: mutable}
}

// declaredHere reports whether name was already declared directly in s,
// without searching parents — spec §4.6's "duplicate declarations within
// the same scope" check.
func (s *scope) declaredHere(name string) bool {
	_, ok := s.vars[name]
	return ok
}

func (s *scope) lookup(name string) (binding, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if b, ok := cur.vars[name]; ok {
			return b, true
		}
	}
	return binding{}, false
}

// ancestorOfKind reports whether s or any of its parents has the given
// kind, returning the nearest such scope (for Function, callers read its
// returnType).
func (s *scope) ancestorOfKind(kind Kind) (*scope, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.kind == kind {
			return cur, true
		}
	}
	return nil, false
}
