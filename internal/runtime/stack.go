package runtime

import (
	"fmt"

	"github.com/shpl-lang/shpl/internal/ast"
	"github.com/shpl-lang/shpl/internal/value"
)

// DefaultMaxCallStackDepth is the call-stack depth cap spec §5 names as
// the default (overridable via internal/config).
const DefaultMaxCallStackDepth = 100

// Stack is the evaluator's execution state: the function table, the
// scope stack, and the call stack. Grounded on
// original_source/src/components/stack.rs's Stack/Scope/Variable triad,
// translated to Go idioms (exported methods, explicit error returns
// instead of ExecutionError).
//
// The function table is populated once, before execution starts, and is
// never mutated afterward — unlike the legacy original_source tree
// (src/executer/mod.rs), which removes a function from the table for the
// duration of its own call to prevent re-entrant recursion. Keeping the
// table immutable during calls is what makes recursion work (spec.md's
// REDESIGN FLAG on this exact behavior).
type Stack struct {
	functions map[string]*ast.Function
	scopes    []*Scope
	callStack []string
	maxDepth  int
}

// NewStack creates an empty Stack with the given call-stack depth cap.
func NewStack(maxDepth int) *Stack {
	return &Stack{
		functions: make(map[string]*ast.Function),
		maxDepth:  maxDepth,
	}
}

// DeclareFunction registers a top-level function. Called once per
// function before any statement executes; redeclaring a name is an
// error.
func (s *Stack) DeclareFunction(fn *ast.Function) error {
	if fn.Name == discardName {
		return fmt.Errorf("function name must not be %q", discardName)
	}
	if _, exists := s.functions[fn.Name]; exists {
		return fmt.Errorf("function with name %s already exists", fn.Name)
	}
	s.functions[fn.Name] = fn
	return nil
}

// LookupFunction returns the function registered under name, if any.
// Lookups never see a function temporarily removed during its own
// call — the table is read-only once execution begins, so this also
// resolves recursive calls by the function's own name.
func (s *Stack) LookupFunction(name string) (*ast.Function, bool) {
	fn, ok := s.functions[name]
	return fn, ok
}

// PushScope opens a new lexical scope on top of the stack.
func (s *Stack) PushScope() {
	s.scopes = append(s.scopes, newScope())
}

// PopScope closes the innermost scope.
func (s *Stack) PopScope() {
	if len(s.scopes) == 0 {
		return
	}
	s.scopes = s.scopes[:len(s.scopes)-1]
}

// SwapScopes replaces the entire scope stack with replacement and
// returns the previous one, so a function call can run against a fresh,
// isolated stack and the caller's scopes can be restored afterward
// (spec §3.4: "Function calls replace the active stack with a fresh
// single scope").
func (s *Stack) SwapScopes(replacement []*Scope) []*Scope {
	previous := s.scopes
	s.scopes = replacement
	return previous
}

// DeclareVariable creates name in the innermost scope with the given
// type and mutability, optionally binding an initial value. It is a
// no-op for the discard identifier and an error for a void type (spec
// §3.3: "Void is never the declared type of a variable").
func (s *Stack) DeclareVariable(name string, t ast.Type, mutable bool, initial value.Value) error {
	if _, isVoid := t.(ast.VoidType); isVoid {
		return fmt.Errorf("variables must not be declared with a type of void")
	}
	if len(s.scopes) == 0 {
		return fmt.Errorf("no active scope to declare %s in", name)
	}
	if name == discardName {
		return nil
	}
	v := s.scopes[len(s.scopes)-1].declare(name, t, mutable)
	if initial != nil {
		v.set(initial)
	}
	return nil
}

// AssignVariable writes val to an already-declared, mutable variable
// found by searching the scope stack innermost-first.
func (s *Stack) AssignVariable(name string, val value.Value) error {
	if name == discardName {
		return nil
	}
	v := s.lookupVariable(name)
	if v == nil {
		return fmt.Errorf("couldn't find variable with name: %s", name)
	}
	if !v.Mutable {
		return fmt.Errorf("can't assign to a variable that is not mutable")
	}
	if !v.Type.Equal(val.Type()) {
		return fmt.Errorf("can not assign a value of type %s to a variable of type %s", val.Type(), v.Type)
	}
	v.set(val)
	return nil
}

// ResolveVariable reads the current value of name, searching the scope
// stack innermost-first.
func (s *Stack) ResolveVariable(name string) (value.Value, error) {
	v := s.lookupVariable(name)
	if v == nil {
		return nil, fmt.Errorf("couldn't find variable with name: %s", name)
	}
	if !v.has {
		return nil, fmt.Errorf("variable %s has not been initialized", name)
	}
	return v.Value, nil
}

// LookupVariableType reports the declared type of name without reading
// its value; the evaluator uses it to recover an assignment target's
// declared array type (and so its mutability) before evaluating the
// assigned value.
func (s *Stack) LookupVariableType(name string) (ast.Type, bool) {
	v := s.lookupVariable(name)
	if v == nil {
		return nil, false
	}
	return v.Type, true
}

func (s *Stack) lookupVariable(name string) *Variable {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if v, ok := s.scopes[i].get(name); ok {
			return v
		}
	}
	return nil
}

// CallStack returns the current call stack, innermost call last, for
// attaching to an ExecutionError.
func (s *Stack) CallStack() []string {
	return append([]string(nil), s.callStack...)
}

// PushCall records entry into a call named name, failing once the depth
// cap is reached (spec §5: "configurable maximum depth... fails fatally
// when exceeded").
func (s *Stack) PushCall(name string) error {
	if len(s.callStack) >= s.maxDepth {
		return fmt.Errorf("call stack depth limit of %d exceeded", s.maxDepth)
	}
	s.callStack = append(s.callStack, name)
	return nil
}

// PopCall records return from the innermost call.
func (s *Stack) PopCall() {
	if len(s.callStack) == 0 {
		return
	}
	s.callStack = s.callStack[:len(s.callStack)-1]
}
