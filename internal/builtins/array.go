package builtins

import (
	"fmt"

	"github.com/shpl-lang/shpl/internal/value"
)

// lenOf implements the instance method `.len()` on a string or array
// receiver.
func lenOf(receiver value.Value) (value.Value, error) {
	switch r := receiver.(type) {
	case value.String:
		return value.Integer{Val: int32(len(r.Text))}, nil
	case value.Array:
		return value.Integer{Val: int32(r.Len())}, nil
	default:
		return nil, fmt.Errorf("len: unsupported receiver type %s", receiver.Type())
	}
}

// pushTo implements `.push(v)` on a `mut [T]` array, failing if a borrow
// is already live (spec §5's shared-resource policy).
func pushTo(receiver, v value.Value) (value.Value, error) {
	arr := receiver.(value.Array)
	if !arr.Push(v) {
		return nil, fmt.Errorf("push: array is already borrowed")
	}
	return value.Void{}, nil
}

// popFrom implements `.pop()` on a `mut [T]` array.
func popFrom(receiver value.Value) (value.Value, error) {
	arr := receiver.(value.Array)
	v, ok, empty := arr.Pop()
	if !ok {
		return nil, fmt.Errorf("pop: array is already borrowed")
	}
	if empty {
		return nil, fmt.Errorf("pop: array is empty")
	}
	return v, nil
}
