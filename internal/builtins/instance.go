package builtins

import (
	"fmt"

	"github.com/shpl-lang/shpl/internal/ast"
	"github.com/shpl-lang/shpl/internal/value"
)

// IsInstance reports whether name is one of the instance-method builtins
// dispatched through an accessor (`.len()`, `.push(v)`, `.pop()`,
// `.ends_with(s)`) rather than a free call.
func IsInstance(name string) bool {
	switch name {
	case "len", "push", "pop", "ends_with":
		return true
	default:
		return false
	}
}

// CheckInstanceCall validates an accessor call `receiver.name(args)`
// against receiverType and returns its result type, for
// internal/typecheck.
func CheckInstanceCall(receiverType ast.Type, name string, argTypes []ast.Type) (ast.Type, error) {
	switch name {
	case "len":
		if !isStringOrArray(receiverType) {
			return nil, fmt.Errorf("len: unsupported receiver type %s", receiverType)
		}
		if len(argTypes) != 0 {
			return nil, fmt.Errorf("len: expected no arguments, got %d", len(argTypes))
		}
		return ast.IntegerType{}, nil

	case "ends_with":
		if _, ok := receiverType.(ast.StringType); !ok {
			return nil, fmt.Errorf("ends_with: receiver must be string, got %s", receiverType)
		}
		if len(argTypes) != 1 || !argTypes[0].Equal(ast.StringType{}) {
			return nil, fmt.Errorf("ends_with: expected one string argument")
		}
		return ast.BooleanType{}, nil

	case "push":
		arr, ok := receiverType.(ast.ArrayType)
		if !ok || !arr.Mutable {
			return nil, fmt.Errorf("push: receiver must be a mut array, got %s", receiverType)
		}
		if len(argTypes) != 1 || !argTypes[0].Equal(arr.Element) {
			return nil, fmt.Errorf("push: argument must be %s", arr.Element)
		}
		return ast.VoidType{}, nil

	case "pop":
		arr, ok := receiverType.(ast.ArrayType)
		if !ok || !arr.Mutable {
			return nil, fmt.Errorf("pop: receiver must be a mut array, got %s", receiverType)
		}
		if len(argTypes) != 0 {
			return nil, fmt.Errorf("pop: expected no arguments, got %d", len(argTypes))
		}
		return arr.Element, nil

	default:
		return nil, notABuiltin(name)
	}
}

// CallInstance dispatches an accessor call at runtime, for
// internal/eval.
func CallInstance(receiver value.Value, name string, args []value.Value) (value.Value, error) {
	switch name {
	case "len":
		return lenOf(receiver)
	case "ends_with":
		return endsWithString(receiver, args[0])
	case "push":
		return pushTo(receiver, args[0])
	case "pop":
		return popFrom(receiver)
	default:
		return nil, notABuiltin(name)
	}
}

func isStringOrArray(t ast.Type) bool {
	switch t.(type) {
	case ast.StringType, ast.ArrayType:
		return true
	default:
		return false
	}
}
