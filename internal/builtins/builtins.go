// Package builtins implements the fixed intrinsic catalog of spec §4.4
// (parse_int, read, out, err, open, write, append, glob, fmt, len, push,
// pop, ends_with) plus the supplemented free functions str, trim, split,
// join, env, cwd. Grounded on go-dws internal/interp/builtins_*.go's
// per-concern file split, generalized from "methods on *Interpreter" to
// plain functions over an explicit Env, since the evaluator here has no
// single god-object to hang methods off.
package builtins

import (
	"bufio"
	"io"

	"github.com/shpl-lang/shpl/internal/ast"
	"github.com/shpl-lang/shpl/internal/value"
)

// Env carries the I/O streams the catalog's free functions read and
// write (spec §1's "global standard I/O streams" external collaborator).
// Built from os.Stdin/os.Stdout/os.Stderr by cmd/shpl; tests construct
// one over in-memory buffers instead.
type Env struct {
	Stdin  *bufio.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewEnv wraps the given streams in an Env, buffering stdin for read's
// line-at-a-time protocol.
func NewEnv(stdin io.Reader, stdout, stderr io.Writer) *Env {
	return &Env{Stdin: bufio.NewReader(stdin), Stdout: stdout, Stderr: stderr}
}

// IsFree reports whether name names a free (non-instance) builtin
// function.
func IsFree(name string) bool {
	_, ok := freeSignatures[name]
	return ok
}

// CheckFreeCall validates a call to the free builtin name against argTypes
// and returns its result type, for internal/typecheck.
func CheckFreeCall(name string, argTypes []ast.Type) (ast.Type, error) {
	sig, ok := freeSignatures[name]
	if !ok {
		return nil, notABuiltin(name)
	}
	if err := sig.checkArity(argTypes); err != nil {
		return nil, err
	}
	for i, want := range sig.params {
		if want != nil && !want.Equal(argTypes[i]) {
			return nil, typeMismatch(name, i, want, argTypes[i])
		}
	}
	return sig.result, nil
}

// Call dispatches a free builtin call at runtime, for internal/eval. The
// type checker having already validated arity and argument types, Call
// only asserts the dynamic shape it needs to type-switch on.
func Call(env *Env, name string, args []value.Value) (value.Value, error) {
	switch name {
	case "parse_int":
		return parseInt(args[0])
	case "read":
		return read(env)
	case "out":
		return write1(env.Stdout, args[0])
	case "err":
		return write1(env.Stderr, args[0])
	case "open":
		return openHandle(args[0], value.ModeOpen)
	case "write":
		return openHandle(args[0], value.ModeWrite)
	case "append":
		return openHandle(args[0], value.ModeAppend)
	case "glob":
		return globPattern(args[0])
	case "fmt", "str":
		return value.String{Text: args[0].String()}, nil
	case "trim":
		return trimString(args[0])
	case "split":
		return splitString(args[0], args[1])
	case "join":
		return joinStrings(args[0], args[1])
	case "env":
		return envVar(args[0])
	case "cwd":
		return cwd()
	default:
		return nil, notABuiltin(name)
	}
}
