// Package value holds the tagged-union runtime values produced by
// internal/eval and consumed by internal/builtins and internal/pipeline.
package value

import (
	"strconv"
	"strings"

	"github.com/shpl-lang/shpl/internal/ast"
)

// Value is implemented by every runtime value kind. Unlike internal/ast's
// Type, Value carries no interning: each literal evaluation allocates a
// fresh Value, except Array, whose handle is explicitly shared (see
// array.go).
type Value interface {
	// Type reports the value's dynamic type, used by the evaluator to
	// verify it against a variable's declared type or a builtin's
	// expected signature.
	Type() ast.Type
	// String renders the value the way `fmt`/debug output does (spec
	// §6.3); see format.go.
	String() string
}

// Void is the unit value: the result of statements, bare `return;`, and
// block expressions.
type Void struct{}

func (Void) Type() ast.Type { return ast.VoidType{} }
func (Void) String() string { return "void" }

// String wraps a UTF-8 script string. String() quotes and escapes the
// text per spec §6.3 (the `fmt`/debug rendering); code that needs the
// raw text (string concatenation, `out`/`err`, command-argument
// expansion) reads the Text field directly instead.
type String struct{ Text string }

func (String) Type() ast.Type { return ast.StringType{} }

func (s String) String() string {
	return "\"" + strings.ReplaceAll(s.Text, "\"", "\\\"") + "\""
}

// Integer wraps a 32-bit signed script integer.
type Integer struct{ Val int32 }

func (Integer) Type() ast.Type    { return ast.IntegerType{} }
func (i Integer) String() string { return strconv.FormatInt(int64(i.Val), 10) }

// Boolean wraps a script boolean.
type Boolean struct{ Val bool }

func (Boolean) Type() ast.Type    { return ast.BooleanType{} }
func (b Boolean) String() string { return strconv.FormatBool(b.Val) }
