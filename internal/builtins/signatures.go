package builtins

import (
	"fmt"

	"github.com/shpl-lang/shpl/internal/ast"
)

// freeSignature describes a free builtin's parameter and result types. A
// nil entry in params means "any type", used by fmt/str's `v: any`
// parameter (spec §4.4, SPEC_FULL.md §4.4).
type freeSignature struct {
	params []ast.Type
	result ast.Type
}

func (s freeSignature) checkArity(args []ast.Type) error {
	if len(args) != len(s.params) {
		return fmt.Errorf("expected %d argument(s), got %d", len(s.params), len(args))
	}
	return nil
}

var stringArray = ast.ArrayType{Element: ast.StringType{}, Mutable: false}

var freeSignatures = map[string]freeSignature{
	"parse_int": {params: []ast.Type{ast.StringType{}}, result: ast.IntegerType{}},
	"read":      {params: nil, result: ast.StringType{}},
	"out":       {params: []ast.Type{ast.StringType{}}, result: ast.VoidType{}},
	"err":       {params: []ast.Type{ast.StringType{}}, result: ast.VoidType{}},
	"open":      {params: []ast.Type{ast.StringType{}}, result: ast.FileHandleType{}},
	"write":     {params: []ast.Type{ast.StringType{}}, result: ast.FileHandleType{}},
	"append":    {params: []ast.Type{ast.StringType{}}, result: ast.FileHandleType{}},
	"glob":      {params: []ast.Type{ast.StringType{}}, result: stringArray},
	"fmt":       {params: []ast.Type{nil}, result: ast.StringType{}},
	"str":       {params: []ast.Type{nil}, result: ast.StringType{}},
	"trim":      {params: []ast.Type{ast.StringType{}}, result: ast.StringType{}},
	"split":     {params: []ast.Type{ast.StringType{}, ast.StringType{}}, result: stringArray},
	"join":      {params: []ast.Type{stringArray, ast.StringType{}}, result: ast.StringType{}},
	"env":       {params: []ast.Type{ast.StringType{}}, result: ast.StringType{}},
	"cwd":       {params: nil, result: ast.StringType{}},
}

func notABuiltin(name string) error {
	return fmt.Errorf("%q is not a builtin function", name)
}

func typeMismatch(name string, index int, want, got ast.Type) error {
	return fmt.Errorf("%s: argument %d must be %s, got %s", name, index+1, want, got)
}
