package builtins

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shpl-lang/shpl/internal/ast"
	"github.com/shpl-lang/shpl/internal/value"
)

// parseInt implements spec §4.4's `parse_int(s)`: fails on non-numeric
// input rather than coercing.
func parseInt(s value.Value) (value.Value, error) {
	text := s.(value.String).Text
	n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("parse_int: %q is not a valid integer", text)
	}
	return value.Integer{Val: int32(n)}, nil
}

// trimString implements the SPEC_FULL.md supplement `trim(s)`: leading
// and trailing whitespace removal via strings.TrimSpace, the same call
// parseInt applies before parsing.
func trimString(s value.Value) (value.Value, error) {
	return value.String{Text: strings.TrimSpace(s.(value.String).Text)}, nil
}

// splitString implements `split(s, sep)`.
func splitString(s, sep value.Value) (value.Value, error) {
	parts := strings.Split(s.(value.String).Text, sep.(value.String).Text)
	elements := make([]value.Value, len(parts))
	for i, p := range parts {
		elements[i] = value.String{Text: p}
	}
	return value.NewArray(ast.StringType{}, false, elements), nil
}

// joinStrings implements `join(parts, sep)`.
func joinStrings(parts, sep value.Value) (value.Value, error) {
	arr := parts.(value.Array)
	words := make([]string, arr.Len())
	for i := 0; i < arr.Len(); i++ {
		el, _ := arr.At(i)
		words[i] = el.(value.String).Text
	}
	return value.String{Text: strings.Join(words, sep.(value.String).Text)}, nil
}

// endsWithString implements the instance method `s.ends_with(suffix)`.
func endsWithString(s, suffix value.Value) (value.Value, error) {
	return value.Boolean{Val: strings.HasSuffix(s.(value.String).Text, suffix.(value.String).Text)}, nil
}
