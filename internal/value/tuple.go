package value

import "github.com/shpl-lang/shpl/internal/ast"

// Tuple is a fixed-size, heterogeneous-by-position value.
type Tuple struct {
	Elements []Value
}

func (t Tuple) Type() ast.Type {
	elemTypes := make([]ast.Type, len(t.Elements))
	for i, el := range t.Elements {
		elemTypes[i] = el.Type()
	}
	return ast.TupleType{Elements: elemTypes}
}

func (t Tuple) String() string {
	return formatSequence("(", ",", ")", t.Elements)
}
