package ast

import "strings"

// Type is the AST-level spelling of a declared type (spec §3.3):
// `void, string, integer, boolean, command, file_handle, [T] (mut [T]),
// (T1, T2, ...)`.
type Type interface {
	typeNode()
	String() string
	// Equal reports spec §3.3's type-equality rule: structural equality,
	// with array mutability flags compared exactly.
	Equal(other Type) bool
}

type VoidType struct{}
type StringType struct{}
type IntegerType struct{}
type BooleanType struct{}
type CommandType struct{}
type FileHandleType struct{}

func (VoidType) typeNode()       {}
func (StringType) typeNode()     {}
func (IntegerType) typeNode()    {}
func (BooleanType) typeNode()    {}
func (CommandType) typeNode()    {}
func (FileHandleType) typeNode() {}

func (VoidType) String() string       { return "void" }
func (StringType) String() string     { return "string" }
func (IntegerType) String() string    { return "integer" }
func (BooleanType) String() string    { return "boolean" }
func (CommandType) String() string    { return "command" }
func (FileHandleType) String() string { return "file_handle" }

func (VoidType) Equal(other Type) bool       { _, ok := other.(VoidType); return ok }
func (StringType) Equal(other Type) bool     { _, ok := other.(StringType); return ok }
func (IntegerType) Equal(other Type) bool    { _, ok := other.(IntegerType); return ok }
func (BooleanType) Equal(other Type) bool    { _, ok := other.(BooleanType); return ok }
func (CommandType) Equal(other Type) bool    { _, ok := other.(CommandType); return ok }
func (FileHandleType) Equal(other Type) bool { _, ok := other.(FileHandleType); return ok }

// ArrayType is `[T]` or, when Mutable, `mut [T]`.
type ArrayType struct {
	Element Type
	Mutable bool
}

func (ArrayType) typeNode() {}

func (a ArrayType) String() string {
	var sb strings.Builder
	if a.Mutable {
		sb.WriteString("mut ")
	}
	sb.WriteByte('[')
	sb.WriteString(a.Element.String())
	sb.WriteByte(']')
	return sb.String()
}

func (a ArrayType) Equal(other Type) bool {
	o, ok := other.(ArrayType)
	if !ok {
		return false
	}
	return a.Mutable == o.Mutable && a.Element.Equal(o.Element)
}

// TupleType is `(T1, T2, ...)`.
type TupleType struct {
	Elements []Type
}

func (TupleType) typeNode() {}

func (t TupleType) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, el := range t.Elements {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(el.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (t TupleType) Equal(other Type) bool {
	o, ok := other.(TupleType)
	if !ok || len(t.Elements) != len(o.Elements) {
		return false
	}
	for i := range t.Elements {
		if !t.Elements[i].Equal(o.Elements[i]) {
			return false
		}
	}
	return true
}
