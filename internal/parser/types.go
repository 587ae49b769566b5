package parser

import (
	"github.com/shpl-lang/shpl/internal/ast"
	"github.com/shpl-lang/shpl/internal/lexer"
)

// baseTypeNames maps a type-position identifier to its AST type. Grounded
// on original_source/src/components/root/type_definition.rs's
// `parse_base_type`, with `file_handle` added: spec §4.3's grammar lists
// it as a base type (`'void' | 'string' | 'integer' | 'boolean' |
// 'command' | 'file_handle'`) even though the reference implementation's
// match arms omit it.
var baseTypeNames = map[string]ast.Type{
	"void":        ast.VoidType{},
	"string":      ast.StringType{},
	"integer":     ast.IntegerType{},
	"boolean":     ast.BooleanType{},
	"command":     ast.CommandType{},
	"file_handle": ast.FileHandleType{},
}

// ParseType parses `type ::= 'mut'? '[' type ']' | '(' type (',' type)* ')'
// | void | string | integer | boolean | command | file_handle` (spec
// §4.3). The leading `mut` is only legal directly before `[`.
func ParseType(c *Cursor) (ast.Type, error) {
	if c.IsKeyword("mut") {
		cp := c.Checkpoint()
		c.Next()
		if !c.Is(lexer.LeftSquare) {
			c.Backtrack(cp)
			return nil, unexpected(c.Current(), "'[' after 'mut'")
		}
		return parseArrayType(c, true)
	}
	if c.Is(lexer.LeftSquare) {
		return parseArrayType(c, false)
	}
	if c.Is(lexer.LeftBracket) {
		return parseTupleType(c)
	}
	if c.Is(lexer.Identifier) {
		name := c.Current().Text
		if t, ok := baseTypeNames[name]; ok {
			c.Next()
			return t, nil
		}
		return nil, errorAt(c.Current(), "unknown type %q", name)
	}
	return nil, unexpected(c.Current(), "a type")
}

func parseArrayType(c *Cursor, mutable bool) (ast.Type, error) {
	if _, err := c.Expect(lexer.LeftSquare); err != nil {
		return nil, err
	}
	elem, err := ParseType(c)
	if err != nil {
		return nil, err
	}
	if _, err := c.Expect(lexer.RightSquare); err != nil {
		return nil, err
	}
	return ast.ArrayType{Element: elem, Mutable: mutable}, nil
}

func parseTupleType(c *Cursor) (ast.Type, error) {
	if _, err := c.Expect(lexer.LeftBracket); err != nil {
		return nil, err
	}
	var elements []ast.Type
	for !c.Is(lexer.RightBracket) {
		t, err := ParseType(c)
		if err != nil {
			return nil, err
		}
		elements = append(elements, t)
		if c.Is(lexer.Comma) {
			c.Next()
			continue
		}
		break
	}
	if _, err := c.Expect(lexer.RightBracket); err != nil {
		return nil, err
	}
	return ast.TupleType{Elements: elements}, nil
}
