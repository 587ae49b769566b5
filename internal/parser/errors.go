package parser

import (
	"fmt"

	"github.com/shpl-lang/shpl/internal/lexer"
	"github.com/shpl-lang/shpl/internal/scripterr"
)

// Error is an alias for the parser-error type the rest of the tree
// consumes (spec §7). Parser failures carry the offending token's byte
// offsets for scripterr.Render to build a source excerpt from.
type Error = scripterr.ParserError

func errorAt(tok lexer.Token, format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Start: tok.Start, End: tok.End}
}

func unexpected(tok lexer.Token, want string) *Error {
	return errorAt(tok, "expected %s, found %s", want, tok.String())
}
