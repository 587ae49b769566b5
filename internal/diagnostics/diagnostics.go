// Package diagnostics renders internal/scripterr errors as the
// machine-readable JSON form the CLI's --json-errors flag produces
// (SPEC_FULL.md §6.1/§7), for CI integrations that parse a single
// structured object instead of the caret-underline text. Built
// incrementally with github.com/tidwall/sjson, the same
// build-don't-round-trip style the pack's JSON-emitting code uses,
// rather than marshaling a Go struct.
package diagnostics

import (
	"github.com/tidwall/sjson"

	"github.com/shpl-lang/shpl/internal/scripterr"
)

// RenderJSON encodes err as a single JSON object:
//
//	{"kind":"lexer"|"parser"|"execution"|"error","message":"...",
//	 "exitCode":101, "line":1,"column":1,
//	 "callStack":["f1","f2"]}             // execution errors only
//
// file, when non-empty, is included as "file". source is used to turn
// byte offsets into line/column via scripterr.LineCol.
func RenderJSON(err error, source, file string) ([]byte, error) {
	doc := []byte("{}")
	var e error

	set := func(path string, value interface{}) {
		if e != nil {
			return
		}
		doc, e = sjson.SetBytes(doc, path, value)
	}

	set("exitCode", scripterr.ExitCode(err))
	set("message", err.Error())
	if file != "" {
		set("file", file)
	}

	switch v := err.(type) {
	case *scripterr.LexerError:
		set("kind", "lexer")
		line, col := scripterr.LineCol(source, v.Offset)
		set("line", line)
		set("column", col)
	case *scripterr.ParserError:
		set("kind", "parser")
		line, col := scripterr.LineCol(source, v.Start)
		set("line", line)
		set("column", col)
	case *scripterr.ExecutionError:
		set("kind", "execution")
		line, col := scripterr.LineCol(source, v.Start)
		set("line", line)
		set("column", col)
		if len(v.CallStack) > 0 {
			set("callStack", v.CallStack)
		}
	default:
		set("kind", "error")
	}

	if e != nil {
		return nil, e
	}
	return doc, nil
}
