package builtins

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/shpl-lang/shpl/internal/ast"
	"github.com/shpl-lang/shpl/internal/value"
)

// read implements spec §4.4's `read()`: one line from stdin, trailing
// `\n` and an optional `\r` stripped.
func read(env *Env) (value.Value, error) {
	line, err := env.Stdin.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return value.String{Text: line}, nil
}

// write1 implements `out`/`err`: writes s + "\n" to w.
func write1(w io.Writer, s value.Value) (value.Value, error) {
	text := s.(value.String).Text
	if _, err := io.WriteString(w, text+"\n"); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}
	return value.Void{}, nil
}

// openHandle implements open/write/append: constructs a FileHandle
// value with no OS-level access yet (value.FileHandle's own comment:
// "carries no open OS file descriptor" — the file is touched only when
// a pipeline source/destination actually uses it).
func openHandle(p value.Value, mode value.OpenMode) (value.Value, error) {
	return value.FileHandle{Path: p.(value.String).Text, Mode: mode}, nil
}

// globPattern implements spec §4.4's `glob(pat)`: filesystem expansion
// via the standard library (spec §1 names "the filesystem glob library"
// as an external collaborator the core only depends on through this
// call; no pack example carries a dedicated glob dependency to draw on
// instead — see DESIGN.md).
func globPattern(pat value.Value) (value.Value, error) {
	matches, err := filepath.Glob(pat.(value.String).Text)
	if err != nil {
		return nil, fmt.Errorf("glob: %w", err)
	}
	elements := make([]value.Value, len(matches))
	for i, m := range matches {
		elements[i] = value.String{Text: m}
	}
	return value.NewArray(ast.StringType{}, false, elements), nil
}
