// Package scripterr implements the three-kind error taxonomy of spec §7:
// LexerError, ParserError, ExecutionError, each carrying enough position
// information to render a source excerpt, plus the exit-code mapping of
// spec §6.1. Grounded on go-dws internal/errors/errors.go's
// CompilerError.Format (source-excerpt + caret rendering) and
// internal/errors/stack_trace.go's StackTrace (ExecutionError's call
// stack).
package scripterr

import (
	"fmt"
	"strings"
)

// LexerError is produced when no token rule matches at a position (spec
// §7); it carries a single byte offset, not a span.
type LexerError struct {
	Message string
	Offset  int
}

func (e *LexerError) Error() string { return e.Message }

// ParserError is produced by the parser on unexpected tokens or
// malformed grammar; it carries the offending token's start/end byte
// offsets.
type ParserError struct {
	Message string
	Start   int
	End     int
}

func (e *ParserError) Error() string { return e.Message }

// ExecutionError is produced at type-check or runtime. CallStack is
// attached by the evaluator at the point the error surfaces (spec §7:
// "the evaluator attaches the current call stack").
type ExecutionError struct {
	Message   string
	Start     int
	End       int
	CallStack []string
}

func (e *ExecutionError) Error() string { return e.Message }

// NewExecutionError builds an ExecutionError positioned at a single
// offset (span of zero width), for sites that only have one coordinate
// to report (most runtime failures).
func NewExecutionError(offset int, format string, args ...interface{}) *ExecutionError {
	return &ExecutionError{Message: fmt.Sprintf(format, args...), Start: offset, End: offset}
}

// WithCallStack returns e with CallStack set to a copy of stack, for
// attaching the call stack at the point an ExecutionError surfaces to
// the top level.
func (e *ExecutionError) WithCallStack(stack []string) *ExecutionError {
	e.CallStack = append([]string(nil), stack...)
	return e
}

// ExitCode maps an error to the process exit code of spec §6.1: 101 for
// a LexerError, 102 for a ParserError, 103 for an ExecutionError, 100
// for anything else (a generic, uncategorized error).
func ExitCode(err error) int {
	switch err.(type) {
	case *LexerError:
		return 101
	case *ParserError:
		return 102
	case *ExecutionError:
		return 103
	default:
		return 100
	}
}

// LineCol converts a byte offset into a 1-indexed (line, column) pair
// against source. Columns are counted in bytes, not grapheme clusters —
// a documented simplification shared with the rest of the ambient error
// rendering; positions that matter for correctness (lexer/parser/eval
// decisions) stay in byte offsets throughout the tree, this is display
// only.
func LineCol(source string, offset int) (line, col int) {
	line, col = 1, 1
	if offset > len(source) {
		offset = len(source)
	}
	for i := 0; i < offset; i++ {
		if source[i] == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

func sourceLine(source string, line int) string {
	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// Render formats err as the user-visible message spec §7 describes: a
// one-line message for a LexerError, a multi-line excerpt+caret message
// for a ParserError, and an excerpt+caret message followed by
// `call stack: [f1, f2, ...]` for an ExecutionError. file may be empty
// (e.g. for REPL-less, single-script invocations where the path is
// already implied by the caller).
func Render(err error, source, file string) string {
	switch e := err.(type) {
	case *LexerError:
		line, col := LineCol(source, e.Offset)
		return fmt.Sprintf("lexer error at %s: %s", where(file, line, col), e.Message)
	case *ParserError:
		return formatExcerpt(file, source, e.Start, e.End, "parser error", e.Message)
	case *ExecutionError:
		msg := formatExcerpt(file, source, e.Start, e.End, "execution error", e.Message)
		if len(e.CallStack) > 0 {
			msg += "\ncall stack: [" + strings.Join(e.CallStack, ", ") + "]"
		}
		return msg
	default:
		return err.Error()
	}
}

func where(file string, line, col int) string {
	if file == "" {
		return fmt.Sprintf("%d:%d", line, col)
	}
	return fmt.Sprintf("%s:%d:%d", file, line, col)
}

func formatExcerpt(file, source string, start, end int, kind, message string) string {
	line, col := LineCol(source, start)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at %s\n", kind, where(file, line, col))

	if text := sourceLine(source, line); text != "" {
		gutter := fmt.Sprintf("%4d | ", line)
		sb.WriteString(gutter)
		sb.WriteString(text)
		sb.WriteByte('\n')

		width := end - start
		if width < 1 {
			width = 1
		}
		sb.WriteString(strings.Repeat(" ", len(gutter)+col-1))
		sb.WriteString(strings.Repeat("^", width))
		sb.WriteByte('\n')
	}

	sb.WriteString(message)
	return sb.String()
}
