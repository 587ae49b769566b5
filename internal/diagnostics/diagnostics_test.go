package diagnostics

import (
	"testing"

	"github.com/tidwall/gjson"

	"github.com/shpl-lang/shpl/internal/scripterr"
)

func TestRenderJSONExecutionError(t *testing.T) {
	source := "let x = 1 / 0\n"
	err := (&scripterr.ExecutionError{Message: "division by zero", Start: 8, End: 13}).
		WithCallStack([]string{"main", "divide"})

	doc, rerr := RenderJSON(err, source, "script.shpl")
	if rerr != nil {
		t.Fatalf("RenderJSON: %v", rerr)
	}

	result := gjson.ParseBytes(doc)
	if got := result.Get("kind").String(); got != "execution" {
		t.Errorf("kind = %q, want execution", got)
	}
	if got := result.Get("exitCode").Int(); got != 103 {
		t.Errorf("exitCode = %d, want 103", got)
	}
	if got := result.Get("message").String(); got != "division by zero" {
		t.Errorf("message = %q", got)
	}
	if got := result.Get("file").String(); got != "script.shpl" {
		t.Errorf("file = %q", got)
	}
	stack := result.Get("callStack").Array()
	if len(stack) != 2 || stack[0].String() != "main" || stack[1].String() != "divide" {
		t.Errorf("callStack = %v", stack)
	}
}

func TestRenderJSONLexerError(t *testing.T) {
	err := &scripterr.LexerError{Message: "unexpected byte", Offset: 3}
	doc, rerr := RenderJSON(err, "ab\x00cd", "")
	if rerr != nil {
		t.Fatalf("RenderJSON: %v", rerr)
	}
	result := gjson.ParseBytes(doc)
	if got := result.Get("kind").String(); got != "lexer" {
		t.Errorf("kind = %q, want lexer", got)
	}
	if got := result.Get("exitCode").Int(); got != 101 {
		t.Errorf("exitCode = %d, want 101", got)
	}
	if result.Get("file").Exists() {
		t.Error("file should be omitted when empty")
	}
}
