package lexer_test

import (
	"testing"

	"github.com/shpl-lang/shpl/internal/lexer"
)

func collect(t *testing.T, src string) []lexer.Token {
	t.Helper()
	l := lexer.New(src)
	var toks []lexer.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == lexer.EOF {
			break
		}
	}
	if errs := l.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected lexer errors: %v", errs)
	}
	return toks
}

func kinds(toks []lexer.Token) []lexer.Kind {
	out := make([]lexer.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func assertKinds(t *testing.T, toks []lexer.Token, want []lexer.Kind) {
	t.Helper()
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %v want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %s want %s (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestLexSimpleDeclaration(t *testing.T) {
	toks := collect(t, `var x = 1 + 2;`)
	assertKinds(t, toks, []lexer.Kind{
		lexer.Keyword, lexer.Identifier, lexer.Equals, lexer.IntegerLiteral,
		lexer.Plus, lexer.IntegerLiteral, lexer.Semicolon, lexer.EOF,
	})
}

func TestLexCommentConsumedToNewline(t *testing.T) {
	toks := collect(t, "# a comment\nvar x = 1;")
	assertKinds(t, toks, []lexer.Kind{
		lexer.Keyword, lexer.Identifier, lexer.Equals, lexer.IntegerLiteral,
		lexer.Semicolon, lexer.EOF,
	})
}

func TestLexStringLiteralWithEscapes(t *testing.T) {
	toks := collect(t, `"Blue \"cheese\" and rice!"`)
	assertKinds(t, toks, []lexer.Kind{
		lexer.DoubleQuote, lexer.StringLiteral, lexer.DoubleQuote, lexer.EOF,
	})
	if toks[1].Text != `Blue "cheese" and rice!` {
		t.Fatalf("unexpected escaped text: %q", toks[1].Text)
	}
}

func TestLexEmptyString(t *testing.T) {
	toks := collect(t, `""`)
	assertKinds(t, toks, []lexer.Kind{lexer.DoubleQuote, lexer.DoubleQuote, lexer.EOF})
}

func TestLexTemplateVariableFullExpression(t *testing.T) {
	toks := collect(t, `"hello ${1 + 2}!"`)
	assertKinds(t, toks, []lexer.Kind{
		lexer.DoubleQuote, lexer.StringLiteral, lexer.Dollar, lexer.LeftCurly,
		lexer.IntegerLiteral, lexer.Plus, lexer.IntegerLiteral, lexer.RightCurly,
		lexer.StringLiteral, lexer.DoubleQuote, lexer.EOF,
	})
	if toks[1].Text != "hello " {
		t.Fatalf("unexpected prefix text: %q", toks[1].Text)
	}
	if toks[8].Text != "!" {
		t.Fatalf("unexpected suffix text: %q", toks[8].Text)
	}
}

func TestLexTemplateVariableWithNestedBlock(t *testing.T) {
	// The brace-depth counter must not close the template on the inner '{' / '}'
	// of a nested block expression.
	toks := collect(t, `"${ { var y = 1; y } }"`)
	assertKinds(t, toks, []lexer.Kind{
		lexer.DoubleQuote, lexer.Dollar, lexer.LeftCurly,
		lexer.LeftCurly, lexer.Keyword, lexer.Identifier, lexer.Equals, lexer.IntegerLiteral,
		lexer.Semicolon, lexer.Identifier, lexer.RightCurly,
		lexer.RightCurly, lexer.DoubleQuote, lexer.EOF,
	})
}

func TestLexCommandLiteral(t *testing.T) {
	toks := collect(t, "`echo something`")
	assertKinds(t, toks, []lexer.Kind{
		lexer.Backtick, lexer.StringLiteral, lexer.StringLiteral, lexer.Backtick, lexer.EOF,
	})
	if toks[1].Text != "echo" || toks[2].Text != "something" {
		t.Fatalf("unexpected command words: %q %q", toks[1].Text, toks[2].Text)
	}
}

func TestLexCommandLiteralWithQuotedArgument(t *testing.T) {
	toks := collect(t, "`echo \"hello world\"`")
	assertKinds(t, toks, []lexer.Kind{
		lexer.Backtick, lexer.StringLiteral, lexer.DoubleQuote, lexer.StringLiteral,
		lexer.DoubleQuote, lexer.Backtick, lexer.EOF,
	})
}

func TestLexIllegalCharacterIsAccumulatedAsError(t *testing.T) {
	l := lexer.New("var x = 1 ~ 2;")
	for {
		tok := l.NextToken()
		if tok.Kind == lexer.EOF {
			break
		}
	}
	errs := l.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected exactly one lexer error, got %v", errs)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := lexer.New("var x")
	first := l.Peek(0)
	second := l.Peek(0)
	if first != second {
		t.Fatalf("Peek(0) should be stable across calls: %v != %v", first, second)
	}
	consumed := l.NextToken()
	if consumed != first {
		t.Fatalf("NextToken should return what Peek(0) promised: %v != %v", consumed, first)
	}
}

func TestByteOffsetsAreRelativeToNormalizedBuffer(t *testing.T) {
	l := lexer.New("x")
	tok := l.NextToken()
	if tok.Start != 0 || tok.End != 1 {
		t.Fatalf("unexpected offsets: start=%d end=%d", tok.Start, tok.End)
	}
}
