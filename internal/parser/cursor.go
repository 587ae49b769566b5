package parser

import "github.com/shpl-lang/shpl/internal/lexer"

// Checkpoint is an opaque cursor position returned by Cursor.Checkpoint
// and consumed by Cursor.Backtrack (spec §4.2).
type Checkpoint struct{ index int }

// Cursor is a backtrackable wrapper over a lexer.Lexer (spec §4.2):
// Peek/Next navigate a buffered token stream, and Checkpoint/Backtrack
// let the parser try a production and undo it. Grounded on go-dws
// `internal/parser/cursor.go`'s TokenCursor, simplified to a mutable
// cursor (single shared token buffer, index field) since the grammar
// here never needs more than linear backtracking to a prior checkpoint.
type Cursor struct {
	lex    *lexer.Lexer
	tokens []lexer.Token
	index  int
}

// NewCursor creates a Cursor positioned at the first token of lex.
func NewCursor(lex *lexer.Lexer) *Cursor {
	return &Cursor{lex: lex, tokens: []lexer.Token{lex.Peek(0)}}
}

func (c *Cursor) fill(n int) {
	for len(c.tokens) <= n {
		c.tokens = append(c.tokens, c.lex.Peek(len(c.tokens)))
	}
}

// Peek returns the token n positions ahead of the cursor without
// consuming anything. Peek(0) is the token Next would return.
func (c *Cursor) Peek(n int) lexer.Token {
	c.fill(c.index + n)
	return c.tokens[c.index+n]
}

// Current is shorthand for Peek(0).
func (c *Cursor) Current() lexer.Token { return c.Peek(0) }

// Next returns the current token and advances the cursor past it. At
// EOF, Next keeps returning the EOF token without advancing further.
func (c *Cursor) Next() lexer.Token {
	tok := c.Peek(0)
	if tok.Kind != lexer.EOF {
		c.index++
	}
	return tok
}

// Is reports whether the current token has the given kind.
func (c *Cursor) Is(k lexer.Kind) bool { return c.Current().Kind == k }

// Checkpoint saves the current position for a later Backtrack.
func (c *Cursor) Checkpoint() Checkpoint { return Checkpoint{index: c.index} }

// Backtrack restores the cursor to a previously saved Checkpoint.
func (c *Cursor) Backtrack(cp Checkpoint) { c.index = cp.index }

// IsKeyword reports whether the current token is the keyword kw.
func (c *Cursor) IsKeyword(kw string) bool {
	tok := c.Current()
	return tok.Kind == lexer.Keyword && tok.Text == kw
}

// EatKeyword consumes the current token if it is the keyword kw, reporting
// whether it did.
func (c *Cursor) EatKeyword(kw string) bool {
	if c.IsKeyword(kw) {
		c.Next()
		return true
	}
	return false
}

// Expect consumes the current token if it has kind k, returning it;
// otherwise it leaves the cursor untouched and returns a parse error.
func (c *Cursor) Expect(k lexer.Kind) (lexer.Token, error) {
	if !c.Is(k) {
		return lexer.Token{}, unexpected(c.Current(), k.String())
	}
	return c.Next(), nil
}

// ExpectKeyword consumes the current token if it is the keyword kw,
// otherwise returning a parse error.
func (c *Cursor) ExpectKeyword(kw string) error {
	if !c.EatKeyword(kw) {
		return unexpected(c.Current(), "'"+kw+"'")
	}
	return nil
}
