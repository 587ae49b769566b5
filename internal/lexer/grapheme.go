package lexer

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Grapheme is one grapheme cluster and its byte span in the normalized
// source buffer.
type Grapheme struct {
	Text  string
	Start int
	End   int
}

// GraphemeSource produces a lazy sequence of grapheme clusters with byte
// offsets (spec §2 item 1). The source is first normalized to Unicode NFC
// via golang.org/x/text/unicode/norm so that grapheme-cluster boundaries
// are well defined; a cluster is then a base code point followed by any
// run of Unicode combining marks (categories Mn, Mc, Me), an approximation
// of UAX #29 that covers the accented-identifier and combining-diacritic
// cases the script language's source charset needs without the full
// complexity of regional-indicator or ZWJ emoji clustering.
type GraphemeSource struct {
	buf string
	pos int
}

// NewGraphemeSource normalizes input to NFC and returns a source ready to
// yield grapheme clusters from the start of the buffer.
func NewGraphemeSource(input string) *GraphemeSource {
	return &GraphemeSource{buf: norm.NFC.String(input)}
}

// Buffer returns the normalized source buffer. Token byte offsets are
// always relative to this buffer, not the original input.
func (g *GraphemeSource) Buffer() string {
	return g.buf
}

func isCombiningMark(r rune) bool {
	return unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Me, r)
}

func (g *GraphemeSource) clusterAt(pos int) (Grapheme, bool) {
	if pos >= len(g.buf) {
		return Grapheme{}, false
	}
	start := pos
	_, size := utf8.DecodeRuneInString(g.buf[pos:])
	pos += size
	for pos < len(g.buf) {
		r2, size2 := utf8.DecodeRuneInString(g.buf[pos:])
		if !isCombiningMark(r2) {
			break
		}
		pos += size2
	}
	return Grapheme{Text: g.buf[start:pos], Start: start, End: pos}, true
}

// Next returns the next grapheme cluster and advances the source, or
// ok=false when the source is exhausted.
func (g *GraphemeSource) Next() (Grapheme, bool) {
	gr, ok := g.clusterAt(g.pos)
	if !ok {
		return Grapheme{}, false
	}
	g.pos = gr.End
	return gr, true
}

// Peek returns the next grapheme cluster without consuming it.
func (g *GraphemeSource) Peek() (Grapheme, bool) {
	return g.clusterAt(g.pos)
}

// PeekAt returns the grapheme cluster n clusters ahead (PeekAt(0) == Peek)
// without consuming any input.
func (g *GraphemeSource) PeekAt(n int) (Grapheme, bool) {
	pos := g.pos
	var gr Grapheme
	var ok bool
	for i := 0; i <= n; i++ {
		gr, ok = g.clusterAt(pos)
		if !ok {
			return Grapheme{}, false
		}
		pos = gr.End
	}
	return gr, true
}

// Done reports whether the source is exhausted.
func (g *GraphemeSource) Done() bool {
	return g.pos >= len(g.buf)
}
