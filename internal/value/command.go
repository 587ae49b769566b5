package value

import (
	"strings"

	"github.com/shpl-lang/shpl/internal/ast"
)

// Command wraps a program and its argument list, produced by a command
// literal (`` `prog arg1 arg2` ``) and consumed as a pipeline stage.
type Command struct {
	Program   string
	Arguments []string
}

func (Command) Type() ast.Type { return ast.CommandType{} }

// String renders the command per spec §6.3: a backtick-delimited,
// space-separated list of its words, each word quoted as a string value.
func (c Command) String() string {
	var sb strings.Builder
	sb.WriteByte('`')
	sb.WriteString(String{Text: c.Program}.String())
	for _, arg := range c.Arguments {
		sb.WriteByte(' ')
		sb.WriteString(String{Text: arg}.String())
	}
	sb.WriteByte('`')
	return sb.String()
}
