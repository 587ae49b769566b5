package value

import "github.com/shpl-lang/shpl/internal/ast"

// OpenMode is the mode a FileHandle was opened with (spec §3.3).
type OpenMode int

const (
	ModeOpen OpenMode = iota
	ModeWrite
	ModeAppend
)

func (m OpenMode) String() string {
	switch m {
	case ModeOpen:
		return "open"
	case ModeWrite:
		return "write"
	case ModeAppend:
		return "append"
	default:
		return "unknown"
	}
}

// FileHandle names a filesystem path and the mode it was opened for. It
// carries no open OS file descriptor; internal/builtins only constructs
// it, and internal/pipeline opens the underlying file when the handle is
// used as a pipeline source or destination.
type FileHandle struct {
	Path string
	Mode OpenMode
}

func (FileHandle) Type() ast.Type { return ast.FileHandleType{} }

func (f FileHandle) String() string {
	return "<file_handle:" + f.Mode.String() + "(\"" + f.Path + "\")>"
}
