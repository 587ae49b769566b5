package value

import "github.com/shpl-lang/shpl/internal/ast"

// arrayHandle is the RefCell-style shared storage behind every Array
// value that aliases the same literal. Borrow bookkeeping mirrors Rust's
// RefCell: any number of concurrent read borrows are allowed, but a
// write borrow requires that no other borrow (read or write) is live.
// The interpreter is single-threaded (spec §5), so this is plain
// bookkeeping, not a mutex.
type arrayHandle struct {
	elements  []Value
	readCount int
	written   bool
}

func (h *arrayHandle) tryBorrow() bool {
	if h.written {
		return false
	}
	h.readCount++
	return true
}

func (h *arrayHandle) releaseBorrow() {
	h.readCount--
}

func (h *arrayHandle) tryBorrowMut() bool {
	if h.written || h.readCount > 0 {
		return false
	}
	h.written = true
	return true
}

func (h *arrayHandle) releaseBorrowMut() {
	h.written = false
}

// Array is a shared handle to a vector of values plus the declared
// element type and mutability flag (spec §3.3). Copying an Array value
// copies the handle, not the backing slice: all copies observe the same
// length and elements, which is how aliasing works for arguments and
// assignments.
type Array struct {
	handle  *arrayHandle
	Element ast.Type
	Mutable bool
}

// NewArray wraps elements in a fresh, uniquely-owned handle.
func NewArray(element ast.Type, mutable bool, elements []Value) Array {
	return Array{handle: &arrayHandle{elements: elements}, Element: element, Mutable: mutable}
}

func (a Array) Type() ast.Type {
	return ast.ArrayType{Element: a.Element, Mutable: a.Mutable}
}

func (a Array) String() string {
	return formatSequence("[", ",", "]", a.handle.elements)
}

// Len reports the current element count. Used directly by indexing and
// by the `len` builtin; it does not itself take a borrow, matching
// RefCell::borrow's use inside array_len (a borrow that's released
// before returning).
func (a Array) Len() int { return len(a.handle.elements) }

// At returns the element at i, or ok=false if out of range.
func (a Array) At(i int) (Value, bool) {
	if i < 0 || i >= len(a.handle.elements) {
		return nil, false
	}
	return a.handle.elements[i], true
}

// Borrow acquires a read borrow for the duration of an iteration (e.g. a
// for-in loop) over this array. Call the returned release func when the
// borrow ends. ok is false if a write borrow is already live.
func (a Array) Borrow() (release func(), ok bool) {
	if !a.handle.tryBorrow() {
		return nil, false
	}
	return a.handle.releaseBorrow, true
}

// Push appends v, failing if a borrow (read or write) of this array is
// already live — e.g. a push during iteration over the same array (spec
// §5's shared-resource policy).
func (a Array) Push(v Value) (ok bool) {
	if !a.handle.tryBorrowMut() {
		return false
	}
	defer a.handle.releaseBorrowMut()
	a.handle.elements = append(a.handle.elements, v)
	return true
}

// Pop removes and returns the last element, failing (empty=true) if the
// array has no elements, or (ok=false) if a borrow is already live.
func (a Array) Pop() (v Value, ok bool, empty bool) {
	if !a.handle.tryBorrowMut() {
		return nil, false, false
	}
	defer a.handle.releaseBorrowMut()
	n := len(a.handle.elements)
	if n == 0 {
		return nil, true, true
	}
	v = a.handle.elements[n-1]
	a.handle.elements = a.handle.elements[:n-1]
	return v, true, false
}

// SameHandle reports whether a and other alias the same underlying
// storage.
func (a Array) SameHandle(other Array) bool {
	return a.handle == other.handle
}
