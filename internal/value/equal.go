package value

// Equal implements spec §4.4's `==`/`!=` structural equality, valid only
// between values of the same type (the type checker rejects any other
// combination before this runs). Array equality compares element-wise
// contents plus the declared element type and mutability flag, not
// handle identity — two separately-built arrays with equal contents are
// equal, mirroring the original interpreter's derived PartialEq over its
// Rc<RefCell<Vec<Value>>> representation.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Void:
		_, ok := b.(Void)
		return ok
	case String:
		bv, ok := b.(String)
		return ok && av.Text == bv.Text
	case Integer:
		bv, ok := b.(Integer)
		return ok && av.Val == bv.Val
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av.Val == bv.Val
	case Command:
		bv, ok := b.(Command)
		if !ok || av.Program != bv.Program || len(av.Arguments) != len(bv.Arguments) {
			return false
		}
		for i := range av.Arguments {
			if av.Arguments[i] != bv.Arguments[i] {
				return false
			}
		}
		return true
	case FileHandle:
		bv, ok := b.(FileHandle)
		return ok && av.Path == bv.Path && av.Mode == bv.Mode
	case Array:
		bv, ok := b.(Array)
		if !ok || av.Mutable != bv.Mutable || !av.Element.Equal(bv.Element) {
			return false
		}
		if av.Len() != bv.Len() {
			return false
		}
		for i := 0; i < av.Len(); i++ {
			ae, _ := av.At(i)
			be, _ := bv.At(i)
			if !Equal(ae, be) {
				return false
			}
		}
		return true
	case Tuple:
		bv, ok := b.(Tuple)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equal(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
