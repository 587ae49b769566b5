package ast

// Operator is a flat binary operator (spec §4.4). The parser never builds
// precedence into the tree; chaining-class validation happens in
// internal/typecheck.
type Operator int

const (
	Add Operator = iota
	Subtract
	Multiply
	Divide
	Remainder
	Equal
	NotEqual
	LessThan
	GreaterThan
	LessThanOrEqual
	GreaterThanOrEqual
	And
	Or
)

var operatorNames = map[Operator]string{
	Add: "+", Subtract: "-", Multiply: "*", Divide: "/", Remainder: "%",
	Equal: "==", NotEqual: "!=", LessThan: "<", GreaterThan: ">",
	LessThanOrEqual: "<=", GreaterThanOrEqual: ">=", And: "&&", Or: "||",
}

func (o Operator) String() string { return operatorNames[o] }

// ChainClass groups operators that may legally chain with each other in a
// flat operator sequence (spec §4.3/§9 "Parser ambiguity"): `{*}`,
// `{+, -}`, `{&&, ||}`. Equal/NotEqual and the relational operators do not
// chain with anything, including themselves (spec gives no class for
// them; typecheck rejects any chain containing more than one).
type ChainClass int

const (
	ChainNone ChainClass = iota
	ChainMultiplicative
	ChainAdditive
	ChainLogical
)

func (o Operator) ChainClass() ChainClass {
	switch o {
	case Multiply:
		return ChainMultiplicative
	case Add, Subtract:
		return ChainAdditive
	case And, Or:
		return ChainLogical
	default:
		return ChainNone
	}
}

// ChainsWith reports whether two operators may appear adjacently in the
// same flat operator chain.
func (o Operator) ChainsWith(other Operator) bool {
	class := o.ChainClass()
	return class != ChainNone && class == other.ChainClass()
}
