package ast

// Expression is a flat operator chain: `first (op base)*` (spec §3.2).
// Evaluation applies operators strictly left-to-right with no precedence.
type Expression struct {
	First      *BaseExpression
	Operations []OperatorOperand
	Position_  Position
}

func (e *Expression) Pos() Position { return e.Position_ }

// OperatorOperand is one `(operator, right-hand base)` link in a flat
// operator chain.
type OperatorOperand struct {
	Operator Operator
	Right    *BaseExpression
}

// BaseExpression is expression content followed by zero or more chained
// accessors (spec §3.2, §4.3 `base`).
type BaseExpression struct {
	Content   ExpressionContent
	Accessors []Accessor
	Position_ Position
}

func (b *BaseExpression) Pos() Position { return b.Position_ }

// Accessor is implemented by the three postfix accessor forms chained
// after a base expression's content: `.0`, `.field`/`.method(args)`, and
// `[expr]`.
type Accessor interface {
	Node
	accessorNode()
}

// TupleIndexAccessor is `.N`, indexing a tuple value.
type TupleIndexAccessor struct {
	Index     uint32
	Position_ Position
}

func (a *TupleIndexAccessor) Pos() Position  { return a.Position_ }
func (a *TupleIndexAccessor) accessorNode() {}

// FieldAccessor is `.name` or `.name(args)`: a builtin/instance method
// call, or (when HasArgs is false) a plain field-style read. The script
// language has no user-defined fields, so in practice every
// zero-argument FieldAccessor still dispatches to an instance builtin
// (e.g. `.len`-style access is always written `.len()`).
type FieldAccessor struct {
	Name      string
	Arguments []*Expression
	HasArgs   bool
	Position_ Position
}

func (a *FieldAccessor) Pos() Position  { return a.Position_ }
func (a *FieldAccessor) accessorNode() {}

// SubscriptAccessor is `[expr]`, indexing an array value.
type SubscriptAccessor struct {
	Index     *Expression
	Position_ Position
}

func (a *SubscriptAccessor) Pos() Position  { return a.Position_ }
func (a *SubscriptAccessor) accessorNode() {}

// ExpressionContent is implemented by every `content` alternative in the
// grammar (spec §4.3).
type ExpressionContent interface {
	Node
	expressionContentNode()
}

// StringLiteral is a (possibly interpolated) string: a sequence of
// literal-text segments, each optionally followed by an interpolated
// expression, plus a final trailing literal segment.
type StringLiteral struct {
	Segments  []StringSegment
	Tail      string
	Position_ Position
}

func (s *StringLiteral) Pos() Position            { return s.Position_ }
func (s *StringLiteral) expressionContentNode()   {}

// StringSegment is one `prefix ${expr}` pair inside a StringLiteral.
type StringSegment struct {
	Prefix string
	Value  *Expression
}

type BooleanLiteral struct {
	Value     bool
	Position_ Position
}

func (b *BooleanLiteral) Pos() Position          { return b.Position_ }
func (b *BooleanLiteral) expressionContentNode() {}

type IntegerLiteral struct {
	Value     int32
	Position_ Position
}

func (i *IntegerLiteral) Pos() Position          { return i.Position_ }
func (i *IntegerLiteral) expressionContentNode() {}

// CommandLiteral is a backtick command literal: one StringLiteral per
// whitespace-separated word, the first naming the program.
type CommandLiteral struct {
	Words     []*StringLiteral
	Position_ Position
}

func (c *CommandLiteral) Pos() Position          { return c.Position_ }
func (c *CommandLiteral) expressionContentNode() {}

// ArrayLiteral is `[e1, e2, ...]`.
type ArrayLiteral struct {
	Elements  []*Expression
	Position_ Position
}

func (a *ArrayLiteral) Pos() Position          { return a.Position_ }
func (a *ArrayLiteral) expressionContentNode() {}

// TupleLiteral is `(e1, e2, ...)` with at least one comma (distinguishing
// it from a BracketExpression).
type TupleLiteral struct {
	Elements  []*Expression
	Position_ Position
}

func (t *TupleLiteral) Pos() Position          { return t.Position_ }
func (t *TupleLiteral) expressionContentNode() {}

// BracketExpression is a parenthesized single expression, `(expr)`.
type BracketExpression struct {
	Inner     *Expression
	Position_ Position
}

func (b *BracketExpression) Pos() Position          { return b.Position_ }
func (b *BracketExpression) expressionContentNode() {}

// VariableOrCall is a bare identifier, read as a variable when HasArgs is
// false or invoked as a user function/builtin when true.
type VariableOrCall struct {
	Name      string
	Arguments []*Expression
	HasArgs   bool
	Position_ Position
}

func (v *VariableOrCall) Pos() Position          { return v.Position_ }
func (v *VariableOrCall) expressionContentNode() {}

// WhileExpression is `while cond { body }`.
type WhileExpression struct {
	Condition *Expression
	Body      *Block
	Position_ Position
}

func (w *WhileExpression) Pos() Position          { return w.Position_ }
func (w *WhileExpression) expressionContentNode() {}

// ForExpression is `for name in source { body }`.
type ForExpression struct {
	LoopVariable string
	Source       *Expression
	Body         *Block
	Position_    Position
}

func (f *ForExpression) Pos() Position          { return f.Position_ }
func (f *ForExpression) expressionContentNode() {}

// ConditionalBranch is one `(condition, block)` pair of an if/else-if
// chain.
type ConditionalBranch struct {
	Condition *Expression
	Body      *Block
}

// BranchExpression is an if/else-if/else chain.
type BranchExpression struct {
	Branches  []ConditionalBranch
	Else      *Block
	Position_ Position
}

func (b *BranchExpression) Pos() Position          { return b.Position_ }
func (b *BranchExpression) expressionContentNode() {}

// BlockExpression evaluates a block in a fresh scope and yields Void.
type BlockExpression struct {
	Body      *Block
	Position_ Position
}

func (b *BlockExpression) Pos() Position          { return b.Position_ }
func (b *BlockExpression) expressionContentNode() {}
