// Package ast defines the abstract syntax tree produced by the parser.
// Every concrete node type implements Node; nodes that produce a value
// also implement Expression, nodes that perform an action implement
// Statement. Ordered children (argument lists, block bodies, class
// members) are plain Go slices on the concrete type rather than a
// generic children list, since each node kind has a fixed shape.
package ast

import "github.com/cwbudde/redart/internal/lexer"

// Node is implemented by every AST node.
type Node interface {
	Pos() lexer.Position
	String() string
}

// Expression is a node that evaluates to an Object.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node that performs an action without itself
// producing a value.
type Statement interface {
	Node
	statementNode()
}

// Identifier is a bare name reference.
type Identifier struct {
	Position lexer.Position
	Name     string
}

func (n *Identifier) Pos() lexer.Position { return n.Position }
func (n *Identifier) String() string      { return n.Name }
func (*Identifier) expressionNode()       {}

// IntegerLiteral is an Int literal.
type IntegerLiteral struct {
	Position lexer.Position
	Value    int64
}

func (n *IntegerLiteral) Pos() lexer.Position { return n.Position }
func (n *IntegerLiteral) String() string      { return n.Position.String() }
func (*IntegerLiteral) expressionNode()       {}

// FloatLiteral is a Double literal.
type FloatLiteral struct {
	Position lexer.Position
	Value    float64
}

func (n *FloatLiteral) Pos() lexer.Position { return n.Position }
func (n *FloatLiteral) String() string      { return n.Position.String() }
func (*FloatLiteral) expressionNode()       {}

// StringLiteral is a string literal. Interps holds one raw token
// sequence per "${...}" interpolation site, in source order, copied
// verbatim from the lexer's Token.Interps — the parser does not parse
// these eagerly; the evaluator parses each sequence as an expression
// on demand when it encounters the literal.
type StringLiteral struct {
	Position lexer.Position
	Value    string
	Interps  [][]lexer.Token
}

func (n *StringLiteral) Pos() lexer.Position { return n.Position }
func (n *StringLiteral) String() string      { return n.Value }
func (*StringLiteral) expressionNode()       {}

// BooleanLiteral is a true/false literal.
type BooleanLiteral struct {
	Position lexer.Position
	Value    bool
}

func (n *BooleanLiteral) Pos() lexer.Position { return n.Position }
func (n *BooleanLiteral) String() string      { return n.Position.String() }
func (*BooleanLiteral) expressionNode()       {}

// NullLiteral is the `null` literal.
type NullLiteral struct {
	Position lexer.Position
}

func (n *NullLiteral) Pos() lexer.Position { return n.Position }
func (n *NullLiteral) String() string      { return "null" }
func (*NullLiteral) expressionNode()       {}

// ThisExpression is the `this` receiver reference.
type ThisExpression struct {
	Position lexer.Position
}

func (n *ThisExpression) Pos() lexer.Position { return n.Position }
func (n *ThisExpression) String() string      { return "this" }
func (*ThisExpression) expressionNode()       {}

// SuperExpression is the `super` reference.
type SuperExpression struct {
	Position lexer.Position
}

func (n *SuperExpression) Pos() lexer.Position { return n.Position }
func (n *SuperExpression) String() string      { return "super" }
func (*SuperExpression) expressionNode()       {}

// ListLiteral is a `[e1, e2, ...]` literal.
type ListLiteral struct {
	Position lexer.Position
	Elements []Expression
}

func (n *ListLiteral) Pos() lexer.Position { return n.Position }
func (n *ListLiteral) String() string      { return "List" }
func (*ListLiteral) expressionNode()       {}

// BinaryExpression is any two-operand arithmetic, relational, equality
// or logical/bitwise operator. Operator is the lexer literal ("+",
// "==", "&&", ...).
type BinaryExpression struct {
	Position lexer.Position
	Operator string
	Left     Expression
	Right    Expression
}

func (n *BinaryExpression) Pos() lexer.Position { return n.Position }
func (n *BinaryExpression) String() string      { return n.Operator }
func (*BinaryExpression) expressionNode()       {}

// UnaryExpression is a prefix `-` or `!`.
type UnaryExpression struct {
	Position lexer.Position
	Operator string
	Operand  Expression
}

func (n *UnaryExpression) Pos() lexer.Position { return n.Position }
func (n *UnaryExpression) String() string      { return n.Operator }
func (*UnaryExpression) expressionNode()       {}

// IncDecExpression is a prefix or postfix `++`/`--` applied to Target.
type IncDecExpression struct {
	Position lexer.Position
	Operator string // "++" or "--"
	Prefix   bool
	Target   Expression
}

func (n *IncDecExpression) Pos() lexer.Position { return n.Position }
func (n *IncDecExpression) String() string      { return n.Operator }
func (*IncDecExpression) expressionNode()       {}

// CallExpression is a bare `name(args)` call (Node kind FunCall).
type CallExpression struct {
	Position lexer.Position
	Name     string
	Args     []Expression
}

func (n *CallExpression) Pos() lexer.Position { return n.Position }
func (n *CallExpression) String() string      { return n.Name + "(...)" }
func (*CallExpression) expressionNode()       {}

// MethodCallExpression is a `receiver.name(args)` call.
type MethodCallExpression struct {
	Position   lexer.Position
	Receiver   Expression
	Name       string
	Args       []Expression
	SourceFile string
}

func (n *MethodCallExpression) Pos() lexer.Position { return n.Position }
func (n *MethodCallExpression) String() string      { return n.Name + "(...)" }
func (*MethodCallExpression) expressionNode()       {}

// AccessExpression is a `object.field` field read (Node kind Access).
type AccessExpression struct {
	Position lexer.Position
	Object   Expression
	Field    string
}

func (n *AccessExpression) Pos() lexer.Position { return n.Position }
func (n *AccessExpression) String() string      { return "." + n.Field }
func (*AccessExpression) expressionNode()       {}

// IndexExpression is a `collection[index]` read (Node kind CollAccess).
type IndexExpression struct {
	Position   lexer.Position
	Collection Expression
	Index      Expression
}

func (n *IndexExpression) Pos() lexer.Position { return n.Position }
func (n *IndexExpression) String() string      { return "[...]" }
func (*IndexExpression) expressionNode()       {}
