package ast

import "github.com/cwbudde/redart/internal/lexer"

// BlockStatement is a `{`-delimited sequence of statements.
type BlockStatement struct {
	Position   lexer.Position
	Statements []Statement
}

func (n *BlockStatement) Pos() lexer.Position { return n.Position }
func (n *BlockStatement) String() string      { return "Block" }
func (*BlockStatement) statementNode()        {}

// IfBranch is one arm of a Conditional: the first entry is the `if`
// (Cond non-nil), interior entries are `else if` (Cond non-nil), and
// an optional trailing entry with Cond == nil is the `else`.
type IfBranch struct {
	Cond Expression
	Body *BlockStatement
}

// Conditional assembles an if/else-if*/else? chain into one node, per
// the invariant that a Conditional's branches are ordered If, ElseIf*,
// Else?.
type Conditional struct {
	Position lexer.Position
	Branches []*IfBranch
}

func (n *Conditional) Pos() lexer.Position { return n.Position }
func (n *Conditional) String() string      { return "Conditional" }
func (*Conditional) statementNode()        {}

// WhileStatement is `while (Cond) Body`.
type WhileStatement struct {
	Position lexer.Position
	Cond     Expression
	Body     *BlockStatement
}

func (n *WhileStatement) Pos() lexer.Position { return n.Position }
func (n *WhileStatement) String() string      { return "While" }
func (*WhileStatement) statementNode()        {}

// DoWhileStatement is `do Body while (Cond);`. Body runs at least once.
type DoWhileStatement struct {
	Position lexer.Position
	Body     *BlockStatement
	Cond     Expression
}

func (n *DoWhileStatement) Pos() lexer.Position { return n.Position }
func (n *DoWhileStatement) String() string      { return "DoWhile" }
func (*DoWhileStatement) statementNode()        {}

// ForStatement is `for (Init; Cond; Post) Body`. Init and Post may be
// nil; Cond nil means "always true".
type ForStatement struct {
	Position lexer.Position
	Init     Statement
	Cond     Expression
	Post     Statement
	Body     *BlockStatement
}

func (n *ForStatement) Pos() lexer.Position { return n.Position }
func (n *ForStatement) String() string      { return "For" }
func (*ForStatement) statementNode()        {}

// ReturnStatement is `return Value;`.
type ReturnStatement struct {
	Position lexer.Position
	Value    Expression
}

func (n *ReturnStatement) Pos() lexer.Position { return n.Position }
func (n *ReturnStatement) String() string      { return "Return" }
func (*ReturnStatement) statementNode()        {}
