package ast

import "github.com/cwbudde/redart/internal/lexer"

// VarStatement is a local typed variable declaration, with an
// optional initializer (Node kind TypedVar used as a statement).
type VarStatement struct {
	Position lexer.Position
	TypeName string
	Name     string
	Value    Expression // nil when uninitialized
}

func (n *VarStatement) Pos() lexer.Position { return n.Position }
func (n *VarStatement) String() string      { return n.TypeName + " " + n.Name }
func (*VarStatement) statementNode()        {}

// AssignStatement is a plain `target = value;` assignment. Target is
// a Name, Access, or CollAccess expression.
type AssignStatement struct {
	Position lexer.Position
	Target   Expression
	Value    Expression
}

func (n *AssignStatement) Pos() lexer.Position { return n.Position }
func (n *AssignStatement) String() string      { return "Assign" }
func (*AssignStatement) statementNode()        {}

// ExpressionStatement wraps an expression evaluated for its side
// effect (a call, a postfix/prefix increment) at statement position.
type ExpressionStatement struct {
	Position lexer.Position
	Expr     Expression
}

func (n *ExpressionStatement) Pos() lexer.Position { return n.Position }
func (n *ExpressionStatement) String() string      { return n.Expr.String() }
func (*ExpressionStatement) statementNode()        {}

// EmptyStatement is a bare `;`.
type EmptyStatement struct {
	Position lexer.Position
}

func (n *EmptyStatement) Pos() lexer.Position { return n.Position }
func (n *EmptyStatement) String() string      { return ";" }
func (*EmptyStatement) statementNode()        {}
