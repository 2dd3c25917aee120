package ast

import "github.com/cwbudde/redart/internal/lexer"

// FieldDecl is one `Type name;` or `Type name = expr;` class member.
// Order within ClassDecl.Fields is the declared order, which must be
// preserved for deterministic field-initializer evaluation.
type FieldDecl struct {
	Position lexer.Position
	TypeName string
	Name     string
	Value    Expression // nil when the field has no initializer
}

func (n *FieldDecl) Pos() lexer.Position { return n.Position }
func (n *FieldDecl) String() string      { return n.TypeName + " " + n.Name }

// Initializer is one `this.field = expr` entry of a constructor's
// initializer list.
type Initializer struct {
	Position lexer.Position
	Field    string
	Value    Expression
}

func (n *Initializer) Pos() lexer.Position { return n.Position }
func (n *Initializer) String() string      { return "this." + n.Field + " = ..." }

// Constructor is a class constructor: name, parameter list,
// initializer list, and body, in that order per the specification's
// positional-children invariant.
type Constructor struct {
	Position   lexer.Position
	Name       string
	Params     []ParamNode
	Inits      []*Initializer
	Body       *BlockStatement
	SourceFile string
}

func (n *Constructor) Pos() lexer.Position { return n.Position }
func (n *Constructor) String() string      { return "ctor " + n.Name }
func (*Constructor) declNode()             {}

// ClassDecl is a full `class Name { member* }` declaration. It is
// never appended to State.globals — the module loader consumes it
// directly to populate the class registry — so it does not implement
// Decl.
type ClassDecl struct {
	Position     lexer.Position
	Name         string
	Fields       []*FieldDecl
	Constructors []*Constructor
	Methods      []*FunctionDecl
	SourceFile   string
}

func (n *ClassDecl) Pos() lexer.Position { return n.Position }
func (n *ClassDecl) String() string      { return "class " + n.Name }
