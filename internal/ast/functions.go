package ast

import "github.com/cwbudde/redart/internal/lexer"

// Decl is implemented by every node kind that can occupy a slot in
// State.globals: FunctionDecl, Constructor, and TopVarDecl (which
// covers both TopVarLazy and ConstTopLazy, distinguished by Const).
type Decl interface {
	Node
	declNode()
}

// ParamNode is one entry of a parameter list: either a plain typed
// parameter (TypedVarNode) or a constructor field-init parameter
// (ThisFieldInitNode).
type ParamNode interface {
	Node
	paramNode()
}

// TypedVarNode is a `Type name` declaration, used as a parameter, a
// class field (without its initializer, which classes.go's FieldDecl
// carries separately), and reused here for naming symmetry with the
// specification's TypedVar node kind.
type TypedVarNode struct {
	Position lexer.Position
	TypeName string
	Name     string
}

func (n *TypedVarNode) Pos() lexer.Position { return n.Position }
func (n *TypedVarNode) String() string      { return n.TypeName + " " + n.Name }
func (*TypedVarNode) paramNode()            {}

// ThisFieldInitNode is a `this.field` constructor parameter: binding
// it writes directly to the instance field named Name.
type ThisFieldInitNode struct {
	Position lexer.Position
	Name     string
}

func (n *ThisFieldInitNode) Pos() lexer.Position { return n.Position }
func (n *ThisFieldInitNode) String() string      { return "this." + n.Name }
func (*ThisFieldInitNode) paramNode()            {}

// Directives is the `import "path";` preamble collected before a
// file's top-level declarations.
type Directives struct {
	Position lexer.Position
	Imports  []string
}

func (n *Directives) Pos() lexer.Position { return n.Position }
func (n *Directives) String() string      { return "Directives" }

// FunctionDecl is a top-level function or a class method (Node kind
// FunDef): `ReturnType Name(Params) Body`.
type FunctionDecl struct {
	Position   lexer.Position
	ReturnType string
	Name       string
	Params     []ParamNode
	Body       *BlockStatement
	SourceFile string
}

func (n *FunctionDecl) Pos() lexer.Position { return n.Position }
func (n *FunctionDecl) String() string      { return "fun " + n.Name }
func (*FunctionDecl) declNode()             {}

// TopVarDecl is a top-level variable or constant declaration,
// evaluated lazily on first reference (Node kinds TopVarLazy and
// ConstTopLazy, distinguished here by Const).
type TopVarDecl struct {
	Position   lexer.Position
	TypeName   string
	Name       string
	Value      Expression
	Const      bool
	SourceFile string
}

func (n *TopVarDecl) Pos() lexer.Position { return n.Position }
func (n *TopVarDecl) String() string      { return n.TypeName + " " + n.Name }
func (*TopVarDecl) declNode()             {}

// File is the parse result for one source file: its import preamble,
// its top-level function/variable declarations, and its class
// declarations. Classes are kept separate from Decls because they are
// registered into the class registry rather than appended to
// State.globals.
type File struct {
	Path       string
	Directives *Directives
	Decls      []Decl
	Classes    []*ClassDecl
}
