// Package object defines the runtime value representation the
// evaluator produces and consumes.
package object

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/redart/internal/ast"
)

// Kind tags the variant an Object holds.
type Kind int

const (
	IntKind Kind = iota
	DoubleKind
	BoolKind
	StringKind
	FunctionKind
	ConstructorKind
	ReferenceKind
	NullKind
	ReturnKind
)

// RefKey is an opaque key into an ObjSys arena.
type RefKey uint64

// Param describes one parameter of a Function or Constructor: its
// declared name, and whether it is a `this.field` field-init
// parameter (Type is empty in that case — the field's own declared
// type governs).
type Param struct {
	Type      string
	Name      string
	FieldInit bool
}

// Object is the tagged runtime value variant: Int, Double, Bool,
// String, Function, Constructor, Reference, Null, or Return. Only the
// fields relevant to Kind are meaningful; the rest are zero.
type Object struct {
	Kind Kind

	Int    int64
	Double float64
	Bool   bool
	Str    string

	// Function and Constructor
	Name       string
	SourceFile string
	Params     []Param
	Body       *ast.BlockStatement
	Inits      []*ast.Initializer // Constructor only

	Ref RefKey // Reference

	Return *Object // Return: the boxed value being propagated
}

func Int(v int64) Object      { return Object{Kind: IntKind, Int: v} }
func Double(v float64) Object { return Object{Kind: DoubleKind, Double: v} }
func Bool(v bool) Object      { return Object{Kind: BoolKind, Bool: v} }
func Str(v string) Object     { return Object{Kind: StringKind, Str: v} }
func Null() Object             { return Object{Kind: NullKind} }
func Ref(k RefKey) Object      { return Object{Kind: ReferenceKind, Ref: k} }
func Return(v Object) Object   { return Object{Kind: ReturnKind, Return: &v} }

func Function(name, sourceFile string, params []Param, body *ast.BlockStatement) Object {
	return Object{Kind: FunctionKind, Name: name, SourceFile: sourceFile, Params: params, Body: body}
}

func Constructor(name, sourceFile string, params []Param, inits []*ast.Initializer, body *ast.BlockStatement) Object {
	return Object{Kind: ConstructorKind, Name: name, SourceFile: sourceFile, Params: params, Inits: inits, Body: body}
}

// IsTruthy reports whether o counts as true for a condition. Only
// Bool(true) is truthy; every other value, including Int(0) and
// Null, is not.
func (o Object) IsTruthy() bool {
	return o.Kind == BoolKind && o.Bool
}

// IsNumeric reports whether o is an Int or a Double.
func (o Object) IsNumeric() bool {
	return o.Kind == IntKind || o.Kind == DoubleKind
}

// AsFloat64 converts an Int or Double to float64. Callers must check
// IsNumeric first.
func (o Object) AsFloat64() float64 {
	if o.Kind == IntKind {
		return float64(o.Int)
	}
	return o.Double
}

// Display renders o's display form per the specification's display
// rules. It does not perform toString dispatch on References — that
// requires evaluator access to the class registry and is done by the
// interpreter package before falling back to Display.
func (o Object) Display() string {
	switch o.Kind {
	case IntKind:
		return strconv.FormatInt(o.Int, 10)
	case DoubleKind:
		return strconv.FormatFloat(o.Double, 'g', -1, 64)
	case BoolKind:
		if o.Bool {
			return "true"
		}
		return "false"
	case StringKind:
		return o.Str
	case NullKind:
		return "null"
	case ReferenceKind:
		return fmt.Sprintf("Reference<%d>", o.Ref)
	default:
		return fmt.Sprintf("<%v>", o.Kind)
	}
}
