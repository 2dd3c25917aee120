package objsys

import (
	"github.com/cwbudde/redart/internal/ast"
	"github.com/cwbudde/redart/internal/object"
)

// FieldSpec is one (type, name, init-expr) entry of a Class's declared
// field list. Init is nil when the field has no initializer.
type FieldSpec struct {
	TypeName string
	Name     string
	Init     ast.Expression
}

// Class is the runtime descriptor for one `class Name { ... }`
// declaration: its ordered field list (order matters for
// deterministic initializer evaluation) and its method table.
// Constructors are stored in Methods under the class's own name, the
// same table methods live in — a class has exactly one name per
// member, so there is no collision.
type Class struct {
	Name    string
	Fields  []FieldSpec
	Methods map[string]object.Object
}

// NewClass returns an empty Class ready to receive fields and methods.
func NewClass(name string) *Class {
	return &Class{Name: name, Methods: make(map[string]object.Object)}
}

func (c *Class) AddField(typeName, name string, init ast.Expression) {
	c.Fields = append(c.Fields, FieldSpec{TypeName: typeName, Name: name, Init: init})
}

func (c *Class) AddMethod(name string, fn object.Object) {
	c.Methods[name] = fn
}

func (c *Class) GetMethod(name string) (object.Object, bool) {
	m, ok := c.Methods[name]
	return m, ok
}

// Instantiate allocates a fresh, field-empty Instance of c in objs.
// Kept as its own step (rather than inlining objs.RegisterInstance at
// every call site) since class-side construction will likely grow
// more bookkeeping of its own (e.g. a constructor-running hook) as
// the language grows.
func (c *Class) Instantiate(objs *ObjSys) *Instance {
	return objs.RegisterInstance(c.Name)
}

// Constructor returns the class's constructor object, stored under
// its own name, if one was declared.
func (c *Class) Constructor() (object.Object, bool) {
	m, ok := c.Methods[c.Name]
	if !ok || m.Kind != object.ConstructorKind {
		return object.Object{}, false
	}
	return m, true
}
