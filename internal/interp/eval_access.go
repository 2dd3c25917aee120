package interp

import (
	"github.com/cwbudde/redart/internal/ast"
	"github.com/cwbudde/redart/internal/object"
)

// evalAccessExpression reads `object.field` on an instance Reference.
func evalAccessExpression(n *ast.AccessExpression, state *State) object.Object {
	obj := Eval(n.Object, state, false)
	if obj.Kind != object.ReferenceKind {
		state.fatal(n.Position, "Field access on a non-reference value.")
	}
	inst, ok := state.Objs.GetInstance(obj.Ref)
	if !ok {
		state.fatal(n.Position, "Field access on a reference with no fields: ."+n.Field)
	}
	v, ok := inst.Fields[n.Field]
	if !ok {
		state.fatal(n.Position, "Unknown field: "+n.Field)
	}
	return v
}

// evalIndexExpression reads `collection[index]` on a List Reference.
func evalIndexExpression(n *ast.IndexExpression, state *State) object.Object {
	coll := Eval(n.Collection, state, false)
	idx := Eval(n.Index, state, false)
	if coll.Kind != object.ReferenceKind || idx.Kind != object.IntKind {
		state.fatal(n.Position, "Index access requires a List receiver and an Int index.")
	}
	list, ok := state.Objs.GetList(coll.Ref)
	if !ok {
		state.fatal(n.Position, "Index access on a non-List reference.")
	}
	i := int(idx.Int)
	if i < 0 || i >= len(list.Elements) {
		state.fatal(n.Position, "Index out of bounds.")
	}
	return list.Elements[i]
}
