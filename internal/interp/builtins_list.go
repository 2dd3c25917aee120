package interp

import (
	"github.com/cwbudde/redart/internal/lexer"
	"github.com/cwbudde/redart/internal/object"
	"github.com/cwbudde/redart/internal/objsys"
)

// callListBuiltin dispatches a method call against a List receiver.
func callListBuiltin(state *State, pos lexer.Position, list *objsys.InternalList, name string, args []object.Object) object.Object {
	switch name {
	case "add":
		if len(args) != 1 {
			state.fatal(pos, "List.add() takes exactly one argument.")
		}
		list.Add(args[0])
		return object.Null()
	case "addAll":
		if len(args) != 1 || args[0].Kind != object.ReferenceKind {
			state.fatal(pos, "List.addAll() takes a single List argument.")
		}
		other, ok := state.Objs.GetList(args[0].Ref)
		if !ok {
			state.fatal(pos, "List.addAll() argument is not a List.")
		}
		list.AddAll(other.Elements)
		return object.Null()
	case "clear":
		list.Elements = nil
		return object.Null()
	case "insert":
		if len(args) != 2 || args[0].Kind != object.IntKind {
			state.fatal(pos, "List.insert(i, v) takes an Int index and a value.")
		}
		if !list.Insert(int(args[0].Int), args[1]) {
			state.fatal(pos, "Index out of bounds.")
		}
		return object.Null()
	case "removeAt":
		if len(args) != 1 || args[0].Kind != object.IntKind {
			state.fatal(pos, "List.removeAt(i) takes an Int index.")
		}
		if !list.RemoveAt(int(args[0].Int)) {
			state.fatal(pos, "Index out of bounds.")
		}
		return object.Null()
	case "removeLast":
		if !list.RemoveLast() {
			state.fatal(pos, "List is empty.")
		}
		return object.Null()
	case "removeRange":
		if len(args) != 2 || args[0].Kind != object.IntKind || args[1].Kind != object.IntKind {
			state.fatal(pos, "List.removeRange(lo, hi) takes two Int arguments.")
		}
		if !list.RemoveRange(int(args[0].Int), int(args[1].Int)) {
			state.fatal(pos, "Index out of bounds.")
		}
		return object.Null()
	case "shuffle":
		list.Shuffle(func(n int) int { return state.rng.Intn(n) })
		return object.Null()
	case "toString":
		return object.Str(list.Format(func(e object.Object) string { return DisplayForm(e, state) }))
	}
	state.fatal(pos, "Unknown List method: "+name)
	panic("unreachable")
}
