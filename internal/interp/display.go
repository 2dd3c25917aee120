package interp

import "github.com/cwbudde/redart/internal/object"

// DisplayForm renders v the way `print`, string interpolation, and
// List formatting all do: a Reference whose class defines `toString`
// is dispatched through that method first; a List Reference renders
// its elements (recursing through DisplayForm so nested
// lists/instances still get their own toString); everything else
// falls back to Object.Display.
func DisplayForm(v object.Object, state *State) string {
	if v.Kind != object.ReferenceKind {
		return v.Display()
	}

	if list, ok := state.Objs.GetList(v.Ref); ok {
		return list.Format(func(e object.Object) string { return DisplayForm(e, state) })
	}

	inst, ok := state.Objs.GetInstance(v.Ref)
	if !ok {
		return v.Display()
	}
	class, ok := state.Objs.GetClass(inst.ClassName)
	if !ok {
		return v.Display()
	}
	method, ok := class.GetMethod("toString")
	if !ok {
		return v.Display()
	}

	prevThis, hadThis := state.Objs.This()
	state.Objs.SetThis(inst.ID)
	result := callFunction(state, method.Body.Pos(), method, nil)
	if hadThis {
		state.Objs.SetThis(prevThis)
	} else {
		state.Objs.ClearThis()
	}

	if result.Kind != object.StringKind {
		return result.Display()
	}
	return result.Str
}
