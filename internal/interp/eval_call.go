package interp

import (
	"github.com/cwbudde/redart/internal/ast"
	"github.com/cwbudde/redart/internal/lexer"
	"github.com/cwbudde/redart/internal/object"
	"github.com/cwbudde/redart/internal/objsys"
)

func evalArgs(exprs []ast.Expression, state *State) []object.Object {
	args := make([]object.Object, len(exprs))
	for i, e := range exprs {
		args[i] = Eval(e, state, false)
	}
	return args
}

// evalCallExpression resolves a bare `name(args)` call: a builtin
// function, a user-defined top-level function, or — when name
// resolves to a Constructor — a `new`-style instantiation.
func evalCallExpression(n *ast.CallExpression, state *State) object.Object {
	if fn, ok := builtinFunctions[n.Name]; ok {
		return fn(state, n.Position, evalArgs(n.Args, state))
	}

	look, ok := state.LookTables[state.FilePath]
	if !ok {
		state.fatal(n.Position, "Unknown function: "+n.Name)
	}
	idx, ok := look[n.Name]
	if !ok {
		state.fatal(n.Position, "Unknown function: "+n.Name)
	}

	switch decl := state.Globals[idx].(type) {
	case *ast.FunctionDecl:
		args := evalArgs(n.Args, state)
		fnObj := object.Function(decl.Name, decl.SourceFile, toObjectParams(decl.Params), decl.Body)
		return callFunction(state, n.Position, fnObj, args)
	case *ast.Constructor:
		args := evalArgs(n.Args, state)
		return instantiate(state, n.Position, decl.Name, args)
	}
	state.fatal(n.Position, "'"+n.Name+"' is not callable.")
	panic("unreachable")
}

// evalMethodCallExpression resolves `receiver.name(args)`: the
// receiver must evaluate to a Reference, and the call is dispatched
// against whichever arena (list, file, or instance) that RefKey
// belongs to.
func evalMethodCallExpression(n *ast.MethodCallExpression, state *State) object.Object {
	// `math` is a namespace, not a value: it never resolves through
	// evalIdentifier, so it is recognised here before the receiver is
	// evaluated rather than bound to a variable.
	if id, ok := n.Receiver.(*ast.Identifier); ok && id.Name == "math" {
		return callMathBuiltin(state, n.Position, n.Name, evalArgs(n.Args, state))
	}

	receiver := Eval(n.Receiver, state, false)
	args := evalArgs(n.Args, state)

	if receiver.Kind != object.ReferenceKind {
		state.fatal(n.Position, "Method '"+n.Name+"' called on a non-reference value.")
	}

	if list, ok := state.Objs.GetList(receiver.Ref); ok {
		return callListBuiltin(state, n.Position, list, n.Name, args)
	}
	if file, ok := state.Objs.GetFile(receiver.Ref); ok {
		return callFileBuiltin(state, n.Position, file, n.Name, args)
	}
	if inst, ok := state.Objs.GetInstance(receiver.Ref); ok {
		return callInstanceMethod(state, n.Position, inst, n.Name, args)
	}
	state.fatal(n.Position, "Method call on an unknown or already-collected reference.")
	panic("unreachable")
}

func callInstanceMethod(state *State, pos lexer.Position, inst *objsys.Instance, name string, args []object.Object) object.Object {
	class, ok := state.Objs.GetClass(inst.ClassName)
	if !ok {
		state.fatal(pos, "Unknown class: "+inst.ClassName)
	}
	method, ok := class.GetMethod(name)
	if !ok {
		state.fatal(pos, "Method not found: "+inst.ClassName+"."+name)
	}

	prevThis, hadThis := state.Objs.This()
	state.Objs.SetThis(inst.ID)
	result := callFunction(state, pos, method, args)
	if hadThis {
		state.Objs.SetThis(prevThis)
	} else {
		state.Objs.ClearThis()
	}
	return result
}

// callFunction pushes a new call-frame, binds params positionally,
// evaluates the body, pops the frame, and unwraps one Return layer —
// the call boundary spec.md 4.3 names. Garbage is collected once on
// return, matching the "after every function return" policy.
func callFunction(state *State, pos lexer.Position, fn object.Object, args []object.Object) object.Object {
	if len(args) != len(fn.Params) {
		state.fatal(pos, "Wrong number of arguments to "+fn.Name)
	}

	prevFile := state.FilePath
	state.FilePath = fn.SourceFile

	state.Stack.PushCall()
	for i, p := range fn.Params {
		state.Stack.Define(p.Name, args[i])
	}
	result := evalBlock(fn.Body, state)
	state.Stack.PopCall()

	state.FilePath = prevFile
	state.collectGarbage()

	if result.Kind == object.ReturnKind {
		return *result.Return
	}
	return object.Null()
}

// instantiate runs the seven-step construction sequence: allocate,
// mark constructing, run field initializers (each this-bound), bind
// parameters (this.field params write straight to the instance),
// run the initializer list, run the body, unmark constructing.
func instantiate(state *State, pos lexer.Position, className string, args []object.Object) object.Object {
	class, ok := state.Objs.GetClass(className)
	if !ok {
		state.fatal(pos, "Unknown class: "+className)
	}
	ctor, ok := class.Constructor()
	if !ok {
		state.fatal(pos, "Class has no constructor: "+className)
	}
	if len(args) != len(ctor.Params) {
		state.fatal(pos, "Wrong number of arguments to constructor "+className)
	}

	inst := class.Instantiate(state.Objs)
	state.tracef("new %s: ref=%d", class.Name, inst.ID)
	state.Constructing = append(state.Constructing, inst.ID)
	defer func() {
		state.Constructing = state.Constructing[:len(state.Constructing)-1]
		state.tracef("done %s: ref=%d", class.Name, inst.ID)
	}()

	prevThis, hadThis := state.Objs.This()
	state.Objs.SetThis(inst.ID)
	defer func() {
		if hadThis {
			state.Objs.SetThis(prevThis)
		} else {
			state.Objs.ClearThis()
		}
	}()

	prevFile := state.FilePath
	state.FilePath = ctor.SourceFile
	defer func() { state.FilePath = prevFile }()

	state.Stack.PushCall()
	defer state.Stack.PopCall()

	for _, f := range class.Fields {
		state.Stack.PushLex()
		if f.Init != nil {
			inst.Fields[f.Name] = Eval(f.Init, state, false)
		} else {
			inst.Fields[f.Name] = object.Null()
		}
		state.Stack.PopLex()
	}

	state.Stack.PushLex()
	for i, p := range ctor.Params {
		if p.FieldInit {
			inst.Fields[p.Name] = args[i]
		} else {
			state.Stack.Define(p.Name, args[i])
		}
	}
	for _, init := range ctor.Inits {
		inst.Fields[init.Field] = Eval(init.Value, state, false)
	}
	evalBlock(ctor.Body, state)
	state.Stack.PopLex()

	return object.Ref(inst.ID)
}

func toObjectParams(params []ast.ParamNode) []object.Param {
	out := make([]object.Param, len(params))
	for i, p := range params {
		switch pn := p.(type) {
		case *ast.TypedVarNode:
			out[i] = object.Param{Type: pn.TypeName, Name: pn.Name}
		case *ast.ThisFieldInitNode:
			out[i] = object.Param{Name: pn.Name, FieldInit: true}
		}
	}
	return out
}
