package interp

import (
	"fmt"

	"github.com/cwbudde/redart/internal/lexer"
	"github.com/cwbudde/redart/internal/object"
)

// builtinFunctions are the bare-call (not dotted) builtins: `print`,
// `assert`, and the `File` constructor-shaped open call. They take
// priority over a user function of the same name, matching the
// specification's "dispatched by name when a call resolves to a
// recognised builtin" rule.
var builtinFunctions map[string]func(*State, lexer.Position, []object.Object) object.Object

// The table is filled in init rather than in its declaration: the
// builtins call back into the evaluator, which consults the table, and
// Go rejects that cycle in a package-level initializer.
func init() {
	builtinFunctions = map[string]func(*State, lexer.Position, []object.Object) object.Object{
		"print":  builtinPrint,
		"assert": builtinAssert,
		"File":   builtinOpenFile,
	}
}

func builtinPrint(state *State, pos lexer.Position, args []object.Object) object.Object {
	if len(args) != 1 {
		state.fatal(pos, "print() takes exactly one argument.")
	}
	fmt.Fprintln(state.Output, DisplayForm(args[0], state))
	return object.Null()
}

// builtinAssert aborts with a diagnostic when cond is not exactly
// Bool-true, matching the specification's "exactly" wording: a
// truthy-but-not-bool value is itself a failed assertion, not an
// error.
func builtinAssert(state *State, pos lexer.Position, args []object.Object) object.Object {
	if len(args) < 1 || len(args) > 2 {
		state.fatal(pos, "assert() takes one or two arguments.")
	}
	if args[0].Kind == object.BoolKind && args[0].Bool {
		return object.Null()
	}
	msg := "Assertion failed."
	if len(args) == 2 {
		msg = DisplayForm(args[1], state)
	}
	state.fatal(pos, msg)
	panic("unreachable")
}

func builtinOpenFile(state *State, pos lexer.Position, args []object.Object) object.Object {
	if len(args) != 1 || args[0].Kind != object.StringKind {
		state.fatal(pos, "File() takes a single String path argument.")
	}
	f, err := state.Objs.RegisterFile(args[0].Str)
	if err != nil {
		state.fatal(pos, "Cannot open file: "+err.Error())
	}
	return object.Ref(f.ID)
}
