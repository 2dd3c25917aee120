package interp

import (
	"github.com/cwbudde/redart/internal/lexer"
	"github.com/cwbudde/redart/internal/object"
	"github.com/cwbudde/redart/internal/objsys"
)

// callFileBuiltin dispatches a method call against a File receiver.
func callFileBuiltin(state *State, pos lexer.Position, file *objsys.InternalFile, name string, args []object.Object) object.Object {
	switch name {
	case "readAsString":
		if len(args) != 0 {
			state.fatal(pos, "File.readAsString() takes no arguments.")
		}
		text, err := file.ReadAsString()
		if err != nil {
			state.fatal(pos, "Cannot read file: "+err.Error())
		}
		return object.Str(text)
	}
	state.fatal(pos, "Unknown File method: "+name)
	panic("unreachable")
}
