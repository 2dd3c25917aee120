package interp

import (
	"math"
	"strconv"

	"github.com/cwbudde/redart/internal/lexer"
	"github.com/cwbudde/redart/internal/object"
)

// callMathBuiltin dispatches a `math.name(args)` call. Every numeric
// function accepts Int or Double and returns Double; nextInt(n) draws
// uniform in [0, n); the other two generators take no arguments.
func callMathBuiltin(state *State, pos lexer.Position, name string, args []object.Object) object.Object {
	unary := func(f func(float64) float64) object.Object {
		x := requireOneNumeric(state, pos, name, args)
		return object.Double(f(x))
	}

	switch name {
	case "acos":
		return unary(math.Acos)
	case "asin":
		return unary(math.Asin)
	case "atan":
		return unary(math.Atan)
	case "cos":
		return unary(math.Cos)
	case "exp":
		return unary(math.Exp)
	case "log":
		return unary(math.Log)
	case "sin":
		return unary(math.Sin)
	case "sqrt":
		return unary(math.Sqrt)
	case "tan":
		return unary(math.Tan)
	case "atan2":
		a, b := requireTwoNumeric(state, pos, name, args)
		return object.Double(math.Atan2(a, b))
	case "pow":
		a, b := requireTwoNumeric(state, pos, name, args)
		return object.Double(math.Pow(a, b))
	case "max":
		a, b := requireTwoNumeric(state, pos, name, args)
		return object.Double(math.Max(a, b))
	case "min":
		a, b := requireTwoNumeric(state, pos, name, args)
		return object.Double(math.Min(a, b))
	case "nextBool":
		requireArgCount(state, pos, name, args, 0)
		return object.Bool(state.rng.Intn(2) == 1)
	case "nextDouble":
		requireArgCount(state, pos, name, args, 0)
		return object.Double(state.rng.Float64())
	case "nextInt":
		requireArgCount(state, pos, name, args, 1)
		if args[0].Kind != object.IntKind {
			state.fatal(pos, "math.nextInt(n) takes an Int argument.")
		}
		return object.Int(int64(state.rng.Intn(int(args[0].Int))))
	}
	state.fatal(pos, "Unknown math function: "+name)
	panic("unreachable")
}

func requireArgCount(state *State, pos lexer.Position, name string, args []object.Object, n int) {
	if len(args) != n {
		state.fatal(pos, "math."+name+"() takes exactly "+strconv.Itoa(n)+" argument(s).")
	}
}

func requireOneNumeric(state *State, pos lexer.Position, name string, args []object.Object) float64 {
	if len(args) != 1 || !args[0].IsNumeric() {
		state.fatal(pos, "math."+name+"() takes a single numeric argument.")
	}
	return args[0].AsFloat64()
}

func requireTwoNumeric(state *State, pos lexer.Position, name string, args []object.Object) (float64, float64) {
	if len(args) != 2 || !args[0].IsNumeric() || !args[1].IsNumeric() {
		state.fatal(pos, "math."+name+"() takes two numeric arguments.")
	}
	return args[0].AsFloat64(), args[1].AsFloat64()
}
