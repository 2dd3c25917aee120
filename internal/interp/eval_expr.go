package interp

import (
	"strings"

	"github.com/cwbudde/redart/internal/ast"
	"github.com/cwbudde/redart/internal/errors"
	"github.com/cwbudde/redart/internal/lexer"
	"github.com/cwbudde/redart/internal/object"
	"github.com/cwbudde/redart/internal/parser"
)

func (s *State) fatal(pos lexer.Position, msg string) {
	errors.Fatal(s.FilePath, pos.Line, pos.Column, msg)
}

func evalExpression(expr ast.Expression, state *State) object.Object {
	switch n := expr.(type) {
	case *ast.IntegerLiteral:
		return object.Int(n.Value)
	case *ast.FloatLiteral:
		return object.Double(n.Value)
	case *ast.BooleanLiteral:
		return object.Bool(n.Value)
	case *ast.NullLiteral:
		return object.Null()
	case *ast.StringLiteral:
		return evalStringLiteral(n, state)
	case *ast.ThisExpression:
		return evalThis(n, state)
	case *ast.SuperExpression:
		state.fatal(n.Position, "'super' is not supported: classes do not declare a superclass.")
	case *ast.Identifier:
		return evalIdentifier(n, state)
	case *ast.ListLiteral:
		return evalListLiteral(n, state)
	case *ast.BinaryExpression:
		return evalBinaryExpression(n, state)
	case *ast.UnaryExpression:
		return evalUnaryExpression(n, state)
	case *ast.IncDecExpression:
		return evalIncDecExpression(n, state)
	case *ast.CallExpression:
		return evalCallExpression(n, state)
	case *ast.MethodCallExpression:
		return evalMethodCallExpression(n, state)
	case *ast.AccessExpression:
		return evalAccessExpression(n, state)
	case *ast.IndexExpression:
		return evalIndexExpression(n, state)
	}
	panic("interp: unhandled expression node")
}

// evalStringLiteral renders a literal's text, substituting each
// "${...}" site's parsed payload, evaluated in the current scope, in
// source order.
func evalStringLiteral(n *ast.StringLiteral, state *State) object.Object {
	if len(n.Interps) == 0 {
		return object.Str(n.Value)
	}
	parts := lexer.SplitInterpolated(n.Value)
	var sb strings.Builder
	for i, part := range parts {
		sb.WriteString(part)
		if i < len(n.Interps) {
			payload := parser.ParseExpressionTokens(n.Interps[i], state.FilePath)
			val := Eval(payload, state, false)
			sb.WriteString(DisplayForm(val, state))
		}
	}
	return object.Str(sb.String())
}

func evalThis(n *ast.ThisExpression, state *State) object.Object {
	this, ok := state.Objs.This()
	if !ok {
		state.fatal(n.Position, "'this' has no meaning outside a constructor or method.")
	}
	return object.Ref(this)
}

// evalIdentifier resolves a bare name: current lex-stack first, then
// an instance field when a receiver is set, then the current file's
// looktable (a lazily evaluated top-level variable or constant; a
// function or constructor name does not resolve to a value here).
func evalIdentifier(n *ast.Identifier, state *State) object.Object {
	if v, ok := state.Stack.Get(n.Name); ok {
		return v
	}
	if this, ok := state.Objs.This(); ok {
		if inst, ok := state.Objs.GetInstance(this); ok {
			if v, ok := inst.Fields[n.Name]; ok {
				return v
			}
		}
	}
	if v, ok := state.lookupGlobal(n.Name, state.FilePath); ok {
		return v
	}
	state.fatal(n.Position, "Undefined name: "+n.Name)
	panic("unreachable")
}

func evalListLiteral(n *ast.ListLiteral, state *State) object.Object {
	list := state.Objs.RegisterList()
	for _, el := range n.Elements {
		list.Add(Eval(el, state, false))
	}
	return object.Ref(list.ID)
}

func evalBinaryExpression(n *ast.BinaryExpression, state *State) object.Object {
	switch n.Operator {
	case "||":
		left := Eval(n.Left, state, false)
		if !requireBool(state, n.Position, left) {
			return left
		}
		if left.Bool {
			return object.Bool(true)
		}
		right := Eval(n.Right, state, false)
		requireBool(state, n.Position, right)
		return object.Bool(right.Bool)
	case "&&":
		left := Eval(n.Left, state, false)
		if !requireBool(state, n.Position, left) {
			return left
		}
		if !left.Bool {
			return object.Bool(false)
		}
		right := Eval(n.Right, state, false)
		requireBool(state, n.Position, right)
		return object.Bool(right.Bool)
	}

	left := Eval(n.Left, state, false)
	right := Eval(n.Right, state, false)
	return evalBinaryOp(state, n.Position, n.Operator, left, right)
}

func requireBool(state *State, pos lexer.Position, v object.Object) bool {
	if v.Kind != object.BoolKind {
		state.fatal(pos, "Expected a bool operand for '||'/'&&'.")
	}
	return true
}

func evalBinaryOp(state *State, pos lexer.Position, op string, left, right object.Object) object.Object {
	switch op {
	case "+":
		if left.Kind == object.StringKind && right.Kind == object.StringKind {
			return object.Str(left.Str + right.Str)
		}
		return numericOp(state, pos, op, left, right)
	case "-", "*":
		return numericOp(state, pos, op, left, right)
	case "/":
		return numericDivide(state, pos, left, right)
	case "<", ">", "<=", ">=":
		return numericCompare(state, pos, op, left, right)
	case "==":
		return object.Bool(valuesEqual(left, right))
	case "|", "^", "&":
		return bitwiseOp(state, pos, op, left, right)
	}
	state.fatal(pos, "Unknown binary operator: "+op)
	panic("unreachable")
}

func numericOp(state *State, pos lexer.Position, op string, left, right object.Object) object.Object {
	if !left.IsNumeric() || !right.IsNumeric() {
		state.fatal(pos, "Operator '"+op+"' requires numeric operands.")
	}
	if left.Kind == object.IntKind && right.Kind == object.IntKind {
		switch op {
		case "+":
			return object.Int(left.Int + right.Int)
		case "-":
			return object.Int(left.Int - right.Int)
		case "*":
			return object.Int(left.Int * right.Int)
		}
	}
	l, r := left.AsFloat64(), right.AsFloat64()
	switch op {
	case "+":
		return object.Double(l + r)
	case "-":
		return object.Double(l - r)
	case "*":
		return object.Double(l * r)
	}
	panic("unreachable")
}

// numericDivide always yields a Double, even for two Ints.
func numericDivide(state *State, pos lexer.Position, left, right object.Object) object.Object {
	if !left.IsNumeric() || !right.IsNumeric() {
		state.fatal(pos, "Operator '/' requires numeric operands.")
	}
	return object.Double(left.AsFloat64() / right.AsFloat64())
}

func numericCompare(state *State, pos lexer.Position, op string, left, right object.Object) object.Object {
	if !left.IsNumeric() || !right.IsNumeric() {
		state.fatal(pos, "Operator '"+op+"' requires numeric operands.")
	}
	l, r := left.AsFloat64(), right.AsFloat64()
	switch op {
	case "<":
		return object.Bool(l < r)
	case ">":
		return object.Bool(l > r)
	case "<=":
		return object.Bool(l <= r)
	case ">=":
		return object.Bool(l >= r)
	}
	panic("unreachable")
}

func bitwiseOp(state *State, pos lexer.Position, op string, left, right object.Object) object.Object {
	if left.Kind != object.IntKind || right.Kind != object.IntKind {
		state.fatal(pos, "Operator '"+op+"' requires integer operands.")
	}
	switch op {
	case "|":
		return object.Int(left.Int | right.Int)
	case "^":
		return object.Int(left.Int ^ right.Int)
	case "&":
		return object.Int(left.Int & right.Int)
	}
	panic("unreachable")
}

// valuesEqual implements "==": numeric after promotion, exact match
// for String/Bool, Null equals only Null, and Reference equality is
// identity over RefKey.
func valuesEqual(left, right object.Object) bool {
	if left.IsNumeric() && right.IsNumeric() {
		if left.Kind == object.IntKind && right.Kind == object.IntKind {
			return left.Int == right.Int
		}
		return left.AsFloat64() == right.AsFloat64()
	}
	if left.Kind != right.Kind {
		return false
	}
	switch left.Kind {
	case object.StringKind:
		return left.Str == right.Str
	case object.BoolKind:
		return left.Bool == right.Bool
	case object.NullKind:
		return true
	case object.ReferenceKind:
		return left.Ref == right.Ref
	}
	return false
}

func evalUnaryExpression(n *ast.UnaryExpression, state *State) object.Object {
	v := Eval(n.Operand, state, false)
	switch n.Operator {
	case "-":
		if !v.IsNumeric() {
			state.fatal(n.Position, "Unary '-' requires a numeric operand.")
		}
		if v.Kind == object.IntKind {
			return object.Int(-v.Int)
		}
		return object.Double(-v.Double)
	case "!":
		if v.Kind != object.BoolKind {
			state.fatal(n.Position, "Unary '!' requires a bool operand.")
		}
		return object.Bool(!v.Bool)
	}
	panic("unreachable")
}

// evalIncDecExpression evaluates a `++`/`--` applied to an assignable
// target, returning the pre- or post-update value per Prefix.
func evalIncDecExpression(n *ast.IncDecExpression, state *State) object.Object {
	old := Eval(n.Target, state, false)
	if !old.IsNumeric() {
		state.fatal(n.Position, "'++'/'--' require a numeric operand.")
	}
	delta := int64(1)
	if n.Operator == "--" {
		delta = -1
	}
	var updated object.Object
	if old.Kind == object.IntKind {
		updated = object.Int(old.Int + delta)
	} else {
		updated = object.Double(old.Double + float64(delta))
	}
	assignTo(state, n.Target, updated)
	if n.Prefix {
		return updated
	}
	return old
}
