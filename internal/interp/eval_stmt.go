package interp

import (
	"github.com/cwbudde/redart/internal/ast"
	"github.com/cwbudde/redart/internal/object"
)

// evalStatement dispatches one statement. The return value is Null
// unless evaluation produced (or propagated) a Return, in which case
// the caller must stop executing the enclosing block/loop and bubble
// the Return further up.
func evalStatement(stmt ast.Statement, state *State, isTailOfCall bool) object.Object {
	switch n := stmt.(type) {
	case *ast.BlockStatement:
		return evalBlock(n, state)
	case *ast.EmptyStatement:
		return object.Null()
	case *ast.VarStatement:
		return evalVarStatement(n, state)
	case *ast.AssignStatement:
		return evalAssignStatement(n, state)
	case *ast.ExpressionStatement:
		Eval(n.Expr, state, false)
		return object.Null()
	case *ast.Conditional:
		return evalConditional(n, state)
	case *ast.WhileStatement:
		return evalWhile(n, state)
	case *ast.DoWhileStatement:
		return evalDoWhile(n, state)
	case *ast.ForStatement:
		return evalFor(n, state)
	case *ast.ReturnStatement:
		return evalReturn(n, state)
	}
	panic("interp: unhandled statement node")
}

// evalBlock runs every statement of block in a fresh lex-frame,
// stopping early and propagating a Return. At call_level 1 (directly
// inside main, including its nested loops and conditionals — there is
// no outer call beneath it to return to), the garbage collector runs
// after every statement, matching the specification's "after every
// top-level statement" policy; nested calls instead collect once on
// return (see callFunction).
func evalBlock(block *ast.BlockStatement, state *State) object.Object {
	state.Stack.PushLex()
	defer state.Stack.PopLex()

	topLevel := state.Stack.CallLevel() == 1
	for _, stmt := range block.Statements {
		result := evalStatement(stmt, state, false)
		if topLevel {
			state.collectGarbage()
		}
		if result.Kind == object.ReturnKind {
			return result
		}
	}
	return object.Null()
}

func evalVarStatement(n *ast.VarStatement, state *State) object.Object {
	val := object.Null()
	if n.Value != nil {
		val = Eval(n.Value, state, false)
	}
	state.Stack.Define(n.Name, val)
	return object.Null()
}

func evalAssignStatement(n *ast.AssignStatement, state *State) object.Object {
	val := Eval(n.Value, state, false)
	assignTo(state, n.Target, val)
	return object.Null()
}

// assignTo writes val to an assignable expression: a bare name (a
// local binding, falling back to the current instance's field), a
// `o.field` access, or a `list[i]` index.
func assignTo(state *State, target ast.Expression, val object.Object) {
	switch t := target.(type) {
	case *ast.Identifier:
		if state.Stack.Update(t.Name, val) {
			return
		}
		if this, ok := state.Objs.This(); ok {
			if inst, ok := state.Objs.GetInstance(this); ok {
				if _, exists := inst.Fields[t.Name]; exists {
					inst.Fields[t.Name] = val
					return
				}
			}
		}
		state.fatal(t.Position, "Assignment to undeclared name: "+t.Name)
	case *ast.AccessExpression:
		obj := Eval(t.Object, state, false)
		if obj.Kind != object.ReferenceKind {
			state.fatal(t.Position, "Field assignment on a non-reference value.")
		}
		inst, ok := state.Objs.GetInstance(obj.Ref)
		if !ok {
			state.fatal(t.Position, "Field assignment on a reference with no fields: ."+t.Field)
		}
		inst.Fields[t.Field] = val
	case *ast.IndexExpression:
		coll := Eval(t.Collection, state, false)
		idx := Eval(t.Index, state, false)
		if coll.Kind != object.ReferenceKind || idx.Kind != object.IntKind {
			state.fatal(t.Position, "Index assignment requires a List receiver and an Int index.")
		}
		list, ok := state.Objs.GetList(coll.Ref)
		if !ok {
			state.fatal(t.Position, "Index assignment on a non-List reference.")
		}
		i := int(idx.Int)
		if i < 0 || i >= len(list.Elements) {
			state.fatal(t.Position, "Index out of bounds.")
		}
		list.Elements[i] = val
	default:
		state.fatal(target.Pos(), "Invalid assignment target.")
	}
}

func evalConditional(n *ast.Conditional, state *State) object.Object {
	for _, branch := range n.Branches {
		if branch.Cond == nil {
			return evalBlock(branch.Body, state)
		}
		cond := Eval(branch.Cond, state, false)
		if cond.Kind != object.BoolKind {
			state.fatal(n.Position, "Condition must be a bool.")
		}
		if cond.Bool {
			return evalBlock(branch.Body, state)
		}
	}
	return object.Null()
}

func evalWhile(n *ast.WhileStatement, state *State) object.Object {
	for {
		cond := Eval(n.Cond, state, false)
		if cond.Kind != object.BoolKind {
			state.fatal(n.Position, "Condition must be a bool.")
		}
		if !cond.Bool {
			return object.Null()
		}
		result := evalBlock(n.Body, state)
		if result.Kind == object.ReturnKind {
			return result
		}
	}
}

func evalDoWhile(n *ast.DoWhileStatement, state *State) object.Object {
	for {
		result := evalBlock(n.Body, state)
		if result.Kind == object.ReturnKind {
			return result
		}
		cond := Eval(n.Cond, state, false)
		if cond.Kind != object.BoolKind {
			state.fatal(n.Position, "Condition must be a bool.")
		}
		if !cond.Bool {
			return object.Null()
		}
	}
}

func evalFor(n *ast.ForStatement, state *State) object.Object {
	state.Stack.PushLex()
	defer state.Stack.PopLex()

	if n.Init != nil {
		evalStatement(n.Init, state, false)
	}
	for {
		if n.Cond != nil {
			cond := Eval(n.Cond, state, false)
			if cond.Kind != object.BoolKind {
				state.fatal(n.Position, "Condition must be a bool.")
			}
			if !cond.Bool {
				return object.Null()
			}
		}
		result := evalBlock(n.Body, state)
		if result.Kind == object.ReturnKind {
			return result
		}
		if n.Post != nil {
			evalStatement(n.Post, state, false)
		}
	}
}

func evalReturn(n *ast.ReturnStatement, state *State) object.Object {
	val := object.Null()
	if n.Value != nil {
		val = Eval(n.Value, state, true)
	}
	return object.Return(val)
}
