package interp

import (
	"fmt"

	"github.com/cwbudde/redart/internal/ast"
	"github.com/cwbudde/redart/internal/object"
)

// Eval is the single entry point for evaluating any AST node: an
// expression yields the Object it denotes; a statement yields Null,
// unless it is (or contains, via propagation) a return, in which case
// it yields a Return-kind Object carrying the returned value.
//
// isTailOfCall marks that node is the expression a return statement
// is handing back to its caller. The tree-walking evaluator here
// always fully materializes a call's result regardless, so the flag
// is only a hook — it exists because the specification's eval
// signature names it, for a future backend that wants to recognise
// and specialise tail calls.
func Eval(node ast.Node, state *State, isTailOfCall bool) object.Object {
	switch n := node.(type) {
	case ast.Expression:
		return evalExpression(n, state)
	case ast.Statement:
		return evalStatement(n, state, isTailOfCall)
	default:
		panic(fmt.Sprintf("interp: node %T is neither Expression nor Statement", node))
	}
}
