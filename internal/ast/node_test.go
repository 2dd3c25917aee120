package ast

import (
	"testing"

	"github.com/cwbudde/redart/internal/lexer"
)

func TestConditionalBranchOrdering(t *testing.T) {
	cond := &Conditional{
		Branches: []*IfBranch{
			{Cond: &BooleanLiteral{Value: true}, Body: &BlockStatement{}},
			{Cond: &BooleanLiteral{Value: false}, Body: &BlockStatement{}},
			{Cond: nil, Body: &BlockStatement{}},
		},
	}
	if cond.Branches[0].Cond == nil {
		t.Fatal("first branch (If) must carry a condition")
	}
	if cond.Branches[len(cond.Branches)-1].Cond != nil {
		t.Fatal("trailing Else branch must have a nil condition")
	}
}

func TestFunctionDeclImplementsDecl(t *testing.T) {
	var d Decl = &FunctionDecl{Name: "main", Body: &BlockStatement{}}
	if d.String() != "fun main" {
		t.Fatalf("String() = %q", d.String())
	}
}

func TestStringLiteralCarriesRawInterpolationTokens(t *testing.T) {
	sl := &StringLiteral{
		Value:   "a=x!",
		Interps: [][]lexer.Token{{{Type: lexer.IDENT, Literal: "a"}}},
	}
	if len(sl.Interps) != 1 || sl.Interps[0][0].Literal != "a" {
		t.Fatalf("unexpected Interps: %v", sl.Interps)
	}
}
