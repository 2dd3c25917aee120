package parser

import (
	"testing"

	"github.com/cwbudde/redart/internal/ast"
	"github.com/cwbudde/redart/internal/errors"
)

func parseExpr(t *testing.T, src string) ast.Expression {
	t.Helper()
	file := ParseFile("void main(){ x = "+src+"; }", "test.dart")
	fn := file.Decls[0].(*ast.FunctionDecl)
	stmt := fn.Body.Statements[0].(*ast.AssignStatement)
	return stmt.Value
}

func TestLeftAssociativeSubtraction(t *testing.T) {
	expr := parseExpr(t, "a - b - c")
	outer, ok := expr.(*ast.BinaryExpression)
	if !ok || outer.Operator != "-" {
		t.Fatalf("got %#v", expr)
	}
	inner, ok := outer.Left.(*ast.BinaryExpression)
	if !ok || inner.Operator != "-" {
		t.Fatalf("expected (a-b)-c, left child was %#v", outer.Left)
	}
	if _, ok := inner.Left.(*ast.Identifier); !ok {
		t.Fatalf("innermost left should be identifier a, got %#v", inner.Left)
	}
	if r, ok := outer.Right.(*ast.Identifier); !ok || r.Name != "c" {
		t.Fatalf("outer right should be identifier c, got %#v", outer.Right)
	}
}

func TestPrecedenceMulBindsTighterThanAdd(t *testing.T) {
	expr := parseExpr(t, "1 + 2 * 3")
	add, ok := expr.(*ast.BinaryExpression)
	if !ok || add.Operator != "+" {
		t.Fatalf("got %#v", expr)
	}
	mul, ok := add.Right.(*ast.BinaryExpression)
	if !ok || mul.Operator != "*" {
		t.Fatalf("expected 1 + (2*3), right child was %#v", add.Right)
	}
}

func TestUnaryMinusRecursesIntoPrimary(t *testing.T) {
	expr := parseExpr(t, "-5")
	u, ok := expr.(*ast.UnaryExpression)
	if !ok || u.Operator != "-" {
		t.Fatalf("got %#v", expr)
	}
	if lit, ok := u.Operand.(*ast.IntegerLiteral); !ok || lit.Value != 5 {
		t.Fatalf("operand = %#v", u.Operand)
	}
}

func TestPrefixPlusIsRejected(t *testing.T) {
	errors.Debug = true
	defer func() {
		errors.Debug = false
		if recover() == nil {
			t.Fatal("expected a fatal error parsing a prefix '+'")
		}
	}()
	_ = parseExpr(t, "+5")
}

func TestListLiteral(t *testing.T) {
	expr := parseExpr(t, "[1, 2, 3]")
	list, ok := expr.(*ast.ListLiteral)
	if !ok || len(list.Elements) != 3 {
		t.Fatalf("got %#v", expr)
	}
}

func TestFunCallVsMethodCall(t *testing.T) {
	call := parseExpr(t, "foo(1)")
	if c, ok := call.(*ast.CallExpression); !ok || c.Name != "foo" || len(c.Args) != 1 {
		t.Fatalf("got %#v", call)
	}

	mcall := parseExpr(t, "a.bar(1, 2)")
	mc, ok := mcall.(*ast.MethodCallExpression)
	if !ok || mc.Name != "bar" || len(mc.Args) != 2 {
		t.Fatalf("got %#v", mcall)
	}
	if _, ok := mc.Receiver.(*ast.Identifier); !ok {
		t.Fatalf("receiver = %#v", mc.Receiver)
	}
}

func TestFieldAccessVsIndex(t *testing.T) {
	acc := parseExpr(t, "a.b")
	if ae, ok := acc.(*ast.AccessExpression); !ok || ae.Field != "b" {
		t.Fatalf("got %#v", acc)
	}

	idx := parseExpr(t, "a[0]")
	if ie, ok := idx.(*ast.IndexExpression); !ok {
		t.Fatalf("got %#v", ie)
	}
}

func TestPostfixIncrement(t *testing.T) {
	expr := parseExpr(t, "i++")
	inc, ok := expr.(*ast.IncDecExpression)
	if !ok || inc.Prefix || inc.Operator != "++" {
		t.Fatalf("got %#v", expr)
	}
}

func TestClassWithShorthandConstructor(t *testing.T) {
	src := `class C{ int n; C(this.n); int get(){ return n; } }`
	file := ParseFile(src, "test.dart")
	if len(file.Classes) != 1 {
		t.Fatalf("expected one class, got %d", len(file.Classes))
	}
	c := file.Classes[0]
	if len(c.Fields) != 1 || c.Fields[0].Name != "n" {
		t.Fatalf("fields = %#v", c.Fields)
	}
	if len(c.Constructors) != 1 {
		t.Fatalf("expected one constructor, got %d", len(c.Constructors))
	}
	ctor := c.Constructors[0]
	if len(ctor.Params) != 1 {
		t.Fatalf("ctor params = %#v", ctor.Params)
	}
	if _, ok := ctor.Params[0].(*ast.ThisFieldInitNode); !ok {
		t.Fatalf("expected this.field param, got %#v", ctor.Params[0])
	}
	if len(ctor.Body.Statements) != 0 {
		t.Fatalf("shorthand constructor should have an empty body, got %#v", ctor.Body.Statements)
	}
	if len(c.Methods) != 1 || c.Methods[0].Name != "get" {
		t.Fatalf("methods = %#v", c.Methods)
	}
}

func TestConditionalBranchShape(t *testing.T) {
	src := `void main(){ if (a) { x = 1; } else if (b) { x = 2; } else { x = 3; } }`
	file := ParseFile(src, "test.dart")
	fn := file.Decls[0].(*ast.FunctionDecl)
	cond := fn.Body.Statements[0].(*ast.Conditional)
	if len(cond.Branches) != 3 {
		t.Fatalf("expected 3 branches (if/elseif/else), got %d", len(cond.Branches))
	}
	if cond.Branches[0].Cond == nil {
		t.Fatal("first branch must have a condition")
	}
	if cond.Branches[1].Cond == nil {
		t.Fatal("else-if branch must have a condition")
	}
	if cond.Branches[2].Cond != nil {
		t.Fatal("trailing else branch must have a nil condition")
	}
}

func TestForLoopShape(t *testing.T) {
	src := `void main(){ for(int i=0;i<3;i++){ s = s + "x"; } }`
	file := ParseFile(src, "test.dart")
	fn := file.Decls[0].(*ast.FunctionDecl)
	forStmt := fn.Body.Statements[0].(*ast.ForStatement)
	if _, ok := forStmt.Init.(*ast.VarStatement); !ok {
		t.Fatalf("Init = %#v", forStmt.Init)
	}
	if forStmt.Cond == nil {
		t.Fatal("Cond should not be nil")
	}
	if _, ok := forStmt.Post.(*ast.ExpressionStatement); !ok {
		t.Fatalf("Post = %#v", forStmt.Post)
	}
}

func TestDirectivesCollected(t *testing.T) {
	src := `import "a.dart"; import "b.dart"; void main(){}`
	file := ParseFile(src, "test.dart")
	if len(file.Directives.Imports) != 2 || file.Directives.Imports[0] != "a.dart" {
		t.Fatalf("Imports = %#v", file.Directives.Imports)
	}
}

func TestTopLevelVarDecl(t *testing.T) {
	src := `int counter = 0;`
	file := ParseFile(src, "test.dart")
	v, ok := file.Decls[0].(*ast.TopVarDecl)
	if !ok || v.Name != "counter" {
		t.Fatalf("got %#v", file.Decls[0])
	}
	if _, ok := v.Value.(*ast.IntegerLiteral); !ok {
		t.Fatalf("Value = %#v", v.Value)
	}
}

func TestStringInterpolationPassthrough(t *testing.T) {
	expr := parseExpr(t, `"a=${a}!"`)
	sl, ok := expr.(*ast.StringLiteral)
	if !ok {
		t.Fatalf("got %#v", expr)
	}
	if len(sl.Interps) != 1 {
		t.Fatalf("Interps = %#v", sl.Interps)
	}
}

func TestFibonacciParses(t *testing.T) {
	src := `int fib(int n){ if(n<2){ return n; } return fib(n-1)+fib(n-2); } void main(){ print(fib(10)); }`
	file := ParseFile(src, "test.dart")
	if len(file.Decls) != 2 {
		t.Fatalf("expected 2 top-level decls, got %d", len(file.Decls))
	}
	fib := file.Decls[0].(*ast.FunctionDecl)
	if fib.Name != "fib" || len(fib.Params) != 1 {
		t.Fatalf("fib = %#v", fib)
	}
}
