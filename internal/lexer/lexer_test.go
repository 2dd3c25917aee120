package lexer

import (
	"testing"

	"github.com/cwbudde/redart/internal/errors"
)

func TestLexBasicTokens(t *testing.T) {
	input := `class Foo {
  var x;
  Foo(this.x);
  int bar() {
    return x + 1;
  }
}`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{CLASS, "class"},
		{IDENT, "Foo"},
		{LBRACE, "{"},
		{IDENT, "var"},
		{IDENT, "x"},
		{SEMICOLON, ";"},
		{IDENT, "Foo"},
		{LPAREN, "("},
		{THIS, "this"},
		{DOT, "."},
		{IDENT, "x"},
		{RPAREN, ")"},
		{SEMICOLON, ";"},
		{IDENT, "int"},
		{IDENT, "bar"},
		{LPAREN, "("},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{RETURN, "return"},
		{IDENT, "x"},
		{PLUS, "+"},
		{INT, "1"},
		{SEMICOLON, ";"},
		{RBRACE, "}"},
		{RBRACE, "}"},
		{EOF, ""},
	}

	toks := Lex(input, "test.dart")
	if len(toks) != len(tests) {
		t.Fatalf("token count = %d, want %d (%v)", len(toks), len(tests), toks)
	}
	for i, want := range tests {
		got := toks[i]
		if got.Type != want.expectedType {
			t.Errorf("token[%d].Type = %v, want %v", i, got.Type, want.expectedType)
		}
		if got.Literal != want.expectedLiteral {
			t.Errorf("token[%d].Literal = %q, want %q", i, got.Literal, want.expectedLiteral)
		}
	}
}

func TestLexOperators(t *testing.T) {
	input := `== <= >= ++ -- || && | & ^ ! < > = + - * /`
	want := []TokenType{
		EQUAL, LESSEQ, GREATEREQ, INC, DEC, LOGOR, LOGAND, BITOR, BITAND,
		BITXOR, NOT, LESS, GREATER, ASSIGN, PLUS, MINUS, ASTERISK, SLASH, EOF,
	}
	toks := Lex(input, "test.dart")
	if len(toks) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(toks), len(want), toks)
	}
	for i, tt := range want {
		if toks[i].Type != tt {
			t.Errorf("token[%d].Type = %v, want %v", i, toks[i].Type, tt)
		}
	}
}

func TestLexNumbers(t *testing.T) {
	toks := Lex("42 3.14 0", "test.dart")
	want := []struct {
		typ TokenType
		lit string
	}{
		{INT, "42"},
		{FLOAT, "3.14"},
		{INT, "0"},
		{EOF, ""},
	}
	for i, w := range want {
		if toks[i].Type != w.typ || toks[i].Literal != w.lit {
			t.Errorf("token[%d] = %v %q, want %v %q", i, toks[i].Type, toks[i].Literal, w.typ, w.lit)
		}
	}
}

func TestLexDoubleDotIsFatal(t *testing.T) {
	errors.Debug = true
	defer func() {
		errors.Debug = false
		if recover() == nil {
			t.Fatal("expected a fatal error lexing a double dot")
		}
	}()
	Lex("1..2", "test.dart")
}

func TestLexStringNoInterpolation(t *testing.T) {
	toks := Lex(`'hi there'`, "test.dart")
	if toks[0].Type != STRING || toks[0].Literal != "hi there" {
		t.Fatalf("got %v %q", toks[0].Type, toks[0].Literal)
	}
	if len(toks[0].Interps) != 0 {
		t.Fatalf("expected no interpolations, got %v", toks[0].Interps)
	}
}

func TestLexStringInterpolation(t *testing.T) {
	toks := Lex(`"a=${a}!"`, "test.dart")
	str := toks[0]
	if str.Type != STRING {
		t.Fatalf("got %v, want STRING", str.Type)
	}
	if got, want := str.Literal, "a="+string(interpMarker)+"!"; got != want {
		t.Fatalf("Literal = %q, want %q", got, want)
	}
	if len(str.Interps) != 1 {
		t.Fatalf("Interps count = %d, want 1", len(str.Interps))
	}
	inner := str.Interps[0]
	if len(inner) != 2 || inner[0].Type != IDENT || inner[0].Literal != "a" || inner[1].Type != EOF {
		t.Fatalf("unexpected inner tokens: %v", inner)
	}
}

func TestLexBareDollarStaysLiteral(t *testing.T) {
	toks := Lex(`"hi $name"`, "test.dart")
	str := toks[0]
	if str.Literal != "hi $name" {
		t.Fatalf("Literal = %q, want %q", str.Literal, "hi $name")
	}
	if len(str.Interps) != 0 {
		t.Fatalf("expected no interpolations for a bare $, got %v", str.Interps)
	}
}

func TestLexLineComment(t *testing.T) {
	toks := Lex("1 // a trailing comment\n2", "test.dart")
	if len(toks) != 3 || toks[0].Literal != "1" || toks[1].Literal != "2" || toks[2].Type != EOF {
		t.Fatalf("unexpected tokens: %v", toks)
	}
}

func TestPositionTracking(t *testing.T) {
	toks := Lex("a\nb", "test.dart")
	if toks[0].Pos != (Position{Line: 1, Column: 1}) {
		t.Errorf("a pos = %v", toks[0].Pos)
	}
	if toks[1].Pos != (Position{Line: 2, Column: 1}) {
		t.Errorf("b pos = %v", toks[1].Pos)
	}
}
