package interp

import "testing"

func TestArithmeticPrecedence(t *testing.T) {
	got := runSource(t, `void main(){ print(1+2*3); }`)
	if got != "7\n" {
		t.Errorf("got %q, want %q", got, "7\n")
	}
}

func TestIntDivisionYieldsDouble(t *testing.T) {
	got := runSource(t, `void main(){ print(7/2); }`)
	if got != "3.5\n" {
		t.Errorf("got %q, want %q", got, "3.5\n")
	}
}

func TestStringConcatenation(t *testing.T) {
	got := runSource(t, `void main(){ print("a" + "b"); }`)
	if got != "ab\n" {
		t.Errorf("got %q, want %q", got, "ab\n")
	}
}

func TestShortCircuitOr(t *testing.T) {
	// The right operand would fail to resolve if evaluated; short
	// circuiting on a true left operand must skip it.
	got := runSource(t, `void main(){ print(true || undefinedName); }`)
	if got != "true\n" {
		t.Errorf("got %q, want %q", got, "true\n")
	}
}

func TestShortCircuitAnd(t *testing.T) {
	got := runSource(t, `void main(){ print(false && undefinedName); }`)
	if got != "false\n" {
		t.Errorf("got %q, want %q", got, "false\n")
	}
}

func TestEqualityAcrossIntAndDouble(t *testing.T) {
	got := runSource(t, `void main(){ print(2 == 2.0); }`)
	if got != "true\n" {
		t.Errorf("got %q, want %q", got, "true\n")
	}
}

func TestStringInterpolationNested(t *testing.T) {
	got := runSource(t, `void main(){ var a = 1; var b = 2; print("${a}+${b}=${a+b}"); }`)
	if got != "1+2=3\n" {
		t.Errorf("got %q, want %q", got, "1+2=3\n")
	}
}

func TestPostfixIncrementReturnsOldValue(t *testing.T) {
	got := runSource(t, `void main(){ int i = 5; print(i++); print(i); }`)
	if got != "5\n6\n" {
		t.Errorf("got %q, want %q", got, "5\n6\n")
	}
}

func TestPrefixDecrementReturnsNewValue(t *testing.T) {
	got := runSource(t, `void main(){ int i = 5; print(--i); print(i); }`)
	if got != "4\n4\n" {
		t.Errorf("got %q, want %q", got, "4\n4\n")
	}
}

func TestUndefinedNameIsFatal(t *testing.T) {
	expectFatal(t, `void main(){ print(nope); }`)
}

func TestSubtractionIsLeftAssociative(t *testing.T) {
	// (10 - 3 - 2) must read as (10 - 3) - 2 = 5, not 10 - (3 - 2) = 9.
	got := runSource(t, `void main(){ print(10-3-2); }`)
	if got != "5\n" {
		t.Errorf("got %q, want %q", got, "5\n")
	}
}
