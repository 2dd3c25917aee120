package interp

import "testing"

func TestMathSqrt(t *testing.T) {
	got := runSource(t, `void main(){ print(math.sqrt(16)); }`)
	if got != "4\n" {
		t.Errorf("got %q, want %q", got, "4\n")
	}
}

func TestMathPow(t *testing.T) {
	got := runSource(t, `void main(){ print(math.pow(2, 10)); }`)
	if got != "1024\n" {
		t.Errorf("got %q, want %q", got, "1024\n")
	}
}

func TestMathMaxAndMin(t *testing.T) {
	got := runSource(t, `void main(){ print(math.max(3, 7)); print(math.min(3, 7)); }`)
	if got != "7\n3\n" {
		t.Errorf("got %q, want %q", got, "7\n3\n")
	}
}

func TestMathNextIntIsWithinBounds(t *testing.T) {
	got := runSource(t, `
void main() {
  int i = 0;
  while (i < 20) {
    int n = math.nextInt(5);
    if (n < 0) { print("bad"); }
    if (n >= 5) { print("bad"); }
    i = i + 1;
  }
  print("ok");
}`)
	if got != "ok\n" {
		t.Errorf("got %q, want %q", got, "ok\n")
	}
}

func TestMathWrongArgCountIsFatal(t *testing.T) {
	expectFatal(t, `void main(){ print(math.sqrt(1, 2)); }`)
}
