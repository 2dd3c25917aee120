package interp

import "testing"

func TestConstructorFieldInitAndMethodReturnsField(t *testing.T) {
	got := runSource(t, `
class C {
  int n;
  C(this.n);
  int get() { return n; }
}

void main() {
  var c = C(5);
  print(c.get());
}`)
	if got != "5\n" {
		t.Errorf("got %q, want %q", got, "5\n")
	}
}

func TestFieldAccessFromOutsideClass(t *testing.T) {
	got := runSource(t, `
class Point {
  int x;
  int y;
  Point(this.x, this.y);
}

void main() {
  var p = Point(3, 4);
  print(p.x);
  print(p.y);
}`)
	if got != "3\n4\n" {
		t.Errorf("got %q, want %q", got, "3\n4\n")
	}
}

func TestToStringDispatchedByPrint(t *testing.T) {
	got := runSource(t, `
class Point {
  int x;
  int y;
  Point(this.x, this.y);
  String toString() { return "(${x}, ${y})"; }
}

void main() {
  var p = Point(3, 4);
  print(p);
}`)
	if got != "(3, 4)\n" {
		t.Errorf("got %q, want %q", got, "(3, 4)\n")
	}
}

func TestMethodMutatesOwnField(t *testing.T) {
	got := runSource(t, `
class Counter {
  int n;
  Counter(this.n);
  void bump() { n = n + 1; }
}

void main() {
  var c = Counter(0);
  c.bump();
  c.bump();
  print(c.n);
}`)
	if got != "2\n" {
		t.Errorf("got %q, want %q", got, "2\n")
	}
}

func TestFieldDefaultInitializer(t *testing.T) {
	got := runSource(t, `
class C {
  int n = 9;
  C();
}

void main() {
  var c = C();
  print(c.n);
}`)
	if got != "9\n" {
		t.Errorf("got %q, want %q", got, "9\n")
	}
}

func TestWrongConstructorArityIsFatal(t *testing.T) {
	expectFatal(t, `
class C {
  int n;
  C(this.n);
}

void main() {
  var c = C();
}`)
}
