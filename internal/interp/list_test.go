package interp

import "testing"

func TestListLiteralAndIndex(t *testing.T) {
	got := runSource(t, `void main(){ var a = [1,2,3]; print(a[1]); }`)
	if got != "2\n" {
		t.Errorf("got %q, want %q", got, "2\n")
	}
}

func TestListAddAndToString(t *testing.T) {
	got := runSource(t, `void main(){ var a = [1,2,3]; a.add(4); print(a); }`)
	if got != "[1, 2, 3, 4]\n" {
		t.Errorf("got %q, want %q", got, "[1, 2, 3, 4]\n")
	}
}

func TestListAddAllMergesElements(t *testing.T) {
	got := runSource(t, `void main(){ var a = [1,2]; var b = [3,4]; a.addAll(b); print(a); }`)
	if got != "[1, 2, 3, 4]\n" {
		t.Errorf("got %q, want %q", got, "[1, 2, 3, 4]\n")
	}
}

func TestListInsertShiftsElementsRight(t *testing.T) {
	got := runSource(t, `void main(){ var a = [1,3]; a.insert(1, 2); print(a); }`)
	if got != "[1, 2, 3]\n" {
		t.Errorf("got %q, want %q", got, "[1, 2, 3]\n")
	}
}

func TestListRemoveAt(t *testing.T) {
	got := runSource(t, `void main(){ var a = [1,2,3]; a.removeAt(1); print(a); }`)
	if got != "[1, 3]\n" {
		t.Errorf("got %q, want %q", got, "[1, 3]\n")
	}
}

func TestListRemoveLast(t *testing.T) {
	got := runSource(t, `void main(){ var a = [1,2,3]; a.removeLast(); print(a); }`)
	if got != "[1, 2]\n" {
		t.Errorf("got %q, want %q", got, "[1, 2]\n")
	}
}

func TestListRemoveRange(t *testing.T) {
	got := runSource(t, `void main(){ var a = [1,2,3,4,5]; a.removeRange(1, 3); print(a); }`)
	if got != "[1, 4, 5]\n" {
		t.Errorf("got %q, want %q", got, "[1, 4, 5]\n")
	}
}

func TestListClearEmptiesList(t *testing.T) {
	got := runSource(t, `void main(){ var a = [1,2,3]; a.clear(); print(a); }`)
	if got != "[]\n" {
		t.Errorf("got %q, want %q", got, "[]\n")
	}
}

func TestListIndexOutOfBoundsIsFatal(t *testing.T) {
	expectFatal(t, `void main(){ var a = [1,2,3]; print(a[5]); }`)
}

func TestListRemoveAtOutOfBoundsIsFatal(t *testing.T) {
	expectFatal(t, `void main(){ var a = [1,2,3]; a.removeAt(10); }`)
}

func TestNestedListDisplay(t *testing.T) {
	got := runSource(t, `void main(){ var a = [[1,2],[3,4]]; print(a); }`)
	if got != "[[1, 2], [3, 4]]\n" {
		t.Errorf("got %q, want %q", got, "[[1, 2], [3, 4]]\n")
	}
}
