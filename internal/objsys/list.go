package objsys

import (
	"strings"

	"github.com/cwbudde/redart/internal/object"
)

// InternalList is the backing store for the `List` builtin type.
type InternalList struct {
	ID       object.RefKey
	Elements []object.Object
	marked   bool
}

func NewInternalList(id object.RefKey) *InternalList {
	return &InternalList{ID: id}
}

func (l *InternalList) Add(v object.Object) {
	l.Elements = append(l.Elements, v)
}

func (l *InternalList) AddAll(vs []object.Object) {
	l.Elements = append(l.Elements, vs...)
}

func (l *InternalList) Insert(i int, v object.Object) bool {
	if i < 0 || i > len(l.Elements) {
		return false
	}
	l.Elements = append(l.Elements, object.Object{})
	copy(l.Elements[i+1:], l.Elements[i:])
	l.Elements[i] = v
	return true
}

func (l *InternalList) RemoveAt(i int) bool {
	if i < 0 || i >= len(l.Elements) {
		return false
	}
	l.Elements = append(l.Elements[:i], l.Elements[i+1:]...)
	return true
}

func (l *InternalList) RemoveLast() bool {
	if len(l.Elements) == 0 {
		return false
	}
	l.Elements = l.Elements[:len(l.Elements)-1]
	return true
}

// RemoveRange removes the half-open range [lo, hi).
func (l *InternalList) RemoveRange(lo, hi int) bool {
	if lo < 0 || hi > len(l.Elements) || lo > hi {
		return false
	}
	l.Elements = append(l.Elements[:lo], l.Elements[hi:]...)
	return true
}

// Shuffle performs a uniform random (Fisher-Yates) permutation using
// the supplied source of randomness, so the caller's math builtin
// owns the single process-wide generator.
func (l *InternalList) Shuffle(intn func(n int) int) {
	for i := len(l.Elements) - 1; i > 0; i-- {
		j := intn(i + 1)
		l.Elements[i], l.Elements[j] = l.Elements[j], l.Elements[i]
	}
}

// Foreach visits every element in order. It exists as its own step,
// distinct from a caller ranging over Elements directly, so future
// callers (a `forEach` builtin, e.g.) don't each need to know the
// arena stores elements in a plain slice.
func (l *InternalList) Foreach(f func(object.Object)) {
	for _, e := range l.Elements {
		f(e)
	}
}

// Format renders "[e1, e2, ...]", or "[]" when empty, using display
// to render each element. display is supplied by the evaluator so
// that Reference elements can dispatch through a class's toString.
func (l *InternalList) Format(display func(object.Object) string) string {
	if len(l.Elements) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	l.Foreach(func(e object.Object) {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(display(e))
	})
	sb.WriteByte(']')
	return sb.String()
}
