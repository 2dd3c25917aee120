// Package callstack implements the evaluator's two-level execution
// stack: a call-stack of lex-stacks of name-to-value frames.
package callstack

import "github.com/cwbudde/redart/internal/object"

type lexFrame map[string]object.Object

// callFrame is the ordered sequence of lex-frames belonging to one
// in-flight function or method invocation.
type callFrame []lexFrame

// Stack is the evaluator's name-resolution and GC-root structure.
// Lookups search the current call-frame's lex-frames innermost to
// outermost and never cross into an enclosing call-frame — a name not
// found there falls through to the file looktable instead.
type Stack struct {
	frames []callFrame
}

func New() *Stack {
	return &Stack{}
}

// PushCall starts a new invocation with one initial lex-frame.
func (s *Stack) PushCall() {
	s.frames = append(s.frames, callFrame{lexFrame{}})
}

// PopCall ends the current invocation, discarding all its lex-frames.
func (s *Stack) PopCall() {
	s.frames = s.frames[:len(s.frames)-1]
}

// PushLex opens a new lexical block within the current invocation.
func (s *Stack) PushLex() {
	top := len(s.frames) - 1
	s.frames[top] = append(s.frames[top], lexFrame{})
}

// PopLex closes the innermost lexical block of the current invocation.
func (s *Stack) PopLex() {
	top := len(s.frames) - 1
	s.frames[top] = s.frames[top][:len(s.frames[top])-1]
}

// CallLevel is the number of live invocations; LexLevel is the number
// of lex-frames open in the current (topmost) invocation.
func (s *Stack) CallLevel() int {
	return len(s.frames)
}

func (s *Stack) LexLevel() int {
	if len(s.frames) == 0 {
		return 0
	}
	top := s.frames[len(s.frames)-1]
	return len(top)
}

// Define binds name in the innermost lex-frame of the current
// invocation, shadowing any outer binding of the same name.
func (s *Stack) Define(name string, val object.Object) {
	top := s.frames[len(s.frames)-1]
	top[len(top)-1][name] = val
}

// Update rebinds the nearest existing binding of name, searching
// innermost to outermost within the current invocation only. It
// reports whether such a binding was found.
func (s *Stack) Update(name string, val object.Object) bool {
	top := s.frames[len(s.frames)-1]
	for i := len(top) - 1; i >= 0; i-- {
		if _, ok := top[i][name]; ok {
			top[i][name] = val
			return true
		}
	}
	return false
}

// Has reports whether name is bound anywhere in the current
// invocation's lex-frames.
func (s *Stack) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Get looks up name within the current invocation's lex-frames,
// innermost first.
func (s *Stack) Get(name string) (object.Object, bool) {
	if len(s.frames) == 0 {
		return object.Object{}, false
	}
	top := s.frames[len(s.frames)-1]
	for i := len(top) - 1; i >= 0; i-- {
		if v, ok := top[i][name]; ok {
			return v, true
		}
	}
	return object.Object{}, false
}

// Roots collects every Reference held in any lex-frame of any
// call-frame currently on the stack, for use as GC roots: a paused
// outer invocation is still live (it resumes once the call beneath it
// returns), so its bindings must be traced too.
func (s *Stack) Roots() []object.RefKey {
	var roots []object.RefKey
	for _, cf := range s.frames {
		for _, lf := range cf {
			for _, v := range lf {
				if v.Kind == object.ReferenceKind {
					roots = append(roots, v.Ref)
				}
			}
		}
	}
	return roots
}
