package callstack

import (
	"testing"

	"github.com/cwbudde/redart/internal/object"
)

func TestDefineAndGetInnermostWins(t *testing.T) {
	s := New()
	s.PushCall()
	s.Define("x", object.Int(1))
	s.PushLex()
	s.Define("x", object.Int(2))

	v, ok := s.Get("x")
	if !ok || v.Int != 2 {
		t.Fatalf("Get(x) = %v, %v; want 2, true", v, ok)
	}

	s.PopLex()
	v, ok = s.Get("x")
	if !ok || v.Int != 1 {
		t.Fatalf("after PopLex, Get(x) = %v, %v; want 1, true", v, ok)
	}
}

func TestUpdateDoesNotCrossCallFrames(t *testing.T) {
	s := New()
	s.PushCall()
	s.Define("x", object.Int(1))
	s.PushCall()

	if s.Update("x", object.Int(99)) {
		t.Fatal("Update should not see a binding in an outer call-frame")
	}
	if s.Has("x") {
		t.Fatal("Has should not see a binding in an outer call-frame")
	}
}

func TestLevelsTrackPushPop(t *testing.T) {
	s := New()
	s.PushCall()
	if s.CallLevel() != 1 || s.LexLevel() != 1 {
		t.Fatalf("after PushCall: call=%d lex=%d", s.CallLevel(), s.LexLevel())
	}
	s.PushLex()
	if s.LexLevel() != 2 {
		t.Fatalf("after PushLex: lex=%d", s.LexLevel())
	}
	s.PopLex()
	s.PopCall()
	if s.CallLevel() != 0 {
		t.Fatalf("after PopCall: call=%d", s.CallLevel())
	}
}

func TestRootsSpansAllCallFrames(t *testing.T) {
	s := New()
	s.PushCall()
	s.Define("outer", object.Ref(object.RefKey(1)))
	s.PushCall()
	s.Define("inner", object.Ref(object.RefKey(2)))

	roots := s.Roots()
	if len(roots) != 2 {
		t.Fatalf("Roots() = %v, want 2 entries spanning both call-frames", roots)
	}
}
