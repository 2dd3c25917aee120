// Package interp evaluates a parsed redart program: name resolution,
// control flow, constructor and method dispatch, multi-file module
// loading, and the built-in function library.
package interp

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/cwbudde/redart/internal/ast"
	"github.com/cwbudde/redart/internal/callstack"
	"github.com/cwbudde/redart/internal/object"
	"github.com/cwbudde/redart/internal/objsys"
)

// State aggregates every piece of mutable context threaded through
// evaluation: the currently-evaluating file, the flattened global
// declaration vector and its per-file lookup tables, the call/lex
// stack, the heap, the constructing set, and process-wide knobs
// (debug/trace flags, the random source, start time).
type State struct {
	FilePath string

	Globals    []ast.Decl
	LookTables map[string]map[string]int

	Stack *callstack.Stack
	Objs  *objsys.ObjSys

	// Constructing holds the RefKeys of instances currently being
	// built (field initializers, this.field params, init-list, body
	// not yet finished running). GC must treat these as additional
	// roots even though they may not yet be reachable from the stack.
	Constructing []object.RefKey

	Debug bool
	Trace bool

	Output io.Writer

	rng       *rand.Rand
	startedAt time.Time
	lastGC    time.Time

	globalCache map[int]object.Object
}

// New returns a State with an empty heap and global table, ready for
// the module loader to populate, writing builtin output to w.
func New(w io.Writer) *State {
	now := time.Now()
	return &State{
		LookTables:  make(map[string]map[string]int),
		Stack:       callstack.New(),
		Objs:        objsys.New(),
		Output:      w,
		rng:         rand.New(rand.NewSource(now.UnixNano())),
		startedAt:   now,
		lastGC:      now,
		globalCache: make(map[int]object.Object),
	}
}

func (s *State) tracef(format string, args ...any) {
	if !s.Trace {
		return
	}
	fmt.Fprintf(os.Stderr, "[redart] "+format+"\n", args...)
}

// roots collects every GC root: the current `this`, every Reference
// live anywhere on the stack, and the constructing set.
func (s *State) roots() []object.RefKey {
	roots := s.Stack.Roots()
	if this, ok := s.Objs.This(); ok {
		roots = append(roots, this)
	}
	roots = append(roots, s.Constructing...)
	return roots
}

// collectGarbage runs one mark/sweep/clear cycle. It is safe to call
// at any statement boundary; the evaluator invokes it after every
// top-level statement of main and after every function return.
func (s *State) collectGarbage() {
	s.tracef("gc: collecting at call_level=%d", s.Stack.CallLevel())
	objsys.Collect(s.Objs, s.roots())
	s.lastGC = time.Now()
}

// Elapsed is the wall-clock duration since the State was created. The
// CLI does not call it: `test` reports pass/fail counts but no run
// time.
func (s *State) Elapsed() time.Duration {
	return time.Since(s.startedAt)
}
