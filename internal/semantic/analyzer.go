// Package semantic sketches a static type checker for the language
// evaluated by internal/interp. It is not wired into the evaluation
// pipeline: Analyze is never called from cmd/redart or Run, and
// internal/interp's dynamic typing is authoritative at runtime. The
// package exists as a foothold for a future ahead-of-time type pass,
// not as something the interpreter depends on today.
package semantic

import (
	"fmt"

	"github.com/cwbudde/redart/internal/ast"
)

// Diagnostic is one type error found while walking a file.
type Diagnostic struct {
	Pos     ast.Node
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Pos.Pos(), d.Message)
}

// Analyzer tracks the declared type of every name in scope while
// walking a file's declarations. It has no notion of instances,
// heap references, or garbage collection: those are runtime concerns
// that belong to internal/objsys.
type Analyzer struct {
	globals     map[string]string // name -> declared type
	classes     map[string]*ast.ClassDecl
	diagnostics []Diagnostic
}

// NewAnalyzer returns an Analyzer with empty scope.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		globals: make(map[string]string),
		classes: make(map[string]*ast.ClassDecl),
	}
}

// Analyze walks a file's top-level declarations and classes, recording
// each class and the declared type of each top-level variable and
// function. It reports no Diagnostics: the returned slice is always
// empty, and function bodies and expressions are not descended into.
func (a *Analyzer) Analyze(file *ast.File) []Diagnostic {
	for _, cls := range file.Classes {
		a.classes[cls.Name] = cls
	}
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.TopVarDecl:
			a.globals[d.Name] = d.TypeName
		case *ast.FunctionDecl:
			a.globals[d.Name] = d.ReturnType
		}
	}
	return a.diagnostics
}
