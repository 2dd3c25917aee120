package interp

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/redart/internal/ast"
	"github.com/cwbudde/redart/internal/errors"
	"github.com/cwbudde/redart/internal/object"
	"github.com/cwbudde/redart/internal/objsys"
	"github.com/cwbudde/redart/internal/parser"
)

// LibDir is the root directory `dart:X` and `auto:X` imports resolve
// under: `<LibDir>/core/X.dart` and `<LibDir>/auto/X` respectively.
var LibDir = "lib"

// loadedFile is the module loader's per-file bookkeeping: the parsed
// file and its fully-resolved looktable (own declarations first, then
// every transitively imported file's surviving names, first-wins).
type loadedFile struct {
	file *ast.File
	look map[string]int
}

// Run loads rootPath and every file it imports, then looks up and
// invokes `main` with no arguments, per the module loader's entry
// point contract.
func Run(state *State, rootPath string) {
	abs := mustAbs(rootPath)
	loaded := make(map[string]*loadedFile)
	root := loadFile(state, abs, loaded)

	idx, ok := root.look["main"]
	if !ok {
		errors.Fatal(abs, 0, 0, "No 'main' function found.")
	}
	fn, ok := state.Globals[idx].(*ast.FunctionDecl)
	if !ok {
		errors.Fatal(abs, 0, 0, "'main' is not a function.")
	}

	state.FilePath = abs
	fnObj := object.Function(fn.Name, fn.SourceFile, toObjectParams(fn.Params), fn.Body)
	callFunction(state, fn.Position, fnObj, nil)
}

func mustAbs(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

func resolveImportPath(importerDir, raw string) string {
	switch {
	case strings.HasPrefix(raw, "dart:"):
		return filepath.Join(LibDir, "core", strings.TrimPrefix(raw, "dart:")+".dart")
	case strings.HasPrefix(raw, "auto:"):
		return filepath.Join(LibDir, "auto", strings.TrimPrefix(raw, "auto:"))
	default:
		return filepath.Join(importerDir, raw)
	}
}

// loadFile parses path (memoised by absolute path so a diamond import
// graph visits each file once), appends its own declarations to
// state.Globals, registers its classes, then merges in every
// transitively imported file's looktable on a first-wins basis.
func loadFile(state *State, path string, loaded map[string]*loadedFile) *loadedFile {
	abs := mustAbs(path)
	if lf, ok := loaded[abs]; ok {
		return lf
	}

	state.tracef("loading %s", abs)
	src, err := os.ReadFile(abs)
	if err != nil {
		errors.Fatal(abs, 0, 0, "Cannot open import: "+err.Error())
	}

	file := parser.ParseFile(string(src), abs)
	lf := &loadedFile{file: file, look: make(map[string]int)}
	loaded[abs] = lf // inserted before recursing: import cycles resolve to a partial, not infinite, table

	start := len(state.Globals)
	for i, decl := range file.Decls {
		name := declName(decl)
		if _, dup := lf.look[name]; dup {
			pos := decl.Pos()
			errors.Fatal(abs, pos.Line, pos.Column, "Duplicate declaration: "+name)
		}
		lf.look[name] = start + i
		state.Globals = append(state.Globals, decl)
	}

	for _, cls := range file.Classes {
		registerClass(state, abs, cls, lf)
	}

	dir := filepath.Dir(abs)
	for _, imp := range file.Directives.Imports {
		impPath := resolveImportPath(dir, imp)
		impLF := loadFile(state, impPath, loaded)
		for name, idx := range impLF.look {
			if _, exists := lf.look[name]; !exists {
				lf.look[name] = idx
			}
		}
	}

	state.LookTables[abs] = lf.look
	return lf
}

func declName(decl ast.Decl) string {
	switch d := decl.(type) {
	case *ast.FunctionDecl:
		return d.Name
	case *ast.TopVarDecl:
		return d.Name
	case *ast.Constructor:
		return d.Name
	}
	panic("interp: unknown Decl kind")
}

// registerClass builds the runtime Class descriptor (fields + method
// table) and additionally appends the class's constructor to Globals
// under the class's own name, since State's looktable invariant names
// Constructor as one of the four valid globals-slot node kinds.
func registerClass(state *State, sourceFile string, cls *ast.ClassDecl, lf *loadedFile) {
	class := objsys.NewClass(cls.Name)
	for _, f := range cls.Fields {
		class.AddField(f.TypeName, f.Name, f.Value)
	}
	for _, m := range cls.Methods {
		class.AddMethod(m.Name, object.Function(m.Name, m.SourceFile, toObjectParams(m.Params), m.Body))
	}
	for _, ctor := range cls.Constructors {
		ctorObj := object.Constructor(ctor.Name, ctor.SourceFile, toObjectParams(ctor.Params), ctor.Inits, ctor.Body)
		class.AddMethod(ctor.Name, ctorObj)

		if _, dup := lf.look[ctor.Name]; dup {
			pos := ctor.Pos()
			errors.Fatal(sourceFile, pos.Line, pos.Column, "Duplicate declaration: "+ctor.Name)
		}
		lf.look[ctor.Name] = len(state.Globals)
		state.Globals = append(state.Globals, ctor)
	}
	state.Objs.RegisterClass(class)
}

// lookupGlobal resolves a bare identifier against file's looktable: a
// top-level variable or constant is evaluated on first reference and
// cached by its Globals index (TopVarLazy/ConstTopLazy semantics). A
// looktable entry naming a FunctionDecl or Constructor is not a value
// in this language surface — such names are only ever referenced
// immediately followed by `(`, which the parser routes to
// CallExpression/MethodCallExpression instead of Identifier.
func (s *State) lookupGlobal(name, file string) (object.Object, bool) {
	look, ok := s.LookTables[file]
	if !ok {
		return object.Object{}, false
	}
	idx, ok := look[name]
	if !ok {
		return object.Object{}, false
	}
	if v, ok := s.globalCache[idx]; ok {
		return v, true
	}
	decl, ok := s.Globals[idx].(*ast.TopVarDecl)
	if !ok {
		return object.Object{}, false
	}
	val := object.Null()
	if decl.Value != nil {
		prevFile := s.FilePath
		s.FilePath = decl.SourceFile
		val = Eval(decl.Value, s, false)
		s.FilePath = prevFile
	}
	s.globalCache[idx] = val
	return val, true
}
