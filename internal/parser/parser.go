// Package parser turns a token stream into an AST: a recursive-descent
// parser for declarations, statements and class bodies wrapped around
// a precedence-climbing expression core.
package parser

import (
	"fmt"

	"github.com/cwbudde/redart/internal/ast"
	"github.com/cwbudde/redart/internal/errors"
	"github.com/cwbudde/redart/internal/lexer"
)

// Parser walks a fixed token slice with a single cursor. Errors are
// fatal and reported at the offending token's position; there is no
// recovery.
type Parser struct {
	toks     []lexer.Token
	pos      int
	filepath string
}

func New(toks []lexer.Token, filepath string) *Parser {
	return &Parser{toks: toks, filepath: filepath}
}

// ParseFile parses a complete source file: an import preamble
// followed by a sequence of top-level declarations and classes.
func ParseFile(src, filepath string) *ast.File {
	toks := lexer.Lex(src, filepath)
	return New(toks, filepath).parseFile()
}

// ParseExpressionTokens parses a standalone token sequence as a
// single expression. The evaluator calls this on demand for each
// "${...}" interpolation payload, per the specification's division of
// labor between lexer, parser and evaluator for string interpolation.
func ParseExpressionTokens(toks []lexer.Token, filepath string) ast.Expression {
	return New(toks, filepath).expression()
}

func (p *Parser) cur() lexer.Token {
	return p.toks[p.pos]
}

func (p *Parser) peekAt(n int) lexer.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[i]
}

func (p *Parser) at(tt lexer.TokenType) bool {
	return p.cur().Type == tt
}

func (p *Parser) atEnd() bool {
	return p.at(lexer.EOF)
}

func (p *Parser) advance() lexer.Token {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// skip consumes the current token only when it is tt, and reports
// whether it was.
func (p *Parser) skip(tt lexer.TokenType) bool {
	if p.at(tt) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token, fatally erroring if it is not tt.
func (p *Parser) expect(tt lexer.TokenType) lexer.Token {
	if !p.at(tt) {
		p.fatal(fmt.Sprintf("Expected %s but found %s", tt, p.cur().Type))
	}
	return p.advance()
}

func (p *Parser) fatal(msg string) {
	pos := p.cur().Pos
	errors.Fatal(p.filepath, pos.Line, pos.Column, msg)
}

func (p *Parser) parseFile() *ast.File {
	file := &ast.File{Path: p.filepath}
	file.Directives = p.parseDirectives()

	for !p.atEnd() {
		if p.at(lexer.CLASS) {
			file.Classes = append(file.Classes, p.parseClassDecl())
			continue
		}
		file.Decls = append(file.Decls, p.parseTopLevelDecl())
	}

	return file
}

func (p *Parser) parseDirectives() *ast.Directives {
	pos := p.cur().Pos
	d := &ast.Directives{Position: pos}
	for p.at(lexer.IMPORT) {
		p.advance()
		path := p.expect(lexer.STRING).Literal
		p.expect(lexer.SEMICOLON)
		d.Imports = append(d.Imports, path)
	}
	return d
}

// parseTopLevelDecl parses `Type name(...) { ... }` (a FunctionDecl)
// or `Type name [= expr];` (a TopVarDecl).
func (p *Parser) parseTopLevelDecl() ast.Decl {
	pos := p.cur().Pos
	typeName := p.expect(lexer.IDENT).Literal
	name := p.expect(lexer.IDENT).Literal

	if p.at(lexer.LPAREN) {
		return p.parseFunctionDecl(pos, typeName, name)
	}

	var value ast.Expression
	if p.skip(lexer.ASSIGN) {
		value = p.expression()
	}
	p.expect(lexer.SEMICOLON)
	return &ast.TopVarDecl{Position: pos, TypeName: typeName, Name: name, Value: value, SourceFile: p.filepath}
}

func (p *Parser) parseFunctionDecl(pos lexer.Position, returnType, name string) *ast.FunctionDecl {
	params := p.parseParamList()
	body := p.parseBlock()
	return &ast.FunctionDecl{
		Position:   pos,
		ReturnType: returnType,
		Name:       name,
		Params:     params,
		Body:       body,
		SourceFile: p.filepath,
	}
}
