package parser

import (
	"github.com/cwbudde/redart/internal/ast"
	"github.com/cwbudde/redart/internal/lexer"
)

// parseClassDecl parses `class Name { member* }`. A member is a field
// declaration, a constructor (name equal to the class name), or a
// method, disambiguated by lookahead.
func (p *Parser) parseClassDecl() *ast.ClassDecl {
	pos := p.expect(lexer.CLASS).Pos
	name := p.expect(lexer.IDENT).Literal
	class := &ast.ClassDecl{Position: pos, Name: name, SourceFile: p.filepath}

	p.expect(lexer.LBRACE)
	for !p.at(lexer.RBRACE) {
		p.parseClassMember(class)
	}
	p.expect(lexer.RBRACE)
	return class
}

func (p *Parser) parseClassMember(class *ast.ClassDecl) {
	if p.cur().Type == lexer.IDENT && p.cur().Literal == class.Name && p.peekAt(1).Type == lexer.LPAREN {
		class.Constructors = append(class.Constructors, p.parseConstructor(class.Name))
		return
	}

	pos := p.cur().Pos
	typeName := p.expect(lexer.IDENT).Literal
	name := p.expect(lexer.IDENT).Literal

	if p.at(lexer.LPAREN) {
		class.Methods = append(class.Methods, p.parseFunctionDecl(pos, typeName, name))
		return
	}

	var value ast.Expression
	if p.skip(lexer.ASSIGN) {
		value = p.expression()
	}
	p.expect(lexer.SEMICOLON)
	class.Fields = append(class.Fields, &ast.FieldDecl{Position: pos, TypeName: typeName, Name: name, Value: value})
}

// parseConstructor parses `Name(params) [: initlist] { body }`.
func (p *Parser) parseConstructor(className string) *ast.Constructor {
	pos := p.cur().Pos
	p.expect(lexer.IDENT) // the constructor name, already checked == className
	params := p.parseParamList()

	var inits []*ast.Initializer
	if p.skip(lexer.COLON) {
		for {
			inits = append(inits, p.parseInitializer())
			if p.skip(lexer.COMMA) {
				continue
			}
			break
		}
	}

	// A constructor whose body is empty may be written with just a
	// trailing `;` instead of `{}`, e.g. `C(this.n);`.
	var body *ast.BlockStatement
	if p.at(lexer.SEMICOLON) {
		body = &ast.BlockStatement{Position: p.advance().Pos}
	} else {
		body = p.parseBlock()
	}

	return &ast.Constructor{
		Position:   pos,
		Name:       className,
		Params:     params,
		Inits:      inits,
		Body:       body,
		SourceFile: p.filepath,
	}
}

func (p *Parser) parseInitializer() *ast.Initializer {
	pos := p.expect(lexer.THIS).Pos
	p.expect(lexer.DOT)
	field := p.expect(lexer.IDENT).Literal
	p.expect(lexer.ASSIGN)
	value := p.expression()
	return &ast.Initializer{Position: pos, Field: field, Value: value}
}
