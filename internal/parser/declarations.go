package parser

import (
	"github.com/cwbudde/redart/internal/ast"
	"github.com/cwbudde/redart/internal/lexer"
)

// parseParamList parses a `(...)` parameter list. Each entry is
// either `this.field` (a ThisFieldInitNode) or `Type name` (a
// TypedVarNode).
func (p *Parser) parseParamList() []ast.ParamNode {
	p.expect(lexer.LPAREN)
	var params []ast.ParamNode
	if p.skip(lexer.RPAREN) {
		return params
	}
	for {
		params = append(params, p.parseParam())
		if p.skip(lexer.COMMA) {
			continue
		}
		p.expect(lexer.RPAREN)
		break
	}
	return params
}

func (p *Parser) parseParam() ast.ParamNode {
	if p.at(lexer.THIS) {
		pos := p.advance().Pos
		p.expect(lexer.DOT)
		name := p.expect(lexer.IDENT).Literal
		return &ast.ThisFieldInitNode{Position: pos, Name: name}
	}
	pos := p.cur().Pos
	typeName := p.expect(lexer.IDENT).Literal
	name := p.expect(lexer.IDENT).Literal
	return &ast.TypedVarNode{Position: pos, TypeName: typeName, Name: name}
}
