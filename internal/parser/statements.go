package parser

import (
	"github.com/cwbudde/redart/internal/ast"
	"github.com/cwbudde/redart/internal/lexer"
)

func (p *Parser) parseBlock() *ast.BlockStatement {
	pos := p.expect(lexer.LBRACE).Pos
	block := &ast.BlockStatement{Position: pos}
	for !p.at(lexer.RBRACE) {
		block.Statements = append(block.Statements, p.parseStatement())
	}
	p.expect(lexer.RBRACE)
	return block
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur().Type {
	case lexer.SEMICOLON:
		pos := p.advance().Pos
		return &ast.EmptyStatement{Position: pos}
	case lexer.LBRACE:
		return p.parseBlock()
	case lexer.IF:
		return p.parseConditional()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.DO:
		return p.parseDoWhile()
	case lexer.FOR:
		return p.parseFor()
	case lexer.RETURN:
		return p.parseReturn()
	}

	if p.cur().Type == lexer.IDENT && p.peekAt(1).Type == lexer.IDENT {
		return p.parseVarStatement()
	}

	return p.parseSimpleStatement()
}

// parseVarStatement parses `Type name [= expr];`.
func (p *Parser) parseVarStatement() *ast.VarStatement {
	pos := p.cur().Pos
	typeName := p.expect(lexer.IDENT).Literal
	name := p.expect(lexer.IDENT).Literal
	var value ast.Expression
	if p.skip(lexer.ASSIGN) {
		value = p.expression()
	}
	p.expect(lexer.SEMICOLON)
	return &ast.VarStatement{Position: pos, TypeName: typeName, Name: name, Value: value}
}

// parseSimpleStatement parses an assignment or an expression
// evaluated for its side effect (a call or a pre/post increment).
func (p *Parser) parseSimpleStatement() ast.Statement {
	pos := p.cur().Pos
	expr := p.expression()
	if p.skip(lexer.ASSIGN) {
		value := p.expression()
		p.expect(lexer.SEMICOLON)
		return &ast.AssignStatement{Position: pos, Target: expr, Value: value}
	}
	p.expect(lexer.SEMICOLON)
	return &ast.ExpressionStatement{Position: pos, Expr: expr}
}

func (p *Parser) parseConditional() *ast.Conditional {
	pos := p.cur().Pos
	cond := &ast.Conditional{Position: pos}

	cond.Branches = append(cond.Branches, p.parseIfBranch())
	for p.at(lexer.ELSE) && p.peekAt(1).Type == lexer.IF {
		p.advance() // else
		cond.Branches = append(cond.Branches, p.parseIfBranch())
	}
	if p.skip(lexer.ELSE) {
		body := p.parseBlock()
		cond.Branches = append(cond.Branches, &ast.IfBranch{Cond: nil, Body: body})
	}
	return cond
}

func (p *Parser) parseIfBranch() *ast.IfBranch {
	p.expect(lexer.IF)
	p.expect(lexer.LPAREN)
	condExpr := p.expression()
	p.expect(lexer.RPAREN)
	body := p.parseBlock()
	return &ast.IfBranch{Cond: condExpr, Body: body}
}

func (p *Parser) parseWhile() *ast.WhileStatement {
	pos := p.expect(lexer.WHILE).Pos
	p.expect(lexer.LPAREN)
	cond := p.expression()
	p.expect(lexer.RPAREN)
	body := p.parseBlock()
	return &ast.WhileStatement{Position: pos, Cond: cond, Body: body}
}

func (p *Parser) parseDoWhile() *ast.DoWhileStatement {
	pos := p.expect(lexer.DO).Pos
	body := p.parseBlock()
	p.expect(lexer.WHILE)
	p.expect(lexer.LPAREN)
	cond := p.expression()
	p.expect(lexer.RPAREN)
	p.expect(lexer.SEMICOLON)
	return &ast.DoWhileStatement{Position: pos, Body: body, Cond: cond}
}

func (p *Parser) parseFor() *ast.ForStatement {
	pos := p.expect(lexer.FOR).Pos
	p.expect(lexer.LPAREN)

	var init ast.Statement
	if !p.at(lexer.SEMICOLON) {
		if p.cur().Type == lexer.IDENT && p.peekAt(1).Type == lexer.IDENT {
			init = p.parseVarStatement()
		} else {
			init = p.parseSimpleStatement()
		}
	} else {
		p.advance()
	}

	var cond ast.Expression
	if !p.at(lexer.SEMICOLON) {
		cond = p.expression()
	}
	p.expect(lexer.SEMICOLON)

	var post ast.Statement
	if !p.at(lexer.RPAREN) {
		postExpr := p.expression()
		post = &ast.ExpressionStatement{Position: postExpr.Pos(), Expr: postExpr}
		if p.skip(lexer.ASSIGN) {
			value := p.expression()
			post = &ast.AssignStatement{Position: postExpr.Pos(), Target: postExpr, Value: value}
		}
	}
	p.expect(lexer.RPAREN)

	body := p.parseBlock()
	return &ast.ForStatement{Position: pos, Init: init, Cond: cond, Post: post, Body: body}
}

func (p *Parser) parseReturn() *ast.ReturnStatement {
	pos := p.expect(lexer.RETURN).Pos
	var value ast.Expression
	if !p.at(lexer.SEMICOLON) {
		value = p.expression()
	}
	p.expect(lexer.SEMICOLON)
	return &ast.ReturnStatement{Position: pos, Value: value}
}
