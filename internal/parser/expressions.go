package parser

import (
	"strconv"

	"github.com/cwbudde/redart/internal/ast"
	"github.com/cwbudde/redart/internal/errors"
	"github.com/cwbudde/redart/internal/lexer"
)

// expression is the precedence-climbing entry point, loose to tight:
// disjunction, conjunction, equality, comparison, bit-or, bit-xor,
// bit-and, additive, multiplicative, unary, postfix, primary.
func (p *Parser) expression() ast.Expression {
	return p.disjunction()
}

func (p *Parser) disjunction() ast.Expression {
	left := p.conjunction()
	if p.at(lexer.LOGOR) {
		op := p.advance()
		right := p.disjunction()
		return &ast.BinaryExpression{Position: op.Pos, Operator: "||", Left: left, Right: right}
	}
	return left
}

func (p *Parser) conjunction() ast.Expression {
	left := p.equality()
	if p.at(lexer.LOGAND) {
		op := p.advance()
		right := p.conjunction()
		return &ast.BinaryExpression{Position: op.Pos, Operator: "&&", Left: left, Right: right}
	}
	return left
}

func (p *Parser) equality() ast.Expression {
	left := p.comparison()
	if p.at(lexer.EQUAL) {
		op := p.advance()
		right := p.equality()
		return &ast.BinaryExpression{Position: op.Pos, Operator: "==", Left: left, Right: right}
	}
	return left
}

func (p *Parser) comparison() ast.Expression {
	left := p.bitOr()
	switch p.cur().Type {
	case lexer.LESS, lexer.GREATER, lexer.LESSEQ, lexer.GREATEREQ:
		op := p.advance()
		right := p.comparison()
		return &ast.BinaryExpression{Position: op.Pos, Operator: op.Literal, Left: left, Right: right}
	}
	return left
}

func (p *Parser) bitOr() ast.Expression {
	left := p.bitXor()
	if p.at(lexer.BITOR) {
		op := p.advance()
		right := p.bitOr()
		return &ast.BinaryExpression{Position: op.Pos, Operator: "|", Left: left, Right: right}
	}
	return left
}

func (p *Parser) bitXor() ast.Expression {
	left := p.bitAnd()
	if p.at(lexer.BITXOR) {
		op := p.advance()
		right := p.bitXor()
		return &ast.BinaryExpression{Position: op.Pos, Operator: "^", Left: left, Right: right}
	}
	return left
}

func (p *Parser) bitAnd() ast.Expression {
	left := p.sum()
	if p.at(lexer.BITAND) {
		op := p.advance()
		right := p.bitAnd()
		return &ast.BinaryExpression{Position: op.Pos, Operator: "&", Left: left, Right: right}
	}
	return left
}

// sum and product are left-associative: a run of same-precedence
// operators folds into a left-leaning tree, e.g. `a - b - c` parses as
// `(a - b) - c`. This loop is the fold the original recursive
// operand/operator-queue technique produces; see DESIGN.md.
func (p *Parser) sum() ast.Expression {
	left := p.product()
	for p.at(lexer.PLUS) || p.at(lexer.MINUS) {
		op := p.advance()
		right := p.product()
		left = &ast.BinaryExpression{Position: op.Pos, Operator: op.Literal, Left: left, Right: right}
	}
	return left
}

func (p *Parser) product() ast.Expression {
	left := p.unary()
	for p.at(lexer.ASTERISK) || p.at(lexer.SLASH) {
		op := p.advance()
		right := p.unary()
		left = &ast.BinaryExpression{Position: op.Pos, Operator: op.Literal, Left: left, Right: right}
	}
	return left
}

func (p *Parser) unary() ast.Expression {
	switch p.cur().Type {
	case lexer.PLUS:
		p.fatal("'+' is not a prefix operator.")
		panic("unreachable")
	case lexer.MINUS:
		op := p.advance()
		return &ast.UnaryExpression{Position: op.Pos, Operator: "-", Operand: p.unary()}
	case lexer.NOT:
		op := p.advance()
		return &ast.UnaryExpression{Position: op.Pos, Operator: "!", Operand: p.unary()}
	case lexer.INC, lexer.DEC:
		op := p.advance()
		return &ast.IncDecExpression{Position: op.Pos, Operator: op.Literal, Prefix: true, Target: p.unary()}
	default:
		return p.postfix()
	}
}

func (p *Parser) postfix() ast.Expression {
	expr := p.primary()
	for {
		switch p.cur().Type {
		case lexer.DOT:
			p.advance()
			nameTok := p.expect(lexer.IDENT)
			if p.at(lexer.LPAREN) {
				args := p.parseArgList()
				expr = &ast.MethodCallExpression{Position: nameTok.Pos, Receiver: expr, Name: nameTok.Literal, Args: args, SourceFile: p.filepath}
				continue
			}
			expr = &ast.AccessExpression{Position: nameTok.Pos, Object: expr, Field: nameTok.Literal}
		case lexer.LBRACK:
			pos := p.advance().Pos
			idx := p.expression()
			p.expect(lexer.RBRACK)
			expr = &ast.IndexExpression{Position: pos, Collection: expr, Index: idx}
		case lexer.INC, lexer.DEC:
			op := p.advance()
			expr = &ast.IncDecExpression{Position: op.Pos, Operator: op.Literal, Prefix: false, Target: expr}
			return expr
		default:
			return expr
		}
	}
}

func (p *Parser) primary() ast.Expression {
	tok := p.cur()
	switch tok.Type {
	case lexer.INT:
		p.advance()
		v, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			p.fatalPos(tok.Pos, "Invalid integer literal: "+tok.Literal)
		}
		return &ast.IntegerLiteral{Position: tok.Pos, Value: v}
	case lexer.FLOAT:
		p.advance()
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.fatalPos(tok.Pos, "Invalid double literal: "+tok.Literal)
		}
		return &ast.FloatLiteral{Position: tok.Pos, Value: v}
	case lexer.STRING:
		p.advance()
		return &ast.StringLiteral{Position: tok.Pos, Value: tok.Literal, Interps: tok.Interps}
	case lexer.TRUE:
		p.advance()
		return &ast.BooleanLiteral{Position: tok.Pos, Value: true}
	case lexer.FALSE:
		p.advance()
		return &ast.BooleanLiteral{Position: tok.Pos, Value: false}
	case lexer.NULL:
		p.advance()
		return &ast.NullLiteral{Position: tok.Pos}
	case lexer.THIS:
		p.advance()
		return &ast.ThisExpression{Position: tok.Pos}
	case lexer.SUPER:
		p.advance()
		return &ast.SuperExpression{Position: tok.Pos}
	case lexer.LPAREN:
		p.advance()
		inner := p.expression()
		p.expect(lexer.RPAREN)
		return inner
	case lexer.LBRACK:
		return p.parseListLiteral()
	case lexer.IDENT:
		p.advance()
		if p.at(lexer.LPAREN) {
			args := p.parseArgList()
			return &ast.CallExpression{Position: tok.Pos, Name: tok.Literal, Args: args}
		}
		return &ast.Identifier{Position: tok.Pos, Name: tok.Literal}
	}

	p.fatal("Unexpected token " + tok.Type.String() + ", expected an expression.")
	panic("unreachable")
}

func (p *Parser) parseListLiteral() ast.Expression {
	pos := p.expect(lexer.LBRACK).Pos
	list := &ast.ListLiteral{Position: pos}
	if p.skip(lexer.RBRACK) {
		return list
	}
	for {
		list.Elements = append(list.Elements, p.expression())
		if p.skip(lexer.COMMA) {
			continue
		}
		p.expect(lexer.RBRACK)
		break
	}
	return list
}

func (p *Parser) parseArgList() []ast.Expression {
	p.expect(lexer.LPAREN)
	var args []ast.Expression
	if p.skip(lexer.RPAREN) {
		return args
	}
	for {
		args = append(args, p.expression())
		if p.skip(lexer.COMMA) {
			continue
		}
		p.expect(lexer.RPAREN)
		break
	}
	return args
}

func (p *Parser) fatalPos(pos lexer.Position, msg string) {
	errors.Fatal(p.filepath, pos.Line, pos.Column, msg)
}
