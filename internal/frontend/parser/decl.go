package parser

import (
	"ferrontend/internal/frontend/ast"
	"ferrontend/internal/tokens"
)

// parseFunctionDecl parses `'fn' IDENT '(' ParamList? ')' ('->' Type)? Block`.
func (p *Parser) parseFunctionDecl() *ast.FunctionDecl {
	start := p.peek()
	p.advance() // 'fn'

	name := p.expect(tokens.IDENTIFIER)
	if p.err != nil {
		return nil
	}

	p.expect(tokens.LPAREN)
	if p.err != nil {
		return nil
	}
	var params []*ast.Param
	if !p.check(tokens.RPAREN) {
		for {
			params = append(params, p.parseParam())
			if p.err != nil {
				return nil
			}
			if !p.match(tokens.COMMA) {
				break
			}
		}
	}
	p.expect(tokens.RPAREN)
	if p.err != nil {
		return nil
	}

	var ret *ast.AstType
	if p.match(tokens.ARROW) {
		ret = p.parseType()
		if p.err != nil {
			return nil
		}
	}

	body := p.parseBlock()
	if p.err != nil {
		return nil
	}

	return &ast.FunctionDecl{
		Name:     name.Lexeme,
		Params:   params,
		Return:   ret,
		Body:     body,
		Location: p.spanFrom(start),
	}
}

// parseParam parses `IDENT ':' Type`.
func (p *Parser) parseParam() *ast.Param {
	start := p.peek()
	name := p.expect(tokens.IDENTIFIER)
	if p.err != nil {
		return nil
	}
	p.expect(tokens.COLON)
	if p.err != nil {
		return nil
	}
	typ := p.parseType()
	if p.err != nil {
		return nil
	}
	return &ast.Param{Name: name.Lexeme, Type: typ, Location: p.spanFrom(start)}
}

// parseVariableDecl parses `IDENT ':' 'const'? Type ('=' (Expression | InitList))?`
// without consuming the trailing ';' — callers own that (VariableDeclStmt,
// or ForInit, which consumes exactly one ';' regardless of which form the
// init took).
func (p *Parser) parseVariableDecl() *ast.VariableDecl {
	start := p.peek()
	name := p.expect(tokens.IDENTIFIER)
	if p.err != nil {
		return nil
	}
	p.expect(tokens.COLON)
	if p.err != nil {
		return nil
	}

	typ := p.parseType()
	if p.err != nil {
		return nil
	}

	var init ast.Expr
	if p.match(tokens.ASSIGN) {
		init = p.parseExprOrInitList()
		if p.err != nil {
			return nil
		}
	}

	return &ast.VariableDecl{Name: name.Lexeme, Type: typ, Init: init, Location: p.spanFrom(start)}
}
