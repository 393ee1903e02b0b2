package parser

import (
	"fmt"

	"ferrontend/internal/frontend/ast"
	"ferrontend/internal/tokens"
)

// parseType is the parser's hardest production: a base type atom
// (possibly parenthesized or a function type) followed by a run of
// suffixes. Suffixes are recorded pre-stars, then dimensions, then
// post-stars on the same AstType record — any star run preceding the
// first '[' becomes a pre-star, any bracket run becomes a dimension
// list, and any star run trailing the dimensions becomes a post-star
// (spec.md §4.2: "any convention that reconstructs the correct nesting
// during lowering is acceptable").
func (p *Parser) parseType() *ast.AstType {
	start := p.peek()

	isConst := p.match(tokens.CONST)

	atom := p.parseTypeAtom()
	if p.err != nil {
		return nil
	}
	atom.IsConstBase = isConst

	for p.check(tokens.STAR) {
		p.advance()
		atom.PreStars++
	}
	for p.check(tokens.LBRACKET) {
		p.advance()
		dim := ast.Dimension{}
		if !p.check(tokens.RBRACKET) {
			dim.Expr = p.parseExpression()
			if p.err != nil {
				return nil
			}
		}
		p.expect(tokens.RBRACKET)
		if p.err != nil {
			return nil
		}
		atom.Dimensions = append(atom.Dimensions, dim)
	}
	for p.check(tokens.STAR) {
		p.advance()
		atom.PostStars++
	}

	atom.Location = p.spanFrom(start)
	return atom
}

func (p *Parser) parseTypeAtom() *ast.AstType {
	start := p.peek()

	if p.check(tokens.LPAREN) {
		p.advance()
		inner := p.parseType()
		if p.err != nil {
			return nil
		}
		p.expect(tokens.RPAREN)
		if p.err != nil {
			return nil
		}
		return &ast.AstType{Case: ast.GroupedType, Inner: inner, Location: p.spanFrom(start)}
	}

	if p.check(tokens.FN) {
		return p.parseFunctionType()
	}

	if tokens.IsPrimitiveType(p.peek().Kind) || p.check(tokens.IDENTIFIER) {
		name := p.advance().Lexeme
		return &ast.AstType{Case: ast.RegularType, BaseName: name, Location: p.spanFrom(start)}
	}

	p.fail(p.peek(), fmt.Sprintf("expected a type, got %s", p.peek().Kind))
	return nil
}

func (p *Parser) parseFunctionType() *ast.AstType {
	start := p.peek()
	p.advance() // 'fn'
	p.expect(tokens.LPAREN)
	if p.err != nil {
		return nil
	}

	var params []*ast.AstType
	if !p.check(tokens.RPAREN) {
		for {
			params = append(params, p.parseType())
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

	return &ast.AstType{
		Case:     ast.FunctionTypeCase,
		Params:   params,
		Return:   ret,
		Location: p.spanFrom(start),
	}
}
