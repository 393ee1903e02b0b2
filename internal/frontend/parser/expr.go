package parser

import (
	"ferrontend/internal/diagnostics"
	"ferrontend/internal/frontend/ast"
	"ferrontend/internal/tokens"
)

// parseExpression is the grammar's `Expression ::= Assignment | LogicalOr`
// entry point: it parses a LogicalOr first, and if an assignment
// operator follows, requires that parsed node to be a syntactic lvalue
// before building a right-associative AssignmentExpr.
func (p *Parser) parseExpression() ast.Expr {
	start := p.peek()
	left := p.parseLogicalOr()
	if p.err != nil {
		return nil
	}

	if !p.checkAny(tokens.ASSIGN, tokens.PLUS_EQ, tokens.MINUS_EQ, tokens.STAR_EQ, tokens.SLASH_EQ, tokens.PERCENT_EQ) {
		return left
	}

	if !isLvalue(left) {
		p.failKind(p.peek(), diagnostics.ParseLvalueRequired, "lvalue required on the left of an assignment")
		return nil
	}

	op := p.advance()
	value := p.parseExpression() // right-associative
	if p.err != nil {
		return nil
	}

	return &ast.AssignmentExpr{Target: left, Op: op, Value: value, Location: p.spanFrom(start)}
}

func isLvalue(e ast.Expr) bool {
	switch v := e.(type) {
	case *ast.Identifier:
		return true
	case *ast.Subscript:
		return true
	case *ast.UnaryExpr:
		return v.Op.Kind == tokens.STAR
	default:
		return false
	}
}

func (p *Parser) parseLogicalOr() ast.Expr {
	return p.parseLeftAssocBinary(p.parseLogicalAnd, tokens.OR_OR)
}

func (p *Parser) parseLogicalAnd() ast.Expr {
	return p.parseLeftAssocBinary(p.parseEquality, tokens.AND_AND)
}

func (p *Parser) parseEquality() ast.Expr {
	return p.parseLeftAssocBinary(p.parseRelational, tokens.EQ, tokens.NOT_EQ)
}

func (p *Parser) parseRelational() ast.Expr {
	return p.parseLeftAssocBinary(p.parseAdditive, tokens.LT, tokens.GT, tokens.LT_EQ, tokens.GT_EQ)
}

func (p *Parser) parseAdditive() ast.Expr {
	return p.parseLeftAssocBinary(p.parseMultiplicative, tokens.PLUS, tokens.MINUS)
}

func (p *Parser) parseMultiplicative() ast.Expr {
	return p.parseLeftAssocBinary(p.parseUnary, tokens.STAR, tokens.SLASH, tokens.PERCENT)
}

// parseLeftAssocBinary folds next() (('<op>' next())*) into a left-leaning
// chain of BinaryExpr nodes — the shape shared by every precedence level
// above Unary.
func (p *Parser) parseLeftAssocBinary(next func() ast.Expr, ops ...tokens.Kind) ast.Expr {
	start := p.peek()
	left := next()
	if p.err != nil {
		return nil
	}

	for p.checkAny(ops...) {
		op := p.advance()
		right := next()
		if p.err != nil {
			return nil
		}
		left = &ast.BinaryExpr{X: left, Op: op, Y: right, Location: p.spanFrom(start)}
	}
	return left
}

// sizeof is reserved (so it can't be redeclared as an identifier) and
// parses like any other unary prefix operator; it carries no lowering
// effect in this front-end (constant folding is out of scope).
var prefixOps = []tokens.Kind{tokens.PLUS, tokens.MINUS, tokens.NOT, tokens.STAR, tokens.AMP, tokens.PLUS_PLUS, tokens.MINUS_MINUS, tokens.SIZEOF}

func (p *Parser) parseUnary() ast.Expr {
	start := p.peek()
	if p.checkAny(prefixOps...) {
		op := p.advance()
		operand := p.parseUnary()
		if p.err != nil {
			return nil
		}
		return &ast.UnaryExpr{Op: op, X: operand, Location: p.spanFrom(start)}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expr {
	start := p.peek()
	expr := p.parsePrimary()
	if p.err != nil {
		return nil
	}

	for {
		switch {
		case p.checkAny(tokens.PLUS_PLUS, tokens.MINUS_MINUS):
			op := p.advance()
			expr = &ast.PostfixExpr{X: expr, Op: op, Location: p.spanFrom(start)}

		case p.check(tokens.LBRACKET):
			p.advance()
			index := p.parseExpression()
			if p.err != nil {
				return nil
			}
			p.expect(tokens.RBRACKET)
			if p.err != nil {
				return nil
			}
			expr = &ast.Subscript{X: expr, Index: index, Location: p.spanFrom(start)}

		case p.check(tokens.LPAREN):
			p.advance()
			var args []ast.Expr
			if !p.check(tokens.RPAREN) {
				for {
					args = append(args, p.parseExprOrInitList())
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
			expr = &ast.Call{Callee: expr, Args: args, Location: p.spanFrom(start)}

		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	start := p.peek()

	switch start.Kind {
	case tokens.INTEGER:
		p.advance()
		return &ast.Literal{Kind: ast.IntLiteral, Value: start.Lexeme, Location: p.spanFrom(start)}
	case tokens.FLOAT:
		p.advance()
		return &ast.Literal{Kind: ast.FloatLiteral, Value: start.Lexeme, Location: p.spanFrom(start)}
	case tokens.TRUE, tokens.FALSE:
		p.advance()
		return &ast.Literal{Kind: ast.BoolLiteral, Value: start.Lexeme, Location: p.spanFrom(start)}
	case tokens.STRING:
		// The grammar excerpt omits strings from Primary, but the lexer
		// emits them and real programs use them as values — accepted
		// here per spec.md §9 open question #2.
		p.advance()
		return &ast.Literal{Kind: ast.StringLiteral, Value: start.Lexeme, Location: p.spanFrom(start)}
	case tokens.CHAR:
		p.advance()
		return &ast.Literal{Kind: ast.CharLiteral, Value: start.Lexeme, Location: p.spanFrom(start)}
	case tokens.IDENTIFIER:
		p.advance()
		return &ast.Identifier{Name: start.Lexeme, Location: p.spanFrom(start)}
	case tokens.LPAREN:
		p.advance()
		inner := p.parseExpression()
		if p.err != nil {
			return nil
		}
		p.expect(tokens.RPAREN)
		if p.err != nil {
			return nil
		}
		return inner
	default:
		p.fail(start, "expected an expression")
		return nil
	}
}

// parseExprOrInitList parses `Expression | InitList`, used in ArgList and
// in a VariableDecl's initializer.
func (p *Parser) parseExprOrInitList() ast.Expr {
	if p.check(tokens.LBRACE) {
		return p.parseInitializerList()
	}
	return p.parseExpression()
}

// parseInitializerList parses `{ elem (',' elem)* }`, each elem an
// Expression or a nested InitList. A trailing comma is rejected.
func (p *Parser) parseInitializerList() ast.Expr {
	start := p.peek()
	p.advance() // '{'

	var elems []ast.Expr
	if !p.check(tokens.RBRACE) {
		for {
			elems = append(elems, p.parseExprOrInitList())
			if p.err != nil {
				return nil
			}
			if !p.match(tokens.COMMA) {
				break
			}
			if p.check(tokens.RBRACE) {
				p.failKind(p.peek(), diagnostics.ParseMalformedInitializer, "trailing comma not allowed in initializer list")
				return nil
			}
		}
	}
	p.expect(tokens.RBRACE)
	if p.err != nil {
		return nil
	}

	return &ast.InitializerList{Elements: elems, Location: p.spanFrom(start)}
}
