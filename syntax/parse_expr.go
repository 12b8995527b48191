package syntax

import (
	"frascal/ast"
	"frascal/common"
	"frascal/report"
	"strconv"
)

// expr = or_expr
// or_expr = and_expr {'or' and_expr}
// and_expr = not_expr {'and' not_expr}
func (p *Parser) parseExpr() ast.Expr {
	return p.parseBinOpExpr(0)
}

// binOpLevels is the binary operator precedence table ordered lowest to highest
// precedence.  Comparisons sit between `not` and the arithmetic operators.
var binOpLevels = [][]int{
	{TOK_OR},
	{TOK_AND},
}

var arithLevels = [][]int{
	{TOK_PLUS, TOK_MINUS},
	{TOK_STAR, TOK_SLASH, TOK_DIV, TOK_MOD},
}

// binOpKinds maps operator tokens to their operator kind.
var binOpKinds = map[int]common.OpKind{
	TOK_OR:    common.OP_OR,
	TOK_AND:   common.OP_AND,
	TOK_EQ:    common.OP_EQ,
	TOK_NEQ:   common.OP_NEQ,
	TOK_LT:    common.OP_LT,
	TOK_LTEQ:  common.OP_LTEQ,
	TOK_GT:    common.OP_GT,
	TOK_GTEQ:  common.OP_GTEQ,
	TOK_PLUS:  common.OP_ADD,
	TOK_MINUS: common.OP_SUB,
	TOK_STAR:  common.OP_MUL,
	TOK_SLASH: common.OP_DIV,
	TOK_DIV:   common.OP_INT_DIV,
	TOK_MOD:   common.OP_MOD,
}

// parseBinOpExpr parses the left-associative logical levels of the table.
func (p *Parser) parseBinOpExpr(level int) ast.Expr {
	if level == len(binOpLevels) {
		return p.parseNotExpr()
	}

	lhs := p.parseBinOpExpr(level + 1)
	for p.gotOneOf(binOpLevels[level]...) {
		op := binOpKinds[p.tok.Kind]
		p.next()

		rhs := p.parseBinOpExpr(level + 1)
		lhs = ast.NewBinaryOp(report.NewSpanOver(lhs.Span(), rhs.Span()), op, lhs, rhs)
	}

	return lhs
}

// not_expr = 'not' not_expr | comp_expr
func (p *Parser) parseNotExpr() ast.Expr {
	if p.got(TOK_NOT) {
		start := p.tok.Span
		p.next()

		operand := p.parseNotExpr()
		return ast.NewUnaryOp(report.NewSpanOver(start, operand.Span()), common.OP_NOT, operand)
	}

	return p.parseCompExpr()
}

// comp_expr = arith_expr [('==' | '!=' | '<' | '<=' | '>' | '>=') arith_expr]
func (p *Parser) parseCompExpr() ast.Expr {
	lhs := p.parseArithExpr(0)

	if p.gotOneOf(TOK_EQ, TOK_NEQ, TOK_LT, TOK_LTEQ, TOK_GT, TOK_GTEQ) {
		op := binOpKinds[p.tok.Kind]
		p.next()

		rhs := p.parseArithExpr(0)
		return ast.NewBinaryOp(report.NewSpanOver(lhs.Span(), rhs.Span()), op, lhs, rhs)
	}

	return lhs
}

// arith_expr = term {('+' | '-') term}
// term = unary_expr {('*' | '/' | 'div' | 'mod') unary_expr}
func (p *Parser) parseArithExpr(level int) ast.Expr {
	if level == len(arithLevels) {
		return p.parseUnaryExpr()
	}

	lhs := p.parseArithExpr(level + 1)
	for p.gotOneOf(arithLevels[level]...) {
		op := binOpKinds[p.tok.Kind]
		p.next()

		rhs := p.parseArithExpr(level + 1)
		lhs = ast.NewBinaryOp(report.NewSpanOver(lhs.Span(), rhs.Span()), op, lhs, rhs)
	}

	return lhs
}

// unary_expr = '-' unary_expr | postfix_expr
func (p *Parser) parseUnaryExpr() ast.Expr {
	if p.got(TOK_MINUS) {
		start := p.tok.Span
		p.next()

		operand := p.parseUnaryExpr()
		return ast.NewUnaryOp(report.NewSpanOver(start, operand.Span()), common.OP_NEG, operand)
	}

	return p.parsePostfix(p.parseAtom())
}

// postfix_expr = atom {'[' expr [',' expr] ']'}
func (p *Parser) parsePostfix(base ast.Expr) ast.Expr {
	for p.got(TOK_LBRACKET) {
		p.next()
		first := p.parseExpr()

		if p.got(TOK_COMMA) {
			p.next()
			second := p.parseExpr()
			end := p.assertAndNext(TOK_RBRACKET)

			base = ast.NewMatrixSubscript(report.NewSpanOver(base.Span(), end.Span), base, first, second)
		} else {
			end := p.assertAndNext(TOK_RBRACKET)
			base = ast.NewArraySubscript(report.NewSpanOver(base.Span(), end.Span), base, first)
		}
	}

	return base
}

// lvalue = 'IDENT' {'[' expr [',' expr] ']'}
func (p *Parser) parseLValue() ast.Expr {
	tok := p.assertAndNext(TOK_IDENT)
	return p.parsePostfix(ast.NewIdentifier(tok.Span, tok.Value))
}

// atom = 'INTLIT' | 'FLOATLIT' | 'CHARLIT' | 'STRINGLIT' | 'true' | 'false'
//
//	| 'IDENT' ['(' [expr {',' expr}] ')'] | '(' expr ')'
func (p *Parser) parseAtom() ast.Expr {
	tok := p.tok

	switch tok.Kind {
	case TOK_INTLIT:
		p.next()

		v, err := strconv.ParseInt(tok.Value, 10, 32)
		if err != nil {
			panic(report.Raise(tok.Span, "integer literal %s is out of range", tok.Value))
		}

		return ast.NewIntConst(tok.Span, v)
	case TOK_FLOATLIT:
		p.next()

		v, err := strconv.ParseFloat(tok.Value, 32)
		if err != nil {
			panic(report.Raise(tok.Span, "float literal %s is out of range", tok.Value))
		}

		return ast.NewFloatConst(tok.Span, v)
	case TOK_CHARLIT:
		p.next()
		return ast.NewCharConst(tok.Span, tok.Value[0])
	case TOK_STRINGLIT:
		p.next()
		return ast.NewString(tok.Span, tok.Value)
	case TOK_TRUE, TOK_FALSE:
		p.next()
		return ast.NewBoolConst(tok.Span, tok.Kind == TOK_TRUE)
	case TOK_IDENT:
		p.next()

		ident := ast.NewIdentifier(tok.Span, tok.Value)
		if p.got(TOK_LPAREN) {
			p.next()
			args := p.parseArgs(tok.Span)

			return ast.NewCall(report.NewSpanOver(tok.Span, args.Span()), ident, args)
		}

		return ident
	case TOK_LPAREN:
		p.next()
		expr := p.parseExpr()
		p.assertAndNext(TOK_RPAREN)

		return expr
	}

	p.reject()
	return nil
}

// args = [expr {',' expr}] ')'
//
// The opening parenthesis has already been consumed.  The returned list spans
// from start to the closing parenthesis.
func (p *Parser) parseArgs(start *report.TextSpan) *ast.ArgList {
	var args []*ast.Arg

	for !p.got(TOK_RPAREN) {
		if len(args) > 0 {
			p.assertAndNext(TOK_COMMA)
		}

		expr := p.parseExpr()
		args = append(args, ast.NewArg(expr.Span(), expr))
	}

	end := p.assertAndNext(TOK_RPAREN)

	list := ast.NewArgList(report.NewSpanOver(start, end.Span))
	for _, arg := range args {
		list.Append(arg)
	}

	return list
}
