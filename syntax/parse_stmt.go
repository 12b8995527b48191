package syntax

import (
	"frascal/ast"
	"frascal/report"
)

// stmts = {stmt}
//
// Parsing stops on any of the given terminator tokens, which are not consumed.
func (p *Parser) parseStmts(terminators ...int) *ast.StatementGroup {
	group := ast.NewStatementGroup(p.tok.Span)

	for !p.gotOneOf(terminators...) {
		if p.got(TOK_EOF) {
			p.reject()
		}

		group.Append(p.parseStmt())
	}

	return group
}

// stmt = assign_stmt | if_stmt | for_stmt | while_stmt | do_while_stmt
//
//	| return_stmt | print_stmt
func (p *Parser) parseStmt() ast.Stmt {
	switch p.tok.Kind {
	case TOK_IDENT:
		return p.parseAssign()
	case TOK_IF:
		return p.parseIf()
	case TOK_FOR:
		return p.parseFor()
	case TOK_WHILE:
		return p.parseWhile()
	case TOK_DO:
		return p.parseDoWhile()
	case TOK_RETURN:
		start := p.tok.Span
		p.next()
		expr := p.parseExpr()
		end := p.assertAndNext(TOK_SEMI)

		return ast.NewReturn(report.NewSpanOver(start, end.Span), expr)
	case TOK_PRINT:
		return p.parsePrint()
	}

	p.reject()
	return nil
}

// assign_stmt = lvalue ':=' expr ';'
func (p *Parser) parseAssign() *ast.Assign {
	dest := p.parseLValue()
	p.assertAndNext(TOK_ASSIGN)
	src := p.parseExpr()
	end := p.assertAndNext(TOK_SEMI)

	return ast.NewAssign(report.NewSpanOver(dest.Span(), end.Span), dest, src)
}

// if_stmt = 'if' expr 'then' stmts {'elif' expr 'then' stmts} ['else' stmts] 'endif'
func (p *Parser) parseIf() *ast.If {
	start := p.tok.Span
	p.next()

	cond := p.parseExpr()
	p.assertAndNext(TOK_THEN)
	action := p.parseStmts(TOK_ELIF, TOK_ELSE, TOK_ENDIF)

	var elifs *ast.ElifGroup
	for p.got(TOK_ELIF) {
		if elifs == nil {
			elifs = ast.NewElifGroup(p.tok.Span)
		}

		elifStart := p.tok.Span
		p.next()

		elifCond := p.parseExpr()
		p.assertAndNext(TOK_THEN)
		elifAction := p.parseStmts(TOK_ELIF, TOK_ELSE, TOK_ENDIF)

		elifs.Append(ast.NewBranch(report.NewSpanOver(elifStart, elifCond.Span()), elifCond, elifAction))
	}

	var elseAction *ast.StatementGroup
	if p.got(TOK_ELSE) {
		p.next()
		elseAction = p.parseStmts(TOK_ENDIF)
	}

	end := p.assertAndNext(TOK_ENDIF)
	return ast.NewIf(report.NewSpanOver(start, end.Span), cond, action, elifs, elseAction)
}

// for_stmt = 'for' lvalue 'from' expr 'to' expr 'do' stmts 'endfor'
func (p *Parser) parseFor() *ast.For {
	start := p.tok.Span
	p.want(TOK_IDENT)

	iter := p.parseLValue()
	p.assertAndNext(TOK_FROM)
	from := p.parseExpr()
	p.assertAndNext(TOK_TO)
	to := p.parseExpr()
	p.assertAndNext(TOK_DO)
	body := p.parseStmts(TOK_ENDFOR)
	end := p.assertAndNext(TOK_ENDFOR)

	return ast.NewFor(report.NewSpanOver(start, end.Span), iter, from, to, body)
}

// while_stmt = 'while' expr 'do' stmts 'endwhile'
func (p *Parser) parseWhile() *ast.While {
	start := p.tok.Span
	p.next()

	cond := p.parseExpr()
	p.assertAndNext(TOK_DO)
	body := p.parseStmts(TOK_ENDWHILE)
	end := p.assertAndNext(TOK_ENDWHILE)

	return ast.NewWhile(report.NewSpanOver(start, end.Span), cond, body)
}

// do_while_stmt = 'do' stmts 'enddo' 'while' expr ';'
func (p *Parser) parseDoWhile() *ast.DoWhile {
	start := p.tok.Span
	p.next()

	body := p.parseStmts(TOK_ENDDO)
	p.want(TOK_WHILE)
	p.next()
	cond := p.parseExpr()
	end := p.assertAndNext(TOK_SEMI)

	return ast.NewDoWhile(report.NewSpanOver(start, end.Span), body, cond)
}

// print_stmt = 'print' '(' [expr {',' expr}] ')' ';'
func (p *Parser) parsePrint() *ast.Print {
	start := p.tok.Span
	p.want(TOK_LPAREN)
	p.next()

	args := p.parseArgs(start)
	end := p.assertAndNext(TOK_SEMI)

	return ast.NewPrint(report.NewSpanOver(start, end.Span), args)
}
