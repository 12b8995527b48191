package syntax

import (
	"frascal/ast"
	"frascal/report"
	"frascal/types"
	"strconv"
)

// program = {type_decl | func_def | extern_decl} [var_block] 'begin' stmts 'end'
func (p *Parser) parseProgram() *ast.Program {
	start := p.tok.Span

	newTypes := ast.NewNewTypeDeclGroup(start)
	funcs := ast.NewFunctionGroup(start)
	decls := ast.NewDeclarationGroup(start)

topLoop:
	for {
		switch p.tok.Kind {
		case TOK_TYPE:
			newTypes.Append(p.parseTypeDecl())
		case TOK_FUNC:
			funcs.Append(p.parseFuncDef())
		case TOK_EXTERN:
			decls.Append(p.parseExternDecl())
		default:
			break topLoop
		}
	}

	if p.got(TOK_VAR) {
		p.parseVarBlock(decls)
	}

	p.assertAndNext(TOK_BEGIN)
	stmts := p.parseStmts(TOK_END)
	end := p.assertAndNext(TOK_END)
	p.assert(TOK_EOF)

	return ast.NewProgram(report.NewSpanOver(start, end.Span), newTypes, funcs, decls, stmts)
}

// type_decl = 'type' 'IDENT' '=' (array_spec | matrix_spec) 'of' type_ref ';'
// array_spec = 'array' '[' 'INTLIT' ']'
// matrix_spec = 'matrix' '[' 'INTLIT' ',' 'INTLIT' ']'
func (p *Parser) parseTypeDecl() ast.TypeDecl {
	start := p.tok.Span

	p.want(TOK_IDENT)
	name := ast.NewIdentifier(p.tok.Span, p.tok.Value)
	p.want(TOK_DEFINE)
	p.next()

	switch p.tok.Kind {
	case TOK_ARRAY:
		p.want(TOK_LBRACKET)
		p.next()
		size := p.parseDimension()
		p.assertAndNext(TOK_RBRACKET)
		p.assertAndNext(TOK_OF)
		elem := p.parseTypeRef()
		end := p.assertAndNext(TOK_SEMI)

		return ast.NewArrayTypeDecl(report.NewSpanOver(start, end.Span), name, elem, size)
	case TOK_MATRIX:
		p.want(TOK_LBRACKET)
		p.next()
		rows := p.parseDimension()
		p.assertAndNext(TOK_COMMA)
		cols := p.parseDimension()
		p.assertAndNext(TOK_RBRACKET)
		p.assertAndNext(TOK_OF)
		elem := p.parseTypeRef()
		end := p.assertAndNext(TOK_SEMI)

		return ast.NewMatrixTypeDecl(report.NewSpanOver(start, end.Span), name, elem, rows, cols)
	}

	p.reject()
	return nil
}

// parseDimension parses an array or matrix dimension.
func (p *Parser) parseDimension() int {
	tok := p.assertAndNext(TOK_INTLIT)

	n, err := strconv.Atoi(tok.Value)
	if err != nil || n <= 0 {
		panic(report.Raise(tok.Span, "invalid dimension: %s", tok.Value))
	}

	return n
}

// func_def = 'func' 'IDENT' params ':' type_ref [var_block] 'begin' stmts 'end'
func (p *Parser) parseFuncDef() *ast.Function {
	start := p.tok.Span

	p.want(TOK_IDENT)
	name := ast.NewIdentifier(p.tok.Span, p.tok.Value)
	p.next()

	params := p.parseParams()
	p.assertAndNext(TOK_COLON)
	retType := p.parseTypeRef()

	decls := ast.NewDeclarationGroup(p.tok.Span)
	if p.got(TOK_VAR) {
		p.parseVarBlock(decls)
	}

	p.assertAndNext(TOK_BEGIN)
	stmts := p.parseStmts(TOK_END)
	end := p.assertAndNext(TOK_END)

	return ast.NewFunction(report.NewSpanOver(start, end.Span), name, params, retType, decls, stmts)
}

// extern_decl = 'extern' 'func' 'IDENT' params ':' type_ref ';'
func (p *Parser) parseExternDecl() *ast.FunDecl {
	start := p.tok.Span

	p.want(TOK_FUNC)
	p.want(TOK_IDENT)
	name := ast.NewIdentifier(p.tok.Span, p.tok.Value)
	p.next()

	params := p.parseParams()
	p.assertAndNext(TOK_COLON)
	retType := p.parseTypeRef()
	end := p.assertAndNext(TOK_SEMI)

	return ast.NewFunDecl(report.NewSpanOver(start, end.Span), name, params, retType)
}

// params = '(' [param {',' param}] ')'
// param = 'IDENT' ':' type_ref
func (p *Parser) parseParams() *ast.ParamList {
	start := p.assertAndNext(TOK_LPAREN)
	params := ast.NewParamList(start.Span)

	for !p.got(TOK_RPAREN) {
		if params.Len() > 0 {
			p.assertAndNext(TOK_COMMA)
		}

		nameTok := p.assertAndNext(TOK_IDENT)
		p.assertAndNext(TOK_COLON)
		typ := p.parseTypeRef()

		params.Append(ast.NewParam(
			report.NewSpanOver(nameTok.Span, typ.Span()),
			typ,
			ast.NewIdentifier(nameTok.Span, nameTok.Value),
		))
	}

	p.next()
	return params
}

// var_block = 'var' {'IDENT' {',' 'IDENT'} ':' type_ref ';'}
func (p *Parser) parseVarBlock(decls *ast.DeclarationGroup) {
	p.next()

	for p.got(TOK_IDENT) {
		var names []*Token
		for {
			names = append(names, p.assertAndNext(TOK_IDENT))

			if p.got(TOK_COMMA) {
				p.next()
			} else {
				break
			}
		}

		p.assertAndNext(TOK_COLON)
		typ := p.parseTypeRef()
		end := p.assertAndNext(TOK_SEMI)

		// every declaration owns its type reference
		for i, name := range names {
			declType := typ
			if i > 0 {
				declType = cloneTypeRef(typ)
			}

			decls.Append(ast.NewVarDecl(
				report.NewSpanOver(name.Span, end.Span),
				declType,
				ast.NewIdentifier(name.Span, name.Value),
			))
		}
	}
}

// primTypeTokens maps primitive type keywords to their value kind.
var primTypeTokens = map[int]types.ValueKind{
	TOK_INT:   types.ValInt,
	TOK_FLOAT: types.ValFloat,
	TOK_BOOL:  types.ValBool,
	TOK_CHAR:  types.ValChar,
}

// type_ref = 'int' | 'float' | 'bool' | 'char' | 'IDENT'
func (p *Parser) parseTypeRef() *ast.TypeRef {
	tok := p.tok

	if kind, ok := primTypeTokens[tok.Kind]; ok {
		p.next()
		return ast.NewPrimitiveTypeRef(tok.Span, kind)
	} else if tok.Kind == TOK_IDENT {
		p.next()
		return ast.NewNamedTypeRef(tok.Span, tok.Value)
	}

	p.reject()
	return nil
}

func cloneTypeRef(tr *ast.TypeRef) *ast.TypeRef {
	if tr.IsNamed() {
		return ast.NewNamedTypeRef(tr.Span(), tr.Name)
	}

	return ast.NewPrimitiveTypeRef(tr.Span(), tr.Prim)
}
