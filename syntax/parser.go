package syntax

import (
	"frascal/ast"
	"frascal/report"
	"io"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// Parser is a recursive descent parser producing the AST of a program.  All
// parsing functions assume that they begin with the parser on the first token
// of their production and must consume all tokens of their production, leaving
// the parser on the next token.  Syntax errors are thrown as compile errors.
type Parser struct {
	// lexer is the Lexer this parser is using to lex the source.
	lexer *Lexer

	// tok is the current token the parser is positioned on.
	tok *Token
}

// NewParser creates a new parser reading source text from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{lexer: NewLexer(r)}
}

// Parse parses a complete program from r.
func Parse(r io.Reader) (prog *ast.Program, err error) {
	defer report.CatchErrors(&err)

	p := NewParser(r)
	p.next()
	return p.parseProgram(), nil
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.
func (p *Parser) next() {
	tok, err := p.lexer.NextToken()
	if err != nil {
		if cerr, ok := err.(*report.CompileError); ok {
			panic(cerr)
		}

		panic(report.Raise(p.span(), "failed to read source: %s", err))
	}

	p.tok = tok
}

// span returns the span of the current token or nil before the first token.
func (p *Parser) span() *report.TextSpan {
	if p.tok == nil {
		return nil
	}

	return p.tok.Span
}

// got returns true if the parser is on a token of a given kind.
func (p *Parser) got(kind int) bool {
	return p.tok.Kind == kind
}

// gotOneOf returns if the parser's current token kind is one of given kinds.
func (p *Parser) gotOneOf(kinds ...int) bool {
	for _, kind := range kinds {
		if p.tok.Kind == kind {
			return true
		}
	}

	return false
}

// assert rejects the current token if it is not of the given kind.
func (p *Parser) assert(kind int) {
	if !p.got(kind) {
		p.reject()
	}
}

// assertAndNext asserts the current token kind, moves the parser forward and
// returns the asserted token.
func (p *Parser) assertAndNext(kind int) *Token {
	p.assert(kind)
	tok := p.tok
	p.next()
	return tok
}

// want moves the parser forward one token and asserts the kind of the token it
// has moved to.
func (p *Parser) want(kind int) {
	p.next()
	p.assert(kind)
}

// reject throws an unexpected token error on the current token.
func (p *Parser) reject() {
	if p.got(TOK_EOF) {
		panic(report.Raise(p.tok.Span, "unexpected end of file"))
	}

	panic(report.Raise(p.tok.Span, "unexpected token: `%s`", p.tok.Value))
}
