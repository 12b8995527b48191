package syntax

import (
	"bufio"
	"frascal/report"
	"io"
	"strings"
)

// Lexer is responsible for tokenizing a source file.
type Lexer struct {
	file    *bufio.Reader
	tokBuff *strings.Builder

	line, col           int
	startLine, startCol int
}

// NewLexer creates a new lexer reading from r.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		file:    bufio.NewReader(r),
		tokBuff: &strings.Builder{},
	}
}

// NextToken retrieves the next token from the input. If the input has ended,
// this will be an EOF token.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if c == -1 {
			break
		}

		switch c {
		case '\n', '\t', ' ', '\r', '\v', '\f':
			l.skip()
		case '/':
			if tok, err := l.lexCommentOrSlash(); tok != nil || err != nil {
				return tok, err
			}
		case '\'':
			return l.lexCharLit()
		case '"':
			return l.lexStringLit()
		default:
			if isDecimalDigit(c) {
				return l.lexNumericLit()
			} else if isFirstIdentChar(c) {
				return l.lexIdentOrKeyword()
			} else {
				return l.lexPunctOrOper()
			}
		}
	}

	l.mark()
	return l.makeToken(TOK_EOF), nil
}

// -----------------------------------------------------------------------------

// symbolPatterns maps symbol strings to their punctuation/operator token kind.
var symbolPatterns = map[string]int{
	"+": TOK_PLUS,
	"-": TOK_MINUS,
	"*": TOK_STAR,
	// `/` is handled with comment logic.

	"==": TOK_EQ,
	"!=": TOK_NEQ,
	"<":  TOK_LT,
	"<=": TOK_LTEQ,
	">":  TOK_GT,
	">=": TOK_GTEQ,

	"=":  TOK_DEFINE,
	":=": TOK_ASSIGN,

	"(": TOK_LPAREN,
	")": TOK_RPAREN,
	"[": TOK_LBRACKET,
	"]": TOK_RBRACKET,
	",": TOK_COMMA,
	";": TOK_SEMI,
	":": TOK_COLON,
}

// lexPunctOrOper lexes a punctuation or operator symbol using maximal munch.
func (l *Lexer) lexPunctOrOper() (*Token, error) {
	l.mark()
	l.eat()

	kind, ok := symbolPatterns[l.tokBuff.String()]

	c, err := l.peek()
	if err != nil {
		return nil, err
	}

	if c != -1 {
		if longKind, ok := symbolPatterns[l.tokBuff.String()+string(c)]; ok {
			l.eat()
			return l.makeToken(longKind), nil
		}
	}

	if !ok {
		return nil, report.Raise(l.getSpan(), "unexpected character `%s`", l.tokBuff.String())
	}

	return l.makeToken(kind), nil
}

// lexCommentOrSlash lexes a line comment or the `/` operator.  It returns a nil
// token for comments.
func (l *Lexer) lexCommentOrSlash() (*Token, error) {
	l.mark()
	l.eat()

	c, err := l.peek()
	if err != nil {
		return nil, err
	}

	if c != '/' {
		return l.makeToken(TOK_SLASH), nil
	}

	for c != '\n' && c != -1 {
		l.skip()

		if c, err = l.peek(); err != nil {
			return nil, err
		}
	}

	l.tokBuff.Reset()
	return nil, nil
}

// -----------------------------------------------------------------------------

// keywordPatterns maps keywords to their token kind.
var keywordPatterns = map[string]int{
	"begin":  TOK_BEGIN,
	"end":    TOK_END,
	"var":    TOK_VAR,
	"type":   TOK_TYPE,
	"array":  TOK_ARRAY,
	"matrix": TOK_MATRIX,
	"of":     TOK_OF,
	"func":   TOK_FUNC,
	"extern": TOK_EXTERN,

	"if":       TOK_IF,
	"then":     TOK_THEN,
	"elif":     TOK_ELIF,
	"else":     TOK_ELSE,
	"endif":    TOK_ENDIF,
	"for":      TOK_FOR,
	"from":     TOK_FROM,
	"to":       TOK_TO,
	"do":       TOK_DO,
	"endfor":   TOK_ENDFOR,
	"while":    TOK_WHILE,
	"endwhile": TOK_ENDWHILE,
	"enddo":    TOK_ENDDO,
	"return":   TOK_RETURN,
	"print":    TOK_PRINT,

	"int":   TOK_INT,
	"float": TOK_FLOAT,
	"bool":  TOK_BOOL,
	"char":  TOK_CHAR,
	"true":  TOK_TRUE,
	"false": TOK_FALSE,

	"and": TOK_AND,
	"or":  TOK_OR,
	"not": TOK_NOT,
	"div": TOK_DIV,
	"mod": TOK_MOD,
}

// lexIdentOrKeyword lexes an identifier or a keyword.
func (l *Lexer) lexIdentOrKeyword() (*Token, error) {
	l.mark()
	l.eat()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if !isFirstIdentChar(c) && !isDecimalDigit(c) {
			break
		}

		l.eat()
	}

	if kind, ok := keywordPatterns[l.tokBuff.String()]; ok {
		return l.makeToken(kind), nil
	}

	return l.makeToken(TOK_IDENT), nil
}

// lexNumericLit lexes a decimal int or float literal.
func (l *Lexer) lexNumericLit() (*Token, error) {
	l.mark()
	l.eat()

	isFloat := false
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		if isDecimalDigit(c) {
			l.eat()
		} else if c == '.' && !isFloat {
			l.eat()
			isFloat = true

			if c, err = l.peek(); err != nil {
				return nil, err
			} else if !isDecimalDigit(c) {
				return nil, report.Raise(l.getSpan(), "incomplete float literal")
			}
		} else {
			break
		}
	}

	if isFloat {
		return l.makeToken(TOK_FLOATLIT), nil
	}

	return l.makeToken(TOK_INTLIT), nil
}

// -----------------------------------------------------------------------------

// lexCharLit lexes a char literal: a single byte between single quotes.
func (l *Lexer) lexCharLit() (*Token, error) {
	l.mark()
	l.skip()

	c, err := l.readLitRune('\'')
	if err != nil {
		return nil, err
	} else if c == -1 {
		return nil, report.Raise(l.getSpan(), "empty char literal")
	}

	if c, err = l.peek(); err != nil {
		return nil, err
	} else if c != '\'' {
		return nil, report.Raise(l.getSpan(), "unclosed char literal")
	}
	l.skip()

	if len(l.tokBuff.String()) != 1 {
		return nil, report.Raise(l.getSpan(), "char literals must hold a single byte")
	}

	return l.makeToken(TOK_CHARLIT), nil
}

// lexStringLit lexes a string literal.
func (l *Lexer) lexStringLit() (*Token, error) {
	l.mark()
	l.skip()

	for {
		c, err := l.readLitRune('"')
		if err != nil {
			return nil, err
		} else if c == -1 {
			break
		}
	}

	l.skip()
	return l.makeToken(TOK_STRINGLIT), nil
}

// readLitRune reads one, possibly escaped, rune of a literal into the token
// buffer.  It returns -1 without consuming anything when it reaches the closing
// quote.
func (l *Lexer) readLitRune(quote rune) (rune, error) {
	c, err := l.peek()
	if err != nil {
		return 0, err
	}

	switch c {
	case quote:
		return -1, nil
	case '\n', -1:
		return 0, report.Raise(l.getSpan(), "unclosed literal")
	case '\\':
		l.skip()

		c, err = l.peek()
		if err != nil {
			return 0, err
		}

		esc, ok := escapeCodes[c]
		if !ok {
			return 0, report.Raise(l.getSpan(), "unknown escape sequence")
		}

		l.skip()
		l.tokBuff.WriteRune(esc)
		return esc, nil
	}

	l.eat()
	return c, nil
}

var escapeCodes = map[rune]rune{
	'n':  '\n',
	't':  '\t',
	'0':  0,
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
}

// -----------------------------------------------------------------------------

// mark marks the beginning of a token.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
}

// getSpan returns the span from the marked position to the last character
// read.
func (l *Lexer) getSpan() *report.TextSpan {
	endCol := l.col - 1
	if endCol < l.startCol && l.line == l.startLine {
		endCol = l.startCol
	}

	return &report.TextSpan{
		StartLine: l.startLine,
		StartCol:  l.startCol,
		EndLine:   l.line,
		EndCol:    endCol,
	}
}

// makeToken creates a token of kind from the token buffer and clears it.
func (l *Lexer) makeToken(kind int) *Token {
	tok := &Token{Kind: kind, Value: l.tokBuff.String(), Span: l.getSpan()}
	l.tokBuff.Reset()
	return tok
}

// peek returns the next rune without consuming it.  It returns -1 at the end
// of the input.
func (l *Lexer) peek() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err == io.EOF {
		return -1, nil
	} else if err != nil {
		return 0, err
	}

	return c, l.file.UnreadRune()
}

// read consumes the next rune and updates the position.
func (l *Lexer) read() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err == io.EOF {
		return -1, nil
	} else if err != nil {
		return 0, err
	}

	if c == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}

	return c, nil
}

// eat consumes the next rune and adds it to the token buffer.
func (l *Lexer) eat() (rune, error) {
	c, err := l.read()
	if err == nil && c != -1 {
		l.tokBuff.WriteRune(c)
	}

	return c, err
}

// skip consumes the next rune without adding it to the token buffer.
func (l *Lexer) skip() error {
	_, err := l.read()
	return err
}

func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isFirstIdentChar(c rune) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
