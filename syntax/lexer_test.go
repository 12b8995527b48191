package syntax

import (
	"frascal/report"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func lexAll(t *testing.T, src string) []*Token {
	t.Helper()

	l := NewLexer(strings.NewReader(src))
	var toks []*Token
	for {
		tok, err := l.NextToken()
		be.Err(t, err, nil)

		toks = append(toks, tok)
		if tok.Kind == TOK_EOF {
			return toks
		}
	}
}

func kinds(toks []*Token) []int {
	var ks []int
	for _, tok := range toks {
		ks = append(ks, tok.Kind)
	}

	return ks
}

func TestLexKeywordsAndIdents(t *testing.T) {
	toks := lexAll(t, "if x_1 then endif enddo ifx")

	be.Equal(t, kinds(toks), []int{TOK_IF, TOK_IDENT, TOK_THEN, TOK_ENDIF, TOK_ENDDO, TOK_IDENT, TOK_EOF})
	be.Equal(t, toks[1].Value, "x_1")
	be.Equal(t, toks[5].Value, "ifx")
}

func TestLexOperators(t *testing.T) {
	toks := lexAll(t, "a := b <= c == d != e >= f < g > h = + - * / div mod")

	be.Equal(t, kinds(toks), []int{
		TOK_IDENT, TOK_ASSIGN, TOK_IDENT, TOK_LTEQ, TOK_IDENT, TOK_EQ, TOK_IDENT,
		TOK_NEQ, TOK_IDENT, TOK_GTEQ, TOK_IDENT, TOK_LT, TOK_IDENT, TOK_GT,
		TOK_IDENT, TOK_DEFINE, TOK_PLUS, TOK_MINUS, TOK_STAR, TOK_SLASH, TOK_DIV,
		TOK_MOD, TOK_EOF,
	})
}

func TestLexLiterals(t *testing.T) {
	toks := lexAll(t, `42 3.25 'a' '\n' "hi \"there\""`)

	be.Equal(t, kinds(toks), []int{TOK_INTLIT, TOK_FLOATLIT, TOK_CHARLIT, TOK_CHARLIT, TOK_STRINGLIT, TOK_EOF})
	be.Equal(t, toks[0].Value, "42")
	be.Equal(t, toks[1].Value, "3.25")
	be.Equal(t, toks[2].Value, "a")
	be.Equal(t, toks[3].Value, "\n")
	be.Equal(t, toks[4].Value, `hi "there"`)
}

func TestLexComments(t *testing.T) {
	toks := lexAll(t, "a // comment := \n/ b")

	be.Equal(t, kinds(toks), []int{TOK_IDENT, TOK_SLASH, TOK_IDENT, TOK_EOF})
}

func TestLexSpans(t *testing.T) {
	toks := lexAll(t, "begin\n  x := 10;")

	be.Equal(t, *toks[1].Span, report.TextSpan{StartLine: 1, StartCol: 2, EndLine: 1, EndCol: 2})
	be.Equal(t, *toks[3].Span, report.TextSpan{StartLine: 1, StartCol: 7, EndLine: 1, EndCol: 8})
}

func TestLexErrors(t *testing.T) {
	for _, src := range []string{"@", "'ab'", "''", `"open`, "1.", `'\q'`} {
		l := NewLexer(strings.NewReader(src))

		_, err := l.NextToken()
		be.Err(t, err)

		_, ok := report.AsCompileError(err)
		be.True(t, ok)
	}
}
