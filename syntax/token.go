package syntax

import "frascal/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.  For string and char literals, the quotes
	// are trimmed off and escape sequences are decoded.
	Value string

	// The text span over which the token exists.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	TOK_BEGIN = iota
	TOK_END
	TOK_VAR
	TOK_TYPE
	TOK_ARRAY
	TOK_MATRIX
	TOK_OF
	TOK_FUNC
	TOK_EXTERN

	TOK_IF
	TOK_THEN
	TOK_ELIF
	TOK_ELSE
	TOK_ENDIF
	TOK_FOR
	TOK_FROM
	TOK_TO
	TOK_DO
	TOK_ENDFOR
	TOK_WHILE
	TOK_ENDWHILE
	TOK_ENDDO
	TOK_RETURN
	TOK_PRINT

	TOK_INT
	TOK_FLOAT
	TOK_BOOL
	TOK_CHAR
	TOK_TRUE
	TOK_FALSE

	TOK_AND
	TOK_OR
	TOK_NOT
	TOK_DIV
	TOK_MOD

	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_SLASH

	TOK_EQ
	TOK_NEQ
	TOK_LT
	TOK_LTEQ
	TOK_GT
	TOK_GTEQ

	TOK_ASSIGN
	TOK_DEFINE

	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACKET
	TOK_RBRACKET
	TOK_COMMA
	TOK_SEMI
	TOK_COLON

	TOK_IDENT
	TOK_INTLIT
	TOK_FLOATLIT
	TOK_CHARLIT
	TOK_STRINGLIT

	TOK_EOF
)
