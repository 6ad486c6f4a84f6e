package tokenizer

// TokenType represents the lexical class of a token
type TokenType int

const (
	KEYWORD TokenType = iota
	IDENTIFIER
	QUOTED_IDENTIFIER // "double-quoted"
	STRING_LITERAL    // 'single-quoted'
	NUMBER_LITERAL
	OPERATOR
	COMMA         // ,
	SEMICOLON     // ;
	DOT           // .
	OPENED_PARENS // (
	CLOSED_PARENS // )
	LINE_COMMENT  // -- line comment
	BLOCK_COMMENT // /* block comment */
	WHITESPACE
	TEMPLATE_VARIABLE // {{...}}
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case KEYWORD:
		return "KEYWORD"
	case IDENTIFIER:
		return "IDENTIFIER"
	case QUOTED_IDENTIFIER:
		return "QUOTED_IDENTIFIER"
	case STRING_LITERAL:
		return "STRING_LITERAL"
	case NUMBER_LITERAL:
		return "NUMBER_LITERAL"
	case OPERATOR:
		return "OPERATOR"
	case COMMA:
		return "COMMA"
	case SEMICOLON:
		return "SEMICOLON"
	case DOT:
		return "DOT"
	case OPENED_PARENS:
		return "OPENED_PARENS"
	case CLOSED_PARENS:
		return "CLOSED_PARENS"
	case LINE_COMMENT:
		return "LINE_COMMENT"
	case BLOCK_COMMENT:
		return "BLOCK_COMMENT"
	case WHITESPACE:
		return "WHITESPACE"
	case TEMPLATE_VARIABLE:
		return "TEMPLATE_VARIABLE"
	default:
		return "UNKNOWN"
	}
}

// Token represents a single lexical token. Text holds the delimiter-free
// content (comment body, string content, identifier name), Raw the exact
// source span including delimiters. Both are zero-copy views into the
// input, so concatenating Raw over a token sequence reconstructs the
// input byte-for-byte.
type Token struct {
	Type    TokenType
	Keyword KeywordKind // set only when Type == KEYWORD
	Text    string
	Raw     string
}

// String returns the string representation of Token
func (t Token) String() string {
	if t.Type == KEYWORD {
		return t.Type.String() + "(" + t.Keyword.String() + ")"
	}
	return t.Type.String() + ": " + t.Text
}
