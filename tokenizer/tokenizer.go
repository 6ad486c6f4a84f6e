package tokenizer

import (
	"iter"
	"strings"
)

// TokenIterator uses Go 1.24 iterator pattern
type TokenIterator iter.Seq[Token]

// twoWordKeywords lists keywords that combine with a following word into a
// single token. The lexer peeks past whitespace after the first word; if the
// next word matches (case-insensitive), both are consumed as one keyword.
var twoWordKeywords = []struct {
	first    KeywordKind
	expected string
	combined KeywordKind
}{
	{ORDER, "BY", ORDER_BY},
	{GROUP, "BY", GROUP_BY},
	{LEFT, "JOIN", LEFT_JOIN},
	{RIGHT, "JOIN", RIGHT_JOIN},
	{INNER, "JOIN", INNER_JOIN},
	{OUTER, "JOIN", OUTER_JOIN},
	{CROSS, "JOIN", CROSS_JOIN},
	{UNION, "ALL", UNION_ALL},
	{PRIMARY, "KEY", PRIMARY_KEY},
	{FOREIGN, "KEY", FOREIGN_KEY},
	{ROWS, "BETWEEN", ROWS_BETWEEN},
	{RANGE, "BETWEEN", RANGE_BETWEEN},
}

var threeCharOps = []string{"->>"}
var twoCharOps = []string{"<>", "!=", "<=", ">=", "||", "::", "->"}

// SqlTokenizer is a tokenizer that returns an iterator
type SqlTokenizer struct {
	input string
}

// NewSqlTokenizer creates a new SqlTokenizer
func NewSqlTokenizer(input string) *SqlTokenizer {
	return &SqlTokenizer{input: input}
}

// Tokens returns an iterator of tokens. Tokenization never fails: malformed
// input (unterminated strings or comments, unknown bytes) still produces
// tokens, so the concatenation of all Raw fields reproduces the input.
func (t *SqlTokenizer) Tokens() TokenIterator {
	return func(yield func(Token) bool) {
		lex := &lexer{input: t.input}
		for {
			tok, ok := lex.nextToken()
			if !ok {
				return
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// AllTokens collects every token into a slice
func (t *SqlTokenizer) AllTokens() []Token {
	var tokens []Token
	for tok := range t.Tokens() {
		tokens = append(tokens, tok)
	}
	return tokens
}

// Tokenize is a convenience wrapper that tokenizes input in one call
func Tokenize(input string) []Token {
	return NewSqlTokenizer(input).AllTokens()
}

type lexer struct {
	input string
	pos   int
}

func (l *lexer) peek() (byte, bool) {
	if l.pos >= len(l.input) {
		return 0, false
	}
	return l.input[l.pos], true
}

func (l *lexer) peekAt(offset int) (byte, bool) {
	if l.pos+offset >= len(l.input) {
		return 0, false
	}
	return l.input[l.pos+offset], true
}

func (l *lexer) advance() {
	if l.pos < len(l.input) {
		l.pos++
	}
}

func isWhitespaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}

func isWordStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isWordByte(b byte) bool {
	return isWordStartByte(b) || isDigitByte(b)
}

func (l *lexer) nextToken() (Token, bool) {
	b, ok := l.peek()
	if !ok {
		return Token{}, false
	}

	switch {
	case isWhitespaceByte(b):
		return l.lexWhitespace(), true

	case b == '-' && l.peekIs(1, '-'):
		return l.lexLineComment(), true

	case b == '/' && l.peekIs(1, '*'):
		return l.lexBlockComment(), true

	case b == '\'':
		return l.lexStringLiteral(), true

	case b == '"':
		return l.lexQuotedIdentifier(), true

	case isDigitByte(b):
		return l.lexNumber(), true

	case b == '.' && l.peekIsDigit(1):
		return l.lexNumber(), true

	case b == ',' || b == ';' || b == '.' || b == '(' || b == ')':
		start := l.pos
		l.advance()
		raw := l.input[start:l.pos]
		var typ TokenType
		switch b {
		case ',':
			typ = COMMA
		case ';':
			typ = SEMICOLON
		case '.':
			typ = DOT
		case '(':
			typ = OPENED_PARENS
		default:
			typ = CLOSED_PARENS
		}
		return Token{Type: typ, Text: raw, Raw: raw}, true

	case b == '{' && l.peekIs(1, '{'):
		return l.lexTemplateVariable(), true

	case b == '{' || b == '}':
		start := l.pos
		l.advance()
		raw := l.input[start:l.pos]
		return Token{Type: OPERATOR, Text: raw, Raw: raw}, true

	case isOperatorStartByte(b):
		return l.lexOperator(), true

	case isWordStartByte(b):
		return l.lexWord(), true

	default:
		// Unknown byte: emit as single-char operator
		start := l.pos
		l.advance()
		raw := l.input[start:l.pos]
		return Token{Type: OPERATOR, Text: raw, Raw: raw}, true
	}
}

func isOperatorStartByte(b byte) bool {
	switch b {
	case '<', '>', '!', '=', '|', '+', '-', '*', '/', '%', '&', '^', '~', ':':
		return true
	}
	return false
}

func (l *lexer) peekIs(offset int, want byte) bool {
	b, ok := l.peekAt(offset)
	return ok && b == want
}

func (l *lexer) peekIsDigit(offset int) bool {
	b, ok := l.peekAt(offset)
	return ok && isDigitByte(b)
}

func (l *lexer) lexWhitespace() Token {
	start := l.pos
	for {
		b, ok := l.peek()
		if !ok || !isWhitespaceByte(b) {
			break
		}
		l.advance()
	}
	raw := l.input[start:l.pos]
	return Token{Type: WHITESPACE, Text: raw, Raw: raw}
}

func (l *lexer) lexLineComment() Token {
	start := l.pos
	l.advance() // -
	l.advance() // -
	textStart := l.pos
	for {
		b, ok := l.peek()
		if !ok || b == '\n' {
			break
		}
		l.advance()
	}
	return Token{Type: LINE_COMMENT, Text: l.input[textStart:l.pos], Raw: l.input[start:l.pos]}
}

func (l *lexer) lexBlockComment() Token {
	start := l.pos
	l.advance() // /
	l.advance() // *
	textStart := l.pos
	for {
		b, ok := l.peek()
		if !ok {
			// unclosed: consume to end
			return Token{Type: BLOCK_COMMENT, Text: l.input[textStart:l.pos], Raw: l.input[start:l.pos]}
		}
		if b == '*' && l.peekIs(1, '/') {
			textEnd := l.pos
			l.advance()
			l.advance()
			return Token{Type: BLOCK_COMMENT, Text: l.input[textStart:textEnd], Raw: l.input[start:l.pos]}
		}
		l.advance()
	}
}

func (l *lexer) lexStringLiteral() Token {
	start := l.pos
	l.advance() // opening quote
	textStart := l.pos
	for {
		b, ok := l.peek()
		if !ok {
			// unclosed: consume to end
			return Token{Type: STRING_LITERAL, Text: l.input[textStart:l.pos], Raw: l.input[start:l.pos]}
		}
		if b == '\'' {
			if l.peekIs(1, '\'') {
				// escaped quote stays in the content
				l.advance()
				l.advance()
				continue
			}
			textEnd := l.pos
			l.advance() // closing quote
			return Token{Type: STRING_LITERAL, Text: l.input[textStart:textEnd], Raw: l.input[start:l.pos]}
		}
		l.advance()
	}
}

func (l *lexer) lexQuotedIdentifier() Token {
	start := l.pos
	l.advance() // opening quote
	textStart := l.pos
	for {
		b, ok := l.peek()
		if !ok {
			// unclosed: consume to end
			return Token{Type: QUOTED_IDENTIFIER, Text: l.input[textStart:l.pos], Raw: l.input[start:l.pos]}
		}
		if b == '"' {
			textEnd := l.pos
			l.advance() // closing quote
			return Token{Type: QUOTED_IDENTIFIER, Text: l.input[textStart:textEnd], Raw: l.input[start:l.pos]}
		}
		l.advance()
	}
}

func (l *lexer) lexNumber() Token {
	start := l.pos
	for l.peekIsDigit(0) {
		l.advance()
	}
	if b, ok := l.peek(); ok && b == '.' && l.peekIsDigit(1) {
		l.advance()
		for l.peekIsDigit(0) {
			l.advance()
		}
	}
	raw := l.input[start:l.pos]
	return Token{Type: NUMBER_LITERAL, Text: raw, Raw: raw}
}

func (l *lexer) lexOperator() Token {
	remaining := l.input[l.pos:]
	for _, op := range threeCharOps {
		if len(remaining) >= 3 && remaining[:3] == op {
			start := l.pos
			l.pos += 3
			raw := l.input[start:l.pos]
			return Token{Type: OPERATOR, Text: raw, Raw: raw}
		}
	}
	for _, op := range twoCharOps {
		if len(remaining) >= 2 && remaining[:2] == op {
			start := l.pos
			l.pos += 2
			raw := l.input[start:l.pos]
			return Token{Type: OPERATOR, Text: raw, Raw: raw}
		}
	}
	start := l.pos
	l.advance()
	raw := l.input[start:l.pos]
	return Token{Type: OPERATOR, Text: raw, Raw: raw}
}

func (l *lexer) lexTemplateVariable() Token {
	braceStart := l.pos
	l.advance() // {
	l.advance() // {
	contentStart := l.pos
	for {
		b, ok := l.peek()
		if !ok {
			// unclosed: back up and emit the first '{' as an operator
			l.pos = braceStart + 1
			raw := l.input[braceStart:l.pos]
			return Token{Type: OPERATOR, Text: raw, Raw: raw}
		}
		if b == '}' && l.peekIs(1, '}') {
			contentEnd := l.pos
			l.advance()
			l.advance()
			return Token{Type: TEMPLATE_VARIABLE, Text: l.input[contentStart:contentEnd], Raw: l.input[braceStart:l.pos]}
		}
		l.advance()
	}
}

func (l *lexer) lexWord() Token {
	start := l.pos
	for {
		b, ok := l.peek()
		if !ok || !isWordByte(b) {
			break
		}
		l.advance()
	}
	word := l.input[start:l.pos]

	kind, ok := Lookup(word)
	if !ok {
		return Token{Type: IDENTIFIER, Text: word, Raw: word}
	}
	return l.tryCombineKeyword(kind, start)
}

// peekWordAfterWhitespace scans past whitespace from `from` for a word.
// Returns the word and the position just past it.
func (l *lexer) peekWordAfterWhitespace(from int) (string, int, bool) {
	p := from
	for p < len(l.input) && isWhitespaceByte(l.input[p]) {
		p++
	}
	if p >= len(l.input) || !isWordStartByte(l.input[p]) {
		return "", 0, false
	}
	wordStart := p
	for p < len(l.input) && isWordByte(l.input[p]) {
		p++
	}
	return l.input[wordStart:p], p, true
}

func (l *lexer) tryCombineKeyword(kind KeywordKind, start int) Token {
	for _, entry := range twoWordKeywords {
		if kind == entry.first {
			return l.tryTwoWord(kind, entry.expected, entry.combined, start)
		}
	}
	switch kind {
	case FULL:
		// FULL JOIN and FULL OUTER JOIN both combine to FULL_JOIN
		return l.tryThreeWord(kind, "JOIN", FULL_JOIN, "OUTER", "JOIN", FULL_JOIN, start)
	case IF:
		return l.tryThreeWord(kind, "EXISTS", IF_EXISTS, "NOT", "EXISTS", IF_NOT_EXISTS, start)
	}
	return l.keywordToken(kind, start)
}

func (l *lexer) tryTwoWord(standalone KeywordKind, expected string, combined KeywordKind, start int) Token {
	if word, wordEnd, ok := l.peekWordAfterWhitespace(l.pos); ok && strings.EqualFold(word, expected) {
		l.pos = wordEnd
		return l.keywordToken(combined, start)
	}
	return l.keywordToken(standalone, start)
}

func (l *lexer) tryThreeWord(standalone KeywordKind, directWord string, directCombined KeywordKind,
	middleWord, finalWord string, fullCombined KeywordKind, start int) Token {
	if word, wordEnd, ok := l.peekWordAfterWhitespace(l.pos); ok {
		if strings.EqualFold(word, directWord) {
			l.pos = wordEnd
			return l.keywordToken(directCombined, start)
		}
		if strings.EqualFold(word, middleWord) {
			if word2, wordEnd2, ok2 := l.peekWordAfterWhitespace(wordEnd); ok2 && strings.EqualFold(word2, finalWord) {
				l.pos = wordEnd2
				return l.keywordToken(fullCombined, start)
			}
		}
	}
	return l.keywordToken(standalone, start)
}

func (l *lexer) keywordToken(kind KeywordKind, start int) Token {
	raw := l.input[start:l.pos]
	return Token{Type: KEYWORD, Keyword: kind, Text: raw, Raw: raw}
}

