package formatter

import (
	"strings"

	"github.com/takeokunn/sqlindent/tokenizer"
)

// Style selects one of the built-in layout styles.
type Style string

const (
	StyleBasic   Style = "basic"
	StyleCompact Style = "compact"
	StyleAligned Style = "aligned"
	StyleDataops Style = "dataops"
)

// StyleFromName resolves a style name. Unknown names fall back to basic so
// that formatting itself can never fail; callers that want to reject bad
// names validate before calling.
func StyleFromName(name string) Style {
	switch name {
	case "compact":
		return StyleCompact
	case "aligned":
		return StyleAligned
	case "dataops":
		return StyleDataops
	default:
		return StyleBasic
	}
}

func (s Style) String() string {
	return string(s)
}

// Options control keyword casing and layout style for one format call.
type Options struct {
	Uppercase bool
	Style     Style
}

// DefaultOptions returns uppercase keywords with the basic block style
func DefaultOptions() Options {
	return Options{
		Uppercase: true,
		Style:     StyleBasic,
	}
}

// clauseContext tracks which clause the engine is currently laying out.
// Comma placement and DDL paren handling depend on it.
type clauseContext int

const (
	clauseNone clauseContext = iota
	clauseSelect
	clauseFrom
	clauseWhere
	clauseSet
	clauseValues
	clauseHaving
	clauseGroupBy
	clauseOrderBy
	clauseJoin
	clauseDDL
	clauseCTE
	clauseOther
)

func isSingleValueClause(kw tokenizer.KeywordKind) bool {
	return kw == tokenizer.LIMIT || kw == tokenizer.OFFSET
}

func clauseFromKeyword(kw tokenizer.KeywordKind) clauseContext {
	switch kw {
	case tokenizer.SELECT:
		return clauseSelect
	case tokenizer.FROM:
		return clauseFrom
	case tokenizer.WHERE:
		return clauseWhere
	case tokenizer.SET:
		return clauseSet
	case tokenizer.VALUES:
		return clauseValues
	case tokenizer.HAVING:
		return clauseHaving
	default:
		return clauseOther
	}
}

func isTightOperator(tok tokenizer.Token) bool {
	if tok.Type != tokenizer.OPERATOR {
		return false
	}
	return tok.Text == "::" || tok.Text == "->" || tok.Text == "->>"
}

// needsSpaceBefore decides whether a single space separates tok from the
// previously emitted token.
func needsSpaceBefore(tok tokenizer.Token, prev *tokenizer.Token) bool {
	if prev == nil {
		return false
	}
	if isTightOperator(tok) || isTightOperator(*prev) {
		return false
	}
	if prev.Type == tokenizer.OPENED_PARENS || prev.Type == tokenizer.DOT {
		return false
	}
	switch tok.Type {
	case tokenizer.CLOSED_PARENS, tokenizer.DOT, tokenizer.COMMA, tokenizer.SEMICOLON:
		return false
	}
	return true
}

// core holds the state every layout engine shares: paren bookkeeping,
// clause tracking, and the output buffer.
type core struct {
	opts          Options
	parenDepth    int
	subqueryParen []bool
	inlineParens  int
	clause        clauseContext
	firstToken    bool
	afterDDLStart bool
	out           strings.Builder
}

func newCore(opts Options) core {
	return core{
		opts:       opts,
		clause:     clauseNone,
		firstToken: true,
	}
}

func (c *core) isInline() bool {
	return c.inlineParens > 0
}

// baseIndent is the number of enclosing subquery parens, which sets the
// indentation baseline for the current statement fragment.
func (c *core) baseIndent() int {
	n := 0
	for _, sub := range c.subqueryParen {
		if sub {
			n++
		}
	}
	return n
}

func (c *core) keywordStr(kw tokenizer.KeywordKind) string {
	if c.opts.Uppercase {
		return kw.String()
	}
	return strings.ToLower(kw.String())
}

// engine is the per-style layout strategy driven by run
type engine interface {
	core() *core

	formatKeyword(kw tokenizer.KeywordKind, prev *tokenizer.Token)
	formatComma()
	formatOpenParen(filtered []tokenizer.Token, idx int, prev *tokenizer.Token)
	formatCloseParen()
	formatSemicolon()
	formatValue(text string, prev *tokenizer.Token, tok tokenizer.Token)

	onComment()
	onDot()

	finalize() string
}

// run drives an engine over the token stream. Whitespace tokens are
// dropped; comments and dots are emitted here so engines only see the
// structural events they care about.
func run(e engine, tokens []tokenizer.Token) string {
	c := e.core()

	filtered := make([]tokenizer.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type != tokenizer.WHITESPACE {
			filtered = append(filtered, tok)
		}
	}

	var prev *tokenizer.Token
	for i := range filtered {
		tok := filtered[i]

		switch tok.Type {
		case tokenizer.KEYWORD:
			if prev != nil && prev.Type == tokenizer.DOT {
				// a keyword after a dot is really a column name
				e.formatValue(strings.ToLower(tok.Keyword.String()), prev, tok)
			} else {
				e.formatKeyword(tok.Keyword, prev)
			}
		case tokenizer.COMMA:
			e.formatComma()
		case tokenizer.OPENED_PARENS:
			e.formatOpenParen(filtered, i, prev)
		case tokenizer.CLOSED_PARENS:
			e.formatCloseParen()
		case tokenizer.SEMICOLON:
			e.formatSemicolon()
		case tokenizer.LINE_COMMENT:
			if !c.firstToken {
				c.out.WriteByte(' ')
			}
			c.out.WriteString("--")
			c.out.WriteString(tok.Text)
			c.firstToken = false
			e.onComment()
		case tokenizer.BLOCK_COMMENT:
			if !c.firstToken && needsSpaceBefore(tok, prev) {
				c.out.WriteByte(' ')
			}
			c.out.WriteString("/*")
			c.out.WriteString(tok.Text)
			c.out.WriteString("*/")
			c.firstToken = false
			e.onComment()
		case tokenizer.DOT:
			c.out.WriteByte('.')
			c.firstToken = false
			e.onDot()
		case tokenizer.IDENTIFIER:
			e.formatValue(tok.Text, prev, tok)
		case tokenizer.QUOTED_IDENTIFIER:
			e.formatValue("\""+tok.Text+"\"", prev, tok)
		case tokenizer.STRING_LITERAL:
			e.formatValue("'"+tok.Text+"'", prev, tok)
		case tokenizer.NUMBER_LITERAL:
			e.formatValue(tok.Text, prev, tok)
		case tokenizer.OPERATOR:
			e.formatValue(tok.Text, prev, tok)
		case tokenizer.TEMPLATE_VARIABLE:
			e.formatValue("{{"+tok.Text+"}}", prev, tok)
		}

		prev = &filtered[i]
	}

	return e.finalize()
}

// Format tokenizes src and lays it out according to opts
func Format(src string, opts Options) string {
	return FormatTokens(tokenizer.Tokenize(src), opts)
}

// FormatTokens lays out an already-tokenized statement sequence
func FormatTokens(tokens []tokenizer.Token, opts Options) string {
	if len(tokens) == 0 {
		return ""
	}

	var e engine
	switch opts.Style {
	case StyleAligned:
		e = newAlignedEngine(opts)
	case StyleDataops:
		e = newBlockEngine(opts, dataopsPolicy)
	case StyleCompact:
		e = newBlockEngine(opts, compactPolicy)
	default:
		e = newBlockEngine(opts, basicPolicy)
	}
	return run(e, tokens)
}
