package formatter

import (
	"strings"
	"unicode"

	"github.com/takeokunn/sqlindent/tokenizer"
)

// blockPolicy is the per-style parameterization of the block-indented
// engine: indent unit and comma placement.
type blockPolicy struct {
	indent        string
	leadingCommas bool
}

var (
	basicPolicy   = blockPolicy{indent: "    "}
	compactPolicy = blockPolicy{indent: "  "}
	dataopsPolicy = blockPolicy{indent: "    ", leadingCommas: true}
)

// pendingDirective records what a clause keyword scheduled for the token
// that follows it. At most one directive is pending at a time.
type pendingDirective int

const (
	pendingNone        pendingDirective = iota
	pendingIndentBreak                  // break to a fresh indented line
	pendingSameLine                     // stay on the line, separated by one space
	pendingAfterComma                   // comma break already emitted, no separator needed
)

// blockEngine renders every clause keyword on its own line with the clause
// body indented below it.
type blockEngine struct {
	state       core
	policy      blockPolicy
	indentDepth int
	pending     pendingDirective
}

func newBlockEngine(opts Options, policy blockPolicy) *blockEngine {
	return &blockEngine{
		state:  newCore(opts),
		policy: policy,
	}
}

func (e *blockEngine) core() *core {
	return &e.state
}

func (e *blockEngine) writeIndent(depth int) {
	for range depth {
		e.state.out.WriteString(e.policy.indent)
	}
}

func (e *blockEngine) writeNewlineAt(depth int) {
	e.state.out.WriteByte('\n')
	e.writeIndent(depth)
}

func (e *blockEngine) tryEmitInline(kw tokenizer.KeywordKind, kwStr string, prev *tokenizer.Token) bool {
	if !e.state.isInline() {
		return false
	}
	if needsSpaceBefore(tokenizer.Token{Type: tokenizer.KEYWORD, Keyword: kw}, prev) {
		e.state.out.WriteByte(' ')
	}
	e.state.out.WriteString(kwStr)
	e.state.firstToken = false
	return true
}

// emitClauseContent places text according to the directive left behind by
// the preceding clause keyword. Returns false when nothing was pending.
func (e *blockEngine) emitClauseContent(text string) bool {
	switch e.pending {
	case pendingIndentBreak:
		e.pending = pendingNone
		e.writeNewlineAt(e.indentDepth)
		e.state.out.WriteString(text)
		return true
	case pendingSameLine:
		e.pending = pendingNone
		e.state.out.WriteByte(' ')
		e.state.out.WriteString(text)
		return true
	}
	return false
}

func (e *blockEngine) formatKeyword(kw tokenizer.KeywordKind, prev *tokenizer.Token) {
	kwStr := e.state.keywordStr(kw)

	switch {
	case kw.IsDDLStarter():
		e.formatDDLKeyword(kwStr)
	case kw.IsClauseStarter():
		e.formatClauseStarter(kw, kwStr, prev)
	case kw.IsJoinKeyword():
		e.formatJoinKeyword(kwStr, prev)
	case kw.IsOrderModifier():
		e.formatOrderModifier(kw, kwStr, prev)
	case kw.IsSubClause():
		e.formatSubClauseKeyword(kw, kwStr, prev)
	default:
		e.formatOtherKeyword(kw, kwStr, prev)
	}
}

func (e *blockEngine) formatDDLKeyword(kwStr string) {
	e.pending = pendingNone

	if !e.state.firstToken {
		e.writeNewlineAt(e.state.baseIndent())
	}
	e.state.out.WriteString(kwStr)
	e.state.firstToken = false
	e.state.afterDDLStart = true
	e.state.clause = clauseDDL
	e.indentDepth = e.state.baseIndent() + 1
}

func (e *blockEngine) formatClauseStarter(kw tokenizer.KeywordKind, kwStr string, prev *tokenizer.Token) {
	if e.tryEmitInline(kw, kwStr, prev) {
		e.pending = pendingNone
		return
	}

	e.pending = pendingNone
	base := e.state.baseIndent()

	if !e.state.firstToken {
		e.writeNewlineAt(base)
	}
	e.state.out.WriteString(kwStr)
	e.state.firstToken = false
	e.state.afterDDLStart = false
	e.state.clause = clauseFromKeyword(kw)
	e.indentDepth = base + 1

	if isSingleValueClause(kw) {
		e.pending = pendingSameLine
	} else {
		e.pending = pendingIndentBreak
	}
}

func (e *blockEngine) formatJoinKeyword(kwStr string, prev *tokenizer.Token) {
	if e.tryEmitInline(tokenizer.JOIN, kwStr, prev) {
		return
	}

	e.pending = pendingNone
	base := e.state.baseIndent()

	if !e.state.firstToken {
		e.writeNewlineAt(base)
	}
	e.state.out.WriteString(kwStr)
	e.state.firstToken = false
	e.state.clause = clauseJoin
	e.indentDepth = base + 1
	e.state.afterDDLStart = false
	e.pending = pendingSameLine
}

func (e *blockEngine) formatOrderModifier(kw tokenizer.KeywordKind, kwStr string, prev *tokenizer.Token) {
	if e.tryEmitInline(kw, kwStr, prev) {
		return
	}

	e.pending = pendingNone
	base := e.state.baseIndent()

	if !e.state.firstToken {
		e.writeNewlineAt(base)
	}
	e.state.out.WriteString(kwStr)
	e.state.firstToken = false
	e.indentDepth = base + 1
	e.state.afterDDLStart = false

	if kw == tokenizer.GROUP_BY {
		e.state.clause = clauseGroupBy
	} else if kw == tokenizer.ORDER_BY {
		e.state.clause = clauseOrderBy
	}

	e.pending = pendingIndentBreak
}

func (e *blockEngine) formatSubClauseKeyword(kw tokenizer.KeywordKind, kwStr string, prev *tokenizer.Token) {
	if e.tryEmitInline(kw, kwStr, prev) {
		return
	}

	e.pending = pendingNone
	base := e.state.baseIndent()
	e.writeNewlineAt(base + 1)
	e.state.out.WriteString(kwStr)
	e.state.firstToken = false
	e.indentDepth = base + 1
}

func (e *blockEngine) formatOtherKeyword(kw tokenizer.KeywordKind, kwStr string, prev *tokenizer.Token) {
	if e.tryEmitInline(kw, kwStr, prev) {
		return
	}

	if e.state.afterDDLStart {
		// CREATE TABLE, DROP INDEX, ... stay on one line
		e.state.out.WriteByte(' ')
		e.state.out.WriteString(kwStr)
		e.state.firstToken = false
		e.state.afterDDLStart = false
		e.pending = pendingNone
		return
	}

	if e.emitClauseContent(kwStr) {
		e.state.firstToken = false
		return
	}

	if e.pending == pendingAfterComma {
		e.pending = pendingNone
		e.state.out.WriteString(kwStr)
		e.state.firstToken = false
		return
	}

	if needsSpaceBefore(tokenizer.Token{Type: tokenizer.KEYWORD, Keyword: kw}, prev) {
		e.state.out.WriteByte(' ')
	}
	e.state.out.WriteString(kwStr)
	e.state.firstToken = false
}

func (e *blockEngine) formatComma() {
	e.pending = pendingNone

	if e.state.isInline() {
		e.state.out.WriteByte(',')
		e.state.firstToken = false
		return
	}

	switch e.state.clause {
	case clauseSelect, clauseGroupBy, clauseOrderBy, clauseSet, clauseDDL:
		if e.policy.leadingCommas {
			e.writeNewlineAt(e.indentDepth)
			e.state.out.WriteString(", ")
		} else {
			e.state.out.WriteByte(',')
			e.writeNewlineAt(e.indentDepth)
		}
		e.state.firstToken = false
		e.pending = pendingAfterComma
	default:
		e.state.out.WriteByte(',')
		e.state.firstToken = false
	}
}

func (e *blockEngine) formatOpenParen(filtered []tokenizer.Token, idx int, prev *tokenizer.Token) {
	isSubquery := idx+1 < len(filtered) &&
		filtered[idx+1].Type == tokenizer.KEYWORD &&
		filtered[idx+1].Keyword.IsClauseStarter()

	if e.pending == pendingIndentBreak {
		e.writeNewlineAt(e.indentDepth)
	}
	e.pending = pendingNone

	openParen := tokenizer.Token{Type: tokenizer.OPENED_PARENS}

	switch {
	case isSubquery:
		e.state.parenDepth++
		e.state.subqueryParen = append(e.state.subqueryParen, true)
		e.indentDepth = e.state.baseIndent()

		if needsSpaceBefore(openParen, prev) {
			e.state.out.WriteByte(' ')
		}
		e.state.out.WriteByte('(')
		e.state.firstToken = false

	case e.state.clause == clauseDDL && e.state.parenDepth == e.state.baseIndent():
		// column-list paren of a CREATE TABLE and friends
		e.state.parenDepth++
		e.state.subqueryParen = append(e.state.subqueryParen, false)

		if needsSpaceBefore(openParen, prev) {
			e.state.out.WriteByte(' ')
		}
		e.state.out.WriteByte('(')
		e.writeNewlineAt(e.indentDepth)
		e.state.firstToken = false

	default:
		e.state.parenDepth++
		e.state.subqueryParen = append(e.state.subqueryParen, false)
		e.state.inlineParens++

		// function calls hug their name: count(*), varchar(255)
		if prev == nil || prev.Type != tokenizer.IDENTIFIER {
			if needsSpaceBefore(openParen, prev) {
				e.state.out.WriteByte(' ')
			}
		}
		e.state.out.WriteByte('(')
		e.state.firstToken = false
	}
}

func (e *blockEngine) formatCloseParen() {
	e.pending = pendingNone

	if e.state.parenDepth == 0 {
		e.state.out.WriteByte(')')
		e.state.firstToken = false
		return
	}

	subqueryBase := e.state.baseIndent()
	wasSubquery := false
	if n := len(e.state.subqueryParen); n > 0 {
		wasSubquery = e.state.subqueryParen[n-1]
		e.state.subqueryParen = e.state.subqueryParen[:n-1]
	}
	e.state.parenDepth--

	switch {
	case wasSubquery:
		outerBase := e.state.baseIndent()
		e.indentDepth = outerBase
		e.writeNewlineAt(subqueryBase)
		e.state.out.WriteByte(')')
	case e.state.inlineParens > 0:
		e.state.inlineParens--
		e.state.out.WriteByte(')')
	default:
		base := e.state.baseIndent()
		e.writeNewlineAt(base)
		e.state.out.WriteByte(')')
		e.indentDepth = base
	}

	e.state.firstToken = false
}

func (e *blockEngine) formatSemicolon() {
	e.pending = pendingNone

	e.state.out.WriteString(";\n\n")

	e.indentDepth = 0
	e.state.clause = clauseNone
	e.state.afterDDLStart = false
	e.state.firstToken = true
}

func (e *blockEngine) formatValue(text string, prev *tokenizer.Token, tok tokenizer.Token) {
	if e.state.isInline() {
		e.pending = pendingNone
		if needsSpaceBefore(tok, prev) {
			e.state.out.WriteByte(' ')
		}
		e.state.out.WriteString(text)
		e.state.firstToken = false
		return
	}

	if e.state.afterDDLStart {
		e.state.out.WriteByte(' ')
		e.state.out.WriteString(text)
		e.state.firstToken = false
		e.state.afterDDLStart = false
		e.pending = pendingNone
		return
	}

	if e.emitClauseContent(text) {
		e.state.firstToken = false
		return
	}

	if e.pending == pendingAfterComma {
		e.pending = pendingNone
		e.state.out.WriteString(text)
		e.state.firstToken = false
		return
	}

	if needsSpaceBefore(tok, prev) {
		e.state.out.WriteByte(' ')
	}
	e.state.out.WriteString(text)
	e.state.firstToken = false
}

func (e *blockEngine) onComment() {
	e.pending = pendingNone
}

func (e *blockEngine) onDot() {
	// qualified names right after a comma break stay glued to the dot
	if e.pending == pendingAfterComma {
		e.pending = pendingNone
	}
}

func (e *blockEngine) finalize() string {
	return strings.TrimRightFunc(e.state.out.String(), unicode.IsSpace)
}
