package formatter

import (
	"strings"
	"unicode"

	"github.com/takeokunn/sqlindent/tokenizer"
)

type alignedFrame struct {
	col    int
	clause clauseContext
}

// alignedEngine right-pads clause keywords so their last character lands
// on a fixed column ("river" layout), with leading-comma continuations
// aligned under the first list item.
type alignedEngine struct {
	state             core
	baseCol           int
	baseStack         []alignedFrame
	betweenDepth      int
	inCTEHeader       bool
	afterLeadingComma bool
}

func newAlignedEngine(opts Options) *alignedEngine {
	return &alignedEngine{state: newCore(opts)}
}

func (e *alignedEngine) core() *core {
	return &e.state
}

// keywordPadding computes the left padding that lands the keyword's last
// character on the alignment column. Join keywords are wider, so they get
// a wider column.
func (e *alignedEngine) keywordPadding(kw tokenizer.KeywordKind) int {
	length := len(kw.String())
	switch {
	case kw.IsJoinKeyword():
		return max(e.baseCol+11-length, 0)
	case length > 6:
		return e.baseCol + 1
	default:
		return max(e.baseCol+6-length, 0)
	}
}

func (e *alignedEngine) writePadding(n int) {
	for range n {
		e.state.out.WriteByte(' ')
	}
}

func (e *alignedEngine) writeKeywordOnNewline(kw tokenizer.KeywordKind) {
	kwStr := e.state.keywordStr(kw)
	padding := e.keywordPadding(kw)
	if !e.state.firstToken {
		e.state.out.WriteByte('\n')
	}
	e.writePadding(padding)
	e.state.out.WriteString(kwStr)
	e.state.firstToken = false
}

func (e *alignedEngine) writeLeadingComma() {
	e.state.out.WriteByte('\n')
	e.writePadding(e.baseCol + 7)
	e.state.out.WriteString(", ")
	e.afterLeadingComma = true
}

func (e *alignedEngine) formatKeyword(kw tokenizer.KeywordKind, prev *tokenizer.Token) {
	kwStr := e.state.keywordStr(kw)

	if e.state.isInline() {
		if needsSpaceBefore(tokenizer.Token{Type: tokenizer.KEYWORD, Keyword: kw}, prev) {
			e.state.out.WriteByte(' ')
		}
		e.state.out.WriteString(kwStr)
		e.state.firstToken = false
		return
	}

	switch {
	case kw.IsDDLStarter():
		e.formatDDLKeyword(kw)
	case kw == tokenizer.WITH:
		e.formatWithKeyword()
	case kw.IsClauseStarter():
		e.formatClauseStarter(kw)
	case kw.IsJoinKeyword():
		e.formatJoinKeyword(kw)
	case kw.IsOrderModifier():
		e.formatOrderModifier(kw)
	case kw.IsSubClause():
		e.formatSubClause(kw, prev)
	default:
		e.formatOtherKeyword(kw, kwStr, prev)
	}
}

func (e *alignedEngine) formatDDLKeyword(kw tokenizer.KeywordKind) {
	e.writeKeywordOnNewline(kw)
	e.state.clause = clauseDDL
	e.state.afterDDLStart = true
}

// WITH starts flush left; the CTE bodies align two columns deeper.
func (e *alignedEngine) formatWithKeyword() {
	kwStr := e.state.keywordStr(tokenizer.WITH)
	if !e.state.firstToken {
		e.state.out.WriteByte('\n')
	}
	e.state.out.WriteString(kwStr)
	e.state.firstToken = false
	e.state.clause = clauseCTE
	e.inCTEHeader = true
}

func (e *alignedEngine) formatClauseStarter(kw tokenizer.KeywordKind) {
	isUnion := kw == tokenizer.UNION || kw == tokenizer.UNION_ALL
	if isUnion && !e.state.firstToken {
		e.state.out.WriteByte('\n')
	}
	e.writeKeywordOnNewline(kw)
	if isUnion {
		e.state.out.WriteByte('\n')
	}
	e.state.clause = clauseFromKeyword(kw)
}

func (e *alignedEngine) formatJoinKeyword(kw tokenizer.KeywordKind) {
	e.writeKeywordOnNewline(kw)
	e.state.clause = clauseJoin
}

func (e *alignedEngine) formatOrderModifier(kw tokenizer.KeywordKind) {
	e.writeKeywordOnNewline(kw)
	switch kw {
	case tokenizer.GROUP_BY:
		e.state.clause = clauseGroupBy
	case tokenizer.ORDER_BY:
		e.state.clause = clauseOrderBy
	default:
		e.state.clause = clauseOther
	}
}

func (e *alignedEngine) formatSubClause(kw tokenizer.KeywordKind, prev *tokenizer.Token) {
	// the AND closing a BETWEEN stays inline
	if kw == tokenizer.AND && e.betweenDepth > 0 {
		e.betweenDepth--
		if needsSpaceBefore(tokenizer.Token{Type: tokenizer.KEYWORD, Keyword: kw}, prev) {
			e.state.out.WriteByte(' ')
		}
		e.state.out.WriteString(e.state.keywordStr(kw))
		e.state.firstToken = false
		return
	}
	e.writeKeywordOnNewline(kw)
}

func (e *alignedEngine) formatOtherKeyword(kw tokenizer.KeywordKind, kwStr string, prev *tokenizer.Token) {
	if kw == tokenizer.BETWEEN {
		e.betweenDepth++
	}
	if e.afterLeadingComma {
		e.afterLeadingComma = false
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

func (e *alignedEngine) formatComma() {
	if e.state.isInline() {
		e.state.out.WriteByte(',')
		e.state.firstToken = false
		return
	}

	switch e.state.clause {
	case clauseSelect, clauseGroupBy, clauseOrderBy, clauseSet, clauseDDL:
		e.writeLeadingComma()
	case clauseCTE:
		e.state.out.WriteByte('\n')
		e.writePadding(e.baseCol)
		e.state.out.WriteString(", ")
		e.inCTEHeader = true
		e.afterLeadingComma = true
	default:
		e.state.out.WriteByte(',')
	}
	e.state.firstToken = false
}

func (e *alignedEngine) formatOpenParen(filtered []tokenizer.Token, idx int, prev *tokenizer.Token) {
	isSubquery := idx+1 < len(filtered) &&
		filtered[idx+1].Type == tokenizer.KEYWORD &&
		filtered[idx+1].Keyword.IsClauseStarter()

	openParen := tokenizer.Token{Type: tokenizer.OPENED_PARENS}

	if isSubquery {
		e.state.parenDepth++
		e.state.subqueryParen = append(e.state.subqueryParen, true)
		e.baseStack = append(e.baseStack, alignedFrame{col: e.baseCol, clause: e.state.clause})

		e.inCTEHeader = false
		e.baseCol += 2

		if e.afterLeadingComma {
			e.afterLeadingComma = false
		} else if needsSpaceBefore(openParen, prev) {
			e.state.out.WriteByte(' ')
		}
		e.state.out.WriteByte('(')
		e.state.firstToken = false
		return
	}

	e.state.parenDepth++
	e.state.subqueryParen = append(e.state.subqueryParen, false)
	e.state.inlineParens++
	if e.afterLeadingComma {
		e.afterLeadingComma = false
	} else if prev == nil || prev.Type != tokenizer.IDENTIFIER {
		if needsSpaceBefore(openParen, prev) {
			e.state.out.WriteByte(' ')
		}
	}
	e.state.out.WriteByte('(')
	e.state.firstToken = false
}

func (e *alignedEngine) formatCloseParen() {
	if e.state.parenDepth == 0 {
		e.state.out.WriteByte(')')
		e.state.firstToken = false
		return
	}

	wasSubquery := false
	if n := len(e.state.subqueryParen); n > 0 {
		wasSubquery = e.state.subqueryParen[n-1]
		e.state.subqueryParen = e.state.subqueryParen[:n-1]
	}
	e.state.parenDepth--

	switch {
	case wasSubquery:
		frame := alignedFrame{}
		if n := len(e.baseStack); n > 0 {
			frame = e.baseStack[n-1]
			e.baseStack = e.baseStack[:n-1]
		}
		e.state.out.WriteByte('\n')
		if frame.clause == clauseCTE || frame.clause == clauseFrom {
			e.writePadding(frame.col)
		} else {
			e.writePadding(frame.col + 2)
		}
		e.state.out.WriteByte(')')
		e.baseCol = frame.col
		e.state.clause = frame.clause
	case e.state.inlineParens > 0:
		e.state.inlineParens--
		e.state.out.WriteByte(')')
	default:
		e.state.out.WriteByte(')')
	}

	e.state.firstToken = false
}

func (e *alignedEngine) formatSemicolon() {
	e.state.out.WriteString(";\n\n")
	e.baseCol = 0
	e.state.clause = clauseNone
	e.state.afterDDLStart = false
	e.state.firstToken = true
}

func (e *alignedEngine) formatValue(text string, prev *tokenizer.Token, tok tokenizer.Token) {
	if e.state.afterDDLStart {
		e.state.out.WriteByte(' ')
		e.state.out.WriteString(text)
		e.state.afterDDLStart = false
		e.state.firstToken = false
		return
	}
	if e.afterLeadingComma {
		e.afterLeadingComma = false
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

func (e *alignedEngine) onComment() {}

func (e *alignedEngine) onDot() {}

// finalize re-splits the output so trailing padding on any line is
// dropped, then trims the tail.
func (e *alignedEngine) finalize() string {
	lines := strings.Split(e.state.out.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimRightFunc(strings.Join(lines, "\n"), unicode.IsSpace)
}
