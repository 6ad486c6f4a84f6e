package tokenizer

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		word  string
		kind  KeywordKind
		found bool
	}{
		{name: "uppercase", word: "SELECT", kind: SELECT, found: true},
		{name: "lowercase", word: "select", kind: SELECT, found: true},
		{name: "mixed case", word: "SeLeCt", kind: SELECT, found: true},
		{name: "not a keyword", word: "users", kind: NO_KEYWORD, found: false},
		{name: "combined spelling is not a dictionary word", word: "ORDER_BY", kind: NO_KEYWORD, found: false},
		{name: "standalone order", word: "ORDER", kind: ORDER, found: true},
		{name: "boolean literal", word: "true", kind: TRUE, found: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, found := Lookup(tt.word)

			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestKeywordPredicates(t *testing.T) {
	clauseStarters := []KeywordKind{
		SELECT, FROM, WHERE, SET, VALUES, INTO, HAVING, LIMIT, OFFSET,
		UNION, UNION_ALL, INTERSECT, EXCEPT, RETURNING,
		INSERT, UPDATE, DELETE, WITH, FETCH,
	}
	for _, kind := range clauseStarters {
		assert.True(t, kind.IsClauseStarter(), "expected %s to start a clause", kind)
	}

	assert.False(t, AS.IsClauseStarter())
	assert.False(t, JOIN.IsClauseStarter())

	joins := []KeywordKind{
		JOIN, LEFT_JOIN, RIGHT_JOIN, INNER_JOIN, OUTER_JOIN, FULL_JOIN, CROSS_JOIN, NATURAL,
	}
	for _, kind := range joins {
		assert.True(t, kind.IsJoinKeyword(), "expected %s to be a join keyword", kind)
	}

	assert.False(t, LEFT.IsJoinKeyword())
	assert.False(t, ON.IsJoinKeyword())

	assert.True(t, ON.IsSubClause())
	assert.True(t, AND.IsSubClause())
	assert.True(t, OR.IsSubClause())
	assert.False(t, NOT.IsSubClause())

	assert.True(t, ORDER_BY.IsOrderModifier())
	assert.True(t, GROUP_BY.IsOrderModifier())
	assert.False(t, ORDER.IsOrderModifier())

	ddl := []KeywordKind{CREATE, ALTER, DROP, TRUNCATE, GRANT, REVOKE}
	for _, kind := range ddl {
		assert.True(t, kind.IsDDLStarter(), "expected %s to start DDL", kind)
	}

	assert.False(t, TABLE.IsDDLStarter())
}

func TestKeywordString(t *testing.T) {
	assert.Equal(t, "SELECT", SELECT.String())
	assert.Equal(t, "ORDER BY", ORDER_BY.String())
	assert.Equal(t, "UNION ALL", UNION_ALL.String())
}
