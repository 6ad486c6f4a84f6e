package tokenizer

import "strings"

// KeywordKind identifies a recognized SQL keyword, including pre-combined
// multi-word forms (ORDER BY, LEFT JOIN, ...) produced by lexer lookahead.
type KeywordKind int

const (
	NO_KEYWORD KeywordKind = iota

	// DML keywords
	SELECT
	FROM
	WHERE
	AND
	OR
	NOT
	IN
	BETWEEN
	LIKE
	IS
	NULL
	AS
	ON
	JOIN
	HAVING
	LIMIT
	OFFSET
	UNION
	INTERSECT
	EXCEPT
	INSERT
	INTO
	VALUES
	UPDATE
	SET
	DELETE
	DISTINCT
	ALL
	ASC
	DESC
	CASE
	WHEN
	THEN
	ELSE
	END
	EXISTS
	ANY
	WITH
	RECURSIVE
	RETURNING
	USING
	NATURAL
	FETCH
	FOR
	WINDOW
	OVER
	PARTITION
	ROWS
	RANGE
	UNBOUNDED
	PRECEDING
	FOLLOWING
	CURRENT
	ROW

	// Standalone single-word variants (for lexer lookahead)
	ORDER
	GROUP
	LEFT
	RIGHT
	INNER
	OUTER
	FULL
	CROSS

	// DDL keywords
	CREATE
	ALTER
	DROP
	TABLE
	INDEX
	VIEW
	COLUMN
	ADD
	PRIMARY
	KEY
	FOREIGN
	REFERENCES
	UNIQUE
	DEFAULT
	CHECK
	CONSTRAINT
	CASCADE
	RESTRICT
	IF
	TEMPORARY
	TEMP
	SCHEMA
	DATABASE
	SEQUENCE
	TRIGGER
	FUNCTION
	PROCEDURE
	TYPE
	ENUM
	GRANT
	REVOKE
	TRUNCATE
	RENAME
	REPLACE
	COMMENT

	// Others
	TRUE
	FALSE
	BEGIN
	COMMIT
	ROLLBACK
	SAVEPOINT
	TRANSACTION
	LOCK
	UNLOCK

	// Combined multi-word keywords. These are never matched by Lookup;
	// the lexer produces them via whitespace-skipping lookahead.
	ORDER_BY
	GROUP_BY
	LEFT_JOIN
	RIGHT_JOIN
	INNER_JOIN
	OUTER_JOIN
	FULL_JOIN
	CROSS_JOIN
	UNION_ALL
	PRIMARY_KEY
	FOREIGN_KEY
	IF_EXISTS
	IF_NOT_EXISTS
	ROWS_BETWEEN
	RANGE_BETWEEN
)

// multiWordStart marks the first combined kind; Lookup rejects everything
// at or beyond it.
const multiWordStart = ORDER_BY

var keywordSpellings = map[KeywordKind]string{
	SELECT:      "SELECT",
	FROM:        "FROM",
	WHERE:       "WHERE",
	AND:         "AND",
	OR:          "OR",
	NOT:         "NOT",
	IN:          "IN",
	BETWEEN:     "BETWEEN",
	LIKE:        "LIKE",
	IS:          "IS",
	NULL:        "NULL",
	AS:          "AS",
	ON:          "ON",
	JOIN:        "JOIN",
	HAVING:      "HAVING",
	LIMIT:       "LIMIT",
	OFFSET:      "OFFSET",
	UNION:       "UNION",
	INTERSECT:   "INTERSECT",
	EXCEPT:      "EXCEPT",
	INSERT:      "INSERT",
	INTO:        "INTO",
	VALUES:      "VALUES",
	UPDATE:      "UPDATE",
	SET:         "SET",
	DELETE:      "DELETE",
	DISTINCT:    "DISTINCT",
	ALL:         "ALL",
	ASC:         "ASC",
	DESC:        "DESC",
	CASE:        "CASE",
	WHEN:        "WHEN",
	THEN:        "THEN",
	ELSE:        "ELSE",
	END:         "END",
	EXISTS:      "EXISTS",
	ANY:         "ANY",
	WITH:        "WITH",
	RECURSIVE:   "RECURSIVE",
	RETURNING:   "RETURNING",
	USING:       "USING",
	NATURAL:     "NATURAL",
	FETCH:       "FETCH",
	FOR:         "FOR",
	WINDOW:      "WINDOW",
	OVER:        "OVER",
	PARTITION:   "PARTITION",
	ROWS:        "ROWS",
	RANGE:       "RANGE",
	UNBOUNDED:   "UNBOUNDED",
	PRECEDING:   "PRECEDING",
	FOLLOWING:   "FOLLOWING",
	CURRENT:     "CURRENT",
	ROW:         "ROW",
	ORDER:       "ORDER",
	GROUP:       "GROUP",
	LEFT:        "LEFT",
	RIGHT:       "RIGHT",
	INNER:       "INNER",
	OUTER:       "OUTER",
	FULL:        "FULL",
	CROSS:       "CROSS",
	CREATE:      "CREATE",
	ALTER:       "ALTER",
	DROP:        "DROP",
	TABLE:       "TABLE",
	INDEX:       "INDEX",
	VIEW:        "VIEW",
	COLUMN:      "COLUMN",
	ADD:         "ADD",
	PRIMARY:     "PRIMARY",
	KEY:         "KEY",
	FOREIGN:     "FOREIGN",
	REFERENCES:  "REFERENCES",
	UNIQUE:      "UNIQUE",
	DEFAULT:     "DEFAULT",
	CHECK:       "CHECK",
	CONSTRAINT:  "CONSTRAINT",
	CASCADE:     "CASCADE",
	RESTRICT:    "RESTRICT",
	IF:          "IF",
	TEMPORARY:   "TEMPORARY",
	TEMP:        "TEMP",
	SCHEMA:      "SCHEMA",
	DATABASE:    "DATABASE",
	SEQUENCE:    "SEQUENCE",
	TRIGGER:     "TRIGGER",
	FUNCTION:    "FUNCTION",
	PROCEDURE:   "PROCEDURE",
	TYPE:        "TYPE",
	ENUM:        "ENUM",
	GRANT:       "GRANT",
	REVOKE:      "REVOKE",
	TRUNCATE:    "TRUNCATE",
	RENAME:      "RENAME",
	REPLACE:     "REPLACE",
	COMMENT:     "COMMENT",
	TRUE:        "TRUE",
	FALSE:       "FALSE",
	BEGIN:       "BEGIN",
	COMMIT:      "COMMIT",
	ROLLBACK:    "ROLLBACK",
	SAVEPOINT:   "SAVEPOINT",
	TRANSACTION: "TRANSACTION",
	LOCK:        "LOCK",
	UNLOCK:      "UNLOCK",

	ORDER_BY:      "ORDER BY",
	GROUP_BY:      "GROUP BY",
	LEFT_JOIN:     "LEFT JOIN",
	RIGHT_JOIN:    "RIGHT JOIN",
	INNER_JOIN:    "INNER JOIN",
	OUTER_JOIN:    "OUTER JOIN",
	FULL_JOIN:     "FULL JOIN",
	CROSS_JOIN:    "CROSS JOIN",
	UNION_ALL:     "UNION ALL",
	PRIMARY_KEY:   "PRIMARY KEY",
	FOREIGN_KEY:   "FOREIGN KEY",
	IF_EXISTS:     "IF EXISTS",
	IF_NOT_EXISTS: "IF NOT EXISTS",
	ROWS_BETWEEN:  "ROWS BETWEEN",
	RANGE_BETWEEN: "RANGE BETWEEN",
}

// keywordTable maps the uppercase spelling of every single-word keyword
// to its kind.
var keywordTable = func() map[string]KeywordKind {
	table := make(map[string]KeywordKind, len(keywordSpellings))
	for kind, spelling := range keywordSpellings {
		if kind < multiWordStart {
			table[spelling] = kind
		}
	}
	return table
}()

// String returns the canonical uppercase spelling of the keyword.
func (k KeywordKind) String() string {
	if s, ok := keywordSpellings[k]; ok {
		return s
	}
	return "NO_KEYWORD"
}

// Lookup resolves a single word (case-insensitive) to its keyword kind.
// Multi-word keywords (ORDER BY, LEFT JOIN, ...) are never returned here.
func Lookup(word string) (KeywordKind, bool) {
	kind, ok := keywordTable[strings.ToUpper(word)]
	return kind, ok
}

// IsClauseStarter reports whether the keyword begins a new top-level
// clause (SELECT, FROM, WHERE, ...). A parenthesis whose first inner
// token is a clause starter is a subquery parenthesis.
func (k KeywordKind) IsClauseStarter() bool {
	switch k {
	case SELECT, FROM, WHERE, SET, VALUES, INTO, HAVING, LIMIT, OFFSET,
		UNION, UNION_ALL, INTERSECT, EXCEPT, RETURNING,
		INSERT, UPDATE, DELETE, WITH, FETCH:
		return true
	}
	return false
}

// IsJoinKeyword reports whether the keyword introduces a join.
func (k KeywordKind) IsJoinKeyword() bool {
	switch k {
	case JOIN, LEFT_JOIN, RIGHT_JOIN, INNER_JOIN, OUTER_JOIN, FULL_JOIN,
		CROSS_JOIN, NATURAL:
		return true
	}
	return false
}

// IsSubClause reports whether the keyword starts a sub-clause line
// (ON / AND / OR) one level deeper than its owning clause.
func (k KeywordKind) IsSubClause() bool {
	return k == ON || k == AND || k == OR
}

// IsOrderModifier reports whether the keyword is GROUP BY or ORDER BY.
func (k KeywordKind) IsOrderModifier() bool {
	return k == ORDER_BY || k == GROUP_BY
}

// IsDDLStarter reports whether the keyword begins a DDL statement.
func (k KeywordKind) IsDDLStarter() bool {
	switch k {
	case CREATE, ALTER, DROP, TRUNCATE, GRANT, REVOKE:
		return true
	}
	return false
}
