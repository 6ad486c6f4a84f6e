package formatter

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestMarkdownFormatSQLBlock(t *testing.T) {
	input := "# Queries\n\n```sql\nselect id from users\n```\n\ndone"
	expected := "# Queries\n\n```sql\nSELECT\n    id\nFROM\n    users\n```\n\ndone"

	f := NewMarkdownFormatter(DefaultOptions())
	result, err := f.Format(input)

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestMarkdownPreservesBlockIndent(t *testing.T) {
	input := "- item\n\n  ```sql\n  select 1\n  ```"
	expected := "- item\n\n  ```sql\n  SELECT\n      1\n  ```"

	f := NewMarkdownFormatter(DefaultOptions())
	result, err := f.Format(input)

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestMarkdownLeavesOtherBlocksAlone(t *testing.T) {
	input := "```go\nfunc main() {}\n```\n\n```\nselect not sql\n```"

	f := NewMarkdownFormatter(DefaultOptions())
	result, err := f.Format(input)

	assert.NoError(t, err)
	assert.Equal(t, input, result)
}

func TestMarkdownUnterminatedFence(t *testing.T) {
	input := "```sql\nselect 1"

	f := NewMarkdownFormatter(DefaultOptions())
	result, err := f.Format(input)

	assert.NoError(t, err)
	// an unterminated block passes through unformatted
	assert.Equal(t, "```sql\nselect 1", result)
}

func TestMarkdownEmptySQLBlock(t *testing.T) {
	input := "```sql\n```"

	f := NewMarkdownFormatter(DefaultOptions())
	result, err := f.Format(input)

	assert.NoError(t, err)
	assert.Equal(t, "```sql\n```", result)
}

func TestMarkdownMultipleBlocks(t *testing.T) {
	input := "```sql\nselect 1\n```\ntext\n```sql\nselect 2\n```"
	expected := "```sql\nSELECT\n    1\n```\ntext\n```sql\nSELECT\n    2\n```"

	f := NewMarkdownFormatter(DefaultOptions())
	result, err := f.Format(input)

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestIsMarkdownFile(t *testing.T) {
	assert.True(t, IsMarkdownFile("README.md"))
	assert.True(t, IsMarkdownFile("doc.MD"))
	assert.False(t, IsMarkdownFile("query.sql"))
	assert.False(t, IsMarkdownFile("notes.txt"))
}
