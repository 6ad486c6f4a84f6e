package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/takeokunn/sqlindent/formatter"
)

func TestFormatCmdOptions(t *testing.T) {
	tests := []struct {
		name     string
		cmd      FormatCmd
		ctx      *Context
		expected formatter.Options
		wantErr  error
	}{
		{
			name:     "defaults without context",
			cmd:      FormatCmd{},
			expected: formatter.Options{Uppercase: true, Style: formatter.StyleBasic},
		},
		{
			name:     "context options carried",
			cmd:      FormatCmd{},
			ctx:      &Context{Options: formatter.Options{Uppercase: true, Style: formatter.StyleDataops}},
			expected: formatter.Options{Uppercase: true, Style: formatter.StyleDataops},
		},
		{
			name:     "style flag overrides context",
			cmd:      FormatCmd{Style: "aligned"},
			ctx:      &Context{Options: formatter.Options{Uppercase: true, Style: formatter.StyleBasic}},
			expected: formatter.Options{Uppercase: true, Style: formatter.StyleAligned},
		},
		{
			name:     "lowercase flag",
			cmd:      FormatCmd{Lowercase: true},
			expected: formatter.Options{Uppercase: false, Style: formatter.StyleBasic},
		},
		{
			name:    "unknown style rejected",
			cmd:     FormatCmd{Style: "fancy"},
			wantErr: ErrInvalidStyle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := tt.cmd.options(tt.ctx)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, opts)
		})
	}
}

func TestFormatFromReader(t *testing.T) {
	cmd := &FormatCmd{}
	opts := formatter.DefaultOptions()

	var out strings.Builder
	err := cmd.formatFromReader(opts, strings.NewReader("select id from users"), &out, "query.sql")

	assert.NoError(t, err)
	assert.Equal(t, "SELECT\n    id\nFROM\n    users\n", out.String())
}

func TestFormatFromReaderBlankStdin(t *testing.T) {
	cmd := &FormatCmd{}

	var out strings.Builder
	err := cmd.formatFromReader(formatter.DefaultOptions(), strings.NewReader("  \n\t"), &out, "<stdin>")

	assert.True(t, errors.Is(err, ErrNoInput))
	assert.Equal(t, "", out.String())
}

func TestFormatFromReaderMarkdown(t *testing.T) {
	cmd := &FormatCmd{}

	var out strings.Builder
	err := cmd.formatFromReader(formatter.DefaultOptions(),
		strings.NewReader("# Doc\n\n```sql\nselect 1\n```"), &out, "doc.md")

	assert.NoError(t, err)
	assert.Equal(t, "# Doc\n\n```sql\nSELECT\n    1\n```\n", out.String())
}

func TestFormatFromReaderCheckMode(t *testing.T) {
	cmd := &FormatCmd{Check: true}
	opts := formatter.DefaultOptions()

	t.Run("formatted input passes", func(t *testing.T) {
		var out strings.Builder
		err := cmd.formatFromReader(opts, strings.NewReader("SELECT\n    id\nFROM\n    users\n"), &out, "query.sql")

		assert.NoError(t, err)
		assert.Equal(t, "", out.String())
	})

	t.Run("unformatted input fails", func(t *testing.T) {
		var out strings.Builder
		err := cmd.formatFromReader(opts, strings.NewReader("select id from users"), &out, "query.sql")

		assert.True(t, errors.Is(err, ErrFileNotFormatted))
	})
}

func TestFormatFileRewritesInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "query.sql")
	assert.NoError(t, os.WriteFile(path, []byte("select id from users"), 0o644))

	cmd := &FormatCmd{}
	err := cmd.formatFile(formatter.DefaultOptions(), path)
	assert.NoError(t, err)

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "SELECT\n    id\nFROM\n    users\n", string(content))

	// no temp files left behind
	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(entries))
}

func TestFormatFileToOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.sql")
	output := filepath.Join(dir, "out.sql")
	assert.NoError(t, os.WriteFile(input, []byte("select 1"), 0o644))

	cmd := &FormatCmd{Output: output}
	assert.NoError(t, cmd.formatFile(formatter.DefaultOptions(), input))

	content, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Equal(t, "SELECT\n    1\n", string(content))

	// input untouched
	original, err := os.ReadFile(input)
	assert.NoError(t, err)
	assert.Equal(t, "select 1", string(original))
}

func TestFormatFileSkipsOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	assert.NoError(t, os.WriteFile(path, []byte("select 1"), 0o644))

	cmd := &FormatCmd{}
	assert.NoError(t, cmd.formatFile(formatter.DefaultOptions(), path))

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "select 1", string(content))
}

func TestFormatDirectory(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "a.sql"), []byte("select 1"), 0o644))
	assert.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "b.sql"), []byte("select 2"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "ignore.txt"), []byte("select 3"), 0o644))

	cmd := &FormatCmd{}
	ctx := &Context{Options: formatter.DefaultOptions(), Quiet: true}
	assert.NoError(t, cmd.formatDirectory(formatter.DefaultOptions(), dir, ctx))

	a, err := os.ReadFile(filepath.Join(dir, "a.sql"))
	assert.NoError(t, err)
	assert.Equal(t, "SELECT\n    1\n", string(a))

	b, err := os.ReadFile(filepath.Join(dir, "nested", "b.sql"))
	assert.NoError(t, err)
	assert.Equal(t, "SELECT\n    2\n", string(b))

	ignored, err := os.ReadFile(filepath.Join(dir, "ignore.txt"))
	assert.NoError(t, err)
	assert.Equal(t, "select 3", string(ignored))
}

func TestIsFormattableFile(t *testing.T) {
	assert.True(t, isFormattableFile("query.sql"))
	assert.True(t, isFormattableFile("QUERY.SQL"))
	assert.True(t, isFormattableFile("doc.md"))
	assert.False(t, isFormattableFile("main.go"))
	assert.False(t, isFormattableFile("data.csv"))
}
