package formatter

import (
	"bufio"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	sqlBlockStartRe = regexp.MustCompile("^(\\s*)```sql\\s*$")
	codeBlockEndRe  = regexp.MustCompile("^(\\s*)```\\s*$")
)

// MarkdownFormatter reformats fenced ```sql blocks inside Markdown text,
// leaving everything else untouched.
type MarkdownFormatter struct {
	opts Options
}

// NewMarkdownFormatter creates a Markdown formatter using opts for the
// embedded SQL blocks
func NewMarkdownFormatter(opts Options) *MarkdownFormatter {
	return &MarkdownFormatter{opts: opts}
}

// Format rewrites every ```sql block in markdown, preserving the block's
// indentation. Non-SQL lines pass through byte-for-byte.
func (f *MarkdownFormatter) Format(markdown string) (string, error) {
	var result strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(markdown))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var inSQLBlock bool
	var sqlBlock strings.Builder
	var blockIndent string

	for scanner.Scan() {
		line := scanner.Text()

		if !inSQLBlock {
			if match := sqlBlockStartRe.FindStringSubmatch(line); match != nil {
				inSQLBlock = true
				blockIndent = match[1]
				sqlBlock.Reset()
			}
			result.WriteString(line)
			result.WriteString("\n")
			continue
		}

		if codeBlockEndRe.MatchString(line) {
			inSQLBlock = false
			f.writeFormattedBlock(&result, sqlBlock.String(), blockIndent)
			result.WriteString(line)
			result.WriteString("\n")
			continue
		}

		// accumulate the block body with its indentation stripped
		sqlBlock.WriteString(strings.TrimPrefix(line, blockIndent))
		sqlBlock.WriteString("\n")
	}

	// unterminated fence: emit what accumulated, unformatted
	if inSQLBlock {
		result.WriteString(reindent(sqlBlock.String(), blockIndent))
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("error reading markdown: %w", err)
	}

	return strings.TrimRight(result.String(), "\n"), nil
}

func (f *MarkdownFormatter) writeFormattedBlock(result *strings.Builder, sql, indent string) {
	if strings.TrimSpace(sql) == "" {
		return
	}
	result.WriteString(reindent(Format(sql, f.opts), indent))
}

func reindent(text, indent string) string {
	var out strings.Builder
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			out.WriteString(indent)
			out.WriteString(line)
		}
		out.WriteString("\n")
	}
	return out.String()
}

// IsMarkdownFile reports whether filename looks like a Markdown file
func IsMarkdownFile(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".md"
}
