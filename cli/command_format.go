package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/takeokunn/sqlindent/formatter"
)

var (
	ErrNoInput          = errors.New("no SQL input provided")
	ErrFileNotFormatted = errors.New("file is not formatted")
	ErrFormattingErrors = errors.New("some files had formatting errors")
	ErrInvalidStyle     = errors.New("invalid style name")
)

// Context represents the global context for commands
type Context struct {
	Options formatter.Options
	Verbose bool
	Quiet   bool
}

// FormatCmd represents the format command
type FormatCmd struct {
	Input     string `arg:"" optional:"" help:"Input file or directory (default: stdin)"`
	Output    string `short:"o" help:"Output file (default: stdout, or overwrite input file)"`
	Style     string `short:"s" help:"Layout style: basic, compact, aligned or dataops"`
	Lowercase bool   `help:"Emit keywords in lowercase"`
	Test      bool   `short:"t" help:"Print formatted output to stdout instead of writing files (dry-run)"`
	Check     bool   `short:"c" help:"Check if files are formatted (exit 1 if not)"`
}

// Run executes the format command
func (cmd *FormatCmd) Run(ctx *Context) error {
	opts, err := cmd.options(ctx)
	if err != nil {
		return err
	}

	if ctx != nil && ctx.Verbose {
		color.Cyan("Using style %s (uppercase=%v)", opts.Style, opts.Uppercase)
	}

	// Handle different input sources
	if cmd.Input == "" {
		return cmd.formatFromReader(opts, os.Stdin, os.Stdout, "<stdin>")
	}

	info, err := os.Stat(cmd.Input)
	if err != nil {
		return fmt.Errorf("failed to stat input: %w", err)
	}

	if info.IsDir() {
		return cmd.formatDirectory(opts, cmd.Input, ctx)
	}

	return cmd.formatFile(opts, cmd.Input)
}

// options resolves the effective formatter options from the configuration
// and command-line flags. Unlike the formatter itself, an unknown --style
// is rejected here.
func (cmd *FormatCmd) options(ctx *Context) (formatter.Options, error) {
	opts := formatter.DefaultOptions()
	if ctx != nil {
		opts = ctx.Options
	}

	if cmd.Style != "" {
		switch cmd.Style {
		case "basic", "compact", "aligned", "dataops":
			opts.Style = formatter.StyleFromName(cmd.Style)
		default:
			return opts, fmt.Errorf("%w: %q (must be one of basic, compact, aligned, dataops)", ErrInvalidStyle, cmd.Style)
		}
	}

	if cmd.Lowercase {
		opts.Uppercase = false
	}

	return opts, nil
}

// formatFromReader formats SQL from a reader and writes to a writer
func (cmd *FormatCmd) formatFromReader(opts formatter.Options, reader io.Reader, writer io.Writer, filename string) error {
	input, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if filename == "<stdin>" && strings.TrimSpace(string(input)) == "" {
		return ErrNoInput
	}

	var formatted string

	if formatter.IsMarkdownFile(filename) {
		markdownFormatter := formatter.NewMarkdownFormatter(opts)

		formatted, err = markdownFormatter.Format(string(input))
		if err != nil {
			return fmt.Errorf("failed to format Markdown in %s: %w", filename, err)
		}
	} else {
		formatted = formatter.Format(string(input), opts)
	}

	// Handle check mode
	if cmd.Check {
		if strings.TrimSpace(string(input)) != strings.TrimSpace(formatted) {
			fmt.Fprintf(os.Stderr, "%s is not formatted\n", filename)
			return ErrFileNotFormatted
		}

		return nil
	}

	// Write formatted output with exactly one trailing newline
	_, err = io.WriteString(writer, formatted+"\n")

	return err
}

// formatFile formats a single file
func (cmd *FormatCmd) formatFile(opts formatter.Options, filename string) error {
	if !isFormattableFile(filename) {
		if !cmd.Check {
			fmt.Fprintf(os.Stderr, "Skipping non-SQL file: %s\n", filename)
		}

		return nil
	}

	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	var writer io.Writer

	switch {
	case cmd.Test || cmd.Check:
		// Dry runs never touch the file
		writer = os.Stdout

	case cmd.Output != "" && cmd.Output != filename:
		outputFile, createErr := os.Create(cmd.Output)
		if createErr != nil {
			return fmt.Errorf("failed to create output file %s: %w", cmd.Output, createErr)
		}
		defer outputFile.Close()

		writer = outputFile

	default:
		// Overwrite the input file in place: write to a temp file and
		// rename it over the original on success.
		tempFile, tempErr := os.CreateTemp(filepath.Dir(filename), ".sqlindent-format-*")
		if tempErr != nil {
			return fmt.Errorf("failed to create temp file: %w", tempErr)
		}

		defer func() {
			tempFile.Close()

			if err == nil {
				_ = os.Rename(tempFile.Name(), filename)
			} else {
				_ = os.Remove(tempFile.Name())
			}
		}()

		writer = tempFile
	}

	err = cmd.formatFromReader(opts, file, writer, filename)

	return err
}

// formatDirectory formats all SQL and Markdown files in a directory recursively
func (cmd *FormatCmd) formatDirectory(opts formatter.Options, dirPath string, ctx *Context) error {
	var hasErrors bool

	err := filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		if !isFormattableFile(path) {
			return nil
		}

		err = cmd.formatFile(opts, path)
		if err != nil {
			color.Red("Error formatting %s: %v", path, err)

			hasErrors = true
			// Continue processing other files
			return nil
		}

		if !cmd.Check && !cmd.Test && ctx != nil && !ctx.Quiet {
			fmt.Printf("Formatted: %s\n", path)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk directory: %w", err)
	}

	if hasErrors {
		return ErrFormattingErrors
	}

	return nil
}

// isFormattableFile checks whether the file is SQL or Markdown
func isFormattableFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".sql" || ext == ".md"
}

// Help returns help text for the format command
func (cmd *FormatCmd) Help() string {
	return `Format SQL files and Markdown files with SQL code blocks.

The fmt command re-emits SQL in a canonical layout without changing its
meaning. Formatting never fails: malformed or dialect-specific SQL is laid
out as-is. For Markdown files, SQL inside ` + "```sql" + ` blocks is formatted
while the rest of the document is preserved.

Examples:
	# Format from stdin (prints to stdout)
	cat query.sql | sqlindent fmt

	# Format a single file and overwrite it (default)
	sqlindent fmt query.sql

	# Print formatted output to stdout (dry-run)
	sqlindent fmt -t query.sql

	# Pick a layout style
	sqlindent fmt -s aligned query.sql

	# Format all files in a directory (default: overwrite files)
	sqlindent fmt ./queries/

	# Check if files are properly formatted
	sqlindent fmt -c ./queries/

Styles:
- basic:   each clause on its own line, 4-space indent, trailing commas
- compact: like basic with a 2-space indent
- dataops: like basic with leading commas
- aligned: keywords right-aligned to a fixed column, leading commas`
}
