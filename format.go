// Package sqlindent is a deterministic SQL re-formatter. It tokenizes raw
// SQL (preserving comments and template variables) and re-emits it in one
// of several layout styles, without ever building an AST or failing on
// malformed input.
package sqlindent

import "github.com/takeokunn/sqlindent/formatter"

// Style selects one of the built-in layout styles
type Style = formatter.Style

// FormatOptions control keyword casing and layout style
type FormatOptions = formatter.Options

// DefaultOptions returns uppercase keywords with the basic block style
func DefaultOptions() FormatOptions {
	return formatter.DefaultOptions()
}

// Format lays out src according to opts. It never fails: malformed or
// dialect-specific SQL is re-emitted laid out as-is.
func Format(src string, opts FormatOptions) string {
	return formatter.Format(src, opts)
}

// FormatString is the flat-argument form of Format, shaped for embeddings
// and bindings that cannot pass structs. Unknown style names fall back to
// the basic style.
func FormatString(src string, uppercase bool, style string) string {
	return formatter.Format(src, formatter.Options{
		Uppercase: uppercase,
		Style:     formatter.StyleFromName(style),
	})
}
