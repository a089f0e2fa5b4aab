// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/shirinlakhani/codejudge"
)

// Compile-time interface verification.
var _ codejudge.Highlighter = (*Highlighter)(nil)

// Highlighter renders source code with ANSI syntax highlighting. The
// language is inferred from the content since case ids carry no filename.
type Highlighter struct {
	style     *chromalib.Style
	formatter chromalib.Formatter
}

// NewHighlighter creates a Highlighter with the given style name. Unknown
// styles fall back to the chroma default.
func NewHighlighter(styleName string) *Highlighter {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}
	return &Highlighter{style: style, formatter: formatter}
}

// Highlight returns source with ANSI highlighting applied, or the input
// unchanged when the language cannot be inferred or tokenizing fails.
func (h *Highlighter) Highlight(source string) string {
	if source == "" {
		return ""
	}

	lexer := lexers.Analyse(source)
	if lexer == nil {
		return source
	}
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var sb strings.Builder
	if err := h.formatter.Format(&sb, h.style, iterator); err != nil {
		return source
	}
	return sb.String()
}
