package preview

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/trebuchet-org/mosaic/internal/domain/config"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// Highlighter renders Solidity source for the terminal. In plain mode the
// source is returned unchanged.
type Highlighter struct {
	renderer *glamour.TermRenderer
}

// NewHighlighter creates a highlighter. Colour is disabled for JSON output,
// --no-color and when the renderer cannot be built.
func NewHighlighter(cfg *config.RuntimeConfig) *Highlighter {
	if cfg.NoColor || cfg.JSON {
		return &Highlighter{}
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return &Highlighter{}
	}
	return &Highlighter{renderer: renderer}
}

// NewPlainHighlighter creates a highlighter that never colours
func NewPlainHighlighter() *Highlighter {
	return &Highlighter{}
}

// Highlight returns source with syntax colouring applied
func (h *Highlighter) Highlight(source string) string {
	if h.renderer == nil {
		return source
	}
	out, err := h.renderer.Render("```solidity\n" + source + "\n```\n")
	if err != nil {
		return source
	}
	return strings.Trim(out, "\n")
}

// Plain reports whether output is uncoloured
func (h *Highlighter) Plain() bool {
	return h.renderer == nil
}

var _ usecase.SourceHighlighter = (*Highlighter)(nil)
