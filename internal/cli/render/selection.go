package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// SelectionRenderer renders the selection list and its assembled source
type SelectionRenderer struct {
	out         io.Writer
	highlighter usecase.SourceHighlighter
	showSource  bool
}

// NewSelectionRenderer creates a new selection renderer
func NewSelectionRenderer(out io.Writer, highlighter usecase.SourceHighlighter, showSource bool) *SelectionRenderer {
	return &SelectionRenderer{
		out:         out,
		highlighter: highlighter,
		showSource:  showSource,
	}
}

// Render renders the result of a selection operation
func (r *SelectionRenderer) Render(result *usecase.SelectionResult) error {
	switch result.Operation {
	case usecase.SelectionAppend:
		for _, def := range result.Added {
			fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Added %s", def.Name)))
		}
	case usecase.SelectionRemove:
		if result.Removed != nil {
			fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Removed %s", result.Removed.Name)))
		} else {
			fmt.Fprintln(r.out, FormatWarning("No component at that position, nothing removed"))
		}
	case usecase.SelectionMove:
		if result.Changed {
			fmt.Fprintln(r.out, FormatSuccess("Moved component"))
		} else {
			fmt.Fprintln(r.out, FormatWarning("Selection unchanged"))
		}
	case usecase.SelectionClear:
		fmt.Fprintln(r.out, FormatSuccess("Selection cleared"))
	}

	fmt.Fprintln(r.out)
	if len(result.Components) == 0 {
		fmt.Fprintln(r.out, "Selected Components: none")
		fmt.Fprintln(r.out, faintStyle.Sprint("Add components with: mosaic add <id>"))
	} else {
		headerStyle.Fprintf(r.out, "Selected Components (%s):\n", pluralize(len(result.Components), "component"))
		RenderList(r.out, result.Components)
	}

	if r.showSource {
		fmt.Fprintln(r.out)
		NewSourceRenderer(r.out, r.highlighter).Print(result.Source)
	}
	return nil
}

// SourceRenderer prints assembled contract source
type SourceRenderer struct {
	out         io.Writer
	highlighter usecase.SourceHighlighter
}

// NewSourceRenderer creates a new source renderer
func NewSourceRenderer(out io.Writer, highlighter usecase.SourceHighlighter) *SourceRenderer {
	return &SourceRenderer{out: out, highlighter: highlighter}
}

// Print writes the source, highlighted when a highlighter is configured
func (r *SourceRenderer) Print(source string) {
	if r.highlighter == nil {
		fmt.Fprintln(r.out, source)
		return
	}
	fmt.Fprintln(r.out, r.highlighter.Highlight(source))
}

// Render renders a build result
func (r *SourceRenderer) Render(result *usecase.AssembleSourceResult) error {
	if result.WrittenTo == "" {
		r.Print(result.Source)
	} else {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Wrote %s to %s",
			pluralize(len(result.Components), "component"), result.WrittenTo)))
	}

	if c := result.Compiled; c != nil {
		fmt.Fprintln(r.out)
		headerStyle.Fprintf(r.out, "Compiled %s\n", c.ContractName)
		fmt.Fprintf(r.out, "  Bytecode: %d bytes\n", len(c.Bytecode))
		fmt.Fprintf(r.out, "  ABI:      %d bytes\n", len(c.ABI))
		if c.Source != "" {
			fmt.Fprintf(r.out, "  Compiler: %s\n", c.Source)
		}
	}
	return nil
}
