package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// ComponentsRenderer renders the component library
type ComponentsRenderer struct {
	out io.Writer
}

// NewComponentsRenderer creates a new components renderer
func NewComponentsRenderer(out io.Writer) *ComponentsRenderer {
	return &ComponentsRenderer{out: out}
}

// Render renders the component list
func (r *ComponentsRenderer) Render(result *usecase.ListComponentsResult) error {
	if len(result.Components) == 0 {
		if result.Search != "" {
			fmt.Fprintf(r.out, "No components match %q\n", result.Search)
		} else {
			fmt.Fprintln(r.out, "No components available")
		}
		return nil
	}

	headerStyle.Fprintln(r.out, "🧩 Component Library")
	fmt.Fprintln(r.out)

	t := newTable(r.out)
	t.AppendHeader(table.Row{"ID", "NAME", "DESCRIPTION"})
	for _, def := range result.Components {
		t.AppendRow(table.Row{infoStyle.Sprint(def.ID), def.Name, faintStyle.Sprint(def.Description)})
	}
	t.Render()

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Add one with: mosaic add <id>\n")
	return nil
}

// RenderList prints a numbered list of components, one per line
func RenderList(out io.Writer, components []*domain.ComponentDefinition) {
	for i, def := range components {
		fmt.Fprintf(out, "  %2d. %s %s\n", i+1, def.Name, faintStyle.Sprintf("(%s)", def.ID))
	}
}
