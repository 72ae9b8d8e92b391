package render

import (
	"fmt"
	"io"
	"time"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// GenerateRenderer renders generated contract text
type GenerateRenderer struct {
	out         io.Writer
	highlighter usecase.SourceHighlighter
}

// NewGenerateRenderer creates a new generate renderer
func NewGenerateRenderer(out io.Writer, highlighter usecase.SourceHighlighter) *GenerateRenderer {
	return &GenerateRenderer{out: out, highlighter: highlighter}
}

// Render renders a fresh generation
func (r *GenerateRenderer) Render(result *usecase.GenerateContractResult) error {
	headerStyle.Fprintln(r.out, "Generated Contract:")
	fmt.Fprintln(r.out)
	// Model output is shown verbatim, it may not be Solidity at all
	fmt.Fprintln(r.out, result.Contract)
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, faintStyle.Sprintf("model %s, %s", result.Model, result.Elapsed.Round(time.Millisecond)))
	return nil
}

// RenderHeld renders the currently held generation result
func (r *GenerateRenderer) RenderHeld(result *domain.GenerationResult) error {
	if result.IsEmpty() {
		fmt.Fprintln(r.out, "No generated contract. Run: mosaic generate <prompt>")
		return nil
	}
	if result.Prompt != "" {
		fmt.Fprintln(r.out, faintStyle.Sprintf("Prompt: %s", result.Prompt))
	} else if result.Source != "" {
		fmt.Fprintln(r.out, faintStyle.Sprintf("Loaded from: %s", result.Source))
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, result.Contract)
	return nil
}

// RenderSaved renders the result of saving the held contract
func (r *GenerateRenderer) RenderSaved(result *usecase.SaveGeneratedResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Saved contract to %s", result.Path)))
	return nil
}

// RenderLoaded renders the result of loading a contract file
func (r *GenerateRenderer) RenderLoaded(result *usecase.LoadGeneratedResult) error {
	if !result.Loaded {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%s is empty, nothing loaded", result.Path)))
		return nil
	}
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Loaded %s", result.Path)))
	return nil
}

// RenderExamples lists the built-in example prompts
func (r *GenerateRenderer) RenderExamples(examples []domain.ExamplePrompt) error {
	headerStyle.Fprintln(r.out, "Example prompts:")
	fmt.Fprintln(r.out)
	for i, ex := range examples {
		fmt.Fprintf(r.out, "%d. %s\n", i+1, infoStyle.Sprint(ex.Title))
		fmt.Fprintf(r.out, "   %s\n", ex.Prompt)
	}
	return nil
}
