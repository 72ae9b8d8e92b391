package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// SelectorAdapter handles interactive selection and confirmation
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectComponent asks the user to pick one component
func (s *SelectorAdapter) SelectComponent(ctx context.Context, components []*domain.ComponentDefinition, prompt string) (*domain.ComponentDefinition, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(components) == 0 {
		return nil, fmt.Errorf("no components provided for selection")
	}

	if len(components) == 1 {
		return components[0], nil
	}

	options := formatComponentOptions(components)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, / to search, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:     prompt,
		Items:     options,
		Templates: templates,
		Size:      10,
		Searcher:  createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return components[index], nil
}

// Confirm asks a yes/no question. Non-interactive mode always answers no.
func (s *SelectorAdapter) Confirm(label string) bool {
	if s.config.NonInteractive {
		return false
	}
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	return err == nil
}

// formatComponentOptions renders "Name (id) - description" lines
func formatComponentOptions(components []*domain.ComponentDefinition) []string {
	options := make([]string, len(components))
	for i, c := range components {
		name := color.New(color.FgWhite, color.Bold).Sprint(c.Name)
		id := color.New(color.FgBlue).Sprint(c.ID)
		options[i] = fmt.Sprintf("%s (%s) - %s", name, id, c.Description)
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

var _ usecase.ComponentSelector = (*SelectorAdapter)(nil)
