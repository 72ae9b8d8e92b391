package template

import (
	"bytes"
	"regexp"
	"strings"
	"text/template"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

const (
	DefaultContractName = "GeneratedContract"
	DefaultPragma       = "^0.8.19"
	DefaultLicense      = "MIT"
)

var (
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentRe  = regexp.MustCompile(`//.*`)
	blankLinesRe   = regexp.MustCompile(`\n\s*\n`)
)

const contractTemplate = `// SPDX-License-Identifier: {{.License}}
pragma solidity {{.Pragma}};

contract {{.ContractName}} {
{{- if .Body}}
{{.Body}}
{{- end}}
{{- if .Boilerplate}}
{{- if .Body}}
{{end}}
    constructor() {}

    receive() external payable {}

    fallback() external payable {}
{{- end}}
}`

var contractTmpl = template.Must(template.New("contract").Parse(contractTemplate))

type contractData struct {
	License      string
	Pragma       string
	ContractName string
	Body         string
	Boilerplate  bool
}

// SourceAssemblerAdapter builds contract source from component templates
type SourceAssemblerAdapter struct {
	cfg config.AssemblerConfig
}

// NewSourceAssemblerAdapter creates a new source assembler
func NewSourceAssemblerAdapter(cfg *config.RuntimeConfig) *SourceAssemblerAdapter {
	ac := cfg.Assembler
	if ac.ContractName == "" {
		ac.ContractName = DefaultContractName
	}
	if ac.Pragma == "" {
		ac.Pragma = DefaultPragma
	}
	if ac.License == "" {
		ac.License = DefaultLicense
	}
	return &SourceAssemblerAdapter{cfg: ac}
}

// Sanitize strips comments and blank lines from a template
func Sanitize(tmpl string) string {
	out := blockCommentRe.ReplaceAllString(tmpl, "")
	out = lineCommentRe.ReplaceAllString(out, "")
	out = blankLinesRe.ReplaceAllString(out, "\n")
	return strings.TrimSpace(out)
}

// Body joins the sanitized templates with one blank line between them
func Body(components []*domain.ComponentDefinition) string {
	parts := make([]string, 0, len(components))
	for _, c := range components {
		parts = append(parts, Sanitize(c.Template))
	}
	return strings.Join(parts, "\n\n")
}

// Assemble wraps the body in the contract shell. Empty input still yields a
// complete contract.
func (a *SourceAssemblerAdapter) Assemble(components []*domain.ComponentDefinition) string {
	data := contractData{
		License:      a.cfg.License,
		Pragma:       a.cfg.Pragma,
		ContractName: a.cfg.ContractName,
		Body:         indent(Body(components), "    "),
		Boilerplate:  a.cfg.Boilerplate,
	}

	var buf bytes.Buffer
	// The template is fixed and data is plain strings, so Execute cannot fail.
	_ = contractTmpl.Execute(&buf, data)
	return buf.String()
}

func indent(text, prefix string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

var _ usecase.SourceAssembler = (*SourceAssemblerAdapter)(nil)
