package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/mosaic/internal/domain"
)

var (
	infoStyle    = color.New(color.FgCyan)
	successStyle = color.New(color.FgGreen)
	errorStyle   = color.New(color.FgRed)
	faintStyle   = color.New(color.Faint)
	headerStyle  = color.New(color.Bold, color.FgHiWhite)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Keep only the innermost message of an error chain
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return errorStyle.Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return successStyle.Sprintf("✅ %s", message)
}

// FormatStatus formats a deployment status line according to its kind
func FormatStatus(status domain.DeploymentStatus) string {
	switch status.Kind {
	case domain.StatusSuccess:
		return FormatSuccess(status.Message)
	case domain.StatusError:
		return errorStyle.Sprintf("❌ %s", status.Message)
	default:
		return infoStyle.Sprintf("ℹ️  %s", status.Message)
	}
}

// WriteJSON writes v as indented JSON
func WriteJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTable creates a borderless table in the style used across commands
func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}
	t.Style().Format.Header = text.FormatDefault
	return t
}

func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
