package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// InitRenderer renders init command results
type InitRenderer struct {
	out io.Writer
}

// NewInitRenderer creates a new init renderer
func NewInitRenderer(out io.Writer) *InitRenderer {
	return &InitRenderer{out: out}
}

// Render renders the init project result
func (r *InitRenderer) Render(result *usecase.InitProjectResult) error {
	failed := false
	for _, step := range result.Steps {
		if step.Success {
			msg := step.Name
			if step.Message != "" {
				msg = fmt.Sprintf("%s: %s", step.Name, step.Message)
			}
			successStyle.Fprintf(r.out, "✅ %s\n", msg)
			continue
		}
		failed = true
		errorStyle.Fprintf(r.out, "❌ %s\n", step.Name)
		if step.Error != nil {
			fmt.Fprintf(r.out, "   %s\n", step.Error.Error())
		}
	}

	if !failed {
		r.printSuccessMessage(result)
	}
	return nil
}

func (r *InitRenderer) printSuccessMessage(result *usecase.InitProjectResult) {
	hint := color.New(color.FgHiBlack)

	fmt.Fprintln(r.out)
	if result.AlreadyInitialized {
		color.New(color.FgYellow).Fprintln(r.out, "⚠️  mosaic was already initialized in this project")
	} else {
		color.New(color.FgGreen, color.Bold).Fprintln(r.out, "🎉 mosaic initialized successfully!")
	}

	fmt.Fprintln(r.out)
	color.New(color.FgCyan, color.Bold).Fprintln(r.out, "📋 Next steps:")

	fmt.Fprintln(r.out, "1. Copy .env.example to .env and fill in the keys you need:")
	fmt.Fprintln(r.out, "   • MOSAIC_GENERATOR_API_KEY for hosted generators")
	fmt.Fprintln(r.out, "   • MOSAIC_WALLET_PRIVATE_KEY when deploying with the key wallet")
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, "2. Compose a contract:")
	hint.Fprintln(r.out, "   mosaic components")
	hint.Fprintln(r.out, "   mosaic add erc20 access")
	hint.Fprintln(r.out, "   mosaic show --source")
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, "3. Deploy it:")
	hint.Fprintln(r.out, "   mosaic deploy --network mantle-sepolia")
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, "4. Or let the generator write one:")
	hint.Fprintln(r.out, "   mosaic generate \"an ERC20 token with a capped supply\"")
}
