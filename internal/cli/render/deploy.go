package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// DeployRenderer renders deployment results
type DeployRenderer struct {
	out io.Writer
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer) *DeployRenderer {
	return &DeployRenderer{out: out}
}

// Render renders a successful deployment
func (r *DeployRenderer) Render(result *usecase.DeployResult) error {
	d := result.Deployment

	fmt.Fprintln(r.out, FormatStatus(result.Status))
	fmt.Fprintln(r.out)

	t := newTable(r.out)
	t.AppendRow([]any{"Network", d.Network.Label()})
	t.AppendRow([]any{"Account", d.Account})
	t.AppendRow([]any{"Address", infoStyle.Sprint(d.Address)})
	t.AppendRow([]any{"Transaction", d.TransactionHash})
	if d.BlockNumber > 0 {
		t.AppendRow([]any{"Block", d.BlockNumber})
	}
	t.AppendRow([]any{"Payload", d.PayloadSource})
	if d.ExplorerURL != "" {
		t.AppendRow([]any{"Explorer", d.ExplorerURL})
	}
	if d.CodeVerified != nil {
		if *d.CodeVerified {
			t.AppendRow([]any{"Code", successStyle.Sprint("✓ present on chain")})
		} else {
			t.AppendRow([]any{"Code", errorStyle.Sprint("✗ not found on chain")})
		}
	}
	t.Render()
	return nil
}
