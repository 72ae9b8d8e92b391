package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/mosaic/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// Render renders the list of networks
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	headerStyle.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	checked := len(result.Networks) > 0 && result.Networks[0].Checked
	header := table.Row{"", "NAME", "CHAIN", "CURRENCY", "TYPE", "RPC"}
	if checked {
		header = append(header, "STATUS")
	}

	title := cases.Title(language.English)
	t := newTable(r.out)
	t.AppendHeader(header)
	for _, status := range result.Networks {
		n := status.Network
		marker := " "
		if strings.EqualFold(n.Name, result.Default) {
			marker = successStyle.Sprint("*")
		}
		kind := "mainnet"
		if n.Testnet {
			kind = "testnet"
		}
		row := table.Row{marker, n.Name, n.ChainID, n.NativeCurrency.Symbol, title.String(kind), faintStyle.Sprint(n.RPCURL())}
		if checked {
			if status.Error != nil {
				row = append(row, errorStyle.Sprintf("❌ %v", status.Error))
			} else {
				row = append(row, successStyle.Sprintf("✅ %s", status.Latency.Round(time.Millisecond)))
			}
		}
		t.AppendRow(row)
	}
	t.Render()
	return nil
}
