package wallet

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ethereum/go-ethereum/rpc"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// DefaultRPCURL is Frame's local provider endpoint
const DefaultRPCURL = "http://127.0.0.1:1248"

// RPCWallet forwards EIP-1193 requests to an external wallet over JSON-RPC.
// Wallet error codes come back through rpc.Error.
type RPCWallet struct {
	url string
	log *slog.Logger

	mu     sync.Mutex
	client *rpc.Client
}

// NewRPCWallet creates a wallet for url. The connection is made on first use.
func NewRPCWallet(url string, log *slog.Logger) *RPCWallet {
	if url == "" {
		url = DefaultRPCURL
	}
	return &RPCWallet{url: url, log: log.With("wallet", "rpc", "url", url)}
}

// Available reports whether a wallet endpoint is configured
func (w *RPCWallet) Available() bool {
	return w.url != ""
}

// Request sends method to the wallet and decodes the result
func (w *RPCWallet) Request(ctx context.Context, result any, method string, params ...any) error {
	client, err := w.dial(ctx)
	if err != nil {
		return err
	}
	w.log.Debug("wallet request", "method", method)
	return client.CallContext(ctx, result, method, params...)
}

func (w *RPCWallet) dial(ctx context.Context) (*rpc.Client, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.client != nil {
		return w.client, nil
	}
	client, err := rpc.DialContext(ctx, w.url)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot reach wallet at %s: %w", domain.ErrNetwork, w.url, err)
	}
	w.client = client
	return client, nil
}

// Close releases the connection
func (w *RPCWallet) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.client != nil {
		w.client.Close()
		w.client = nil
	}
}

var _ usecase.Wallet = (*RPCWallet)(nil)
