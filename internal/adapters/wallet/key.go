package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// Confirmer asks the user to approve a transaction
type Confirmer interface {
	Confirm(label string) bool
}

// DialFunc opens a JSON-RPC connection to a chain
type DialFunc func(ctx context.Context, url string) (*rpc.Client, error)

type sendTxParams struct {
	From  common.Address  `json:"from"`
	To    *common.Address `json:"to"`
	Data  hexutil.Bytes   `json:"data"`
	Value *hexutil.Big    `json:"value"`
	Gas   *hexutil.Uint64 `json:"gas"`
}

type switchChainParams struct {
	ChainID string `json:"chainId"`
}

// KeyWallet behaves like a browser wallet backed by a local private key. It
// only knows chains that were added with wallet_addEthereumChain and talks to
// them through the chain's first RPC URL.
type KeyWallet struct {
	key         *ecdsa.PrivateKey
	address     common.Address
	confirm     Confirmer
	autoApprove bool
	dial        DialFunc
	log         *slog.Logger

	mu      sync.Mutex
	chains  map[uint64]*domain.NetworkDescriptor
	current uint64
	clients map[uint64]*rpc.Client
}

// NewKeyWallet creates a signer for the hex encoded private key
func NewKeyWallet(privateKeyHex string, confirm Confirmer, autoApprove bool, log *slog.Logger) (*KeyWallet, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return &KeyWallet{
		key:         key,
		address:     crypto.PubkeyToAddress(key.PublicKey),
		confirm:     confirm,
		autoApprove: autoApprove,
		dial:        rpc.DialContext,
		log:         log.With("wallet", "key"),
		chains:      make(map[uint64]*domain.NetworkDescriptor),
		clients:     make(map[uint64]*rpc.Client),
	}, nil
}

// WithDialer replaces how chain RPC connections are opened
func (w *KeyWallet) WithDialer(dial DialFunc) *KeyWallet {
	w.dial = dial
	return w
}

// Address returns the signer address
func (w *KeyWallet) Address() common.Address {
	return w.address
}

// Available always reports true
func (w *KeyWallet) Available() bool {
	return true
}

// Request handles the wallet methods locally and forwards everything else
// to the current chain
func (w *KeyWallet) Request(ctx context.Context, result any, method string, params ...any) error {
	w.log.Debug("wallet request", "method", method)

	switch method {
	case "eth_requestAccounts", "eth_accounts":
		return setResult(result, []string{w.address.Hex()})

	case "eth_chainId":
		w.mu.Lock()
		current := w.current
		w.mu.Unlock()
		if current == 0 {
			return &RequestError{Code: domain.WalletCodeDisconnected, Message: "no chain selected"}
		}
		return setResult(result, hexutil.EncodeUint64(current))

	case "wallet_switchEthereumChain":
		var p switchChainParams
		if err := decodeParam(params, 0, &p); err != nil {
			return err
		}
		return w.switchChain(p.ChainID)

	case "wallet_addEthereumChain":
		var desc domain.NetworkDescriptor
		if err := decodeParam(params, 0, &desc); err != nil {
			return err
		}
		return w.addChain(&desc)

	case "eth_sendTransaction":
		var p sendTxParams
		if err := decodeParam(params, 0, &p); err != nil {
			return err
		}
		hash, err := w.sendTransaction(ctx, p)
		if err != nil {
			return err
		}
		return setResult(result, hash)

	case "eth_sign", "personal_sign", "eth_signTypedData_v4":
		return unsupportedMethod(method)
	}

	client, err := w.currentClient(ctx)
	if err != nil {
		return err
	}
	return client.CallContext(ctx, result, method, params...)
}

func (w *KeyWallet) switchChain(chainIDHex string) error {
	chainID, err := hexutil.DecodeUint64(chainIDHex)
	if err != nil {
		return &RequestError{Code: domain.WalletCodeInvalidParams, Message: fmt.Sprintf("invalid chainId %q", chainIDHex)}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.chains[chainID]; !ok {
		return unknownChain(chainIDHex)
	}
	w.current = chainID
	return nil
}

func (w *KeyWallet) addChain(desc *domain.NetworkDescriptor) error {
	chainID, err := desc.ChainIDUint64()
	if err != nil {
		return &RequestError{Code: domain.WalletCodeInvalidParams, Message: err.Error()}
	}
	if desc.RPCURL() == "" {
		return &RequestError{Code: domain.WalletCodeInvalidParams, Message: "rpcUrls must not be empty"}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.chains[chainID] = desc
	w.current = chainID
	w.log.Debug("chain added", "chainId", chainID, "name", desc.ChainName)
	return nil
}

func (w *KeyWallet) currentClient(ctx context.Context) (*rpc.Client, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.current == 0 {
		return nil, &RequestError{Code: domain.WalletCodeDisconnected, Message: "no chain selected"}
	}
	if client, ok := w.clients[w.current]; ok {
		return client, nil
	}

	url := w.chains[w.current].RPCURL()
	client, err := w.dial(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrNetwork, url, err)
	}
	w.clients[w.current] = client
	return client, nil
}

func (w *KeyWallet) sendTransaction(ctx context.Context, p sendTxParams) (common.Hash, error) {
	if p.From != (common.Address{}) && p.From != w.address {
		return common.Hash{}, &RequestError{Code: domain.WalletCodeUnauthorized, Message: "unknown from address " + p.From.Hex()}
	}

	rpcClient, err := w.currentClient(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	w.mu.Lock()
	chainID := w.current
	w.mu.Unlock()

	client := ethclient.NewClient(rpcClient)

	nonce, err := client.PendingNonceAt(ctx, w.address)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get nonce: %w", err)
	}
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get gas price: %w", err)
	}

	value := new(big.Int)
	if p.Value != nil {
		value = p.Value.ToInt()
	}

	var gas uint64
	if p.Gas != nil {
		gas = uint64(*p.Gas)
	} else {
		gas, err = client.EstimateGas(ctx, ethereum.CallMsg{
			From:  w.address,
			To:    p.To,
			Value: value,
			Data:  p.Data,
		})
		if err != nil {
			return common.Hash{}, fmt.Errorf("failed to estimate gas: %w", err)
		}
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       p.To,
		Value:    value,
		Data:     p.Data,
	})

	if !w.autoApprove {
		if w.confirm == nil || !w.confirm.Confirm(w.describe(tx, chainID)) {
			return common.Hash{}, userRejected()
		}
	}

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(new(big.Int).SetUint64(chainID)), w.key)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := client.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, err
	}
	return signed.Hash(), nil
}

func (w *KeyWallet) describe(tx *types.Transaction, chainID uint64) string {
	chainName := fmt.Sprintf("chain %d", chainID)
	w.mu.Lock()
	if desc, ok := w.chains[chainID]; ok {
		chainName = desc.ChainName
	}
	w.mu.Unlock()

	fee := new(big.Int).Mul(tx.GasPrice(), new(big.Int).SetUint64(tx.Gas()))
	target := "contract creation"
	if tx.To() != nil {
		target = "call to " + tx.To().Hex()
	}
	return fmt.Sprintf("Sign %s on %s (%d bytes, max fee %s wei)", target, chainName, len(tx.Data()), fee)
}

// Close releases chain connections
func (w *KeyWallet) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for id, client := range w.clients {
		client.Close()
		delete(w.clients, id)
	}
}

var _ usecase.Wallet = (*KeyWallet)(nil)
