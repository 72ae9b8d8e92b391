package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
)

// Deployment stages reported through the progress sink
const (
	StageConnecting = "Connecting"
	StageNetwork    = "Network"
	StageCompiling  = "Compiling"
	StageSubmitting = "Submitting"
	StageConfirming = "Confirming"
	StageVerifying  = "Verifying"
	StageDone       = "Done"
)

const defaultReceiptPollInterval = 2 * time.Second

// DeployParams contains parameters for deploying the assembled contract
type DeployParams struct {
	Network    string // falls back to the configured network
	VerifyCode bool   // check deployed code through the network RPC
}

// DeployResult contains the result of a deployment
type DeployResult struct {
	Deployment *domain.Deployment
	Status     domain.DeploymentStatus
}

// receipt is the subset of eth_getTransactionReceipt we rely on
type receipt struct {
	TransactionHash common.Hash     `json:"transactionHash"`
	ContractAddress *common.Address `json:"contractAddress"`
	BlockNumber     *hexutil.Big    `json:"blockNumber"`
	Status          *hexutil.Uint64 `json:"status"`
}

// DeployContract sequences the wallet requests that deploy the assembled
// contract: account access, network switch (adding the network when the
// wallet does not know it), transaction submission and confirmation.
type DeployContract struct {
	config     *config.RuntimeConfig
	wallet     Wallet
	selections SelectionRepository
	assembler  SourceAssembler
	compiler   Compiler
	networks   NetworkRegistry
	checker    BlockchainChecker
	progress   ProgressSink
	log        *slog.Logger
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	cfg *config.RuntimeConfig,
	wallet Wallet,
	selections SelectionRepository,
	assembler SourceAssembler,
	compiler Compiler,
	networks NetworkRegistry,
	checker BlockchainChecker,
	progress ProgressSink,
	log *slog.Logger,
) *DeployContract {
	return &DeployContract{
		config:     cfg,
		wallet:     wallet,
		selections: selections,
		assembler:  assembler,
		compiler:   compiler,
		networks:   networks,
		checker:    checker,
		progress:   progress,
		log:        log,
	}
}

// Run executes the deployment
func (uc *DeployContract) Run(ctx context.Context, params DeployParams) (*DeployResult, error) {
	if uc.wallet == nil || !uc.wallet.Available() {
		return nil, domain.ErrWalletMissing
	}

	selection, err := uc.selections.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load selection: %w", err)
	}
	if selection.IsEmpty() {
		return nil, domain.ErrEmptySelection
	}

	networkName := params.Network
	if networkName == "" {
		networkName = uc.config.Network
	}
	network, err := uc.networks.Get(ctx, networkName)
	if err != nil {
		return nil, err
	}

	deployment, err := uc.deploy(ctx, network, selection)
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageDone})
	if err != nil {
		uc.log.Debug("deployment failed", "network", network.Name, "error", err)
		return nil, domain.ClassifyDeploymentError(err, network)
	}

	if params.VerifyCode {
		uc.verifyCode(ctx, network, deployment)
	}

	return &DeployResult{
		Deployment: deployment,
		Status:     deployment.Status(),
	}, nil
}

func (uc *DeployContract) deploy(ctx context.Context, network *domain.NetworkDescriptor, selection *domain.Selection) (*domain.Deployment, error) {
	uc.report(ctx, StageConnecting, "Requesting wallet connection...")

	var accounts []string
	if err := uc.wallet.Request(ctx, &accounts, "eth_requestAccounts"); err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: wallet returned no accounts", domain.ErrDeploymentFailed)
	}
	account := accounts[0]

	uc.report(ctx, StageNetwork, fmt.Sprintf("Deploying to %s...", network.ChainName))
	if err := uc.switchNetwork(ctx, network); err != nil {
		return nil, err
	}

	uc.report(ctx, StageCompiling, "Preparing deployment payload...")
	source := uc.assembler.Assemble(selection.Entries())
	compiled, err := uc.compiler.Compile(ctx, source)
	if err != nil {
		return nil, err
	}
	if len(compiled.Bytecode) == 0 {
		return nil, fmt.Errorf("%w: compiler produced no bytecode", domain.ErrDeploymentFailed)
	}

	uc.report(ctx, StageSubmitting, "Waiting for the wallet to submit the transaction...")
	tx := map[string]string{
		"from": account,
		"data": hexutil.Encode(compiled.Bytecode),
	}
	var txHash common.Hash
	if err := uc.wallet.Request(ctx, &txHash, "eth_sendTransaction", tx); err != nil {
		return nil, err
	}
	uc.log.Debug("deployment transaction sent", "hash", txHash.Hex(), "network", network.Name)

	uc.report(ctx, StageConfirming, fmt.Sprintf("Waiting for confirmation of %s...", txHash.Hex()))
	rcpt, err := uc.waitForReceipt(ctx, txHash)
	if err != nil {
		return nil, err
	}
	if rcpt.Status != nil && uint64(*rcpt.Status) == 0 {
		return nil, fmt.Errorf("%w: transaction %s reverted", domain.ErrDeploymentFailed, txHash.Hex())
	}
	if rcpt.ContractAddress == nil {
		return nil, fmt.Errorf("%w: receipt for %s has no contract address", domain.ErrDeploymentFailed, txHash.Hex())
	}

	address := rcpt.ContractAddress.Hex()
	deployment := &domain.Deployment{
		Network:         network,
		NetworkName:     network.Name,
		Account:         account,
		TransactionHash: txHash.Hex(),
		Address:         address,
		ExplorerURL:     network.ExplorerAddressURL(address),
		PayloadSource:   compiled.Source,
	}
	if rcpt.BlockNumber != nil {
		deployment.BlockNumber = rcpt.BlockNumber.ToInt().Uint64()
	}
	return deployment, nil
}

// switchNetwork asks the wallet to switch chains, adding the chain first
// when the wallet reports it as unknown
func (uc *DeployContract) switchNetwork(ctx context.Context, network *domain.NetworkDescriptor) error {
	err := uc.wallet.Request(ctx, nil, "wallet_switchEthereumChain", map[string]string{"chainId": network.ChainID})
	if err == nil {
		return nil
	}

	code, ok := domain.WalletErrorCode(err)
	if !ok || code != domain.WalletCodeUnknownChain {
		return err
	}

	uc.report(ctx, StageNetwork, fmt.Sprintf("Adding %s to the wallet...", network.ChainName))
	return uc.wallet.Request(ctx, nil, "wallet_addEthereumChain", network)
}

func (uc *DeployContract) waitForReceipt(ctx context.Context, txHash common.Hash) (*receipt, error) {
	interval := uc.config.Wallet.PollEvery
	if interval <= 0 {
		interval = defaultReceiptPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		var rcpt *receipt
		if err := uc.wallet.Request(ctx, &rcpt, "eth_getTransactionReceipt", txHash); err != nil {
			return nil, err
		}
		if rcpt != nil {
			return rcpt, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for receipt of %s: %w", txHash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}

// verifyCode checks that code exists at the deployed address. Failures are
// logged; the deployment itself already succeeded.
func (uc *DeployContract) verifyCode(ctx context.Context, network *domain.NetworkDescriptor, deployment *domain.Deployment) {
	uc.report(ctx, StageVerifying, "Checking deployed code...")
	defer uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageDone})

	chainID, err := network.ChainIDUint64()
	if err == nil {
		err = uc.checker.Connect(ctx, network.RPCURL(), chainID)
	}
	if err != nil {
		uc.log.Warn("could not verify deployed code", "network", network.Name, "error", err)
		return
	}

	exists, reason, err := uc.checker.CheckDeploymentExists(ctx, deployment.Address)
	if err != nil {
		uc.log.Warn("could not verify deployed code", "address", deployment.Address, "error", err)
		return
	}
	if !exists {
		uc.log.Warn("deployed code not found", "address", deployment.Address, "reason", reason)
	}
	deployment.CodeVerified = &exists
}

func (uc *DeployContract) report(ctx context.Context, stage, message string) {
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:    stage,
		Message:  message,
		Spinner:  true,
		Metadata: domain.InfoStatus(message),
	})
}

// IsLocalPrecondition reports whether err is a failure detected before any
// wallet request was made
func IsLocalPrecondition(err error) bool {
	return errors.Is(err, domain.ErrWalletMissing) || errors.Is(err, domain.ErrEmptySelection)
}
