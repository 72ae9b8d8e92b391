package domain

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// Wallet error codes defined by EIP-1193 and EIP-3326
const (
	WalletCodeUserRejected = 4001
	WalletCodeUnknownChain = 4902
	WalletCodeDisconnected = 4900
	WalletCodeUnsupported  = 4200
	WalletCodeUnauthorized = 4100

	// WalletCodeInvalidParams is the JSON-RPC invalid params code
	WalletCodeInvalidParams = -32602
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrComponentNotFound is returned when a component id is not in the catalog
	ErrComponentNotFound = fmt.Errorf("component %w", ErrNotFound)

	// ErrNetworkNotFound is returned when a network name is not configured
	ErrNetworkNotFound = fmt.Errorf("network %w", ErrNotFound)

	// ErrInvalidChainID is returned when a chain ID is invalid
	ErrInvalidChainID = errors.New("invalid chain ID")

	// ErrEmptyPrompt is returned when generation is requested with a blank prompt
	ErrEmptyPrompt = errors.New("please provide a contract description")

	// ErrEmptySelection is returned when deploying with no components selected
	ErrEmptySelection = errors.New("please add at least one component to deploy")

	// ErrWalletMissing is returned when no wallet capability is configured
	ErrWalletMissing = errors.New("no wallet available, configure a wallet to deploy contracts")

	// ErrUserRejected is returned when the wallet user declined a request
	ErrUserRejected = errors.New("transaction rejected by user")

	// ErrInsufficientFunds is returned when the account cannot pay for gas
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNetwork is returned when a remote endpoint could not be reached
	ErrNetwork = errors.New("network error")

	// ErrDeploymentFailed is the generic deployment failure
	ErrDeploymentFailed = errors.New("deployment failed")

	// ErrGenerationFailed is returned when the text generation call failed or
	// returned an unexpected shape
	ErrGenerationFailed = errors.New("failed to generate contract")

	// ErrNothingToSave is returned when saving without a generated contract
	ErrNothingToSave = errors.New("no contract to save")
)

// WalletCoder is implemented by wallet errors that carry an EIP-1193 code.
// go-ethereum's rpc.Error satisfies it.
type WalletCoder interface {
	ErrorCode() int
}

// WalletErrorCode extracts the wallet error code from err, if any
func WalletErrorCode(err error) (int, bool) {
	var coder WalletCoder
	if errors.As(err, &coder) {
		return coder.ErrorCode(), true
	}
	return 0, false
}

// DeploymentError is a classified deployment failure
type DeploymentError struct {
	// Kind is one of the sentinel errors above
	Kind error
	// Message is shown to the user
	Message string
	Cause   error
}

func (e *DeploymentError) Error() string {
	return "Deployment failed: " + e.Message
}

func (e *DeploymentError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// Status converts the error into the status shown to the user
func (e *DeploymentError) Status() DeploymentStatus {
	return DeploymentStatus{Kind: StatusError, Message: e.Error()}
}

// ClassifyDeploymentError maps a raw failure from the wallet or chain into a
// DeploymentError. Local precondition errors are passed through unchanged.
func ClassifyDeploymentError(err error, network *NetworkDescriptor) error {
	if err == nil {
		return nil
	}

	var already *DeploymentError
	if errors.As(err, &already) {
		return err
	}
	if errors.Is(err, ErrWalletMissing) || errors.Is(err, ErrEmptySelection) {
		return err
	}

	msg := err.Error()
	lower := strings.ToLower(msg)

	if code, ok := WalletErrorCode(err); ok && code == WalletCodeUserRejected {
		return &DeploymentError{Kind: ErrUserRejected, Message: "Transaction rejected by user", Cause: err}
	}
	if errors.Is(err, ErrUserRejected) {
		return &DeploymentError{Kind: ErrUserRejected, Message: "Transaction rejected by user", Cause: err}
	}

	if strings.Contains(lower, "insufficient funds") {
		symbol, where := "native", "the target network"
		if network != nil {
			symbol = network.NativeCurrency.Symbol
			where = network.Label()
		}
		return &DeploymentError{
			Kind:    ErrInsufficientFunds,
			Message: fmt.Sprintf("Insufficient %s balance for gas fees on %s", symbol, where),
			Cause:   err,
		}
	}

	if strings.Contains(lower, "gas required exceeds allowance") {
		return &DeploymentError{
			Kind:    ErrDeploymentFailed,
			Message: "Gas estimation failed. Please try increasing the gas limit.",
			Cause:   err,
		}
	}
	if strings.Contains(lower, "internal json-rpc error") {
		return &DeploymentError{
			Kind:    ErrDeploymentFailed,
			Message: "The wallet reported an internal JSON-RPC error. Try again with a lower gas price.",
			Cause:   err,
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, ErrNetwork) {
		return &DeploymentError{Kind: ErrNetwork, Message: msg, Cause: err}
	}

	return &DeploymentError{Kind: ErrDeploymentFailed, Message: msg, Cause: err}
}

// StatusFromError converts any deployment failure into an error status
func StatusFromError(err error) DeploymentStatus {
	var de *DeploymentError
	if errors.As(err, &de) {
		return de.Status()
	}
	return DeploymentStatus{Kind: StatusError, Message: "Deployment failed: " + err.Error()}
}
