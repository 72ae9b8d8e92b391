package domain

import (
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codedError struct {
	code int
	msg  string
}

func (e codedError) Error() string  { return e.msg }
func (e codedError) ErrorCode() int { return e.code }

func testnet() *NetworkDescriptor {
	return &NetworkDescriptor{
		Name:           "mantle-sepolia",
		Testnet:        true,
		ChainID:        "0x138B",
		NativeCurrency: NativeCurrency{Name: "MNT", Symbol: "MNT", Decimals: 18},
	}
}

func TestClassifyDeploymentError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		kind    error
		message string
	}{
		{
			name:    "wallet code 4001",
			err:     codedError{code: WalletCodeUserRejected, msg: "User denied transaction signature."},
			kind:    ErrUserRejected,
			message: "Deployment failed: Transaction rejected by user",
		},
		{
			name:    "wrapped wallet code 4001",
			err:     fmt.Errorf("failed to send transaction: %w", codedError{code: WalletCodeUserRejected, msg: "denied"}),
			kind:    ErrUserRejected,
			message: "Deployment failed: Transaction rejected by user",
		},
		{
			name:    "insufficient funds",
			err:     errors.New("insufficient funds for gas * price + value"),
			kind:    ErrInsufficientFunds,
			message: "Deployment failed: Insufficient MNT balance for gas fees on Testnet",
		},
		{
			name:    "gas allowance",
			err:     errors.New("gas required exceeds allowance (30000000)"),
			kind:    ErrDeploymentFailed,
			message: "Deployment failed: Gas estimation failed. Please try increasing the gas limit.",
		},
		{
			name: "transport failure",
			err:  fmt.Errorf("failed to reach wallet: %w", &net.OpError{Op: "dial", Err: errors.New("connection refused")}),
			kind: ErrNetwork,
		},
		{
			name: "other wallet error",
			err:  codedError{code: -32000, msg: "execution reverted"},
			kind: ErrDeploymentFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ClassifyDeploymentError(tt.err, testnet())

			var de *DeploymentError
			require.ErrorAs(t, err, &de)
			assert.ErrorIs(t, err, tt.kind)
			if tt.message != "" {
				assert.Equal(t, tt.message, err.Error())
			}
			assert.Equal(t, StatusError, de.Status().Kind)
		})
	}
}

func TestClassifyDeploymentErrorPassesPreconditionsThrough(t *testing.T) {
	assert.Same(t, ErrWalletMissing, ClassifyDeploymentError(ErrWalletMissing, nil))
	assert.Same(t, ErrEmptySelection, ClassifyDeploymentError(ErrEmptySelection, nil))
	assert.NoError(t, ClassifyDeploymentError(nil, nil))
}

func TestClassifyDeploymentErrorIsIdempotent(t *testing.T) {
	first := ClassifyDeploymentError(errors.New("insufficient funds"), testnet())
	assert.Same(t, first, ClassifyDeploymentError(first, testnet()))
}

func TestStatusFromError(t *testing.T) {
	status := StatusFromError(errors.New("boom"))
	assert.Equal(t, DeploymentStatus{Kind: StatusError, Message: "Deployment failed: boom"}, status)

	classified := ClassifyDeploymentError(codedError{code: WalletCodeUserRejected}, nil)
	assert.Equal(t, "Deployment failed: Transaction rejected by user", StatusFromError(classified).Message)
}

func TestWalletErrorCode(t *testing.T) {
	code, ok := WalletErrorCode(fmt.Errorf("switch: %w", codedError{code: WalletCodeUnknownChain}))
	assert.True(t, ok)
	assert.Equal(t, WalletCodeUnknownChain, code)

	_, ok = WalletErrorCode(errors.New("plain"))
	assert.False(t, ok)
}
