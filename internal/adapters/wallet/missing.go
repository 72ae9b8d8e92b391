package wallet

import (
	"context"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// Missing is the wallet used when none is configured
type Missing struct{}

// NewMissing creates the missing wallet
func NewMissing() *Missing {
	return &Missing{}
}

// Available always reports false
func (Missing) Available() bool {
	return false
}

// Request always fails with ErrWalletMissing
func (Missing) Request(context.Context, any, string, ...any) error {
	return domain.ErrWalletMissing
}

var _ usecase.Wallet = Missing{}
