package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSavedContractFilename(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 20, 30, 123_000_000, time.UTC)
	assert.Equal(t, "Mantle_Contract_2024-05-01T10_20_30_123Z.sol", SavedContractFilename("Mantle_Contract_", at))

	// Local times are converted to UTC
	local := at.In(time.FixedZone("UTC+2", 2*60*60))
	assert.Equal(t, "Mantle_Contract_2024-05-01T10_20_30_123Z.sol", SavedContractFilename("Mantle_Contract_", local))
}

func TestGenerationResultIsEmpty(t *testing.T) {
	var nilResult *GenerationResult
	assert.True(t, nilResult.IsEmpty())
	assert.True(t, (&GenerationResult{}).IsEmpty())
	assert.False(t, (&GenerationResult{Contract: "contract A {}"}).IsEmpty())
}
