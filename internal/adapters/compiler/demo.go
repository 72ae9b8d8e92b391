package compiler

import (
	"context"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// DemoBytecode is a minimal storage contract (set/get of one uint256) used
// as the deployment payload when no compiler is configured
const DemoBytecode = "0x608060405234801561001057600080fd5b5060c78061001f6000396000f3fe6080604052348015600f57600080fd5b506004361060325760003560e01c806360fe47b11460375780636d4ce63c146049575b600080fd5b60476042366004605e565b600055565b005b60005460405190815260200160405180910390f35b600060208284031215606f57600080fd5b503591905056fea26469706673582212209421a1a3e8e910dd74b55d6745924e9374df14ac3447f242525468c198b5e19564736f6c634300080c0033"

const demoABI = `[{"inputs":[],"name":"get","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},{"inputs":[{"internalType":"uint256","name":"x","type":"uint256"}],"name":"set","outputs":[],"stateMutability":"nonpayable","type":"function"}]`

// Demo ignores the source and always returns the fixed demo contract
type Demo struct {
	bytecode []byte
}

// NewDemo creates the demo compiler
func NewDemo() *Demo {
	return &Demo{bytecode: hexutil.MustDecode(DemoBytecode)}
}

// Compile returns the demo payload
func (d *Demo) Compile(_ context.Context, source string) (*domain.CompiledContract, error) {
	bytecode := make([]byte, len(d.bytecode))
	copy(bytecode, d.bytecode)
	return &domain.CompiledContract{
		ContractName: "SimpleStorage",
		Bytecode:     bytecode,
		ABI:          []byte(demoABI),
		Source:       "demo",
	}, nil
}

var _ usecase.Compiler = (*Demo)(nil)
