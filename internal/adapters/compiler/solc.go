package compiler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

const sourceUnit = "Generated.sol"

type standardInput struct {
	Language string                    `json:"language"`
	Sources  map[string]standardSource `json:"sources"`
	Settings standardSettings          `json:"settings"`
}

type standardSource struct {
	Content string `json:"content"`
}

type standardSettings struct {
	Optimizer       optimizerSettings              `json:"optimizer"`
	OutputSelection map[string]map[string][]string `json:"outputSelection"`
}

type optimizerSettings struct {
	Enabled bool `json:"enabled"`
	Runs    int  `json:"runs"`
}

type standardOutput struct {
	Errors    []standardError                                `json:"errors"`
	Contracts map[string]map[string]standardContractArtifact `json:"contracts"`
}

type standardError struct {
	Severity         string `json:"severity"`
	Type             string `json:"type"`
	FormattedMessage string `json:"formattedMessage"`
	Message          string `json:"message"`
}

type standardContractArtifact struct {
	ABI json.RawMessage `json:"abi"`
	EVM struct {
		Bytecode struct {
			Object string `json:"object"`
		} `json:"bytecode"`
	} `json:"evm"`
}

// Solc compiles source with a local solc binary in standard-json mode
type Solc struct {
	path         string
	contractName string
	runs         int
}

// NewSolc creates a solc backed compiler
func NewSolc(cfg *config.RuntimeConfig) *Solc {
	path := cfg.Compiler.SolcPath
	if path == "" {
		path = "solc"
	}
	name := cfg.Assembler.ContractName
	if name == "" {
		name = "GeneratedContract"
	}
	runs := cfg.Compiler.OptimizerRuns
	if runs <= 0 {
		runs = 200
	}
	return &Solc{path: path, contractName: name, runs: runs}
}

// Compile runs solc and extracts the generated contract
func (s *Solc) Compile(ctx context.Context, source string) (*domain.CompiledContract, error) {
	input, err := json.Marshal(s.input(source))
	if err != nil {
		return nil, err
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.path, "--standard-json")
	cmd.Stdin = bytes.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: solc failed: %v: %s", domain.ErrDeploymentFailed, err, strings.TrimSpace(stderr.String()))
	}

	compiled, err := ParseStandardOutput(stdout.Bytes(), s.contractName)
	if err != nil {
		return nil, err
	}
	compiled.Source = "solc"
	return compiled, nil
}

func (s *Solc) input(source string) standardInput {
	return standardInput{
		Language: "Solidity",
		Sources:  map[string]standardSource{sourceUnit: {Content: source}},
		Settings: standardSettings{
			Optimizer: optimizerSettings{Enabled: true, Runs: s.runs},
			OutputSelection: map[string]map[string][]string{
				"*": {"*": {"abi", "evm.bytecode.object"}},
			},
		},
	}
}

// ParseStandardOutput picks contractName out of solc standard-json output.
// Compiler errors are joined into one failure; warnings are ignored.
func ParseStandardOutput(data []byte, contractName string) (*domain.CompiledContract, error) {
	var out standardOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: unreadable solc output: %v", domain.ErrDeploymentFailed, err)
	}

	var messages []string
	for _, e := range out.Errors {
		if e.Severity != "error" {
			continue
		}
		msg := e.FormattedMessage
		if msg == "" {
			msg = e.Type + ": " + e.Message
		}
		messages = append(messages, strings.TrimSpace(msg))
	}
	if len(messages) > 0 {
		return nil, fmt.Errorf("%w: compilation failed:\n%s", domain.ErrDeploymentFailed, strings.Join(messages, "\n"))
	}

	artifact, ok := out.Contracts[sourceUnit][contractName]
	if !ok {
		return nil, fmt.Errorf("%w: contract %s not found in solc output", domain.ErrDeploymentFailed, contractName)
	}

	bytecode, err := hexutil.Decode("0x" + strings.TrimPrefix(artifact.EVM.Bytecode.Object, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid bytecode: %v", domain.ErrDeploymentFailed, err)
	}
	if _, err := abi.JSON(bytes.NewReader(artifact.ABI)); err != nil {
		return nil, fmt.Errorf("%w: invalid ABI: %v", domain.ErrDeploymentFailed, err)
	}

	return &domain.CompiledContract{
		ContractName: contractName,
		Bytecode:     bytecode,
		ABI:          artifact.ABI,
	}, nil
}

var _ usecase.Compiler = (*Solc)(nil)
