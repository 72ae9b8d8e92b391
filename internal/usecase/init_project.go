package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/trebuchet-org/mosaic/internal/domain/config"
)

// InitProject prepares a directory for mosaic: the data dir, a config file
// and an example environment file.
type InitProject struct {
	config     *config.RuntimeConfig
	fileWriter FileWriter
	progress   ProgressSink
}

// NewInitProject creates a new init project use case
func NewInitProject(cfg *config.RuntimeConfig, fileWriter FileWriter, progress ProgressSink) *InitProject {
	return &InitProject{
		config:     cfg,
		fileWriter: fileWriter,
		progress:   progress,
	}
}

// InitProjectResult contains the result of project initialization
type InitProjectResult struct {
	DataDirCreated     bool
	ConfigCreated      bool
	EnvExampleCreated  bool
	NetworksCreated    bool
	AlreadyInitialized bool
	Steps              []InitStep
}

// InitStep represents a step in the initialization process
type InitStep struct {
	Name    string
	Success bool
	Message string
	Error   error
}

const configTemplate = `# mosaic configuration
# Every key can be overridden with a MOSAIC_ environment variable,
# e.g. MOSAIC_GENERATOR_MODEL=llama.

network: mantle-sepolia

assembler:
  boilerplate: true

generator:
  provider: openai
  base_url: https://llama8b.gaia.domains/v1
  model: llama

wallet:
  kind: rpc
  rpc_url: http://127.0.0.1:1248

compiler:
  mode: demo
`

const envExampleTemplate = `# mosaic environment

# API key for the text generator
MOSAIC_GENERATOR_API_KEY=

# Private key for the local signer (wallet.kind = key)
MOSAIC_WALLET_PRIVATE_KEY=
`

const networksTemplate = `# Extra networks for mosaic. Built-in: mantle, mantle-sepolia.
#
# [networks.local]
# chain_id = "0x7a69"
# chain_name = "Local"
# rpc_urls = ["http://127.0.0.1:8545"]
# block_explorer_urls = ["http://127.0.0.1:8545"]
# testnet = true
#
# [networks.local.native_currency]
# name = "Ether"
# symbol = "ETH"
# decimals = 18
`

// Execute initializes mosaic in the project root
func (i *InitProject) Execute(ctx context.Context) (*InitProjectResult, error) {
	result := &InitProjectResult{}

	step := i.createDataDir(ctx)
	result.Steps = append(result.Steps, step)
	if !step.Success {
		return result, step.Error
	}
	result.DataDirCreated = true

	configPath := filepath.Join(i.config.DataDir, "config.yaml")
	step = i.createFile(ctx, "Create config.yaml", configPath, configTemplate)
	result.Steps = append(result.Steps, step)
	result.ConfigCreated = step.Success
	if step.Success && step.Message == "already exists" {
		result.AlreadyInitialized = true
	}

	step = i.createFile(ctx, "Create networks.toml", filepath.Join(i.config.DataDir, "networks.toml"), networksTemplate)
	result.Steps = append(result.Steps, step)
	result.NetworksCreated = step.Success

	step = i.createFile(ctx, "Create Environment Example", filepath.Join(i.config.ProjectRoot, ".env.example"), envExampleTemplate)
	result.Steps = append(result.Steps, step)
	result.EnvExampleCreated = step.Success

	for _, s := range result.Steps {
		if s.Error != nil {
			i.progress.Error(fmt.Sprintf("%s: %v", s.Name, s.Error))
		}
	}

	return result, nil
}

func (i *InitProject) createDataDir(ctx context.Context) InitStep {
	if err := i.fileWriter.EnsureDirectory(ctx, i.config.DataDir); err != nil {
		return InitStep{
			Name:    "Create Data Directory",
			Success: false,
			Error:   fmt.Errorf("failed to create %s: %w", i.config.DataDir, err),
		}
	}
	return InitStep{
		Name:    "Create Data Directory",
		Success: true,
		Message: i.config.DataDir,
	}
}

func (i *InitProject) createFile(ctx context.Context, name, path, content string) InitStep {
	exists, err := i.fileWriter.FileExists(ctx, path)
	if err != nil {
		return InitStep{
			Name:    name,
			Success: false,
			Error:   fmt.Errorf("failed to check %s: %w", path, err),
		}
	}
	if exists {
		return InitStep{
			Name:    name,
			Success: true,
			Message: "already exists",
		}
	}

	if err := i.fileWriter.WriteFile(ctx, path, content); err != nil {
		return InitStep{
			Name:    name,
			Success: false,
			Error:   fmt.Errorf("failed to create %s: %w", path, err),
		}
	}
	return InitStep{
		Name:    name,
		Success: true,
		Message: "created " + path,
	}
}
