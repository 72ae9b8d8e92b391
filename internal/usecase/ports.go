package usecase

import (
	"context"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
)

// ComponentCatalog provides read-only access to the component library
type ComponentCatalog interface {
	List(ctx context.Context, query domain.ComponentQuery) []*domain.ComponentDefinition
	Get(ctx context.Context, id string) (*domain.ComponentDefinition, error)
}

// SelectionRepository persists the ordered selection between invocations
type SelectionRepository interface {
	Load(ctx context.Context) (*domain.Selection, error)
	Save(ctx context.Context, selection *domain.Selection) error
	GetPath() string
}

// SourceAssembler turns an ordered component list into contract source.
// Implementations must be pure: the same input always yields the same text.
type SourceAssembler interface {
	Assemble(components []*domain.ComponentDefinition) string
}

// SourceHighlighter renders assembled source for display
type SourceHighlighter interface {
	Highlight(source string) string
}

// NetworkRegistry resolves network descriptors by name
type NetworkRegistry interface {
	List(ctx context.Context) []*domain.NetworkDescriptor
	Get(ctx context.Context, name string) (*domain.NetworkDescriptor, error)
}

// Wallet is the injected account and transaction capability. Request follows
// EIP-1193: the JSON result is decoded into result, failures carry a wallet
// error code where the wallet provides one.
type Wallet interface {
	// Available reports whether a wallet is present at all
	Available() bool
	Request(ctx context.Context, result any, method string, params ...any) error
}

// Compiler produces deployable bytecode for assembled source
type Compiler interface {
	Compile(ctx context.Context, source string) (*domain.CompiledContract, error)
}

// BlockchainChecker checks on-chain state through a network's public RPC
type BlockchainChecker interface {
	Connect(ctx context.Context, rpcURL string, chainID uint64) error
	CheckDeploymentExists(ctx context.Context, address string) (exists bool, reason string, err error)
}

// TextGenerator forwards a prompt to a hosted language model
type TextGenerator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (string, error)
}

// GenerationRepository holds the latest generated contract text
type GenerationRepository interface {
	Load(ctx context.Context) (*domain.GenerationResult, error)
	Save(ctx context.Context, result *domain.GenerationResult) error
	Clear(ctx context.Context) error
}

// FileWriter handles file system operations for contract files
type FileWriter interface {
	WriteFile(ctx context.Context, path string, content string) error
	ReadFile(ctx context.Context, path string) (string, error)
	FileExists(ctx context.Context, path string) (bool, error)
	EnsureDirectory(ctx context.Context, path string) error
}

// ComponentSelector handles interactive selection of catalog entries
type ComponentSelector interface {
	SelectComponent(ctx context.Context, components []*domain.ComponentDefinition, prompt string) (*domain.ComponentDefinition, error)
}

// LocalConfigRepository manages local configuration persistence
type LocalConfigRepository interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, config *config.LocalConfig) error
	GetPath() string
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
