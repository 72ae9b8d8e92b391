package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Context settings
	Network string // default deploy network name

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	NoColor        bool
	Timeout        time.Duration

	// Extra component catalog merged over the built-in one (optional)
	CatalogPath string
	// Extra network descriptors merged over the built-in ones (optional)
	NetworksPath string

	Assembler AssemblerConfig
	Generator GeneratorConfig
	Wallet    WalletConfig
	Compiler  CompilerConfig
	Server    ServerConfig
}

// AssemblerConfig controls the contract wrapper
type AssemblerConfig struct {
	ContractName string
	Pragma       string
	License      string
	Boilerplate  bool // constructor, receive and fallback after the body
}

// GeneratorProvider selects the text generation backend
type GeneratorProvider string

const (
	GeneratorOpenAI GeneratorProvider = "openai"
	GeneratorGemini GeneratorProvider = "gemini"
	GeneratorRoute  GeneratorProvider = "route"
)

// GeneratorConfig configures prompt-to-text generation
type GeneratorConfig struct {
	Provider    GeneratorProvider
	BaseURL     string
	Model       string
	APIKey      string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	FilePrefix  string
}

// WalletKind selects the wallet implementation
type WalletKind string

const (
	WalletNone WalletKind = "none"
	WalletRPC  WalletKind = "rpc"
	WalletKey  WalletKind = "key"
)

// WalletConfig configures the deployment wallet
type WalletConfig struct {
	Kind        WalletKind
	RPCURL      string
	PrivateKey  string
	AutoApprove bool
	PollEvery   time.Duration
}

// CompilerMode selects how deployment bytecode is produced
type CompilerMode string

const (
	CompilerDemo CompilerMode = "demo"
	CompilerSolc CompilerMode = "solc"
)

// CompilerConfig configures the compiler port
type CompilerConfig struct {
	Mode          CompilerMode
	SolcPath      string
	OptimizerRuns int
}

// ServerConfig configures `mosaic serve`
type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}
