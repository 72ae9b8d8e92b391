package adapters

import (
	"log/slog"

	"github.com/google/wire"

	"github.com/trebuchet-org/mosaic/internal/adapters/blockchain"
	"github.com/trebuchet-org/mosaic/internal/adapters/catalog"
	"github.com/trebuchet-org/mosaic/internal/adapters/compiler"
	"github.com/trebuchet-org/mosaic/internal/adapters/fs"
	"github.com/trebuchet-org/mosaic/internal/adapters/interactive"
	"github.com/trebuchet-org/mosaic/internal/adapters/llm"
	"github.com/trebuchet-org/mosaic/internal/adapters/network"
	"github.com/trebuchet-org/mosaic/internal/adapters/preview"
	"github.com/trebuchet-org/mosaic/internal/adapters/template"
	"github.com/trebuchet-org/mosaic/internal/adapters/wallet"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// ProvideWallet picks the wallet implementation named by the config
func ProvideWallet(cfg *config.RuntimeConfig, selector *interactive.SelectorAdapter, log *slog.Logger) (usecase.Wallet, error) {
	switch cfg.Wallet.Kind {
	case config.WalletRPC:
		return wallet.NewRPCWallet(cfg.Wallet.RPCURL, log), nil
	case config.WalletKey:
		return wallet.NewKeyWallet(cfg.Wallet.PrivateKey, selector, cfg.Wallet.AutoApprove, log)
	default:
		return wallet.NewMissing(), nil
	}
}

// ProvideTextGenerator picks the generation backend named by the config
func ProvideTextGenerator(cfg *config.RuntimeConfig, log *slog.Logger) usecase.TextGenerator {
	switch cfg.Generator.Provider {
	case config.GeneratorGemini:
		return llm.NewGeminiClient(cfg.Generator, log)
	case config.GeneratorRoute:
		return llm.NewRouteClient(cfg.Generator, log)
	default:
		return llm.NewOpenAIClient(cfg.Generator, log)
	}
}

// ProvideCompiler picks the compiler named by the config
func ProvideCompiler(cfg *config.RuntimeConfig) usecase.Compiler {
	if cfg.Compiler.Mode == config.CompilerSolc {
		return compiler.NewSolc(cfg)
	}
	return compiler.NewDemo()
}

// ProvideCheckerFactory builds one checker per network probe
func ProvideCheckerFactory() func() usecase.BlockchainChecker {
	return func() usecase.BlockchainChecker {
		return blockchain.NewCheckerAdapter()
	}
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewSelectionStoreAdapter,
	wire.Bind(new(usecase.SelectionRepository), new(*fs.SelectionStoreAdapter)),

	fs.NewGeneratedStoreAdapter,
	wire.Bind(new(usecase.GenerationRepository), new(*fs.GeneratedStoreAdapter)),

	fs.NewFileWriterAdapter,
	wire.Bind(new(usecase.FileWriter), new(*fs.FileWriterAdapter)),

	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigRepository), new(*fs.LocalConfigStoreAdapter)),
)

// CatalogSet provides the component library and network table
var CatalogSet = wire.NewSet(
	catalog.NewCatalog,
	wire.Bind(new(usecase.ComponentCatalog), new(*catalog.Catalog)),

	network.NewRegistry,
	wire.Bind(new(usecase.NetworkRegistry), new(*network.Registry)),
)

// TemplateSet provides source assembly and preview
var TemplateSet = wire.NewSet(
	template.NewSourceAssemblerAdapter,
	wire.Bind(new(usecase.SourceAssembler), new(*template.SourceAssemblerAdapter)),

	preview.NewHighlighter,
	wire.Bind(new(usecase.SourceHighlighter), new(*preview.Highlighter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ComponentSelector), new(*interactive.SelectorAdapter)),
)

// BlockchainSet provides wallet, compiler and chain access
var BlockchainSet = wire.NewSet(
	ProvideWallet,
	ProvideCompiler,
	ProvideCheckerFactory,
	blockchain.NewCheckerAdapter,
	wire.Bind(new(usecase.BlockchainChecker), new(*blockchain.CheckerAdapter)),
)

// GeneratorSet provides the text generator
var GeneratorSet = wire.NewSet(
	ProvideTextGenerator,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	CatalogSet,
	TemplateSet,
	InteractiveSet,
	BlockchainSet,
	GeneratorSet,
)
