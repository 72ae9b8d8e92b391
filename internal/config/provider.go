package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/trebuchet-org/mosaic/internal/domain/config"
)

// DataDirName is the per-project directory holding mosaic state
const DataDirName = ".mosaic"

// flagKeys maps flags whose name differs from their config key
var flagKeys = map[string]string{
	"wallet":       "wallet.kind",
	"generator":    "generator.provider",
	"model":        "generator.model",
	"compiler":     "compiler.mode",
	"host":         "server.host",
	"port":         "server.port",
	"auto-approve": "wallet.auto_approve",
	"catalog":      "catalog_path",
	"networks":     "networks_path",
}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	dataDir := v.GetString("data_dir")
	if dataDir == "" {
		dataDir = filepath.Join(projectRoot, DataDirName)
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        dataDir,
		Network:        v.GetString("network"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		NoColor:        v.GetBool("no_color"),
		Timeout:        v.GetDuration("timeout"),
		CatalogPath:    resolvePath(projectRoot, v.GetString("catalog_path")),
		NetworksPath:   resolvePath(projectRoot, v.GetString("networks_path")),
		Assembler: config.AssemblerConfig{
			ContractName: v.GetString("assembler.contract_name"),
			Pragma:       v.GetString("assembler.pragma"),
			License:      v.GetString("assembler.license"),
			Boilerplate:  v.GetBool("assembler.boilerplate"),
		},
		Generator: config.GeneratorConfig{
			Provider:    config.GeneratorProvider(v.GetString("generator.provider")),
			BaseURL:     v.GetString("generator.base_url"),
			Model:       v.GetString("generator.model"),
			APIKey:      v.GetString("generator.api_key"),
			MaxTokens:   v.GetInt("generator.max_tokens"),
			Temperature: v.GetFloat64("generator.temperature"),
			Timeout:     v.GetDuration("generator.timeout"),
			FilePrefix:  v.GetString("generator.file_prefix"),
		},
		Wallet: config.WalletConfig{
			Kind:        config.WalletKind(v.GetString("wallet.kind")),
			RPCURL:      v.GetString("wallet.rpc_url"),
			PrivateKey:  v.GetString("wallet.private_key"),
			AutoApprove: v.GetBool("wallet.auto_approve"),
			PollEvery:   v.GetDuration("wallet.poll_interval"),
		},
		Compiler: config.CompilerConfig{
			Mode:          config.CompilerMode(v.GetString("compiler.mode")),
			SolcPath:      v.GetString("compiler.solc_path"),
			OptimizerRuns: v.GetInt("compiler.optimizer_runs"),
		},
		Server: config.ServerConfig{
			Host:           v.GetString("server.host"),
			Port:           v.GetInt("server.port"),
			AllowedOrigins: v.GetStringSlice("server.allowed_origins"),
		},
	}

	// A non-interactive run cannot answer the signing prompt.
	if cfg.NonInteractive {
		cfg.Wallet.AutoApprove = true
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *config.RuntimeConfig) error {
	switch cfg.Generator.Provider {
	case config.GeneratorOpenAI, config.GeneratorGemini, config.GeneratorRoute:
	default:
		return fmt.Errorf("unknown generator provider %q", cfg.Generator.Provider)
	}
	switch cfg.Wallet.Kind {
	case config.WalletNone, config.WalletRPC:
	case config.WalletKey:
		if cfg.Wallet.PrivateKey == "" {
			return fmt.Errorf("wallet kind %q requires MOSAIC_WALLET_PRIVATE_KEY", cfg.Wallet.Kind)
		}
	default:
		return fmt.Errorf("unknown wallet kind %q", cfg.Wallet.Kind)
	}
	switch cfg.Compiler.Mode {
	case config.CompilerDemo, config.CompilerSolc:
	default:
		return fmt.Errorf("unknown compiler mode %q", cfg.Compiler.Mode)
	}
	return nil
}

func resolvePath(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// FindProjectRoot walks up from the current directory looking for a .mosaic
// directory. Without one the current directory is the project root.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if info, err := os.Stat(filepath.Join(dir, DataDirName)); err == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance. Precedence, highest
// first: flags, MOSAIC_* environment (including .env), config.local.json,
// config.yaml, defaults.
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// .env never overrides variables already set in the environment
	_ = godotenv.Load(filepath.Join(projectRoot, ".env"))

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(projectRoot, DataDirName))

	v.SetEnvPrefix("MOSAIC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	SetDefaults(v, projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()
	mergeLocalConfig(v, filepath.Join(projectRoot, DataDirName, "config.local.json"))

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			key, ok := flagKeys[f.Name]
			if !ok {
				key = strings.ReplaceAll(f.Name, "-", "_")
			}
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}

// SetDefaults registers every configuration default
func SetDefaults(v *viper.Viper, projectRoot string) {
	v.SetDefault("project_root", projectRoot)
	v.SetDefault("network", "mantle-sepolia")
	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)

	v.SetDefault("assembler.contract_name", "GeneratedContract")
	v.SetDefault("assembler.pragma", "^0.8.19")
	v.SetDefault("assembler.license", "MIT")
	v.SetDefault("assembler.boilerplate", true)

	v.SetDefault("generator.provider", string(config.GeneratorOpenAI))
	v.SetDefault("generator.base_url", "https://llama8b.gaia.domains/v1")
	v.SetDefault("generator.model", "llama")
	v.SetDefault("generator.max_tokens", 2000)
	v.SetDefault("generator.temperature", 0.7)
	v.SetDefault("generator.timeout", "2m")
	v.SetDefault("generator.file_prefix", "Mantle_Contract_")

	v.SetDefault("wallet.kind", string(config.WalletNone))
	v.SetDefault("wallet.rpc_url", "http://127.0.0.1:1248")
	v.SetDefault("wallet.auto_approve", false)
	v.SetDefault("wallet.poll_interval", "2s")

	v.SetDefault("compiler.mode", string(config.CompilerDemo))
	v.SetDefault("compiler.solc_path", "solc")
	v.SetDefault("compiler.optimizer_runs", 200)

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{})
}

// mergeLocalConfig layers values saved by `mosaic config set` over config.yaml
func mergeLocalConfig(v *viper.Viper, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var local config.LocalConfig
	if err := json.Unmarshal(data, &local); err != nil {
		return
	}

	overrides := map[string]any{}
	if local.Network != "" {
		overrides["network"] = local.Network
	}
	if local.Wallet != "" {
		overrides["wallet"] = map[string]any{"kind": local.Wallet}
	}
	if local.Generator != "" {
		overrides["generator"] = map[string]any{"provider": local.Generator}
	}
	if len(overrides) > 0 {
		_ = v.MergeConfigMap(overrides)
	}
}
