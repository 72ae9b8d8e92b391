//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/trebuchet-org/mosaic/internal/adapters"
	"github.com/trebuchet-org/mosaic/internal/config"
	"github.com/trebuchet-org/mosaic/internal/logging"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewListComponents,
		usecase.NewManageSelection,
		usecase.NewAssembleSource,
		usecase.NewDeployContract,
		usecase.NewGenerateContract,
		usecase.NewManageGenerated,
		usecase.NewListNetworks,
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,
		usecase.NewInitProject,

		// App
		NewApp,
	)
	return nil, nil
}
