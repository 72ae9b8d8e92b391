package app

import (
	"log/slog"

	"github.com/trebuchet-org/mosaic/internal/domain/config"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Shared dependencies
	Catalog     usecase.ComponentCatalog
	Selections  usecase.SelectionRepository
	Assembler   usecase.SourceAssembler
	Highlighter usecase.SourceHighlighter
	Progress    usecase.ProgressSink

	// Use cases
	ListComponents   *usecase.ListComponents
	ManageSelection  *usecase.ManageSelection
	AssembleSource   *usecase.AssembleSource
	DeployContract   *usecase.DeployContract
	GenerateContract *usecase.GenerateContract
	ManageGenerated  *usecase.ManageGenerated
	ListNetworks     *usecase.ListNetworks
	ShowConfig       *usecase.ShowConfig
	SetConfig        *usecase.SetConfig
	RemoveConfig     *usecase.RemoveConfig
	InitProject      *usecase.InitProject
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	catalog usecase.ComponentCatalog,
	selections usecase.SelectionRepository,
	assembler usecase.SourceAssembler,
	highlighter usecase.SourceHighlighter,
	progress usecase.ProgressSink,
	listComponents *usecase.ListComponents,
	manageSelection *usecase.ManageSelection,
	assembleSource *usecase.AssembleSource,
	deployContract *usecase.DeployContract,
	generateContract *usecase.GenerateContract,
	manageGenerated *usecase.ManageGenerated,
	listNetworks *usecase.ListNetworks,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
	initProject *usecase.InitProject,
) (*App, error) {
	return &App{
		Config:           cfg,
		Log:              log,
		Catalog:          catalog,
		Selections:       selections,
		Assembler:        assembler,
		Highlighter:      highlighter,
		Progress:         progress,
		ListComponents:   listComponents,
		ManageSelection:  manageSelection,
		AssembleSource:   assembleSource,
		DeployContract:   deployContract,
		GenerateContract: generateContract,
		ManageGenerated:  manageGenerated,
		ListNetworks:     listNetworks,
		ShowConfig:       showConfig,
		SetConfig:        setConfig,
		RemoveConfig:     removeConfig,
		InitProject:      initProject,
	}, nil
}
