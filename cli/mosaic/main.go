package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/trebuchet-org/mosaic/internal/cli"
	"github.com/trebuchet-org/mosaic/internal/cli/render"
	"github.com/trebuchet-org/mosaic/internal/config"
	"github.com/trebuchet-org/mosaic/internal/domain"
)

// Set with -ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)

	rootCmd := cli.NewRootCmd()
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		var de *domain.DeploymentError
		if errors.As(err, &de) {
			fmt.Fprintln(os.Stderr, render.FormatStatus(de.Status()))
		} else {
			fmt.Fprintln(os.Stderr, render.FormatError(err.Error()))
		}
		os.Exit(1)
	}
}
