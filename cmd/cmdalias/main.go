package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/AntonioJCosta/cmdalias/internal/adapters/configloader"
	"github.com/AntonioJCosta/cmdalias/internal/adapters/oscommand"
	"github.com/AntonioJCosta/cmdalias/internal/core/services/aliasexpansion"
	"github.com/AntonioJCosta/cmdalias/internal/core/services/resolution"
	"github.com/AntonioJCosta/cmdalias/internal/handlers/cli"
	"github.com/AntonioJCosta/cmdalias/internal/handlers/ui"
)

// Version is set at build time
var Version = "dev"

func main() {
	catalogLoader := configloader.NewLoader(afero.NewOsFs())
	resolver := resolution.NewResolver()
	processExecutor := oscommand.NewProcessExecutor()

	expansionSvc := aliasexpansion.NewService(catalogLoader, resolver, processExecutor)
	rootCmd := cli.NewRootCommand(Version, expansionSvc)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("cmdalias: %v", err)))
		os.Exit(1)
	}
}
