package ports

import (
	"github.com/AntonioJCosta/cmdalias/internal/core/domain/command"
	"github.com/AntonioJCosta/cmdalias/internal/core/domain/expansion"
)

// ExpansionService defines the use cases offered to the command line.
type ExpansionService interface {
	// LoadCatalog loads the configuration at configPath (empty for the default).
	LoadCatalog(configPath string) (*command.Catalog, error)

	// ShellAliases returns one shell alias statement per invocation name in
	// the catalog, each routing the name through this tool.
	ShellAliases(catalog *command.Catalog, configPath string) []string

	// Expand resolves tokens against the catalog.
	Expand(catalog *command.Catalog, tokens []string) (expansion.Outcome, error)

	// Execute hands a resolved outcome to the operating system.
	Execute(outcome expansion.Outcome) error
}
