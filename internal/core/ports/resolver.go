package ports

import (
	"github.com/AntonioJCosta/cmdalias/internal/core/domain/command"
	"github.com/AntonioJCosta/cmdalias/internal/core/domain/expansion"
)

// Resolver rewrites an invocation using a catalog's alias trees.
type Resolver interface {
	Resolve(catalog *command.Catalog, tokens []string) (expansion.Outcome, error)
}
