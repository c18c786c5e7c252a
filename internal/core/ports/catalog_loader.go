package ports

import "github.com/AntonioJCosta/cmdalias/internal/core/domain/command"

/*
CatalogLoader defines the contract for building a command catalog from a
configuration source. This is a driven port, implemented by an adapter that
understands the configuration formats.
*/
type CatalogLoader interface {
	// Load reads the configuration at path, a file or a directory.
	// An empty path selects the default location.
	Load(path string) (*command.Catalog, error)
}
