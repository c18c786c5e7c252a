package testutil

import (
	"github.com/AntonioJCosta/cmdalias/internal/core/domain/command"
	"github.com/AntonioJCosta/cmdalias/internal/core/domain/expansion"
	"github.com/AntonioJCosta/cmdalias/internal/core/ports"
)

// MockResolver is a mock implementation of ports.Resolver.
type MockResolver struct {
	ResolveFunc func(catalog *command.Catalog, tokens []string) (expansion.Outcome, error)
}

// Resolve calls the mock ResolveFunc. Without one, tokens are returned as a Direct outcome.
func (m *MockResolver) Resolve(catalog *command.Catalog, tokens []string) (expansion.Outcome, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(catalog, tokens)
	}
	return expansion.Outcome{Kind: expansion.Direct, Argv: tokens}, nil
}

var _ ports.Resolver = (*MockResolver)(nil)
