package testutil

import (
	"errors"

	"github.com/AntonioJCosta/cmdalias/internal/core/domain/command"
	"github.com/AntonioJCosta/cmdalias/internal/core/domain/expansion"
	"github.com/AntonioJCosta/cmdalias/internal/core/ports"
)

// MockExpansionService is a mock implementation of ports.ExpansionService.
type MockExpansionService struct {
	LoadCatalogFunc  func(configPath string) (*command.Catalog, error)
	ShellAliasesFunc func(catalog *command.Catalog, configPath string) []string
	ExpandFunc       func(catalog *command.Catalog, tokens []string) (expansion.Outcome, error)
	ExecuteFunc      func(outcome expansion.Outcome) error

	// ExecuteCalls keeps track of the outcomes passed to Execute.
	ExecuteCalls []expansion.Outcome
}

func (m *MockExpansionService) LoadCatalog(configPath string) (*command.Catalog, error) {
	if m.LoadCatalogFunc != nil {
		return m.LoadCatalogFunc(configPath)
	}
	return nil, errors.New("MockExpansionService: LoadCatalogFunc not implemented")
}

func (m *MockExpansionService) ShellAliases(catalog *command.Catalog, configPath string) []string {
	if m.ShellAliasesFunc != nil {
		return m.ShellAliasesFunc(catalog, configPath)
	}
	return nil
}

func (m *MockExpansionService) Expand(catalog *command.Catalog, tokens []string) (expansion.Outcome, error) {
	if m.ExpandFunc != nil {
		return m.ExpandFunc(catalog, tokens)
	}
	return expansion.Outcome{}, errors.New("MockExpansionService: ExpandFunc not implemented")
}

func (m *MockExpansionService) Execute(outcome expansion.Outcome) error {
	m.ExecuteCalls = append(m.ExecuteCalls, outcome)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(outcome)
	}
	return nil
}

var _ ports.ExpansionService = (*MockExpansionService)(nil)
