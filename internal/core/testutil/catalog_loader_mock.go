package testutil

import (
	"errors"

	"github.com/AntonioJCosta/cmdalias/internal/core/domain/command"
	"github.com/AntonioJCosta/cmdalias/internal/core/ports"
)

// MockCatalogLoader is a mock implementation of ports.CatalogLoader.
type MockCatalogLoader struct {
	LoadFunc func(path string) (*command.Catalog, error)
	// LoadCalls keeps track of the paths passed to Load.
	LoadCalls []string
}

// Load records the call and delegates to LoadFunc.
func (m *MockCatalogLoader) Load(path string) (*command.Catalog, error) {
	m.LoadCalls = append(m.LoadCalls, path)
	if m.LoadFunc != nil {
		return m.LoadFunc(path)
	}
	return nil, errors.New("MockCatalogLoader.LoadFunc not implemented")
}

var _ ports.CatalogLoader = (*MockCatalogLoader)(nil)
