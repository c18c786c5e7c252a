package testutil

import "github.com/AntonioJCosta/cmdalias/internal/core/ports"

// MockProcessExecutor is a mock implementation of ports.ProcessExecutor.
// Unlike the real executor it returns, so tests can inspect what would have run.
type MockProcessExecutor struct {
	ReplaceProcessFunc func(argv []string) error
	// Executed holds every argv handed over, in call order.
	Executed [][]string
}

// ReplaceProcess records argv and calls ReplaceProcessFunc if set.
func (m *MockProcessExecutor) ReplaceProcess(argv []string) error {
	m.Executed = append(m.Executed, argv)
	if m.ReplaceProcessFunc != nil {
		return m.ReplaceProcessFunc(argv)
	}
	return nil
}

var _ ports.ProcessExecutor = (*MockProcessExecutor)(nil)
