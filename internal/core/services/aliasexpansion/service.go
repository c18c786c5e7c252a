package aliasexpansion

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/cmdalias/internal/core/domain/command"
	"github.com/AntonioJCosta/cmdalias/internal/core/domain/expansion"
	"github.com/AntonioJCosta/cmdalias/internal/core/ports"
	"github.com/AntonioJCosta/cmdalias/internal/logger"
)

// ProgramName is the name the generated shell aliases invoke.
const ProgramName = "cmdalias"

type service struct {
	loader   ports.CatalogLoader
	resolver ports.Resolver
	executor ports.ProcessExecutor
}

// NewService creates a new alias expansion service.
// It panics if any dependency is nil.
func NewService(l ports.CatalogLoader, r ports.Resolver, e ports.ProcessExecutor) ports.ExpansionService {
	if l == nil {
		panic("catalogLoader cannot be nil")
	}
	if r == nil {
		panic("resolver cannot be nil")
	}
	if e == nil {
		panic("processExecutor cannot be nil")
	}
	return &service{loader: l, resolver: r, executor: e}
}

// LoadCatalog loads the configuration at configPath.
// Loader errors are returned as *expansion.ConfigLoadError.
func (s *service) LoadCatalog(configPath string) (*command.Catalog, error) {
	catalog, err := s.loader.Load(configPath)
	if err != nil {
		var loadErr *expansion.ConfigLoadError
		if errors.As(err, &loadErr) {
			return nil, err
		}
		return nil, &expansion.ConfigLoadError{Path: configPath, Err: err}
	}
	if catalog == nil {
		catalog = command.NewCatalog()
	}
	return catalog, nil
}

/*
ShellAliases returns a shell alias statement for the canonical and every
alternate name of each catalog entry, in definition order. Each statement
routes the name through ProgramName using the entry's canonical name:

	alias g="cmdalias -- git";
	alias g="cmdalias -c /etc/cmdalias -- git";   // configPath set
*/
func (s *service) ShellAliases(catalog *command.Catalog, configPath string) []string {
	var lines []string
	for _, entry := range catalog.Entries() {
		for _, name := range entry.InvocationNames() {
			lines = append(lines, shellAliasLine(name, entry.Name, configPath))
		}
	}
	return lines
}

func shellAliasLine(name, canonical, configPath string) string {
	if configPath != "" {
		return fmt.Sprintf("alias %s=\"%s -c %s -- %s\";", name, ProgramName, configPath, canonical)
	}
	return fmt.Sprintf("alias %s=\"%s -- %s\";", name, ProgramName, canonical)
}

// Expand resolves tokens against the catalog.
func (s *service) Expand(catalog *command.Catalog, tokens []string) (expansion.Outcome, error) {
	outcome, err := s.resolver.Resolve(catalog, tokens)
	if err != nil {
		return expansion.Outcome{}, err
	}
	logger.Debug("invocation resolved", "command", outcome.Command, "kind", outcome.Kind, "argv", outcome.Argv)
	return outcome, nil
}

// Execute hands a Direct or Expanded outcome to the process executor. On
// success it does not return.
func (s *service) Execute(outcome expansion.Outcome) error {
	switch outcome.Kind {
	case expansion.NotFound:
		return &expansion.NotFoundError{Name: outcome.Command}
	case expansion.Direct, expansion.Expanded:
		if len(outcome.Argv) == 0 {
			return expansion.ErrNoCommand
		}
		return s.executor.ReplaceProcess(outcome.Argv)
	default:
		return fmt.Errorf("cannot execute outcome of kind %s", outcome.Kind)
	}
}
