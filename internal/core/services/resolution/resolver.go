package resolution

import (
	"github.com/AntonioJCosta/cmdalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/cmdalias/internal/core/domain/command"
	"github.com/AntonioJCosta/cmdalias/internal/core/domain/expansion"
	"github.com/AntonioJCosta/cmdalias/internal/core/ports"
	"github.com/AntonioJCosta/cmdalias/internal/logger"
)

// Resolver walks a command's alias tree token by token.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() ports.Resolver {
	return &Resolver{}
}

/*
Resolve rewrites tokens, where tokens[0] is the base command.

A single token is returned as a Direct outcome. Otherwise the base command is
looked up in the catalog and each following token is matched against the
entry's global aliases, then against the current scope. A match emits the
node's substitution and descends into its children; a miss emits the token
unchanged and restarts from the top-level scope. A terminal match copies the
remaining tokens verbatim.

Example:

	// git: co -> checkout { b -> -b (terminal) }
	out, _ := r.Resolve(catalog, []string{"git", "co", "b", "feature"})
	// out.Argv == []string{"git", "checkout", "-b", "feature"}
*/
func (r *Resolver) Resolve(catalog *command.Catalog, tokens []string) (expansion.Outcome, error) {
	if len(tokens) == 0 {
		return expansion.Outcome{}, expansion.ErrNoCommand
	}

	base := tokens[0]
	if len(tokens) == 1 {
		return expansion.Outcome{
			Kind:    expansion.Direct,
			Command: base,
			Argv:    []string{base},
		}, nil
	}

	entry, ok := catalog.Lookup(base)
	if !ok {
		logger.Debug("base command not configured", "command", base)
		return expansion.Outcome{Kind: expansion.NotFound, Command: base}, nil
	}

	return expansion.Outcome{
		Kind:    expansion.Expanded,
		Command: base,
		Argv:    expand(entry, tokens[1:]),
	}, nil
}

func expand(entry *command.Entry, args []string) []string {
	argv := alias.Tokens{entry.Name}
	scope := entry.Root

	for i, tok := range args {
		node, origin := match(entry, scope, tok)
		if node == nil {
			logger.Debug("no alias", "command", entry.Name, "token", tok)
			argv.Append(tok)
			scope = entry.Root
			continue
		}

		emitted := node.Emit(tok)
		logger.Debug("alias matched", "command", entry.Name, "token", tok, "scope", origin, "emit", emitted, "terminal", node.Terminal)
		argv.Append(emitted...)
		if node.Terminal {
			argv.Append(args[i+1:]...)
			break
		}
		scope = node.Children
	}
	return argv
}

// match looks tok up in the global scope first, then in the current one.
func match(entry *command.Entry, scope *alias.Scope, tok string) (*alias.Node, string) {
	if node, ok := entry.Global.Lookup(tok); ok {
		return node, "global"
	}
	if node, ok := scope.Lookup(tok); ok {
		return node, "local"
	}
	return nil, ""
}
