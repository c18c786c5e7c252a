/*
Package command defines the catalog of base commands that own alias trees.
*/
package command

import "github.com/AntonioJCosta/cmdalias/internal/core/domain/alias"

/*
Entry is one configured base command. Global aliases are consulted at every
depth; Root is the top of the nested alias tree.
*/
type Entry struct {
	Name     string
	AltNames alias.Tokens
	Global   *alias.Scope
	Root     *alias.Scope
}

// NewEntry creates an entry with empty scopes.
func NewEntry(name string, altNames ...string) *Entry {
	return &Entry{
		Name:     name,
		AltNames: alias.Tokens(altNames).Clone(),
		Global:   alias.NewScope(),
		Root:     alias.NewScope(),
	}
}

// Answers reports whether name is the entry's canonical or an alternate name.
func (e *Entry) Answers(name string) bool {
	if e.Name == name {
		return true
	}
	for _, alt := range e.AltNames {
		if alt == name {
			return true
		}
	}
	return false
}

// InvocationNames returns the canonical name followed by the alternate names.
func (e *Entry) InvocationNames() []string {
	names := make([]string, 0, 1+len(e.AltNames))
	names = append(names, e.Name)
	return append(names, e.AltNames...)
}
