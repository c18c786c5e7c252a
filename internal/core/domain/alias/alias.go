/*
Package alias defines the core domain entities of a positional alias tree:
token lists, alias nodes and the scopes that hold them.
*/
package alias

/*
Tokens is an ordered list of words. Order is meaningful: tokens end up
verbatim in an argument vector.
*/
type Tokens []string

// Append adds values at the tail, preserving their order.
func (t *Tokens) Append(values ...string) {
	*t = append(*t, values...)
}

// Clone returns an independent copy of the list.
func (t Tokens) Clone() Tokens {
	if t == nil {
		return nil
	}
	out := make(Tokens, len(t))
	copy(out, t)
	return out
}

/*
Node is one alias rule. Any of its Names triggers it; when triggered it emits
Substitutes in place of the token, and the next token is matched against
Children. A Terminal node stops interpretation: everything after it is passed
through untouched.
*/
type Node struct {
	Names       Tokens
	Terminal    bool
	Substitutes Tokens
	Children    *Scope
}

// NewNode creates a node with an empty child scope.
func NewNode(names []string, substitutes []string, terminal bool) *Node {
	return &Node{
		Names:       Tokens(names).Clone(),
		Terminal:    terminal,
		Substitutes: Tokens(substitutes).Clone(),
		Children:    NewScope(),
	}
}

// Matches reports whether token is one of the node's trigger names.
func (n *Node) Matches(token string) bool {
	for _, name := range n.Names {
		if name == token {
			return true
		}
	}
	return false
}

// Emit returns the words that replace token. A node without substitution
// text emits the token itself, so no input word is ever dropped.
func (n *Node) Emit(token string) []string {
	if len(n.Substitutes) == 0 {
		return []string{token}
	}
	return n.Substitutes.Clone()
}
