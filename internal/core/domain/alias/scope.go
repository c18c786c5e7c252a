package alias

/*
Scope is the set of alias nodes active at one resolution depth.

Nodes are kept in definition order for display, while lookups go through a
name index that every insertion overwrites. The effect is that when two nodes
share a trigger name, the one added last wins.
*/
type Scope struct {
	nodes []*Node
	index map[string]*Node
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{index: make(map[string]*Node)}
}

// Add inserts n into the scope. It returns the trigger names of n that were
// already bound to an earlier node and are now shadowed.
func (s *Scope) Add(n *Node) (shadowed []string) {
	if s.index == nil {
		s.index = make(map[string]*Node)
	}
	s.nodes = append(s.nodes, n)
	for _, name := range n.Names {
		if prev, exists := s.index[name]; exists && prev != n {
			shadowed = append(shadowed, name)
		}
		s.index[name] = n
	}
	return shadowed
}

// Lookup returns the most recently added node triggered by name.
// A nil scope has no nodes.
func (s *Scope) Lookup(name string) (*Node, bool) {
	if s == nil {
		return nil, false
	}
	n, ok := s.index[name]
	return n, ok
}

// Nodes returns the nodes in definition order.
func (s *Scope) Nodes() []*Node {
	if s == nil {
		return nil
	}
	out := make([]*Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Len returns the number of nodes in the scope, shadowed ones included.
func (s *Scope) Len() int {
	if s == nil {
		return 0
	}
	return len(s.nodes)
}

// Names returns every trigger name reachable at this depth, in definition
// order, without duplicates.
func (s *Scope) Names() []string {
	if s == nil {
		return nil
	}
	seen := make(map[string]bool)
	var names []string
	for _, n := range s.nodes {
		for _, name := range n.Names {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
