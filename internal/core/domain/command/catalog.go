package command

/*
Catalog is the set of configured base commands. It is built once by a loader
and treated as read-only afterwards.

Like alias.Scope, lookups resolve collisions in favour of the entry added
last.
*/
type Catalog struct {
	entries []*Entry
	index   map[string]*Entry
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]*Entry)}
}

// Add registers e under its canonical and alternate names. It returns the
// names that were already bound to another entry and are now shadowed.
func (c *Catalog) Add(e *Entry) (shadowed []string) {
	if c.index == nil {
		c.index = make(map[string]*Entry)
	}
	c.entries = append(c.entries, e)
	for _, name := range e.InvocationNames() {
		if prev, exists := c.index[name]; exists && prev != e {
			shadowed = append(shadowed, name)
		}
		c.index[name] = e
	}
	return shadowed
}

// Lookup finds the entry invoked as name.
func (c *Catalog) Lookup(name string) (*Entry, bool) {
	if c == nil {
		return nil, false
	}
	e, ok := c.index[name]
	return e, ok
}

// Entries returns all entries in definition order.
func (c *Catalog) Entries() []*Entry {
	if c == nil {
		return nil
	}
	out := make([]*Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries, shadowed ones included.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}
