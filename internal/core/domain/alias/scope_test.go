package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope_LaterDefinitionShadows(t *testing.T) {
	first := NewNode([]string{"co"}, []string{"checkout"}, false)
	second := NewNode([]string{"co"}, []string{"commit"}, false)

	s := NewScope()
	assert.Empty(t, s.Add(first))
	assert.Equal(t, []string{"co"}, s.Add(second))

	got, ok := s.Lookup("co")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, 2, s.Len(), "shadowed nodes stay in the scope")
}

func TestScope_ShadowingIsPerName(t *testing.T) {
	a := NewNode([]string{"co", "ch"}, []string{"checkout"}, false)
	b := NewNode([]string{"co"}, []string{"commit"}, false)

	s := NewScope()
	s.Add(a)
	s.Add(b)

	co, _ := s.Lookup("co")
	ch, _ := s.Lookup("ch")
	assert.Same(t, b, co)
	assert.Same(t, a, ch)
}

func TestScope_LookupMiss(t *testing.T) {
	s := NewScope()
	s.Add(NewNode([]string{"co"}, nil, false))

	_, ok := s.Lookup("status")
	assert.False(t, ok)

	var nilScope *Scope
	_, ok = nilScope.Lookup("co")
	assert.False(t, ok)
	assert.Equal(t, 0, nilScope.Len())
	assert.Nil(t, nilScope.Nodes())
}

func TestScope_ZeroValueIsUsable(t *testing.T) {
	var s Scope
	n := NewNode([]string{"st"}, []string{"status"}, false)
	s.Add(n)

	got, ok := s.Lookup("st")
	require.True(t, ok)
	assert.Same(t, n, got)
}

func TestScope_NodesAndNames(t *testing.T) {
	s := NewScope()
	a := NewNode([]string{"co", "ch"}, nil, false)
	b := NewNode([]string{"st"}, nil, false)
	c := NewNode([]string{"co"}, nil, false)
	s.Add(a)
	s.Add(b)
	s.Add(c)

	assert.Equal(t, []*Node{a, b, c}, s.Nodes())
	assert.Equal(t, []string{"co", "ch", "st"}, s.Names())
}
