package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens_AppendPreservesOrder(t *testing.T) {
	var toks Tokens
	toks.Append("git")
	toks.Append("checkout", "-b")
	toks.Append()
	toks.Append("feature")

	assert.Equal(t, Tokens{"git", "checkout", "-b", "feature"}, toks)
}

func TestTokens_CloneIsIndependent(t *testing.T) {
	orig := Tokens{"a", "b"}
	clone := orig.Clone()
	clone[0] = "z"

	assert.Equal(t, Tokens{"a", "b"}, orig)
	assert.Nil(t, Tokens(nil).Clone())
}

func TestNewNode(t *testing.T) {
	names := []string{"co", "checkout"}
	n := NewNode(names, []string{"checkout"}, true)
	names[0] = "mutated"

	assert.Equal(t, Tokens{"co", "checkout"}, n.Names, "node must own its names")
	assert.True(t, n.Terminal)
	require.NotNil(t, n.Children)
	assert.Equal(t, 0, n.Children.Len())
}

func TestNode_Matches(t *testing.T) {
	n := NewNode([]string{"co", "ch"}, []string{"checkout"}, false)

	assert.True(t, n.Matches("co"))
	assert.True(t, n.Matches("ch"))
	assert.False(t, n.Matches("checkout"))
	assert.False(t, n.Matches(""))
}

func TestNode_Emit(t *testing.T) {
	tests := []struct {
		name        string
		substitutes []string
		token       string
		want        []string
	}{
		{"single fragment", []string{"checkout"}, "co", []string{"checkout"}},
		{"several fragments", []string{"commit", "-m"}, "cm", []string{"commit", "-m"}},
		{"no substitution emits the token", nil, "commit", []string{"commit"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNode([]string{tt.token}, tt.substitutes, false)
			got := n.Emit(tt.token)
			assert.Equal(t, tt.want, got)

			got[0] = "mutated"
			assert.Equal(t, tt.want, n.Emit(tt.token), "emitted slice must not alias node data")
		})
	}
}
