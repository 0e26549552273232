package minimax

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDot(t *testing.T) {
	tree := Build(4, 3)
	tree.Evaluate(tree.Root(), true)

	dot, err := tree.ToDot()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(dot), "digraph G"), "got %q", dot)
	assert.Equal(t, tree.Len()-1, strings.Count(dot, "->"), "one edge per child")
	assert.Equal(t, tree.Len(), strings.Count(dot, "<TD>Node ID</TD>"), "one table per node")
	assert.Contains(t, dot, `"-3"`)
	assert.Contains(t, dot, "<TD>Terminal</TD>")
	assert.NotContains(t, dot, "<TD>None</TD>", "every node of an evaluated tree has a score")
}

func TestToDotUnevaluated(t *testing.T) {
	tree := Build(2, 3)
	dot, err := tree.ToDot()
	require.NoError(t, err)
	assert.Contains(t, dot, "<TD>None</TD>")
	assert.Contains(t, dot, "<TD>MAX</TD>")
	assert.Contains(t, dot, "<TD>MIN</TD>")
}

func TestSearcherToDot(t *testing.T) {
	s := New(DefaultConfig(3))
	_, err := s.Search(5)
	require.NoError(t, err)

	dot, err := s.ToDot()
	require.NoError(t, err)
	assert.Equal(t, s.Tree().Len()-1, strings.Count(dot, "->"))
}
