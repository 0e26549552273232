package minimax

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeThree = `3
|_ 0
|_ 1
|  |_ 0
|_ 2
   |_ 0
   |_ 1
      |_ 0
`

const threeThreeUnevaluated = `3(None)
|_ 0(0)
|_ 1(None)
|  |_ 0(1)
|_ 2(None)
   |_ 0(1)
   |_ 1(None)
      |_ 0(0)
`

const threeThreeScores = `3(1)
|_ 0(0)
|_ 1(1)
|  |_ 0(1)
|_ 2(0)
   |_ 0(1)
   |_ 1(0)
      |_ 0(0)
`

func TestFprint(t *testing.T) {
	tree := Build(3, 3)

	var buf bytes.Buffer
	require.NoError(t, tree.Fprint(&buf, false))
	assert.Equal(t, threeThree, buf.String())

	buf.Reset()
	require.NoError(t, tree.Fprint(&buf, true))
	assert.Equal(t, threeThreeUnevaluated, buf.String())

	tree.Evaluate(tree.Root(), true)
	buf.Reset()
	require.NoError(t, tree.Fprint(&buf, true))
	assert.Equal(t, threeThreeScores, buf.String())

	assert.Equal(t, threeThree, fmt.Sprintf("%s", tree))
	assert.Equal(t, threeThreeScores, fmt.Sprintf("%v", tree))
}

func TestFprintSingleNode(t *testing.T) {
	tree := Build(0, 3)
	assert.Equal(t, "0(1)\n", fmt.Sprintf("%v", tree))
}

func TestNodeFormat(t *testing.T) {
	tree := Build(1, 3)
	root := tree.Root()
	leaf := tree.Children(root)[0]

	assert.Equal(t, "1", fmt.Sprintf("%s", root))
	assert.Equal(t, "{NodeID: 0 Value: 1 Depth: 0 Terminal: false Score: None}", fmt.Sprintf("%v", root))
	assert.Equal(t, "{NodeID: 1 Value: 0 Depth: 1 Terminal: true Score: 0}", fmt.Sprintf("%v", leaf))
}
