package game

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cases := []struct {
		moveCap, blocks int
		err             error
	}{
		{3, 4, nil},
		{5, 20, nil},
		{2, 10, ErrInvalidMoveCap},
		{0, 10, ErrInvalidMoveCap},
		{3, 3, ErrInvalidPile},
		{4, 1, ErrInvalidPile},
	}
	for _, c := range cases {
		g, err := New(c.moveCap, c.blocks)
		if c.err != nil {
			assert.Equal(t, c.err, errors.Cause(err), "New(%d, %d)", c.moveCap, c.blocks)
			assert.Nil(t, g)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, c.blocks, g.Remaining())
		assert.Equal(t, c.moveCap, g.MoveCap())
		assert.Equal(t, Computer, g.ToMove())
	}
}

func TestPileCheck(t *testing.T) {
	g, err := New(4, 5)
	require.NoError(t, err)

	assert.NoError(t, g.Check(PlayerMove{Computer, 1}))
	assert.NoError(t, g.Check(PlayerMove{Computer, 2}))
	assert.NoError(t, g.Check(PlayerMove{Computer, 4}))

	err = g.Check(PlayerMove{Computer, 3})
	assert.True(t, IsMoveError(err))
	assert.Equal(t, ErrIllegalAmount, errors.Cause(err))

	require.NoError(t, g.Apply(PlayerMove{Computer, 4}))
	err = g.Check(PlayerMove{Human, 2})
	assert.Equal(t, ErrTooMany, errors.Cause(err))
	assert.Equal(t, []int{1}, g.LegalMoves())

	require.NoError(t, g.Apply(PlayerMove{Human, 1}))
	err = g.Check(PlayerMove{Computer, 1})
	assert.Equal(t, ErrGameOver, errors.Cause(err))
}

func TestPileApplyAndEnded(t *testing.T) {
	g, err := New(3, 6)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, g.LegalMoves())

	require.NoError(t, g.Apply(PlayerMove{Computer, 3}))
	assert.Equal(t, Human, g.ToMove())
	ended, _ := g.Ended()
	assert.False(t, ended)

	require.NoError(t, g.Apply(PlayerMove{Human, 2}))
	require.NoError(t, g.Apply(PlayerMove{Computer, 1}))

	ended, winner := g.Ended()
	assert.True(t, ended)
	assert.Equal(t, Computer, winner, "the player emptying the pile is reported as the winner")
	assert.Equal(t, 3, g.MoveNumber())
	assert.True(t, g.LastMove().Eq(PlayerMove{Computer, 1}))
}

func TestPileRule(t *testing.T) {
	g, err := New(3, 4)
	require.NoError(t, err)
	assert.Equal(t, LastTakerWins, g.Rule())
	require.NoError(t, g.Apply(PlayerMove{Computer, 3}))
	require.NoError(t, g.Apply(PlayerMove{Human, 1}))

	_, winner := g.Ended()
	assert.Equal(t, Human, winner)

	g.SetRule(LastTakerLoses)
	_, winner = g.Ended()
	assert.Equal(t, Computer, winner)
	assert.Equal(t, LastTakerLoses, g.Clone().Rule())
	assert.Equal(t, "last taker loses", g.Rule().String())
}

func TestPileUndoFwd(t *testing.T) {
	g, err := New(3, 7)
	require.NoError(t, err)
	require.NoError(t, g.Apply(PlayerMove{Computer, 3}))
	require.NoError(t, g.Apply(PlayerMove{Human, 1}))

	g.UndoLastMove()
	assert.Equal(t, 4, g.Remaining())
	assert.Equal(t, Human, g.ToMove())
	assert.Equal(t, 1, g.MoveNumber())

	g.Fwd()
	assert.Equal(t, 3, g.Remaining())
	assert.Equal(t, Computer, g.ToMove())

	// applying after an undo discards the undone future
	g.UndoLastMove()
	require.NoError(t, g.Apply(PlayerMove{Human, 2}))
	g.Fwd()
	assert.Equal(t, 2, g.Remaining())

	g.Reset()
	assert.Equal(t, 7, g.Remaining())
	assert.Equal(t, 0, g.MoveNumber())
}

func TestPileClone(t *testing.T) {
	g, err := New(3, 9)
	require.NoError(t, err)
	require.NoError(t, g.Apply(PlayerMove{Computer, 2}))

	c := g.Clone()
	assert.Equal(t, fmt.Sprintf("%s", g), fmt.Sprintf("%s", c))
	assert.Equal(t, g.ToMove(), c.ToMove())
	assert.Equal(t, g.LastMove(), c.LastMove())
	require.NoError(t, c.Apply(PlayerMove{Human, 3}))
	assert.Equal(t, 7, g.Remaining())
	assert.Equal(t, 4, c.Remaining())
	assert.Equal(t, Human, g.ToMove())
	assert.Equal(t, 1, g.MoveNumber())
}

func TestPileFormat(t *testing.T) {
	g, err := New(3, 4)
	require.NoError(t, err)
	assert.Equal(t, "⎢ ■ ■ ■ ■ ⎥ 4", fmt.Sprintf("%s", g))
	assert.Equal(t, "4", fmt.Sprintf("%d", g))
	assert.Equal(t, "MAX-3", fmt.Sprintf("%s", PlayerMove{Computer, 3}))
	assert.Equal(t, "Human-1", fmt.Sprintf("%v", PlayerMove{Human, 1}))
}
