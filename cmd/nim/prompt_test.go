package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/gorgonia/nim"
	"github.com/gorgonia/nim/game"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleSetup(t *testing.T) {
	var out bytes.Buffer
	c := newConsole(strings.NewReader("two\n2\n3\n3\n1\n5\n"), &out)
	moveCap, blocks, err := c.setup(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, moveCap)
	assert.Equal(t, 5, blocks)

	s := out.String()
	assert.Equal(t, 1, strings.Count(s, "Error: Number should be integer. Pick again."))
	assert.Equal(t, 3, strings.Count(s, "(must be integer greater than 2)"), "asked again for two and for 2")
	assert.Equal(t, 3, strings.Count(s, "Please select starting number of blocks (must be integer greater than 3)"))

	c = newConsole(strings.NewReader("4\n"), &out)
	_, _, err = c.setup(0, 0)
	assert.Equal(t, io.ErrUnexpectedEOF, errors.Cause(err))

	// a valid move cap is kept and only the pile is asked for
	out.Reset()
	c = newConsole(strings.NewReader("2\n6\n"), &out)
	moveCap, blocks, err = c.setup(4, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, moveCap)
	assert.Equal(t, 6, blocks)
	assert.NotContains(t, out.String(), "Please select maximum number of blocks")
	assert.Equal(t, 2, strings.Count(out.String(), "(must be integer greater than 4)"))
}

func TestConsoleChoose(t *testing.T) {
	g, err := game.New(4, 5)
	require.NoError(t, err)
	require.NoError(t, g.Apply(game.PlayerMove{Player: game.Computer, Take: 2}))

	var out bytes.Buffer
	c := newConsole(strings.NewReader("x\n3\n4\n2\n"), &out)
	take, err := c.Choose(g)
	require.NoError(t, err)
	assert.Equal(t, 2, take)

	want := "There are 3 blocks remaining. Do you want to remove 1, 2 or 4 blocks?\n" +
		"Error: Number should be integer. Pick again.\n" +
		"There are 3 blocks remaining. Do you want to remove 1, 2 or 4 blocks?\n" +
		"Error: Choice is not valid. Pick again.\n" + // 3 is not a legal amount
		"There are 3 blocks remaining. Do you want to remove 1, 2 or 4 blocks?\n" +
		"Error: Choice is not valid. Pick again.\n" + // 4 is more than the pile
		"There are 3 blocks remaining. Do you want to remove 1, 2 or 4 blocks?\n"
	assert.Equal(t, want, out.String())
}

func TestPlayConsole(t *testing.T) {
	var out bytes.Buffer
	c := newConsole(strings.NewReader("3\n4\nmany\n1\n"), &out)
	moveCap, blocks, err := c.setup(0, 0)
	require.NoError(t, err)

	conf := nim.DefaultConfig(moveCap, blocks)
	conf.Observer = c.showTurn
	n, err := nim.New(conf, c)
	require.NoError(t, err)
	require.NoError(t, playConsole(n, c))

	s := out.String()
	tree := "\nGame tree:\n4\n|_ 1\n|  |_ 0\n"
	scored := "\nGame tree with Minimax values:\n4(1)\n|_ 1(1)\n|  |_ 0(1)\n"
	assert.Contains(t, s, tree)
	assert.Contains(t, s, scored)
	assert.True(t, strings.Index(s, tree) < strings.Index(s, scored), "the tree is printed before its scores")
	assert.Contains(t, s, "\nMax removes 3 blocks.\n")
	assert.Contains(t, s, "There are 1 blocks remaining. Do you want to remove 1, 2 or 3 blocks?\n")
	assert.Contains(t, s, "Error: Number should be integer. Pick again.\n")
	assert.True(t, strings.HasSuffix(s, "\nYou win! Congratulations you beat the computer!\n"), "the human took the last block")
}

func TestAnnounce(t *testing.T) {
	var out bytes.Buffer
	c := newConsole(strings.NewReader(""), &out)
	c.announce(game.Computer)
	assert.Equal(t, "\nYou lose. Max wins. Good luck next time.\n", out.String())
}

func TestCmdPlayFlags(t *testing.T) {
	var out bytes.Buffer
	// a pile of 2 with a move cap of 3 is rejected by the flags, so only the pile is asked for
	err := cmdPlay([]string{"-cap", "3", "-blocks", "2", "-misere"}, strings.NewReader("5\n3\n1\n"), &out)
	require.NoError(t, err)

	s := out.String()
	assert.NotContains(t, s, "Please select maximum number of blocks")
	assert.Contains(t, s, "Please select starting number of blocks (must be integer greater than 3)")
	// 5 -(3)-> 2 -(3 is too many)-> -(1)-> 1 -(1)-> 0: the computer takes the last block and loses
	assert.Contains(t, s, "Error: Choice is not valid. Pick again.\n")
	assert.Contains(t, s, "\nMax removes 1 blocks.\n")
	assert.True(t, strings.HasSuffix(s, "\nYou win! Congratulations you beat the computer!\n"))
}
