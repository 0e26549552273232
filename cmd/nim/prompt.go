package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gorgonia/nim/game"
	"github.com/gorgonia/nim/minimax"
	"github.com/pkg/errors"
)

// console talks to a human over a reader and a writer. It is the nim.Chooser of the human side.
type console struct {
	in  *bufio.Scanner
	out io.Writer
}

func newConsole(r io.Reader, w io.Writer) *console {
	return &console{in: bufio.NewScanner(r), out: w}
}

// readInt prompts until the answer is an integer. Non integers are reported and asked again.
func (c *console) readInt(prompt string) (int, error) {
	for {
		fmt.Fprint(c.out, prompt)
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return 0, errors.WithStack(err)
			}
			return 0, errors.WithStack(io.ErrUnexpectedEOF)
		}
		n, err := strconv.Atoi(strings.TrimSpace(c.in.Text()))
		if err != nil {
			fmt.Fprintln(c.out, "Error: Number should be integer. Pick again.")
			continue
		}
		return n, nil
	}
}

// setup asks for whichever of the move cap and the starting pile is not yet valid.
func (c *console) setup(moveCap, blocks int) (int, int, error) {
	var err error
	for moveCap < minimax.MinMoveCap {
		if moveCap, err = c.readInt("Please select maximum number of blocks that can be removed in each turn\n(must be integer greater than 2)\n"); err != nil {
			return 0, 0, err
		}
	}
	for blocks <= moveCap {
		if blocks, err = c.readInt(fmt.Sprintf("Please select starting number of blocks (must be integer greater than %d)\n", moveCap)); err != nil {
			return 0, 0, err
		}
	}
	return moveCap, blocks, nil
}

// Choose asks the human how many blocks to remove until the answer is a legal move.
func (c *console) Choose(g *game.Pile) (int, error) {
	prompt := fmt.Sprintf("There are %d blocks remaining. Do you want to remove 1, 2 or %d blocks?\n", g.Remaining(), g.MoveCap())
	for {
		take, err := c.readInt(prompt)
		if err != nil {
			return 0, err
		}
		if err = g.Check(game.PlayerMove{Player: g.ToMove(), Take: take}); err != nil {
			fmt.Fprintln(c.out, "Error: Choice is not valid. Pick again.")
			continue
		}
		return take, nil
	}
}

// showTurn prints the computer's game tree before and after scoring, and the move it picked.
func (c *console) showTurn(t *minimax.Tree, take int) {
	fmt.Fprintf(c.out, "\nGame tree:\n%s", t)
	fmt.Fprintf(c.out, "\nGame tree with Minimax values:\n%v", t)
	fmt.Fprintf(c.out, "\nMax removes %d blocks.\n", take)
}

func (c *console) announce(winner game.Player) {
	if winner == game.Computer {
		fmt.Fprintln(c.out, "\nYou lose. Max wins. Good luck next time.")
		return
	}
	fmt.Fprintln(c.out, "\nYou win! Congratulations you beat the computer!")
}
