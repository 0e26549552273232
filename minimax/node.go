package minimax

import (
	"fmt"
)

// Node is a position reachable during a turn's lookahead. It is either a *Terminal or an *Internal.
type Node interface {
	// ID is the node's index in the tree that built it.
	ID() int
	// Value is the number of blocks left on the pile at this position.
	Value() int
	// Depth is the number of removals from the root of the lookahead.
	Depth() int
	// Score returns the minimax value. ok is false if the node has not been evaluated.
	Score() (score int, ok bool)
	IsTerminal() bool

	fmt.Formatter
}

// Terminal is an empty pile. Its score is fixed when it is created.
type Terminal struct {
	id    naughty
	depth int32
	score int8
}

func newTerminal(id naughty, depth int) *Terminal {
	return &Terminal{
		id:    id,
		depth: int32(depth),
		score: int8(leafScore(depth)),
	}
}

// leafScore is the depth parity rule: an empty pile reached at an even depth scores a win for MAX.
func leafScore(depth int) int {
	if depth%2 == 0 {
		return Win
	}
	return Loss
}

func (n *Terminal) ID() int                    { return int(n.id) }
func (n *Terminal) Value() int                 { return 0 }
func (n *Terminal) Depth() int                 { return int(n.depth) }
func (n *Terminal) Score() (int, bool)         { return int(n.score), true }
func (n *Terminal) IsTerminal() bool           { return true }
func (n *Terminal) Format(s fmt.State, c rune) { formatNode(s, c, n) }

// Internal is a non-empty pile with at least one legal removal.
type Internal struct {
	id        naughty
	value     int32
	depth     int32
	score     int8
	evaluated bool

	children []naughty // in generation order: -k, -2, -1
}

func newInternal(id naughty, value, depth int) *Internal {
	return &Internal{
		id:       id,
		value:    int32(value),
		depth:    int32(depth),
		children: make([]naughty, 0, 3),
	}
}

func (n *Internal) ID() int    { return int(n.id) }
func (n *Internal) Value() int { return int(n.value) }
func (n *Internal) Depth() int { return int(n.depth) }

func (n *Internal) Score() (int, bool) {
	if !n.evaluated {
		return 0, false
	}
	return int(n.score), true
}

func (n *Internal) IsTerminal() bool { return false }

func (n *Internal) Format(s fmt.State, c rune) { formatNode(s, c, n) }

func (n *Internal) setScore(score int) {
	n.score = int8(score)
	n.evaluated = true
}

func formatNode(s fmt.State, c rune, n Node) {
	switch c {
	case 'v':
		score, ok := n.Score()
		if !ok {
			fmt.Fprintf(s, "{NodeID: %d Value: %d Depth: %d Terminal: %t Score: None}", n.ID(), n.Value(), n.Depth(), n.IsTerminal())
			return
		}
		fmt.Fprintf(s, "{NodeID: %d Value: %d Depth: %d Terminal: %t Score: %d}", n.ID(), n.Value(), n.Depth(), n.IsTerminal(), score)
	default:
		fmt.Fprintf(s, "%d", n.Value())
	}
}
