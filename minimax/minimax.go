package minimax

import (
	"math"

	"github.com/pkg/errors"
)

const (
	// Win is the score of a position that MAX (the computer) wins.
	Win = 1
	// Loss is the score of a position that MAX loses.
	Loss = 0

	// MinMoveCap is the smallest maximum removal the builder accepts. The other removals are always 1 and 2.
	MinMoveCap = 3

	// MaxPile is the largest pile a node can hold.
	MaxPile = math.MaxInt32

	MAXTREESIZE = 1 << 24 // a tree is at max allowed this many nodes - at about 64 bytes per node that is 1GB of memory required
)

var (
	// ErrTreeTooLarge is returned when a lookahead tree would exceed the node budget.
	ErrTreeTooLarge = errors.New("game tree exceeds the node budget")
	// ErrNotEvaluated is returned when a move is requested from a tree that has not been evaluated.
	ErrNotEvaluated = errors.New("game tree has not been evaluated")
	// ErrNoMoves is returned when the root of a tree is an empty pile.
	ErrNoMoves = errors.New("no blocks left to remove")
)

// Config configures a Searcher.
type Config struct {
	MoveCap  int // largest number of blocks removable in one turn
	MaxNodes int // node budget for one turn's tree. 0 means unlimited
}

func DefaultConfig(moveCap int) Config {
	return Config{
		MoveCap:  moveCap,
		MaxNodes: MAXTREESIZE,
	}
}

func (c Config) IsValid() bool {
	return c.MoveCap >= MinMoveCap && c.MaxNodes >= 0
}
