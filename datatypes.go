package nim

import (
	"github.com/gorgonia/nim/game"
	"github.com/gorgonia/nim/minimax"
	"github.com/pkg/errors"
)

type Config struct {
	Name     string
	MoveCap  int       // largest number of blocks a player may remove in one turn
	Blocks   int       // starting size of the pile
	MaxNodes int       // maximum size of a game tree. 0 is unlimited
	Rule     game.Rule // how the winner is decided

	// extensions
	OutputEncoder OutputEncoder
	Observer      TurnObserver
}

// DefaultConfig returns a config for a pile of the given size with the given move cap.
func DefaultConfig(moveCap, blocks int) Config {
	return Config{
		Name:     "Nim",
		MoveCap:  moveCap,
		Blocks:   blocks,
		MaxNodes: minimax.MAXTREESIZE,
	}
}

// IsValid returns true if a game can be set up from the config.
func (c Config) IsValid() bool {
	return c.MoveCap >= minimax.MinMoveCap && c.Blocks > c.MoveCap && c.MaxNodes >= 0
}

// ErrInvalidConfig is returned by New when the config cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// OutputEncoder encodes the entire meta state as whatever.
//
// An example OutputEncoder is the GifEncoder. Another example would be a logger.
type OutputEncoder interface {
	Encode(ms game.MetaState) error
	Flush() error
}

// Chooser picks the number of blocks to remove for a player that does not search.
// A human at a console is a Chooser, and so is a random player.
type Chooser interface {
	Choose(g *game.Pile) (take int, err error)
}

// ChooserFunc is a function that can be used as a Chooser.
type ChooserFunc func(g *game.Pile) (int, error)

func (f ChooserFunc) Choose(g *game.Pile) (int, error) { return f(g) }

// TurnObserver is called after every search of the computer, with the game tree the move was picked from.
type TurnObserver func(t *minimax.Tree, take int)
