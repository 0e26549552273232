package nim

import (
	"sync"

	"github.com/gorgonia/nim/game"
	"github.com/gorgonia/nim/minimax"
	"github.com/pkg/errors"
)

// An Agent is a player, the searching computer or anything else that can pick a move.
type Agent struct {
	Searcher *minimax.Searcher
	Chooser  Chooser
	Player   game.Player

	// Statistics
	Wins float32
	Loss float32
	sync.Mutex

	name string
}

// NewComputer creates the agent that plays by exhaustive minimax search.
func NewComputer(conf minimax.Config) *Agent {
	return &Agent{
		Searcher: minimax.New(conf),
		Player:   game.Computer,
		name:     "Max",
	}
}

// NewOpponent creates an agent that plays whatever the chooser picks.
func NewOpponent(name string, c Chooser) *Agent {
	if name == "" {
		name = "Min"
	}
	return &Agent{
		Chooser: c,
		Player:  game.Human,
		name:    name,
	}
}

func (a *Agent) Name() string { return a.name }

// Search searches the game state and returns the number of blocks to remove.
// A Chooser is handed a copy of the game, so it cannot move for the other side.
func (a *Agent) Search(g *game.Pile) (int, error) {
	switch {
	case a.Searcher != nil:
		return a.Searcher.Search(g.Remaining())
	case a.Chooser != nil:
		return a.Chooser.Choose(g.Clone())
	}
	return 0, errors.Errorf("Agent %q can neither search nor choose", a.name)
}

func (a *Agent) resetStats() {
	a.Lock()
	a.Wins = 0
	a.Loss = 0
	a.Unlock()
}
