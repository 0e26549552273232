package nim

import (
	"github.com/gorgonia/nim/game"
	"github.com/gorgonia/nim/minimax"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Nim is the top level structure and the entry point of the API.
// It puts the minimax computer in an arena with an opponent and keeps the statistics of the games played.
type Nim struct {
	// state
	Arena
	Statistics

	// config
	conf Config
}

// New sets up a game from the config. The opponent picks the moves of the side that does not search.
func New(conf Config, opponent Chooser) (*Nim, error) {
	if !conf.IsValid() {
		return nil, errors.Wrapf(ErrInvalidConfig, "%+v", conf)
	}
	if opponent == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "no opponent")
	}
	g, err := game.New(conf.MoveCap, conf.Blocks)
	if err != nil {
		return nil, err
	}
	g.SetRule(conf.Rule)

	computer := NewComputer(minimax.Config{MoveCap: conf.MoveCap, MaxNodes: conf.MaxNodes})
	retVal := &Nim{
		Arena:      MakeArena(g, computer, NewOpponent("", opponent), conf.Name),
		Statistics: makeStatistics(),
		conf:       conf,
	}
	retVal.logger = zerolog.New(&retVal.buf).With().Timestamp().Logger()
	retVal.observer = conf.Observer
	return retVal, nil
}

// Play plays one game from the starting pile and returns the winner.
func (n *Nim) Play() (game.Player, error) {
	n.game.Reset()
	winner, err := n.Arena.Play(n.conf.OutputEncoder)
	if err != nil {
		return game.None, err
	}
	n.update(winner, n.game.MoveNumber())
	return winner, nil
}

// PlayMatch plays a number of games and summarizes them. Each match starts from fresh statistics.
func (n *Nim) PlayMatch(games int) (Summary, error) {
	n.Computer.resetStats()
	n.Opponent.resetStats()
	n.Statistics = makeStatistics()
	for n.gameNumber = 0; n.gameNumber < games; n.gameNumber++ {
		if _, err := n.Play(); err != nil {
			return n.Summary(), errors.WithMessagef(err, "game %d", n.gameNumber)
		}
	}
	if enc := n.conf.OutputEncoder; enc != nil {
		if err := enc.Flush(); err != nil {
			return n.Summary(), errors.WithMessage(err, "Unable to flush output")
		}
	}
	return n.Summary(), nil
}

// Config returns the config the game was set up with.
func (n *Nim) Config() Config { return n.conf }
