package nim

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gorgonia/nim/game"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Arena is where the computer and its opponent take turns on a pile.
type Arena struct {
	game               *game.Pile
	Computer, Opponent *Agent

	// state
	currentPlayer *Agent
	buf           bytes.Buffer
	logger        zerolog.Logger
	observer      TurnObserver

	name       string
	gameNumber int // which game is this in
}

// MakeArena makes an arena given a game.
func MakeArena(g *game.Pile, computer, opponent *Agent, name string) Arena {
	if name == "" {
		name = "UNKNOWN GAME"
	}
	computer.Player = game.Computer
	opponent.Player = game.Human

	return Arena{
		game:     g,
		Computer: computer,
		Opponent: opponent,
		name:     name,
		logger:   zerolog.Nop(),
	}
}

func NewArena(g *game.Pile, computer, opponent *Agent, name string) *Arena {
	ar := MakeArena(g, computer, opponent, name)
	ar.logger = zerolog.New(&ar.buf).With().Timestamp().Logger()
	return &ar
}

// SetTurnObserver sets the function called with the game tree of every computer move.
func (a *Arena) SetTurnObserver(fn TurnObserver) { a.observer = fn }

// Play plays a game from the current pile and returns the winner. The computer always moves first.
func (a *Arena) Play(enc OutputEncoder) (winner game.Player, err error) {
	a.currentPlayer = a.Computer
	a.game.SetToMove(a.currentPlayer.Player)
	a.logger.Info().
		Str("game", a.name).
		Int("number", a.gameNumber).
		Int("blocks", a.game.Remaining()).
		Int("move_cap", a.game.MoveCap()).
		Msg("Playing")

	var ended bool
	for ended, winner = a.game.Ended(); !ended; ended, winner = a.game.Ended() {
		var take int
		if take, err = a.currentPlayer.Search(a.game); err != nil {
			return game.None, errors.WithMessagef(err, "%s could not pick a move", a.currentPlayer.Name())
		}
		if a.currentPlayer.Searcher != nil && a.observer != nil {
			a.observer(a.currentPlayer.Searcher.Tree(), take)
		}

		move := game.PlayerMove{Player: a.currentPlayer.Player, Take: take}
		if err = a.game.Apply(move); err != nil {
			return game.None, err
		}
		a.logger.Debug().
			Str("player", fmt.Sprintf("%v", move.Player)).
			Int("take", take).
			Int("remaining", a.game.Remaining()).
			Msg("Move")

		if enc != nil {
			if err = enc.Encode(a); err != nil {
				return game.None, errors.WithMessage(err, "Unable to encode game")
			}
		}
		a.switchPlayer()
	}

	switch winner {
	case a.Computer.Player:
		a.Computer.Wins++
		a.Opponent.Loss++
	case a.Opponent.Player:
		a.Opponent.Wins++
		a.Computer.Loss++
	}
	a.logger.Info().
		Str("winner", fmt.Sprintf("%v", winner)).
		Int("moves", a.game.MoveNumber()).
		Msg("Game over")
	if a.Computer.Searcher != nil {
		a.Computer.Searcher.Reset()
	}
	return winner, nil
}

func (a *Arena) GameNumber() int   { return a.gameNumber }
func (a *Arena) Name() string      { return a.name }
func (a *Arena) State() *game.Pile { return a.game }

// Log writes the log of the arena, and the search log of the computer when built with the debug tag.
func (a *Arena) Log(w io.Writer) {
	fmt.Fprint(w, a.buf.String())
	if a.Computer.Searcher != nil {
		if l := a.Computer.Searcher.Log(); l != "" {
			fmt.Fprintf(w, "\nComputer:\n%s\n", l)
		}
	}
}

func (a *Arena) switchPlayer() {
	switch a.currentPlayer {
	case a.Computer:
		a.currentPlayer = a.Opponent
	case a.Opponent:
		a.currentPlayer = a.Computer
	}
}
