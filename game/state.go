package game

import (
	"fmt"
)

// Player represents a player in a subtraction game.
type Player int32

const (
	None Player = iota
	Computer
	Human
)

func (p Player) Format(s fmt.State, c rune) {
	switch c {
	case 'v': // used in debug
		switch p {
		case None:
			fmt.Fprint(s, "None")
		case Computer:
			fmt.Fprint(s, "Computer")
		case Human:
			fmt.Fprint(s, "Human")
		}
	case 's': // used in game output
		switch p {
		case None:
			fmt.Fprint(s, "·")
		case Computer:
			fmt.Fprint(s, "MAX")
		case Human:
			fmt.Fprint(s, "MIN")
		}
	}
}

// Opponent returns the other side. It panics for None.
func (p Player) Opponent() Player {
	switch p {
	case Computer:
		return Human
	case Human:
		return Computer
	}
	panic("Unreachable")
}

// PlayerMove is a tuple indicating the player and the number of blocks taken.
type PlayerMove struct {
	Player
	Take int
}

// Eq returns true if both are equal
func (m PlayerMove) Eq(other PlayerMove) bool {
	return m.Player == other.Player && m.Take == other.Take
}

func (m PlayerMove) Format(s fmt.State, c rune) {
	switch c {
	case 's':
		fmt.Fprintf(s, "%s-%d", m.Player, m.Take)
	default:
		fmt.Fprintf(s, "%v-%d", m.Player, m.Take)
	}
}

// MetaState is the state of a match as seen by output encoders.
type MetaState interface {
	Name() string    // name of the game
	GameNumber() int // which game of the match this is
	State() *Pile
}
