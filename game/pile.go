package game

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// MaxDrawn is the largest pile that Format draws block by block.
const MaxDrawn = 40

// Rule decides who wins once the pile is empty.
type Rule int32

const (
	// LastTakerWins reports the player whose move emptied the pile as the winner.
	LastTakerWins Rule = iota
	// LastTakerLoses reports the player forced to take the last block as the loser.
	LastTakerLoses
)

func (r Rule) String() string {
	switch r {
	case LastTakerWins:
		return "last taker wins"
	case LastTakerLoses:
		return "last taker loses"
	}
	return "UNKNOWN RULE"
}

// Pile is the state of a subtraction game: a single pile of blocks from which
// each player in turn removes 1, 2 or MoveCap blocks.
type Pile struct {
	sync.Mutex
	remaining int
	start     int
	moveCap   int
	rule      Rule

	nextToMove Player
	history    []PlayerMove
	histPtr    int
}

// New creates a new game with the given move cap and starting number of blocks.
// The computer moves first.
func New(moveCap, blocks int) (*Pile, error) {
	if moveCap <= 2 {
		return nil, errors.Wrapf(ErrInvalidMoveCap, "got %d", moveCap)
	}
	if blocks <= moveCap {
		return nil, errors.Wrapf(ErrInvalidPile, "got %d blocks with a move cap of %d", blocks, moveCap)
	}
	return &Pile{
		remaining:  blocks,
		start:      blocks,
		moveCap:    moveCap,
		nextToMove: Computer,
		history:    make([]PlayerMove, 0, blocks),
	}, nil
}

func (g *Pile) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		fmt.Fprint(s, "⎢ ")
		if g.remaining <= MaxDrawn {
			fmt.Fprint(s, strings.Repeat("■ ", g.remaining))
		} else {
			fmt.Fprint(s, strings.Repeat("■ ", MaxDrawn))
			fmt.Fprint(s, "… ")
		}
		fmt.Fprintf(s, "⎥ %d", g.remaining)
	case 'd':
		fmt.Fprintf(s, "%d", g.remaining)
	}
}

// Remaining returns the number of blocks left on the pile.
func (g *Pile) Remaining() int { return g.remaining }

// Start returns the number of blocks the game started with.
func (g *Pile) Start() int { return g.start }

// MoveCap returns the largest number of blocks that can be removed in one turn.
func (g *Pile) MoveCap() int { return g.moveCap }

// Rule returns the rule used to decide the winner.
func (g *Pile) Rule() Rule { return g.rule }

func (g *Pile) SetRule(r Rule) { g.Lock(); g.rule = r; g.Unlock() }

func (g *Pile) SetToMove(p Player) { g.Lock(); g.nextToMove = p; g.Unlock() }

func (g *Pile) ToMove() Player { return g.nextToMove }

func (g *Pile) LastMove() PlayerMove {
	if g.histPtr > 0 {
		return g.history[g.histPtr-1]
	}
	return PlayerMove{Player: None}
}

func (g *Pile) MoveNumber() int { return g.histPtr }

// LegalMoves lists the removals available from the current pile, largest first.
func (g *Pile) LegalMoves() []int {
	retVal := make([]int, 0, 3)
	for _, d := range [...]int{g.moveCap, 2, 1} {
		if d <= g.remaining {
			retVal = append(retVal, d)
		}
	}
	return retVal
}

// Check returns an error explaining why the move cannot be made, or nil.
func (g *Pile) Check(m PlayerMove) error {
	switch {
	case g.remaining == 0:
		return moveError{m, ErrGameOver}
	case m.Take != 1 && m.Take != 2 && m.Take != g.moveCap:
		return moveError{m, ErrIllegalAmount}
	case m.Take > g.remaining:
		return moveError{m, ErrTooMany}
	}
	return nil
}

// Apply removes the blocks. The next player to move becomes the opponent of the mover.
func (g *Pile) Apply(m PlayerMove) error {
	if err := g.Check(m); err != nil {
		return err
	}

	g.Lock()
	g.remaining -= m.Take
	g.history = append(g.history[:g.histPtr], m)
	g.histPtr++
	if m.Player != None {
		g.nextToMove = m.Player.Opponent()
	}
	g.Unlock()
	return nil
}

// Ended checks if the game has ended. If it has, who is the winner? The winner is decided by the
// game's Rule from the player whose move emptied the pile.
func (g *Pile) Ended() (ended bool, winner Player) {
	if g.remaining != 0 {
		return false, None
	}
	last := g.LastMove().Player
	if g.rule == LastTakerLoses && last != None {
		return true, last.Opponent()
	}
	return true, last
}

func (g *Pile) Reset() {
	g.Lock()
	g.remaining = g.start
	g.history = g.history[:0]
	g.histPtr = 0
	g.nextToMove = Computer
	g.Unlock()
}

// UndoLastMove puts the blocks of the last move back on the pile.
func (g *Pile) UndoLastMove() {
	g.Lock()
	defer g.Unlock()
	if g.histPtr == 0 {
		return
	}
	m := g.history[g.histPtr-1]
	g.remaining += m.Take
	g.histPtr--
	if m.Player != None {
		g.nextToMove = m.Player
	}
}

// Fwd replays a move previously undone.
func (g *Pile) Fwd() {
	g.Lock()
	defer g.Unlock()
	if g.histPtr >= len(g.history) {
		return
	}
	m := g.history[g.histPtr]
	g.remaining -= m.Take
	g.histPtr++
	if m.Player != None {
		g.nextToMove = m.Player.Opponent()
	}
}

func (g *Pile) Clone() *Pile {
	g.Lock()
	retVal := &Pile{
		remaining:  g.remaining,
		start:      g.start,
		moveCap:    g.moveCap,
		rule:       g.rule,
		nextToMove: g.nextToMove,
		history:    make([]PlayerMove, len(g.history), cap(g.history)),
		histPtr:    g.histPtr,
	}
	copy(retVal.history, g.history)
	g.Unlock()
	return retVal
}
