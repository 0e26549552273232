package nim

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/chewxy/math32"
	"github.com/gorgonia/nim/game"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// Statistics records the outcome of every game played in an arena.
type Statistics struct {
	Winners []game.Player
	Lengths []float64 // number of moves in each game
}

// Summary summarizes a run of games.
type Summary struct {
	Games        int
	ComputerWins int
	OpponentWins int
	WinRate      float32 // fraction of the games won by the computer
	MeanLength   float64
	StdDevLength float64
}

func (s Summary) String() string {
	return fmt.Sprintf("Games %d | Computer %d Opponent %d | Win rate %.3f | Moves %.2f ± %.2f",
		s.Games, s.ComputerWins, s.OpponentWins, s.WinRate, s.MeanLength, s.StdDevLength)
}

func makeStatistics() Statistics {
	return Statistics{
		Winners: make([]game.Player, 0, 64),
		Lengths: make([]float64, 0, 64),
	}
}

func (s *Statistics) update(winner game.Player, moves int) {
	s.Winners = append(s.Winners, winner)
	s.Lengths = append(s.Lengths, float64(moves))
}

// Summary computes the win counts and the mean and standard deviation of the game lengths.
func (s *Statistics) Summary() Summary {
	retVal := Summary{Games: len(s.Winners)}
	for _, w := range s.Winners {
		switch w {
		case game.Computer:
			retVal.ComputerWins++
		case game.Human:
			retVal.OpponentWins++
		}
	}
	retVal.WinRate = float32(retVal.ComputerWins) / float32(retVal.Games)
	if math32.IsNaN(retVal.WinRate) {
		retVal.WinRate = 0
	}
	if len(s.Lengths) > 0 {
		retVal.MeanLength, retVal.StdDevLength = stat.MeanStdDev(s.Lengths, nil)
		if math.IsNaN(retVal.StdDevLength) {
			retVal.StdDevLength = 0
		}
	}
	return retVal
}

// Dump writes one CSV record per game: the game number, the winner and the number of moves.
func (s *Statistics) Dump(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write([]string{"game", "winner", "moves"}); err != nil {
		return errors.WithStack(err)
	}
	records := make([][]string, 0, len(s.Winners))
	for i, winner := range s.Winners {
		records = append(records, []string{
			strconv.Itoa(i),
			fmt.Sprintf("%v", winner),
			strconv.FormatFloat(s.Lengths[i], 'f', 0, 64),
		})
	}
	if err := w.WriteAll(records); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
