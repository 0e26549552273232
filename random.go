package nim

import (
	"github.com/gorgonia/nim/game"
	"golang.org/x/exp/rand"
)

// RandomChooser removes a legal number of blocks picked uniformly at random.
type RandomChooser struct {
	r *rand.Rand
}

// NewRandomChooser creates a RandomChooser. The same seed always plays the same game.
func NewRandomChooser(seed uint64) *RandomChooser {
	return &RandomChooser{r: rand.New(rand.NewSource(seed))}
}

func (c *RandomChooser) Choose(g *game.Pile) (int, error) {
	legal := g.LegalMoves()
	if len(legal) == 0 {
		return 0, game.ErrGameOver
	}
	return legal[c.r.Intn(len(legal))], nil
}
