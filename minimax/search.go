package minimax

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
)

// Evaluate computes the minimax value of n, storing the value of every internal node below it.
// A Terminal keeps the score it was created with. An Internal takes the maximum of its children
// when maximizing and the minimum otherwise, with the children evaluated for the other side.
//
// The orchestration evaluates the root with maximizing set: the root takes the best of the
// computer's choices, the positions after the computer's move take the worst of the human's, and so on.
func (t *Tree) Evaluate(n Node, maximizing bool) int {
	type frame struct {
		id         naughty
		maximizing bool
		expanded   bool
	}

	stack := []frame{{id: naughty(n.ID()), maximizing: maximizing}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node, ok := t.nodeFromNaughty(f.id).(*Internal)
		if !ok {
			continue // terminal nodes are scored at creation
		}
		if !f.expanded {
			if len(node.children) == 0 {
				panic(fmt.Sprintf("minimax: internal node %v has no children", node))
			}
			stack = append(stack, frame{id: f.id, maximizing: f.maximizing, expanded: true})
			for _, kid := range node.children {
				stack = append(stack, frame{id: kid, maximizing: !f.maximizing})
			}
			continue
		}
		node.setScore(t.aggregate(node, f.maximizing))
	}

	score, _ := t.nodeFromNaughty(naughty(n.ID())).Score()
	return score
}

// aggregate folds the scores of the already evaluated children of n.
func (t *Tree) aggregate(n *Internal, maximizing bool) int {
	retVal, _ := t.nodeFromNaughty(n.children[0]).Score()
	for _, kid := range n.children[1:] {
		score, _ := t.nodeFromNaughty(kid).Score()
		if maximizing && score > retVal || !maximizing && score < retVal {
			retVal = score
		}
	}
	return retVal
}

// BestChild returns the root's child that the computer should move to. The first child is
// kept unless a later one scores strictly better, starting from a baseline of Loss, so
// the first child also serves as the fallback when no move wins.
func (t *Tree) BestChild() (Node, error) {
	root, ok := t.Root().(*Internal)
	if !ok {
		return nil, ErrNoMoves
	}
	if _, ok := root.Score(); !ok {
		return nil, ErrNotEvaluated
	}

	best := t.nodeFromNaughty(root.children[0])
	bestScore := Loss
	for _, kid := range root.children {
		child := t.nodeFromNaughty(kid)
		if score, _ := child.Score(); score > bestScore {
			best = child
			bestScore = score
		}
	}
	return best, nil
}

// BestMove returns the number of blocks the computer should remove.
func (t *Tree) BestMove() (int, error) {
	best, err := t.BestChild()
	if err != nil {
		return 0, err
	}
	return t.Root().Value() - best.Value(), nil
}

// Searcher plays the computer's side: every search builds a fresh tree from the current pile,
// evaluates it and picks the best move. The last tree is kept for rendering.
type Searcher struct {
	sync.RWMutex
	Config

	tree     *Tree
	searches int

	lumberjack
}

// New creates a Searcher. It panics if the config is not valid.
func New(conf Config) *Searcher {
	if !conf.IsValid() {
		panic(fmt.Sprintf("minimax: invalid config %+v", conf))
	}
	return &Searcher{
		Config:     conf,
		lumberjack: makeLumberJack(),
	}
}

// Search returns the number of blocks to remove from a pile of the given size.
func (s *Searcher) Search(pile int) (take int, err error) {
	s.log("SEARCH. Pile %d, Move Cap %d", pile, s.MoveCap)
	t, err := BuildLimited(pile, s.MoveCap, s.MaxNodes)
	if err != nil {
		return 0, errors.WithMessage(err, "Unable to build game tree")
	}
	value := t.Evaluate(t.Root(), true)

	s.Lock()
	s.tree = t
	s.searches++
	s.Unlock()

	if take, err = t.BestMove(); err != nil {
		return 0, err
	}
	s.log("Search %d: Nodes %d, Root Value %d. Best: remove %d", s.searches, t.Len(), value, take)
	return take, nil
}

// Tree returns the tree of the last search, or nil if there has been none.
func (s *Searcher) Tree() *Tree {
	s.RLock()
	defer s.RUnlock()
	return s.tree
}

// ToDot renders the tree of the last search in the DOT language.
func (s *Searcher) ToDot() (string, error) {
	t := s.Tree()
	if t == nil {
		return "", errors.New("No search has been made")
	}
	return t.ToDot()
}

// Reset forgets the last tree.
func (s *Searcher) Reset() {
	s.Lock()
	s.tree = nil
	s.searches = 0
	s.Unlock()
	s.lumberjack.Reset()
}
