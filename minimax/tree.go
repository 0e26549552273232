package minimax

import (
	"fmt"

	"github.com/pkg/errors"
)

// Tree is the lookahead tree of one turn. All nodes live in a single arena and refer
// to their children by index, so that building and walking the tree never recurses.
//
// A Tree is owned by the turn that built it. It is not safe for concurrent mutation.
type Tree struct {
	nodes   []Node
	root    naughty
	moveCap int
}

// Build builds the full tree of positions reachable from a pile of the given size, where each move
// removes moveCap, 2 or 1 blocks. Removals that would leave a negative pile are not generated;
// removals that empty the pile produce a Terminal whose score is fixed by its depth.
//
// Build panics if moveCap is less than MinMoveCap, or the pile is negative or larger than MaxPile.
func Build(pile, moveCap int) *Tree {
	t, err := BuildLimited(pile, moveCap, 0)
	if err != nil {
		panic(fmt.Sprintf("%+v", err))
	}
	return t
}

// BuildLimited is like Build, but returns ErrTreeTooLarge as soon as the tree holds more than maxNodes nodes.
// A maxNodes of 0 means unlimited. A pile larger than MaxPile always returns ErrTreeTooLarge.
func BuildLimited(pile, moveCap, maxNodes int) (*Tree, error) {
	if moveCap < MinMoveCap {
		panic(fmt.Sprintf("minimax: move cap %d is less than %d", moveCap, MinMoveCap))
	}
	if pile < 0 {
		panic(fmt.Sprintf("minimax: negative pile %d", pile))
	}
	if pile > MaxPile {
		return nil, errors.Wrapf(ErrTreeTooLarge, "pile %d is larger than %d", pile, MaxPile)
	}

	t := &Tree{
		nodes:   make([]Node, 0, 64),
		moveCap: moveCap,
	}
	if pile == 0 {
		t.root = t.newTerminal(0).id
		return t, nil
	}

	root := t.newInternal(pile, 0)
	t.root = root.id
	removals := t.removals()
	stack := []naughty{root.id}
	for len(stack) > 0 {
		parent := t.nodes[stack[len(stack)-1]].(*Internal)
		stack = stack[:len(stack)-1]

		depth := parent.Depth() + 1
		for _, d := range removals {
			rest := parent.Value() - d
			switch {
			case rest > 0:
				child := t.newInternal(rest, depth)
				parent.children = append(parent.children, child.id)
				stack = append(stack, child.id)
			case rest == 0:
				child := t.newTerminal(depth)
				parent.children = append(parent.children, child.id)
			}
		}

		if maxNodes > 0 && len(t.nodes) > maxNodes {
			return nil, errors.Wrapf(ErrTreeTooLarge, "pile %d with move cap %d needs more than %d nodes", pile, moveCap, maxNodes)
		}
	}
	return t, nil
}

// removals are the amounts subtracted from a pile, in generation order.
func (t *Tree) removals() [3]int { return [3]int{t.moveCap, 2, 1} }

func (t *Tree) newInternal(value, depth int) *Internal {
	n := newInternal(naughty(len(t.nodes)), value, depth)
	t.nodes = append(t.nodes, n)
	return n
}

func (t *Tree) newTerminal(depth int) *Terminal {
	n := newTerminal(naughty(len(t.nodes)), depth)
	t.nodes = append(t.nodes, n)
	return n
}

// nodeFromNaughty gets the node given the pointer.
func (t *Tree) nodeFromNaughty(ptr naughty) Node { return t.nodes[int(ptr)] }

// Root returns the starting position of the lookahead.
func (t *Tree) Root() Node { return t.nodeFromNaughty(t.root) }

// MoveCap returns the largest removal the tree was built with.
func (t *Tree) MoveCap() int { return t.moveCap }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node with the given ID.
func (t *Tree) Node(id int) Node {
	if !naughty(id).isValid() || id >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Children returns the children of n in generation order. A Terminal has none.
func (t *Tree) Children(n Node) []Node {
	in, ok := t.nodeFromNaughty(naughty(n.ID())).(*Internal)
	if !ok {
		return nil
	}
	retVal := make([]Node, len(in.children))
	for i, kid := range in.children {
		retVal[i] = t.nodeFromNaughty(kid)
	}
	return retVal
}

// Walk calls fn on every node in depth first order, parents before children and
// children in generation order. Walking stops early when fn returns false.
func (t *Tree) Walk(fn func(n Node) bool) {
	stack := []naughty{t.root}
	for len(stack) > 0 {
		n := t.nodeFromNaughty(stack[len(stack)-1])
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return
		}
		if in, ok := n.(*Internal); ok {
			for i := len(in.children) - 1; i >= 0; i-- {
				stack = append(stack, in.children[i])
			}
		}
	}
}
