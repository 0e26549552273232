package minimax

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

const (
	branch     = "|_ "
	continuing = "|  "
	lastChild  = "   "
)

// Fprint writes the tree as indented text, one node per line:
//
//	3(1)
//	|_ 0(0)
//	|_ 1(1)
//	|  |_ 0(1)
//	|_ 2(0)
//	   |_ 0(1)
//	   |_ 1(0)
//	      |_ 0(0)
//
// The scores in brackets are only written when showScores is true. Unevaluated nodes show None.
func (t *Tree) Fprint(w io.Writer, showScores bool) error {
	type frame struct {
		id     naughty
		indent string
	}

	bw := bufio.NewWriter(w)
	stack := []frame{{id: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodeFromNaughty(f.id)
		if f.indent != "" {
			bw.WriteString(f.indent[:len(f.indent)-len(branch)])
			bw.WriteString(branch)
		}
		bw.WriteString(strconv.Itoa(n.Value()))
		if showScores {
			if score, ok := n.Score(); ok {
				fmt.Fprintf(bw, "(%d)", score)
			} else {
				bw.WriteString("(None)")
			}
		}
		bw.WriteByte('\n')

		in, ok := n.(*Internal)
		if !ok {
			continue
		}
		last := len(in.children) - 1
		for i := last; i >= 0; i-- {
			indent := f.indent + continuing
			if i == last {
				indent = f.indent + lastChild
			}
			stack = append(stack, frame{id: in.children[i], indent: indent})
		}
	}
	return errors.WithStack(bw.Flush())
}

// Format prints the tree with %s and the tree with scores with %v.
func (t *Tree) Format(s fmt.State, c rune) {
	var buf bytes.Buffer
	switch c {
	case 'v':
		t.Fprint(&buf, true)
	default:
		t.Fprint(&buf, false)
	}
	s.Write(buf.Bytes())
}
