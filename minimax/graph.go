package minimax

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
)

// dotNode is what the node template sees.
type dotNode struct {
	Node
}

func (n dotNode) Kind() string {
	if n.IsTerminal() {
		return "Terminal"
	}
	return "Internal"
}

// ToMove is the side that removes blocks from this position: the computer moves at even depths.
func (n dotNode) ToMove() string {
	if n.IsTerminal() {
		return "-"
	}
	if n.Depth()%2 == 0 {
		return "MAX"
	}
	return "MIN"
}

func (n dotNode) ScoreString() string {
	if score, ok := n.Score(); ok {
		return strconv.Itoa(score)
	}
	return "None"
}

func nodeName(n Node) string { return strconv.Itoa(n.ID()) }

// ToDot renders the tree in the DOT language, one HTML table per node and one edge per removal.
func (t *Tree) ToDot() (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		return "", errors.WithStack(err)
	}
	if err := g.SetDir(true); err != nil {
		return "", errors.WithStack(err)
	}

	var buf bytes.Buffer
	var err error
	t.Walk(func(n Node) bool {
		if err = tmpl.Execute(&buf, dotNode{n}); err != nil {
			err = errors.Wrapf(err, "Unable to render node %v", n)
			return false
		}
		attrs := map[string]string{
			"fontname": "Monaco",
			"shape":    "none",
			"label":    buf.String(),
		}
		buf.Reset()
		if err = g.AddNode("G", nodeName(n), attrs); err != nil {
			err = errors.WithStack(err)
			return false
		}

		for _, child := range t.Children(n) {
			label := map[string]string{"label": fmt.Sprintf("\"-%d\"", n.Value()-child.Value())}
			if err = g.AddEdge(nodeName(n), nodeName(child), true, label); err != nil {
				err = errors.WithStack(err)
				return false
			}
		}
		return true
	})
	if err != nil {
		return "", err
	}
	return g.String(), nil
}

const tmplRaw = `<
<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="0">
<TR><TD>Node ID</TD><TD>{{.ID}}</TD></TR>
<TR><TD>Blocks</TD><TD>{{.Value}}</TD></TR>
<TR><TD>Depth</TD><TD>{{.Depth}}</TD></TR>
<TR><TD>Kind</TD><TD>{{.Kind}}</TD></TR>
<TR><TD>To Move</TD><TD>{{.ToMove}}</TD></TR>
<TR><TD>Score</TD><TD>{{.ScoreString}}</TD></TR>
</TABLE>
>
`

var tmpl *template.Template

func init() {
	tmpl = template.Must(template.New("node").Parse(tmplRaw))
}
