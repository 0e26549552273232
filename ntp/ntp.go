// Package ntp implements a line based text protocol for driving the game from another program,
// in the manner of the Go Text Protocol.
//
// A command is an optional numeric id, a command name and its arguments. A successful response is
// "= result\n\n" and a failure is "? error\n\n". When the command carried an id, the response repeats it.
package ntp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gorgonia/nim/game"
	"github.com/gorgonia/nim/minimax"
	"github.com/pkg/errors"
)

// ErrNoGame is returned by commands that need a game before new_game has been called.
var ErrNoGame = errors.New("No game in progress")

type Engine struct {
	g        *game.Pile
	searcher *minimax.Searcher

	known map[string]Command

	ch   chan string
	ret  chan string
	done chan struct{}

	// New creates a game. It defaults to game.New
	New func(moveCap, blocks int) (*game.Pile, error)

	maxNodes      int
	name, version string
}

// New creates an engine. g may be nil, in which case a game has to be started with new_game.
func New(g *game.Pile, name, version string, known map[string]Command) *Engine {
	if known == nil {
		known = StandardLib()
	}
	e := &Engine{
		known:    known,
		New:      game.New,
		maxNodes: minimax.MAXTREESIZE,
		name:     name,
		version:  version,
	}
	if g != nil {
		e.setGame(g)
	}
	return e
}

// SetMaxNodes sets the node budget of the engine's searches.
func (e *Engine) SetMaxNodes(n int) {
	e.maxNodes = n
	if e.g != nil {
		e.setGame(e.g)
	}
}

func (e *Engine) setGame(g *game.Pile) {
	e.g = g
	e.searcher = minimax.New(minimax.Config{MoveCap: g.MoveCap(), MaxNodes: e.maxNodes})
}

// Start starts the engine. Commands are sent on input and responses are read from output.
// Sending quit closes input and Done.
func (e *Engine) Start() (input, output chan string) {
	e.ch = make(chan string)
	e.ret = make(chan string)
	e.done = make(chan struct{})
	go e.start()
	return e.ch, e.ret
}

// Done is closed once the engine has been told to quit.
func (e *Engine) Done() <-chan struct{} { return e.done }

func (e *Engine) State() *game.Pile { return e.g }

func (e *Engine) start() {
	for cmd := range e.ch {
		id, x, args, err := e.parse(cmd)
		if x == nil && err == nil {
			e.ret <- ""
			continue
		}
		if err != nil {
			e.ret <- handleErr(id, err)
			continue
		}
		id, result, err := x.Do(id, args, e)
		e.ret <- handleResult(id, result, err)
	}
}

func (e *Engine) parse(cmd string) (id int, x Command, args []string, err error) {
	cmd = preprocess(cmd)
	tokens := strings.Fields(cmd)
	if len(tokens) == 0 {
		return -1, nil, nil, nil
	}
	if id, err = strconv.Atoi(tokens[0]); err == nil {
		// we've consumed ID
		tokens = tokens[1:]
	} else {
		// set err to nil because ID is optional
		err = nil
		id = -1
	}

	if len(tokens) == 0 {
		return id, nil, nil, nil
	}

	var ok bool
	if x, ok = e.known[tokens[0]]; !ok {
		return id, nil, nil, errors.Errorf("Unknown command %q", tokens[0])
	}
	if len(tokens) > 1 {
		args = tokens[1:]
	}
	return
}

// preprocess lowercases the command and drops comments.
func preprocess(a string) string {
	if i := strings.IndexByte(a, '#'); i >= 0 {
		a = a[:i]
	}
	return strings.ToLower(strings.TrimSpace(a))
}

func handleErr(id int, err error) string {
	if id != -1 {
		return fmt.Sprintf("? %d %v\n\n", id, err)
	}
	return fmt.Sprintf("? %v\n\n", err)
}

func handleResult(id int, result string, err error) string {
	if err != nil {
		return handleErr(id, err)
	}

	if id != -1 {
		return fmt.Sprintf("= %d %v\n\n", id, result)
	}
	return fmt.Sprintf("= %v\n\n", result)
}
