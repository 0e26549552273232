package ntp

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gorgonia/nim/game"
	"github.com/pkg/errors"
)

type Command interface {
	Do(id int, args []string, e *Engine) (int, string, error)
}

type stdlib func(e *Engine) string

type stdlib2 func(e *Engine, args []string) (string, error)

func (f stdlib) Do(id int, args []string, e *Engine) (int, string, error) {
	str := f(e)
	return id, str, nil
}

func (f stdlib2) Do(id int, args []string, e *Engine) (int, string, error) {
	str, err := f(e, args)
	return id, str, err
}

func protocolVersion(e *Engine) string { return "1" }
func name(e *Engine) string            { return e.name }
func version(e *Engine) string         { return e.version }

func listCommands(e *Engine) string {
	cmds := make([]string, 0, len(e.known))
	for c := range e.known {
		cmds = append(cmds, c)
	}
	sort.Strings(cmds)
	return strings.Join(cmds, "\n")
}

func quit(e *Engine) string { close(e.ch); close(e.done); return "" }

func knownCommand(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"known_command\"")
	}
	if _, ok := e.known[args[0]]; ok {
		return "true", nil
	}
	return "false", nil
}

func atoi(arg, what string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Errorf("Unable to parse %s: %q is not an integer", what, arg)
	}
	return n, nil
}

func newGame(e *Engine, args []string) (string, error) {
	if len(args) < 2 {
		return "", errors.New("Not enough arguments for \"new_game\"")
	}
	moveCap, err := atoi(args[0], "move cap")
	if err != nil {
		return "", err
	}
	blocks, err := atoi(args[1], "number of blocks")
	if err != nil {
		return "", err
	}
	g, err := e.New(moveCap, blocks)
	if err != nil {
		return "", err
	}
	e.setGame(g)
	return "", nil
}

func clearPile(e *Engine) (string, error) {
	if e.g == nil {
		return "", ErrNoGame
	}
	e.g.Reset()
	e.searcher.Reset()
	return "", nil
}

func showpile(e *Engine) (string, error) {
	if e.g == nil {
		return "", ErrNoGame
	}
	return fmt.Sprintf("\n%s\n", e.g), nil
}

func undo(e *Engine) (string, error) {
	if e.g == nil {
		return "", ErrNoGame
	}
	e.g.UndoLastMove()
	return "", nil
}

// fwd replays the last undone move.
func fwd(e *Engine) (string, error) {
	if e.g == nil {
		return "", ErrNoGame
	}
	e.g.Fwd()
	return "", nil
}

func legalMoves(e *Engine) (string, error) {
	if e.g == nil {
		return "", ErrNoGame
	}
	moves := e.g.LegalMoves()
	strs := make([]string, len(moves))
	for i, m := range moves {
		strs[i] = strconv.Itoa(m)
	}
	return strings.Join(strs, " "), nil
}

// play removes blocks on behalf of the side to move.
func play(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"play\"")
	}
	if e.g == nil {
		return "", ErrNoGame
	}
	take, err := atoi(args[0], "number of blocks")
	if err != nil {
		return "", err
	}
	if err = e.g.Apply(game.PlayerMove{Player: e.g.ToMove(), Take: take}); err != nil {
		return "", err
	}
	return "", nil
}

// genmove searches the current pile and removes the best number of blocks on behalf of the side to move.
func genmove(e *Engine, args []string) (string, error) {
	if e.g == nil {
		return "", ErrNoGame
	}
	if ended, _ := e.g.Ended(); ended {
		return "", game.ErrGameOver
	}
	take, err := e.searcher.Search(e.g.Remaining())
	if err != nil {
		return "", err
	}
	if err = e.g.Apply(game.PlayerMove{Player: e.g.ToMove(), Take: take}); err != nil {
		return "", err
	}
	return strconv.Itoa(take), nil
}

// showtree prints the tree of the last genmove. Given "scores" it prints the minimax scores too.
func showtree(e *Engine, args []string) (string, error) {
	if e.searcher == nil || e.searcher.Tree() == nil {
		return "", errors.New("No tree. Call genmove first")
	}
	showScores := len(args) > 0 && args[0] == "scores"
	var buf bytes.Buffer
	buf.WriteString("\n")
	if err := e.searcher.Tree().Fprint(&buf, showScores); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func showdot(e *Engine, args []string) (string, error) {
	if e.searcher == nil {
		return "", errors.New("No tree. Call genmove first")
	}
	dot, err := e.searcher.ToDot()
	if err != nil {
		return "", err
	}
	return "\n" + strings.TrimRight(dot, "\n"), nil
}

func winner(e *Engine) (string, error) {
	if e.g == nil {
		return "", ErrNoGame
	}
	ended, w := e.g.Ended()
	if !ended {
		return "", errors.New("Game is not over")
	}
	return fmt.Sprintf("%v", w), nil
}

type checked func(e *Engine) (string, error)

func (f checked) Do(id int, args []string, e *Engine) (int, string, error) {
	str, err := f(e)
	return id, str, err
}

func StandardLib() map[string]Command {
	return map[string]Command{
		"protocol_version": stdlib(protocolVersion),
		"name":             stdlib(name),
		"version":          stdlib(version),
		"list_commands":    stdlib(listCommands),
		"quit":             stdlib(quit),

		"clear_pile":  checked(clearPile),
		"showpile":    checked(showpile),
		"undo":        checked(undo),
		"fwd":         checked(fwd),
		"legal_moves": checked(legalMoves),
		"winner":      checked(winner),

		"known_command": stdlib2(knownCommand),
		"new_game":      stdlib2(newGame),
		"play":          stdlib2(play),
		"genmove":       stdlib2(genmove),
		"showtree":      stdlib2(showtree),
		"showdot":       stdlib2(showdot),
	}
}
