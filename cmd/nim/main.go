// nim plays a subtraction game against a computer that searches the whole game tree.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/gorgonia/nim"
	"github.com/gorgonia/nim/encoding/gif"
	"github.com/gorgonia/nim/game"
	"github.com/gorgonia/nim/minimax"
	"github.com/gorgonia/nim/ntp"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const version = "0.1.0"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	command := "play"
	var args []string
	if len(os.Args) >= 2 {
		command = os.Args[1]
		args = os.Args[2:]
	}

	var err error
	switch command {
	case "play":
		err = cmdPlay(args, os.Stdin, os.Stdout)
	case "arena":
		err = cmdArena(args)
	case "ntp":
		err = cmdNTP(args, os.Stdin, os.Stdout)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", command)
	}
}

func printUsage() {
	fmt.Println(`nim - a subtraction game against an exhaustive minimax search

Usage: nim <command> [options]

Commands:
  play      Play against the computer on the console (default)
  arena     Let the computer play a random opponent and collect statistics
  ntp       Speak the text protocol on stdin and stdout

Use "nim <command> -h" for command-specific help.`)
}

func ruleFor(misere bool) game.Rule {
	if misere {
		return game.LastTakerLoses
	}
	return game.LastTakerWins
}

func cmdPlay(args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	moveCap := fs.Int("cap", 0, "maximum number of blocks removed in one turn. Asked for when 0")
	blocks := fs.Int("blocks", 0, "starting number of blocks. Asked for when 0")
	maxNodes := fs.Int("maxnodes", minimax.MAXTREESIZE, "node budget of the computer's game tree")
	misere := fs.Bool("misere", false, "the player taking the last block loses")
	addr := fs.String("http", "", "serve the move stream on /ws and the latest game tree on /tree.dot at this address")
	fs.Parse(args)

	c := newConsole(in, out)
	conf := nim.DefaultConfig(*moveCap, *blocks)
	conf.MaxNodes = *maxNodes
	conf.Rule = ruleFor(*misere)
	if !conf.IsValid() {
		var err error
		if conf.MoveCap, conf.Blocks, err = c.setup(conf.MoveCap, conf.Blocks); err != nil {
			return err
		}
	}
	conf.Observer = c.showTurn

	var enc *Encoder
	if *addr != "" {
		enc = NewEncoder(log.Logger)
		conf.OutputEncoder = enc
	}
	n, err := nim.New(conf, c)
	if err != nil {
		return err
	}
	if enc != nil {
		go func(h http.Handler) {
			log.Info().Msgf("http://%s", *addr)
			if err := http.ListenAndServe(*addr, h); err != nil {
				log.Error().Err(err).Msg("http server stopped")
			}
		}(newRouter(enc, n.Computer.Searcher))
	}

	return playConsole(n, c)
}

func playConsole(n *nim.Nim, c *console) error {
	winner, err := n.Play()
	if err != nil {
		return err
	}
	c.announce(winner)
	return nil
}

func cmdArena(args []string) error {
	fs := flag.NewFlagSet("arena", flag.ExitOnError)
	moveCap := fs.Int("cap", 3, "maximum number of blocks removed in one turn")
	blocks := fs.Int("blocks", 10, "starting number of blocks")
	games := fs.Int("games", 100, "number of games to play")
	seed := fs.Uint64("seed", 1337, "seed of the random opponent")
	maxNodes := fs.Int("maxnodes", minimax.MAXTREESIZE, "node budget of the computer's game tree")
	misere := fs.Bool("misere", false, "the player taking the last block loses")
	stats := fs.String("stats", "", "write per game statistics to this CSV file")
	gifOut := fs.String("gif", "", "write an animated GIF of the games to this file")
	verbose := fs.Bool("v", false, "print the arena log")
	fs.Parse(args)

	conf := nim.DefaultConfig(*moveCap, *blocks)
	conf.Name = fmt.Sprintf("Nim %d/%d", *blocks, *moveCap)
	conf.MaxNodes = *maxNodes
	conf.Rule = ruleFor(*misere)

	if *gifOut != "" {
		f, err := os.Create(*gifOut)
		if err != nil {
			return errors.WithStack(err)
		}
		defer f.Close()
		enc := gif.NewGifEncoder(400, 800)
		enc.Writer = f
		conf.OutputEncoder = enc
	}

	n, err := nim.New(conf, nim.NewRandomChooser(*seed))
	if err != nil {
		return err
	}
	log.Info().Msgf("starting %d games of %q (%v) against a random opponent", *games, conf.Name, conf.Rule)
	summary, err := n.PlayMatch(*games)
	if *verbose {
		n.Log(os.Stderr)
	}
	if err != nil {
		return err
	}
	log.Info().
		Int("games", summary.Games).
		Int("computer", summary.ComputerWins).
		Int("opponent", summary.OpponentWins).
		Float32("win_rate", summary.WinRate).
		Float64("mean_moves", summary.MeanLength).
		Float64("stddev_moves", summary.StdDevLength).
		Msg("completed match")
	fmt.Println(summary)

	if *stats != "" {
		if err = n.Dump(*stats); err != nil {
			return err
		}
		log.Info().Msgf("stored game records in %s", *stats)
	}
	return nil
}

func cmdNTP(args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("ntp", flag.ExitOnError)
	maxNodes := fs.Int("maxnodes", minimax.MAXTREESIZE, "node budget of the engine's game trees")
	fs.Parse(args)

	e := ntp.New(nil, "nim", version, nil)
	e.SetMaxNodes(*maxNodes)
	return serveNTP(e, in, out)
}

// serveNTP feeds the engine one line at a time until quit or the end of the input.
func serveNTP(e *ntp.Engine, in io.Reader, out io.Writer) error {
	ch, ret := e.Start()
	s := bufio.NewScanner(in)
	for s.Scan() {
		ch <- s.Text()
		fmt.Fprint(out, <-ret)
		select {
		case <-e.Done():
			return nil
		default:
		}
	}
	close(ch)
	return errors.WithStack(s.Err())
}
