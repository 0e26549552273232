package main

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorgonia/nim/game"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Encoder streams every move to the connected websocket clients. It implements nim.OutputEncoder.
type Encoder struct {
	sync.Mutex
	clients map[*websocket.Conn]struct{}
	logger  zerolog.Logger
}

var upgrader = websocket.Upgrader{} // use default options

const writeWait = time.Second

type moveMsg struct {
	Game      string `json:"game"`
	Number    int    `json:"number"`
	Player    string `json:"player"`
	Take      int    `json:"take"`
	Remaining int    `json:"remaining"`
	Ended     bool   `json:"ended"`
	Winner    string `json:"winner,omitempty"`
}

// NewEncoder creates an encoder with no clients.
func NewEncoder(logger zerolog.Logger) *Encoder {
	return &Encoder{
		clients: make(map[*websocket.Conn]struct{}),
		logger:  logger,
	}
}

func (enc *Encoder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		enc.logger.Error().Err(err).Msg("upgrade")
		return
	}
	enc.Lock()
	enc.clients[c] = struct{}{}
	enc.Unlock()
	enc.logger.Info().Str("remote", r.RemoteAddr).Msg("client connected")

	// clients only listen. Reading detects when they go away.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
	enc.drop(c)
}

func (enc *Encoder) drop(c *websocket.Conn) {
	enc.Lock()
	delete(enc.clients, c)
	enc.Unlock()
	c.Close()
}

// Clients returns the number of connected clients.
func (enc *Encoder) Clients() int {
	enc.Lock()
	defer enc.Unlock()
	return len(enc.clients)
}

// Encode a game
func (enc *Encoder) Encode(ms game.MetaState) error {
	g := ms.State()
	last := g.LastMove()
	msg := moveMsg{
		Game:      ms.Name(),
		Number:    ms.GameNumber(),
		Player:    fmt.Sprintf("%v", last.Player),
		Take:      last.Take,
		Remaining: g.Remaining(),
	}
	if ended, winner := g.Ended(); ended {
		msg.Ended = true
		msg.Winner = fmt.Sprintf("%v", winner)
	}

	enc.Lock()
	var gone []*websocket.Conn
	for c := range enc.clients {
		c.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.WriteJSON(msg); err != nil {
			enc.logger.Warn().Err(err).Msg("write")
			gone = append(gone, c)
		}
	}
	enc.Unlock()
	for _, c := range gone {
		enc.drop(c)
	}
	return nil
}

// Flush ...
func (enc *Encoder) Flush() error { return nil }
