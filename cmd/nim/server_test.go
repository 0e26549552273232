package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorgonia/nim"
	"github.com/gorgonia/nim/minimax"
	"github.com/gorgonia/nim/ntp"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeDot(t *testing.T) {
	searcher := minimax.New(minimax.DefaultConfig(3))
	srv := httptest.NewServer(newRouter(NewEncoder(zerolog.Nop()), searcher))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/tree.dot")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "no search yet")

	_, err = searcher.Search(4)
	require.NoError(t, err)
	resp, err = http.Get(srv.URL + "/tree.dot")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "digraph G")
}

func TestTreeDotTooLarge(t *testing.T) {
	searcher := minimax.New(minimax.DefaultConfig(3))
	srv := httptest.NewServer(newRouter(NewEncoder(zerolog.Nop()), searcher))
	defer srv.Close()

	// a pile of 16 builds 23249 nodes
	_, err := searcher.Search(16)
	require.NoError(t, err)
	require.True(t, searcher.Tree().Len() > maxDotNodes)

	resp, err := http.Get(srv.URL + "/tree.dot")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.NotContains(t, string(body), "digraph G")
}

func TestMoveStream(t *testing.T) {
	enc := NewEncoder(zerolog.Nop())
	conf := nim.DefaultConfig(3, 4)
	conf.OutputEncoder = enc
	n, err := nim.New(conf, nim.NewRandomChooser(1))
	require.NoError(t, err)

	srv := httptest.NewServer(newRouter(enc, n.Computer.Searcher))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer c.Close()

	// wait for the server to register the client
	deadline := time.Now().Add(2 * time.Second)
	for enc.Clients() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	require.Equal(t, 1, enc.Clients())

	_, err = n.Play()
	require.NoError(t, err)

	var first moveMsg
	require.NoError(t, c.ReadJSON(&first))
	assert.Equal(t, "Nim", first.Game)
	assert.Equal(t, "Computer", first.Player)
	assert.Equal(t, 3, first.Take)
	assert.Equal(t, 1, first.Remaining)
	assert.False(t, first.Ended)

	var last moveMsg
	require.NoError(t, c.ReadJSON(&last))
	assert.Equal(t, "Human", last.Player)
	assert.True(t, last.Ended)
	assert.Equal(t, "Human", last.Winner)
}

func TestServeNTP(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("new_game 3 4\ngenmove\n1 quit\nname\n")
	require.NoError(t, serveNTP(ntp.New(nil, "nim", version, nil), in, &out))
	assert.Equal(t, "= \n\n= 3\n\n= 1 \n\n", out.String(), "nothing is read after quit")

	out.Reset()
	require.NoError(t, serveNTP(ntp.New(nil, "nim", version, nil), strings.NewReader("name\n"), &out))
	assert.Equal(t, "= nim\n\n", out.String())
}
