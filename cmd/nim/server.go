package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorgonia/nim/minimax"
)

// maxDotNodes is the largest tree /tree.dot renders.
const maxDotNodes = 10000

// newRouter serves the move stream on /ws and the DOT rendering of the computer's latest game tree on /tree.dot.
func newRouter(enc *Encoder, searcher *minimax.Searcher) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/ws", enc.ServeHTTP)
	r.Get("/tree.dot", func(w http.ResponseWriter, r *http.Request) {
		t := searcher.Tree()
		if t == nil {
			http.Error(w, "no game tree yet", http.StatusNotFound)
			return
		}
		if t.Len() > maxDotNodes {
			http.Error(w, fmt.Sprintf("game tree has %d nodes, more than the %d that can be drawn", t.Len(), maxDotNodes), http.StatusRequestEntityTooLarge)
			return
		}
		dot, err := t.ToDot()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
		w.Write([]byte(dot))
	})
	return r
}
