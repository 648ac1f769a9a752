// Package web serves freshly generated boards over HTTP. Every request
// produces a new board; nothing is stored between requests.
package web

import (
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	codenames "github.com/hbiede/Codenames-Board-Generator"
	"github.com/hbiede/Codenames-Board-Generator/boardgen"
	"github.com/hbiede/Codenames-Board-Generator/format"
)

type Srv struct {
	mux   *mux.Router
	words []string
	log   *slog.Logger

	// mu guards r, which isn't safe for concurrent use.
	mu sync.Mutex
	r  *rand.Rand
}

// New returns an initialized server that draws boards from the given word
// pool.
func New(words []string, r *rand.Rand, log *slog.Logger) *Srv {
	s := &Srv{
		words: words,
		r:     r,
		log:   log,
	}
	s.mux = s.initMux()
	return s
}

func (s *Srv) initMux() *mux.Router {
	m := mux.NewRouter()
	// New board, structured.
	m.HandleFunc("/api/board", s.serveBoard).Methods(http.MethodGet)
	// New board, printable.
	m.HandleFunc("/api/board.txt", s.serveBoardText).Methods(http.MethodGet)
	return m
}

func (s *Srv) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Srv) newBoard() (words, key *codenames.Grid, starter codenames.Team, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	words, err = boardgen.FromPool(s.words, s.r)
	if err != nil {
		return nil, nil, codenames.NoTeam, err
	}
	key, starter, err = boardgen.NewKey(s.r)
	if err != nil {
		return nil, nil, codenames.NoTeam, err
	}
	return words, key, starter, nil
}

func (s *Srv) serveBoard(w http.ResponseWriter, req *http.Request) {
	words, key, starter, err := s.newBoard()
	if err != nil {
		s.serveError(w, err, "failed to generate board")
		return
	}

	resp := boardResponse{StartingTeam: teamName(starter)}
	for row := 0; row < words.Size(); row++ {
		for col := 0; col < words.Size(); col++ {
			m, _ := codenames.ParseMarker(key.At(row, col))
			resp.Cards = append(resp.Cards, cardResponse{
				Word:  words.At(row, col),
				Agent: agentName(m),
			})
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Error("failed to encode board", "error", err)
	}
}

func (s *Srv) serveBoardText(w http.ResponseWriter, req *http.Request) {
	words, key, starter, err := s.newBoard()
	if err != nil {
		s.serveError(w, err, "failed to generate board")
		return
	}

	var out string
	switch view := req.URL.Query().Get("view"); view {
	case "", "words":
		out = format.Render(words)
	case "key":
		out = format.Render(key)
	case "combined":
		combined, err := format.Combined(words, key)
		if err != nil {
			s.serveError(w, err, "failed to combine boards")
			return
		}
		out = format.Render(combined)
	default:
		http.Error(w, "unknown view "+view, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(out + "\n" + starter.String() + " goes first\n"))
}

func (s *Srv) serveError(w http.ResponseWriter, err error, msg string) {
	s.log.Error(msg, "error", err)
	http.Error(w, msg, http.StatusInternalServerError)
}
