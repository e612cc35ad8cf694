// internal/httpserver/routes_levels.go
//
// HTTP routes for the level table.
// Exposes four endpoints under /levels:
//   - GET  /levels             → curated pack + user-submitted levels
//   - POST /levels             → submit a level (pre-flight validated)
//   - GET  /levels/{id}        → a single level by ID
//   - GET  /levels/{id}/board  → a generated board for the level
//
// Curated levels shadow stored ones on ID lookup. Board generation takes
// the seed from the query string; without one it falls back to
// "{levelID}:0" so the level's default board is stable across calls.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/mclardy/hexaword/internal/levels"
	"github.com/mclardy/hexaword/internal/puzzle"
)

// mountLevels registers all /levels routes.
func (s *Server) mountLevels(r chi.Router) {
	r.Route("/levels", func(r chi.Router) {
		r.Get("/", s.handleListLevels)
		r.Post("/", s.handleCreateLevel)
		r.Get("/{id}", s.handleGetLevel)
		r.Get("/{id}/board", s.handleLevelBoard)
	})
}

// levelListRes is the payload for GET /levels.
type levelListRes struct {
	Curated []levels.Level  `json:"curated"`
	Custom  []*levels.Level `json:"custom"`
}

func (s *Server) handleListLevels(w http.ResponseWriter, r *http.Request) {
	custom, err := s.store.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list levels")
		http.Error(w, `{"error":"store_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(levelListRes{Curated: levels.All(), Custom: custom})
}

// createLevelReq is the payload for POST /levels.
type createLevelReq struct {
	Name   string   `json:"name"`
	Words  []string `json:"words"`
	Radius int      `json:"radius"`
}

// handleCreateLevel validates and stores a user-submitted level.
// The pre-flight check is stricter than generation itself: at least 3
// distinct interlockable words, so submitted levels are worth playing.
func (s *Server) handleCreateLevel(w http.ResponseWriter, r *http.Request) {
	var req createLevelReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	l := &levels.Level{Name: req.Name, Words: req.Words, Radius: req.Radius}
	l.Normalize()
	if err := puzzle.CheckWordList(l.Words); err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	if err := s.store.Save(r.Context(), l); err != nil {
		log.Error().Err(err).Msg("save level")
		http.Error(w, `{"error":"store_failed"}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(l)
}

func (s *Server) handleGetLevel(w http.ResponseWriter, r *http.Request) {
	l, err := s.lookupLevel(r)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(l)
}

// levelBoardRes is the payload for GET /levels/{id}/board.
type levelBoardRes struct {
	Level *levels.Level `json:"level"`
	Seed  string        `json:"seed"`
	*puzzle.Result
}

// handleLevelBoard generates a board for a level. The seed query param
// selects the variant; identical seeds reproduce identical boards.
func (s *Server) handleLevelBoard(w http.ResponseWriter, r *http.Request) {
	l, err := s.lookupLevel(r)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	seed := r.URL.Query().Get("seed")
	if seed == "" {
		seed = l.ID + ":0"
	}
	res, err := puzzle.Generate(l.Words, seed, l.Radius)
	if err != nil {
		s.writeGenerateError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(levelBoardRes{Level: l, Seed: seed, Result: res})
}

// lookupLevel resolves {id} against the curated pack first, then the store.
func (s *Server) lookupLevel(r *http.Request) (*levels.Level, error) {
	id := chi.URLParam(r, "id")
	if l, ok := levels.ByID(id); ok {
		return &l, nil
	}
	l, err := s.store.Get(r.Context(), id)
	if err != nil {
		if !errors.Is(err, levels.ErrNotFound) {
			log.Error().Err(err).Str("level", id).Msg("get level")
		}
		return nil, err
	}
	return l, nil
}
