// internal/httpserver/server.go
//
// HTTP server wiring for the Hexaword generation backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Generation endpoint: POST /generate.
//   - Level endpoints: mounted under /levels.
//   - Daily puzzle endpoint: GET /daily.
//
// Notes:
//   - The generation core is pure; every handler owns its own board and
//     RNG per request, so no locking is needed around generation.
//   - CORS is origin-aware and credentials-enabled (so browser clients
//     with cookies keep working behind the same config as upstream apps).

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/mclardy/hexaword/internal/levels"
	"github.com/mclardy/hexaword/internal/puzzle"
)

// Config carries the host-level knobs handlers need.
type Config struct {
	DefaultRadius int    // grid radius when a request does not set one
	DailySalt     string // salt for deterministic daily level selection
	ClientOrigin  string // CORS origin; empty falls back to localhost dev
}

// Server bundles router, level store, and config.
type Server struct {
	r     *chi.Mux
	store levels.Store
	cfg   Config
}

// New constructs a Server, installs middleware, and registers routes.
func New(st levels.Store, cfg Config) *Server {
	if cfg.DefaultRadius <= 0 {
		cfg.DefaultRadius = levels.DefaultRadius
	}
	s := &Server{r: chi.NewRouter(), store: st, cfg: cfg}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"hexaword-go","endpoints":["/health","POST /generate","/levels","/daily"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Post("/generate", s.handleGenerate)
	s.mountLevels(s.r)
	s.r.Get("/daily", s.handleDaily)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured single origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ---------------------------- GENERATION ------------------------------------

// generateReq is the payload for POST /generate.
type generateReq struct {
	Words  []string `json:"words"`
	Seed   string   `json:"seed"`
	Radius int      `json:"radius"` // optional; falls back to the default
}

// handleGenerate runs one generation pass for an explicit word list.
// Partial placement is not an error: the response carries success=false
// and the caller decides whether to retry with another seed.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	radius := req.Radius
	if radius == 0 {
		radius = s.cfg.DefaultRadius
	}
	res, err := puzzle.Generate(req.Words, req.Seed, radius)
	if err != nil {
		s.writeGenerateError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// writeGenerateError maps generator errors to HTTP statuses. A letter
// conflict means the engine itself is broken; it is logged loudly and
// surfaced as a 500 rather than swallowed.
func (s *Server) writeGenerateError(w http.ResponseWriter, err error) {
	if errors.Is(err, puzzle.ErrLetterConflict) {
		log.Error().Err(err).Msg("generation consistency violation")
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
}
