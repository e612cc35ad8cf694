// internal/httpserver/routes_daily.go
//
// The daily puzzle: GET /daily returns today's curated level and its
// generated board. Level choice and seed are deterministic per date
// (HMAC of the date with the server salt), so every instance serves the
// same board without shared state. Results, streaks, and leaderboards
// are the hosting platform's concern, not this service's.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mclardy/hexaword/internal/daily"
	"github.com/mclardy/hexaword/internal/levels"
	"github.com/mclardy/hexaword/internal/puzzle"
)

// dailyRes is the payload for GET /daily.
type dailyRes struct {
	Date  string       `json:"date"`
	Level levels.Level `json:"level"`
	Seed  string       `json:"seed"`
	*puzzle.Result
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	all := levels.All()
	if len(all) == 0 {
		http.Error(w, `{"error":"no_levels"}`, http.StatusServiceUnavailable)
		return
	}
	lv := all[daily.LevelIndex(now, s.cfg.DailySalt, len(all))]
	seed := daily.Seed(lv.ID, now)

	res, err := puzzle.Generate(lv.Words, seed, lv.Radius)
	if err != nil {
		s.writeGenerateError(w, err)
		return
	}
	if !res.Success {
		// Curated levels should always place fully; worth noticing if not.
		log.Warn().Str("level", lv.ID).Str("seed", seed).Msg("daily board placed partially")
	}
	_ = json.NewEncoder(w).Encode(dailyRes{
		Date:   daily.DateKey(now),
		Level:  lv,
		Seed:   seed,
		Result: res,
	})
}
