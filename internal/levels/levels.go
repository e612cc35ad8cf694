// internal/levels/levels.go
//
// Curated level pack management.
//
// Responsibilities:
//   - Load the curated level table from an environment-provided JSON file
//     or fall back to the embedded default pack.
//   - Keep lookup structures for quick access by ID and stable ordering
//     for deterministic daily selection.
//
// Level constraints:
//   • Words must pass puzzle.CheckWordList (>=3 words, 2-12 uppercase
//     letters, no duplicates, at least one shared letter).
//   • A missing radius defaults to DefaultRadius.
//   • Levels failing validation are dropped with a warning rather than
//     aborting startup.
//
// Environment variables:
//   LEVELS_FILE=/path/to/levels.json
//
// Initialization is run once (sync.Once).

package levels

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mclardy/hexaword/assets"
	"github.com/mclardy/hexaword/internal/puzzle"
)

// DefaultRadius is the grid radius used when a level does not set one.
const DefaultRadius = 10

// Level is a named word list a board can be generated from, sourced from
// the curated pack or from a user submission.
type Level struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Words     []string  `json:"words"`
	Radius    int       `json:"radius"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

var (
	initOnce   sync.Once
	curated    []Level          // pack order, drives daily selection
	curatedIdx map[string]int   // ID → index into curated
	initialErr error
)

// Init loads the curated level pack exactly once.
// Returns an error if no valid level survives loading.
func Init() error {
	initOnce.Do(func() {
		var raw []byte
		var err error

		if path := os.Getenv("LEVELS_FILE"); path != "" {
			raw, err = os.ReadFile(path)
		} else {
			raw, err = assets.LevelsJSON()
		}
		if err != nil {
			initialErr = err
			return
		}

		var loaded []Level
		if err := json.Unmarshal(raw, &loaded); err != nil {
			initialErr = err
			return
		}

		curatedIdx = make(map[string]int)
		for _, lv := range loaded {
			lv.Normalize()
			if err := puzzle.CheckWordList(lv.Words); err != nil {
				log.Warn().Str("level", lv.ID).Err(err).Msg("dropping invalid curated level")
				continue
			}
			if _, dup := curatedIdx[lv.ID]; dup {
				log.Warn().Str("level", lv.ID).Msg("dropping duplicate curated level id")
				continue
			}
			curatedIdx[lv.ID] = len(curated)
			curated = append(curated, lv)
		}

		if len(curated) == 0 {
			initialErr = errors.New("levels: no valid curated level loaded")
		}
	})
	return initialErr
}

// Normalize uppercases words and fills in the default radius.
func (l *Level) Normalize() {
	for i, w := range l.Words {
		l.Words[i] = strings.ToUpper(strings.TrimSpace(w))
	}
	if l.Radius <= 0 {
		l.Radius = DefaultRadius
	}
}

// All returns the curated levels in pack order.
// The returned slice is shared; callers must not modify it.
func All() []Level {
	return curated
}

// ByID returns the curated level with the given ID.
func ByID(id string) (Level, bool) {
	if i, ok := curatedIdx[id]; ok {
		return curated[i], true
	}
	return Level{}, false
}

// Count returns the number of curated levels.
func Count() int { return len(curated) }
