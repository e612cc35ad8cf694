// internal/daily/daily.go
//
// Deterministic daily level selection. Which curated level is "today's"
// is a pure function of the date and a server salt, so every instance
// agrees without coordination, and the generation seed embeds the date so
// a day's board is reproducible.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// LevelIndex returns a deterministic curated-level index for a date using
// HMAC(salt, YYYY-MM-DD) % levelCount.
func LevelIndex(date time.Time, salt string, levelCount int) int {
	if levelCount <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(levelCount))
}

// Seed returns the generation seed for a level on a date, following the
// "{contentId}:{level}" convention so regeneration is reproducible per
// visible unit of content.
func Seed(levelID string, date time.Time) string {
	return fmt.Sprintf("%s:%s", levelID, DateKey(date))
}
