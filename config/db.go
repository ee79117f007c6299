package config

import (
	"sync"

	"github.com/VindiceCode/plantprince/models"

	"gorm.io/gorm"
)

// DB is a global variable to hold the database connection. It stays nil
// when DATABASE_URL is not set; audit logging is skipped in that case.
var DB *gorm.DB

// Stats are in-memory request counters kept since process start. They
// back the stats endpoint when no database is configured.
type Stats struct {
	Requests         int64
	ServedByLLM      int64
	ServedByFallback int64
	TotalTimeMs      int64
}

var (
	stats   Stats
	statsMu sync.Mutex
)

// RecordRequest adds one completed recommendation to the counters.
func RecordRequest(generatedBy string, durationMs int64) {
	statsMu.Lock()
	defer statsMu.Unlock()

	stats.Requests++
	stats.TotalTimeMs += durationMs
	if generatedBy == models.GeneratedByLLM {
		stats.ServedByLLM++
	} else {
		stats.ServedByFallback++
	}
}

// CurrentStats returns a copy of the counters.
func CurrentStats() Stats {
	statsMu.Lock()
	defer statsMu.Unlock()
	return stats
}

// ResetStats clears the counters. Used by tests.
func ResetStats() {
	statsMu.Lock()
	defer statsMu.Unlock()
	stats = Stats{}
}
