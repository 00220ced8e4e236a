package engine

import (
	"fmt"
	"time"
)

// Freshness reports how current the export tables are relative to now.
// Fresh means the summary and HRV tables reach at least yesterday and sleep
// data exists for today; anything less means a device sync is due.
type Freshness struct {
	Summary    *time.Time
	HRV        *time.Time
	Sleep      *time.Time
	Fresh      bool
	SleepToday bool
}

// Freshness inspects the latest day present in each table.
func (e *Engine) Freshness(now time.Time) (*Freshness, error) {
	latest, err := e.source.LatestDays()
	if err != nil {
		return nil, fmt.Errorf("loading latest days: %w", err)
	}

	f := &Freshness{
		Summary: parseDay(latest.Summary),
		HRV:     parseDay(latest.HRV),
		Sleep:   parseDay(latest.Sleep),
	}

	// ISO day keys order lexically, so compare them as strings and sidestep
	// time zone mismatches between parsed keys and the caller's clock.
	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	summaryFresh := latest.Summary != nil && *latest.Summary >= yesterday
	hrvFresh := latest.HRV != nil && *latest.HRV >= yesterday
	f.SleepToday = latest.Sleep != nil && *latest.Sleep == today
	f.Fresh = summaryFresh && hrvFresh && f.SleepToday

	return f, nil
}

// parseDay parses an ISO day key, treating malformed values as absent.
func parseDay(s *string) *time.Time {
	if s == nil {
		return nil
	}
	d, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &d
}
