package store

import (
	"database/sql"
	"errors"
	"time"
)

// Sleep returns the sleep row for one day, or (nil, nil) when absent.
func (s *Store) Sleep(day time.Time) (*SleepRecord, error) {
	row := s.garmin.QueryRow(`
		SELECT day, total_sleep FROM sleep WHERE day = ?
	`, dayKey(day))

	var r SleepRecord
	var total *string
	err := row.Scan(&r.Day, &total)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if total != nil {
		r.TotalSleep = *total
	}
	return &r, nil
}

// LatestDays returns the most recent day present in the daily_summary, hrv
// and sleep tables. Used by the freshness check to decide whether a device
// sync is overdue.
func (s *Store) LatestDays() (*LatestDays, error) {
	var latest LatestDays

	queries := []struct {
		sql  string
		dest **string
	}{
		{"SELECT MAX(day) FROM daily_summary", &latest.Summary},
		{"SELECT MAX(day) FROM hrv", &latest.HRV},
		{"SELECT MAX(day) FROM sleep", &latest.Sleep},
	}

	for _, q := range queries {
		err := s.garmin.QueryRow(q.sql).Scan(q.dest)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
	}
	return &latest, nil
}
