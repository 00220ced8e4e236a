package store

import (
	"database/sql"
	"errors"
	"time"
)

// HRV returns the HRV row for one day, or (nil, nil) when absent.
func (s *Store) HRV(day time.Time) (*HRVRecord, error) {
	row := s.garmin.QueryRow(`
		SELECT day, last_night_avg, weekly_avg FROM hrv WHERE day = ?
	`, dayKey(day))

	var h HRVRecord
	err := row.Scan(&h.Day, &h.LastNightAvg, &h.WeeklyAvg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// HRVAverage returns the mean overnight HRV over from..to inclusive, or nil
// when no readings exist in the window.
func (s *Store) HRVAverage(from, to time.Time) (*float64, error) {
	return s.scalarAvg(`
		SELECT AVG(last_night_avg) FROM hrv WHERE day BETWEEN ? AND ?
	`, from, to)
}

// HRVRange returns (day, last night average) pairs for from..to inclusive,
// skipping NULL readings.
func (s *Store) HRVRange(from, to time.Time) (map[string]float64, error) {
	rows, err := s.garmin.Query(`
		SELECT day, last_night_avg
		FROM hrv
		WHERE day BETWEEN ? AND ? AND last_night_avg IS NOT NULL
		ORDER BY day
	`, dayKey(from), dayKey(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]float64)
	for rows.Next() {
		var day string
		var avg float64
		if err := rows.Scan(&day, &avg); err != nil {
			return nil, err
		}
		values[day] = avg
	}
	return values, rows.Err()
}
