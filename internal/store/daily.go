package store

import (
	"database/sql"
	"errors"
	"time"
)

// DailySummary returns the summary row for one day, or (nil, nil) when the
// device has no data for that date.
func (s *Store) DailySummary(day time.Time) (*DailySummary, error) {
	row := s.garmin.QueryRow(`
		SELECT day, rhr, hr_max, bb_charged, stress_avg, steps, calories_active
		FROM daily_summary
		WHERE day = ?
	`, dayKey(day))

	var d DailySummary
	err := row.Scan(&d.Day, &d.RestingHR, &d.MaxHR, &d.BodyBatteryCharged,
		&d.StressAvg, &d.Steps, &d.ActiveCalories)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// DailyRange returns summary rows for from..to inclusive, ordered by day.
// Days without a row are simply missing from the result.
func (s *Store) DailyRange(from, to time.Time) ([]DailySummary, error) {
	rows, err := s.garmin.Query(`
		SELECT day, rhr, hr_max, bb_charged, stress_avg, steps, calories_active
		FROM daily_summary
		WHERE day BETWEEN ? AND ?
		ORDER BY day
	`, dayKey(from), dayKey(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []DailySummary
	for rows.Next() {
		var d DailySummary
		err := rows.Scan(&d.Day, &d.RestingHR, &d.MaxHR, &d.BodyBatteryCharged,
			&d.StressAvg, &d.Steps, &d.ActiveCalories)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, d)
	}
	return summaries, rows.Err()
}

// RestingHR returns the overnight resting heart rate for one day from the
// dedicated resting_hr table, or nil when absent.
func (s *Store) RestingHR(day time.Time) (*float64, error) {
	var rhr *float64
	err := s.garmin.QueryRow(`
		SELECT resting_heart_rate FROM resting_hr WHERE day = ?
	`, dayKey(day)).Scan(&rhr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rhr, nil
}

// RestingHRRange returns (day, rhr) pairs for from..to inclusive, ordered by
// day, skipping NULL readings.
func (s *Store) RestingHRRange(from, to time.Time) (map[string]float64, error) {
	rows, err := s.garmin.Query(`
		SELECT day, resting_heart_rate
		FROM resting_hr
		WHERE day BETWEEN ? AND ? AND resting_heart_rate IS NOT NULL
		ORDER BY day
	`, dayKey(from), dayKey(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]float64)
	for rows.Next() {
		var day string
		var rhr float64
		if err := rows.Scan(&day, &rhr); err != nil {
			return nil, err
		}
		values[day] = rhr
	}
	return values, rows.Err()
}

// RestingHRAverage returns the mean resting HR over from..to inclusive, or
// nil when no readings exist in the window.
func (s *Store) RestingHRAverage(from, to time.Time) (*float64, error) {
	return s.scalarAvg(`
		SELECT AVG(resting_heart_rate) FROM resting_hr WHERE day BETWEEN ? AND ?
	`, from, to)
}

// StressAverage returns the mean daily stress score over from..to inclusive,
// or nil when no readings exist in the window.
func (s *Store) StressAverage(from, to time.Time) (*float64, error) {
	return s.scalarAvg(`
		SELECT AVG(stress_avg) FROM daily_summary WHERE day BETWEEN ? AND ?
	`, from, to)
}

// scalarAvg runs a single-column AVG query. SQL AVG over zero rows yields
// NULL, which comes back as nil, never zero.
func (s *Store) scalarAvg(query string, from, to time.Time) (*float64, error) {
	var avg *float64
	err := s.garmin.QueryRow(query, dayKey(from), dayKey(to)).Scan(&avg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return avg, nil
}
