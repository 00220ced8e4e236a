package store

import "time"

// WalkingActivities returns the walking/hiking activities recorded on one
// day. start_time is a full DATETIME, so the date match is on its first ten
// bytes. Other sports are excluded; cadence thresholds only make sense for
// gait.
func (s *Store) WalkingActivities(day time.Time) ([]Activity, error) {
	rows, err := s.activities.Query(`
		SELECT start_time, COALESCE(name, ''), COALESCE(type, ''), COALESCE(sport, ''), avg_cadence
		FROM activities
		WHERE substr(start_time, 1, 10) = ?
		AND (type LIKE '%walking%' OR type LIKE '%hiking%' OR sport LIKE '%walking%')
		ORDER BY start_time
	`, dayKey(day))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []Activity
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.StartTime, &a.Name, &a.Type, &a.Sport, &a.AvgCadence); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
