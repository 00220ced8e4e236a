package store

import (
	"strconv"
	"strings"
)

// DailySummary is one day of device-derived totals from daily_summary.
// Consumer wearables drop fields routinely, so everything is nullable.
type DailySummary struct {
	Day                string   // YYYY-MM-DD
	RestingHR          *float64 // bpm
	MaxHR              *int64   // bpm
	BodyBatteryCharged *float64 // percent charged overnight, 0-100
	StressAvg          *float64 // unitless device score
	Steps              *int64
	ActiveCalories     *float64 // kcal
}

// HRVRecord is one night of heart-rate variability from the hrv table.
type HRVRecord struct {
	Day          string
	LastNightAvg *float64 // ms
	WeeklyAvg    *float64 // ms, device-computed; may be absent
}

// SleepRecord is one night of sleep from the sleep table. The export encodes
// duration as a clock string ("07:34:00" or "07:34:00.000000").
type SleepRecord struct {
	Day        string
	TotalSleep string
}

// Hours parses the encoded sleep duration into fractional hours.
// Absent or unparsable values resolve to 0 rather than an error; gaps are
// ordinary in this data.
func (r *SleepRecord) Hours() float64 {
	if r == nil || r.TotalSleep == "" {
		return 0
	}

	// Strip fractional seconds ("07:34:00.000000").
	clock, _, _ := strings.Cut(r.TotalSleep, ".")
	parts := strings.Split(clock, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0
	}

	var fields [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0
		}
		fields[i] = n
	}

	return float64(fields[0]) + float64(fields[1])/60 + float64(fields[2])/3600
}

// Activity is a single recorded activity from garmin_activities.db,
// already filtered to walking/hiking by the query that produced it.
type Activity struct {
	StartTime  string // DATETIME; first 10 bytes are the day key
	Name       string
	Type       string
	Sport      string
	AvgCadence *float64 // steps/min
}

// LatestDays holds the most recent day present in each freshness-relevant
// table, nil when a table is empty.
type LatestDays struct {
	Summary *string
	HRV     *string
	Sleep   *string
}
