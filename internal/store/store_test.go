package store

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// fixture schema mirrors the subset of the wearable export read by this
// package.
const garminSchema = `
CREATE TABLE daily_summary (
	day TEXT PRIMARY KEY,
	rhr REAL,
	hr_max INTEGER,
	bb_charged REAL,
	stress_avg REAL,
	steps INTEGER,
	calories_active REAL
);
CREATE TABLE resting_hr (
	day TEXT PRIMARY KEY,
	resting_heart_rate REAL
);
CREATE TABLE hrv (
	day TEXT PRIMARY KEY,
	last_night_avg REAL,
	weekly_avg REAL
);
CREATE TABLE sleep (
	day TEXT PRIMARY KEY,
	total_sleep TEXT
);
`

const activitiesSchema = `
CREATE TABLE activities (
	start_time TEXT,
	name TEXT,
	type TEXT,
	sport TEXT,
	avg_cadence REAL
);
`

// setupTestStore creates a Store backed by in-memory databases with the
// export schema applied.
func setupTestStore(t *testing.T) (*Store, *sql.DB, *sql.DB) {
	t.Helper()

	garmin, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory garmin db: %v", err)
	}
	garmin.SetMaxOpenConns(1)
	if _, err := garmin.Exec(garminSchema); err != nil {
		t.Fatalf("failed to create garmin schema: %v", err)
	}

	activities, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory activities db: %v", err)
	}
	activities.SetMaxOpenConns(1)
	if _, err := activities.Exec(activitiesSchema); err != nil {
		t.Fatalf("failed to create activities schema: %v", err)
	}

	s := NewTestStore(garmin, activities)
	t.Cleanup(func() { s.Close() })
	return s, garmin, activities
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestDailySummaryAbsent(t *testing.T) {
	s, _, _ := setupTestStore(t)

	summary, err := s.DailySummary(day("2025-06-01"))
	if err != nil {
		t.Fatalf("DailySummary() error = %v", err)
	}
	if summary != nil {
		t.Errorf("DailySummary() = %+v, want nil for missing day", summary)
	}
}

func TestDailySummaryNullColumns(t *testing.T) {
	s, garmin, _ := setupTestStore(t)

	_, err := garmin.Exec(`
		INSERT INTO daily_summary (day, rhr, steps) VALUES ('2025-06-01', 51.0, 4200)
	`)
	if err != nil {
		t.Fatal(err)
	}

	summary, err := s.DailySummary(day("2025-06-01"))
	if err != nil {
		t.Fatalf("DailySummary() error = %v", err)
	}
	if summary == nil {
		t.Fatal("DailySummary() = nil, want row")
	}
	if summary.RestingHR == nil || *summary.RestingHR != 51.0 {
		t.Errorf("RestingHR = %v, want 51.0", summary.RestingHR)
	}
	if summary.Steps == nil || *summary.Steps != 4200 {
		t.Errorf("Steps = %v, want 4200", summary.Steps)
	}
	if summary.BodyBatteryCharged != nil {
		t.Errorf("BodyBatteryCharged = %v, want nil", *summary.BodyBatteryCharged)
	}
	if summary.StressAvg != nil {
		t.Errorf("StressAvg = %v, want nil", *summary.StressAvg)
	}
}

func TestRestingHRAverage(t *testing.T) {
	s, garmin, _ := setupTestStore(t)

	rows := []struct {
		day string
		rhr float64
	}{
		{"2025-06-01", 50},
		{"2025-06-02", 52},
		{"2025-06-03", 54},
	}
	for _, r := range rows {
		if _, err := garmin.Exec(
			"INSERT INTO resting_hr (day, resting_heart_rate) VALUES (?, ?)", r.day, r.rhr); err != nil {
			t.Fatal(err)
		}
	}

	avg, err := s.RestingHRAverage(day("2025-06-01"), day("2025-06-03"))
	if err != nil {
		t.Fatalf("RestingHRAverage() error = %v", err)
	}
	if avg == nil || *avg != 52 {
		t.Errorf("RestingHRAverage() = %v, want 52", avg)
	}

	// Empty window: SQL AVG yields NULL, which must surface as nil, not 0.
	avg, err = s.RestingHRAverage(day("2025-07-01"), day("2025-07-07"))
	if err != nil {
		t.Fatalf("RestingHRAverage() error = %v", err)
	}
	if avg != nil {
		t.Errorf("RestingHRAverage() over empty window = %v, want nil", *avg)
	}
}

func TestHRVAverageSkipsNulls(t *testing.T) {
	s, garmin, _ := setupTestStore(t)

	if _, err := garmin.Exec(`
		INSERT INTO hrv (day, last_night_avg) VALUES
			('2025-06-01', 50),
			('2025-06-02', NULL),
			('2025-06-03', 54)
	`); err != nil {
		t.Fatal(err)
	}

	avg, err := s.HRVAverage(day("2025-06-01"), day("2025-06-03"))
	if err != nil {
		t.Fatalf("HRVAverage() error = %v", err)
	}
	// AVG ignores the NULL row: (50+54)/2.
	if avg == nil || *avg != 52 {
		t.Errorf("HRVAverage() = %v, want 52", avg)
	}
}

func TestWalkingActivitiesFilter(t *testing.T) {
	s, _, activities := setupTestStore(t)

	if _, err := activities.Exec(`
		INSERT INTO activities (start_time, name, type, sport, avg_cadence) VALUES
			('2025-06-01 08:00:00', 'Morning walk', 'walking', 'walking', 101),
			('2025-06-01 12:00:00', 'Trail', 'hiking', 'hiking', 88),
			('2025-06-01 18:00:00', 'Spin', 'cycling', 'cycling', 85),
			('2025-06-02 08:00:00', 'Other day', 'walking', 'walking', 99)
	`); err != nil {
		t.Fatal(err)
	}

	got, err := s.WalkingActivities(day("2025-06-01"))
	if err != nil {
		t.Fatalf("WalkingActivities() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("WalkingActivities() returned %d rows, want 2", len(got))
	}
	if got[0].Name != "Morning walk" || got[1].Name != "Trail" {
		t.Errorf("unexpected activities: %+v", got)
	}
}

func TestSleepHours(t *testing.T) {
	tests := []struct {
		name  string
		total string
		want  float64
	}{
		{"full clock", "07:30:00", 7.5},
		{"with microseconds", "07:45:00.000000", 7.75},
		{"hours and minutes only", "06:15", 6.25},
		{"empty", "", 0},
		{"garbage", "not-a-duration", 0},
		{"too many fields", "1:2:3:4", 0},
		{"negative minutes", "07:-30:00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &SleepRecord{Day: "2025-06-01", TotalSleep: tt.total}
			if got := r.Hours(); got != tt.want {
				t.Errorf("Hours(%q) = %v, want %v", tt.total, got, tt.want)
			}
		})
	}

	var nilRecord *SleepRecord
	if got := nilRecord.Hours(); got != 0 {
		t.Errorf("nil record Hours() = %v, want 0", got)
	}
}

func TestLatestDays(t *testing.T) {
	s, garmin, _ := setupTestStore(t)

	if _, err := garmin.Exec(`
		INSERT INTO daily_summary (day) VALUES ('2025-06-01'), ('2025-06-03');
		INSERT INTO hrv (day, last_night_avg) VALUES ('2025-06-02', 50);
	`); err != nil {
		t.Fatal(err)
	}

	latest, err := s.LatestDays()
	if err != nil {
		t.Fatalf("LatestDays() error = %v", err)
	}
	if latest.Summary == nil || *latest.Summary != "2025-06-03" {
		t.Errorf("Summary = %v, want 2025-06-03", latest.Summary)
	}
	if latest.HRV == nil || *latest.HRV != "2025-06-02" {
		t.Errorf("HRV = %v, want 2025-06-02", latest.HRV)
	}
	if latest.Sleep != nil {
		t.Errorf("Sleep = %v, want nil for empty table", *latest.Sleep)
	}
}
