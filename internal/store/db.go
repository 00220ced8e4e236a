package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrMissingDatabase is returned when an export database file does not exist.
var ErrMissingDatabase = errors.New("export database not found")

// Store provides read-only access to the wearable export databases.
// Daily summaries, resting HR, HRV and sleep live in garmin.db; per-activity
// records live in garmin_activities.db. The store never writes to either;
// the export script owns the schema and all mutations.
type Store struct {
	garmin     *sql.DB
	activities *sql.DB
}

// Open opens the export databases under dir. Both files must already exist;
// this tool never creates or migrates them.
func Open(dir string) (*Store, error) {
	garminPath := filepath.Join(dir, "garmin.db")
	activitiesPath := filepath.Join(dir, "garmin_activities.db")

	for _, path := range []string{garminPath, activitiesPath} {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingDatabase, path)
		}
	}

	garmin, err := sql.Open("sqlite", readOnlyDSN(garminPath))
	if err != nil {
		return nil, fmt.Errorf("opening garmin db: %w", err)
	}

	activities, err := sql.Open("sqlite", readOnlyDSN(activitiesPath))
	if err != nil {
		garmin.Close()
		return nil, fmt.Errorf("opening activities db: %w", err)
	}

	return newStore(garmin, activities), nil
}

// readOnlyDSN builds a mode=ro connection string so a bug here can never
// corrupt the export databases.
func readOnlyDSN(path string) string {
	return "file:" + path + "?mode=ro"
}

func newStore(garmin, activities *sql.DB) *Store {
	return &Store{garmin: garmin, activities: activities}
}

// Close closes both underlying database connections.
func (s *Store) Close() error {
	return errors.Join(s.garmin.Close(), s.activities.Close())
}

// dayKey formats a date as the ISO YYYY-MM-DD key used by every table.
func dayKey(day time.Time) string {
	return day.Format("2006-01-02")
}
