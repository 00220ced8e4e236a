package store

import (
	"database/sql"
)

// NewTestStore creates a Store over already-open database handles.
// This is only intended for use in tests, where fixtures are written
// through the raw handles before the read path is exercised.
func NewTestStore(garmin, activities *sql.DB) *Store {
	return newStore(garmin, activities)
}
