package test_utils

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
)

// InsertTestTrip inserts a trip row directly and returns its id. Raw SQL keeps
// this helper independent from the domain packages that use it in tests.
func InsertTestTrip(t *testing.T, db *sql.DB, name string, startDate string, daysCount int) int {
	t.Helper()

	result, err := db.Exec(
		`INSERT INTO trip (uid, name, start_date, days_count, exchange_rate) VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), name, startDate, daysCount, 0.215,
	)
	if err != nil {
		t.Fatalf("Failed to insert test trip: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get test trip id: %v", err)
	}
	return int(id)
}
