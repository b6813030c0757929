package importer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/budingo48763/Japan-trip-app/pkg/itinerary"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	// Replace swaps the trip's whole itinerary for the given items and sets
	// the new day count in one transaction; either everything lands or the
	// prior state is untouched.
	Replace(ctx context.Context, tripId int, daysCount int, items []itinerary.Item) (int, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Replace(ctx context.Context, tripId int, daysCount int, items []itinerary.Item) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Errorf("rollback error: %v", rbErr)
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM itinerary_item WHERE trip_id = ?`, tripId); err != nil {
		return 0, fmt.Errorf("could not clear itinerary items: %w", err)
	}

	for _, item := range items {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO itinerary_item (trip_id, day, time, title, location, category, base_cost, note, transport_mode, transport_minutes)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			tripId,
			item.Day,
			item.Time,
			item.Title,
			item.Location,
			string(item.Category),
			item.BaseCost,
			item.Note,
			string(item.Transport.Mode),
			item.Transport.Minutes,
		)
		if err != nil {
			return 0, fmt.Errorf("could not store imported item: %w", err)
		}
	}

	result, err := tx.ExecContext(ctx, `UPDATE trip SET days_count = ? WHERE id = ?`, daysCount, tripId)
	if err != nil {
		return 0, fmt.Errorf("could not update trip days count: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get rows affected: %w", err)
	}
	if rowsAffected != 1 {
		return 0, fmt.Errorf("trip %d not found", tripId)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return len(items), nil
}
