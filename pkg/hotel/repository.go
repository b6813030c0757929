package hotel

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repository interface {
	Store(ctx context.Context, hotel Hotel) (int, error)
	// ListForTrip returns the trip's hotels in insertion order.
	ListForTrip(ctx context.Context, tripId int) ([]Hotel, error)
	Delete(ctx context.Context, tripId int, id int) (bool, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Store(ctx context.Context, hotel Hotel) (int, error) {
	query := `INSERT INTO hotel (trip_id, name, date_range, address) VALUES (?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query, hotel.TripId, hotel.Name, hotel.DateRange, hotel.Address)
	if err != nil {
		err := fmt.Errorf("could not store hotel: %w", err)
		log.Error(err)
		return 0, err
	}
	lastInsertID, err := result.LastInsertId()
	if err != nil {
		err := fmt.Errorf("could not retrieve last insert id: %w", err)
		log.Error(err)
		return 0, err
	}
	return int(lastInsertID), nil
}

func (r *RepositoryImpl) ListForTrip(ctx context.Context, tripId int) ([]Hotel, error) {
	query := `SELECT id, trip_id, name, date_range, address FROM hotel WHERE trip_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, tripId)
	if err != nil {
		err := fmt.Errorf("could not query hotels: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var hotels []Hotel
	for rows.Next() {
		var hotel Hotel
		if err := rows.Scan(&hotel.ID, &hotel.TripId, &hotel.Name, &hotel.DateRange, &hotel.Address); err != nil {
			err := fmt.Errorf("could not scan hotel: %w", err)
			log.Error(err)
			return nil, err
		}
		hotels = append(hotels, hotel)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return hotels, nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, tripId int, id int) (bool, error) {
	query := `DELETE FROM hotel WHERE trip_id = ? AND id = ?`
	result, err := r.db.ExecContext(ctx, query, tripId, id)
	if err != nil {
		err := fmt.Errorf("could not delete hotel: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}
