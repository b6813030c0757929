package trip

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type Repository interface {
	Store(ctx context.Context, trip Trip) (int, error)
	Get(ctx context.Context, id int) (Trip, error)
	GetByUid(ctx context.Context, uid string) (Trip, error)
	List(ctx context.Context) ([]Trip, error)
	Update(ctx context.Context, trip Trip) (bool, error)
	UpdateDaysCount(ctx context.Context, id int, daysCount int) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Store(ctx context.Context, trip Trip) (int, error) {
	query := `INSERT INTO trip (uid, name, start_date, days_count, exchange_rate) VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		trip.Uid,
		trip.Name,
		trip.StartDate.Format(DateFormat),
		trip.DaysCount,
		trip.ExchangeRate,
	)
	if err != nil {
		err := fmt.Errorf("could not store trip: %w", err)
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

func (r *RepositoryImpl) Get(ctx context.Context, id int) (Trip, error) {
	query := `SELECT id, uid, name, start_date, days_count, exchange_rate FROM trip WHERE id = ?`
	return r.scanTrip(r.db.QueryRowContext(ctx, query, id))
}

func (r *RepositoryImpl) GetByUid(ctx context.Context, uid string) (Trip, error) {
	query := `SELECT id, uid, name, start_date, days_count, exchange_rate FROM trip WHERE uid = ?`
	return r.scanTrip(r.db.QueryRowContext(ctx, query, uid))
}

func (r *RepositoryImpl) List(ctx context.Context) ([]Trip, error) {
	query := `SELECT id, uid, name, start_date, days_count, exchange_rate FROM trip ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query trips: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var trips []Trip
	for rows.Next() {
		var trip Trip
		var startDate string
		if err := rows.Scan(&trip.ID, &trip.Uid, &trip.Name, &startDate, &trip.DaysCount, &trip.ExchangeRate); err != nil {
			err := fmt.Errorf("could not scan trip: %w", err)
			log.Error(err)
			return nil, err
		}
		parsed, err := time.Parse(DateFormat, startDate)
		if err != nil {
			err := fmt.Errorf("could not parse trip start date: %w", err)
			log.Error(err)
			return nil, err
		}
		trip.StartDate = parsed
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return trips, nil
}

func (r *RepositoryImpl) scanTrip(row *sql.Row) (Trip, error) {
	var trip Trip
	var startDate string
	if err := row.Scan(&trip.ID, &trip.Uid, &trip.Name, &startDate, &trip.DaysCount, &trip.ExchangeRate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Trip{}, err
		}
		err := fmt.Errorf("could not scan trip: %w", err)
		log.Error(err)
		return Trip{}, err
	}
	parsed, err := time.Parse(DateFormat, startDate)
	if err != nil {
		err := fmt.Errorf("could not parse trip start date: %w", err)
		log.Error(err)
		return Trip{}, err
	}
	trip.StartDate = parsed
	return trip, nil
}

func (r *RepositoryImpl) Update(ctx context.Context, trip Trip) (bool, error) {
	query := `UPDATE trip SET name = ?, start_date = ?, days_count = ?, exchange_rate = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query,
		trip.Name,
		trip.StartDate.Format(DateFormat),
		trip.DaysCount,
		trip.ExchangeRate,
		trip.ID,
	)
	if err != nil {
		err := fmt.Errorf("could not update trip: %w", err)
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

func (r *RepositoryImpl) UpdateDaysCount(ctx context.Context, id int, daysCount int) (bool, error) {
	query := `UPDATE trip SET days_count = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, daysCount, id)
	if err != nil {
		err := fmt.Errorf("could not update trip days count: %w", err)
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

func (r *RepositoryImpl) Delete(ctx context.Context, id int) (bool, error) {
	query := `DELETE FROM trip WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		err := fmt.Errorf("could not delete trip: %w", err)
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
