package itinerary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrItemNotFound = errors.New("itinerary item not found")

type Repository interface {
	Store(ctx context.Context, item Item) (int, error)
	Get(ctx context.Context, tripId int, day int, id int) (Item, error)
	// ListDay returns the day's items ordered by time ascending with ties in
	// insertion order. Ordering is derived here on every read; it is never
	// stored on the item.
	ListDay(ctx context.Context, tripId int, day int) ([]Item, error)
	Update(ctx context.Context, item Item) (bool, error)
	// Delete removes the item; owned expenses go with it through the foreign
	// key cascade.
	Delete(ctx context.Context, tripId int, day int, id int) (bool, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

const itemColumns = `id, trip_id, day, time, title, location, category, base_cost, note, transport_mode, transport_minutes`

func (r *RepositoryImpl) Store(ctx context.Context, item Item) (int, error) {
	query := `INSERT INTO itinerary_item (trip_id, day, time, title, location, category, base_cost, note, transport_mode, transport_minutes)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		item.TripId,
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
		err := fmt.Errorf("could not store itinerary item: %w", err)
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

func (r *RepositoryImpl) Get(ctx context.Context, tripId int, day int, id int) (Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM itinerary_item WHERE trip_id = ? AND day = ? AND id = ?`, itemColumns)
	row := r.db.QueryRowContext(ctx, query, tripId, day, id)

	item, err := scanItem(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Item{}, ErrItemNotFound
		}
		err := fmt.Errorf("could not scan itinerary item: %w", err)
		log.Error(err)
		return Item{}, err
	}
	return item, nil
}

func (r *RepositoryImpl) ListDay(ctx context.Context, tripId int, day int) ([]Item, error) {
	// id is a monotonic autoincrement, so "time, id" is a stable sort with
	// insertion order as the tie-break.
	query := fmt.Sprintf(`SELECT %s FROM itinerary_item WHERE trip_id = ? AND day = ? ORDER BY time, id`, itemColumns)
	rows, err := r.db.QueryContext(ctx, query, tripId, day)
	if err != nil {
		err := fmt.Errorf("could not query itinerary items: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			err := fmt.Errorf("could not scan itinerary item: %w", err)
			log.Error(err)
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return items, nil
}

func (r *RepositoryImpl) Update(ctx context.Context, item Item) (bool, error) {
	query := `UPDATE itinerary_item SET
				  time = ?,
				  title = ?,
				  location = ?,
				  category = ?,
				  base_cost = ?,
				  note = ?,
				  transport_mode = ?,
				  transport_minutes = ?
			  WHERE trip_id = ? AND day = ? AND id = ?`
	result, err := r.db.ExecContext(ctx, query,
		item.Time,
		item.Title,
		item.Location,
		string(item.Category),
		item.BaseCost,
		item.Note,
		string(item.Transport.Mode),
		item.Transport.Minutes,
		item.TripId,
		item.Day,
		item.ID,
	)
	if err != nil {
		err := fmt.Errorf("could not update itinerary item: %w", err)
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

func (r *RepositoryImpl) Delete(ctx context.Context, tripId int, day int, id int) (bool, error) {
	query := `DELETE FROM itinerary_item WHERE trip_id = ? AND day = ? AND id = ?`
	result, err := r.db.ExecContext(ctx, query, tripId, day, id)
	if err != nil {
		err := fmt.Errorf("could not delete itinerary item: %w", err)
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

func scanItem(scan func(dest ...any) error) (Item, error) {
	var item Item
	var category, mode string
	if err := scan(
		&item.ID,
		&item.TripId,
		&item.Day,
		&item.Time,
		&item.Title,
		&item.Location,
		&category,
		&item.BaseCost,
		&item.Note,
		&mode,
		&item.Transport.Minutes,
	); err != nil {
		return Item{}, err
	}
	item.Category = Category(category)
	item.Transport.Mode = TransportMode(mode)
	return item, nil
}
