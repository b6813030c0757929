package expense

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repository interface {
	Store(ctx context.Context, entry Entry) (int, error)
	// ListForItem returns the item's expenses in append order.
	ListForItem(ctx context.Context, itemId int) ([]Entry, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Store(ctx context.Context, entry Entry) (int, error) {
	query := `INSERT INTO expense (item_id, name, price) VALUES (?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query, entry.ItemId, entry.Name, entry.Price)
	if err != nil {
		err := fmt.Errorf("could not store expense: %w", err)
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

func (r *RepositoryImpl) ListForItem(ctx context.Context, itemId int) ([]Entry, error) {
	query := `SELECT id, item_id, name, price FROM expense WHERE item_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, itemId)
	if err != nil {
		err := fmt.Errorf("could not query expenses: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.ItemId, &entry.Name, &entry.Price); err != nil {
			err := fmt.Errorf("could not scan expense: %w", err)
			log.Error(err)
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return entries, nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, id int) (bool, error) {
	query := `DELETE FROM expense WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		err := fmt.Errorf("could not delete expense: %w", err)
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
