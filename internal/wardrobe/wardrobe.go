package wardrobe

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new wardrobe repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func scanItem(row pgx.Row, item *Item) error {
	return row.Scan(
		&item.ID,
		&item.PersonID,
		&item.Name,
		&item.Category,
		&item.Color,
		&item.Brand,
		&item.Status,
		&item.PhotoURL,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}

// creates a wardrobe item and bumps the wardrobe modification clock in the
// same transaction
func (r *Repository) Create(ctx context.Context, personID string, req CreateItemRequest) (*Item, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var item Item

	row := tx.QueryRow(ctx, queryCreateItem,
		personID, req.Name, req.Category, req.Color, req.Brand, req.PhotoURL)

	if err := scanItem(row, &item); err != nil {
		return nil, fmt.Errorf("failed to insert item: %w", err)
	}

	if _, err := tx.Exec(ctx, queryTouchWardrobeClock, personID); err != nil {
		return nil, fmt.Errorf("failed to touch wardrobe clock: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &item, nil
}

// gets a single item owned by the person
func (r *Repository) Get(ctx context.Context, itemID, personID string) (*Item, error) {
	var item Item

	if err := scanItem(r.db.QueryRow(ctx, queryGetItem, itemID, personID), &item); err != nil {
		return nil, err
	}

	return &item, nil
}

// lists all items owned by the person
func (r *Repository) List(ctx context.Context, personID string) ([]Item, error) {
	rows, err := r.db.Query(ctx, queryListItems, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectItems(rows)
}

// lists active items only, capped at limit. used to bound AI prompt size
func (r *Repository) ListActive(ctx context.Context, personID string, limit int) ([]Item, error) {
	rows, err := r.db.Query(ctx, queryListActiveItems, personID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectItems(rows)
}

// updates an item and bumps the wardrobe modification clock in the same
// transaction
func (r *Repository) Update(ctx context.Context, itemID, personID string, req UpdateItemRequest) (*Item, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var item Item

	row := tx.QueryRow(ctx, queryUpdateItem,
		itemID, personID, req.Name, req.Category, req.Color, req.Brand, req.Status, req.PhotoURL)

	if err := scanItem(row, &item); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, queryTouchWardrobeClock, personID); err != nil {
		return nil, fmt.Errorf("failed to touch wardrobe clock: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &item, nil
}

// deletes an item and bumps the wardrobe modification clock in the same
// transaction
func (r *Repository) Delete(ctx context.Context, itemID, personID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	tag, err := tx.Exec(ctx, queryDeleteItem, itemID, personID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if _, err := tx.Exec(ctx, queryTouchWardrobeClock, personID); err != nil {
		return fmt.Errorf("failed to touch wardrobe clock: %w", err)
	}

	return tx.Commit(ctx)
}

func collectItems(rows pgx.Rows) ([]Item, error) {
	items := []Item{}

	for rows.Next() {
		var item Item

		if err := scanItem(rows, &item); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, rows.Err()
}
