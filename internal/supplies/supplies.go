package supplies

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new supplies repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func scanSupply(row pgx.Row, s *Supply) error {
	return row.Scan(
		&s.ID,
		&s.PersonID,
		&s.Name,
		&s.Kind,
		&s.SuitableFor,
		&s.Notes,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
}

// creates a supply and bumps the supplies modification clock in the same
// transaction
func (r *Repository) Create(ctx context.Context, personID string, req CreateSupplyRequest) (*Supply, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var supply Supply

	row := tx.QueryRow(ctx, queryCreateSupply,
		personID, req.Name, req.Kind, req.SuitableFor, req.Notes)

	if err := scanSupply(row, &supply); err != nil {
		return nil, fmt.Errorf("failed to insert supply: %w", err)
	}

	if _, err := tx.Exec(ctx, queryTouchSuppliesClock, personID); err != nil {
		return nil, fmt.Errorf("failed to touch supplies clock: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &supply, nil
}

// gets a single supply owned by the person
func (r *Repository) Get(ctx context.Context, supplyID, personID string) (*Supply, error) {
	var supply Supply

	if err := scanSupply(r.db.QueryRow(ctx, queryGetSupply, supplyID, personID), &supply); err != nil {
		return nil, err
	}

	return &supply, nil
}

// lists all supplies owned by the person
func (r *Repository) List(ctx context.Context, personID string) ([]Supply, error) {
	rows, err := r.db.Query(ctx, queryListSupplies, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []Supply{}

	for rows.Next() {
		var supply Supply

		if err := scanSupply(rows, &supply); err != nil {
			return nil, err
		}

		result = append(result, supply)
	}

	return result, rows.Err()
}

// updates a supply and bumps the supplies modification clock in the same
// transaction
func (r *Repository) Update(ctx context.Context, supplyID, personID string, req UpdateSupplyRequest) (*Supply, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var supply Supply

	row := tx.QueryRow(ctx, queryUpdateSupply,
		supplyID, personID, req.Name, req.Kind, req.SuitableFor, req.Notes)

	if err := scanSupply(row, &supply); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, queryTouchSuppliesClock, personID); err != nil {
		return nil, fmt.Errorf("failed to touch supplies clock: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &supply, nil
}

// deletes a supply and bumps the supplies modification clock in the same
// transaction
func (r *Repository) Delete(ctx context.Context, supplyID, personID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	tag, err := tx.Exec(ctx, queryDeleteSupply, supplyID, personID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if _, err := tx.Exec(ctx, queryTouchSuppliesClock, personID); err != nil {
		return fmt.Errorf("failed to touch supplies clock: %w", err)
	}

	return tx.Commit(ctx)
}
