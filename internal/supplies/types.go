package supplies

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles shoe-care supply database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents a shoe-care product on a person's shelf (polish, brush,
// conditioner and so on)
type Supply struct {
	ID          string    `json:"id"`
	PersonID    string    `json:"-"`
	Name        string    `json:"name"`
	Kind        string    `json:"kind"`
	SuitableFor string    `json:"suitable_for"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateSupplyRequest struct {
	Name        string `json:"name" binding:"required"`
	Kind        string `json:"kind" binding:"required"`
	SuitableFor string `json:"suitable_for"`
	Notes       string `json:"notes"`
}

type UpdateSupplyRequest struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	SuitableFor string `json:"suitable_for"`
	Notes       string `json:"notes"`
}
