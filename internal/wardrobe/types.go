package wardrobe

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles wardrobe item database operations
type Repository struct {
	db *pgxpool.Pool
}

// item statuses
const (
	StatusActive   = "active"
	StatusArchived = "archived"
)

// represents a single piece of clothing in a person's wardrobe
type Item struct {
	ID        string    `json:"id"`
	PersonID  string    `json:"-"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Color     string    `json:"color"`
	Brand     string    `json:"brand"`
	Status    string    `json:"status"`
	PhotoURL  string    `json:"photo_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Color    string `json:"color"`
	Brand    string `json:"brand"`
	PhotoURL string `json:"photo_url"`
}

type UpdateItemRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Color    string `json:"color"`
	Brand    string `json:"brand"`
	Status   string `json:"status"`
	PhotoURL string `json:"photo_url"`
}
