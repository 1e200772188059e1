package people

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new person repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func scanPerson(row pgx.Row, p *Person) error {
	return row.Scan(
		&p.ID,
		&p.Email,
		&p.Provider,
		&p.ProviderID,
		&p.Name,
		&p.AvatarURL,
		&p.SubscriptionTier,
		&p.SubscriptionStatus,
		&p.SubscriptionEndDate,
		&p.ShoeCareUsage,
		&p.UsageResetDate,
		&p.WardrobeLastModified,
		&p.SuppliesLastModified,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

// finds a person by OAuth provider or creates a new one
func (r *Repository) FindOrCreateByProvider(
	ctx context.Context,
	provider, providerID, email, name, avatarURL string,
) (*Person, error) {
	var person Person

	row := r.db.QueryRow(
		ctx,
		queryFindOrCreateByProvider,
		provider,
		providerID,
		email,
		name,
		avatarURL,
	)

	if err := scanPerson(row, &person); err != nil {
		return nil, err
	}

	return &person, nil
}

// finds a person by their ID
func (r *Repository) FindByID(ctx context.Context, personID string) (*Person, error) {
	var person Person

	if err := scanPerson(r.db.QueryRow(ctx, queryFindByID, personID), &person); err != nil {
		return nil, err
	}

	return &person, nil
}

// updates a person's name and avatar URL
func (r *Repository) UpdateProfile(ctx context.Context, personID, name, avatarURL string) (*Person, error) {
	var person Person

	row := r.db.QueryRow(ctx, queryUpdateProfile, name, avatarURL, personID)

	if err := scanPerson(row, &person); err != nil {
		return nil, err
	}

	return &person, nil
}

// zeroes the shoe-care counter and advances the reset date. idempotent
// within a month; concurrent callers resolve last-writer-wins
func (r *Repository) ResetUsage(ctx context.Context, personID string, resetAt time.Time) error {
	_, err := r.db.Exec(ctx, queryResetUsage, personID, resetAt)
	return err
}

// adds one to the shoe-care counter and returns the new value
func (r *Repository) IncrementUsage(ctx context.Context, personID string) (int, error) {
	var usage int

	if err := r.db.QueryRow(ctx, queryIncrementUsage, personID).Scan(&usage); err != nil {
		return 0, err
	}

	return usage, nil
}

// applies a subscription change reported by the billing provider. this is
// the only code path that writes subscription fields
func (r *Repository) UpdateSubscription(ctx context.Context, personID, tier, status string, endDate *time.Time) error {
	_, err := r.db.Exec(ctx, queryUpdateSubscription, personID, tier, status, endDate)
	return err
}
