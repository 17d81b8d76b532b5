package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"quicktube-backend/internal/models"
)

// ErrNoCredits is returned when the conditional decrement finds no spendable
// balance.
var ErrNoCredits = errors.New("no credits remaining")

// ErrProfileNotFound is returned when no profile row matches the id. Any other
// error from GetByID is an infrastructure failure, not a missing user.
var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

func (r *ProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	p := &models.Profile{}
	query := `SELECT id, credits_remaining, tier FROM profiles WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.CreditsRemaining, &p.Tier)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ConsumeCredit decrements the balance by one in a single conditional UPDATE.
// Concurrent requests racing for the last credit cannot both pass: the WHERE
// clause only matches a positive balance. Callers have already resolved the
// profile, so no matching row means the balance hit zero, not a missing user.
func (r *ProfileRepo) ConsumeCredit(ctx context.Context, id uuid.UUID) (int, error) {
	var remaining int
	query := `UPDATE profiles SET credits_remaining = credits_remaining - 1
		WHERE id = $1 AND credits_remaining > 0
		RETURNING credits_remaining`

	err := r.pool.QueryRow(ctx, query, id).Scan(&remaining)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNoCredits
	}
	if err != nil {
		return 0, err
	}
	return remaining, nil
}
