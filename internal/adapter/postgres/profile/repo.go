// Package profile implements the anonymous profile repository using
// PostgreSQL. Mutations are expected to run inside the caller's
// transaction, after a checkpoint of the prior state has been written.
package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/fairmatch/fairmatch-backend/internal/adapter/postgres"
	"github.com/fairmatch/fairmatch-backend/internal/domain"
)

const table = "profiles"

var columns = []string{
	"anonymous_id", "skills", "portfolio_url", "work_preference",
	"work_preference_reason", "bio", "last_checkpoint_at",
	"checkpoint_version", "created_at", "updated_at",
}

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an empty profile for the given anonymous id.
// Returns domain.ErrAlreadyExists if the id is already registered.
func (r *Repo) Create(ctx context.Context, anonymousID string) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()
	p := domain.Profile{
		AnonymousID: anonymousID,
		Skills:      []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	query := postgres.Builder().
		Insert(table).
		Columns("anonymous_id", "skills", "created_at", "updated_at").
		Values(p.AnonymousID, p.Skills, p.CreatedAt, p.UpdatedAt)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("profile build insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "profile", anonymousID)
	}

	return &p, nil
}

// Update persists new field values for a profile and stamps the checkpoint
// reference. The caller has already captured the prior state; both writes
// belong to the same transaction.
func (r *Repo) Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p.UpdatedAt = time.Now().UTC()

	query := postgres.Builder().
		Update(table).
		Set("skills", p.Skills).
		Set("portfolio_url", p.PortfolioURL).
		Set("work_preference", p.WorkPreference).
		Set("work_preference_reason", p.WorkPreferenceReason).
		Set("bio", p.Bio).
		Set("last_checkpoint_at", p.LastCheckpointAt).
		Set("checkpoint_version", p.CheckpointVersion).
		Set("updated_at", p.UpdatedAt).
		Where(squirrel.Eq{"anonymous_id": p.AnonymousID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("profile build update: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "profile", p.AnonymousID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("profile %s: %w", p.AnonymousID, domain.ErrNotFound)
	}

	return p, nil
}

// Delete removes a profile row. The tombstone checkpoint is the caller's
// responsibility and must precede this call in the same transaction.
func (r *Repo) Delete(ctx context.Context, anonymousID string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"anonymous_id": anonymousID})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("profile build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "profile", anonymousID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", anonymousID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns a profile by anonymous id.
func (r *Repo) Get(ctx context.Context, anonymousID string) (*domain.Profile, error) {
	return r.get(ctx, anonymousID, false)
}

// GetForUpdate returns a profile locked with SELECT ... FOR UPDATE.
// Only valid inside a transaction; the lock serializes concurrent
// checkpoint-then-write attempts on the same row.
func (r *Repo) GetForUpdate(ctx context.Context, anonymousID string) (*domain.Profile, error) {
	return r.get(ctx, anonymousID, true)
}

func (r *Repo) get(ctx context.Context, anonymousID string, forUpdate bool) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"anonymous_id": anonymousID})
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("profile build select: %w", err)
	}

	var (
		p                 domain.Profile
		checkpointVersion *uuid.UUID
	)
	err = q.QueryRow(ctx, sql, args...).Scan(
		&p.AnonymousID, &p.Skills, &p.PortfolioURL, &p.WorkPreference,
		&p.WorkPreferenceReason, &p.Bio, &p.LastCheckpointAt,
		&checkpointVersion, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "profile", anonymousID)
	}
	p.CheckpointVersion = checkpointVersion

	return &p, nil
}

// Exists reports whether a profile is registered for the anonymous id.
func (r *Repo) Exists(ctx context.Context, anonymousID string) (bool, error) {
	_, err := r.Get(ctx, anonymousID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	return false, err
}
