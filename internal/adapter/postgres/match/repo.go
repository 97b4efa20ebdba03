// Package match implements the match repository using PostgreSQL.
// Matches follow a two-state model: unapproved → approved (one-way), or
// unapproved → deleted. Rejection is a hard delete; the checkpoint log is
// the only place a rejected match leaves a trace.
package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/fairmatch/fairmatch-backend/internal/adapter/postgres"
	"github.com/fairmatch/fairmatch-backend/internal/domain"
)

const table = "matches"

var columns = []string{
	"id", "anonymous_id", "job_id", "match_score", "matching_capabilities",
	"required_capabilities", "title", "company", "location", "description",
	"is_remote", "is_approved", "ai_rationale", "ai_confidence",
	"approved_by", "approved_at", "created_at",
}

// Repo provides match persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new match repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new match. is_approved is always false at creation; the
// approval controller is the only writer that may flip it. A unique
// violation on the content-derived id is fatal (domain.ErrIDCollision).
func (r *Repo) Create(ctx context.Context, m *domain.Match) (*domain.Match, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var aiConfidence *string
	if m.AIConfidence != nil {
		s := string(*m.AIConfidence)
		aiConfidence = &s
	}

	query := postgres.Builder().
		Insert(table).
		Columns("id", "anonymous_id", "job_id", "match_score", "matching_capabilities",
			"required_capabilities", "title", "company", "location", "description",
			"is_remote", "is_approved", "ai_rationale", "ai_confidence", "created_at").
		Values(m.ID, m.AnonymousID, m.JobID, m.MatchScore, m.MatchingCapabilities,
			m.RequiredCapabilities, m.Title, m.Company, m.Location, m.Description,
			m.IsRemote, false, m.AIRationale, aiConfidence, m.CreatedAt)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("match build insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		mapped := postgres.MapError(err, "match", m.ID)
		if errors.Is(mapped, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("match %s: %w", m.ID, domain.ErrIDCollision)
		}
		return nil, mapped
	}

	m.IsApproved = false
	return m, nil
}

// Approve flips an unapproved match to approved, recording the approver
// and timestamp. Approving an already-approved match returns
// domain.ErrInvalidTransition; a deleted match returns domain.ErrNotFound.
func (r *Repo) Approve(ctx context.Context, id, approverID string) (*domain.Match, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Update(table).
		Set("is_approved", true).
		Set("approved_by", approverID).
		Set("approved_at", time.Now().UTC()).
		Where(squirrel.Eq{
			"id":          id,
			"is_approved": false,
		})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("match build approve: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "match", id)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.Get(ctx, id); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("match %s already approved: %w", id, domain.ErrInvalidTransition)
	}

	return r.Get(ctx, id)
}

// Delete removes a match row (the rejection path). The tombstone
// checkpoint precedes this call in the same transaction.
func (r *Repo) Delete(ctx context.Context, id string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("match build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "match", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("match %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns a match by id.
func (r *Repo) Get(ctx context.Context, id string) (*domain.Match, error) {
	return r.getWhere(ctx, id, false)
}

// GetForUpdate returns a match locked with SELECT ... FOR UPDATE.
// Only valid inside a transaction.
func (r *Repo) GetForUpdate(ctx context.Context, id string) (*domain.Match, error) {
	return r.getWhere(ctx, id, true)
}

func (r *Repo) getWhere(ctx context.Context, id string, forUpdate bool) (*domain.Match, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("match build select: %w", err)
	}

	m, err := scanMatch(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "match", id)
	}
	return m, nil
}

// ApprovedForOwner returns approved matches for a candidate, best score
// first, optionally restricted to remote jobs and a minimum score.
// Unapproved matches are never returned to candidates.
func (r *Repo) ApprovedForOwner(ctx context.Context, anonymousID string, remoteOnly bool, minScore int) ([]*domain.Match, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"anonymous_id": anonymousID, "is_approved": true}).
		Where(squirrel.GtOrEq{"match_score": minScore}).
		OrderBy("match_score DESC")
	if remoteOnly {
		query = query.Where(squirrel.Eq{"is_remote": true})
	}

	return r.list(ctx, query)
}

// ListPending returns matches awaiting human approval, oldest first.
func (r *Repo) ListPending(ctx context.Context) ([]*domain.Match, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"is_approved": false}).
		OrderBy("created_at ASC")

	return r.list(ctx, query)
}

func (r *Repo) list(ctx context.Context, query squirrel.SelectBuilder) ([]*domain.Match, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("match build list: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	var result []*domain.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate matches: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

func scanMatch(row pgx.Row) (*domain.Match, error) {
	var (
		m            domain.Match
		aiConfidence *string
	)

	err := row.Scan(
		&m.ID, &m.AnonymousID, &m.JobID, &m.MatchScore, &m.MatchingCapabilities,
		&m.RequiredCapabilities, &m.Title, &m.Company, &m.Location, &m.Description,
		&m.IsRemote, &m.IsApproved, &m.AIRationale, &aiConfidence,
		&m.ApprovedBy, &m.ApprovedAt, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if aiConfidence != nil {
		c := domain.Confidence(*aiConfidence)
		m.AIConfidence = &c
	}

	return &m, nil
}
