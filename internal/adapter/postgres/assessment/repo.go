// Package assessment implements the assessment repository using
// PostgreSQL. Status mutations are guarded conditional updates so that
// concurrent reviewers serialize on the row and the loser observes the
// transition violation instead of silently overwriting a terminal state.
package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/fairmatch/fairmatch-backend/internal/adapter/postgres"
	"github.com/fairmatch/fairmatch-backend/internal/domain"
)

const table = "assessments"

var columns = []string{
	"id", "anonymous_id", "skills", "portfolio_url", "work_preference",
	"work_preference_reason", "status", "ai_analysis", "ai_confidence",
	"reviewed_by", "review_notes", "reviewed_at", "submitted_at",
	"checkpoint_before_review",
}

// openStatuses are the non-terminal states a human decision may start from.
var openStatuses = []string{
	string(domain.AssessmentStatusSubmitted),
	string(domain.AssessmentStatusPendingReview),
}

// Repo provides assessment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new assessment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new assessment in SUBMITTED state. A unique violation
// on the content-derived id is fatal (domain.ErrIDCollision), not retried.
func (r *Repo) Create(ctx context.Context, a *domain.Assessment) (*domain.Assessment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Insert(table).
		Columns("id", "anonymous_id", "skills", "portfolio_url", "work_preference",
			"work_preference_reason", "status", "submitted_at").
		Values(a.ID, a.AnonymousID, a.Skills, a.PortfolioURL, a.WorkPreference,
			a.WorkPreferenceReason, string(a.Status), a.SubmittedAt)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("assessment build insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		mapped := postgres.MapError(err, "assessment", a.ID)
		if errors.Is(mapped, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("assessment %s: %w", a.ID, domain.ErrIDCollision)
		}
		return nil, mapped
	}

	return a, nil
}

// AttachAnalysis stores an advisory analysis and moves the assessment from
// SUBMITTED to PENDING_REVIEW. The checkpoint of the prior state has
// already been written in the same transaction; its id is stamped on the
// row. Any other from-state rejects with domain.ErrInvalidTransition.
func (r *Repo) AttachAnalysis(ctx context.Context, id string, analysis domain.AdvisoryAnalysis, checkpointID uuid.UUID) (*domain.Assessment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("assessment %s marshal analysis: %w", id, err)
	}

	query := postgres.Builder().
		Update(table).
		Set("ai_analysis", analysisJSON).
		Set("ai_confidence", string(analysis.Confidence)).
		Set("status", string(domain.AssessmentStatusPendingReview)).
		Set("checkpoint_before_review", checkpointID).
		Where(squirrel.Eq{
			"id":     id,
			"status": string(domain.AssessmentStatusSubmitted),
		})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("assessment build analysis update: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "assessment", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, r.transitionFailure(ctx, id)
	}

	return r.Get(ctx, id)
}

// RecordDecision applies a human approve/reject decision: a guarded update
// from a non-terminal state to the given terminal status, recording the
// reviewer, notes, decision time, and the checkpoint reference. A racing
// second decision finds zero open rows and gets ErrInvalidTransition.
func (r *Repo) RecordDecision(ctx context.Context, id string, status domain.AssessmentStatus, reviewerID string, notes *string, checkpointID uuid.UUID) (*domain.Assessment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Update(table).
		Set("status", string(status)).
		Set("reviewed_by", reviewerID).
		Set("review_notes", notes).
		Set("reviewed_at", time.Now().UTC()).
		Set("checkpoint_before_review", checkpointID).
		Where(squirrel.Eq{
			"id":     id,
			"status": openStatuses,
		})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("assessment build decision update: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "assessment", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, r.transitionFailure(ctx, id)
	}

	return r.Get(ctx, id)
}

// transitionFailure distinguishes "row missing" from "row already terminal"
// after a guarded update matched nothing.
func (r *Repo) transitionFailure(ctx context.Context, id string) error {
	current, err := r.Get(ctx, id)
	if err != nil {
		return err // includes ErrNotFound for a missing row
	}
	return fmt.Errorf("assessment %s already %s: %w", id, current.Status, domain.ErrInvalidTransition)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns an assessment by id.
func (r *Repo) Get(ctx context.Context, id string) (*domain.Assessment, error) {
	return r.getWhere(ctx, id, false)
}

// GetForUpdate returns an assessment locked with SELECT ... FOR UPDATE so
// the checkpoint captures the state immediately prior to this writer's own
// update. Only valid inside a transaction.
func (r *Repo) GetForUpdate(ctx context.Context, id string) (*domain.Assessment, error) {
	return r.getWhere(ctx, id, true)
}

func (r *Repo) getWhere(ctx context.Context, id string, forUpdate bool) (*domain.Assessment, error) {
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
		return nil, fmt.Errorf("assessment build select: %w", err)
	}

	a, err := scanAssessment(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "assessment", id)
	}
	return a, nil
}

// ListByOwner returns all assessments for an anonymous user, newest first.
func (r *Repo) ListByOwner(ctx context.Context, anonymousID string) ([]*domain.Assessment, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"anonymous_id": anonymousID}).
		OrderBy("submitted_at DESC")

	return r.list(ctx, query)
}

// ListPending returns assessments awaiting a human decision (SUBMITTED or
// PENDING_REVIEW), oldest submission first.
func (r *Repo) ListPending(ctx context.Context) ([]*domain.Assessment, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": openStatuses}).
		OrderBy("submitted_at ASC")

	return r.list(ctx, query)
}

// ListByStatus returns assessments in one exact status, oldest first.
// Used by the analysis pipeline to pick up fresh submissions.
func (r *Repo) ListByStatus(ctx context.Context, status domain.AssessmentStatus, limit int) ([]*domain.Assessment, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": string(status)}).
		OrderBy("submitted_at ASC").
		Limit(uint64(limit))

	return r.list(ctx, query)
}

func (r *Repo) list(ctx context.Context, query squirrel.SelectBuilder) ([]*domain.Assessment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("assessment build list: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	var result []*domain.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assessments: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

func scanAssessment(row pgx.Row) (*domain.Assessment, error) {
	var (
		a            domain.Assessment
		status       string
		analysisJSON []byte
		aiConfidence *string
	)

	err := row.Scan(
		&a.ID, &a.AnonymousID, &a.Skills, &a.PortfolioURL, &a.WorkPreference,
		&a.WorkPreferenceReason, &status, &analysisJSON, &aiConfidence,
		&a.ReviewedBy, &a.ReviewNotes, &a.ReviewedAt, &a.SubmittedAt,
		&a.CheckpointBeforeReview,
	)
	if err != nil {
		return nil, err
	}

	a.Status = domain.AssessmentStatus(status)
	if aiConfidence != nil {
		c := domain.Confidence(*aiConfidence)
		a.AIConfidence = &c
	}
	if len(analysisJSON) > 0 {
		var analysis domain.AdvisoryAnalysis
		if err := json.Unmarshal(analysisJSON, &analysis); err != nil {
			return nil, fmt.Errorf("unmarshal ai_analysis: %w", err)
		}
		a.AIAnalysis = &analysis
	}

	return &a, nil
}
