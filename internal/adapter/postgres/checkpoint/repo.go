// Package checkpoint implements the checkpoint store using PostgreSQL.
// It is an append-only snapshot log: records are inserted before every
// entity mutation and never updated or deleted afterwards.
package checkpoint

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/fairmatch/fairmatch-backend/internal/adapter/postgres"
	"github.com/fairmatch/fairmatch-backend/internal/domain"
)

// Repo provides checkpoint persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new checkpoint repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends a checkpoint record and returns the persisted record.
// Any failure wraps domain.ErrCheckpointFailed: the caller's mutation must
// not proceed without its pre-image on record (fail-closed).
func (r *Repo) Create(ctx context.Context, record domain.CheckpointRecord) (domain.CheckpointRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stateJSON, err := json.Marshal(record.CapturedState)
	if err != nil {
		return domain.CheckpointRecord{}, fmt.Errorf("checkpoint %s marshal state: %w: %v", record.ID, domain.ErrCheckpointFailed, err)
	}

	query := postgres.Builder().
		Insert("checkpoints").
		Columns("id", "entity_type", "entity_id", "captured_state", "created_at").
		Values(record.ID, string(record.EntityType), record.EntityID, stateJSON, record.CreatedAt)

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.CheckpointRecord{}, fmt.Errorf("checkpoint %s build insert: %w: %v", record.ID, domain.ErrCheckpointFailed, err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return domain.CheckpointRecord{}, fmt.Errorf("checkpoint %s insert: %w: %v", record.ID, domain.ErrCheckpointFailed, err)
	}

	return record, nil
}

// ---------------------------------------------------------------------------
// Read operations (audit only, there is no restore API)
// ---------------------------------------------------------------------------

// ListByEntity returns the snapshot history for one entity, newest first,
// limited to `limit` records.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit int) ([]domain.CheckpointRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select("id", "entity_type", "entity_id", "captured_state", "created_at").
		From("checkpoints").
		Where("entity_type = ? AND entity_id = ?", string(entityType), entityID).
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list checkpoints build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list checkpoints: %w", err)
	}
	defer rows.Close()

	var records []domain.CheckpointRecord
	for rows.Next() {
		var (
			rec       domain.CheckpointRecord
			entType   string
			stateJSON []byte
		)
		if err := rows.Scan(&rec.ID, &entType, &rec.EntityID, &stateJSON, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan checkpoint: %w", err)
		}
		rec.EntityType = domain.EntityType(entType)
		if len(stateJSON) > 0 {
			state := make(map[string]any)
			if err := json.Unmarshal(stateJSON, &state); err != nil {
				return nil, fmt.Errorf("checkpoint %s unmarshal state: %w", rec.ID, err)
			}
			rec.CapturedState = state
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checkpoints: %w", err)
	}

	return records, nil
}

// CountByEntity returns the number of checkpoints recorded for one entity.
func (r *Repo) CountByEntity(ctx context.Context, entityType domain.EntityType, entityID string) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select("COUNT(*)").
		From("checkpoints").
		Where("entity_type = ? AND entity_id = ?", string(entityType), entityID)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("count checkpoints build query: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count checkpoints: %w", err)
	}

	return count, nil
}
