package domain

import (
	"time"

	"github.com/google/uuid"
)

// CheckpointRecord is an immutable snapshot of an entity's reviewable
// fields, captured immediately before a mutation. Records are append-only:
// never updated, never deleted. They form the audit trail of the review
// workflow; the current design reads them only for audits, not rollback.
type CheckpointRecord struct {
	ID            uuid.UUID
	EntityType    EntityType
	EntityID      string
	CapturedState map[string]any
	CreatedAt     time.Time
}

// NewCheckpointRecord builds an unsaved checkpoint for the given entity.
func NewCheckpointRecord(entityType EntityType, entityID string, state map[string]any) CheckpointRecord {
	return CheckpointRecord{
		ID:            uuid.New(),
		EntityType:    entityType,
		EntityID:      entityID,
		CapturedState: state,
		CreatedAt:     time.Now().UTC(),
	}
}
