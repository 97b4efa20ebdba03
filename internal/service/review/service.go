// Package review exposes the read side of the human review workflow: the
// queues of items awaiting a decision, the candidate-visible approved
// matches, and the checkpoint audit trail. It never mutates anything;
// decisions go through the workflow service.
package review

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fairmatch/fairmatch-backend/internal/domain"
)

type assessmentReader interface {
	ListPending(ctx context.Context) ([]*domain.Assessment, error)
}

type matchReader interface {
	ListPending(ctx context.Context) ([]*domain.Match, error)
	ApprovedForOwner(ctx context.Context, anonymousID string, remoteOnly bool, minScore int) ([]*domain.Match, error)
}

type checkpointReader interface {
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit int) ([]domain.CheckpointRecord, error)
	CountByEntity(ctx context.Context, entityType domain.EntityType, entityID string) (int, error)
}

// Service provides read-only review queue and audit queries.
type Service struct {
	log         *slog.Logger
	assessments assessmentReader
	matches     matchReader
	checkpoints checkpointReader

	historyLimit int
}

// NewService creates a new review service. historyLimit caps the number
// of checkpoint records returned per audit query.
func NewService(log *slog.Logger, assessments assessmentReader, matches matchReader, checkpoints checkpointReader, historyLimit int) *Service {
	return &Service{
		log:          log.With("service", "review"),
		assessments:  assessments,
		matches:      matches,
		checkpoints:  checkpoints,
		historyLimit: historyLimit,
	}
}

// PendingAssessments returns assessments awaiting a human decision,
// oldest submission first, so reviewers work the queue in arrival order.
func (s *Service) PendingAssessments(ctx context.Context) ([]*domain.Assessment, error) {
	return s.assessments.ListPending(ctx)
}

// PendingMatches returns unapproved matches, oldest first.
func (s *Service) PendingMatches(ctx context.Context) ([]*domain.Match, error) {
	return s.matches.ListPending(ctx)
}

// ApprovedMatches returns the matches a candidate is allowed to see:
// approved only, best score first, optionally filtered to remote jobs and
// a minimum score.
func (s *Service) ApprovedMatches(ctx context.Context, anonymousID string, remoteOnly bool, minScore int) ([]*domain.Match, error) {
	if strings.TrimSpace(anonymousID) == "" {
		return nil, domain.NewValidationError("anonymous_id", "is required")
	}
	if minScore < 0 || minScore > 100 {
		return nil, domain.NewValidationError("min_score", "must be between 0 and 100")
	}
	return s.matches.ApprovedForOwner(ctx, anonymousID, remoteOnly, minScore)
}

// CheckpointHistory returns the audit trail for one entity, newest first.
func (s *Service) CheckpointHistory(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.CheckpointRecord, error) {
	if !entityType.IsValid() {
		return nil, domain.NewValidationError("entity_type", "must be PROFILE, ASSESSMENT or MATCH")
	}
	if strings.TrimSpace(entityID) == "" {
		return nil, domain.NewValidationError("entity_id", "is required")
	}
	return s.checkpoints.ListByEntity(ctx, entityType, entityID, s.historyLimit)
}

// CheckpointCount returns how many snapshots exist for one entity.
func (s *Service) CheckpointCount(ctx context.Context, entityType domain.EntityType, entityID string) (int, error) {
	if !entityType.IsValid() {
		return 0, domain.NewValidationError("entity_type", "must be PROFILE, ASSESSMENT or MATCH")
	}
	if strings.TrimSpace(entityID) == "" {
		return 0, domain.NewValidationError("entity_id", "is required")
	}
	return s.checkpoints.CountByEntity(ctx, entityType, entityID)
}
