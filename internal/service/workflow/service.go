// Package workflow implements the checkpointed human-in-the-loop review
// workflow: submissions, advisory analysis attachment, and the
// approval/rejection controller. Every mutation other than a create runs
// as one transaction containing exactly one checkpoint insert and the
// entity write. If the checkpoint cannot be persisted, the mutation
// aborts.
package workflow

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fairmatch/fairmatch-backend/internal/domain"
)

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type checkpointStore interface {
	Create(ctx context.Context, record domain.CheckpointRecord) (domain.CheckpointRecord, error)
}

type profileRepo interface {
	Create(ctx context.Context, anonymousID string) (*domain.Profile, error)
	Get(ctx context.Context, anonymousID string) (*domain.Profile, error)
	GetForUpdate(ctx context.Context, anonymousID string) (*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	Delete(ctx context.Context, anonymousID string) error
}

type assessmentRepo interface {
	Create(ctx context.Context, a *domain.Assessment) (*domain.Assessment, error)
	Get(ctx context.Context, id string) (*domain.Assessment, error)
	GetForUpdate(ctx context.Context, id string) (*domain.Assessment, error)
	ListByOwner(ctx context.Context, anonymousID string) ([]*domain.Assessment, error)
	AttachAnalysis(ctx context.Context, id string, analysis domain.AdvisoryAnalysis, checkpointID uuid.UUID) (*domain.Assessment, error)
	RecordDecision(ctx context.Context, id string, status domain.AssessmentStatus, reviewerID string, notes *string, checkpointID uuid.UUID) (*domain.Assessment, error)
}

type matchRepo interface {
	Create(ctx context.Context, m *domain.Match) (*domain.Match, error)
	Get(ctx context.Context, id string) (*domain.Match, error)
	GetForUpdate(ctx context.Context, id string) (*domain.Match, error)
	Approve(ctx context.Context, id, approverID string) (*domain.Match, error)
	Delete(ctx context.Context, id string) error
}

// Service coordinates repositories and the checkpoint store.
type Service struct {
	log         *slog.Logger
	tx          txManager
	checkpoints checkpointStore
	profiles    profileRepo
	assessments assessmentRepo
	matches     matchRepo
}

// NewService creates a new workflow service.
func NewService(
	log *slog.Logger,
	tx txManager,
	checkpoints checkpointStore,
	profiles profileRepo,
	assessments assessmentRepo,
	matches matchRepo,
) *Service {
	return &Service{
		log:         log.With("service", "workflow"),
		tx:          tx,
		checkpoints: checkpoints,
		profiles:    profiles,
		assessments: assessments,
		matches:     matches,
	}
}

// checkpoint writes the pre-mutation snapshot inside the current
// transaction and returns the stored record.
func (s *Service) checkpoint(ctx context.Context, entityType domain.EntityType, entityID string, state map[string]any) (domain.CheckpointRecord, error) {
	return s.checkpoints.Create(ctx, domain.NewCheckpointRecord(entityType, entityID, state))
}
