package workflow

import (
	"context"

	"github.com/fairmatch/fairmatch-backend/internal/domain"
)

// ApproveAssessment applies a human approval. This and RejectAssessment
// are the only paths into a terminal status; both require a reviewer id
// and both checkpoint the pre-decision state in the same transaction.
func (s *Service) ApproveAssessment(ctx context.Context, in DecisionInput) (*domain.Assessment, error) {
	return s.decideAssessment(ctx, in, domain.AssessmentStatusApproved)
}

func (s *Service) decideAssessment(ctx context.Context, in DecisionInput, status domain.AssessmentStatus) (*domain.Assessment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var decided *domain.Assessment
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.assessments.GetForUpdate(ctx, in.EntityID)
		if err != nil {
			return err
		}

		rec, err := s.checkpoint(ctx, domain.EntityTypeAssessment, in.EntityID, assessmentSnapshot(current))
		if err != nil {
			return err
		}

		decided, err = s.assessments.RecordDecision(ctx, in.EntityID, status, in.ReviewerID, in.Notes, rec.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("assessment decided",
		"assessment_id", in.EntityID, "status", status.String(), "reviewer_id", in.ReviewerID)
	return decided, nil
}
