package workflow

import (
	"context"
	"strings"

	"github.com/fairmatch/fairmatch-backend/internal/domain"
)

// AddAnalysis attaches an advisory analysis to a SUBMITTED assessment and
// moves it to PENDING_REVIEW, checkpointing the prior state first. The
// analysis is advisory input for the human reviewer: RequiresReview is
// forced on regardless of what the caller supplied, so no analysis result
// can ever route an assessment past the review queue.
func (s *Service) AddAnalysis(ctx context.Context, id string, analysis domain.AdvisoryAnalysis) (*domain.Assessment, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("assessment_id", "is required")
	}
	if !analysis.Confidence.IsValid() {
		return nil, domain.NewValidationError("confidence", "must be high, medium or low")
	}

	analysis.SchemaVersion = domain.AdvisoryAnalysisSchemaVersion
	analysis.RequiresReview = true

	var updated *domain.Assessment
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.assessments.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		rec, err := s.checkpoint(ctx, domain.EntityTypeAssessment, id, assessmentSnapshot(current))
		if err != nil {
			return err
		}

		updated, err = s.assessments.AttachAnalysis(ctx, id, analysis, rec.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("advisory analysis attached",
		"assessment_id", id, "confidence", analysis.Confidence.String())
	return updated, nil
}
