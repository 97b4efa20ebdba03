package workflow

import (
	"context"
	"time"

	"github.com/fairmatch/fairmatch-backend/internal/domain"
)

// SubmitAssessment records a candidate's capability claims as a new
// assessment in SUBMITTED state. Submission creates the entity, so no
// checkpoint is written; the first checkpoint appears when the advisory
// analysis or a human decision mutates it.
func (s *Service) SubmitAssessment(ctx context.Context, in SubmitAssessmentInput) (*domain.Assessment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	a := &domain.Assessment{
		ID:                   domain.NewEntityID("assessment", in.AnonymousID),
		AnonymousID:          in.AnonymousID,
		Skills:               in.Skills,
		PortfolioURL:         in.PortfolioURL,
		WorkPreference:       in.WorkPreference,
		WorkPreferenceReason: in.WorkPreferenceReason,
		Status:               domain.AssessmentStatusSubmitted,
		SubmittedAt:          time.Now().UTC(),
	}

	created, err := s.assessments.Create(ctx, a)
	if err != nil {
		return nil, err
	}

	s.log.Info("assessment submitted", "assessment_id", created.ID, "anonymous_id", created.AnonymousID)
	return created, nil
}
