package workflow

import (
	"context"

	"github.com/fairmatch/fairmatch-backend/internal/domain"
)

// RejectAssessment applies a human rejection. The assessment row survives
// with the reviewer's identity and notes; compare RejectMatch, which
// deletes.
func (s *Service) RejectAssessment(ctx context.Context, in DecisionInput) (*domain.Assessment, error) {
	return s.decideAssessment(ctx, in, domain.AssessmentStatusRejected)
}
