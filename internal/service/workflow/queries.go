package workflow

import (
	"context"
	"strings"

	"github.com/fairmatch/fairmatch-backend/internal/domain"
)

// Owner-facing reads. Pending-review listings live in the review service;
// these are the lookups a candidate makes about their own data.

// GetProfile returns a profile by anonymous id.
func (s *Service) GetProfile(ctx context.Context, anonymousID string) (*domain.Profile, error) {
	if strings.TrimSpace(anonymousID) == "" {
		return nil, domain.NewValidationError("anonymous_id", "is required")
	}
	return s.profiles.Get(ctx, anonymousID)
}

// GetAssessment returns an assessment by id.
func (s *Service) GetAssessment(ctx context.Context, id string) (*domain.Assessment, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("assessment_id", "is required")
	}
	return s.assessments.Get(ctx, id)
}

// ListAssessments returns all assessments submitted by an anonymous user,
// newest first, regardless of status.
func (s *Service) ListAssessments(ctx context.Context, anonymousID string) ([]*domain.Assessment, error) {
	if strings.TrimSpace(anonymousID) == "" {
		return nil, domain.NewValidationError("anonymous_id", "is required")
	}
	return s.assessments.ListByOwner(ctx, anonymousID)
}

// GetMatch returns a match by id.
func (s *Service) GetMatch(ctx context.Context, id string) (*domain.Match, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("match_id", "is required")
	}
	return s.matches.Get(ctx, id)
}
