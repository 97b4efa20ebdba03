package workflow

import (
	"context"
	"time"

	"github.com/fairmatch/fairmatch-backend/internal/domain"
)

// CreateMatch records a proposed candidate-job pairing. New matches are
// always unapproved and invisible to the candidate until a human approves
// them.
func (s *Service) CreateMatch(ctx context.Context, in CreateMatchInput) (*domain.Match, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	m := &domain.Match{
		ID:                   domain.NewEntityID("match", in.AnonymousID, in.JobID),
		AnonymousID:          in.AnonymousID,
		JobID:                in.JobID,
		MatchScore:           in.MatchScore,
		MatchingCapabilities: in.MatchingCapabilities,
		RequiredCapabilities: in.RequiredCapabilities,
		Title:                in.Title,
		Company:              in.Company,
		Location:             in.Location,
		Description:          in.Description,
		IsRemote:             in.IsRemote,
		AIRationale:          in.AIRationale,
		AIConfidence:         in.AIConfidence,
		CreatedAt:            time.Now().UTC(),
	}

	created, err := s.matches.Create(ctx, m)
	if err != nil {
		return nil, err
	}

	s.log.Info("match created",
		"match_id", created.ID, "anonymous_id", created.AnonymousID,
		"job_id", created.JobID, "score", created.MatchScore)
	return created, nil
}
