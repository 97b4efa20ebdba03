package workflow

import (
	"context"

	"github.com/fairmatch/fairmatch-backend/internal/domain"
)

// ApproveMatch flips a match to approved on behalf of a human reviewer,
// checkpointing the unapproved state first. A concurrent second approval
// loses the row lock race and returns domain.ErrInvalidTransition.
func (s *Service) ApproveMatch(ctx context.Context, in DecisionInput) (*domain.Match, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var approved *domain.Match
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.matches.GetForUpdate(ctx, in.EntityID)
		if err != nil {
			return err
		}

		if _, err := s.checkpoint(ctx, domain.EntityTypeMatch, in.EntityID, matchSnapshot(current)); err != nil {
			return err
		}

		approved, err = s.matches.Approve(ctx, in.EntityID, in.ReviewerID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("match approved", "match_id", in.EntityID, "reviewer_id", in.ReviewerID)
	return approved, nil
}
