package workflow

import (
	"context"

	"github.com/fairmatch/fairmatch-backend/internal/domain"
)

// RejectMatch removes a rejected match entirely. Unlike assessments, a
// rejected match keeps no row; the tombstone checkpoint written here is
// its only remaining trace, including who rejected it.
func (s *Service) RejectMatch(ctx context.Context, in DecisionInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.matches.GetForUpdate(ctx, in.EntityID)
		if err != nil {
			return err
		}

		state := tombstone(matchSnapshot(current))
		state["rejected_by"] = in.ReviewerID
		if in.Notes != nil {
			state["notes"] = *in.Notes
		}
		if _, err := s.checkpoint(ctx, domain.EntityTypeMatch, in.EntityID, state); err != nil {
			return err
		}

		return s.matches.Delete(ctx, in.EntityID)
	})
	if err != nil {
		return err
	}

	s.log.Info("match rejected", "match_id", in.EntityID, "reviewer_id", in.ReviewerID)
	return nil
}
