package workflow

import (
	"context"

	"github.com/fairmatch/fairmatch-backend/internal/domain"
)

// UpdateProfile applies a partial update under the checkpoint-then-write
// contract: inside one transaction it locks the row, snapshots the current
// field values, then persists the new ones with the checkpoint reference
// stamped on the profile. A failed checkpoint aborts the whole update.
func (s *Service) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*domain.Profile, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Profile
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.profiles.GetForUpdate(ctx, in.AnonymousID)
		if err != nil {
			return err
		}

		rec, err := s.checkpoint(ctx, domain.EntityTypeProfile, in.AnonymousID, profileSnapshot(current))
		if err != nil {
			return err
		}

		if in.Skills != nil {
			current.Skills = in.Skills
		}
		if in.PortfolioURL != nil {
			current.PortfolioURL = in.PortfolioURL
		}
		if in.WorkPreference != nil {
			current.WorkPreference = in.WorkPreference
		}
		if in.WorkPreferenceReason != nil {
			current.WorkPreferenceReason = in.WorkPreferenceReason
		}
		if in.Bio != nil {
			current.Bio = in.Bio
		}
		current.LastCheckpointAt = &rec.CreatedAt
		current.CheckpointVersion = &rec.ID

		updated, err = s.profiles.Update(ctx, current)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("profile updated", "anonymous_id", in.AnonymousID, "checkpoint_id", updated.CheckpointVersion)
	return updated, nil
}
