package workflow

import (
	"context"
	"strings"

	"github.com/fairmatch/fairmatch-backend/internal/domain"
)

// DeleteProfile removes a profile after writing a tombstone checkpoint of
// its final state. The checkpoint log keeps the only trace of the deleted
// profile.
func (s *Service) DeleteProfile(ctx context.Context, anonymousID string) error {
	if strings.TrimSpace(anonymousID) == "" {
		return domain.NewValidationError("anonymous_id", "is required")
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.profiles.GetForUpdate(ctx, anonymousID)
		if err != nil {
			return err
		}

		if _, err := s.checkpoint(ctx, domain.EntityTypeProfile, anonymousID, tombstone(profileSnapshot(current))); err != nil {
			return err
		}

		return s.profiles.Delete(ctx, anonymousID)
	})
	if err != nil {
		return err
	}

	s.log.Info("profile deleted", "anonymous_id", anonymousID)
	return nil
}
