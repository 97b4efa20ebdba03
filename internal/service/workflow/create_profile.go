package workflow

import (
	"context"
	"strings"

	"github.com/fairmatch/fairmatch-backend/internal/domain"
)

// CreateProfile registers an empty profile for an anonymous id. Creation
// has no prior state, so it is the one profile mutation without a
// checkpoint.
func (s *Service) CreateProfile(ctx context.Context, anonymousID string) (*domain.Profile, error) {
	if strings.TrimSpace(anonymousID) == "" {
		return nil, domain.NewValidationError("anonymous_id", "is required")
	}

	p, err := s.profiles.Create(ctx, anonymousID)
	if err != nil {
		return nil, err
	}

	s.log.Info("profile created", "anonymous_id", anonymousID)
	return p, nil
}
