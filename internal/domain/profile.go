package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the record of an anonymous candidate. The anonymous id is an
// opaque token handed to us by the caller; it is never derived from a real
// identity and is the only key the platform knows the candidate by.
//
// A profile is created empty on first contact and mutated exclusively
// through checkpoint-then-write. Deletion is checkpoint-then-delete: the
// tombstone lives in the checkpoint log, not on the entity.
type Profile struct {
	AnonymousID          string
	Skills               []string
	PortfolioURL         *string
	WorkPreference       *string
	WorkPreferenceReason *string
	Bio                  *string

	// LastCheckpointAt and CheckpointVersion stamp the most recent
	// pre-mutation snapshot taken for this profile.
	LastCheckpointAt  *time.Time
	CheckpointVersion *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}
