package domain

import "time"

// Match pairs an anonymous candidate with a job posting, scored on
// capability overlap. Matches start unapproved and become visible to the
// candidate only after a human approves them.
//
// Rejection deletes the row instead of recording a terminal REJECTED
// status the way Assessment does. The asymmetry is inherited from the
// product's original behavior and is kept deliberately; unifying the two
// state machines is a product decision, not a refactor.
type Match struct {
	ID          string
	AnonymousID string
	JobID       string

	MatchScore           int
	MatchingCapabilities []string
	RequiredCapabilities []string

	Title       string
	Company     string
	Location    string
	Description string
	IsRemote    bool

	IsApproved   bool
	AIRationale  *string
	AIConfidence *Confidence

	ApprovedBy *string
	ApprovedAt *time.Time

	CreatedAt time.Time
}
