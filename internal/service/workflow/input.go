package workflow

import (
	"strings"

	"github.com/fairmatch/fairmatch-backend/internal/domain"
)

// SubmitAssessmentInput carries a candidate's capability claims.
type SubmitAssessmentInput struct {
	AnonymousID          string
	Skills               []string
	PortfolioURL         *string
	WorkPreference       string
	WorkPreferenceReason *string
}

func (in SubmitAssessmentInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(in.AnonymousID) == "" {
		errs = append(errs, domain.FieldError{Field: "anonymous_id", Message: "is required"})
	}
	if len(in.Skills) == 0 {
		errs = append(errs, domain.FieldError{Field: "skills", Message: "at least one skill is required"})
	}
	if strings.TrimSpace(in.WorkPreference) == "" {
		errs = append(errs, domain.FieldError{Field: "work_preference", Message: "is required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateProfileInput applies a partial profile update: nil fields are left
// unchanged. Skills follows the same convention (nil keeps, empty clears).
type UpdateProfileInput struct {
	AnonymousID          string
	Skills               []string
	PortfolioURL         *string
	WorkPreference       *string
	WorkPreferenceReason *string
	Bio                  *string
}

func (in UpdateProfileInput) Validate() error {
	if strings.TrimSpace(in.AnonymousID) == "" {
		return domain.NewValidationError("anonymous_id", "is required")
	}
	return nil
}

// CreateMatchInput carries a proposed candidate-job pairing.
type CreateMatchInput struct {
	AnonymousID          string
	JobID                string
	MatchScore           int
	MatchingCapabilities []string
	RequiredCapabilities []string
	Title                string
	Company              string
	Location             string
	Description          string
	IsRemote             bool
	AIRationale          *string
	AIConfidence         *domain.Confidence
}

func (in CreateMatchInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(in.AnonymousID) == "" {
		errs = append(errs, domain.FieldError{Field: "anonymous_id", Message: "is required"})
	}
	if strings.TrimSpace(in.JobID) == "" {
		errs = append(errs, domain.FieldError{Field: "job_id", Message: "is required"})
	}
	if in.MatchScore < 0 || in.MatchScore > 100 {
		errs = append(errs, domain.FieldError{Field: "match_score", Message: "must be between 0 and 100"})
	}
	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "is required"})
	}
	if strings.TrimSpace(in.Company) == "" {
		errs = append(errs, domain.FieldError{Field: "company", Message: "is required"})
	}
	if in.AIConfidence != nil && !in.AIConfidence.IsValid() {
		errs = append(errs, domain.FieldError{Field: "ai_confidence", Message: "must be high, medium or low"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DecisionInput identifies the human reviewer behind an approve or reject.
// A decision with no reviewer id is rejected before touching storage: the
// audit trail must always name who decided.
type DecisionInput struct {
	EntityID   string
	ReviewerID string
	Notes      *string
}

func (in DecisionInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(in.EntityID) == "" {
		errs = append(errs, domain.FieldError{Field: "entity_id", Message: "is required"})
	}
	if strings.TrimSpace(in.ReviewerID) == "" {
		errs = append(errs, domain.FieldError{Field: "reviewer_id", Message: "is required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
