package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdvisoryAnalysisSchemaVersion is the current shape of AdvisoryAnalysis
// as persisted in JSONB. Bump when fields change meaning.
const AdvisoryAnalysisSchemaVersion = 1

// AdvisoryAnalysis is AI-generated advisory output attached to an
// assessment. It can move an assessment into PENDING_REVIEW and nothing
// else: the human reviewer decides, the analysis only informs.
//
// Extra is an escape hatch for forward-compatible annotations that have
// no typed field yet; known shapes get fields, not map entries.
type AdvisoryAnalysis struct {
	SchemaVersion  int               `json:"schema_version"`
	Analysis       string            `json:"analysis"`
	Reasoning      string            `json:"reasoning,omitempty"`
	Confidence     Confidence        `json:"confidence"`
	RequiresReview bool              `json:"requires_review"`
	Extra          map[string]string `json:"extra,omitempty"`
}

// Assessment is a candidate's capability self-assessment moving through
// the human review workflow.
type Assessment struct {
	ID                   string
	AnonymousID          string
	Skills               []string
	PortfolioURL         *string
	WorkPreference       string
	WorkPreferenceReason *string

	Status       AssessmentStatus
	AIAnalysis   *AdvisoryAnalysis
	AIConfidence *Confidence

	ReviewedBy  *string
	ReviewNotes *string
	ReviewedAt  *time.Time

	SubmittedAt time.Time

	// CheckpointBeforeReview references the snapshot taken immediately
	// before the most recent status mutation.
	CheckpointBeforeReview *uuid.UUID
}
