package domain

// AssessmentStatus represents the review state of an assessment.
//
// SUBMITTED and PENDING_REVIEW are open states; APPROVED and REJECTED are
// terminal. AI analysis may only move SUBMITTED to PENDING_REVIEW; the
// terminal states are reachable solely through the review controller with
// a recorded human reviewer.
type AssessmentStatus string

const (
	AssessmentStatusSubmitted     AssessmentStatus = "SUBMITTED"
	AssessmentStatusPendingReview AssessmentStatus = "PENDING_REVIEW"
	AssessmentStatusApproved      AssessmentStatus = "APPROVED"
	AssessmentStatusRejected      AssessmentStatus = "REJECTED"
)

func (s AssessmentStatus) String() string { return string(s) }

func (s AssessmentStatus) IsValid() bool {
	switch s {
	case AssessmentStatusSubmitted, AssessmentStatusPendingReview,
		AssessmentStatusApproved, AssessmentStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are permitted.
func (s AssessmentStatus) Terminal() bool {
	return s == AssessmentStatusApproved || s == AssessmentStatusRejected
}

// Confidence is the advisory gateway's self-assessed confidence level.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

func (c Confidence) String() string { return string(c) }

func (c Confidence) IsValid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in checkpoints).
type EntityType string

const (
	EntityTypeProfile    EntityType = "PROFILE"
	EntityTypeAssessment EntityType = "ASSESSMENT"
	EntityTypeMatch      EntityType = "MATCH"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeProfile, EntityTypeAssessment, EntityTypeMatch:
		return true
	}
	return false
}
