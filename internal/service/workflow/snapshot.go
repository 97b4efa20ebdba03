package workflow

import "github.com/fairmatch/fairmatch-backend/internal/domain"

// Snapshot builders: the field maps captured into a checkpoint record
// before each mutation. Only reviewable fields are captured; pointers are
// dereferenced so the stored JSON holds plain values or nulls.

func profileSnapshot(p *domain.Profile) map[string]any {
	return map[string]any{
		"skills":                 p.Skills,
		"portfolio_url":          p.PortfolioURL,
		"work_preference":        p.WorkPreference,
		"work_preference_reason": p.WorkPreferenceReason,
		"bio":                    p.Bio,
	}
}

func assessmentSnapshot(a *domain.Assessment) map[string]any {
	return map[string]any{
		"status":       a.Status.String(),
		"reviewed_by":  a.ReviewedBy,
		"review_notes": a.ReviewNotes,
	}
}

func matchSnapshot(m *domain.Match) map[string]any {
	return map[string]any{
		"is_approved": m.IsApproved,
		"approved_by": m.ApprovedBy,
	}
}

// tombstone marks a snapshot as the last state before a hard delete.
func tombstone(state map[string]any) map[string]any {
	state["deleted"] = true
	return state
}
