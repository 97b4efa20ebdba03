package advisory

import (
	"context"
	"fmt"
	"strings"

	"github.com/fairmatch/fairmatch-backend/internal/domain"
)

// AnalyzeAssessmentInput is the reviewable content of one assessment.
type AnalyzeAssessmentInput struct {
	Skills               []string
	PortfolioURL         *string
	WorkPreference       string
	WorkPreferenceReason *string
}

// AnalyzeAssessment evaluates a submission for quality and completeness.
// The result always requires human review; a backend failure produces a
// low-confidence result whose text names the error instead of an error
// return, so the workflow never stalls on the AI being down.
func (s *Service) AnalyzeAssessment(ctx context.Context, in AnalyzeAssessmentInput) domain.AdvisoryAnalysis {
	prompt := buildAssessmentPrompt(in)

	text, err := s.complete(ctx, prompt)
	if err != nil {
		s.log.Warn("assessment analysis failed", "error", err)
		return domain.AdvisoryAnalysis{
			SchemaVersion:  domain.AdvisoryAnalysisSchemaVersion,
			Analysis:       fmt.Sprintf("Error during analysis: %v", err),
			Confidence:     domain.ConfidenceLow,
			RequiresReview: true,
			Extra:          map[string]string{"error": err.Error()},
		}
	}

	return domain.AdvisoryAnalysis{
		SchemaVersion:  domain.AdvisoryAnalysisSchemaVersion,
		Analysis:       text,
		Confidence:     assessConfidence(text),
		RequiresReview: true,
	}
}

func buildAssessmentPrompt(in AnalyzeAssessmentInput) string {
	return fmt.Sprintf(`Analyze this job seeker assessment for quality and completeness.

Skills claimed: %s
Portfolio: %s
Work preference: %s
Reasoning: %s

Evaluate:
1. Skill diversity (too narrow or well-rounded?)
2. Portfolio presence (helpful for verification)
3. Self-awareness (thoughtful work preference reasoning?)
4. Red flags (suspicious patterns, spam)

Provide a brief 3-4 sentence analysis. Focus on quality, not credentials.`,
		strings.Join(in.Skills, ", "),
		orNotProvided(in.PortfolioURL),
		in.WorkPreference,
		orNotProvided(in.WorkPreferenceReason),
	)
}

func orNotProvided(p *string) string {
	if p == nil || *p == "" {
		return "Not provided"
	}
	return *p
}
