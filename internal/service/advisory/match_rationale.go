package advisory

import (
	"context"
	"fmt"
	"strings"
)

// MatchRationale produces a short explanation of why a candidate-job
// pairing scored the way it did. On backend failure it falls back to a
// deterministic sentence counting overlapping capabilities, so a match
// always carries some rationale.
func (s *Service) MatchRationale(ctx context.Context, userSkills, jobRequirements []string, matchScore int) string {
	prompt := fmt.Sprintf(`Explain why this is a %d%% match between a candidate and a job.

Candidate capabilities: %s
Job requirements: %s

Provide a concise 2-3 sentence explanation focusing on overlapping capabilities.
Do NOT mention credentials, degrees, or job titles.`,
		matchScore, strings.Join(userSkills, ", "), strings.Join(jobRequirements, ", "))

	text, err := s.complete(ctx, prompt)
	if err != nil {
		s.log.Warn("match rationale failed", "error", err)
		return fmt.Sprintf("Match based on %d overlapping capabilities.", overlap(userSkills, jobRequirements))
	}
	return text
}

func overlap(a, b []string) int {
	seen := make(map[string]struct{}, len(a))
	for _, s := range a {
		seen[s] = struct{}{}
	}
	var n int
	for _, s := range b {
		if _, ok := seen[s]; ok {
			n++
			delete(seen, s)
		}
	}
	return n
}
