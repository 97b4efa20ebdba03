package advisory

import (
	"strings"

	"github.com/fairmatch/fairmatch-backend/internal/domain"
)

// Indicator keywords scanned in the backend's analysis text to estimate
// how much weight a reviewer should give it.
var (
	negativeIndicators = []string{
		"unclear", "suspicious", "limited", "minimal",
		"red flag", "concerning", "vague", "incomplete",
	}
	positiveIndicators = []string{
		"strong", "comprehensive", "detailed", "clear",
		"well-rounded", "diverse", "thoughtful", "thorough",
	}
)

// assessConfidence grades an analysis text: two or more positive
// indicators with no negative ones reads high, two or more negative reads
// low, anything else medium.
func assessConfidence(analysisText string) domain.Confidence {
	text := strings.ToLower(analysisText)

	var positive, negative int
	for _, word := range positiveIndicators {
		if strings.Contains(text, word) {
			positive++
		}
	}
	for _, word := range negativeIndicators {
		if strings.Contains(text, word) {
			negative++
		}
	}

	switch {
	case positive >= 2 && negative == 0:
		return domain.ConfidenceHigh
	case negative >= 2:
		return domain.ConfidenceLow
	default:
		return domain.ConfidenceMedium
	}
}
