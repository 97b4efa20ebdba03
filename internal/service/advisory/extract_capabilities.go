package advisory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fairmatch/fairmatch-backend/internal/domain"
)

// CapabilityExtraction is the structured result of parsing free text for
// capability claims.
type CapabilityExtraction struct {
	Skills       []string          `json:"skills"`
	Capabilities []string          `json:"capabilities"`
	Confidence   domain.Confidence `json:"confidence"`
	Reasoning    string            `json:"reasoning"`
}

// ExtractCapabilities pulls skills and capability areas out of raw resume
// text. Capabilities only: the prompt explicitly excludes credentials,
// titles and other identifying material. Malformed model output degrades
// to a low-confidence result carrying the raw text as reasoning; a
// backend failure degrades the same way with the error message.
func (s *Service) ExtractCapabilities(ctx context.Context, resumeText string) CapabilityExtraction {
	prompt := buildExtractionPrompt(resumeText)

	text, err := s.complete(ctx, prompt)
	if err != nil {
		s.log.Warn("capability extraction failed", "error", err)
		return CapabilityExtraction{
			Skills:       []string{},
			Capabilities: []string{},
			Confidence:   domain.ConfidenceLow,
			Reasoning:    fmt.Sprintf("Error during parsing: %v", err),
		}
	}

	result, err := parseExtraction(text)
	if err != nil {
		return CapabilityExtraction{
			Skills:       []string{},
			Capabilities: []string{},
			Confidence:   domain.ConfidenceLow,
			Reasoning:    text,
		}
	}
	return result
}

func buildExtractionPrompt(resumeText string) string {
	return fmt.Sprintf(`You are an expert at identifying technical capabilities from resumes.

CRITICAL RULES:
1. Extract CAPABILITIES (what they can DO), not credentials (degrees, job titles)
2. Focus on: technologies used, problems solved, systems built
3. Ignore: company names, job titles, degree names, dates
4. Output ONLY technical skills and capabilities

Resume text:
%s

Extract and list:
1. Technical skills (programming languages, frameworks, tools)
2. Capability areas (e.g., "Backend development", "Data analysis", "API design")

Format your response as JSON:
{
  "skills": ["skill1", "skill2", ...],
  "capabilities": ["capability1", ...],
  "confidence": "high|medium|low",
  "reasoning": "Brief explanation"
}`, resumeText)
}

// parseExtraction finds the first complete JSON object in the response
// and decodes it.
func parseExtraction(s string) (CapabilityExtraction, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return CapabilityExtraction{}, fmt.Errorf("no JSON object found in response")
	}

	var result CapabilityExtraction
	if err := json.Unmarshal([]byte(s[start:end+1]), &result); err != nil {
		return CapabilityExtraction{}, fmt.Errorf("decode extraction: %w", err)
	}
	if !result.Confidence.IsValid() {
		result.Confidence = domain.ConfidenceLow
	}
	return result, nil
}
