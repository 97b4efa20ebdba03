// Package advisory is the gateway to the AI analysis backend. Its output
// is advice for human reviewers, never a decision: every result carries
// RequiresReview and no method returns a backend error to the caller.
// Failures degrade to a low-confidence result whose reasoning names the
// error, and the workflow continues.
package advisory

import (
	"context"
	"log/slog"
	"time"
)

type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service provides advisory AI analysis over a completion backend.
type Service struct {
	log     *slog.Logger
	llm     completer
	timeout time.Duration
}

// NewService creates a new advisory gateway. timeout bounds each backend
// call; zero means no bound beyond the caller's context.
func NewService(log *slog.Logger, llm completer, timeout time.Duration) *Service {
	return &Service{
		log:     log.With("service", "advisory"),
		llm:     llm,
		timeout: timeout,
	}
}

func (s *Service) complete(ctx context.Context, prompt string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.llm.Complete(ctx, prompt)
}
