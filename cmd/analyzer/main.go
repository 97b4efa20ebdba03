// Command analyzer runs one pass of the advisory analysis pipeline: it
// picks up assessments still in SUBMITTED state, asks the AI backend for
// an advisory quality analysis, and attaches the result, moving each
// assessment to PENDING_REVIEW for a human decision. Analysis never
// approves anything.
//
// Backend failures do not stop the pass: a failed call produces a
// low-confidence analysis naming the error, and the assessment still
// lands in the review queue.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/fairmatch/fairmatch-backend/internal/adapter/postgres"
	assessmentrepo "github.com/fairmatch/fairmatch-backend/internal/adapter/postgres/assessment"
	checkpointrepo "github.com/fairmatch/fairmatch-backend/internal/adapter/postgres/checkpoint"
	matchrepo "github.com/fairmatch/fairmatch-backend/internal/adapter/postgres/match"
	profilerepo "github.com/fairmatch/fairmatch-backend/internal/adapter/postgres/profile"
	"github.com/fairmatch/fairmatch-backend/internal/app"
	"github.com/fairmatch/fairmatch-backend/internal/config"
	"github.com/fairmatch/fairmatch-backend/internal/domain"
	"github.com/fairmatch/fairmatch-backend/internal/service/advisory"
	"github.com/fairmatch/fairmatch-backend/internal/service/workflow"
)

func main() {
	batchSize := flag.Int("batch", 0, "override batch size (default from config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting analyzer", slog.String("version", app.BuildVersion()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	assessments := assessmentrepo.New(pool)
	workflowSvc := workflow.NewService(
		logger,
		postgres.NewTxManager(pool),
		checkpointrepo.New(pool),
		profilerepo.New(pool),
		assessments,
		matchrepo.New(pool),
	)

	var clientOpts []option.RequestOption
	if cfg.Advisory.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(cfg.Advisory.APIKey))
	}
	client := anthropic.NewClient(clientOpts...)
	gateway := advisory.NewService(
		logger,
		advisory.NewAnthropicCompleter(client, cfg.Advisory.Model, cfg.Advisory.MaxTokens),
		cfg.Advisory.Timeout,
	)

	limit := cfg.Advisory.BatchSize
	if *batchSize > 0 {
		limit = *batchSize
	}

	if err := runPass(ctx, logger, assessments, gateway, workflowSvc, limit); err != nil {
		logger.Error("analyzer pass failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func runPass(
	ctx context.Context,
	logger *slog.Logger,
	assessments *assessmentrepo.Repo,
	gateway *advisory.Service,
	workflowSvc *workflow.Service,
	limit int,
) error {
	pending, err := assessments.ListByStatus(ctx, domain.AssessmentStatusSubmitted, limit)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		logger.Info("no submitted assessments to analyze")
		return nil
	}

	var attached, skipped int
	for _, a := range pending {
		analysis := gateway.AnalyzeAssessment(ctx, advisory.AnalyzeAssessmentInput{
			Skills:               a.Skills,
			PortfolioURL:         a.PortfolioURL,
			WorkPreference:       a.WorkPreference,
			WorkPreferenceReason: a.WorkPreferenceReason,
		})

		if _, err := workflowSvc.AddAnalysis(ctx, a.ID, analysis); err != nil {
			// A concurrent reviewer may have decided this assessment
			// between listing and attaching; that is not a failure.
			logger.Warn("skip assessment",
				slog.String("assessment_id", a.ID), slog.String("error", err.Error()))
			skipped++
			continue
		}
		attached++
	}

	logger.Info("analyzer pass complete",
		slog.Int("analyzed", attached), slog.Int("skipped", skipped))
	return nil
}
