package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fairmatch/fairmatch-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// AnonymousID returns a fresh anonymous user id for tests.
func AnonymousID() string {
	return "anon-" + uniqueSuffix()
}

// SeedProfile creates an empty profile row and returns it.
func SeedProfile(t *testing.T, pool *pgxpool.Pool) domain.Profile {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Profile{
		AnonymousID: AnonymousID(),
		Skills:      []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO profiles (anonymous_id, skills, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)`,
		p.AnonymousID, p.Skills, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile insert: %v", err)
	}

	return p
}

// SeedAssessment creates an assessment in SUBMITTED state for a fresh
// anonymous user and returns it.
func SeedAssessment(t *testing.T, pool *pgxpool.Pool) domain.Assessment {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.Assessment{
		ID:             domain.NewEntityID("assessment", "anon-"+uniqueSuffix()),
		AnonymousID:    AnonymousID(),
		Skills:         []string{"Go", "PostgreSQL", "API design"},
		WorkPreference: "remote",
		Status:         domain.AssessmentStatusSubmitted,
		SubmittedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO assessments (id, anonymous_id, skills, work_preference, status, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.AnonymousID, a.Skills, a.WorkPreference, string(a.Status), a.SubmittedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAssessment insert: %v", err)
	}

	return a
}

// SeedMatch creates an unapproved match for the given anonymous user and
// returns it.
func SeedMatch(t *testing.T, pool *pgxpool.Pool, anonymousID string) domain.Match {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	m := domain.Match{
		ID:                   domain.NewEntityID("match", anonymousID, "job-"+suffix),
		AnonymousID:          anonymousID,
		JobID:                "job-" + suffix,
		MatchScore:           75,
		MatchingCapabilities: []string{"Go", "PostgreSQL"},
		RequiredCapabilities: []string{"Go", "PostgreSQL", "Kubernetes"},
		Title:                "Backend Engineer " + suffix,
		Company:              "Test Co " + suffix,
		Location:             "Berlin",
		IsRemote:             true,
		CreatedAt:            now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO matches (id, anonymous_id, job_id, match_score, matching_capabilities,
		                      required_capabilities, title, company, location, is_remote, is_approved, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, false, $11)`,
		m.ID, m.AnonymousID, m.JobID, m.MatchScore, m.MatchingCapabilities,
		m.RequiredCapabilities, m.Title, m.Company, m.Location, m.IsRemote, m.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMatch insert: %v", err)
	}

	return m
}
