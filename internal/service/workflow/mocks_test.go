package workflow

import (
	"context"

	"github.com/google/uuid"

	"github.com/fairmatch/fairmatch-backend/internal/domain"
)

// mockTx runs the callback directly; the real TxManager only adds
// transaction bracketing, which these tests do not exercise.
type mockTx struct {
	runs int
}

func (m *mockTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.runs++
	return fn(ctx)
}

type mockCheckpoints struct {
	createFn func(ctx context.Context, rec domain.CheckpointRecord) (domain.CheckpointRecord, error)
	created  []domain.CheckpointRecord
}

var _ checkpointStore = (*mockCheckpoints)(nil)

func (m *mockCheckpoints) Create(ctx context.Context, rec domain.CheckpointRecord) (domain.CheckpointRecord, error) {
	if m.createFn != nil {
		return m.createFn(ctx, rec)
	}
	m.created = append(m.created, rec)
	return rec, nil
}

type mockProfiles struct {
	createFn       func(ctx context.Context, anonymousID string) (*domain.Profile, error)
	getFn          func(ctx context.Context, anonymousID string) (*domain.Profile, error)
	getForUpdateFn func(ctx context.Context, anonymousID string) (*domain.Profile, error)
	updateFn       func(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	deleteFn       func(ctx context.Context, anonymousID string) error
}

var _ profileRepo = (*mockProfiles)(nil)

func (m *mockProfiles) Create(ctx context.Context, anonymousID string) (*domain.Profile, error) {
	return m.createFn(ctx, anonymousID)
}
func (m *mockProfiles) Get(ctx context.Context, anonymousID string) (*domain.Profile, error) {
	return m.getFn(ctx, anonymousID)
}
func (m *mockProfiles) GetForUpdate(ctx context.Context, anonymousID string) (*domain.Profile, error) {
	return m.getForUpdateFn(ctx, anonymousID)
}
func (m *mockProfiles) Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	return m.updateFn(ctx, p)
}
func (m *mockProfiles) Delete(ctx context.Context, anonymousID string) error {
	return m.deleteFn(ctx, anonymousID)
}

type mockAssessments struct {
	createFn         func(ctx context.Context, a *domain.Assessment) (*domain.Assessment, error)
	getFn            func(ctx context.Context, id string) (*domain.Assessment, error)
	getForUpdateFn   func(ctx context.Context, id string) (*domain.Assessment, error)
	listByOwnerFn    func(ctx context.Context, anonymousID string) ([]*domain.Assessment, error)
	attachAnalysisFn func(ctx context.Context, id string, analysis domain.AdvisoryAnalysis, checkpointID uuid.UUID) (*domain.Assessment, error)
	recordDecisionFn func(ctx context.Context, id string, status domain.AssessmentStatus, reviewerID string, notes *string, checkpointID uuid.UUID) (*domain.Assessment, error)
}

var _ assessmentRepo = (*mockAssessments)(nil)

func (m *mockAssessments) Create(ctx context.Context, a *domain.Assessment) (*domain.Assessment, error) {
	return m.createFn(ctx, a)
}
func (m *mockAssessments) Get(ctx context.Context, id string) (*domain.Assessment, error) {
	return m.getFn(ctx, id)
}
func (m *mockAssessments) GetForUpdate(ctx context.Context, id string) (*domain.Assessment, error) {
	return m.getForUpdateFn(ctx, id)
}
func (m *mockAssessments) ListByOwner(ctx context.Context, anonymousID string) ([]*domain.Assessment, error) {
	return m.listByOwnerFn(ctx, anonymousID)
}
func (m *mockAssessments) AttachAnalysis(ctx context.Context, id string, analysis domain.AdvisoryAnalysis, checkpointID uuid.UUID) (*domain.Assessment, error) {
	return m.attachAnalysisFn(ctx, id, analysis, checkpointID)
}
func (m *mockAssessments) RecordDecision(ctx context.Context, id string, status domain.AssessmentStatus, reviewerID string, notes *string, checkpointID uuid.UUID) (*domain.Assessment, error) {
	return m.recordDecisionFn(ctx, id, status, reviewerID, notes, checkpointID)
}

type mockMatches struct {
	createFn       func(ctx context.Context, m *domain.Match) (*domain.Match, error)
	getFn          func(ctx context.Context, id string) (*domain.Match, error)
	getForUpdateFn func(ctx context.Context, id string) (*domain.Match, error)
	approveFn      func(ctx context.Context, id, approverID string) (*domain.Match, error)
	deleteFn       func(ctx context.Context, id string) error
}

var _ matchRepo = (*mockMatches)(nil)

func (m *mockMatches) Create(ctx context.Context, match *domain.Match) (*domain.Match, error) {
	return m.createFn(ctx, match)
}
func (m *mockMatches) Get(ctx context.Context, id string) (*domain.Match, error) {
	return m.getFn(ctx, id)
}
func (m *mockMatches) GetForUpdate(ctx context.Context, id string) (*domain.Match, error) {
	return m.getForUpdateFn(ctx, id)
}
func (m *mockMatches) Approve(ctx context.Context, id, approverID string) (*domain.Match, error) {
	return m.approveFn(ctx, id, approverID)
}
func (m *mockMatches) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}
