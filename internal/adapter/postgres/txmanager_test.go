package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fairmatch/fairmatch-backend/internal/adapter/postgres"
	"github.com/fairmatch/fairmatch-backend/internal/adapter/postgres/testhelper"
)

// profileExists checks whether a profile row with the given anonymous id
// exists in the database.
func profileExists(t *testing.T, pool *pgxpool.Pool, anonymousID string) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(
		context.Background(),
		`SELECT EXISTS(SELECT 1 FROM profiles WHERE anonymous_id = $1)`,
		anonymousID,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("profileExists query: %v", err)
	}
	return exists
}

func insertProfile(ctx context.Context, q postgres.Querier, anonymousID string) error {
	_, err := q.Exec(ctx,
		`INSERT INTO profiles (anonymous_id, skills, created_at, updated_at)
		 VALUES ($1, '{}', now(), now())`,
		anonymousID,
	)
	return err
}

func TestRunInTx_Commit(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	anonymousID := testhelper.AnonymousID()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		return insertProfile(ctx, postgres.QuerierFromCtx(ctx, pool), anonymousID)
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	if !profileExists(t, pool, anonymousID) {
		t.Fatal("expected profile to exist after committed transaction")
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	anonymousID := testhelper.AnonymousID()
	sentinel := errors.New("business logic error")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if execErr := insertProfile(ctx, postgres.QuerierFromCtx(ctx, pool), anonymousID); execErr != nil {
			t.Fatalf("insert inside tx failed: %v", execErr)
		}
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}

	if profileExists(t, pool, anonymousID) {
		t.Fatal("expected profile NOT to exist after rolled-back transaction")
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	anonymousID := testhelper.AnonymousID()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic to be re-raised")
		}
		if r != "test panic" {
			t.Fatalf("expected panic value %q, got %v", "test panic", r)
		}

		// Verify data was rolled back.
		if profileExists(t, pool, anonymousID) {
			t.Fatal("expected profile NOT to exist after panic-rolled-back transaction")
		}
	}()

	_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := insertProfile(ctx, postgres.QuerierFromCtx(ctx, pool), anonymousID); err != nil {
			t.Fatalf("insert inside tx failed: %v", err)
		}
		panic("test panic")
	})
}

func TestRunInTx_QuerierFromCtx_UsesTx(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	anonymousID := testhelper.AnonymousID()

	// Insert inside a transaction, then verify it's visible within the same tx.
	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		if err := insertProfile(ctx, q, anonymousID); err != nil {
			return err
		}

		var exists bool
		err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM profiles WHERE anonymous_id = $1)`, anonymousID).Scan(&exists)
		if err != nil {
			return err
		}
		if !exists {
			t.Fatal("expected profile to be visible within the transaction")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	// After commit, also visible outside.
	if !profileExists(t, pool, anonymousID) {
		t.Fatal("expected profile to exist after committed transaction")
	}
}
