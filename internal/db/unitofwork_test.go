package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/fitai/internal/db"
	"github.com/alexanderramin/fitai/internal/domain"
	"github.com/alexanderramin/fitai/internal/repository"
	"github.com/alexanderramin/fitai/internal/testutil"
)

func seededProfile(t *testing.T) (*db.SQLiteUnitOfWork, *repository.SQLiteProfileRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProfileRepo(database)
	require.NoError(t, repo.Create(context.Background(),
		testutil.NewTestProfile("budi", testutil.WithGoal(domain.GoalCutting))))
	return db.NewSQLiteUnitOfWork(database), repo
}

// markMonday toggles Monday inside tx, then hands control to after.
func markMonday(ctx context.Context, tx db.DBTX, after func() error) error {
	txRepo := repository.NewSQLiteProfileRepo(tx)
	p, err := txRepo.GetByUserID(ctx, "budi")
	if err != nil {
		return err
	}
	p.SetDay("mon", true)
	p.Goal = domain.GoalBulking
	if err := txRepo.Update(ctx, p); err != nil {
		return err
	}
	return after()
}

func TestWithinTx_CommitsProfileUpdate(t *testing.T) {
	uow, repo := seededProfile(t)
	ctx := context.Background()

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return markMonday(ctx, tx, func() error { return nil })
	})
	require.NoError(t, err)

	got, err := repo.GetByUserID(ctx, "budi")
	require.NoError(t, err)
	assert.True(t, got.Completed["mon"])
	assert.Equal(t, domain.GoalBulking, got.Goal)
}

func TestWithinTx_ErrorRollsBackProfileUpdate(t *testing.T) {
	uow, repo := seededProfile(t)
	ctx := context.Background()
	errStop := errors.New("progress write failed")

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return markMonday(ctx, tx, func() error { return errStop })
	})
	require.ErrorIs(t, err, errStop)

	got, err := repo.GetByUserID(ctx, "budi")
	require.NoError(t, err)
	assert.Empty(t, got.Completed, "completion unchanged after rollback")
	assert.Equal(t, domain.GoalCutting, got.Goal)
}

func TestWithinTx_PanicRollsBackProfileUpdate(t *testing.T) {
	uow, repo := seededProfile(t)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return markMonday(ctx, tx, func() error { panic("boom") })
		})
	})

	got, err := repo.GetByUserID(ctx, "budi")
	require.NoError(t, err)
	assert.False(t, got.Completed["mon"])
	assert.Equal(t, domain.GoalCutting, got.Goal)
}

func TestWithinTx_CreateRolledBackLeavesNoProfile(t *testing.T) {
	uow, repo := seededProfile(t)
	ctx := context.Background()

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteProfileRepo(tx).Create(ctx, testutil.NewTestProfile("sari")); err != nil {
			return err
		}
		return errors.New("abort onboarding")
	})
	require.Error(t, err)

	_, err = repo.GetByUserID(ctx, "sari")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
