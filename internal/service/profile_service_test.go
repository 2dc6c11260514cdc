package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/fitai/internal/domain"
	"github.com/alexanderramin/fitai/internal/repository"
	"github.com/alexanderramin/fitai/internal/testutil"
)

type recordingUseCaseObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingUseCaseObserver) ObserveUseCase(_ context.Context, ev UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, ev)
}

func newProfileService(t *testing.T, observers ...UseCaseObserver) (ProfileService, repository.ProfileRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProfileRepo(database)
	return NewProfileService(repo, testutil.NewTestUoW(database), observers...), repo
}

func validFields() domain.ProfileFields {
	return domain.ProfileFields{
		Name:       testutil.Ptr("Rina"),
		Weight:     testutil.Ptr(70),
		BodyFat:    testutil.Ptr(15),
		MuscleMass: testutil.Ptr(40),
		Age:        testutil.Ptr(25),
		Goal:       testutil.Ptr(domain.GoalBulking),
	}
}

func TestProfileService_CreateThenGet(t *testing.T) {
	svc, _ := newProfileService(t)
	ctx := context.Background()

	created, err := svc.CreateOrUpdate(ctx, "demo-user", validFields())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := svc.Get(ctx, "demo-user")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Rina", got.Name)
	assert.Equal(t, 70, got.Weight)
	assert.Equal(t, 15, got.BodyFat)
	assert.Equal(t, 40, got.MuscleMass)
	assert.Equal(t, 25, got.Age)
	assert.Equal(t, domain.GoalBulking, got.Goal)
	assert.NotNil(t, got.Completed)
	assert.Empty(t, got.Completed)
}

func TestProfileService_CreateOrUpdate_SecondSubmissionUpdates(t *testing.T) {
	svc, _ := newProfileService(t)
	ctx := context.Background()

	first, err := svc.CreateOrUpdate(ctx, "u1", validFields())
	require.NoError(t, err)
	_, err = svc.SetCompletion(ctx, "u1", "mon", true)
	require.NoError(t, err)

	f := validFields()
	f.Goal = testutil.Ptr(domain.GoalCutting)
	second, err := svc.CreateOrUpdate(ctx, "u1", f)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "one profile per user")
	assert.Equal(t, domain.GoalCutting, second.Goal)
	assert.True(t, second.Completed["mon"], "completion survives a resubmission without completed")
}

func TestProfileService_BoundaryValuesAccepted(t *testing.T) {
	svc, _ := newProfileService(t)
	ctx := context.Background()

	f := validFields()
	f.Weight = testutil.Ptr(1)
	f.Age = testutil.Ptr(1)
	f.BodyFat = testutil.Ptr(0)
	f.MuscleMass = testutil.Ptr(100)
	_, err := svc.CreateOrUpdate(ctx, "low", f)
	require.NoError(t, err)

	f.BodyFat = testutil.Ptr(100)
	f.MuscleMass = testutil.Ptr(0)
	_, err = svc.CreateOrUpdate(ctx, "high", f)
	require.NoError(t, err)
}

func TestProfileService_ValidationDoesNotTouchStore(t *testing.T) {
	svc, repo := newProfileService(t)
	ctx := context.Background()

	f := validFields()
	f.BodyFat = testutil.Ptr(101)
	_, err := svc.CreateOrUpdate(ctx, "u1", f)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "bodyFat", vErr.Field)

	_, err = repo.GetByUserID(ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileService_MissingFieldRejected(t *testing.T) {
	svc, _ := newProfileService(t)

	f := validFields()
	f.Goal = nil
	_, err := svc.CreateOrUpdate(context.Background(), "u1", f)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProfileService_Get_NotFound(t *testing.T) {
	svc, _ := newProfileService(t)

	_, err := svc.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileService_SetCompletion_Toggle(t *testing.T) {
	svc, _ := newProfileService(t)
	ctx := context.Background()
	_, err := svc.CreateOrUpdate(ctx, "u1", validFields())
	require.NoError(t, err)

	_, err = svc.SetCompletion(ctx, "u1", "mon", true)
	require.NoError(t, err)
	got, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, got.Completed["mon"])
	_, present := got.Completed["tue"]
	assert.False(t, present, "unspecified days stay absent")

	_, err = svc.SetCompletion(ctx, "u1", "mon", false)
	require.NoError(t, err)
	got, err = svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, got.Completed["mon"])
}

func TestProfileService_SetCompletion_Errors(t *testing.T) {
	svc, _ := newProfileService(t)
	ctx := context.Background()

	_, err := svc.SetCompletion(ctx, "ghost", "mon", true)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.CreateOrUpdate(ctx, "u1", validFields())
	require.NoError(t, err)
	_, err = svc.SetCompletion(ctx, "u1", "  ", true)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProfileService_SetCompletion_RollbackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProfileRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestProfile("u1")))

	failUoW := &testutil.FailOnNthExecUoW{DB: database, FailOn: 1, Err: errors.New("injected update failure")}
	svc := NewProfileService(repo, failUoW)

	_, err := svc.SetCompletion(ctx, "u1", "wed", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected update failure")

	got, err := repo.GetByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got.Completed)
}

func TestProfileService_Update_Partial(t *testing.T) {
	svc, _ := newProfileService(t)
	ctx := context.Background()
	_, err := svc.CreateOrUpdate(ctx, "u1", validFields())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "u1", domain.ProfileFields{Weight: testutil.Ptr(75)})
	require.NoError(t, err)
	assert.Equal(t, 75, updated.Weight)
	assert.Equal(t, "Rina", updated.Name)
	assert.Equal(t, domain.GoalBulking, updated.Goal)

	_, err = svc.Update(ctx, "u1", domain.ProfileFields{})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Update(ctx, "ghost", domain.ProfileFields{Age: testutil.Ptr(30)})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileService_ReplaceCompletionAndProgress(t *testing.T) {
	svc, _ := newProfileService(t)
	ctx := context.Background()
	_, err := svc.CreateOrUpdate(ctx, "u1", validFields())
	require.NoError(t, err)

	_, err = svc.ReplaceCompletion(ctx, "u1", domain.Completion{"mon": true, "tue": true, "wed": true, "extra": true})
	require.NoError(t, err)

	progress, err := svc.Progress(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, progress.Completed)
	assert.Equal(t, 7, progress.Total)
	assert.Equal(t, 43, progress.Percent)
	assert.Equal(t, "Pertahankan!", progress.Message)

	_, err = svc.ReplaceCompletion(ctx, "u1", nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProfileService_ObservesUseCases(t *testing.T) {
	obs := &recordingUseCaseObserver{}
	svc, _ := newProfileService(t, obs)
	ctx := context.Background()

	_, err := svc.CreateOrUpdate(ctx, "u1", validFields())
	require.NoError(t, err)
	_, err = svc.SetCompletion(ctx, "ghost", "mon", true)
	require.Error(t, err)

	require.Len(t, obs.events, 2)
	assert.Equal(t, "profile.create_or_update", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, true, obs.events[0].Fields["created"])
	assert.Equal(t, "profile.set_completion", obs.events[1].Name)
	assert.False(t, obs.events[1].Success)
	assert.ErrorIs(t, obs.events[1].Err, repository.ErrNotFound)
}
