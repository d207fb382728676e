package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"finder/internal/core/application/usecases/commands"
	"finder/internal/core/domain/model/job"
	"finder/internal/core/domain/model/worker"
)

func TestReconcileRatingsCommandHandler_Handle_CorrectsDriftedRating(t *testing.T) {
	ctx := t.Context()
	w := newRegisteredWorker(t, []string{"plumbing"})
	require.NoError(t, w.SetRating(2.5)) // drifted value

	rated1 := newCompletedJobFor(t, w.ID())
	require.NoError(t, rated1.SubmitReview(5, "great"))
	rated2 := newCompletedJobFor(t, w.ID())
	require.NoError(t, rated2.SubmitReview(4, "good"))

	workerRepo := new(MockWorkerRepository)
	jobRepo := new(MockJobRepository)

	listUow := new(MockUoW)
	listUow.On("Begin", ctx).Return(nil).Once()
	listUow.On("Commit", ctx).Return(nil).Once()
	listUow.On("Rollback", ctx).Return(nil).Once()
	listUow.On("WorkerRepository").Return(workerRepo).Once()
	workerRepo.On("GetAll", mock.Anything).Return([]*worker.Worker{w}, nil).Once()

	workerUow := new(MockUoW)
	workerUow.On("Begin", ctx).Return(nil).Once()
	workerUow.On("Commit", ctx).Return(nil).Once()
	workerUow.On("Rollback", ctx).Return(nil).Once()
	workerUow.On("WorkerRepository").Return(workerRepo).Once()
	workerUow.On("JobRepository").Return(jobRepo).Once()
	workerRepo.On("Get", mock.Anything, w.ID()).Return(w, nil).Once()
	jobRepo.On("GetAllRatedByWorker", mock.Anything, w.ID()).
		Return([]*job.Job{rated1, rated2}, nil).Once()
	workerRepo.On("Update", mock.Anything, w).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(listUow).Once()
	factory.On("Create").Return(workerUow).Once()

	h := commands.NewReconcileRatingsCommandHandler(factory, discardLogger())
	cmd := commands.NewReconcileRatingsCommand()
	require.NoError(t, h.Handle(ctx, cmd))

	assert.InDelta(t, 4.5, w.Rating(), 0.0001) // (5+4)/2
	workerRepo.AssertExpectations(t)
	jobRepo.AssertExpectations(t)
}

func TestReconcileRatingsCommandHandler_Handle_SkipsWorkerWithoutRatedJobs(t *testing.T) {
	ctx := t.Context()
	w := newRegisteredWorker(t, []string{"plumbing"})
	require.NoError(t, w.SetRating(3.7))

	workerRepo := new(MockWorkerRepository)
	jobRepo := new(MockJobRepository)

	listUow := new(MockUoW)
	listUow.On("Begin", ctx).Return(nil).Once()
	listUow.On("Commit", ctx).Return(nil).Once()
	listUow.On("Rollback", ctx).Return(nil).Once()
	listUow.On("WorkerRepository").Return(workerRepo).Once()
	workerRepo.On("GetAll", mock.Anything).Return([]*worker.Worker{w}, nil).Once()

	workerUow := new(MockUoW)
	workerUow.On("Begin", ctx).Return(nil).Once()
	workerUow.On("Commit", ctx).Return(nil).Once()
	workerUow.On("Rollback", ctx).Return(nil).Once()
	workerUow.On("WorkerRepository").Return(workerRepo).Once()
	workerUow.On("JobRepository").Return(jobRepo).Once()
	workerRepo.On("Get", mock.Anything, w.ID()).Return(w, nil).Once()
	jobRepo.On("GetAllRatedByWorker", mock.Anything, w.ID()).Return([]*job.Job{}, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(listUow).Once()
	factory.On("Create").Return(workerUow).Once()

	h := commands.NewReconcileRatingsCommandHandler(factory, discardLogger())
	require.NoError(t, h.Handle(ctx, commands.NewReconcileRatingsCommand()))

	// Stored rating stays untouched, no Update issued.
	assert.InDelta(t, 3.7, w.Rating(), 0.0001)
	workerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestReconcileRatingsCommandHandler_Handle_MatchingRatingIssuesNoUpdate(t *testing.T) {
	ctx := t.Context()
	w := newRegisteredWorker(t, []string{"plumbing"})
	require.NoError(t, w.SetRating(5))

	rated := newCompletedJobFor(t, w.ID())
	require.NoError(t, rated.SubmitReview(5, "flawless"))

	workerRepo := new(MockWorkerRepository)
	jobRepo := new(MockJobRepository)

	listUow := new(MockUoW)
	listUow.On("Begin", ctx).Return(nil).Once()
	listUow.On("Commit", ctx).Return(nil).Once()
	listUow.On("Rollback", ctx).Return(nil).Once()
	listUow.On("WorkerRepository").Return(workerRepo).Once()
	workerRepo.On("GetAll", mock.Anything).Return([]*worker.Worker{w}, nil).Once()

	workerUow := new(MockUoW)
	workerUow.On("Begin", ctx).Return(nil).Once()
	workerUow.On("Commit", ctx).Return(nil).Once()
	workerUow.On("Rollback", ctx).Return(nil).Once()
	workerUow.On("WorkerRepository").Return(workerRepo).Once()
	workerUow.On("JobRepository").Return(jobRepo).Once()
	workerRepo.On("Get", mock.Anything, w.ID()).Return(w, nil).Once()
	jobRepo.On("GetAllRatedByWorker", mock.Anything, w.ID()).
		Return([]*job.Job{rated}, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(listUow).Once()
	factory.On("Create").Return(workerUow).Once()

	h := commands.NewReconcileRatingsCommandHandler(factory, discardLogger())
	require.NoError(t, h.Handle(ctx, commands.NewReconcileRatingsCommand()))

	workerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
