package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finder/internal/core/domain/model/job"
	"finder/internal/core/domain/model/kernel"
	"finder/internal/core/domain/services"
	"finder/internal/pkg/errs"
)

func newRatedJob(t *testing.T, workerID kernel.UUID, rating float64) *job.Job {
	t.Helper()
	j := newJobAt(t, kernel.CategoryPlumbing, 28.6139, 77.2090)
	require.NoError(t, j.Accept(workerID))
	require.NoError(t, j.Complete())
	require.NoError(t, j.SubmitReview(rating, "done well"))
	return j
}

func Test_Recalculate(t *testing.T) {
	aggregator := services.NewRatingAggregator()
	w := newWorkerAt(t, []string{"plumbing"}, 28.6139, 77.2090)

	rated := []*job.Job{
		newRatedJob(t, w.ID(), 5),
		newRatedJob(t, w.ID(), 4),
		newRatedJob(t, w.ID(), 3),
	}

	mean, err := aggregator.Recalculate(w, rated)

	require.NoError(t, err)
	assert.InDelta(t, 4.0, mean, 0.0001)
	assert.InDelta(t, 4.0, w.Rating(), 0.0001)
}

func Test_RecalculateRoundsToTwoDecimals(t *testing.T) {
	aggregator := services.NewRatingAggregator()
	w := newWorkerAt(t, []string{"plumbing"}, 28.6139, 77.2090)

	rated := []*job.Job{
		newRatedJob(t, w.ID(), 5),
		newRatedJob(t, w.ID(), 4),
		newRatedJob(t, w.ID(), 4),
	}

	mean, err := aggregator.Recalculate(w, rated)

	require.NoError(t, err)
	assert.InDelta(t, 4.33, mean, 0.0001)
}

func Test_RecalculateWithNoRatedJobsLeavesRatingUntouched(t *testing.T) {
	aggregator := services.NewRatingAggregator()
	w := newWorkerAt(t, []string{"plumbing"}, 28.6139, 77.2090)
	require.NoError(t, w.SetRating(4.5))

	_, err := aggregator.Recalculate(w, nil)

	assert.ErrorIs(t, err, services.ErrNoRatedJobs)
	assert.InDelta(t, 4.5, w.Rating(), 0.0001)
}

func Test_RecalculateShouldRejectForeignJob(t *testing.T) {
	aggregator := services.NewRatingAggregator()
	w := newWorkerAt(t, []string{"plumbing"}, 28.6139, 77.2090)

	foreign := newRatedJob(t, kernel.NewUUID(), 5)

	_, err := aggregator.Recalculate(w, []*job.Job{foreign})

	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func Test_RecalculateShouldRejectUnratedJob(t *testing.T) {
	aggregator := services.NewRatingAggregator()
	w := newWorkerAt(t, []string{"plumbing"}, 28.6139, 77.2090)

	unrated := newJobAt(t, kernel.CategoryPlumbing, 28.6139, 77.2090)
	require.NoError(t, unrated.Accept(w.ID()))

	_, err := aggregator.Recalculate(w, []*job.Job{unrated})

	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
