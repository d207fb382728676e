package job_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finder/internal/core/domain/model/job"
	"finder/internal/core/domain/model/kernel"
	"finder/internal/pkg/errs"
)

func validLocation(t *testing.T) kernel.GeoPoint {
	t.Helper()
	location, err := kernel.NewGeoPoint(28.6139, 77.2090)
	require.NoError(t, err)
	return location
}

func newPendingJob(t *testing.T) *job.Job {
	t.Helper()
	j, err := job.NewJob(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Fix kitchen sink",
		"Leaking trap under the kitchen sink",
		kernel.CategoryPlumbing,
		validLocation(t),
		"12 Baker Street, Westfield, Springfield",
		1500,
		time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		"10:00",
		"12:00",
	)
	require.NoError(t, err)
	return j
}

func TestNewJob(t *testing.T) {
	t.Run("should create valid pending job", func(t *testing.T) {
		j := newPendingJob(t)

		require.NoError(t, j.Validate())
		assert.Equal(t, job.Pending, j.Status())
		assert.Nil(t, j.Worker())
		assert.Nil(t, j.Rating())
		assert.Nil(t, j.Review())
		assert.Equal(t, kernel.CategoryPlumbing, j.Category())
		assert.False(t, j.CreatedAt().IsZero())
	})

	t.Run("should fail with invalid poster UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		j, err := job.NewJob(kernel.NewUUID(), invalidID, "Title", "", kernel.CategoryCleaning,
			validLocation(t), "Somewhere, City", 10, time.Now(), "09:00", "10:00")

		require.Error(t, err)
		assert.Nil(t, j)
	})

	t.Run("should fail with missing title", func(t *testing.T) {
		j, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), "  ", "", kernel.CategoryCleaning,
			validLocation(t), "Somewhere, City", 10, time.Now(), "09:00", "10:00")

		require.Error(t, err)
		assert.Nil(t, j)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with invalid category", func(t *testing.T) {
		j, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), "Title", "", kernel.Category("welding"),
			validLocation(t), "Somewhere, City", 10, time.Now(), "09:00", "10:00")

		require.Error(t, err)
		assert.Nil(t, j)
	})

	t.Run("should fail with unconstructed location", func(t *testing.T) {
		var location kernel.GeoPoint

		j, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), "Title", "", kernel.CategoryCleaning,
			location, "Somewhere, City", 10, time.Now(), "09:00", "10:00")

		require.Error(t, err)
		assert.Nil(t, j)
	})

	t.Run("should fail with negative budget", func(t *testing.T) {
		j, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), "Title", "", kernel.CategoryCleaning,
			validLocation(t), "Somewhere, City", -1, time.Now(), "09:00", "10:00")

		require.Error(t, err)
		assert.Nil(t, j)
		assert.Contains(t, err.Error(), "budget is invalid")
	})

	t.Run("should accept zero budget", func(t *testing.T) {
		j, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), "Title", "", kernel.CategoryCleaning,
			validLocation(t), "Somewhere, City", 0, time.Now(), "09:00", "10:00")

		require.NoError(t, err)
		assert.Zero(t, j.Budget())
	})

	t.Run("should fail with malformed window time", func(t *testing.T) {
		j, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), "Title", "", kernel.CategoryCleaning,
			validLocation(t), "Somewhere, City", 10, time.Now(), "25:99", "10:00")

		require.Error(t, err)
		assert.Nil(t, j)
	})
}

func TestJob_Validate(t *testing.T) {
	t.Run("constructed job is valid", func(t *testing.T) {
		assert.NoError(t, newPendingJob(t).Validate())
	})

	t.Run("zero value job is invalid", func(t *testing.T) {
		var j job.Job
		assert.Equal(t, job.ErrJobIsNotConstructed, j.Validate())
	})

	t.Run("nil job is invalid", func(t *testing.T) {
		var j *job.Job
		assert.Equal(t, job.ErrJobIsNotConstructed, j.Validate())
	})
}

func TestJob_Accept(t *testing.T) {
	t.Run("pending job can be accepted", func(t *testing.T) {
		j := newPendingJob(t)
		workerID := kernel.NewUUID()

		require.NoError(t, j.Accept(workerID))

		assert.Equal(t, job.InProgress, j.Status())
		require.NotNil(t, j.Worker())
		assert.True(t, j.Worker().IsEqual(workerID))
	})

	t.Run("second accept conflicts and keeps assignment", func(t *testing.T) {
		j := newPendingJob(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, j.Accept(first))
		err := j.Accept(second)

		require.Error(t, err)
		assert.Equal(t, job.InProgress, j.Status())
		require.NotNil(t, j.Worker())
		assert.True(t, j.Worker().IsEqual(first), "assignment must stay with the first worker")
	})

	t.Run("invalid worker ID is rejected", func(t *testing.T) {
		j := newPendingJob(t)
		var invalidID kernel.UUID

		require.Error(t, j.Accept(invalidID))
		assert.Equal(t, job.Pending, j.Status())
		assert.Nil(t, j.Worker())
	})
}

func TestJob_StatusTransitions(t *testing.T) {
	t.Run("in progress job can be completed", func(t *testing.T) {
		j := newPendingJob(t)
		require.NoError(t, j.Accept(kernel.NewUUID()))

		require.NoError(t, j.Complete())
		assert.Equal(t, job.Completed, j.Status())
	})

	t.Run("pending job cannot be completed", func(t *testing.T) {
		j := newPendingJob(t)
		require.Error(t, j.Complete())
		assert.Equal(t, job.Pending, j.Status())
	})

	t.Run("pending job can be cancelled", func(t *testing.T) {
		j := newPendingJob(t)
		require.NoError(t, j.Cancel())
		assert.Equal(t, job.Cancelled, j.Status())
	})

	t.Run("completed job cannot be cancelled", func(t *testing.T) {
		j := newPendingJob(t)
		require.NoError(t, j.Accept(kernel.NewUUID()))
		require.NoError(t, j.Complete())

		require.Error(t, j.Cancel())
		assert.Equal(t, job.Completed, j.Status())
	})

	t.Run("transition to requested status routes through rules", func(t *testing.T) {
		j := newPendingJob(t)
		require.NoError(t, j.Accept(kernel.NewUUID()))

		require.NoError(t, j.TransitionStatusTo(job.Completed))
		assert.Equal(t, job.Completed, j.Status())

		require.Error(t, j.TransitionStatusTo(job.Pending))
	})
}

func TestJob_SubmitReview(t *testing.T) {
	completedJob := func(t *testing.T) *job.Job {
		t.Helper()
		j := newPendingJob(t)
		require.NoError(t, j.Accept(kernel.NewUUID()))
		require.NoError(t, j.Complete())
		return j
	}

	t.Run("completed job accepts one review", func(t *testing.T) {
		j := completedJob(t)

		require.NoError(t, j.SubmitReview(4, "solid work"))

		require.NotNil(t, j.Rating())
		assert.Equal(t, 4.0, *j.Rating())
		require.NotNil(t, j.Review())
		assert.Equal(t, "solid work", *j.Review())
	})

	t.Run("second review is rejected", func(t *testing.T) {
		j := completedJob(t)
		require.NoError(t, j.SubmitReview(5, "great"))

		err := j.SubmitReview(1, "changed my mind")
		require.ErrorIs(t, err, job.ErrJobAlreadyReviewed)
		assert.Equal(t, 5.0, *j.Rating())
	})

	t.Run("pending job cannot be reviewed", func(t *testing.T) {
		j := newPendingJob(t)
		require.Error(t, j.SubmitReview(4, "premature"))
		assert.Nil(t, j.Rating())
	})

	t.Run("rating outside bounds is rejected", func(t *testing.T) {
		j := completedJob(t)
		require.ErrorIs(t, j.SubmitReview(0, "bad"), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, j.SubmitReview(5.5, "too good"), errs.ErrValueIsOutOfRange)
		assert.Nil(t, j.Rating())
	})
}

func TestJob_ApproximateAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
	}{
		{
			name:    "street segment stripped",
			address: "12 Baker Street, Westfield, Springfield",
			want:    "Westfield, Springfield",
		},
		{
			name:    "single comma",
			address: "Flat 4B, Rivertown",
			want:    "Rivertown",
		},
		{
			name:    "no comma returned unchanged",
			address: "Rivertown",
			want:    "Rivertown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), "Title", "",
				kernel.CategoryCleaning, validLocation(t), tt.address, 10,
				time.Now(), "09:00", "10:00")
			require.NoError(t, err)
			assert.Equal(t, tt.want, j.ApproximateAddress())
		})
	}
}

func TestJob_LocationDisclosureTiming(t *testing.T) {
	deadline := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	j, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), "Title", "",
		kernel.CategoryPlumbing, validLocation(t), "Somewhere, City", 10,
		deadline, "10:00", "12:00")
	require.NoError(t, err)

	t.Run("start time combines deadline date and timeStart", func(t *testing.T) {
		start, startErr := j.StartTime()
		require.NoError(t, startErr)
		assert.Equal(t, time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC), start)
	})

	t.Run("reveal time is three hours before start", func(t *testing.T) {
		reveal, revealErr := j.RevealTime()
		require.NoError(t, revealErr)
		assert.Equal(t, time.Date(2025, time.March, 10, 7, 0, 0, 0, time.UTC), reveal)
	})

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{
			name: "hidden five minutes before reveal",
			now:  time.Date(2025, time.March, 10, 6, 55, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "revealed exactly at the boundary",
			now:  time.Date(2025, time.March, 10, 7, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "revealed five minutes after",
			now:  time.Date(2025, time.March, 10, 7, 5, 0, 0, time.UTC),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			revealed, revealErr := j.IsLocationRevealed(tt.now)
			require.NoError(t, revealErr)
			assert.Equal(t, tt.want, revealed)
		})
	}
}

func TestRestoreJob(t *testing.T) {
	t.Run("restores full state", func(t *testing.T) {
		id := kernel.NewUUID()
		clientID := kernel.NewUUID()
		workerID := kernel.NewUUID()
		rating := 4.5
		review := "good"
		createdAt := time.Date(2025, time.February, 1, 12, 0, 0, 0, time.UTC)

		j, err := job.RestoreJob(id, clientID, &workerID, "Title", "desc",
			kernel.CategoryRoofing, validLocation(t), "Somewhere, City", 200,
			time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), "08:00", "17:00",
			job.Completed, &rating, &review, createdAt)

		require.NoError(t, err)
		assert.Equal(t, job.Completed, j.Status())
		require.NotNil(t, j.Worker())
		assert.True(t, j.Worker().IsEqual(workerID))
		assert.Equal(t, rating, *j.Rating())
		assert.Equal(t, createdAt, j.CreatedAt())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		j, err := job.RestoreJob(kernel.NewUUID(), kernel.NewUUID(), nil, "Title", "",
			kernel.CategoryRoofing, validLocation(t), "Somewhere, City", 200,
			time.Now(), "08:00", "17:00", job.Unknown, nil, nil, time.Now())

		require.Error(t, err)
		assert.Nil(t, j)
	})
}
