package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"finder/internal/core/domain/model/job"
	"finder/internal/core/domain/model/kernel"
	"finder/internal/core/domain/model/worker"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newPendingJob(t *testing.T, category kernel.Category) *job.Job {
	t.Helper()
	j, err := job.NewJob(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Fix kitchen sink",
		"Leaking trap under the sink",
		category,
		testLocation(t),
		"12 Baker Street, Westfield, Springfield",
		150,
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		"10:00",
		"12:00",
	)
	require.NoError(t, err)
	return j
}

func newRegisteredWorker(t *testing.T, skills []string) *worker.Worker {
	t.Helper()
	w, err := worker.NewWorker(kernel.NewUUID(), kernel.NewUUID(), skills)
	require.NoError(t, err)
	require.NoError(t, w.SetLocation(testLocation(t)))
	return w
}
