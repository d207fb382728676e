package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"finder/internal/core/domain/model/job"
	"finder/internal/core/domain/model/kernel"
	"finder/internal/core/domain/model/worker"
	"finder/internal/core/domain/services"
	"finder/internal/core/ports"
)

// NotifyWorkersCommandHandler fans a posted job out to matching workers.
//
// The dispatch contract is best-effort all, await all, fail none: every
// matching worker is attempted in its own goroutine with its own transaction,
// every attempt is awaited before the handler returns, and no per-worker
// failure propagates to a sibling or to the caller. A worker with a stored
// push subscription additionally gets a push attempt after the notification
// record is committed; push failures are only logged.
//
// Matching is the fuzzy skill match with no radius bound: fan-out is
// recall-oriented, the precise radius filter belongs to the listing query.
type NotifyWorkersCommandHandler struct {
	uowFactory UoWFactory
	pushSender ports.PushSender
	logger     *slog.Logger
}

// NewNotifyWorkersCommandHandler creates a handler for notification fan-out.
// Requires a UoWFactory for per-worker transactions and a PushSender for the
// optional push attempt.
func NewNotifyWorkersCommandHandler(
	uowFactory UoWFactory,
	pushSender ports.PushSender,
	logger *slog.Logger,
) NotifyWorkersCommandHandler {
	return NotifyWorkersCommandHandler{
		uowFactory: uowFactory,
		pushSender: pushSender,
		logger:     logger.With("component", "notify_workers"),
	}
}

// Handle dispatches notifications for the posted job.
// Loads the job and the full worker set, evaluates the fuzzy match, then fans
// out one goroutine per matching worker. Always returns nil once the job and
// workers were loaded; dispatch failures are logged per worker.
func (h NotifyWorkersCommandHandler) Handle(ctx context.Context, cmd NotifyWorkersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	j, candidates, err := h.load(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if err = j.Category().Validate(); err != nil {
		h.logger.Warn("job has no usable category, skipping dispatch",
			"job_id", j.ID().String())
		return nil
	}

	matched, err := services.NewJobMatcher().FuzzyMatch(j, candidates)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	for _, w := range matched {
		wg.Add(1)
		go func(w *worker.Worker) {
			defer wg.Done()
			h.notifyOne(ctx, j, w)
		}(w)
	}
	wg.Wait()

	h.logger.Info("dispatch finished",
		"job_id", j.ID().String(),
		"matched", len(matched),
		"candidates", len(candidates))
	return nil
}

func (h NotifyWorkersCommandHandler) load(
	ctx context.Context,
	jobID kernel.UUID,
) (*job.Job, []*worker.Worker, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	j, err := uow.JobRepository().Get(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}

	candidates, err := uow.WorkerRepository().GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return j, candidates, nil
}

// notifyOne appends and persists one notification record in its own
// transaction, then attempts the push. Failures are logged and swallowed so
// one worker can never affect another.
func (h NotifyWorkersCommandHandler) notifyOne(ctx context.Context, j *job.Job, w *worker.Worker) {
	jobID := j.ID()
	message := fmt.Sprintf("New job posted: %s", j.Title())

	notification, err := worker.NewNotification(kernel.NewUUID(), worker.NotificationNewJob, message, &jobID)
	if err != nil {
		h.logger.Warn("failed to build notification",
			"job_id", jobID.String(), "worker_id", w.ID().String(), "error", err)
		return
	}

	if err = h.persist(ctx, w, notification); err != nil {
		h.logger.Warn("failed to persist notification",
			"job_id", jobID.String(), "worker_id", w.ID().String(), "error", err)
		return
	}

	if w.PushSubscription() == nil {
		return
	}

	push := ports.PushNotification{
		Title: "New job nearby",
		Body:  message,
		Data:  map[string]string{"job_id": jobID.String()},
	}
	if err = h.pushSender.Send(ctx, *w.PushSubscription(), push); err != nil {
		h.logger.Warn("push delivery failed",
			"job_id", jobID.String(), "worker_id", w.ID().String(), "error", err)
	}
}

func (h NotifyWorkersCommandHandler) persist(
	ctx context.Context,
	w *worker.Worker,
	notification *worker.Notification,
) error {
	if err := w.AddNotification(notification); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.WorkerRepository().Update(ctx, w); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
