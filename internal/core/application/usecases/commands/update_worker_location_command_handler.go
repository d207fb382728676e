package commands

import (
	"context"
	"errors"

	"finder/internal/core/domain/model/worker"
	"finder/internal/pkg/errs"
)

// UpdateWorkerLocationCommandHandler handles worker location updates.
// The new point replaces the stored one wholesale and immediately affects
// proximity listings. A worker acting for the first time has no stored
// profile yet; the handler creates one on the fly before applying the update.
type UpdateWorkerLocationCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewUpdateWorkerLocationCommandHandler creates a handler for location updates.
// Requires a WorkerUoWFactory for transactional persistence.
func NewUpdateWorkerLocationCommandHandler(uowFactory WorkerUoWFactory) UpdateWorkerLocationCommandHandler {
	return UpdateWorkerLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location update command.
func (h UpdateWorkerLocationCommandHandler) Handle(ctx context.Context, cmd UpdateWorkerLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	workerRepo := uow.WorkerRepository()

	created := false
	w, err := workerRepo.Get(ctx, cmd.WorkerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		w, err = worker.NewWorker(cmd.WorkerID(), cmd.WorkerID(), nil)
		created = true
	}
	if err != nil {
		return err
	}

	if err = w.SetLocation(cmd.Location()); err != nil {
		return err
	}

	if created {
		err = workerRepo.Add(ctx, w)
	} else {
		err = workerRepo.Update(ctx, w)
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
