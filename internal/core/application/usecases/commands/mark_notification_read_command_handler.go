package commands

import (
	"context"
)

// MarkNotificationReadCommandHandler handles read flags on a worker's own
// notification feed. Ownership is implicit: the record is looked up inside
// the requesting worker's aggregate, so a foreign notification simply comes
// back not found.
type MarkNotificationReadCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewMarkNotificationReadCommandHandler creates a handler for read flags.
// Requires a WorkerUoWFactory for transactional persistence.
func NewMarkNotificationReadCommandHandler(uowFactory WorkerUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the read flag command.
func (h MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
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
	w, err := workerRepo.Get(ctx, cmd.WorkerID())
	if err != nil {
		return err
	}

	if err = w.MarkNotificationRead(cmd.NotificationID()); err != nil {
		return err
	}

	if err = workerRepo.Update(ctx, w); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
