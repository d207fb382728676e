package commands

import (
	"context"
	"errors"

	"finder/internal/core/domain/model/worker"
	"finder/internal/pkg/errs"
)

// UpdateWorkerSkillsCommandHandler handles skill list replacement.
// Categories are re-derived on the aggregate as part of the update; this is
// the only write path that recomputes them. A worker acting for the first
// time has no stored profile yet; the handler creates one on the fly with
// the submitted skills.
type UpdateWorkerSkillsCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewUpdateWorkerSkillsCommandHandler creates a handler for skill updates.
// Requires a WorkerUoWFactory for transactional persistence.
func NewUpdateWorkerSkillsCommandHandler(uowFactory WorkerUoWFactory) UpdateWorkerSkillsCommandHandler {
	return UpdateWorkerSkillsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the skill update command.
func (h UpdateWorkerSkillsCommandHandler) Handle(ctx context.Context, cmd UpdateWorkerSkillsCommand) error {
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
	if errors.Is(err, errs.ErrObjectNotFound) {
		w, err = worker.NewWorker(cmd.WorkerID(), cmd.WorkerID(), cmd.Skills())
		if err != nil {
			return err
		}

		if err = workerRepo.Add(ctx, w); err != nil {
			return err
		}

		return uow.Commit(ctx)
	}
	if err != nil {
		return err
	}

	w.UpdateSkills(cmd.Skills())

	if err = workerRepo.Update(ctx, w); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
