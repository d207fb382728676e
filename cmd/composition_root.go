package cmd

import (
	"log/slog"

	"finder/internal/adapters/in/http"
	"finder/internal/adapters/out/postgres"
	"finder/internal/core/application/usecases/commands"
	"finder/internal/core/application/usecases/queries"
	"finder/internal/core/ports"
	"finder/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases and background jobs together.
// All handlers share the same unit of work factory over one database pool.
type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	pushSender    ports.PushSender
	categoryCache queries.CategoryCache
	logger        *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	pushSender ports.PushSender,
	categoryCache queries.CategoryCache,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		pushSender:    pushSender,
		categoryCache: categoryCache,
		logger:        logger,
	}
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateJobCommandHandler(f)
}

func (c *CompositionRoot) CreateNotifyWorkersCommandHandler() commands.NotifyWorkersCommandHandler {
	return commands.NewNotifyWorkersCommandHandler(c.newUoWFactory(), c.pushSender, c.logger)
}

func (c *CompositionRoot) CreateAcceptJobCommandHandler() commands.AcceptJobCommandHandler {
	return commands.NewAcceptJobCommandHandler(c.newUoWFactory())
}

func (c *CompositionRoot) CreateUpdateJobStatusCommandHandler() commands.UpdateJobStatusCommandHandler {
	return commands.NewUpdateJobStatusCommandHandler(c.newUoWFactory())
}

func (c *CompositionRoot) CreateSubmitReviewCommandHandler() commands.SubmitReviewCommandHandler {
	return commands.NewSubmitReviewCommandHandler(c.newUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateUpdateWorkerLocationCommandHandler() commands.UpdateWorkerLocationCommandHandler {
	return commands.NewUpdateWorkerLocationCommandHandler(c.newWorkerUoWFactory())
}

func (c *CompositionRoot) CreateUpdateWorkerSkillsCommandHandler() commands.UpdateWorkerSkillsCommandHandler {
	return commands.NewUpdateWorkerSkillsCommandHandler(c.newWorkerUoWFactory())
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(c.newWorkerUoWFactory())
}

func (c *CompositionRoot) CreateReconcileRatingsCommandHandler() commands.ReconcileRatingsCommandHandler {
	return commands.NewReconcileRatingsCommandHandler(c.newUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGetAvailableJobsQueryHandler() queries.GetAvailableJobsQueryHandler {
	return queries.NewGetAvailableJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNearbyJobsQueryHandler() queries.GetNearbyJobsQueryHandler {
	return queries.NewGetNearbyJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobLocationQueryHandler() queries.GetJobLocationQueryHandler {
	return queries.NewGetJobLocationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCategoriesQueryHandler() queries.GetCategoriesQueryHandler {
	return queries.NewGetCategoriesQueryHandler(c.categoryCache, c.logger)
}

func (c *CompositionRoot) CreateGetWorkerNotificationsQueryHandler() queries.GetWorkerNotificationsQueryHandler {
	return queries.NewGetWorkerNotificationsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the inbound HTTP adapter with every handler.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateJobCommandHandler(),
		c.CreateNotifyWorkersCommandHandler(),
		c.CreateAcceptJobCommandHandler(),
		c.CreateUpdateJobStatusCommandHandler(),
		c.CreateSubmitReviewCommandHandler(),
		c.CreateUpdateWorkerLocationCommandHandler(),
		c.CreateUpdateWorkerSkillsCommandHandler(),
		c.CreateMarkNotificationReadCommandHandler(),
		c.CreateGetAvailableJobsQueryHandler(),
		c.CreateGetNearbyJobsQueryHandler(),
		c.CreateGetJobLocationQueryHandler(),
		c.CreateGetCategoriesQueryHandler(),
		c.CreateGetWorkerNotificationsQueryHandler(),
	)
}

// CreateJobManager assembles the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReconcileRatingsCommandHandler(), c.logger)
}

func (c *CompositionRoot) newUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) newWorkerUoWFactory() commands.WorkerUoWFactory {
	return FuncWorkerUoWFactory(func() commands.WorkerUoW {
		return c.uowFactory.Create()
	})
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncWorkerUoWFactory func() commands.WorkerUoW

func (f FuncWorkerUoWFactory) Create() commands.WorkerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
