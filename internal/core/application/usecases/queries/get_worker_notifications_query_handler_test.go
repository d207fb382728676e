package queries_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "finder/internal/adapters/out/postgres"
	"finder/internal/adapters/out/postgres/jobrepo"
	"finder/internal/adapters/out/postgres/workerrepo"
	"finder/internal/core/application/usecases/queries"
	"finder/internal/core/domain/model/kernel"
	"finder/internal/core/domain/model/worker"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetWorkerNotificationsQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	uowFactory *postgresadapter.GormUnitOfWorkFactory
	handler    queries.GetWorkerNotificationsQueryHandler
}

func (suite *GetWorkerNotificationsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&jobrepo.JobDTO{}, &workerrepo.WorkerDTO{}, &workerrepo.NotificationDTO{})
	suite.Require().NoError(err)

	suite.uowFactory = postgresadapter.NewGormUnitOfWorkFactory(db)
	suite.handler = queries.NewGetWorkerNotificationsQueryHandler(db)
}

func (suite *GetWorkerNotificationsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetWorkerNotificationsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE jobs, workers CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetWorkerNotificationsQueryHandlerTestSuite) saveWorker(w *worker.Worker) {
	ctx := context.Background()
	uow := suite.uowFactory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.WorkerRepository().Add(ctx, w))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *GetWorkerNotificationsQueryHandlerTestSuite) newNotification(
	message string,
	jobID *kernel.UUID,
) *worker.Notification {
	n, err := worker.NewNotification(kernel.NewUUID(), worker.NotificationNewJob, message, jobID)
	suite.Require().NoError(err)
	return n
}

func (suite *GetWorkerNotificationsQueryHandlerTestSuite) TestHandle_NoNotifications_ReturnsEmptySlice() {
	w, err := worker.NewWorker(kernel.NewUUID(), kernel.NewUUID(), []string{"plumbing"})
	suite.Require().NoError(err)
	suite.saveWorker(w)

	query, err := queries.NewGetWorkerNotificationsQuery(w.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetWorkerNotificationsQueryHandlerTestSuite) TestHandle_ReturnsOwnNotificationsNewestFirst() {
	w, err := worker.NewWorker(kernel.NewUUID(), kernel.NewUUID(), []string{"plumbing"})
	suite.Require().NoError(err)

	jobID := kernel.NewUUID()
	older := suite.newNotification("New job posted: Fix leaking sink", &jobID)
	newer := suite.newNotification("New job posted: Unclog drain", nil)
	suite.Require().NoError(w.AddNotification(older))
	suite.Require().NoError(w.AddNotification(newer))
	suite.saveWorker(w)

	// Notification timestamps land within the same instant on fast machines;
	// push them apart so the ordering assertion is deterministic.
	err = suite.db.Exec("UPDATE notifications SET created_at = created_at - interval '1 hour' WHERE id = ?",
		older.ID().Bytes()).Error
	suite.Require().NoError(err)

	other, err := worker.NewWorker(kernel.NewUUID(), kernel.NewUUID(), []string{"roofing"})
	suite.Require().NoError(err)
	suite.Require().NoError(other.AddNotification(suite.newNotification("New job posted: Patch the roof", nil)))
	suite.saveWorker(other)

	query, err := queries.NewGetWorkerNotificationsQuery(w.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(newer.ID(), result[0].ID)
	suite.Equal(older.ID(), result[1].ID)
	suite.Equal(worker.NotificationNewJob, result[0].Type)
	suite.Require().NotNil(result[1].JobID)
	suite.True(result[1].JobID.IsEqual(jobID))
	suite.False(result[0].IsRead)
}

func (suite *GetWorkerNotificationsQueryHandlerTestSuite) TestHandle_ReadFlagSurvivesRoundTrip() {
	w, err := worker.NewWorker(kernel.NewUUID(), kernel.NewUUID(), []string{"plumbing"})
	suite.Require().NoError(err)

	n := suite.newNotification("New job posted: Fix leaking sink", nil)
	suite.Require().NoError(w.AddNotification(n))
	suite.Require().NoError(w.MarkNotificationRead(n.ID()))
	suite.saveWorker(w)

	query, err := queries.NewGetWorkerNotificationsQuery(w.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].IsRead)
}

func TestGetWorkerNotificationsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetWorkerNotificationsQueryHandlerTestSuite))
}
