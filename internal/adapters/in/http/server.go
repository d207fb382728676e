// Package http provides the inbound HTTP adapter. It translates REST
// requests into commands and queries, and domain errors into HTTP status
// codes. The caller's identity arrives in the X-User-ID header, injected by
// the API gateway after authentication; this adapter never authenticates.
package http

import (
	"context"
	"net/http"
	"time"

	"finder/internal/core/application/usecases/commands"
	"finder/internal/core/application/usecases/queries"
	"finder/internal/core/domain/model/job"
	"finder/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// userIDHeader carries the authenticated principal's identifier. For job
// posting and reviewing it is the client ID; for worker endpoints it is the
// worker profile ID.
const userIDHeader = "X-User-ID"

// notifyTimeout bounds the background fan-out triggered by job creation.
const notifyTimeout = 30 * time.Second

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createJobHandler            commands.CreateJobCommandHandler
	notifyWorkersHandler        commands.NotifyWorkersCommandHandler
	acceptJobHandler            commands.AcceptJobCommandHandler
	updateJobStatusHandler      commands.UpdateJobStatusCommandHandler
	submitReviewHandler         commands.SubmitReviewCommandHandler
	updateWorkerLocationHandler commands.UpdateWorkerLocationCommandHandler
	updateWorkerSkillsHandler   commands.UpdateWorkerSkillsCommandHandler
	markNotificationReadHandler commands.MarkNotificationReadCommandHandler

	// Query handlers
	getAvailableJobsHandler       queries.GetAvailableJobsQueryHandler
	getNearbyJobsHandler          queries.GetNearbyJobsQueryHandler
	getJobLocationHandler         queries.GetJobLocationQueryHandler
	getCategoriesHandler          queries.GetCategoriesQueryHandler
	getWorkerNotificationsHandler queries.GetWorkerNotificationsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createJobHandler commands.CreateJobCommandHandler,
	notifyWorkersHandler commands.NotifyWorkersCommandHandler,
	acceptJobHandler commands.AcceptJobCommandHandler,
	updateJobStatusHandler commands.UpdateJobStatusCommandHandler,
	submitReviewHandler commands.SubmitReviewCommandHandler,
	updateWorkerLocationHandler commands.UpdateWorkerLocationCommandHandler,
	updateWorkerSkillsHandler commands.UpdateWorkerSkillsCommandHandler,
	markNotificationReadHandler commands.MarkNotificationReadCommandHandler,
	getAvailableJobsHandler queries.GetAvailableJobsQueryHandler,
	getNearbyJobsHandler queries.GetNearbyJobsQueryHandler,
	getJobLocationHandler queries.GetJobLocationQueryHandler,
	getCategoriesHandler queries.GetCategoriesQueryHandler,
	getWorkerNotificationsHandler queries.GetWorkerNotificationsQueryHandler,
) *Server {
	return &Server{
		createJobHandler:              createJobHandler,
		notifyWorkersHandler:          notifyWorkersHandler,
		acceptJobHandler:              acceptJobHandler,
		updateJobStatusHandler:        updateJobStatusHandler,
		submitReviewHandler:           submitReviewHandler,
		updateWorkerLocationHandler:   updateWorkerLocationHandler,
		updateWorkerSkillsHandler:     updateWorkerSkillsHandler,
		markNotificationReadHandler:   markNotificationReadHandler,
		getAvailableJobsHandler:       getAvailableJobsHandler,
		getNearbyJobsHandler:          getNearbyJobsHandler,
		getJobLocationHandler:         getJobLocationHandler,
		getCategoriesHandler:          getCategoriesHandler,
		getWorkerNotificationsHandler: getWorkerNotificationsHandler,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/jobs", s.CreateJob)
	v1.GET("/jobs/available", s.GetAvailableJobs)
	v1.GET("/jobs/nearby", s.GetNearbyJobs)
	v1.POST("/jobs/:jobID/accept", s.AcceptJob)
	v1.PATCH("/jobs/:jobID/status", s.UpdateJobStatus)
	v1.GET("/jobs/:jobID/location", s.GetJobLocation)
	v1.POST("/jobs/:jobID/review", s.SubmitReview)
	v1.PUT("/workers/me/location", s.UpdateWorkerLocation)
	v1.PUT("/workers/me/skills", s.UpdateWorkerSkills)
	v1.GET("/workers/me/notifications", s.GetWorkerNotifications)
	v1.POST("/workers/me/notifications/:notificationID/read", s.MarkNotificationRead)
	v1.GET("/categories", s.GetCategories)
}

// userID extracts and validates the authenticated principal from the request.
func userID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(userIDHeader))
}

// pathUUID extracts and validates a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func domainError(ctx echo.Context, err error) error {
	return errorJSON(ctx, statusForError(err), err.Error())
}

// parseDeadline accepts either a full RFC 3339 timestamp or a bare date.
func parseDeadline(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// CreateJob handles POST /api/v1/jobs - posts a new job and triggers
// notification fan-out to matching workers in the background.
func (s *Server) CreateJob(ctx echo.Context) error {
	clientID, err := userID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing or invalid "+userIDHeader+" header")
	}

	var req CreateJobRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	category, err := kernel.CategoryFromString(req.Category)
	if err != nil {
		return domainError(ctx, err)
	}

	location, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return domainError(ctx, err)
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid deadline: "+req.Deadline)
	}

	jobID := kernel.NewUUID()
	cmd, err := commands.NewCreateJobCommand(jobID, clientID, req.Title, req.Description,
		category, location, req.Address, req.Budget, deadline, req.TimeStart, req.TimeEnd)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.createJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	// Fan-out runs detached from the request so slow push delivery never
	// delays the response. The notify handler swallows per-worker failures.
	if notifyCmd, cmdErr := commands.NewNotifyWorkersCommand(jobID); cmdErr == nil {
		go func() {
			notifyCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()
			_ = s.notifyWorkersHandler.Handle(notifyCtx, notifyCmd)
		}()
	}

	return ctx.JSON(http.StatusCreated, CreateJobResponse{ID: jobID.String()})
}

// GetAvailableJobs handles GET /api/v1/jobs/available - lists open jobs
// matching the worker's skills, without any distance constraint.
func (s *Server) GetAvailableJobs(ctx echo.Context) error {
	workerID, err := userID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing or invalid "+userIDHeader+" header")
	}

	query, err := queries.NewGetAvailableJobsQuery(workerID)
	if err != nil {
		return domainError(ctx, err)
	}

	rows, err := s.getAvailableJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]JobListing, len(rows))
	for i, row := range rows {
		response[i] = JobListing{
			ID:                 row.ID.String(),
			Title:              row.Title,
			Description:        row.Description,
			Category:           row.Category.String(),
			ApproximateAddress: row.ApproximateAddress,
			Budget:             row.Budget,
			Deadline:           formatTime(row.Deadline),
			TimeStart:          row.TimeStart,
			TimeEnd:            row.TimeEnd,
			CreatedAt:          formatTime(row.CreatedAt),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetNearbyJobs handles GET /api/v1/jobs/nearby - lists open jobs within a
// radius of the worker's location, closest first. The optional radius_km
// query parameter overrides the worker's service radius.
func (s *Server) GetNearbyJobs(ctx echo.Context) error {
	workerID, err := userID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing or invalid "+userIDHeader+" header")
	}

	radiusKm := 0.0
	if raw := ctx.QueryParam("radius_km"); raw != "" {
		if radiusKm, err = parseRadius(raw); err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid radius_km: "+raw)
		}
	}

	query, err := queries.NewGetNearbyJobsQuery(workerID, radiusKm)
	if err != nil {
		return domainError(ctx, err)
	}

	rows, err := s.getNearbyJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]JobListing, len(rows))
	for i, row := range rows {
		distance := row.DistanceKm
		response[i] = JobListing{
			ID:                 row.ID.String(),
			Title:              row.Title,
			Description:        row.Description,
			Category:           row.Category.String(),
			ApproximateAddress: row.ApproximateAddress,
			Budget:             row.Budget,
			Deadline:           formatTime(row.Deadline),
			TimeStart:          row.TimeStart,
			TimeEnd:            row.TimeEnd,
			DistanceKm:         &distance,
			CreatedAt:          formatTime(row.CreatedAt),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptJob handles POST /api/v1/jobs/:jobID/accept - claims a pending job
// for the calling worker.
func (s *Server) AcceptJob(ctx echo.Context) error {
	workerID, err := userID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing or invalid "+userIDHeader+" header")
	}

	jobID, err := pathUUID(ctx, "jobID")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid job ID")
	}

	cmd, err := commands.NewAcceptJobCommand(jobID, workerID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.acceptJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateJobStatus handles PATCH /api/v1/jobs/:jobID/status - transitions a
// job to the requested status on behalf of the caller.
func (s *Server) UpdateJobStatus(ctx echo.Context) error {
	requesterID, err := userID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing or invalid "+userIDHeader+" header")
	}

	jobID, err := pathUUID(ctx, "jobID")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid job ID")
	}

	var req UpdateJobStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	target, err := job.StatusFromString(req.Status)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewUpdateJobStatusCommand(jobID, requesterID, target)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.updateJobStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetJobLocation handles GET /api/v1/jobs/:jobID/location - returns the
// job's exact location when the time gate permits, or the reveal time when
// it does not.
func (s *Server) GetJobLocation(ctx echo.Context) error {
	requesterID, err := userID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing or invalid "+userIDHeader+" header")
	}

	jobID, err := pathUUID(ctx, "jobID")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid job ID")
	}

	query, err := queries.NewGetJobLocationQuery(jobID, requesterID)
	if err != nil {
		return domainError(ctx, err)
	}

	disclosure, err := s.getJobLocationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := JobLocation{
		Revealed:   disclosure.Revealed,
		Address:    disclosure.Address,
		RevealTime: formatTime(disclosure.RevealTime),
	}
	if disclosure.Location != nil {
		lat := disclosure.Location.Latitude()
		lng := disclosure.Location.Longitude()
		response.Latitude = &lat
		response.Longitude = &lng
	}

	return ctx.JSON(http.StatusOK, response)
}

// SubmitReview handles POST /api/v1/jobs/:jobID/review - attaches the single
// allowed review to a completed job and refreshes the worker's rating.
func (s *Server) SubmitReview(ctx echo.Context) error {
	clientID, err := userID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing or invalid "+userIDHeader+" header")
	}

	jobID, err := pathUUID(ctx, "jobID")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid job ID")
	}

	var req SubmitReviewRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSubmitReviewCommand(jobID, clientID, req.Rating, req.Review)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.submitReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateWorkerLocation handles PUT /api/v1/workers/me/location.
func (s *Server) UpdateWorkerLocation(ctx echo.Context) error {
	workerID, err := userID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing or invalid "+userIDHeader+" header")
	}

	var req UpdateLocationRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	location, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewUpdateWorkerLocationCommand(workerID, location)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.updateWorkerLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateWorkerSkills handles PUT /api/v1/workers/me/skills - replaces the
// skill list and re-derives the matchable categories.
func (s *Server) UpdateWorkerSkills(ctx echo.Context) error {
	workerID, err := userID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing or invalid "+userIDHeader+" header")
	}

	var req UpdateSkillsRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateWorkerSkillsCommand(workerID, req.Skills)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.updateWorkerSkillsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetWorkerNotifications handles GET /api/v1/workers/me/notifications -
// returns the caller's notification feed, newest first.
func (s *Server) GetWorkerNotifications(ctx echo.Context) error {
	workerID, err := userID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing or invalid "+userIDHeader+" header")
	}

	query, err := queries.NewGetWorkerNotificationsQuery(workerID)
	if err != nil {
		return domainError(ctx, err)
	}

	rows, err := s.getWorkerNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]WorkerNotification, len(rows))
	for i, row := range rows {
		var jobID *string
		if row.JobID != nil {
			id := row.JobID.String()
			jobID = &id
		}
		response[i] = WorkerNotification{
			ID:        row.ID.String(),
			Type:      row.Type.String(),
			Message:   row.Message,
			JobID:     jobID,
			IsRead:    row.IsRead,
			CreatedAt: formatTime(row.CreatedAt),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkNotificationRead handles POST /api/v1/workers/me/notifications/:notificationID/read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	workerID, err := userID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing or invalid "+userIDHeader+" header")
	}

	notificationID, err := pathUUID(ctx, "notificationID")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid notification ID")
	}

	cmd, err := commands.NewMarkNotificationReadCommand(workerID, notificationID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.markNotificationReadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCategories handles GET /api/v1/categories - lists the supported job
// categories from cache, falling back to the built-in set.
func (s *Server) GetCategories(ctx echo.Context) error {
	categories, err := s.getCategoriesHandler.Handle(ctx.Request().Context(), queries.NewGetCategoriesQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CategoriesResponse{Categories: categories})
}
