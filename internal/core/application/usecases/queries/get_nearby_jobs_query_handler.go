package queries

import (
	"context"
	"math"

	"gorm.io/gorm"

	"finder/internal/core/domain/model/job"
	"finder/internal/core/domain/model/worker"
	"finder/internal/core/domain/services"
	"finder/internal/pkg/errs"
)

// maxNearbyJobs caps the proximity listing.
const maxNearbyJobs = 20

// kmPerDegreeLat is the approximate surface distance of one degree of
// latitude, used to over-approximate the radius as a bounding box.
const kmPerDegreeLat = 111.0

// GetNearbyJobsQueryHandler serves the proximity job listing.
//
// The store does the cheap part: a bounding-box prefilter over pending,
// unassigned jobs, newest first. The handler then applies what SQL cannot
// express cleanly without a geo extension: the exact Haversine distance
// cut-off and the strict category match, both via the domain services.
type GetNearbyJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetNearbyJobsQueryHandler creates a handler for proximity job queries.
// Requires a GORM database connection for query execution.
func NewGetNearbyJobsQueryHandler(db *gorm.DB) GetNearbyJobsQueryHandler {
	return GetNearbyJobsQueryHandler{db: db}
}

// Handle executes the proximity listing query.
// Returns at most 20 matches ordered newest first, each annotated with its
// distance and the approximate address. A worker without a registered
// location gets a value-required error.
func (h GetNearbyJobsQueryHandler) Handle(
	ctx context.Context,
	query GetNearbyJobsQuery,
) ([]NearbyJobResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	w, err := loadWorkerProfile(ctx, h.db, query.WorkerID())
	if err != nil {
		return nil, err
	}

	if w.Location() == nil {
		return nil, errs.NewValueIsRequiredError("worker location")
	}

	radiusKm := query.RadiusKm()
	if radiusKm <= 0 {
		radiusKm = w.ServiceRadiusKm()
	}

	candidates, err := h.candidatesInBox(ctx, w, radiusKm)
	if err != nil {
		return nil, err
	}

	matches, err := services.NewJobMatcher().StrictMatch(w, candidates, radiusKm)
	if err != nil {
		return nil, err
	}

	if len(matches) > maxNearbyJobs {
		matches = matches[:maxNearbyJobs]
	}

	responses := make([]NearbyJobResponse, 0, len(matches))
	for _, match := range matches {
		responses = append(responses, toNearbyJobResponse(match))
	}

	return responses, nil
}

// candidatesInBox runs the bounding-box prefilter. The box over-approximates
// the radius circle; longitude degrees shrink with latitude, hence the
// cosine correction.
func (h GetNearbyJobsQueryHandler) candidatesInBox(
	ctx context.Context,
	w *worker.Worker,
	radiusKm float64,
) ([]*job.Job, error) {
	coordinates := w.Location().Coordinates()
	lng, lat := coordinates[0], coordinates[1]

	latDelta := radiusKm / kmPerDegreeLat
	// cos approaches 0 at the poles, blowing the delta up to infinity; 180
	// degrees already spans every longitude.
	lngDelta := radiusKm / (kmPerDegreeLat * math.Cos(lat*math.Pi/180))
	if lngDelta > 180 || math.IsInf(lngDelta, 1) || math.IsNaN(lngDelta) {
		lngDelta = 180
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobColumns+`
		FROM jobs
		WHERE status = ?
		  AND worker_id IS NULL
		  AND latitude BETWEEN ? AND ?
		  AND longitude BETWEEN ? AND ?
		ORDER BY created_at DESC
	`, job.Pending.String(),
		lat-latDelta, lat+latDelta,
		lng-lngDelta, lng+lngDelta,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := make([]*job.Job, 0)
	for rows.Next() {
		j, scanErr := scanJobRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		candidates = append(candidates, j)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return candidates, nil
}

func toNearbyJobResponse(match services.JobMatch) NearbyJobResponse {
	j := match.Job
	return NearbyJobResponse{
		ID:                 j.ID(),
		Title:              j.Title(),
		Description:        j.Description(),
		Category:           j.Category(),
		ApproximateAddress: j.ApproximateAddress(),
		Budget:             j.Budget(),
		Deadline:           j.Deadline(),
		TimeStart:          j.TimeStart(),
		TimeEnd:            j.TimeEnd(),
		DistanceKm:         match.DistanceKm,
		CreatedAt:          j.CreatedAt(),
	}
}
