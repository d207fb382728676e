package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"finder/internal/core/domain/model/kernel"
	"finder/internal/core/domain/model/worker"
	"finder/internal/pkg/errs"
)

// loadWorkerProfile reads one worker row and maps it back onto the aggregate,
// without the notification feed. A missing row is an ObjectNotFoundError; a
// worker who never registered a location is restored with a nil location and
// the caller decides whether that is acceptable.
func loadWorkerProfile(ctx context.Context, db *gorm.DB, workerID kernel.UUID) (*worker.Worker, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id, user_id, longitude, latitude, skills, categories,
			service_radius_km, push_subscription, rating, completed_jobs
		FROM workers
		WHERE id = ?
	`, workerID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("worker", workerID.String())
	}

	var (
		id               uuid.UUID
		userID           uuid.UUID
		longitude        sql.NullFloat64
		latitude         sql.NullFloat64
		skillsRaw        []byte
		categoriesRaw    []byte
		serviceRadiusKm  float64
		pushSubscription sql.NullString
		rating           float64
		completedJobs    int
	)

	if err = rows.Scan(
		&id, &userID, &longitude, &latitude, &skillsRaw, &categoriesRaw,
		&serviceRadiusKm, &pushSubscription, &rating, &completedJobs,
	); err != nil {
		return nil, err
	}

	profileID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	accountID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if latitude.Valid && longitude.Valid {
		point, locErr := kernel.NewGeoPoint(latitude.Float64, longitude.Float64)
		if locErr != nil {
			return nil, locErr
		}
		location = &point
	}

	var skills []string
	if len(skillsRaw) > 0 {
		if err = json.Unmarshal(skillsRaw, &skills); err != nil {
			return nil, err
		}
	}
	var categories []kernel.Category
	if len(categoriesRaw) > 0 {
		if err = json.Unmarshal(categoriesRaw, &categories); err != nil {
			return nil, err
		}
	}

	var subscription *string
	if pushSubscription.Valid {
		subscription = &pushSubscription.String
	}

	return worker.RestoreWorker(
		profileID, accountID, location, skills, categories,
		serviceRadiusKm, subscription, rating, completedJobs, nil,
	)
}
