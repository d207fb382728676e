package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"finder/internal/pkg/errs"
)

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusForError maps domain error classes to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// CreateJobRequest is the payload for posting a new job.
type CreateJobRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Address     string  `json:"address"`
	Budget      float64 `json:"budget"`
	Deadline    string  `json:"deadline"`
	TimeStart   string  `json:"time_start"`
	TimeEnd     string  `json:"time_end"`
}

// CreateJobResponse returns the identifier assigned to the new job.
type CreateJobResponse struct {
	ID string `json:"id"`
}

// UpdateJobStatusRequest carries the target status for a transition.
type UpdateJobStatusRequest struct {
	Status string `json:"status"`
}

// SubmitReviewRequest is the payload for reviewing a completed job.
type SubmitReviewRequest struct {
	Rating float64 `json:"rating"`
	Review string  `json:"review"`
}

// UpdateLocationRequest is the payload for updating a worker's location.
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UpdateSkillsRequest is the payload for replacing a worker's skill list.
type UpdateSkillsRequest struct {
	Skills []string `json:"skills"`
}

// JobListing is one row of the available or nearby job boards. DistanceKm is
// present only on the proximity listing.
type JobListing struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	ApproximateAddress string   `json:"approximate_address"`
	Budget             float64  `json:"budget"`
	Deadline           string   `json:"deadline"`
	TimeStart          string   `json:"time_start"`
	TimeEnd            string   `json:"time_end"`
	DistanceKm         *float64 `json:"distance_km,omitempty"`
	CreatedAt          string   `json:"created_at"`
}

// JobLocation is the disclosure decision for a job's exact location.
// Latitude, longitude and address are present only when revealed.
type JobLocation struct {
	Revealed   bool     `json:"revealed"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	Address    string   `json:"address,omitempty"`
	RevealTime string   `json:"reveal_time"`
}

// WorkerNotification is one row of the worker's notification feed.
type WorkerNotification struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Message   string  `json:"message"`
	JobID     *string `json:"job_id,omitempty"`
	IsRead    bool    `json:"is_read"`
	CreatedAt string  `json:"created_at"`
}

// CategoriesResponse lists the supported job categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseRadius parses a non-negative radius query parameter.
func parseRadius(raw string) (float64, error) {
	radius, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if radius < 0 {
		return 0, strconv.ErrRange
	}
	return radius, nil
}
