package job

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"finder/internal/core/domain/model/kernel"
	"finder/internal/pkg/errs"
)

// RevealLeadTime is how long before the scheduled start the exact job
// location becomes visible to the assigned worker.
const RevealLeadTime = 3 * time.Hour

// clockLayout is the wire format for the scheduling window ("HH:MM").
const clockLayout = "15:04"

var (
	// ErrJobIsNotConstructed is returned when a Job instance was not created
	// through the NewJob or RestoreJob factory methods.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob constructors")

	// ErrJobAlreadyReviewed is returned when a second review is submitted for
	// the same job. The rating/review pair is set at most once.
	ErrJobAlreadyReviewed = errors.New("job has already been reviewed")
)

// Job represents a posted job in the system. It is the aggregate root that
// manages the job lifecycle from posting through acceptance to completion
// and review.
//
// Job follows these invariants:
//   - Must have a valid unique identifier and poster identity
//   - Must have a valid location, address and category
//   - Budget must be non-negative
//   - Scheduling window times are clock values in "HH:MM" form
//   - Status transitions follow the Status state machine
//   - The rating/review pair is set at most once, only on a completed job
//   - Can only be created through NewJob or RestoreJob
type Job struct {
	// id is the unique identifier for the job
	id kernel.UUID

	// clientID identifies the poster
	clientID kernel.UUID

	// workerID is the assigned worker's ID (nil while unassigned)
	workerID *kernel.UUID

	// title and description describe the work to be done
	title       string
	description string

	// category is the single closed-enumeration tag used for matching
	category kernel.Category

	// location is the exact job site; disclosure is time-gated
	location kernel.GeoPoint

	// address is the human-readable job site address
	address string

	// budget is the offered amount, non-negative
	budget float64

	// deadline carries the scheduled date; timeStart/timeEnd the clock window
	deadline  time.Time
	timeStart string
	timeEnd   string

	// status represents the current state in the job lifecycle
	status Status

	// rating and review are set once, after completion
	rating *float64
	review *string

	createdAt time.Time

	// isConstructed ensures the job was created via a constructor
	isConstructed bool
}

// NewJob creates a new Job instance with validation. The job starts in
// Pending status, unassigned and unreviewed.
//
// Parameters:
//   - id: Unique identifier for the job
//   - clientID: Identity of the poster
//   - title: Short description of the work (required)
//   - description: Free-text details, may be empty
//   - category: Single category tag from the closed enumeration
//   - location: Validated job site coordinates
//   - address: Human-readable job site address (required)
//   - budget: Offered amount, must be non-negative
//   - deadline: Scheduled date of the work
//   - timeStart, timeEnd: Scheduling window clock times in "HH:MM" form
//
// Returns:
//   - *Job: The created job if all validations pass
//   - error: Validation error if any parameter is invalid
func NewJob(
	id kernel.UUID,
	clientID kernel.UUID,
	title string,
	description string,
	category kernel.Category,
	location kernel.GeoPoint,
	address string,
	budget float64,
	deadline time.Time,
	timeStart string,
	timeEnd string,
) (*Job, error) {
	j := &Job{
		description:   description,
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setClientID(clientID),
		j.setTitle(title),
		j.setCategory(category),
		j.setLocation(location),
		j.setAddress(address),
		j.setBudget(budget),
		j.setDeadline(deadline),
		j.setWindow(timeStart, timeEnd),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// RestoreJob reconstructs a Job aggregate from persistence, bypassing the
// creation-time defaults but not the invariants. Used by repository adapters
// only.
func RestoreJob(
	id kernel.UUID,
	clientID kernel.UUID,
	workerID *kernel.UUID,
	title string,
	description string,
	category kernel.Category,
	location kernel.GeoPoint,
	address string,
	budget float64,
	deadline time.Time,
	timeStart string,
	timeEnd string,
	status Status,
	rating *float64,
	review *string,
	createdAt time.Time,
) (*Job, error) {
	j, err := NewJob(id, clientID, title, description, category, location, address,
		budget, deadline, timeStart, timeEnd)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if workerID != nil {
		if err = workerID.Validate(); err != nil {
			return nil, err
		}
		id := *workerID
		j.workerID = &id
	}

	j.status = status
	j.rating = rating
	j.review = review
	j.createdAt = createdAt
	return j, nil
}

// Validate ensures the Job instance was properly constructed through a
// constructor. This prevents bypassing validation by directly instantiating
// the struct.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}

	return nil
}

// IsEqual compares two jobs by their unique identifiers.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// ClientID returns the poster's identity.
func (j *Job) ClientID() kernel.UUID {
	return j.clientID
}

// Worker returns the assigned worker's ID, or nil while unassigned.
func (j *Job) Worker() *kernel.UUID {
	return j.workerID
}

// Title returns the job title.
func (j *Job) Title() string {
	return j.title
}

// Description returns the free-text job description.
func (j *Job) Description() string {
	return j.description
}

// Category returns the job's single category tag.
func (j *Job) Category() kernel.Category {
	return j.category
}

// Location returns the exact job site coordinates. Callers surfacing job data
// to workers must route through the disclosure gate instead of exposing this
// directly.
func (j *Job) Location() kernel.GeoPoint {
	return j.location
}

// Address returns the exact human-readable address. Subject to the same
// disclosure gating as Location.
func (j *Job) Address() string {
	return j.address
}

// ApproximateAddress returns a coarse form of the address with the first
// comma-delimited segment stripped, hiding street-level detail while keeping
// the area and city. If the address has no comma it is returned unchanged.
func (j *Job) ApproximateAddress() string {
	parts := strings.SplitN(j.address, ",", 2)
	if len(parts) < 2 {
		return j.address
	}
	return strings.TrimSpace(parts[1])
}

// Budget returns the offered amount.
func (j *Job) Budget() float64 {
	return j.budget
}

// Deadline returns the scheduled date of the work.
func (j *Job) Deadline() time.Time {
	return j.deadline
}

// TimeStart returns the scheduling window start as "HH:MM".
func (j *Job) TimeStart() string {
	return j.timeStart
}

// TimeEnd returns the scheduling window end as "HH:MM".
func (j *Job) TimeEnd() string {
	return j.timeEnd
}

// Status returns the current status of the job.
func (j *Job) Status() Status {
	return j.status
}

// Rating returns the review rating, or nil while unreviewed.
func (j *Job) Rating() *float64 {
	return j.rating
}

// Review returns the review text, or nil while unreviewed.
func (j *Job) Review() *string {
	return j.review
}

// CreatedAt returns the posting time.
func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

// StartTime combines the deadline's date with the timeStart clock value,
// yielding the moment the work is scheduled to begin.
func (j *Job) StartTime() (time.Time, error) {
	clock, err := time.Parse(clockLayout, j.timeStart)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("timeStart", err)
	}

	return time.Date(
		j.deadline.Year(), j.deadline.Month(), j.deadline.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		j.deadline.Location(),
	), nil
}

// RevealTime returns the moment the exact location becomes visible to the
// assigned worker: RevealLeadTime before the scheduled start.
func (j *Job) RevealTime() (time.Time, error) {
	start, err := j.StartTime()
	if err != nil {
		return time.Time{}, err
	}

	return start.Add(-RevealLeadTime), nil
}

// IsLocationRevealed reports whether the exact location is visible at the
// given instant. The boundary is inclusive: at exactly the reveal time the
// location is revealed.
func (j *Job) IsLocationRevealed(now time.Time) (bool, error) {
	revealTime, err := j.RevealTime()
	if err != nil {
		return false, err
	}

	return !now.Before(revealTime), nil
}

// Accept assigns the job to a worker and moves the status to InProgress.
//
// Business rules:
//   - The worker ID must be valid
//   - The job must be in Pending status and unassigned; accepting an already
//     assigned job fails, leaving the assignment unchanged
//
// Parameters:
//   - workerID: The ID of the accepting worker
func (j *Job) Accept(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	newStatus, err := j.status.Accept()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.workerID = &workerID
	return nil
}

// Complete marks the job as finished. Only InProgress jobs can be completed.
func (j *Job) Complete() error {
	newStatus, err := j.status.Complete()
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// Cancel withdraws the job before completion.
func (j *Job) Cancel() error {
	newStatus, err := j.status.Cancel()
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// TransitionStatusTo performs a caller-requested status change, enforcing the
// state machine rules.
func (j *Job) TransitionStatusTo(target Status) error {
	newStatus, err := j.status.TransitionTo(target)
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// SubmitReview attaches the one-time rating/review pair.
//
// Business rules:
//   - The job must be in Completed status
//   - Rating must be within [1..5]
//   - A job is reviewed at most once
func (j *Job) SubmitReview(rating float64, review string) error {
	if j.status != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to review", j.status.String()),
		)
	}

	if j.rating != nil {
		return ErrJobAlreadyReviewed
	}

	if rating < 1 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", rating, 1, 5)
	}

	j.rating = &rating
	j.review = &review
	return nil
}

// setID validates and sets the job's unique identifier.
func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

// setClientID validates and sets the poster identity.
func (j *Job) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	j.clientID = clientID
	return nil
}

func (j *Job) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.NewValueIsRequiredError("title")
	}
	j.title = title
	return nil
}

func (j *Job) setCategory(category kernel.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	j.category = category
	return nil
}

func (j *Job) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	j.location = location
	return nil
}

func (j *Job) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	j.address = address
	return nil
}

func (j *Job) setBudget(budget float64) error {
	if budget < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"budget is invalid", fmt.Errorf("%f is negative", budget))
	}
	j.budget = budget
	return nil
}

func (j *Job) setDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return errs.NewValueIsRequiredError("deadline")
	}
	j.deadline = deadline
	return nil
}

func (j *Job) setWindow(timeStart string, timeEnd string) error {
	if _, err := time.Parse(clockLayout, timeStart); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("timeStart", err)
	}
	if _, err := time.Parse(clockLayout, timeEnd); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("timeEnd", err)
	}

	j.timeStart = timeStart
	j.timeEnd = timeEnd
	return nil
}
