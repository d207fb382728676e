package worker

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"finder/internal/core/domain/model/kernel"
	"finder/internal/pkg/errs"
)

// DefaultServiceRadiusKm is the service radius assigned to a worker profile
// that never declared one.
const DefaultServiceRadiusKm = 100.0

var (
	// ErrWorkerIsNotConstructed is returned when a Worker instance was not
	// created through the NewWorker or RestoreWorker factory methods.
	ErrWorkerIsNotConstructed = errors.New("Worker must be created via NewWorker or RestoreWorker constructors")

	// ErrLocationIsNotSet is returned by location-dependent operations when
	// the worker never registered a usable location.
	ErrLocationIsNotSet = errs.NewValueIsRequiredError("worker location is not set")
)

// Worker is the aggregate root for a worker profile. It owns the worker's
// registered location, the derived category set, the service radius, the
// rating aggregate and the ordered list of notification records.
//
// Worker follows these invariants:
//   - Must have a valid unique identifier and user reference
//   - Service radius is positive, defaulting to DefaultServiceRadiusKm
//   - Categories are derived from raw skills exactly once, at profile
//     creation or on an explicit skill update - never re-derived silently
//   - Notifications keep insertion order and belong to this aggregate only
//   - Rating and the completed-jobs counter are mutated only through their
//     dedicated methods
type Worker struct {
	// id is the unique identifier of the profile
	id kernel.UUID

	// userID references the one-to-one user account
	userID kernel.UUID

	// location is the registered position; nil until the worker sets one
	location *kernel.GeoPoint

	// skills holds the raw declared skill strings
	skills []string

	// categories is the normalized closed-enumeration set derived from skills
	categories []kernel.Category

	// serviceRadiusKm bounds proximity-filtered job listings
	serviceRadiusKm float64

	// pushSubscription is the opaque push transport endpoint, nil when the
	// worker never subscribed
	pushSubscription *string

	// rating is the aggregate mean over the worker's rated jobs
	rating float64

	// completedJobs counts finished jobs
	completedJobs int

	// notifications is the owned, insertion-ordered record list
	notifications []*Notification

	// isConstructed ensures the worker was created via a constructor
	isConstructed bool
}

// NewWorker creates a worker profile with defaults: no location, the default
// service radius, a zero rating, and categories derived from the supplied raw
// skills. This derivation happens exactly once here; later changes go through
// UpdateSkills.
//
// Parameters:
//   - id: Unique identifier for the profile
//   - userID: The user account this profile belongs to
//   - skills: Raw skill strings, may be empty
//
// Returns:
//   - *Worker: The created profile if all validations pass
//   - error: Validation error if any parameter is invalid
func NewWorker(id kernel.UUID, userID kernel.UUID, skills []string) (*Worker, error) {
	w := &Worker{
		serviceRadiusKm: DefaultServiceRadiusKm,
		isConstructed:   true,
	}

	if err := errors.Join(w.setID(id), w.setUserID(userID)); err != nil {
		return nil, err
	}

	w.skills = append([]string(nil), skills...)
	w.categories = kernel.NormalizeSkills(skills)
	return w, nil
}

// RestoreWorker reconstructs a worker profile from persistence, including its
// owned notifications. Used by repository adapters only.
func RestoreWorker(
	id kernel.UUID,
	userID kernel.UUID,
	location *kernel.GeoPoint,
	skills []string,
	categories []kernel.Category,
	serviceRadiusKm float64,
	pushSubscription *string,
	rating float64,
	completedJobs int,
	notifications []*Notification,
) (*Worker, error) {
	w, err := NewWorker(id, userID, skills)
	if err != nil {
		return nil, err
	}

	if location != nil {
		if err = w.SetLocation(*location); err != nil {
			return nil, err
		}
	}

	if err = w.setServiceRadius(serviceRadiusKm); err != nil {
		return nil, err
	}

	for _, category := range categories {
		if err = category.Validate(); err != nil {
			return nil, err
		}
	}
	// Stored categories win over the creation-time derivation: they were
	// derived once already and must not be silently recomputed.
	if len(categories) > 0 {
		w.categories = append([]kernel.Category(nil), categories...)
	}

	for _, n := range notifications {
		if err = n.Validate(); err != nil {
			return nil, err
		}
	}

	w.pushSubscription = pushSubscription
	w.rating = rating
	w.completedJobs = completedJobs
	w.notifications = append([]*Notification(nil), notifications...)
	return w, nil
}

// Validate ensures the Worker instance was properly constructed through a
// constructor.
func (w *Worker) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkerIsNotConstructed
	}

	return nil
}

// IsEqual compares two workers by their unique identifiers.
func (w *Worker) IsEqual(other *Worker) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the profile's unique identifier.
func (w *Worker) ID() kernel.UUID {
	return w.id
}

// UserID returns the owning user account.
func (w *Worker) UserID() kernel.UUID {
	return w.userID
}

// Location returns the registered position, or nil while unset. Location
// updates replace the point wholesale; it is never mutated in place.
func (w *Worker) Location() *kernel.GeoPoint {
	return w.location
}

// Skills returns the raw declared skill strings.
func (w *Worker) Skills() []string {
	return append([]string(nil), w.skills...)
}

// Categories returns the normalized category set.
func (w *Worker) Categories() []kernel.Category {
	return append([]kernel.Category(nil), w.categories...)
}

// ServiceRadiusKm returns the proximity-listing radius.
func (w *Worker) ServiceRadiusKm() float64 {
	return w.serviceRadiusKm
}

// PushSubscription returns the opaque push endpoint, or nil when the worker
// never subscribed.
func (w *Worker) PushSubscription() *string {
	return w.pushSubscription
}

// Rating returns the aggregate mean rating.
func (w *Worker) Rating() float64 {
	return w.rating
}

// CompletedJobs returns the finished-jobs counter.
func (w *Worker) CompletedJobs() int {
	return w.completedJobs
}

// Notifications returns the owned records in insertion order.
func (w *Worker) Notifications() []*Notification {
	return append([]*Notification(nil), w.notifications...)
}

// NotificationsByNewest returns the owned records sorted by CreatedAt
// descending, the order consumers display them in.
func (w *Worker) NotificationsByNewest() []*Notification {
	sorted := w.Notifications()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt().After(sorted[j].CreatedAt())
	})
	return sorted
}

// SetLocation replaces the registered position with a new validated point.
func (w *Worker) SetLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	w.location = &location
	return nil
}

// SetServiceRadius updates the proximity-listing radius. The radius must be
// positive.
func (w *Worker) SetServiceRadius(radiusKm float64) error {
	return w.setServiceRadius(radiusKm)
}

// SetPushSubscription stores the opaque push endpoint. An empty value clears
// the subscription.
func (w *Worker) SetPushSubscription(subscription string) {
	if subscription == "" {
		w.pushSubscription = nil
		return
	}
	w.pushSubscription = &subscription
}

// UpdateSkills replaces the raw skills and re-derives the category set. This
// is the only path that recomputes categories after creation.
func (w *Worker) UpdateSkills(skills []string) {
	w.skills = append([]string(nil), skills...)
	w.categories = kernel.NormalizeSkills(skills)
}

// SetRating replaces the aggregate mean rating. Only the rating aggregation
// path calls this.
func (w *Worker) SetRating(rating float64) error {
	if rating < 0 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", rating, 0, 5)
	}

	w.rating = rating
	return nil
}

// IncrementCompletedJobs bumps the finished-jobs counter.
func (w *Worker) IncrementCompletedJobs() {
	w.completedJobs++
}

// AddNotification appends a record to the owned list.
func (w *Worker) AddNotification(n *Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	w.notifications = append(w.notifications, n)
	return nil
}

// MarkNotificationRead flags the identified record as read.
// Returns ObjectNotFoundError when no owned record has that ID.
func (w *Worker) MarkNotificationRead(notificationID kernel.UUID) error {
	if err := notificationID.Validate(); err != nil {
		return err
	}

	for _, n := range w.notifications {
		if n.ID().IsEqual(notificationID) {
			n.MarkRead()
			return nil
		}
	}

	return errs.NewObjectNotFoundError("notification", notificationID.String())
}

// HasGeneralWildcard reports whether the worker's only category is the
// general fallback, which strict category filtering treats as matching every
// job category.
func (w *Worker) HasGeneralWildcard() bool {
	return len(w.categories) == 1 && w.categories[0] == kernel.CategoryGeneral
}

// MatchesCategoryStrict applies the strict set-membership filter used by the
// nearby-jobs proximity query. A worker whose only category is general
// matches every job category.
func (w *Worker) MatchesCategoryStrict(category kernel.Category) bool {
	if w.HasGeneralWildcard() {
		return true
	}

	for _, c := range w.categories {
		if c == category {
			return true
		}
	}

	return false
}

// MatchesCategoryFuzzy applies the substring skill match used by notification
// fan-out: the job category matches when any declared skill or category tag
// contains the category string, case-insensitively. A worker whose only
// category is general also matches.
func (w *Worker) MatchesCategoryFuzzy(category kernel.Category) bool {
	if w.HasGeneralWildcard() {
		return true
	}

	needle := strings.ToLower(category.String())
	for _, skill := range w.skills {
		if strings.Contains(strings.ToLower(skill), needle) {
			return true
		}
	}
	for _, c := range w.categories {
		if strings.Contains(strings.ToLower(c.String()), needle) {
			return true
		}
	}

	return false
}

// DistanceKmTo computes the distance from the worker's registered location to
// the given point. Fails with ErrLocationIsNotSet when no location was ever
// registered.
func (w *Worker) DistanceKmTo(point kernel.GeoPoint) (float64, error) {
	if w.location == nil {
		return -1, ErrLocationIsNotSet
	}

	return w.location.DistanceKm(point)
}

func (w *Worker) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Worker) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	w.userID = userID
	return nil
}

func (w *Worker) setServiceRadius(radiusKm float64) error {
	if radiusKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"serviceRadius", fmt.Errorf("%g is not greater than 0", radiusKm))
	}

	w.serviceRadiusKm = radiusKm
	return nil
}
