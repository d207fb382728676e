package services

import (
	"time"

	"finder/internal/core/domain/model/job"
	"finder/internal/core/domain/model/kernel"
	"finder/internal/pkg/errs"
)

// Disclosure is the result of a location disclosure decision. When Revealed
// is false, only RevealTime is populated: it tells the worker when the exact
// location will open up. The approximate address is a listing concern and is
// deliberately not part of the hidden result.
type Disclosure struct {
	Revealed   bool
	Location   *kernel.GeoPoint
	Address    string
	RevealTime time.Time
}

// DisclosureGate is a domain service that decides whether a requester may see
// a job's exact location.
//
// Business rules:
//   - The posting client always sees the exact location of their own job
//   - Only the assigned worker may query a job's location; anyone else gets
//     an object-not-found error so the gate does not leak job existence
//   - Disclosure is only queryable while the job is pending or in progress;
//     terminal statuses are masked with the same object-not-found error
//   - The assigned worker sees the exact location starting three hours
//     before the scheduled start time; before that only the reveal time is
//     returned
//
// Example usage:
//
//	gate := NewDisclosureGate()
//	disclosure, err := gate.Disclose(j, requesterID, time.Now())
//	if err != nil {
//	    return err
//	}
//	if !disclosure.Revealed {
//	    // Show disclosure.Address and disclosure.RevealTime
//	}
type DisclosureGate struct{}

// NewDisclosureGate creates a new DisclosureGate instance.
func NewDisclosureGate() DisclosureGate {
	return DisclosureGate{}
}

// Disclose applies the disclosure rules for a requester at a given instant.
//
// Parameters:
//   - j: The job whose location is being queried (must be valid)
//   - requesterID: The user asking, either the posting client or a worker
//   - now: The decision instant, injected for testability
//
// Returns:
//   - Disclosure: The decision with either the exact or approximate address
//   - error: ObjectNotFoundError for requesters who are neither the client
//     nor the assigned worker or when the job is in a terminal status,
//     otherwise validation errors
func (g DisclosureGate) Disclose(j *job.Job, requesterID kernel.UUID, now time.Time) (Disclosure, error) {
	if err := j.Validate(); err != nil {
		return Disclosure{}, err
	}
	if err := requesterID.Validate(); err != nil {
		return Disclosure{}, err
	}

	if j.ClientID().IsEqual(requesterID) {
		return g.revealed(j), nil
	}

	if j.Worker() == nil || !j.Worker().IsEqual(requesterID) {
		return Disclosure{}, errs.NewObjectNotFoundError("job", j.ID().String())
	}

	// A finished or cancelled job is masked the same way as a foreign one so
	// the error shape never hints at the job's state.
	if err := j.Status().ValidateDisclosure(); err != nil {
		return Disclosure{}, errs.NewObjectNotFoundErrorWithCause("job", j.ID().String(), err)
	}

	revealed, err := j.IsLocationRevealed(now)
	if err != nil {
		return Disclosure{}, err
	}

	if revealed {
		return g.revealed(j), nil
	}

	revealTime, err := j.RevealTime()
	if err != nil {
		return Disclosure{}, err
	}

	return Disclosure{Revealed: false, RevealTime: revealTime}, nil
}

func (g DisclosureGate) revealed(j *job.Job) Disclosure {
	location := j.Location()
	// The reveal time stays informative even after disclosure; a schedule
	// parse failure just leaves it zero.
	revealTime, _ := j.RevealTime()
	return Disclosure{
		Revealed:   true,
		Location:   &location,
		Address:    j.Address(),
		RevealTime: revealTime,
	}
}
