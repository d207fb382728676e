package job

import (
	"fmt"

	"finder/internal/pkg/errs"
)

// Status represents the lifecycle state of a job.
// It implements a state machine with defined transitions to ensure jobs
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> InProgress ──> Completed
//	   │             │
//	   └──> Cancelled <──┘
//
// Completed and Cancelled are terminal; a completed job additionally accepts
// a single review, which is handled on the Job aggregate, not here.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a job is posted.
	// Jobs in this status are visible to matching workers and unassigned.
	Pending

	// InProgress indicates the job has been accepted by a worker.
	InProgress

	// Completed indicates the work was finished. Terminal, except that the
	// poster may attach one review.
	Completed

	// Cancelled indicates the job was withdrawn before completion. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations, matching the wire format used by callers.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		InProgress: "in progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns only valid Status values to support
// validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		InProgress: "in progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses a wire-format status value.
// Returns an error for anything outside the valid set; "unknown" is rejected.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, InProgress, Completed, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire-format name of the status.
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateAccept checks whether a worker may accept a job in this status
// without performing the transition. Only Pending jobs are acceptable;
// a second accept on the same job must fail with a conflict.
func (s Status) ValidateAccept() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}
	return nil
}

// ValidateDisclosure checks whether job location disclosure may be queried in
// this status. Only Pending and InProgress jobs expose their location to the
// assigned worker.
func (s Status) ValidateDisclosure() error {
	if s != Pending && s != InProgress {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status for location disclosure", s.String()),
		)
	}
	return nil
}

// Accept transitions the status to InProgress.
//
// Valid transitions:
//   - Pending -> InProgress
//
// Returns (0, error) if the job is already assigned, finished or cancelled.
func (s Status) Accept() (Status, error) {
	if err := s.ValidateAccept(); err != nil {
		return 0, err
	}

	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - InProgress -> Cancelled
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}

// TransitionTo validates and performs an arbitrary caller-requested
// transition, routing through the specific transition rules above.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	switch target {
	case InProgress:
		return s.Accept()
	case Completed:
		return s.Complete()
	case Cancelled:
		return s.Cancel()
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot transition from %s to %s", s.String(), target.String()),
		)
	}
}
