package services

import (
	"errors"
	"fmt"
	"math"

	"finder/internal/core/domain/model/job"
	"finder/internal/core/domain/model/worker"
	"finder/internal/pkg/errs"
)

// ErrNoRatedJobs is returned when a recompute was requested for a worker with
// no rated jobs at all. The stored rating is left untouched; after a review
// submission this indicates an inconsistency the caller should log.
var ErrNoRatedJobs = errors.New("worker has no rated jobs")

// RatingAggregator is a domain service that maintains a worker's aggregate
// rating.
//
// The aggregate is always recomputed from scratch over the full set of the
// worker's rated jobs rather than updated incrementally. A full recompute is
// self-healing: a missed or double-applied review cannot leave the stored
// mean permanently skewed, it is corrected on the next pass. The periodic
// reconciliation job relies on exactly this property.
type RatingAggregator struct{}

// NewRatingAggregator creates a new RatingAggregator instance.
func NewRatingAggregator() RatingAggregator {
	return RatingAggregator{}
}

// Recalculate computes the mean rating over the worker's rated jobs and
// stores it on the aggregate.
//
// Parameters:
//   - w: The worker whose rating is being recomputed (must be valid)
//   - ratedJobs: Every job of this worker that carries a review
//
// Returns:
//   - float64: The new mean, rounded to two decimals
//   - error: ErrNoRatedJobs when the set is empty (the stored rating stays
//     untouched), a consistency error when a supplied job belongs to another
//     worker or carries no rating, or validation errors
func (a RatingAggregator) Recalculate(w *worker.Worker, ratedJobs []*job.Job) (float64, error) {
	if err := w.Validate(); err != nil {
		return 0, err
	}

	var sum float64
	var count int

	for _, j := range ratedJobs {
		if err := j.Validate(); err != nil {
			return 0, err
		}

		if j.Worker() == nil || !j.Worker().IsEqual(w.ID()) {
			return 0, errs.NewValueIsInvalidErrorWithCause(
				"ratedJobs",
				fmt.Errorf("job %s is not assigned to worker %s", j.ID(), w.ID()),
			)
		}

		if j.Rating() == nil {
			return 0, errs.NewValueIsInvalidErrorWithCause(
				"ratedJobs",
				fmt.Errorf("job %s carries no rating", j.ID()),
			)
		}

		sum += *j.Rating()
		count++
	}

	if count == 0 {
		return 0, ErrNoRatedJobs
	}

	mean := math.Round(sum/float64(count)*100) / 100
	if err := w.SetRating(mean); err != nil {
		return 0, err
	}

	return mean, nil
}
