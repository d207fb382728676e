package services

import (
	"finder/internal/core/domain/model/job"
	"finder/internal/core/domain/model/kernel"
	"finder/internal/core/domain/model/worker"
)

// JobMatch pairs a job with the distance from the worker's registered
// location, so read-side callers can present and sort proximity results
// without recomputing distances.
type JobMatch struct {
	Job        *job.Job
	DistanceKm float64
}

// JobMatcher is a domain service responsible for pairing jobs with workers.
//
// Two deliberately different matching modes exist:
//
//   - FuzzyMatch drives notification fan-out when a job is posted. It is
//     recall-oriented: a worker matches when any declared skill contains the
//     job category as a substring, case-insensitively, and no distance bound
//     is applied. Better to ping a loosely related worker than to miss one.
//   - StrictMatch drives the proximity job listing a worker browses. It is
//     precision-oriented: exact category set membership plus a radius bound,
//     so the list only contains jobs the worker can plausibly take.
//
// In both modes a worker whose only category is the general fallback matches
// every job category, and a job filed under the general category is visible
// to every worker.
//
// Example usage:
//
//	matcher := NewJobMatcher()
//	recipients, err := matcher.FuzzyMatch(postedJob, candidates)
//	if err != nil {
//	    // Handle invalid aggregate state
//	    return
//	}
//	// Notify each worker in recipients
type JobMatcher struct{}

// NewJobMatcher creates a new JobMatcher instance.
//
// Returns:
//   - JobMatcher: A new instance ready for matching operations
func NewJobMatcher() JobMatcher {
	return JobMatcher{}
}

// FuzzyMatch selects the workers that should be notified about a newly
// posted job.
//
// Parameters:
//   - job: The posted job (must be valid)
//   - candidates: Workers to evaluate, typically every registered worker
//
// Returns:
//   - []*worker.Worker: Matching workers in candidate order, possibly empty
//   - error: Validation errors from the job or any candidate
//
// Matching rules:
//   - Substring skill match against the job category, case-insensitive
//   - A general-only worker matches everything
//   - A general-category job matches every worker
//   - No distance or radius bound
func (m JobMatcher) FuzzyMatch(j *job.Job, candidates []*worker.Worker) ([]*worker.Worker, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}

	matched := make([]*worker.Worker, 0, len(candidates))
	for _, w := range candidates {
		if err := w.Validate(); err != nil {
			return nil, err
		}

		if j.Category() == kernel.CategoryGeneral || w.MatchesCategoryFuzzy(j.Category()) {
			matched = append(matched, w)
		}
	}

	return matched, nil
}

// StrictMatch selects the jobs a worker should see in a proximity listing
// and annotates each with the distance from the worker's location.
//
// Parameters:
//   - w: The browsing worker (must be valid and have a registered location)
//   - jobs: Candidate jobs, typically pending and unassigned
//   - radiusKm: Search radius override; values <= 0 fall back to the
//     worker's own service radius
//
// Returns:
//   - []JobMatch: Matching jobs in candidate order with distances, possibly empty
//   - error: worker.ErrLocationIsNotSet when the worker has no location,
//     or validation errors from any aggregate
//
// Matching rules:
//   - Exact category set membership, with the general-only wildcard
//   - A general-category job matches every worker
//   - Distance from the worker's location must not exceed the radius
func (m JobMatcher) StrictMatch(w *worker.Worker, jobs []*job.Job, radiusKm float64) ([]JobMatch, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	if w.Location() == nil {
		return nil, worker.ErrLocationIsNotSet
	}

	if radiusKm <= 0 {
		radiusKm = w.ServiceRadiusKm()
	}

	matched := make([]JobMatch, 0, len(jobs))
	for _, j := range jobs {
		if err := j.Validate(); err != nil {
			return nil, err
		}

		if j.Category() != kernel.CategoryGeneral && !w.MatchesCategoryStrict(j.Category()) {
			continue
		}

		distance, err := w.DistanceKmTo(j.Location())
		if err != nil {
			return nil, err
		}

		if distance > radiusKm {
			continue
		}

		matched = append(matched, JobMatch{Job: j, DistanceKm: distance})
	}

	return matched, nil
}
