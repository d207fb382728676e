// Package worker contains the Worker aggregate and its owned Notification
// records.
//
// A Worker is a profile on top of a user account: a registered location
// (optional until set), a raw skill list with a category set derived from it,
// a service radius bounding proximity job listings, an aggregate rating, and
// the worker's notification feed.
//
// Category derivation happens exactly once, at profile creation or on an
// explicit UpdateSkills call. Two category filters live on the aggregate:
// the strict set-membership filter used by proximity listings, and the fuzzy
// substring filter used by notification fan-out. A worker whose only category
// is the general fallback matches every job category under both filters.
//
// All mutations go through dedicated methods so the aggregate's invariants
// hold at all times.
package worker
