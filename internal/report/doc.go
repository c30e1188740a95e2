// Package report derives the view-facing aggregates from the raw entry
// log: weekly mood counts, the month calendar grid, day and recent
// listings, and windowed trend summaries. Every function is pure; the
// caller passes the entry collection and any reference time, so views
// recompute on demand and nothing here holds state.
package report
