// Package listing builds the task board shown to a user: one status bucket
// paginated, the other buckets cut to a short preview, and the total number
// of tasks in every bucket.
//
// A listing is a read-only fan-out of independent store queries. They are
// issued concurrently and are not wrapped in a transaction, so under
// concurrent writes the totals may disagree with the returned lists. A
// failure of any single query fails the whole listing.
package listing
