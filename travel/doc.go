// Package travel models the fixed world an itinerary is planned over:
// a closed set of named locations, a symmetric distance matrix between
// them, a per-location dwell (visit) duration, and a constant average
// speed that converts distance into travel time.
//
// Overview:
//
//   - Network is an immutable oracle built once via NewNetwork. After
//     construction it only answers questions: Distance, TravelTime,
//     DwellTime, Locations, Contains, Speed. No mutation, no I/O.
//   - Houston returns the built-in 8-location instance (Airport, Hotel
//     and six Houston destinations) that cmd/tripsim plans over.
//
// Validation:
//
//	All structural guarantees are enforced at construction time, so the
//	hot search path never re-validates: the matrix must be square and
//	match the location list, the diagonal must be ~0, entries must be
//	finite, non-negative and symmetric within Tolerance, dwell times
//	must be non-negative and refer to known locations, and the speed
//	must be positive.
//
// Errors (sentinel, matched via errors.Is):
//
//	– ErrUnknownLocation  lookup outside the closed location set
//	– ErrDimensionMismatch matrix/location shape disagreement
//	– ErrDuplicateLocation repeated or empty location name
//	– ErrNonZeroDiagonal   dist(a,a) not ~0
//	– ErrNegativeDistance  negative matrix entry
//	– ErrAsymmetry         dist(a,b) ≠ dist(b,a) within Tolerance
//	– ErrNaNInf            NaN or ±Inf where a finite value is required
//	– ErrNegativeDwell     negative dwell duration
//	– ErrBadSpeed          non-positive average speed
//
// Complexity: construction is O(n²) for n locations; every query is
// O(1) after construction.
package travel
