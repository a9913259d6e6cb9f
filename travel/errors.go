package travel

import "errors"

// Sentinel errors returned by Network construction and lookups.
// All messages are prefixed "travel: ..." for easy grepping; callers
// must match them with errors.Is, never by string comparison.
var (
	// ErrUnknownLocation indicates a lookup for a location outside the
	// closed set the Network was built with. The set is compiled-in and
	// immutable, so hitting this at runtime is a programming defect.
	ErrUnknownLocation = errors.New("travel: unknown location")

	// ErrDimensionMismatch indicates the distance matrix shape does not
	// match the location list (non-square, or wrong order).
	ErrDimensionMismatch = errors.New("travel: matrix/location dimension mismatch")

	// ErrDuplicateLocation indicates an empty or repeated location name.
	ErrDuplicateLocation = errors.New("travel: duplicate or empty location")

	// ErrNonZeroDiagonal indicates dist(a,a) deviates from zero beyond
	// Tolerance.
	ErrNonZeroDiagonal = errors.New("travel: diagonal not zero within tolerance")

	// ErrNegativeDistance indicates a negative off-diagonal distance.
	ErrNegativeDistance = errors.New("travel: negative distance")

	// ErrAsymmetry indicates dist(a,b) and dist(b,a) disagree beyond
	// Tolerance.
	ErrAsymmetry = errors.New("travel: matrix is not symmetric within tolerance")

	// ErrNaNInf indicates a NaN or ±Inf entry where a finite value is
	// required (distances and dwell times are always finite here).
	ErrNaNInf = errors.New("travel: NaN or Inf encountered")

	// ErrNegativeDwell indicates a negative dwell duration.
	ErrNegativeDwell = errors.New("travel: negative dwell time")

	// ErrBadSpeed indicates a non-positive average speed.
	ErrBadSpeed = errors.New("travel: speed must be positive")
)
