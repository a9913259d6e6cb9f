package travel

import "math"

// Tolerance is the absolute numeric tolerance used by structural checks
// (diagonal ~0, symmetry) and recommended to callers comparing derived
// times against budgets.
const Tolerance = 1e-9

// Location identifies one place in the closed location set of a Network.
// Values are plain names ("Hotel", "NASA", ...); the set is fixed at
// construction and never grows.
type Location string

// Network is the read-only distance/time oracle of the planner: it maps
// unordered location pairs to kilometers, locations to dwell hours, and
// converts distance to travel time at a constant average speed.
//
// A Network is immutable after NewNetwork returns; it is safe for
// concurrent readers without synchronization.
type Network struct {
	locs  []Location       // canonical ordering of the closed set
	index map[Location]int // name → matrix index
	dist  [][]float64      // symmetric km matrix, zero diagonal
	dwell []float64        // hours spent at each location once arrived
	speed float64          // km/h, > 0
}

// NewNetwork validates and freezes a travel model.
//
// Contracts:
//   - locs must be non-empty, with unique non-empty names.
//   - distKm must be len(locs)×len(locs), finite, non-negative,
//     symmetric within Tolerance, with a ~0 diagonal.
//   - dwellHours maps a subset of locs to non-negative finite hours;
//     locations absent from the map dwell 0 h (pure waypoints).
//   - speedKMH must be positive and finite.
//
// All inputs are copied; the caller may reuse its slices afterwards.
//
// Complexity: O(n²) time, O(n²) space for n = len(locs).
func NewNetwork(locs []Location, distKm [][]float64, dwellHours map[Location]float64, speedKMH float64) (*Network, error) {
	// Stage 1: location set shape and uniqueness.
	n := len(locs)
	if n == 0 {
		return nil, ErrDimensionMismatch
	}
	index := make(map[Location]int, n)

	var (
		i  int
		ok bool
	)
	for i = 0; i < n; i++ {
		if locs[i] == "" {
			return nil, ErrDuplicateLocation
		}
		if _, ok = index[locs[i]]; ok {
			return nil, ErrDuplicateLocation
		}
		index[locs[i]] = i
	}

	// Stage 2: matrix shape, then diagonal / negativity / symmetry.
	if len(distKm) != n {
		return nil, ErrDimensionMismatch
	}
	var j int
	for i = 0; i < n; i++ {
		if len(distKm[i]) != n {
			return nil, ErrDimensionMismatch
		}
	}
	for i = 0; i < n; i++ {
		if math.Abs(distKm[i][i]) > Tolerance {
			return nil, ErrNonZeroDiagonal
		}
		for j = 0; j < n; j++ {
			v := distKm[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
			if v < 0 {
				return nil, ErrNegativeDistance
			}
		}
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // upper triangle only
			if math.Abs(distKm[i][j]-distKm[j][i]) > Tolerance {
				return nil, ErrAsymmetry
			}
		}
	}

	// Stage 3: dwell table (sparse map → dense slice, anchors default 0).
	dwell := make([]float64, n)
	var (
		loc Location
		h   float64
		idx int
	)
	for loc, h = range dwellHours {
		idx, ok = index[loc]
		if !ok {
			return nil, ErrUnknownLocation
		}
		if math.IsNaN(h) || math.IsInf(h, 0) {
			return nil, ErrNaNInf
		}
		if h < 0 {
			return nil, ErrNegativeDwell
		}
		dwell[idx] = h
	}

	// Stage 4: speed.
	if math.IsNaN(speedKMH) || math.IsInf(speedKMH, 0) || speedKMH <= 0 {
		return nil, ErrBadSpeed
	}

	// Deep-copy the matrix so later caller mutation cannot leak in.
	dist := make([][]float64, n)
	for i = 0; i < n; i++ {
		dist[i] = make([]float64, n)
		copy(dist[i], distKm[i])
	}
	cl := make([]Location, n)
	copy(cl, locs)

	return &Network{locs: cl, index: index, dist: dist, dwell: dwell, speed: speedKMH}, nil
}

// Distance returns the kilometers between a and b.
// Returns ErrUnknownLocation if either name is outside the closed set.
func (n *Network) Distance(a, b Location) (float64, error) {
	ia, ok := n.index[a]
	if !ok {
		return 0, ErrUnknownLocation
	}
	ib, ok := n.index[b]
	if !ok {
		return 0, ErrUnknownLocation
	}

	return n.dist[ia][ib], nil
}

// TravelTime returns the hours needed to travel between a and b at the
// network's constant average speed: Distance(a,b) / Speed().
func (n *Network) TravelTime(a, b Location) (float64, error) {
	d, err := n.Distance(a, b)
	if err != nil {
		return 0, err
	}

	return d / n.speed, nil
}

// DwellTime returns the hours spent at loc once arrived (0 for pure
// waypoints such as the airport and the hotel).
func (n *Network) DwellTime(loc Location) (float64, error) {
	idx, ok := n.index[loc]
	if !ok {
		return 0, ErrUnknownLocation
	}

	return n.dwell[idx], nil
}

// Contains reports whether loc belongs to the closed location set.
func (n *Network) Contains(loc Location) bool {
	_, ok := n.index[loc]

	return ok
}

// Locations returns a fresh copy of the closed set in canonical order.
func (n *Network) Locations() []Location {
	out := make([]Location, len(n.locs))
	copy(out, n.locs)

	return out
}

// Speed returns the constant average speed in km/h.
func (n *Network) Speed() float64 { return n.speed }

// Size returns the number of locations in the closed set.
func (n *Network) Size() int { return len(n.locs) }
