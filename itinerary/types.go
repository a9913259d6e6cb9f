package itinerary

import (
	"errors"
	"math"

	"github.com/Axelote10/simulador-optimizacion-rutas/travel"
)

// DefaultMaxDayHours is the per-day time budget applied when no
// WithMaxDayHours option is given.
const DefaultMaxDayHours = 12.0

// Sentinel errors returned by this package. Lookup failures for
// locations outside the network's closed set surface as
// travel.ErrUnknownLocation, unchanged.
var (
	// ErrNilNetwork indicates Problem.Net was nil.
	ErrNilNetwork = errors.New("itinerary: network is nil")

	// ErrBadProblem indicates Start, Base and Mandatory are not three
	// distinct locations.
	ErrBadProblem = errors.New("itinerary: start, base and mandatory must be distinct")

	// ErrBadDayBudget indicates MaxDayHours is zero, negative, NaN or ±Inf.
	ErrBadDayBudget = errors.New("itinerary: MaxDayHours must be a positive finite number")

	// ErrBadRoute indicates a route with fewer than two stops was passed
	// to a cost helper.
	ErrBadRoute = errors.New("itinerary: route needs at least two stops")

	// ErrBadPlan indicates a Plan violates the structural invariants
	// checked by ValidatePlan.
	ErrBadPlan = errors.New("itinerary: plan violates itinerary invariants")

	// ErrInfeasibleSchedule indicates no assignment of the free
	// destinations satisfies the per-day budget. This is a distinct,
	// explicit outcome — never conflated with a best plan.
	ErrInfeasibleSchedule = errors.New("itinerary: no schedule fits the per-day time budget")
)

// Problem is one itinerary instance. The Network supplies distances,
// dwell times and speed; the three named locations anchor the days.
// The free destinations are derived, not stored: every network location
// other than Start, Base and Mandatory must be visited on day 1 or 3.
type Problem struct {
	Net       *travel.Network
	Start     travel.Location // day-1 origin and day-3 terminus
	Base      travel.Location // overnight anchor between days
	Mandatory travel.Location // the fixed day-2 visit
}

// freeDestinations validates the problem and returns the destinations
// to distribute across days 1 and 3, in the network's canonical order
// (which fixes the enumeration order and therefore tie-breaking).
func (p Problem) freeDestinations() ([]travel.Location, error) {
	if p.Net == nil {
		return nil, ErrNilNetwork
	}
	if p.Start == p.Base || p.Start == p.Mandatory || p.Base == p.Mandatory {
		return nil, ErrBadProblem
	}
	for _, anchor := range []travel.Location{p.Start, p.Base, p.Mandatory} {
		if !p.Net.Contains(anchor) {
			return nil, travel.ErrUnknownLocation
		}
	}

	all := p.Net.Locations()
	free := make([]travel.Location, 0, len(all)-3)

	var loc travel.Location
	for _, loc = range all {
		if loc == p.Start || loc == p.Base || loc == p.Mandatory {
			continue
		}
		free = append(free, loc)
	}

	return free, nil
}

// Options configures Solve.
//
// MaxDayHours — admissibility cap on each day's total time
// (travel + dwell), in hours. Default DefaultMaxDayHours (12).
type Options struct {
	MaxDayHours float64
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithMaxDayHours overrides the per-day time budget. The value is
// validated inside Solve; non-positive or non-finite budgets yield
// ErrBadDayBudget.
func WithMaxDayHours(hours float64) Option {
	return func(o *Options) {
		o.MaxDayHours = hours
	}
}

// DefaultOptions returns the Options Solve starts from before applying
// functional overrides.
func DefaultOptions() Options {
	return Options{MaxDayHours: DefaultMaxDayHours}
}

func validateOptions(o Options) error {
	if math.IsNaN(o.MaxDayHours) || math.IsInf(o.MaxDayHours, 0) || o.MaxDayHours <= 0 {
		return ErrBadDayBudget
	}

	return nil
}
