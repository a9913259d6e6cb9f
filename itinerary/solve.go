package itinerary

import (
	"math"

	"github.com/Axelote10/simulador-optimizacion-rutas/travel"
)

// Solve finds the minimum-total-distance feasible 3-day Plan for p.
//
// Stages:
//  1. Validate options and problem shape; derive the free destinations.
//  2. Cost the fixed day-2 route [Base, Mandatory, Base] once. Its
//     feasibility is a precondition of the whole model: if it busts the
//     budget, no candidate can help, and Solve fails immediately with
//     ErrInfeasibleSchedule.
//  3. Sweep all permutations of the free destinations and all split
//     points; cost day 1 (Start→prefix→Base) and day 3
//     (Base→suffix→Start), discard budget violations, keep the
//     minimum-distance candidate (first-found on ties).
//  4. Return ErrInfeasibleSchedule if nothing survived; otherwise the
//     best Plan with per-day breakdowns and the grand total.
//
// The sweep is single-threaded and side-effect free; the only mutable
// state is the running best candidate, updated in strict enumeration
// order, which makes results fully deterministic.
//
// Complexity: O(k! · k²) time for k free destinations, O(k) space.
func Solve(p Problem, opts ...Option) (Plan, error) {
	// Stage 1: options + problem.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateOptions(o); err != nil {
		return Plan{}, err
	}
	free, err := p.freeDestinations()
	if err != nil {
		return Plan{}, err
	}

	// Stage 2: the fixed day 2.
	day2, err := costDay(p.Net, []travel.Location{p.Base, p.Mandatory, p.Base})
	if err != nil {
		return Plan{}, err
	}
	if day2.TotalHours() > o.MaxDayHours+travel.Tolerance {
		return Plan{}, ErrInfeasibleSchedule
	}

	// Stage 3: exhaustive sweep. The route buffers are reused across
	// candidates; only the best plan's routes are copied out.
	var (
		best      Plan
		bestKm    = math.Inf(1)
		found     bool
		sweepErr  error
		d1, d3    DayPlan
		routeBuf1 = make([]travel.Location, 0, len(free)+2)
		routeBuf3 = make([]travel.Location, 0, len(free)+2)
		cut       int
		totalKm   float64
	)
	forEachPermutation(free, func(seq []travel.Location) bool {
		for cut = 0; cut <= len(seq); cut++ {
			routeBuf1 = composeRoute(routeBuf1, p.Start, seq[:cut], p.Base)
			d1, sweepErr = costDay(p.Net, routeBuf1)
			if sweepErr != nil {
				return false
			}
			if d1.TotalHours() > o.MaxDayHours+travel.Tolerance {
				continue
			}

			routeBuf3 = composeRoute(routeBuf3, p.Base, seq[cut:], p.Start)
			d3, sweepErr = costDay(p.Net, routeBuf3)
			if sweepErr != nil {
				return false
			}
			if d3.TotalHours() > o.MaxDayHours+travel.Tolerance {
				continue
			}

			totalKm = round1e9(d1.DistanceKm + day2.DistanceKm + d3.DistanceKm)
			if !found || totalKm < bestKm {
				found = true
				bestKm = totalKm
				best = Plan{
					Days:            [3]DayPlan{freezeDay(d1), day2, freezeDay(d3)},
					TotalDistanceKm: totalKm,
				}
			}
		}

		return true
	})
	if sweepErr != nil {
		return Plan{}, sweepErr
	}

	// Stage 4: explicit infeasibility, never a misleading partial plan.
	if !found {
		return Plan{}, ErrInfeasibleSchedule
	}

	return best, nil
}

// composeRoute rebuilds dst as head → mid… → tail, reusing its backing
// array. The result aliases dst's storage; callers must copy routes
// they intend to keep (see freezeDay).
func composeRoute(dst []travel.Location, head travel.Location, mid []travel.Location, tail travel.Location) []travel.Location {
	dst = dst[:0]
	dst = append(dst, head)
	dst = append(dst, mid...)
	dst = append(dst, tail)

	return dst
}

// costDay costs a candidate route into a DayPlan. The DayPlan's Route
// still aliases the caller's buffer.
func costDay(net *travel.Network, route []travel.Location) (DayPlan, error) {
	km, travelH, dwellH, err := routeCost(net, route)
	if err != nil {
		return DayPlan{}, err
	}

	return DayPlan{Route: route, DistanceKm: km, TravelHours: travelH, DwellHours: dwellH}, nil
}

// freezeDay snapshots a DayPlan whose Route aliases a scratch buffer.
func freezeDay(d DayPlan) DayPlan {
	route := make([]travel.Location, len(d.Route))
	copy(route, d.Route)
	d.Route = route

	return d
}
