package itinerary

import "github.com/Axelote10/simulador-optimizacion-rutas/travel"

// DayPlan is one day's route plus its derived figures. Route includes
// the anchor endpoints; DwellHours covers interior stops only (anchors
// are pure waypoints unless the network models a stay for them).
type DayPlan struct {
	Route       []travel.Location
	DistanceKm  float64
	TravelHours float64
	DwellHours  float64
}

// TotalHours is the day's admissibility measure: travel plus dwell.
func (d DayPlan) TotalHours() float64 {
	return d.TravelHours + d.DwellHours
}

// Visited returns the interior stops of the day (route minus its two
// anchor endpoints), in visit order.
func (d DayPlan) Visited() []travel.Location {
	if len(d.Route) <= 2 {
		return nil
	}
	out := make([]travel.Location, len(d.Route)-2)
	copy(out, d.Route[1:len(d.Route)-1])

	return out
}

// Plan is the three-day itinerary returned by Solve. It is a value:
// callers may keep it, print it, and compare it, but Solve never
// mutates a returned Plan.
type Plan struct {
	Days            [3]DayPlan
	TotalDistanceKm float64
}

// TotalHours sums the three per-day totals (travel + dwell).
func (p Plan) TotalHours() float64 {
	return p.Days[0].TotalHours() + p.Days[1].TotalHours() + p.Days[2].TotalHours()
}

// ValidatePlan enforces the structural invariants a Solve result must
// satisfy for the given problem:
//
//   - day 1 runs Start → … → Base, day 3 runs Base → … → Start,
//   - day 2 is exactly [Base, Mandatory, Base],
//   - the interior stops of days 1 and 3 cover every free destination
//     exactly once — no omissions, no repeats,
//   - no anchor appears as an interior stop.
//
// Returns nil if the plan is structurally valid, ErrBadPlan otherwise
// (problem-shape failures return the corresponding Problem sentinel).
//
// Complexity: O(n) for n network locations.
func ValidatePlan(p Problem, plan Plan) error {
	free, err := p.freeDestinations()
	if err != nil {
		return err
	}

	// Anchored endpoints of each day.
	d1, d2, d3 := plan.Days[0].Route, plan.Days[1].Route, plan.Days[2].Route
	if len(d1) < 2 || d1[0] != p.Start || d1[len(d1)-1] != p.Base {
		return ErrBadPlan
	}
	if len(d2) != 3 || d2[0] != p.Base || d2[1] != p.Mandatory || d2[2] != p.Base {
		return ErrBadPlan
	}
	if len(d3) < 2 || d3[0] != p.Base || d3[len(d3)-1] != p.Start {
		return ErrBadPlan
	}

	// Coverage: interiors of days 1 and 3 = free set, exactly once each.
	seen := make(map[travel.Location]bool, len(free))

	var loc travel.Location
	for _, day := range []DayPlan{plan.Days[0], plan.Days[2]} {
		for _, loc = range day.Visited() {
			if loc == p.Start || loc == p.Base || loc == p.Mandatory {
				return ErrBadPlan
			}
			if seen[loc] {
				return ErrBadPlan
			}
			seen[loc] = true
		}
	}
	if len(seen) != len(free) {
		return ErrBadPlan
	}
	for _, loc = range free {
		if !seen[loc] {
			return ErrBadPlan
		}
	}

	return nil
}
