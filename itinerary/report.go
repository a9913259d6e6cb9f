package itinerary

import (
	"fmt"
	"strings"

	"github.com/Axelote10/simulador-optimizacion-rutas/travel"
)

// Report renders plan as the human-readable console breakdown: per day
// the route, each leg's travel time, each visit's dwell time, the day's
// distance and total time; then the grand totals and a per-day recap of
// visited places.
//
// The text is for humans — no machine-parseable schema is promised and
// the layout may change between versions.
func Report(net *travel.Network, plan Plan) (string, error) {
	if net == nil {
		return "", ErrNilNetwork
	}

	var (
		b       strings.Builder
		day     int
		i       int
		d       DayPlan
		leg     float64
		dwell   float64
		err     error
		totalH  float64
	)
	for day = 0; day < 3; day++ {
		d = plan.Days[day]
		fmt.Fprintf(&b, "========== Day %d ==========\n", day+1)
		fmt.Fprintf(&b, "Route: %s\n\n", joinRoute(d.Route))

		for i = 0; i+1 < len(d.Route); i++ {
			leg, err = net.TravelTime(d.Route[i], d.Route[i+1])
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&b, "  %s -> %s: %.2f h travel\n", d.Route[i], d.Route[i+1], leg)

			// Dwell applies to interior stops only; the day's terminal
			// anchor is a waypoint, not a visit.
			if i+1 < len(d.Route)-1 {
				dwell, err = net.DwellTime(d.Route[i+1])
				if err != nil {
					return "", err
				}
				fmt.Fprintf(&b, "    visit %s: %.2f h\n", d.Route[i+1], dwell)
			}
		}

		fmt.Fprintf(&b, "\nDay %d summary: %.1f km, %.2f h (travel %.2f h + visits %.2f h)\n\n",
			day+1, d.DistanceKm, d.TotalHours(), d.TravelHours, d.DwellHours)

		totalH += d.TotalHours()
	}

	fmt.Fprintf(&b, "========== Total ==========\n")
	fmt.Fprintf(&b, "Total distance: %.1f km\n", plan.TotalDistanceKm)
	fmt.Fprintf(&b, "Total time: %.2f h\n\n", totalH)

	fmt.Fprintf(&b, "Visited per day:\n")
	for day = 0; day < 3; day++ {
		visited := plan.Days[day].Visited()
		if len(visited) == 0 {
			fmt.Fprintf(&b, "  Day %d: (transfer only)\n", day+1)

			continue
		}
		fmt.Fprintf(&b, "  Day %d: %s\n", day+1, joinRoute(visited))
	}

	return b.String(), nil
}

// joinRoute renders a location sequence as "A -> B -> C".
func joinRoute(route []travel.Location) string {
	parts := make([]string, len(route))

	var i int
	for i = range route {
		parts[i] = string(route[i])
	}

	return strings.Join(parts, " -> ")
}
