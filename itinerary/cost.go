package itinerary

import (
	"math"

	"github.com/Axelote10/simulador-optimizacion-rutas/travel"
)

// roundScale controls cost stabilization precision (1e-9). Rounding the
// final sums keeps results identical across platforms without affecting
// which candidate is optimal.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// routeCost walks route once and accumulates its three figures:
// kilometers over consecutive legs, travel hours at the network speed,
// and dwell hours at interior stops (all but the first and last).
//
// Contract: len(route) >= 2; every stop must belong to the network.
//
// Complexity: O(len(route)) time, O(1) space.
func routeCost(net *travel.Network, route []travel.Location) (km, travelH, dwellH float64, err error) {
	if net == nil {
		return 0, 0, 0, ErrNilNetwork
	}
	if len(route) < 2 {
		return 0, 0, 0, ErrBadRoute
	}

	var (
		i    int
		d, h float64
		last = len(route) - 1
	)
	for i = 0; i < last; i++ {
		d, err = net.Distance(route[i], route[i+1])
		if err != nil {
			return 0, 0, 0, err
		}
		km += d
	}
	travelH = km / net.Speed()

	for i = 1; i < last; i++ {
		h, err = net.DwellTime(route[i])
		if err != nil {
			return 0, 0, 0, err
		}
		dwellH += h
	}

	return round1e9(km), round1e9(travelH), round1e9(dwellH), nil
}

// RouteDistance returns the total kilometers of route over consecutive
// legs. Returns ErrBadRoute for routes shorter than two stops and
// travel.ErrUnknownLocation for stops outside the network.
func RouteDistance(net *travel.Network, route []travel.Location) (float64, error) {
	km, _, _, err := routeCost(net, route)

	return km, err
}

// RouteTime returns the total hours of route: travel time for every leg
// plus dwell time at each interior stop. This is the quantity compared
// against the per-day budget.
func RouteTime(net *travel.Network, route []travel.Location) (float64, error) {
	_, travelH, dwellH, err := routeCost(net, route)

	return round1e9(travelH + dwellH), err
}
