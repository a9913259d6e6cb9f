// Package itinerary_test shares small fixtures across the *_test.go
// files: a hand-checkable 5-location instance and the built-in Houston
// problem.
package itinerary_test

import (
	"testing"

	"github.com/Axelote10/simulador-optimizacion-rutas/itinerary"
	"github.com/Axelote10/simulador-optimizacion-rutas/travel"
	"github.com/stretchr/testify/require"
)

const (
	// timeTol matches travel.Tolerance: budgets and derived hours are
	// compared within this absolute slack.
	timeTol = 1e-9

	// dayCap is the default per-day budget under test.
	dayCap = 12.0
)

// cityBreakNet builds a 5-location instance whose optimum is checkable
// by hand. Canonical order [Airport, Beach, Castle, Museum, Hotel];
// free destinations are Beach and Castle.
//
// All 6 day-1/day-3 assignments of {Beach, Castle} (free-route km,
// day 2 Hotel→Museum→Hotel adds 10):
//
//	[]            / [Beach, Castle] → 10 + 3+8+4 = 25
//	[]            / [Castle, Beach] → 10 + 2+8+1 = 21
//	[Beach]       / [Castle]        → (1+3) + (2+4) = 10   ← optimum
//	[Castle]      / [Beach]         → (4+2) + (3+1) = 10   ← mirror tie
//	[Beach, Castle] / []            → 1+8+2 + 10 = 21
//	[Castle, Beach] / []            → 4+8+3 + 10 = 25
//
// Best grand total: 10 + 10 = 20 km.
func cityBreakNet(t *testing.T) *travel.Network {
	t.Helper()

	locs := []travel.Location{"Airport", "Beach", "Castle", "Museum", "Hotel"}
	km := [][]float64{
		{0, 1, 4, 20, 10},
		{1, 0, 8, 12, 3},
		{4, 8, 0, 6, 2},
		{20, 12, 6, 0, 5},
		{10, 3, 2, 5, 0},
	}
	dwell := map[travel.Location]float64{"Beach": 1, "Castle": 1, "Museum": 8}

	net, err := travel.NewNetwork(locs, km, dwell, 60)
	require.NoError(t, err)

	return net
}

func cityBreakProblem(t *testing.T) itinerary.Problem {
	t.Helper()

	return itinerary.Problem{
		Net:       cityBreakNet(t),
		Start:     "Airport",
		Base:      "Hotel",
		Mandatory: "Museum",
	}
}

func houstonProblem() itinerary.Problem {
	return itinerary.Problem{
		Net:       travel.Houston(),
		Start:     travel.Airport,
		Base:      travel.Hotel,
		Mandatory: travel.NASA,
	}
}

// freeOf returns the destinations a valid plan must cover on days 1+3.
func freeOf(p itinerary.Problem) []travel.Location {
	var free []travel.Location
	for _, loc := range p.Net.Locations() {
		if loc == p.Start || loc == p.Base || loc == p.Mandatory {
			continue
		}
		free = append(free, loc)
	}

	return free
}
