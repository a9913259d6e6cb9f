package itinerary_test

import (
	"testing"

	"github.com/Axelote10/simulador-optimizacion-rutas/itinerary"
	"github.com/Axelote10/simulador-optimizacion-rutas/travel"
	"github.com/stretchr/testify/require"
)

func TestRouteDistance(t *testing.T) {
	net := cityBreakNet(t)

	km, err := itinerary.RouteDistance(net, []travel.Location{"Airport", "Beach", "Hotel"})
	require.NoError(t, err)
	require.InDelta(t, 4.0, km, timeTol) // 1 + 3

	km, err = itinerary.RouteDistance(net, []travel.Location{"Hotel", "Museum", "Hotel"})
	require.NoError(t, err)
	require.InDelta(t, 10.0, km, timeTol)
}

func TestRouteTime_DwellInteriorOnly(t *testing.T) {
	net := cityBreakNet(t)

	// Airport→Beach→Hotel: 4 km at 60 km/h plus the 1 h Beach visit.
	// No dwell is charged at the endpoints.
	h, err := itinerary.RouteTime(net, []travel.Location{"Airport", "Beach", "Hotel"})
	require.NoError(t, err)
	require.InDelta(t, 4.0/60.0+1.0, h, timeTol)

	// A pure transfer day has travel time only.
	h, err = itinerary.RouteTime(net, []travel.Location{"Airport", "Hotel"})
	require.NoError(t, err)
	require.InDelta(t, 10.0/60.0, h, timeTol)

	// An interior anchor with no modeled stay dwells 0.
	h, err = itinerary.RouteTime(net, []travel.Location{"Beach", "Airport", "Castle"})
	require.NoError(t, err)
	require.InDelta(t, (1.0+4.0)/60.0, h, timeTol)
}

func TestRouteCost_Errors(t *testing.T) {
	net := cityBreakNet(t)

	_, err := itinerary.RouteDistance(net, nil)
	require.ErrorIs(t, err, itinerary.ErrBadRoute)

	_, err = itinerary.RouteTime(net, []travel.Location{"Airport"})
	require.ErrorIs(t, err, itinerary.ErrBadRoute)

	_, err = itinerary.RouteDistance(nil, []travel.Location{"Airport", "Hotel"})
	require.ErrorIs(t, err, itinerary.ErrNilNetwork)

	// Unknown locations surface as the travel sentinel, unchanged.
	_, err = itinerary.RouteDistance(net, []travel.Location{"Airport", "Atlantis"})
	require.ErrorIs(t, err, travel.ErrUnknownLocation)
	_, err = itinerary.RouteTime(net, []travel.Location{"Airport", "Atlantis", "Hotel"})
	require.ErrorIs(t, err, travel.ErrUnknownLocation)
}
