package itinerary

import "github.com/Axelote10/simulador-optimizacion-rutas/travel"

// Bridges for white-box tests living in package itinerary_test.

// ForEachPermutation exposes the lazy permutation sweep to tests.
func ForEachPermutation(items []travel.Location, visit func([]travel.Location) bool) {
	forEachPermutation(items, visit)
}
