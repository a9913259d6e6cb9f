// Package rutas is a small, deterministic trip-itinerary optimizer:
// it computes the minimum-distance 3-day schedule over a fixed set of
// Houston locations under a 12-hour-per-day budget.
//
// The module is organized under two library packages plus a command:
//
//	travel/    — immutable distance/dwell/speed model over a closed
//	             location set, with the built-in Houston dataset
//	itinerary/ — exhaustive permutation-and-split search for the
//	             minimum-distance feasible 3-day plan, plus reporting
//	cmd/tripsim — console entry point printing the best itinerary
//
// Day 1 runs Airport→…→Hotel, day 3 runs Hotel→…→Airport, and day 2 is
// pinned to Hotel→NASA→Hotel because the NASA visit (8 h) dominates a
// whole day on its own. Everything is compiled-in constants: no flags,
// no files, no environment.
//
//	go run github.com/Axelote10/simulador-optimizacion-rutas/cmd/tripsim
package rutas
