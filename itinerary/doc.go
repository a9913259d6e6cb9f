// Package itinerary finds the minimum-total-distance 3-day itinerary
// over a travel.Network, subject to a per-day time budget and a fixed
// day-2 visit.
//
// Problem shape:
//
//	Day 1: Start → (some free destinations, in some order) → Base
//	Day 2: Base  → Mandatory → Base                 (fixed, checked once)
//	Day 3: Base  → (the remaining free destinations) → Start
//
// Every free destination is visited exactly once across days 1 and 3;
// the Mandatory destination occupies day 2 because its dwell time
// dominates a whole day. A day is admissible when travel time (distance
// at constant speed) plus dwell at its interior stops fits MaxDayHours.
//
// Algorithm (Solve):
//
//	Enumerate every permutation of the free destinations (Heap's
//	algorithm, lazy and deterministic) and, for each, every split point
//	0..k assigning the prefix to day 1 and the suffix to day 3 with
//	relative order preserved. Together the permutations and splits cover
//	every (subset, order, order) assignment; duplicate candidates across
//	permutations are harmless since only the running minimum is kept,
//	first-found on ties. Candidates violating the day budget are
//	discarded; if none survives, Solve returns ErrInfeasibleSchedule.
//
// Complexity: O(k! · k) candidate evaluations for k free destinations,
// each O(k) to cost — ≈4320 evaluations for the built-in instance with
// k=5, far below interactive thresholds, which is why no pruning or
// heuristic is used.
//
// Determinism: enumeration order is fixed by the network's canonical
// location order, so repeated runs over identical inputs return the
// identical Plan and cost. Costs are stabilized by rounding to 1e-9.
//
// Errors (sentinel, matched via errors.Is):
//
//	– ErrNilNetwork         Problem.Net is nil
//	– ErrBadProblem         Start/Base/Mandatory not distinct
//	– ErrBadDayBudget       MaxDayHours is not a positive finite number
//	– ErrBadRoute           cost helpers given fewer than two stops
//	– ErrBadPlan            ValidatePlan found a structural violation
//	– ErrInfeasibleSchedule no candidate fits the day budget
//	– travel.ErrUnknownLocation is passed through from the network
package itinerary
