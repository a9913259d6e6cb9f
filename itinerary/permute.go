package itinerary

import "github.com/Axelote10/simulador-optimizacion-rutas/travel"

// forEachPermutation invokes visit once per permutation of items, in a
// deterministic order (Heap's algorithm), without materializing the
// k! permutations. The slice handed to visit is a shared scratch buffer
// reused between calls: visit must copy what it wants to keep and must
// not mutate it. Returning false from visit stops the enumeration.
//
// An empty items slice yields exactly one visit with an empty sequence.
//
// Complexity: O(k!) visits, O(1) work per transition, O(k) space.
func forEachPermutation(items []travel.Location, visit func([]travel.Location) bool) {
	buf := make([]travel.Location, len(items))
	copy(buf, items)
	if len(buf) == 0 {
		visit(buf)

		return
	}
	heapPermute(buf, len(buf), visit)
}

// heapPermute is the classic recursion: emit the current arrangement of
// the first k elements, then produce the remaining ones by single
// swaps. Each permutation appears exactly once.
func heapPermute(a []travel.Location, k int, visit func([]travel.Location) bool) bool {
	if k == 1 {
		return visit(a)
	}
	if !heapPermute(a, k-1, visit) {
		return false
	}

	var i int
	for i = 0; i < k-1; i++ {
		if k%2 == 0 {
			a[i], a[k-1] = a[k-1], a[i]
		} else {
			a[0], a[k-1] = a[k-1], a[0]
		}
		if !heapPermute(a, k-1, visit) {
			return false
		}
	}

	return true
}
