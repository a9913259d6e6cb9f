// Command tripsim computes and prints the optimal 3-day Houston
// itinerary: minimum total distance under a 12-hour daily budget, with
// the NASA visit pinned to day 2.
//
// The instance is compiled in (travel.Houston); there are no flags,
// files or environment variables. The process exits 0 after printing
// the best itinerary, or 1 with an explicit message when no schedule
// fits the daily budget.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Axelote10/simulador-optimizacion-rutas/itinerary"
	"github.com/Axelote10/simulador-optimizacion-rutas/travel"
)

func main() {
	net := travel.Houston()
	problem := itinerary.Problem{
		Net:       net,
		Start:     travel.Airport,
		Base:      travel.Hotel,
		Mandatory: travel.NASA,
	}

	fmt.Println("Computing the optimal 3-day itinerary...")

	plan, err := itinerary.Solve(problem)
	if err != nil {
		if errors.Is(err, itinerary.ErrInfeasibleSchedule) {
			fmt.Fprintln(os.Stderr, "No itinerary satisfies the daily time limit.")
		} else {
			// Unknown-location or shape errors mean the compiled-in
			// instance is broken: a defect, not a runtime condition.
			fmt.Fprintf(os.Stderr, "tripsim: %v\n", err)
		}
		os.Exit(1)
	}

	report, err := itinerary.Report(net, plan)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tripsim: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best itinerary found!")
	fmt.Print(report)
}
