package travel

// The built-in Houston instance: two anchors and six destinations.
// Distances are road kilometers between the sites; dwell hours are the
// planned visit lengths. NASA dominates a day on its own (8 h), which
// is why the planner pins it to day 2.
const (
	Airport      Location = "Airport"
	DaikinPark   Location = "Daikin Park"
	HealthMuseum Location = "Health Museum"
	NRGStadium   Location = "NRG Stadium"
	NASA         Location = "NASA"
	ToyotaCenter Location = "Toyota Center"
	USSTexas     Location = "USS Texas Museum"
	Hotel        Location = "Hotel"
)

// HoustonSpeedKMH is the assumed constant average speed used to convert
// kilometers into hours for the built-in instance.
const HoustonSpeedKMH = 60.0

// houstonOrder fixes the matrix row/column order of the built-in data.
var houstonOrder = []Location{
	Airport, DaikinPark, HealthMuseum, NRGStadium,
	NASA, ToyotaCenter, USSTexas, Hotel,
}

// houstonKm is the symmetric road-distance matrix (km) over houstonOrder.
var houstonKm = [][]float64{
	{0, 30, 25, 35, 40, 32, 45, 35},
	{30, 0, 12, 18, 45, 15, 35, 5},
	{25, 12, 0, 8, 42, 5, 38, 2},
	{35, 18, 8, 0, 40, 3, 39, 5},
	{40, 45, 42, 40, 0, 38, 20, 35},
	{32, 15, 5, 3, 38, 0, 36, 1},
	{45, 35, 38, 39, 20, 36, 0, 30},
	{35, 5, 2, 5, 35, 1, 30, 0},
}

// houstonDwellHours lists visit lengths; the anchors (Airport, Hotel)
// are pure waypoints and intentionally absent (dwell 0).
var houstonDwellHours = map[Location]float64{
	DaikinPark:   3,
	HealthMuseum: 3,
	NRGStadium:   5,
	NASA:         8,
	ToyotaCenter: 2,
	USSTexas:     3,
}

// Houston returns a fresh Network for the built-in 8-location Houston
// instance. The data is compiled in and always valid, so construction
// cannot fail.
func Houston() *Network {
	n, err := NewNetwork(houstonOrder, houstonKm, houstonDwellHours, HoustonSpeedKMH)
	if err != nil {
		// The constants above are fixed at compile time; failing to
		// build them is a defect in this file, not a runtime condition.
		panic(err)
	}

	return n
}
