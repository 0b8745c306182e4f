package geo

import "math"

const earthRadiusMeters = 6_371_000.0

// Distance returns the great-circle distance between u and v in meters,
// rounded to the nearest integer. A* needs a totally ordered, NaN-free
// edge weight for its priority queue, so distances live in integer meters
// rather than float64 — sub-meter precision is irrelevant for road routing.
func Distance(u, v Location) uint64 {
	uLat := u.Lat() * math.Pi / 180
	vLat := v.Lat() * math.Pi / 180
	dLat := (v.Lat() - u.Lat()) * math.Pi / 180
	dLon := (v.Lon() - u.Lon()) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(uLat)*math.Cos(vLat)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return uint64(math.Round(earthRadiusMeters * c))
}
