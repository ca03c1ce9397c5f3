package geotrack

import (
	"time"

	"github.com/bgraf/walkmap/walk"
	"github.com/jftuga/geodist"
)

// Sample is one recorded fix of a track file.
type Sample struct {
	Lat, Lon float64

	// Time is zero if the fix carries no timestamp.
	Time time.Time

	// Values holds the sensor readings of the fix; RunningDistance is never set here.
	Values map[walk.Attribute]float64
}

// Line is a contiguous part of a track. Recording pauses split a track into lines.
type Line []Sample

// DistanceMeters is the ellipsoidal distance between two samples. Nearly
// antipodal points, where Vincenty's iteration does not converge, fall back to
// the great circle distance.
func DistanceMeters(a, b Sample) float64 {
	p1 := geodist.Coord{Lat: a.Lat, Lon: a.Lon}
	p2 := geodist.Coord{Lat: b.Lat, Lon: b.Lon}

	_, km, err := geodist.VincentyDistance(p1, p2)
	if err != nil {
		_, km = geodist.HaversineDistance(p1, p2)
	}

	return km * 1000
}
