package geotrack

import (
	"errors"
	"math"
	"time"

	"github.com/bgraf/walkmap/layers"
	"github.com/bgraf/walkmap/option"
	"github.com/bgraf/walkmap/walk"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// TimestampLayout is the format of point timestamps in map documents.
const TimestampLayout = "2006-01-02 15:04:05"

var ErrEmptyTrack = errors.New("track has no points")

// integerAttributes are averaged with integer division.
var integerAttributes = map[walk.Attribute]bool{
	walk.HeartRate:   true,
	walk.Cadence:     true,
	walk.Temperature: true,
}

type Converter struct {
	Zoom float64

	// Location timestamps are rendered in.
	Location *time.Location
}

func NewConverter(zoom float64) *Converter {
	return &Converter{Zoom: zoom, Location: time.Local}
}

// Convert builds a map document from the lines of a track: the lines become
// the track geometry, each pair of consecutive fixes one point record carrying
// the averaged readings and the distance covered so far.
func (c *Converter) Convert(lines []Line) (*walk.Dataset, error) {
	var samples []Sample
	for _, line := range lines {
		samples = append(samples, line...)
	}
	if len(samples) == 0 {
		return nil, ErrEmptyTrack
	}

	ds := &walk.Dataset{
		Zoom:   option.Some(c.Zoom),
		Track:  trackFeatures(lines),
		Points: c.points(lines),
		Ranges: make(map[walk.Attribute]walk.Range),
	}

	lat, _ := extrema(samples, func(s Sample) (float64, bool) { return s.Lat, true })
	lon, _ := extrema(samples, func(s Sample) (float64, bool) { return s.Lon, true })
	ds.Center = option.Some(walk.LatLng{
		Lat: (lat.Min + lat.Max) / 2,
		Lon: (lon.Min + lon.Max) / 2,
	})

	for _, a := range walk.Attributes() {
		spec, ok := layers.SpecFor(a)
		if !ok {
			continue
		}

		r, ok := extrema(samples, func(s Sample) (float64, bool) {
			v, ok := s.Values[a]
			return v, ok
		})
		if !ok {
			r = spec.Fallback
		}
		ds.Ranges[a] = r
	}

	return ds, nil
}

func lineString(line Line) orb.LineString {
	ls := make(orb.LineString, 0, len(line))
	for _, s := range line {
		ls = append(ls, orb.Point{s.Lon, s.Lat})
	}
	return ls
}

func trackFeatures(lines []Line) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, line := range lines {
		fc.Append(geojson.NewFeature(lineString(line)))
	}
	return fc
}

func (c *Converter) points(lines []Line) []walk.PointRecord {
	points := []walk.PointRecord{}
	runningDistance := 0.0

	for _, line := range lines {
		for i := 0; i+1 < len(line); i++ {
			p1, p2 := line[i], line[i+1]
			runningDistance += DistanceMeters(p1, p2)

			record := walk.PointRecord{
				Geometry:      lineString(Line{p1, p2}),
				Samples:       map[walk.Attribute]float64{walk.RunningDistance: runningDistance},
				HasProperties: true,
			}

			for _, a := range walk.Attributes() {
				if a == walk.RunningDistance {
					continue
				}
				if v, ok := average(a, p1, p2); ok {
					record.Samples[a] = v
				}
			}

			if ts, ok := c.averageTime(p1.Time, p2.Time); ok {
				record.Timestamp = option.Some(ts)
			}

			points = append(points, record)
		}
	}

	return points
}

func average(a walk.Attribute, s1, s2 Sample) (float64, bool) {
	v1, ok1 := s1.Values[a]
	v2, ok2 := s2.Values[a]

	switch {
	case ok1 && ok2:
		if integerAttributes[a] {
			return math.Trunc((math.Trunc(v1) + math.Trunc(v2)) / 2), true
		}
		return (v1 + v2) / 2, true
	case ok1:
		return v1, true
	case ok2:
		return v2, true
	}

	return 0, false
}

func (c *Converter) averageTime(t1, t2 time.Time) (string, bool) {
	var t time.Time

	switch {
	case !t1.IsZero() && !t2.IsZero():
		t = time.Unix((t1.Unix()+t2.Unix())/2, 0)
	case !t1.IsZero():
		t = t1
	case !t2.IsZero():
		t = t2
	default:
		return "", false
	}

	loc := c.Location
	if loc == nil {
		loc = time.Local
	}

	return t.In(loc).Format(TimestampLayout), true
}

func extrema(samples []Sample, value func(Sample) (float64, bool)) (walk.Range, bool) {
	r := walk.Range{Min: math.Inf(1), Max: math.Inf(-1)}
	found := false

	for _, s := range samples {
		v, ok := value(s)
		if !ok {
			continue
		}
		r.Min = math.Min(r.Min, v)
		r.Max = math.Max(r.Max, v)
		found = true
	}

	return r, found
}
