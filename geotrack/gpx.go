package geotrack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bgraf/walkmap/walk"
	"github.com/tkrajina/gpxgo/gpx"
)

// trackPointExtensions maps the readings of Garmin's TrackPointExtension.
var trackPointExtensions = map[string]walk.Attribute{
	"hr":    walk.HeartRate,
	"cad":   walk.Cadence,
	"atemp": walk.Temperature,
}

// LoadGPXTrack reads every track segment of a GPX file as one line. Speed is
// derived from consecutive timestamped fixes; heart rate, cadence and
// temperature are taken from track point extensions.
func LoadGPXTrack(trackFilePath string) (lines []Line, err error) {
	gpxData, err := gpx.ParseFile(trackFilePath)
	if err != nil {
		return nil, fmt.Errorf("read GPX file: %w", err)
	}

	return readGPXTrack(gpxData), nil
}

func readGPXTrack(gpxData *gpx.GPX) []Line {
	var lines []Line

	for _, track := range gpxData.Tracks {
		for _, segment := range track.Segments {
			var line Line
			for _, p := range segment.Points {
				s := Sample{
					Lat:    p.Latitude,
					Lon:    p.Longitude,
					Time:   p.Timestamp,
					Values: make(map[walk.Attribute]float64),
				}
				if p.Elevation.NotNull() {
					s.Values[walk.Elevation] = p.Elevation.Value()
				}
				readExtensions(p.Extensions.Nodes, s.Values)
				line = append(line, s)
			}

			if len(line) > 0 {
				deriveSpeed(line)
				lines = append(lines, line)
			}
		}
	}

	return lines
}

// readExtensions looks for known readings at any depth, ignoring namespaces.
func readExtensions(nodes []gpx.ExtensionNode, values map[walk.Attribute]float64) {
	for _, n := range nodes {
		if a, ok := trackPointExtensions[n.XMLName.Local]; ok {
			if v, err := strconv.ParseFloat(strings.TrimSpace(n.Data), 64); err == nil {
				values[a] = v
			}
		}
		readExtensions(n.Nodes, values)
	}
}

// deriveSpeed sets the speed in km/h of every fix that has a timestamped predecessor.
func deriveSpeed(line Line) {
	for i := 1; i < len(line); i++ {
		prev, curr := line[i-1], line[i]
		if prev.Time.IsZero() || curr.Time.IsZero() {
			continue
		}

		seconds := curr.Time.Sub(prev.Time).Seconds()
		if seconds <= 0 {
			continue
		}

		curr.Values[walk.Speed] = DistanceMeters(prev, curr) / seconds * 3.6
	}
}
