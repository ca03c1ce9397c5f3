package walk

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bgraf/walkmap/option"
	"github.com/paulmach/orb/geojson"
)

// Decode parses a map document.
func Decode(data []byte) (*Dataset, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, fmt.Errorf("decode map document: %w", err)
	}

	ds := &Dataset{Ranges: make(map[Attribute]Range)}

	if msg, ok := member(members, "center"); ok {
		var center LatLng
		if err := json.Unmarshal(msg, &center); err != nil {
			return nil, fmt.Errorf("decode center: %w", err)
		}
		ds.Center = option.Some(center)
	}

	if msg, ok := member(members, "zoom"); ok {
		var zoom float64
		if err := json.Unmarshal(msg, &zoom); err != nil {
			return nil, fmt.Errorf("decode zoom: %w", err)
		}
		ds.Zoom = option.Some(zoom)
	}

	if msg, ok := member(members, "track"); ok {
		fc, err := geojson.UnmarshalFeatureCollection(msg)
		if err != nil {
			return nil, fmt.Errorf("decode track: %w", err)
		}
		ds.Track = fc
	}

	if msg, ok := member(members, "points"); ok {
		fc, err := geojson.UnmarshalFeatureCollection(msg)
		if err != nil {
			return nil, fmt.Errorf("decode points: %w", err)
		}
		var shape featureShapes
		if err := json.Unmarshal(msg, &shape); err != nil {
			return nil, fmt.Errorf("decode points: %w", err)
		}
		ds.Points = pointsFromFeatures(fc, shape)
	}

	for _, a := range Attributes() {
		msg, ok := member(members, a.RangeKey())
		if !ok {
			continue
		}
		var r Range
		if err := json.Unmarshal(msg, &r); err != nil {
			return nil, fmt.Errorf("decode %s: %w", a.RangeKey(), err)
		}
		ds.Ranges[a] = r
	}

	return ds, nil
}

func member(members map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	msg, ok := members[key]
	if !ok || bytes.Equal(bytes.TrimSpace(msg), []byte("null")) {
		return nil, false
	}
	return msg, true
}

// featureShapes keeps the raw properties of each feature so that an explicit
// null can be told apart from an empty object.
type featureShapes struct {
	Features []struct {
		Properties json.RawMessage `json:"properties"`
	} `json:"features"`
}

func (s featureShapes) hasProperties(i int) bool {
	if i >= len(s.Features) {
		return false
	}
	raw := bytes.TrimSpace(s.Features[i].Properties)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

func pointsFromFeatures(fc *geojson.FeatureCollection, shape featureShapes) []PointRecord {
	points := make([]PointRecord, 0, len(fc.Features))

	for i, f := range fc.Features {
		p := PointRecord{
			Geometry:      f.Geometry,
			Samples:       make(map[Attribute]float64),
			HasProperties: shape.hasProperties(i),
		}

		for key, raw := range f.Properties {
			if key == TimestampKey {
				if s, ok := raw.(string); ok {
					p.Timestamp = option.Some(s)
				}
				continue
			}

			a, ok := ParseAttribute(key)
			if !ok {
				continue
			}
			if v, ok := raw.(float64); ok {
				p.Samples[a] = v
			}
		}

		points = append(points, p)
	}

	return points
}

// Encode writes the dataset as a map document.
func Encode(ds *Dataset) ([]byte, error) {
	members := make(map[string]any)

	if c, ok := ds.Center.Lookup(); ok {
		members["center"] = c
	}
	if z, ok := ds.Zoom.Lookup(); ok {
		members["zoom"] = z
	}
	if ds.Track != nil {
		members["track"] = ds.Track
	}
	if ds.Points != nil {
		members["points"] = featuresFromPoints(ds.Points)
	}
	for a, r := range ds.Ranges {
		members[a.RangeKey()] = r
	}

	return json.MarshalIndent(members, "", "  ")
}

func featuresFromPoints(points []PointRecord) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, p := range points {
		f := geojson.NewFeature(p.Geometry)
		for a, v := range p.Samples {
			f.Properties[a.Key()] = v
		}
		if ts, ok := p.Timestamp.Lookup(); ok {
			f.Properties[TimestampKey] = ts
		}
		if !p.HasProperties && len(f.Properties) == 0 {
			f.Properties = nil
		}
		fc.Append(f)
	}

	return fc
}
