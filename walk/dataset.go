package walk

import (
	"encoding/json"
	"fmt"

	"github.com/bgraf/walkmap/option"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// TimestampKey is the property name of a point's timestamp.
const TimestampKey = "timestamp"

type LatLng struct {
	Lat, Lon float64
}

func (p LatLng) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{p.Lat, p.Lon})
}

func (p *LatLng) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("expected [lat, lon], got %d values", len(pair))
	}
	p.Lat, p.Lon = pair[0], pair[1]
	return nil
}

// Range bounds the domain of a sampled attribute.
type Range struct {
	Min, Max float64
}

func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{r.Min, r.Max})
}

func (r *Range) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("expected [min, max], got %d values", len(pair))
	}
	r.Min, r.Max = pair[0], pair[1]
	return nil
}

// PointRecord is one sampled segment of the walk.
type PointRecord struct {
	Geometry  orb.Geometry
	Samples   map[Attribute]float64
	Timestamp option.Option[string]

	// HasProperties is false when the feature carried no properties object at all.
	HasProperties bool
}

func (p PointRecord) Value(a Attribute) option.Option[float64] {
	if v, ok := p.Samples[a]; ok {
		return option.Some(v)
	}
	return option.None[float64]()
}

// Dataset is one map document. Every member is optional: Track and Points are
// nil when absent, Ranges only holds the ranges the document supplied.
type Dataset struct {
	Center option.Option[LatLng]
	Zoom   option.Option[float64]
	Track  *geojson.FeatureCollection
	Points []PointRecord
	Ranges map[Attribute]Range
}

func (d *Dataset) Range(a Attribute) option.Option[Range] {
	if r, ok := d.Ranges[a]; ok {
		return option.Some(r)
	}
	return option.None[Range]()
}
