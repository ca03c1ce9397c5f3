package walk

import (
	"testing"

	"github.com/paulmach/orb"
)

const sampleDocument = `{
  "center": [48.5, 11.25],
  "zoom": 13,
  "track": {"type": "FeatureCollection", "features": [
    {"type": "Feature", "properties": {}, "geometry": {"type": "LineString", "coordinates": [[11.2, 48.5], [11.3, 48.6]]}}
  ]},
  "points": {"type": "FeatureCollection", "features": [
    {"type": "Feature",
     "properties": {"running_distance": 1250.5, "speed": 4.25, "heart_rate": 121, "timestamp": "2021-06-01 10:00:00", "note": "x"},
     "geometry": {"type": "LineString", "coordinates": [[11.2, 48.5], [11.3, 48.6]]}},
    {"type": "Feature", "properties": null,
     "geometry": {"type": "LineString", "coordinates": [[11.3, 48.6], [11.4, 48.7]]}},
    {"type": "Feature", "properties": {"cadence": "fast"},
     "geometry": {"type": "LineString", "coordinates": [[11.4, 48.7], [11.5, 48.8]]}}
  ]},
  "elevation_range": [0, 100],
  "heart_rate_range": [90, 170],
  "speed_range": null
}`

func TestDecode(t *testing.T) {
	ds, err := Decode([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if c := ds.Center.Get(); c.Lat != 48.5 || c.Lon != 11.25 {
		t.Errorf("Center = %+v, want {48.5 11.25}", c)
	}
	if z := ds.Zoom.Get(); z != 13 {
		t.Errorf("Zoom = %v, want 13", z)
	}
	if ds.Track == nil || len(ds.Track.Features) != 1 {
		t.Fatalf("Track not decoded: %+v", ds.Track)
	}
	if len(ds.Points) != 3 {
		t.Fatalf("len(Points) = %d, want 3", len(ds.Points))
	}

	first := ds.Points[0]
	if !first.HasProperties {
		t.Error("first point should have properties")
	}
	if v := first.Value(Speed); v.Get() != 4.25 {
		t.Errorf("speed = %v, want 4.25", v.Get())
	}
	if v := first.Value(HeartRate); v.Get() != 121 {
		t.Errorf("heart rate = %v, want 121", v.Get())
	}
	if v := first.Value(Elevation); v.IsSome() {
		t.Error("elevation should be absent")
	}
	if ts := first.Timestamp.Get(); ts != "2021-06-01 10:00:00" {
		t.Errorf("timestamp = %q", ts)
	}
	if _, ok := first.Geometry.(orb.LineString); !ok {
		t.Errorf("geometry = %T, want orb.LineString", first.Geometry)
	}

	if ds.Points[1].HasProperties {
		t.Error("second point has null properties")
	}
	if v := ds.Points[2].Value(Cadence); v.IsSome() {
		t.Error("non-numeric cadence should be ignored")
	}

	if r := ds.Range(Elevation).Get(); r.Min != 0 || r.Max != 100 {
		t.Errorf("elevation range = %+v", r)
	}
	if r := ds.Range(HeartRate).Get(); r.Min != 90 || r.Max != 170 {
		t.Errorf("heart rate range = %+v", r)
	}
	if ds.Range(Speed).IsSome() {
		t.Error("null speed range should be absent")
	}
	if ds.Range(Cadence).IsSome() {
		t.Error("missing cadence range should be absent")
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	ds, err := Decode([]byte(`{}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if ds.Center.IsSome() || ds.Zoom.IsSome() {
		t.Error("center and zoom should be absent")
	}
	if ds.Track != nil {
		t.Error("track should be nil")
	}
	if ds.Points != nil {
		t.Error("points should be nil")
	}
	if len(ds.Ranges) != 0 {
		t.Errorf("ranges = %v, want none", ds.Ranges)
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"center": [1,`},
		{"center with three values", `{"center": [1, 2, 3]}`},
		{"range not an array", `{"speed_range": "fast"}`},
		{"points not geojson", `{"points": 12}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	ds, err := Decode([]byte(sampleDocument))
	if err != nil {
		t.Fatal(err)
	}

	data, err := Encode(ds)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	again, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode(Encode()) error = %v", err)
	}

	if len(again.Points) != len(ds.Points) {
		t.Fatalf("len(Points) = %d, want %d", len(again.Points), len(ds.Points))
	}
	if v := again.Points[0].Value(RunningDistance); v.Get() != 1250.5 {
		t.Errorf("running distance = %v", v.Get())
	}
	if again.Range(Elevation).Get() != ds.Range(Elevation).Get() {
		t.Error("elevation range changed")
	}
}

func TestParseAttribute(t *testing.T) {
	for _, a := range Attributes() {
		got, ok := ParseAttribute(a.Key())
		if !ok || got != a {
			t.Errorf("ParseAttribute(%q) = %v, %v", a.Key(), got, ok)
		}
	}
	if _, ok := ParseAttribute("timestamp"); ok {
		t.Error("timestamp is not a numeric attribute")
	}
	if got := HeartRate.RangeKey(); got != "heart_rate_range" {
		t.Errorf("RangeKey() = %q", got)
	}
}
