package session

import (
	"context"
	"errors"
	"net/url"
	"reflect"
	"testing"

	"github.com/bgraf/walkmap/layers"
)

type fakePage struct {
	location *url.URL
	text     string
}

func newFakePage(t *testing.T, rawURL string) *fakePage {
	t.Helper()
	u, err := url.Parse(rawURL)
	if err != nil {
		t.Fatal(err)
	}
	return &fakePage{location: u}
}

func (p *fakePage) Location() *url.URL           { return p.location }
func (p *fakePage) SetContainerText(text string) { p.text = text }

type fakeFetcher struct {
	payload  []byte
	err      error
	requests []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, resource *url.URL) ([]byte, error) {
	f.requests = append(f.requests, resource.String())
	return f.payload, f.err
}

type fakeCanvas struct {
	view     *View
	visible  []string
	bases    []string
	overlays []string
}

func (c *fakeCanvas) Init(view View, visible []layers.Layer) error {
	c.view = &view
	for _, l := range visible {
		c.visible = append(c.visible, l.LayerName())
	}
	return nil
}

func (c *fakeCanvas) AddLayerControl(bases []*layers.TileLayer, overlays []*layers.Overlay) error {
	for _, b := range bases {
		c.bases = append(c.bases, b.Name)
	}
	for _, o := range overlays {
		c.overlays = append(c.overlays, o.Name)
	}
	return nil
}

var testBases = []*layers.TileLayer{{Name: "OpenStreetMap"}, {Name: "OpenTopoMap"}}

const walkDocument = `{
  "center": [48.1, 11.5],
  "zoom": 14,
  "points": {"type": "FeatureCollection", "features": [
    {"type": "Feature", "properties": {"speed": 4.2, "elevation": 50},
     "geometry": {"type": "LineString", "coordinates": [[11.5, 48.1], [11.51, 48.1]]}}
  ]},
  "elevation_range": [0, 100]
}`

func TestRunMissingMapParameter(t *testing.T) {
	for _, rawURL := range []string{"http://example.org/walk.html", "http://example.org/walk.html?map="} {
		page := newFakePage(t, rawURL)
		fetcher := &fakeFetcher{}
		canvas := &fakeCanvas{}
		c := New(page, fetcher, canvas, testBases)

		if err := c.Run(context.Background()); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if c.State() != ErrorDisplayed {
			t.Errorf("state = %v, want %v", c.State(), ErrorDisplayed)
		}
		if page.text != MissingMapMessage {
			t.Errorf("container text = %q", page.text)
		}
		if len(fetcher.requests) != 0 {
			t.Errorf("fetch issued: %v", fetcher.requests)
		}
		if canvas.view != nil {
			t.Error("canvas initialized")
		}
	}
}

func TestRunRendersMap(t *testing.T) {
	page := newFakePage(t, "http://example.org/walks/view.html?map=Isar%20Trail")
	fetcher := &fakeFetcher{payload: []byte(walkDocument)}
	canvas := &fakeCanvas{}
	c := New(page, fetcher, canvas, testBases)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if c.State() != Rendered {
		t.Errorf("state = %v, want %v", c.State(), Rendered)
	}
	if want := []string{"http://example.org/walks/maps/Isar%20Trail.json"}; !reflect.DeepEqual(fetcher.requests, want) {
		t.Errorf("requests = %v, want %v", fetcher.requests, want)
	}

	if canvas.view == nil {
		t.Fatal("canvas not initialized")
	}
	if center := canvas.view.Center.Get(); center.Lat != 48.1 || center.Lon != 11.5 {
		t.Errorf("center = %+v", center)
	}
	if zoom := canvas.view.Zoom.Get(); zoom != 14 {
		t.Errorf("zoom = %v", zoom)
	}
	if want := []string{"OpenStreetMap", "Track"}; !reflect.DeepEqual(canvas.visible, want) {
		t.Errorf("visible = %v, want %v", canvas.visible, want)
	}
	if want := []string{"OpenStreetMap", "OpenTopoMap"}; !reflect.DeepEqual(canvas.bases, want) {
		t.Errorf("bases = %v, want %v", canvas.bases, want)
	}
	if want := []string{"Track", "Elevation", "Speed"}; !reflect.DeepEqual(canvas.overlays, want) {
		t.Errorf("overlays = %v, want %v", canvas.overlays, want)
	}

	elevation, ok := c.Layers().Overlay("Elevation")
	if !ok {
		t.Fatal("no elevation overlay")
	}
	if got := elevation.Features[0].Style.Get().Color; got != "#b39980" {
		t.Errorf("elevation color = %q, want #b39980", got)
	}

	if err := c.Run(context.Background()); !errors.Is(err, ErrFinished) {
		t.Errorf("second Run() error = %v, want ErrFinished", err)
	}
}

func TestRunWithoutCenterAndZoom(t *testing.T) {
	page := newFakePage(t, "http://example.org/?map=x")
	canvas := &fakeCanvas{}
	c := New(page, &fakeFetcher{payload: []byte(`{}`)}, canvas, testBases)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if canvas.view.Center.IsSome() || canvas.view.Zoom.IsSome() {
		t.Errorf("view = %+v, want absent center and zoom", canvas.view)
	}
}

func TestRunFetchFailure(t *testing.T) {
	failure := errors.New("connection refused")
	page := newFakePage(t, "http://example.org/?map=x")
	canvas := &fakeCanvas{}
	c := New(page, &fakeFetcher{err: failure}, canvas, testBases)

	err := c.Run(context.Background())
	if !errors.Is(err, failure) {
		t.Fatalf("Run() error = %v, want %v", err, failure)
	}
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) || fetchErr.Name != "x" {
		t.Errorf("Run() error = %v, want *FetchError for 'x'", err)
	}
	if c.State() != AwaitingDataset {
		t.Errorf("state = %v, want %v", c.State(), AwaitingDataset)
	}
	if page.text != "" || canvas.view != nil {
		t.Error("fetch failure must not render anything")
	}
}

func TestRunMalformedDocument(t *testing.T) {
	page := newFakePage(t, "http://example.org/?map=x")
	canvas := &fakeCanvas{}
	c := New(page, &fakeFetcher{payload: []byte(`{"points": [`)}, canvas, testBases)

	err := c.Run(context.Background())
	if err == nil {
		t.Fatal("expected parse error")
	}
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		t.Errorf("parse error reported as fetch error: %v", err)
	}
	if canvas.view != nil || canvas.overlays != nil {
		t.Error("malformed document must not be rendered")
	}
}

func TestResourceURL(t *testing.T) {
	tests := []struct {
		location string
		name     string
		want     string
	}{
		{"http://example.org/walk.html?map=a", "a", "http://example.org/maps/a.json"},
		{"http://example.org/?map=a", "a", "http://example.org/maps/a.json"},
		{"http://example.org", "a", "http://example.org/maps/a.json"},
		{"https://example.org/sub/dir/index.html#top", "tour 1", "https://example.org/sub/dir/maps/tour%201.json"},
		{"http://example.org/app/", "a/b", "http://example.org/app/maps/a%2Fb.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			location, err := url.Parse(tt.location)
			if err != nil {
				t.Fatal(err)
			}

			got, err := ResourceURL(location, tt.name)
			if err != nil {
				t.Fatalf("ResourceURL() error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("ResourceURL() = %q, want %q", got.String(), tt.want)
			}
		})
	}
}
