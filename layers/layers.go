// Package layers turns a walk dataset into the overlays shown on the map.
package layers

import (
	"github.com/bgraf/walkmap/gradient"
	"github.com/bgraf/walkmap/option"
	"github.com/bgraf/walkmap/walk"
	"github.com/paulmach/orb"
)

// Layer is anything the map canvas can show: a base tile layer or an overlay.
type Layer interface {
	LayerName() string
}

// TileLayer is a base background layer.
type TileLayer struct {
	Name        string `yaml:"name" json:"name"`
	URL         string `yaml:"url" json:"url"`
	Attribution string `yaml:"attribution" json:"attribution"`
	MaxZoom     int    `yaml:"maxZoom" json:"maxZoom"`
}

func (t *TileLayer) LayerName() string {
	return t.Name
}

type Style struct {
	Color  string
	Weight int
}

type Feature struct {
	Geometry orb.Geometry
	Style    option.Option[Style]
	Popup    option.Option[string]
}

type Overlay struct {
	Name     string
	Features []Feature
}

func (o *Overlay) LayerName() string {
	return o.Name
}

// Composition is the full set of layers built from one dataset.
type Composition struct {
	BaseLayers []*TileLayer

	// Overlays in layer control order.
	Overlays []*Overlay

	// Visible holds the layers shown on load.
	Visible []Layer
}

func (c *Composition) Overlay(name string) (*Overlay, bool) {
	for _, o := range c.Overlays {
		if o.Name == name {
			return o, true
		}
	}
	return nil, false
}

func (c *Composition) OverlayNames() []string {
	names := make([]string, len(c.Overlays))
	for i, o := range c.Overlays {
		names[i] = o.Name
	}
	return names
}

// Build creates the track overlay and one gradient overlay per declared spec.
// Optional overlays are left out entirely when no point carries their attribute.
func Build(ds *walk.Dataset, bases []*TileLayer) *Composition {
	if ds == nil {
		ds = &walk.Dataset{}
	}

	c := &Composition{BaseLayers: bases}
	if len(bases) > 0 {
		c.Visible = append(c.Visible, bases[0])
	}

	track := trackOverlay(ds)
	c.Overlays = append(c.Overlays, track)
	c.Visible = append(c.Visible, track)

	for _, spec := range Specs {
		if spec.Optional && !IsPresent(ds.Points, spec.Attribute) {
			continue
		}

		overlay := gradientOverlay(ds, spec)
		c.Overlays = append(c.Overlays, overlay)
		if spec.VisibleOnLoad {
			c.Visible = append(c.Visible, overlay)
		}
	}

	return c
}

func trackOverlay(ds *walk.Dataset) *Overlay {
	overlay := &Overlay{Name: TrackName}
	if ds.Track == nil {
		return overlay
	}

	for _, f := range ds.Track.Features {
		overlay.Features = append(overlay.Features, Feature{Geometry: f.Geometry})
	}

	return overlay
}

func gradientOverlay(ds *walk.Dataset, spec Spec) *Overlay {
	r := spec.DisplayRange(ds)
	overlay := &Overlay{
		Name:     spec.Name,
		Features: make([]Feature, 0, len(ds.Points)),
	}

	for _, p := range ds.Points {
		color := gradient.Map(p.Value(spec.Attribute), r.Min, r.Max, spec.Stops)

		f := Feature{
			Geometry: p.Geometry,
			Style:    option.Some(Style{Color: gradient.Encode(color), Weight: spec.Weight}),
		}
		if popup, ok := Compose(p); ok {
			f.Popup = option.Some(popup)
		}

		overlay.Features = append(overlay.Features, f)
	}

	return overlay
}
