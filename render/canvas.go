package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bgraf/walkmap/layers"
	"github.com/bgraf/walkmap/session"
	"github.com/bgraf/walkmap/walk"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Defaults used when the map document does not position the map and no
// overlay has any geometry to center on.
var (
	DefaultCenter = walk.LatLng{Lat: 0, Lon: 0}
	DefaultZoom   = 12.0
)

var errNotInitialized = errors.New("canvas not initialized")

// LeafletCanvas mounts a Leaflet map into the container of a page. The map is
// described by a JSON payload which the page's script turns into layers.
type LeafletCanvas struct {
	page        *Page
	view        session.View
	visible     map[layers.Layer]bool
	initialized bool
}

func NewLeafletCanvas(page *Page) *LeafletCanvas {
	return &LeafletCanvas{
		page:    page,
		visible: make(map[layers.Layer]bool),
	}
}

func (c *LeafletCanvas) Init(view session.View, visible []layers.Layer) error {
	c.view = view
	for _, l := range visible {
		c.visible[l] = true
	}
	c.initialized = true

	return nil
}

func (c *LeafletCanvas) AddLayerControl(bases []*layers.TileLayer, overlays []*layers.Overlay) error {
	if !c.initialized {
		return errNotInitialized
	}

	payload := c.payload(bases, overlays)
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("could not serialize map: %w", err)
	}

	var buf bytes.Buffer

	_, _ = buf.WriteString(fmt.Sprintf(`
		<script>
		(function () {
			const mapData = %s;
			let mapContainer = document.currentScript.parentElement;
			window.addEventListener('DOMContentLoaded', function() {
				mountWalkMap(mapContainer, mapData);
			});
		})();
		</script>`,
		string(payloadBytes),
	))

	c.page.Container().AppendHtml(buf.String())

	return nil
}

type baseLayerPayload struct {
	*layers.TileLayer
	Visible bool `json:"visible"`
}

type overlayPayload struct {
	Name     string                     `json:"name"`
	Visible  bool                       `json:"visible"`
	Features *geojson.FeatureCollection `json:"features"`
}

type mapPayload struct {
	Center     walk.LatLng        `json:"center"`
	Zoom       float64            `json:"zoom"`
	BaseLayers []baseLayerPayload `json:"baseLayers"`
	Overlays   []overlayPayload   `json:"overlays"`
}

func (c *LeafletCanvas) payload(bases []*layers.TileLayer, overlays []*layers.Overlay) mapPayload {
	p := mapPayload{
		Center:     c.view.Center.OrElse(defaultCenter(overlays)),
		Zoom:       c.view.Zoom.OrElse(DefaultZoom),
		BaseLayers: make([]baseLayerPayload, 0, len(bases)),
		Overlays:   make([]overlayPayload, 0, len(overlays)),
	}

	for _, b := range bases {
		p.BaseLayers = append(p.BaseLayers, baseLayerPayload{
			TileLayer: b,
			Visible:   c.visible[layers.Layer(b)],
		})
	}

	for _, o := range overlays {
		p.Overlays = append(p.Overlays, overlayPayload{
			Name:     o.Name,
			Visible:  c.visible[layers.Layer(o)],
			Features: featureCollection(o),
		})
	}

	return p
}

func featureCollection(o *layers.Overlay) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, f := range o.Features {
		if f.Geometry == nil {
			continue
		}

		gf := geojson.NewFeature(f.Geometry)
		if style, ok := f.Style.Lookup(); ok {
			gf.Properties["style"] = map[string]any{
				"color":  style.Color,
				"weight": style.Weight,
			}
		}
		if popup, ok := f.Popup.Lookup(); ok {
			gf.Properties["popup"] = popup
		}
		fc.Append(gf)
	}

	return fc
}

// defaultCenter is the center of the bounding box of all overlay geometry.
func defaultCenter(overlays []*layers.Overlay) walk.LatLng {
	var (
		bound orb.Bound
		found bool
	)

	for _, o := range overlays {
		for _, f := range o.Features {
			if f.Geometry == nil {
				continue
			}
			if !found {
				bound = f.Geometry.Bound()
				found = true
				continue
			}
			bound = bound.Union(f.Geometry.Bound())
		}
	}

	if !found {
		return DefaultCenter
	}

	center := bound.Center()
	return walk.LatLng{Lat: center.Lat(), Lon: center.Lon()}
}
