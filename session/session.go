// Package session drives one map page load: resolve the map name, fetch its
// document, build the layers and hand them to the canvas.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"

	"github.com/bgraf/walkmap/layers"
	"github.com/bgraf/walkmap/option"
	"github.com/bgraf/walkmap/walk"
)

// QueryParameter names the map to load.
const QueryParameter = "map"

// MissingMapMessage is shown in the map container when no map is named.
const MissingMapMessage = "No map selected. Add ?map=<name> to the address."

// Page is the document hosting the map.
type Page interface {
	Location() *url.URL
	SetContainerText(text string)
}

// Fetcher retrieves the raw map document at the given URL.
type Fetcher interface {
	Fetch(ctx context.Context, resource *url.URL) ([]byte, error)
}

// View is the initial map position; absent members fall back to canvas defaults.
type View struct {
	Center option.Option[walk.LatLng]
	Zoom   option.Option[float64]
}

// Canvas is the map widget.
type Canvas interface {
	Init(view View, visible []layers.Layer) error
	AddLayerControl(bases []*layers.TileLayer, overlays []*layers.Overlay) error
}

type State int

const (
	AwaitingDataset State = iota
	Rendered
	ErrorDisplayed
)

func (s State) String() string {
	switch s {
	case AwaitingDataset:
		return "awaiting dataset"
	case Rendered:
		return "rendered"
	case ErrorDisplayed:
		return "error displayed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// FetchError reports that the map document could not be retrieved. The page
// stays in AwaitingDataset with an empty map container.
type FetchError struct {
	Name string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch map '%s': %v", e.Name, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ErrFinished is returned by Run on a controller that already left AwaitingDataset.
var ErrFinished = errors.New("session already finished")

type Controller struct {
	page       Page
	fetcher    Fetcher
	canvas     Canvas
	baseLayers []*layers.TileLayer
	state      State
	layers     *layers.Composition
}

func New(page Page, fetcher Fetcher, canvas Canvas, baseLayers []*layers.TileLayer) *Controller {
	return &Controller{
		page:       page,
		fetcher:    fetcher,
		canvas:     canvas,
		baseLayers: baseLayers,
		state:      AwaitingDataset,
	}
}

func (c *Controller) State() State {
	return c.state
}

// Layers returns the composition built by the last successful Run.
func (c *Controller) Layers() *layers.Composition {
	return c.layers
}

// Run loads and renders the map named by the page's query.
//
// A missing map name is shown on the page and is not an error. Fetch and parse
// failures are returned unchanged in meaning; nothing is rendered in that case
// and the user sees an empty map container.
func (c *Controller) Run(ctx context.Context) error {
	if c.state != AwaitingDataset {
		return ErrFinished
	}

	location := c.page.Location()

	name := location.Query().Get(QueryParameter)
	if name == "" {
		c.page.SetContainerText(MissingMapMessage)
		c.state = ErrorDisplayed
		return nil
	}

	resource, err := ResourceURL(location, name)
	if err != nil {
		return err
	}

	payload, err := c.fetcher.Fetch(ctx, resource)
	if err != nil {
		return &FetchError{Name: name, Err: err}
	}

	ds, err := walk.Decode(payload)
	if err != nil {
		return fmt.Errorf("parse map '%s': %w", name, err)
	}

	composition := layers.Build(ds, c.baseLayers)

	view := View{Center: ds.Center, Zoom: ds.Zoom}
	if err := c.canvas.Init(view, composition.Visible); err != nil {
		return fmt.Errorf("init canvas: %w", err)
	}

	if err := c.canvas.AddLayerControl(composition.BaseLayers, composition.Overlays); err != nil {
		return fmt.Errorf("add layer control: %w", err)
	}

	log.Printf("rendered map '%s' with %d overlays", name, len(composition.Overlays))

	c.layers = composition
	c.state = Rendered
	return nil
}

// ResourceURL replaces the last path segment of location by maps/<name>.json.
func ResourceURL(location *url.URL, name string) (*url.URL, error) {
	ref, err := url.Parse("maps/" + url.PathEscape(name) + ".json")
	if err != nil {
		return nil, fmt.Errorf("map url for '%s': %w", name, err)
	}

	return location.ResolveReference(ref), nil
}
