package layers

import (
	"github.com/bgraf/walkmap/gradient"
	"github.com/bgraf/walkmap/walk"
)

// TrackName is the name of the undecorated track overlay.
const TrackName = "Track"

// Spec declares how one sampled attribute becomes an overlay.
type Spec struct {
	Attribute walk.Attribute
	Name      string
	Stops     gradient.Stops
	Fallback  walk.Range
	Weight    int

	// Optional overlays are only built if at least one point carries the attribute.
	Optional bool

	// VisibleOnLoad marks the overlay as part of the initially shown layers.
	VisibleOnLoad bool
}

// Specs lists the gradient overlays in layer control order.
var Specs = []Spec{
	{
		Attribute:     walk.HeartRate,
		Name:          "Heart rate",
		Stops:         gradient.GreenWhiteRed,
		Fallback:      walk.Range{Min: 80, Max: 160},
		Weight:        8,
		Optional:      true,
		VisibleOnLoad: true,
	},
	{
		Attribute: walk.Elevation,
		Name:      "Elevation",
		Stops:     gradient.BrownWhite,
		Fallback:  walk.Range{Min: 300, Max: 400},
		Weight:    4,
	},
	{
		Attribute: walk.Speed,
		Name:      "Speed",
		Stops:     gradient.GreenWhiteRed,
		Fallback:  walk.Range{Min: 0, Max: 10},
		Weight:    4,
	},
	{
		Attribute: walk.Cadence,
		Name:      "Cadence",
		Stops:     gradient.GreenWhiteRed,
		Fallback:  walk.Range{Min: 0, Max: 120},
		Weight:    4,
		Optional:  true,
	},
	{
		Attribute: walk.Temperature,
		Name:      "Temperature",
		Stops:     gradient.BlueWhiteRed,
		Fallback:  walk.Range{Min: -10, Max: 45},
		Weight:    4,
		Optional:  true,
	},
}

// SpecFor returns the overlay declaration of the given attribute.
func SpecFor(a walk.Attribute) (Spec, bool) {
	for _, s := range Specs {
		if s.Attribute == a {
			return s, true
		}
	}
	return Spec{}, false
}

// DisplayRange is the range supplied by the dataset or the spec's fallback.
func (s Spec) DisplayRange(ds *walk.Dataset) walk.Range {
	return ds.Range(s.Attribute).OrElse(s.Fallback)
}
