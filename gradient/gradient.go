// Package gradient maps sample values onto three-stop color gradients.
package gradient

import (
	"github.com/bgraf/walkmap/option"
	"github.com/lucasb-eyer/go-colorful"
)

// Stops is a two-segment gradient: bottom, mid and top color.
type Stops struct {
	Bottom, Mid, Top colorful.Color
}

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	red   = colorful.Color{R: 1, G: 0, B: 0}
)

var (
	// GreenWhiteRed is used for speed, heart rate and cadence.
	GreenWhiteRed = Stops{
		Bottom: colorful.Color{R: 0, G: 1, B: 0},
		Mid:    white,
		Top:    red,
	}

	// BlueWhiteRed is used for temperature.
	BlueWhiteRed = Stops{
		Bottom: colorful.Color{R: 0, G: 0, B: 1},
		Mid:    white,
		Top:    red,
	}

	// BrownWhite runs from brown over tan to white and is used for elevation.
	BrownWhite = Stops{
		Bottom: colorful.Color{R: 0.4, G: 0.2, B: 0},
		Mid:    colorful.Color{R: 0.7, G: 0.6, B: 0.5},
		Top:    white,
	}
)

// Map normalizes value into [minVal, maxVal] and picks the matching gradient color.
// Values below the range get the bottom stop, values at or above maxVal the top stop.
//
// A degenerate range (minVal == maxVal) has no interior: values at or above it
// map to the top stop and everything else to the bottom stop.
func Map(value option.Option[float64], minVal, maxVal float64, stops Stops) option.Option[colorful.Color] {
	v, ok := value.Lookup()
	if !ok {
		return option.None[colorful.Color]()
	}

	if maxVal == minVal {
		if v >= maxVal {
			return option.Some(stops.Top)
		}
		return option.Some(stops.Bottom)
	}

	factor := (v - minVal) / (maxVal - minVal)

	switch {
	case factor < 0:
		return option.Some(stops.Bottom)
	case factor >= 1:
		return option.Some(stops.Top)
	case factor < 0.5:
		return option.Some(stops.Bottom.BlendRgb(stops.Mid, 2*factor))
	default:
		return option.Some(stops.Mid.BlendRgb(stops.Top, 2*(factor-0.5)))
	}
}
