package gradient

import (
	"github.com/bgraf/walkmap/option"
	"github.com/lucasb-eyer/go-colorful"
)

// NoData is the encoding of an absent color.
const NoData = "#000000"

// Encode renders a color as "#rrggbb" with channels rounded to the nearest byte.
func Encode(c option.Option[colorful.Color]) string {
	color, ok := c.Lookup()
	if !ok {
		return NoData
	}

	return color.Hex()
}
