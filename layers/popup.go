package layers

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bgraf/walkmap/walk"
)

// Whole-number readings round halves away from zero.
var sampleFormats = map[walk.Attribute]func(v float64) string{
	walk.Speed: func(v float64) string {
		return fmt.Sprintf("%.1f km/h", v)
	},
	walk.HeartRate: func(v float64) string {
		return fmt.Sprintf("%.0f BPM", math.Round(v))
	},
	walk.Elevation: func(v float64) string {
		return fmt.Sprintf("%.1f m ASL", v)
	},
	walk.RunningDistance: func(v float64) string {
		return fmt.Sprintf("%.3f km distance from beginning", v/1000)
	},
	walk.Cadence: func(v float64) string {
		return fmt.Sprintf("%.0f RPM cadence", math.Round(v))
	},
	walk.Temperature: func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64) + " °C"
	},
}

// Compose builds the popup text of a point from the attributes it carries.
// ok is false if the point has no properties at all; no popup should be bound then.
func Compose(p walk.PointRecord) (popup string, ok bool) {
	if !p.HasProperties {
		return "", false
	}

	var b strings.Builder

	for _, a := range walk.Attributes() {
		v, ok := p.Value(a).Lookup()
		if !ok {
			continue
		}
		paragraph(&b, sampleFormats[a](v))
	}

	if ts, ok := p.Timestamp.Lookup(); ok {
		paragraph(&b, ts)
	}

	return b.String(), true
}

func paragraph(b *strings.Builder, text string) {
	b.WriteString("<p>")
	b.WriteString(text)
	b.WriteString("</p>")
}
