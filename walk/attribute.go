package walk

// Attribute tags one optional numeric sample carried by a point record.
type Attribute int

const (
	Speed Attribute = iota
	HeartRate
	Elevation
	RunningDistance
	Cadence
	Temperature
)

var attributeKeys = [...]string{
	Speed:           "speed",
	HeartRate:       "heart_rate",
	Elevation:       "elevation",
	RunningDistance: "running_distance",
	Cadence:         "cadence",
	Temperature:     "temperature",
}

// Attributes lists all attributes in popup order.
func Attributes() []Attribute {
	return []Attribute{Speed, HeartRate, Elevation, RunningDistance, Cadence, Temperature}
}

// Key is the property name of the attribute in the map document.
func (a Attribute) Key() string {
	if a < 0 || int(a) >= len(attributeKeys) {
		return ""
	}
	return attributeKeys[a]
}

// RangeKey is the name of the document member holding the attribute's display range.
func (a Attribute) RangeKey() string {
	return a.Key() + "_range"
}

func (a Attribute) String() string {
	return a.Key()
}

func ParseAttribute(key string) (Attribute, bool) {
	for i, k := range attributeKeys {
		if k == key {
			return Attribute(i), true
		}
	}
	return 0, false
}
