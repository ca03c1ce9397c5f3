package layers

import "github.com/bgraf/walkmap/walk"

// IsPresent reports whether any point carries a value for the attribute.
// A nil point collection counts as absent.
func IsPresent(points []walk.PointRecord, a walk.Attribute) bool {
	if points == nil {
		return false
	}

	for _, p := range points {
		if p.Value(a).IsSome() {
			return true
		}
	}

	return false
}
