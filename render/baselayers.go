package render

import (
	"fmt"
	"os"

	"github.com/bgraf/walkmap/layers"
	"gopkg.in/yaml.v3"
)

// DefaultBaseLayers are used when no base layer file is configured.
func DefaultBaseLayers() []*layers.TileLayer {
	return []*layers.TileLayer{
		{
			Name:        "OpenStreetMap",
			URL:         "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
			Attribution: `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`,
			MaxZoom:     19,
		},
		{
			Name:        "OpenTopoMap",
			URL:         "https://{s}.tile.opentopomap.org/{z}/{x}/{y}.png",
			Attribution: `Map data: &copy; OpenStreetMap contributors, SRTM | Map style: &copy; <a href="https://opentopomap.org">OpenTopoMap</a> (CC-BY-SA)`,
			MaxZoom:     17,
		},
	}
}

// LoadBaseLayers reads an ordered YAML list of tile layers. The first entry is
// shown when the map is opened.
func LoadBaseLayers(path string) (baseLayers []*layers.TileLayer, err error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return
	}

	if err = yaml.Unmarshal(content, &baseLayers); err != nil {
		return nil, fmt.Errorf("parse base layers: %w", err)
	}

	for i, l := range baseLayers {
		if l == nil || l.Name == "" || l.URL == "" {
			return nil, fmt.Errorf("base layer %d: name and url are required", i)
		}
	}

	if len(baseLayers) == 0 {
		return nil, fmt.Errorf("no base layers in '%s'", path)
	}

	return
}

// BaseLayers loads the layers from path, or returns the defaults if path is empty.
func BaseLayers(path string) ([]*layers.TileLayer, error) {
	if path == "" {
		return DefaultBaseLayers(), nil
	}

	return LoadBaseLayers(path)
}
