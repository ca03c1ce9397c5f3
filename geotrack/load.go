package geotrack

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/bgraf/walkmap/config"
)

// LoadTrack reads a GPX or NMEA track file, chosen by file extension.
func LoadTrack(trackFilePath string) (lines []Line, err error) {
	ext := strings.ToLower(path.Ext(trackFilePath))
	if slices.Contains(config.GPXExtensions(), ext) {
		lines, err = LoadGPXTrack(trackFilePath)
	} else if slices.Contains(config.NMEAExtensions(), ext) {
		lines, err = LoadNMEATrack(trackFilePath)
	} else {
		return nil, fmt.Errorf("unknown track extension '%s'", ext)
	}

	if err != nil {
		return nil, fmt.Errorf("load track '%s': %w", trackFilePath, err)
	}

	return
}

// TrackExtensions lists every extension LoadTrack understands.
func TrackExtensions() []string {
	return append(slices.Clone(config.GPXExtensions()), config.NMEAExtensions()...)
}
