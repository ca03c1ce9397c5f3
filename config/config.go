package config

import "github.com/spf13/viper"

var (
	KeyMapsDirectory  = "maps.directory"
	KeyServeAddress   = "serve.address"
	KeyBaseLayersFile = "layers.file"
	KeyConvertZoom    = "convert.zoom"
)

func init() {
	viper.SetDefault(KeyMapsDirectory, "maps")
	viper.SetDefault(KeyServeAddress, ":8000")
	viper.SetDefault(KeyBaseLayersFile, "")
	viper.SetDefault(KeyConvertZoom, 12)
}

// MapsDirectory holds the map documents served under /maps/.
func MapsDirectory() string {
	return viper.GetString(KeyMapsDirectory)
}

func ServeAddress() string {
	return viper.GetString(KeyServeAddress)
}

// BaseLayersFile is a YAML list of tile layers; empty means built-in defaults.
func BaseLayersFile() string {
	return viper.GetString(KeyBaseLayersFile)
}

func ConvertZoom() float64 {
	return viper.GetFloat64(KeyConvertZoom)
}

func GPXExtensions() []string {
	return []string{".gpx"}
}

func NMEAExtensions() []string {
	return []string{".nmea", ".nma"}
}

// MapDocumentExtension is appended to a map name to get its document file.
func MapDocumentExtension() string {
	return ".json"
}
