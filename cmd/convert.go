package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bgraf/walkmap/config"
	"github.com/bgraf/walkmap/filesystem"
	"github.com/bgraf/walkmap/geotrack"
	"github.com/bgraf/walkmap/walk"
	"github.com/spf13/cobra"
)

var (
	convertOutputDirectory string
	convertForce           bool
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert TRACK-FILE-OR-DIR...",
	Short: "Convert GPX and NMEA tracks into map documents",
	Long: `Converts each track file into <name>.json inside the maps directory.
Directories are searched for track files one level deep. Documents newer than
their track are skipped unless --force is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvertCmd,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertOutputDirectory, "output-dir", "O", "", "Maps directory (default from config)")
	convertCmd.Flags().BoolVar(&convertForce, "force", false, "Convert even if the map document is up to date")
}

func runConvertCmd(cmd *cobra.Command, args []string) error {
	outputDirectory := convertOutputDirectory
	if outputDirectory == "" {
		outputDirectory = config.MapsDirectory()
	}

	if err := filesystem.CreateDirectoryIfNotExists(outputDirectory); err != nil {
		return fmt.Errorf("create maps directory: %w", err)
	}

	trackFiles, err := filesystem.GatherFiles(args, geotrack.TrackExtensions())
	if err != nil {
		return err
	}
	if len(trackFiles) == 0 {
		return fmt.Errorf("no track files found")
	}

	targets, err := mapDocumentTargets(trackFiles, outputDirectory)
	if err != nil {
		return err
	}

	converter := geotrack.NewConverter(config.ConvertZoom())

	converted := 0
	for i, trackFile := range trackFiles {
		target := targets[i]

		if !convertForce && filesystem.IsUpToDate(trackFile, target) {
			log.Printf("skipping %s, up to date", trackFile)
			continue
		}

		if err := convertTrack(converter, trackFile, target); err != nil {
			return err
		}

		log.Printf("converted %s -> %s", trackFile, target)
		converted++
	}

	log.Printf("converted %d of %d tracks", converted, len(trackFiles))

	return nil
}

func mapDocumentName(trackFile string) string {
	base := filepath.Base(trackFile)
	return strings.TrimSuffix(base, filepath.Ext(base)) + config.MapDocumentExtension()
}

// mapDocumentTargets assigns each track file its document path in outputDirectory.
// Two tracks sharing a base name would overwrite each other and are rejected.
func mapDocumentTargets(trackFiles []string, outputDirectory string) ([]string, error) {
	sources := make(map[string]string, len(trackFiles))
	targets := make([]string, len(trackFiles))

	for i, trackFile := range trackFiles {
		name := mapDocumentName(trackFile)
		if other, ok := sources[name]; ok {
			return nil, fmt.Errorf("'%s' and '%s' would both be written to '%s'", other, trackFile, name)
		}
		sources[name] = trackFile
		targets[i] = filepath.Join(outputDirectory, name)
	}

	return targets, nil
}

func convertTrack(converter *geotrack.Converter, trackFile, target string) error {
	lines, err := geotrack.LoadTrack(trackFile)
	if err != nil {
		return err
	}

	ds, err := converter.Convert(lines)
	if err != nil {
		return fmt.Errorf("convert '%s': %w", trackFile, err)
	}

	content, err := walk.Encode(ds)
	if err != nil {
		return fmt.Errorf("encode '%s': %w", trackFile, err)
	}

	if err := os.WriteFile(target, content, 0644); err != nil {
		return fmt.Errorf("write '%s': %w", target, err)
	}

	return nil
}
