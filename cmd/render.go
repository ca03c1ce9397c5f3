package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/bgraf/walkmap/config"
	"github.com/bgraf/walkmap/fetch"
	"github.com/bgraf/walkmap/render"
	"github.com/bgraf/walkmap/session"
	"github.com/spf13/cobra"
)

var renderOutputPath string

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render PAGE-URL",
	Short: "Render the map page for a URL into a standalone HTML file",
	Long: `Loads the map named by the ?map= query of PAGE-URL from the server at that
address and writes the finished page.

Example:
  walkmap render 'http://localhost:8000/walk.html?map=isar' -o isar.html`,
	Args: cobra.ExactArgs(1),
	RunE: runRenderCmd,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutputPath, "output", "o", "", "Output file (default stdout)")
}

func runRenderCmd(cmd *cobra.Command, args []string) error {
	location, err := url.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid page url: %w", err)
	}
	if !location.IsAbs() {
		return fmt.Errorf("page url '%s' must be absolute", args[0])
	}

	baseLayers, err := render.BaseLayers(config.BaseLayersFile())
	if err != nil {
		return err
	}

	page, err := render.NewPage(location)
	if err != nil {
		return err
	}

	canvas := render.NewLeafletCanvas(page)
	controller := session.New(page, fetch.NewHTTP(), canvas, baseLayers)

	if err := controller.Run(context.Background()); err != nil {
		var fetchErr *session.FetchError
		if !errors.As(err, &fetchErr) {
			return err
		}
		log.Println(err)
	}

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	if renderOutputPath == "" {
		_, err = os.Stdout.Write(buf.Bytes())
		return err
	}

	if err := os.WriteFile(renderOutputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write '%s': %w", renderOutputPath, err)
	}

	log.Printf("wrote %s (%s)", renderOutputPath, controller.State())

	return nil
}
