package serve

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/bgraf/walkmap/config"
	"github.com/bgraf/walkmap/fetch"
	"github.com/bgraf/walkmap/layers"
	"github.com/bgraf/walkmap/render"
	"github.com/bgraf/walkmap/session"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func RunServeCmd(cmd *cobra.Command, args []string) error {
	baseLayers, err := render.BaseLayers(config.BaseLayersFile())
	if err != nil {
		return err
	}

	api := newServeAPI(config.MapsDirectory(), baseLayers)
	log.Printf("serving maps from '%s'", api.mapsDirectory)

	r := newRouter(api)
	if err = r.Run(config.ServeAddress()); err != nil {
		log.Fatal(err)
	}

	return nil
}

func newRouter(api *serveAPI) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/", api.ServePage)
	r.GET("/walk.html", api.ServePage)
	r.GET("/maps/:file", api.ServeMap)

	return r
}

type serveAPI struct {
	mapsDirectory string
	baseLayers    []*layers.TileLayer
}

func newServeAPI(mapsDirectory string, baseLayers []*layers.TileLayer) *serveAPI {
	return &serveAPI{
		mapsDirectory: mapsDirectory,
		baseLayers:    baseLayers,
	}
}

// requestLocation reconstructs the address the browser sees for this request.
func requestLocation(r *http.Request) *url.URL {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	return &url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     r.URL.Path,
		RawPath:  r.URL.RawPath,
		RawQuery: r.URL.RawQuery,
	}
}

func (api *serveAPI) ServePage(c *gin.Context) {
	page, err := render.NewPage(requestLocation(c.Request))
	if err != nil {
		c.String(http.StatusInternalServerError, "error during page creation")
		return
	}

	canvas := render.NewLeafletCanvas(page)
	fetcher := &fetch.Dir{Root: api.mapsDirectory}
	controller := session.New(page, fetcher, canvas, api.baseLayers)

	status := http.StatusOK
	if err := controller.Run(c.Request.Context()); err != nil {
		var fetchErr *session.FetchError
		if !errors.As(err, &fetchErr) {
			log.Println(err)
			c.String(http.StatusInternalServerError, "error during map rendering")
			return
		}

		// The page is still delivered; its map container stays empty.
		_ = c.Error(err)
		if errors.Is(err, fetch.ErrNotFound) {
			status = http.StatusNotFound
		}
	}

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		c.String(http.StatusInternalServerError, "error during page rendering")
		return
	}

	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func (api *serveAPI) ServeMap(c *gin.Context) {
	fileName, err := fetch.ValidDocumentFileName(c.Param("file"))
	if err != nil {
		c.String(http.StatusNotFound, "not found")
		return
	}

	filePath := filepath.Join(api.mapsDirectory, fileName)
	if info, err := os.Stat(filePath); err != nil || info.IsDir() {
		c.String(http.StatusNotFound, fmt.Sprintf("map '%s' not found", fileName))
		return
	}

	c.Header("Content-Type", "application/json")
	c.File(filePath)
}
