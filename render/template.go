package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/bgraf/walkmap/session"
	"github.com/google/uuid"
	"golang.org/x/net/html"
)

//go:embed templates/*
var templatesFS embed.FS

const pageTemplateName = "walk.html"

// DefaultTitle is used when the page does not name a map.
const DefaultTitle = "Walk"

func readPageTemplate() (*template.Template, error) {
	templates, err := template.ParseFS(templatesFS, "templates/*")
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return templates, nil
}

// Page is a map page built from the embedded template. The map container
// gets a unique element ID so several pages can be combined.
type Page struct {
	location    *url.URL
	doc         *goquery.Document
	containerID string
}

func NewPage(location *url.URL) (*Page, error) {
	templates, err := readPageTemplate()
	if err != nil {
		return nil, err
	}

	title := location.Query().Get(session.QueryParameter)
	if title == "" {
		title = DefaultTitle
	}

	containerID := fmt.Sprintf("map-%s", uuid.NewString())

	var buf bytes.Buffer
	err = templates.ExecuteTemplate(&buf, pageTemplateName, map[string]any{
		"Title":       title,
		"ContainerID": containerID,
	})
	if err != nil {
		return nil, fmt.Errorf("could not execute template: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	return &Page{
		location:    location,
		doc:         doc,
		containerID: containerID,
	}, nil
}

func (p *Page) Location() *url.URL {
	return p.location
}

func (p *Page) ContainerID() string {
	return p.containerID
}

// Container selects the element the map is mounted into.
func (p *Page) Container() *goquery.Selection {
	return p.doc.Find("#" + p.containerID)
}

func (p *Page) SetContainerText(text string) {
	p.Container().SetText(text)
}

func (p *Page) Render(w io.Writer) error {
	return html.Render(w, p.doc.Get(0))
}
