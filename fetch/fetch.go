// Package fetch retrieves map documents for a session.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var ErrNotFound = errors.New("map document not found")

// MapsSegment is the directory segment map documents live under.
const MapsSegment = "maps"

// HTTP fetches documents over the network.
type HTTP struct {
	Client *http.Client
}

func NewHTTP() *HTTP {
	return &HTTP{Client: http.DefaultClient}
}

func (f *HTTP) Fetch(ctx context.Context, resource *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resource.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("get %s: %w", resource, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: unexpected status %s", resource, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", resource, err)
	}

	return body, nil
}

// Dir resolves document URLs against a local maps directory, ignoring scheme and host.
type Dir struct {
	Root string
}

func (f *Dir) Fetch(ctx context.Context, resource *url.URL) ([]byte, error) {
	fileName, err := DocumentFileName(resource.EscapedPath())
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(filepath.Join(f.Root, fileName))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", fileName, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", fileName, err)
	}

	return content, nil
}

// DocumentFileName extracts "<name>.json" from an escaped ".../maps/<name>.json" path.
// Names that would leave the maps directory are rejected with ErrNotFound.
func DocumentFileName(escapedPath string) (string, error) {
	dir, file := path.Split(escapedPath)
	if path.Base(dir) != MapsSegment {
		return "", fmt.Errorf("'%s' is not below /%s/: %w", escapedPath, MapsSegment, ErrNotFound)
	}

	name, err := url.PathUnescape(file)
	if err != nil {
		return "", fmt.Errorf("unescape '%s': %w", file, err)
	}

	return ValidDocumentFileName(name)
}

// ValidDocumentFileName checks that name is a plain "<name>.json" file name.
func ValidDocumentFileName(name string) (string, error) {
	if !strings.HasSuffix(name, ".json") || len(name) == len(".json") {
		return "", fmt.Errorf("'%s' is not a map document: %w", name, ErrNotFound)
	}
	if strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid map document name '%s': %w", name, ErrNotFound)
	}

	return name, nil
}
