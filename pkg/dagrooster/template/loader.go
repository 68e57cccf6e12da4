// Package template loads the roster template from a file or an http(s) URL.
package template

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/ukaji3/dagrooster-go/internal/utils"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/workbook"
)

// DefaultSource is used when no template source is configured.
const DefaultSource = "template.xlsx"

// Loader opens a fresh workbook from Source on every Load.
type Loader struct {
	// Source is a file path (a leading "~" is expanded) or an http(s) URL.
	Source string
	// Client fetches URL sources. Nil means a client with RetryMax 3.
	Client *retryablehttp.Client
}

// NewLoader returns a Loader for source.
func NewLoader(source string) *Loader {
	if source == "" {
		source = DefaultSource
	}
	return &Loader{Source: source}
}

// IsURL reports whether the source is fetched over HTTP.
func (l *Loader) IsURL() bool {
	s := strings.ToLower(l.Source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Load fetches and decodes the template. The caller owns the returned workbook.
func (l *Loader) Load(ctx context.Context) (workbook.Workbook, error) {
	data, err := l.read(ctx)
	if err != nil {
		return nil, &Error{Source: l.Source, Kind: ErrNotFound, Err: err}
	}

	wb, err := workbook.Open(bytes.NewReader(data))
	if err != nil {
		return nil, &Error{Source: l.Source, Kind: ErrInvalidFormat, Err: err}
	}
	utils.Log.Debugf("loaded template %s (%d bytes)", l.Source, len(data))
	return wb, nil
}

func (l *Loader) read(ctx context.Context) ([]byte, error) {
	if l.IsURL() {
		return l.fetch(ctx)
	}

	path, err := homedir.Expand(l.Source)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	client := l.Client
	if client == nil {
		client = retryablehttp.NewClient()
		client.RetryMax = 3
		client.Logger = nil
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, l.Source, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
