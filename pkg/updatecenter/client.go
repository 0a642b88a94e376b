/*
Copyright The Jenkins Plugin Downloader Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package updatecenter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/getter"
)

// The live update-center.json is a JavaScript callback invocation
// wrapping the JSON payload. The .actual.json variant serves the bare
// payload instead.
const (
	jsonpPrefix = "updateCenter.post("
	jsonpSuffix = ");"
)

// document is the top level update center payload. Only the plugins
// mapping is consumed; the document also carries core, warnings and
// signature blocks this tool has no use for.
type document struct {
	Plugins map[string]*Plugin `json:"plugins"`
}

// Client fetches the update center document and caches the parsed
// catalog for the life of the process.
type Client struct {
	// URL locates the update center document.
	URL string
	// Getters resolve the scheme used by URL.
	Getters getter.Providers
	// Options are applied to the catalog request.
	Options []getter.Option

	catalog *Catalog
}

// NewClient returns a catalog client for the given update center URL.
func NewClient(url string, getters getter.Providers, opts ...getter.Option) *Client {
	return &Client{URL: url, Getters: getters, Options: opts}
}

// Catalog returns the plugin catalog, fetching the document on first
// use. The fetch happens at most once; later calls reuse the parsed
// catalog even when several downloads share the client.
func (c *Client) Catalog() (*Catalog, error) {
	if c.catalog != nil {
		return c.catalog, nil
	}
	catalog, err := c.fetch()
	if err != nil {
		return nil, err
	}
	c.catalog = catalog
	return c.catalog, nil
}

func (c *Client) fetch() (*Catalog, error) {
	u, err := url.Parse(c.URL)
	if err != nil {
		return nil, &FetchError{URL: c.URL, Err: errors.Wrap(err, "invalid update center URL")}
	}
	g, err := c.Getters.ByScheme(u.Scheme)
	if err != nil {
		return nil, &FetchError{URL: c.URL, Err: err}
	}

	opts := append([]getter.Option{getter.WithURL(c.URL)}, c.Options...)
	resp, err := g.Get(c.URL, opts...)
	if err != nil {
		return nil, &FetchError{URL: c.URL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: c.URL, Err: err}
	}

	catalog, err := ParseDocument(body)
	if err != nil {
		return nil, &FetchError{URL: c.URL, Err: err}
	}
	slog.Debug("fetched update center", "url", c.URL, "plugins", catalog.Len())
	return catalog, nil
}

// ParseDocument decodes an update center document into a Catalog,
// accepting both the JSONP-wrapped and the bare JSON form.
func ParseDocument(data []byte) (*Catalog, error) {
	var doc document
	if err := json.Unmarshal(stripWrapper(data), &doc); err != nil {
		return nil, errors.Wrap(err, "unparseable update center document")
	}
	if doc.Plugins == nil {
		return nil, errors.New("update center document has no plugins mapping")
	}
	// Records are keyed by name in the document; make each record carry
	// its key so a *Plugin is self-describing.
	for name, p := range doc.Plugins {
		if p.Name == "" {
			p.Name = name
		}
	}
	return &Catalog{plugins: doc.Plugins}, nil
}

// stripWrapper removes the JavaScript callback around the update center
// payload. The payload sits on its own line inside the callback, so the
// suffix is trimmed after the surrounding whitespace on both sides.
// Input without the callback passes through unchanged.
func stripWrapper(data []byte) []byte {
	s := string(data)
	if i := strings.Index(s, jsonpPrefix); i >= 0 {
		s = s[i+len(jsonpPrefix):]
		s = strings.TrimSpace(s)
		s = strings.TrimSuffix(s, jsonpSuffix)
		s = strings.TrimSpace(s)
	}
	return []byte(s)
}
