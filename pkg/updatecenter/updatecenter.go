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

// Package updatecenter reads the Jenkins update center catalog.
package updatecenter // import "github.com/jonggeun2001/jenkins-plugin-downloader/pkg/updatecenter"

import (
	"fmt"
	"sort"
)

// DefaultURL is the canonical Jenkins update center document.
const DefaultURL = "https://updates.jenkins.io/update-center.json"

// Dependency is one edge in the plugin dependency graph as the update
// center declares it.
type Dependency struct {
	Name string `json:"name"`
	// Version is the minimum version the edge was built against. It is
	// advisory only; downloads always use the target plugin's own
	// catalog version.
	Version string `json:"version,omitempty"`
	// Optional edges mark integrations, not requirements, and are
	// never followed when computing what to download.
	Optional bool `json:"optional"`
}

// Plugin is a single plugin record from the update center. Only the
// fields this tool consumes are kept; the live document carries many
// more.
type Plugin struct {
	Name         string       `json:"name"`
	Version      string       `json:"version"`
	Title        string       `json:"title,omitempty"`
	Excerpt      string       `json:"excerpt,omitempty"`
	RequiredCore string       `json:"requiredCore,omitempty"`
	SHA256       string       `json:"sha256,omitempty"`
	Size         int64        `json:"size,omitempty"`
	URL          string       `json:"url,omitempty"`
	Wiki         string       `json:"wiki,omitempty"`
	Dependencies []Dependency `json:"dependencies,omitempty"`
}

// Catalog is the read-only plugin index built from one update center
// document.
type Catalog struct {
	plugins map[string]*Plugin
}

// NewCatalog wraps a plugin mapping in a Catalog. Useful for tests and
// for callers that assemble records from somewhere other than the live
// update center.
func NewCatalog(plugins map[string]*Plugin) *Catalog {
	if plugins == nil {
		plugins = map[string]*Plugin{}
	}
	return &Catalog{plugins: plugins}
}

// Get returns the record for name, or a NotFoundError when the update
// center does not list the plugin.
func (c *Catalog) Get(name string) (*Plugin, error) {
	if p := c.Lookup(name); p != nil {
		return p, nil
	}
	return nil, &NotFoundError{Name: name}
}

// Lookup returns the record for name, or nil when absent. Dependency
// edges can point at plugins the update center no longer lists, so
// absence is not an error here.
func (c *Catalog) Lookup(name string) *Plugin {
	if c == nil {
		return nil
	}
	return c.plugins[name]
}

// Has reports whether the catalog lists name.
func (c *Catalog) Has(name string) bool {
	return c.Lookup(name) != nil
}

// Len returns the number of plugins in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.plugins)
}

// Names returns every plugin name in the catalog, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, c.Len())
	for name := range c.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NotFoundError indicates that a plugin has no update center record.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("plugin %q not found in update center", e.Name)
}

// FetchError indicates that the update center document could not be
// retrieved or parsed.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("could not fetch update center %s: %s", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
