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

// Package mirror manages the download mirror rotation for plugin
// artifacts.
package mirror // import "github.com/jonggeun2001/jenkins-plugin-downloader/pkg/mirror"

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// APIVersionV1 is the v1 mirrors file format version.
const APIVersionV1 = "v1"

// Entry describes one download mirror. URL is the base under which
// artifacts live as {url}/{name}/{version}/{name}.hpi. All fields are
// strings so entries can be compared for equality directly.
type Entry struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// File represents the mirrors.yaml file. Order matters: downloads walk
// the mirrors in the order they appear here.
type File struct {
	APIVersion string    `json:"apiVersion"`
	Generated  time.Time `json:"generated"`
	Mirrors    []*Entry  `json:"mirrors"`
}

// NewFile generates an empty mirrors file.
//
// Generated and APIVersion are automatically set.
func NewFile() *File {
	return &File{
		APIVersion: APIVersionV1,
		Generated:  time.Now(),
		Mirrors:    []*Entry{},
	}
}

// LoadFile takes a file at the given path and returns a File object.
func LoadFile(path string) (*File, error) {
	r := NewFile()
	b, err := os.ReadFile(path)
	if err != nil {
		return r, errors.Wrapf(err, "couldn't load mirrors file (%s)", path)
	}
	err = yaml.Unmarshal(b, r)
	return r, err
}

// Add adds one or more mirror entries to the file.
func (r *File) Add(re ...*Entry) {
	r.Mirrors = append(r.Mirrors, re...)
}

// Update replaces one or more mirror entries in the file. If an entry
// with the same name doesn't exist it is added.
func (r *File) Update(re ...*Entry) {
	for _, target := range re {
		found := false
		for j, m := range r.Mirrors {
			if m.Name == target.Name {
				r.Mirrors[j] = target
				found = true
				break
			}
		}
		if !found {
			r.Add(target)
		}
	}
}

// Has returns true if the given name is already a mirror name.
func (r *File) Has(name string) bool {
	return r.Get(name) != nil
}

// Get returns the entry with the given name if it exists, otherwise nil.
func (r *File) Get(name string) *Entry {
	for _, m := range r.Mirrors {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Remove removes the entry from the list of mirrors.
func (r *File) Remove(name string) bool {
	cp := []*Entry{}
	found := false
	for _, m := range r.Mirrors {
		if m.Name == name {
			found = true
			continue
		}
		cp = append(cp, m)
	}
	r.Mirrors = cp
	return found
}

// WriteFile writes a mirrors file to the given path.
func (r *File) WriteFile(path string, perm os.FileMode) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, perm)
}

// DefaultMirrors is the rotation used when no mirrors file exists: the
// primary Jenkins download endpoint, then the mirror network front.
func DefaultMirrors() []*Entry {
	return []*Entry{
		{Name: "default", URL: "https://updates.jenkins.io/download/plugins"},
		{Name: "mirror", URL: "https://get.jenkins.io/plugins"},
	}
}
