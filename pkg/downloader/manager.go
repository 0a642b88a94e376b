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

package downloader

import (
	"fmt"
	"io"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"

	"github.com/jonggeun2001/jenkins-plugin-downloader/internal/resolver"
	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/updatecenter"
)

// Manager downloads a plugin together with its transitive required
// dependencies.
type Manager struct {
	// Out is the location to write progress messages.
	Out io.Writer
	// UpdateCenter supplies the plugin catalog.
	UpdateCenter *updatecenter.Client
	// Downloader fetches individual artifacts.
	Downloader *PluginDownloader
	// OutputDir is the directory artifacts are saved into. It is
	// created if it does not exist.
	OutputDir string

	// downloaded records the plugins fetched in this run, so a
	// dependency shared by several plugins is fetched once.
	downloaded map[string]bool
}

// DownloadWithDependencies fetches the named plugin and everything it
// transitively requires. Dependencies are downloaded before the plugin
// itself, so a directory that contains the root artifact also contains
// its closure.
//
// An empty version downloads whatever the update center lists as
// current. A pinned version replaces the catalog's for the root
// artifact only; dependency metadata still comes from the catalog
// record, which the update center only publishes for its current
// release.
func (m *Manager) DownloadWithDependencies(name, version string) error {
	catalog, err := m.UpdateCenter.Catalog()
	if err != nil {
		return err
	}

	root, err := catalog.Get(name)
	if err != nil {
		return err
	}

	rootVersion := root.Version
	if version != "" && !versionEquals(version, root.Version) {
		fmt.Fprintf(m.Out, "Pinning %s to version %s (update center lists %s)\n", name, version, root.Version)
		rootVersion = version
	}

	deps, err := resolver.New(catalog).Resolve(name)
	if err != nil {
		return err
	}

	if err := m.ensureOutputDir(); err != nil {
		return err
	}

	for _, dep := range deps {
		p := catalog.Lookup(dep)
		if p == nil {
			// The update center names the dependency but carries no
			// record for it, so there is no version to form a URL with.
			fmt.Fprintf(m.Out, "WARNING: dependency %s has no update center record, skipping\n", dep)
			continue
		}
		if err := m.download(dep, p.Version); err != nil {
			return err
		}
	}

	return m.download(name, rootVersion)
}

// download fetches a single plugin unless this run already has it.
func (m *Manager) download(name, version string) error {
	if m.downloaded[name] {
		fmt.Fprintf(m.Out, "Plugin %s already downloaded, skipping\n", name)
		return nil
	}

	fmt.Fprintf(m.Out, "Downloading %s %s from mirror %s\n", name, version, m.Downloader.Mirrors.Current().Name)
	if _, err := m.Downloader.DownloadTo(name, version, m.OutputDir); err != nil {
		return err
	}

	if m.downloaded == nil {
		m.downloaded = make(map[string]bool)
	}
	m.downloaded[name] = true
	return nil
}

func (m *Manager) ensureOutputDir() error {
	fi, err := os.Stat(m.OutputDir)
	if os.IsNotExist(err) {
		return os.MkdirAll(m.OutputDir, 0755)
	}
	if err != nil {
		return errors.Wrapf(err, "could not stat %s", m.OutputDir)
	}
	if !fi.IsDir() {
		return errors.Errorf("%s is not a directory", m.OutputDir)
	}
	return nil
}

// versionEquals reports whether two version strings name the same
// release.
func versionEquals(v1, v2 string) bool {
	sv1, err := semver.NewVersion(v1)
	if err != nil {
		// Fallback to string comparison.
		return v1 == v2
	}
	sv2, err := semver.NewVersion(v2)
	if err != nil {
		return false
	}
	return sv1.Equal(sv2)
}
