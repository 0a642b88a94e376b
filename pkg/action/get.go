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

package action

import (
	"fmt"
	"io"

	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/downloader"
)

// Get is the action for downloading a plugin and its required
// dependencies.
//
// It provides the implementation of 'jpd get'.
type Get struct {
	cfg *Configuration

	// Version pins the root plugin to a release instead of the update
	// center's current one. Dependencies always download at their
	// catalog versions.
	Version string
	// OutputDir is the directory artifacts are written to.
	OutputDir string
}

// NewGet creates a new Get object with the given configuration.
func NewGet(cfg *Configuration) *Get {
	return &Get{cfg: cfg}
}

// Run executes 'jpd get' against the given plugin.
func (g *Get) Run(out io.Writer, name string) error {
	mirrors, err := g.cfg.MirrorSelector()
	if err != nil {
		return err
	}

	m := &downloader.Manager{
		Out:          out,
		UpdateCenter: g.cfg.UpdateCenter,
		Downloader: &downloader.PluginDownloader{
			Out:     out,
			Mirrors: mirrors,
			Getters: g.cfg.Getters,
		},
		OutputDir: g.OutputDir,
	}
	if err := m.DownloadWithDependencies(name, g.Version); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved %s and its required dependencies to %s\n", name, g.OutputDir)
	return nil
}
