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

// Package action contains the logic behind each jpd command. Commands
// construct an action, set its fields from flags, and call Run.
package action

import (
	"os"

	"github.com/pkg/errors"

	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/cli"
	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/getter"
	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/mirror"
	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/updatecenter"
)

// Configuration injects the dependencies that all actions share.
type Configuration struct {
	// Settings describes the CLI environment.
	Settings *cli.EnvSettings

	// UpdateCenter fetches the plugin catalog and caches it for the
	// life of the process.
	UpdateCenter *updatecenter.Client

	// Getters resolve URL schemes for catalog and artifact requests.
	Getters getter.Providers

	mirrors *mirror.Selector
}

// Init sets up the Configuration from the environment settings. It
// runs once, after flags are parsed and before any action.
func (cfg *Configuration) Init(settings *cli.EnvSettings) {
	cfg.Settings = settings
	cfg.Getters = getter.All()
	cfg.UpdateCenter = updatecenter.NewClient(
		settings.UpdateCenterURL,
		cfg.Getters,
		getter.WithTimeout(settings.Timeout),
	)
}

// MirrorSelector returns the download mirror rotation, loading the
// mirrors file on first use. The selector is shared so the rotation
// position carries across every download in the process.
func (cfg *Configuration) MirrorSelector() (*mirror.Selector, error) {
	if cfg.mirrors != nil {
		return cfg.mirrors, nil
	}
	entries, err := loadMirrors(cfg.Settings.MirrorsConfig)
	if err != nil {
		return nil, err
	}
	sel, err := mirror.NewSelector(entries)
	if err != nil {
		return nil, err
	}
	cfg.mirrors = sel
	return cfg.mirrors, nil
}

// loadMirrors reads the configured rotation. A missing or empty file
// falls back to the built-in Jenkins mirrors; a malformed one is an
// error rather than falling back, so a typo cannot silently redirect
// downloads.
func loadMirrors(path string) ([]*mirror.Entry, error) {
	f, err := mirror.LoadFile(path)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return mirror.DefaultMirrors(), nil
		}
		return nil, err
	}
	if len(f.Mirrors) == 0 {
		return mirror.DefaultMirrors(), nil
	}
	return f.Mirrors, nil
}
