// Copyright The Jenkins Plugin Downloader Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

// http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jpdpath

import (
	"os"
	"path/filepath"
)

const (
	// CacheHomeEnvVar is the environment variable used by jpd
	// for the cache directory. When no value is set a default is used.
	CacheHomeEnvVar = "JPD_CACHE_HOME"

	// ConfigHomeEnvVar is the environment variable used by jpd
	// for the config directory. When no value is set a default is used.
	ConfigHomeEnvVar = "JPD_CONFIG_HOME"

	// DataHomeEnvVar is the environment variable used by jpd
	// for the data directory. When no value is set a default is used.
	DataHomeEnvVar = "JPD_DATA_HOME"

	// xdgCacheHomeEnvVar is the environment variable used by the
	// XDG base directory specification for the cache directory.
	xdgCacheHomeEnvVar = "XDG_CACHE_HOME"

	// xdgConfigHomeEnvVar is the environment variable used by the
	// XDG base directory specification for the config directory.
	xdgConfigHomeEnvVar = "XDG_CONFIG_HOME"

	// xdgDataHomeEnvVar is the environment variable used by the
	// XDG base directory specification for the data directory.
	xdgDataHomeEnvVar = "XDG_DATA_HOME"
)

// lazypath is a lazy-loaded path buffer for the XDG base directory specification.
type lazypath string

func (l lazypath) path(jpdEnvVar, xdgEnvVar string, defaultFn func() string, elem ...string) string {

	// There is an order to checking for a path.
	// 1. See if a jpd specific environment variable has been set.
	// 2. Check if an XDG environment variable is set
	// 3. Fall back to a default
	base := os.Getenv(jpdEnvVar)
	if base != "" {
		return filepath.Join(base, filepath.Join(elem...))
	}
	base = os.Getenv(xdgEnvVar)
	if base == "" {
		base = defaultFn()
	}
	return filepath.Join(base, string(l), filepath.Join(elem...))
}

// cachePath defines the base directory relative to which user specific non-essential data files
// should be stored.
func (l lazypath) cachePath(elem ...string) string {
	return l.path(CacheHomeEnvVar, xdgCacheHomeEnvVar, cacheHome, filepath.Join(elem...))
}

// configPath defines the base directory relative to which user specific configuration files should
// be stored.
func (l lazypath) configPath(elem ...string) string {
	return l.path(ConfigHomeEnvVar, xdgConfigHomeEnvVar, configHome, filepath.Join(elem...))
}

// dataPath defines the base directory relative to which user specific data files should be stored.
func (l lazypath) dataPath(elem ...string) string {
	return l.path(DataHomeEnvVar, xdgDataHomeEnvVar, dataHome, filepath.Join(elem...))
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return ""
}
