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

// This helper builds paths to jpd's configuration, cache and data paths.
const lp = lazypath("jpd")

// ConfigPath returns the path where jpd stores configuration.
func ConfigPath(elem ...string) string {
	return lp.configPath(elem...)
}

// CachePath returns the path where jpd stores cached objects.
func CachePath(elem ...string) string {
	return lp.cachePath(elem...)
}

// DataPath returns the path where jpd stores data.
func DataPath(elem ...string) string {
	return lp.dataPath(elem...)
}
