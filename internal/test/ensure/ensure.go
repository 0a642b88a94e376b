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

package ensure

import (
	"testing"

	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/jpdpath"
)

// HomeDirs points the jpd cache, config, and data directories at
// scratch space for the duration of a test.
func HomeDirs(t *testing.T) {
	t.Helper()
	t.Setenv(jpdpath.CacheHomeEnvVar, t.TempDir())
	t.Setenv(jpdpath.ConfigHomeEnvVar, t.TempDir())
	t.Setenv(jpdpath.DataHomeEnvVar, t.TempDir())
}
