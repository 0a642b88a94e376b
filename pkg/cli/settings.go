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

/*Package cli describes the operating environment for the jpd CLI.

Settings are drawn from JPD_* environment variables first and flags
second, so scripted and interactive use share one configuration
surface.
*/
package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/getter"
	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/jpdpath"
	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/updatecenter"
)

// EnvSettings describes all of the environment settings.
type EnvSettings struct {
	// UpdateCenterURL locates the update center document.
	UpdateCenterURL string
	// MirrorsConfig is the path to the mirrors file.
	MirrorsConfig string
	// Timeout caps a whole update center request. Artifact downloads
	// run under the download engine's own transfer supervision instead.
	Timeout time.Duration
	// Debug indicates whether jpd is running in Debug mode.
	Debug bool
}

// New builds the settings from the process environment.
func New() *EnvSettings {
	env := &EnvSettings{
		UpdateCenterURL: envOr("JPD_UPDATE_CENTER", updatecenter.DefaultURL),
		MirrorsConfig:   envOr("JPD_MIRRORS_CONFIG", jpdpath.ConfigPath("mirrors.yaml")),
		Timeout:         envDurationOr("JPD_TIMEOUT", getter.DefaultHTTPTimeout*time.Second),
	}
	env.Debug, _ = strconv.ParseBool(os.Getenv("JPD_DEBUG"))
	return env
}

// AddFlags binds flags to the given flagset.
func (s *EnvSettings) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&s.UpdateCenterURL, "update-center", s.UpdateCenterURL, "URL of the update center document")
	fs.StringVar(&s.MirrorsConfig, "mirrors-config", s.MirrorsConfig, "path to the file containing download mirror names and URLs")
	fs.DurationVar(&s.Timeout, "timeout", s.Timeout, "time to wait for the update center document")
	fs.BoolVar(&s.Debug, "debug", s.Debug, "enable verbose output")
}

// EnvVars returns the environment this invocation runs under, for
// 'jpd env' and for handing to subprocesses.
func (s *EnvSettings) EnvVars() map[string]string {
	return map[string]string{
		"JPD_BIN":            os.Args[0],
		"JPD_CACHE_HOME":     jpdpath.CachePath(""),
		"JPD_CONFIG_HOME":    jpdpath.ConfigPath(""),
		"JPD_DATA_HOME":      jpdpath.DataPath(""),
		"JPD_DEBUG":          fmt.Sprint(s.Debug),
		"JPD_MIRRORS_CONFIG": s.MirrorsConfig,
		"JPD_TIMEOUT":        s.Timeout.String(),
		"JPD_UPDATE_CENTER":  s.UpdateCenterURL,
	}
}

func envOr(name, def string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return def
}

func envDurationOr(name string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(name); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
