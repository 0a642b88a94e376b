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

package main

import (
	"os"
	"strings"
	"testing"

	"github.com/jonggeun2001/jenkins-plugin-downloader/internal/test/ensure"
	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/cli"
	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/jpdpath"
)

func TestRootCmd(t *testing.T) {
	tests := []struct {
		name          string
		args          string
		envars        map[string]string
		mirrorsConfig string
		updateCenter  string
	}{
		{
			name:         "defaults",
			args:         "env",
			updateCenter: "https://updates.jenkins.io/update-center.json",
		},
		{
			name:          "with flags set",
			args:          "env --mirrors-config /tmp/mirrors.yaml --update-center https://uc.example.com/update-center.json",
			mirrorsConfig: "/tmp/mirrors.yaml",
			updateCenter:  "https://uc.example.com/update-center.json",
		},
		{
			name:          "with envvars set",
			args:          "env",
			envars:        map[string]string{"JPD_MIRRORS_CONFIG": "/from/env/mirrors.yaml", "JPD_UPDATE_CENTER": "https://env.example.com/uc.json"},
			mirrorsConfig: "/from/env/mirrors.yaml",
			updateCenter:  "https://env.example.com/uc.json",
		},
		{
			name:          "with flags and envvars set",
			args:          "env --mirrors-config /flag/mirrors.yaml",
			envars:        map[string]string{"JPD_MIRRORS_CONFIG": "/from/env/mirrors.yaml"},
			mirrorsConfig: "/flag/mirrors.yaml",
			updateCenter:  "https://updates.jenkins.io/update-center.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer resetEnv()()
			ensure.HomeDirs(t)

			for k, v := range tt.envars {
				os.Setenv(k, v)
			}
			settings = cli.New()

			if _, _, err := executeActionCommand(tt.args); err != nil {
				t.Fatalf("unexpected error: %s", err)
			}

			// The default config path has to be computed after
			// ensure.HomeDirs so it reflects the isolated home.
			if tt.mirrorsConfig == "" {
				tt.mirrorsConfig = jpdpath.ConfigPath("mirrors.yaml")
			}

			if settings.MirrorsConfig != tt.mirrorsConfig {
				t.Errorf("expected mirrors config %q, got %q", tt.mirrorsConfig, settings.MirrorsConfig)
			}
			if settings.UpdateCenterURL != tt.updateCenter {
				t.Errorf("expected update center %q, got %q", tt.updateCenter, settings.UpdateCenterURL)
			}
		})
	}
}

func TestRootCmdUnknownCommand(t *testing.T) {
	defer resetEnv()()

	_, _, err := executeActionCommand("bogus")
	if err == nil {
		t.Error("expected an error for an unknown command")
	}
}

func TestRootCmdHelp(t *testing.T) {
	defer resetEnv()()

	_, out, err := executeActionCommand("help")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for _, want := range []string{"jpd get", "$JPD_UPDATE_CENTER", "Available Commands:"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected help output to contain %q", want)
		}
	}
}
