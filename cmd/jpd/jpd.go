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

package main // import "github.com/jonggeun2001/jenkins-plugin-downloader/cmd/jpd"

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonggeun2001/jenkins-plugin-downloader/internal/logging"
	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/action"
	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/cli"
)

var settings = cli.New()

func init() {
	slog.SetDefault(logging.NewLogger(os.Stderr, func() bool { return settings.Debug }))
}

func main() {
	actionConfig := new(action.Configuration)
	cmd := newRootCmd(actionConfig, os.Stdout, os.Args[1:])

	cobra.OnInitialize(func() {
		actionConfig.Init(settings)
	})

	if err := cmd.Execute(); err != nil {
		slog.Debug(fmt.Sprintf("%+v", err))
		os.Exit(1)
	}
}
