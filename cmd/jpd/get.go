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
	"io"

	"github.com/spf13/cobra"

	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/action"
	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/cli/require"
)

const getDesc = `
Retrieve a plugin from the Jenkins update center and download it, along
with every plugin it requires, into a local directory.

The update center document is consulted for the plugin's current release
and its dependency graph. Required dependencies are downloaded first so
the requested plugin is the last artifact to arrive; optional
dependencies are skipped. Artifacts are fetched from the configured
download mirrors, moving on to the next mirror whenever one fails or
slows to a crawl.

A specific release of the requested plugin can be selected with
'--version'. Dependencies always download at the versions the update
center lists.
`

func newGetCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	client := action.NewGet(cfg)

	cmd := &cobra.Command{
		Use:   "get PLUGIN",
		Short: "download a plugin and its required dependencies",
		Long:  getDesc,
		Args:  require.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return client.Run(out, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVarP(&client.Version, "version", "v", "", "download the specified version of the plugin instead of the update center's current one")
	f.StringVarP(&client.OutputDir, "output-dir", "o", "plugins", "directory to write the downloaded artifacts to")

	return cmd
}
