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

const infoDesc = `
Show the update center's record for a plugin.

This prints the plugin's current release, the Jenkins core version it
requires, its published checksum and size, and its declared dependencies,
without downloading anything.
`

func newInfoCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	client := action.NewInfo(cfg)

	cmd := &cobra.Command{
		Use:   "info PLUGIN",
		Short: "show a plugin's update center record",
		Long:  infoDesc,
		Args:  require.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return client.Run(out, args[0])
		},
	}

	return cmd
}
