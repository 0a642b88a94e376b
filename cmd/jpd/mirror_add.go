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

const mirrorAddDesc = `
Add a download mirror to the mirrors file.

The URL is the base under which plugin artifacts are published, for
example https://mirrors.example.com/jenkins/plugins. Mirrors are tried
in the order they were added.
`

func newMirrorAddCmd(out io.Writer) *cobra.Command {
	o := &action.MirrorAddOptions{}

	cmd := &cobra.Command{
		Use:   "add [NAME] [URL]",
		Short: "add a download mirror",
		Long:  mirrorAddDesc,
		Args:  require.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			o.Name = args[0]
			o.URL = args[1]
			o.MirrorsFile = settings.MirrorsConfig

			return o.Run(out)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.Username, "username", "", "mirror username")
	f.StringVar(&o.Password, "password", "", "mirror password")
	f.BoolVar(&o.PasswordFromStdinOpt, "password-stdin", false, "read mirror password from stdin")
	f.BoolVar(&o.ForceUpdate, "force-update", false, "replace (overwrite) the mirror if it already exists")

	return cmd
}
