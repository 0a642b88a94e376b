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
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/action"
	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/cli/require"
)

const mirrorDesc = `
This command consists of multiple subcommands to interact with download mirrors.

It can be used to add, remove, and list the mirrors artifacts are
downloaded from. Mirrors are tried in the order they appear in the
mirrors file; when none are configured, the public Jenkins download
endpoints are used.
`

func newMirrorCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mirror add|remove|list",
		Short: "add, list, or remove download mirrors",
		Long:  mirrorDesc,
		Args:  require.NoArgs,
	}

	cmd.AddCommand(newMirrorAddCmd(out))
	cmd.AddCommand(newMirrorListCmd(cfg, out))
	cmd.AddCommand(newMirrorRemoveCmd(out))

	return cmd
}

func isNotExist(err error) bool {
	return os.IsNotExist(errors.Cause(err))
}
