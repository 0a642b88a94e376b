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
	"fmt"
	"io"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/action"
	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/cli/require"
)

const mirrorListDesc = `
List the download mirrors in the order downloads will try them.

When the mirrors file is missing or empty this shows the built-in
Jenkins endpoints that downloads fall back to.
`

func newMirrorListCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "list download mirrors",
		Long:    mirrorListDesc,
		Args:    require.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			sel, err := cfg.MirrorSelector()
			if err != nil {
				return err
			}

			table := uitable.New()
			table.AddRow("NAME", "URL")
			for _, m := range sel.Mirrors() {
				table.AddRow(m.Name, m.URL)
			}
			fmt.Fprintln(out, table)
			return nil
		},
	}

	return cmd
}
