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

const dependencyDesc = `
Inspect the dependencies of a plugin.

Jenkins plugins declare their dependencies in the update center document.
Each dependency names another plugin, the minimum version required, and
whether the dependency is optional. 'jpd get' downloads the required
dependencies automatically; these commands show what that set would be
without downloading anything.
`

const dependencyListDesc = `
List the full set of required dependencies for the given plugin.

The listing covers the transitive closure: dependencies of dependencies
are included. Optional dependencies of the plugin itself are shown as
skipped; dependencies missing from the update center are marked so they
can be tracked down by hand.
`

func newDependencyCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dependency list",
		Aliases: []string{"dep", "dependencies"},
		Short:   "inspect a plugin's dependencies",
		Long:    dependencyDesc,
		Args:    require.NoArgs,
	}

	cmd.AddCommand(newDependencyListCmd(cfg, out))

	return cmd
}

func newDependencyListCmd(cfg *action.Configuration, out io.Writer) *cobra.Command {
	client := action.NewDependency(cfg)

	cmd := &cobra.Command{
		Use:     "list PLUGIN",
		Aliases: []string{"ls"},
		Short:   "list the dependencies for the given plugin",
		Long:    dependencyListDesc,
		Args:    require.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return client.List(out, args[0])
		},
	}

	f := cmd.Flags()

	f.UintVar(&client.ColumnWidth, "max-col-width", 80, "maximum column width for output table")
	return cmd
}
