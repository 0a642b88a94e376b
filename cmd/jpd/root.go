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

var globalUsage = `The Jenkins plugin downloader

Common actions for jpd:

- jpd get:             download a plugin and its required dependencies
- jpd dependency list: show a plugin's dependency closure
- jpd info:            show a plugin's update center record
- jpd mirror add:      register a download mirror

Environment variables:

| Name                | Description                                                     |
|---------------------|-----------------------------------------------------------------|
| $JPD_CACHE_HOME     | set an alternative location for storing cached files.           |
| $JPD_CONFIG_HOME    | set an alternative location for storing jpd configuration.      |
| $JPD_DATA_HOME      | set an alternative location for storing jpd data.               |
| $JPD_DEBUG          | indicate whether or not jpd is running in Debug mode            |
| $JPD_MIRRORS_CONFIG | set the path to the mirrors file.                               |
| $JPD_TIMEOUT        | set the time to wait for an update center document request.     |
| $JPD_UPDATE_CENTER  | set the URL of the update center document.                      |

jpd stores configuration based on the following configuration order:

- If a JPD_*_HOME environment variable is set, it will be used
- Otherwise, on systems supporting the XDG base directory specification,
  the XDG variables will be used
- When no other location is set a default location will be used based on
  the operating system

By default, the default directories depend on the Operating System. The defaults are listed below:

| Operating System | Cache Path               | Configuration Path            | Data Path              |
|------------------|--------------------------|-------------------------------|------------------------|
| Linux            | $HOME/.cache/jpd         | $HOME/.config/jpd             | $HOME/.local/share/jpd |
| macOS            | $HOME/Library/Caches/jpd | $HOME/Library/Preferences/jpd | $HOME/Library/jpd      |
| Windows          | %TEMP%\jpd               | %APPDATA%\jpd                 | %APPDATA%\jpd          |
`

func newRootCmd(actionConfig *action.Configuration, out io.Writer, args []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "jpd",
		Short:        "The Jenkins plugin downloader.",
		Long:         globalUsage,
		SilenceUsage: true,
		Args:         require.NoArgs,
	}
	flags := cmd.PersistentFlags()

	settings.AddFlags(flags)

	// We can safely ignore any errors that flags.Parse encounters since
	// those errors will be caught later during the call to cmd.Execution.
	// This call is required to gather configuration information prior to
	// execution.
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.Parse(args)

	cmd.AddCommand(
		newGetCmd(actionConfig, out),
		newDependencyCmd(actionConfig, out),
		newInfoCmd(actionConfig, out),
		newMirrorCmd(actionConfig, out),

		newEnvCmd(out),
		newVersionCmd(out),
	)

	return cmd
}
