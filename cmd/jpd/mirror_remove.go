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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/cli/require"
	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/mirror"
)

type mirrorRemoveOptions struct {
	names       []string
	mirrorsFile string
}

func newMirrorRemoveCmd(out io.Writer) *cobra.Command {
	o := &mirrorRemoveOptions{}

	cmd := &cobra.Command{
		Use:     "remove [MIRROR1 [MIRROR2 ...]]",
		Aliases: []string{"rm"},
		Short:   "remove one or more download mirrors",
		Args:    require.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			o.mirrorsFile = settings.MirrorsConfig
			o.names = args
			return o.run(out)
		},
	}
	return cmd
}

func (o *mirrorRemoveOptions) run(out io.Writer) error {
	f, err := mirror.LoadFile(o.mirrorsFile)
	if isNotExist(err) || len(f.Mirrors) == 0 {
		return errors.New("no mirrors configured")
	}

	for _, name := range o.names {
		if !f.Remove(name) {
			return errors.Errorf("no mirror named %q found", name)
		}
		if err := f.WriteFile(o.mirrorsFile, 0600); err != nil {
			return err
		}

		fmt.Fprintf(out, "%q has been removed from your mirrors\n", name)
	}

	return nil
}
