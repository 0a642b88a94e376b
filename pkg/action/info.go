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

package action

import (
	"fmt"
	"io"
	"strings"

	"github.com/gosuri/uitable"
)

// Info is the action for showing a plugin's update center record.
//
// It provides the implementation of 'jpd info'.
type Info struct {
	cfg *Configuration
}

// NewInfo creates a new Info object with the given configuration.
func NewInfo(cfg *Configuration) *Info {
	return &Info{cfg: cfg}
}

// Run executes 'jpd info' against the given plugin.
func (i *Info) Run(out io.Writer, name string) error {
	catalog, err := i.cfg.UpdateCenter.Catalog()
	if err != nil {
		return err
	}
	p, err := catalog.Get(name)
	if err != nil {
		return err
	}

	table := uitable.New()
	table.AddRow("NAME:", p.Name)
	if p.Title != "" {
		table.AddRow("TITLE:", p.Title)
	}
	table.AddRow("VERSION:", p.Version)
	if p.RequiredCore != "" {
		table.AddRow("REQUIRED CORE:", p.RequiredCore)
	}
	if p.SHA256 != "" {
		table.AddRow("SHA256:", p.SHA256)
	}
	if p.Size > 0 {
		table.AddRow("SIZE:", fmt.Sprintf("%d bytes", p.Size))
	}
	if p.Wiki != "" {
		table.AddRow("WIKI:", p.Wiki)
	}
	if len(p.Dependencies) > 0 {
		deps := make([]string, 0, len(p.Dependencies))
		for _, dep := range p.Dependencies {
			if dep.Optional {
				deps = append(deps, dep.Name+" (optional)")
				continue
			}
			deps = append(deps, dep.Name)
		}
		table.AddRow("DEPENDENCIES:", strings.Join(deps, ", "))
	}
	fmt.Fprintln(out, table)

	if p.Excerpt != "" {
		fmt.Fprintf(out, "\n%s\n", p.Excerpt)
	}
	return nil
}
