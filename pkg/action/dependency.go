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

	"github.com/gosuri/uitable"

	"github.com/jonggeun2001/jenkins-plugin-downloader/internal/resolver"
	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/updatecenter"
)

// Dependency is the action for inspecting a plugin's dependency tree.
//
// It provides the implementation of 'jpd dependency' and its respective
// subcommands.
type Dependency struct {
	cfg *Configuration

	ColumnWidth uint
}

// NewDependency creates a new Dependency object with the given
// configuration.
func NewDependency(cfg *Configuration) *Dependency {
	return &Dependency{cfg: cfg, ColumnWidth: 80}
}

// List executes 'jpd dependency list'. It prints what 'jpd get' would
// download for the plugin, plus the plugin's own optional edges, which
// a download skips.
func (d *Dependency) List(out io.Writer, name string) error {
	catalog, err := d.cfg.UpdateCenter.Catalog()
	if err != nil {
		return err
	}

	root, err := catalog.Get(name)
	if err != nil {
		return err
	}

	closure, err := resolver.New(catalog).Resolve(name)
	if err != nil {
		return err
	}

	optional := optionalEdges(root)
	if len(closure) == 0 && len(optional) == 0 {
		fmt.Fprintf(out, "%s has no dependencies\n", name)
		return nil
	}

	d.printDependencies(out, catalog, closure, optional)
	return nil
}

// printDependencies prints the resolved closure in catalog order
// followed by the skipped optional edges.
func (d *Dependency) printDependencies(out io.Writer, catalog *updatecenter.Catalog, closure []string, optional []updatecenter.Dependency) {
	table := uitable.New()
	table.MaxColWidth = d.ColumnWidth
	table.AddRow("NAME", "VERSION", "STATUS")
	for _, name := range closure {
		if p := catalog.Lookup(name); p != nil {
			table.AddRow(name, p.Version, "required")
		} else {
			// No record to download; 'jpd get' warns and moves on.
			table.AddRow(name, "-", "missing")
		}
	}
	for _, dep := range optional {
		// The version here is the one the plugin was built against,
		// not a catalog release.
		table.AddRow(dep.Name, dep.Version, "skipped (optional)")
	}
	fmt.Fprintln(out, table)
}

func optionalEdges(p *updatecenter.Plugin) []updatecenter.Dependency {
	var optional []updatecenter.Dependency
	for _, dep := range p.Dependencies {
		if dep.Optional {
			optional = append(optional, dep)
		}
	}
	return optional
}
