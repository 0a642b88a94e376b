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

// Package resolver computes the required dependency closure of a
// Jenkins plugin from the update center catalog.
package resolver

import (
	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/updatecenter"
)

// Resolver walks the dependency graph recorded in an update center
// catalog.
type Resolver struct {
	catalog *updatecenter.Catalog
}

// New creates a Resolver over the given catalog.
func New(catalog *updatecenter.Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve returns every plugin reachable from root over required
// dependency edges, root itself excluded, each name exactly once.
// The order is a deterministic depth-first preorder that follows each
// record's declaration order, so a fixed catalog always yields the
// same list.
//
// Optional edges are never followed. A dependency that has no catalog
// record is still part of the closure, but is a leaf: there is no
// record to read further edges from. The update center data is not
// guaranteed acyclic, hence the explicit worklist and seen set instead
// of recursion.
func (r *Resolver) Resolve(root string) ([]string, error) {
	p, err := r.catalog.Get(root)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{root: true}
	stack := requiredNames(p.Dependencies)
	out := []string{}

	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)

		next := r.catalog.Lookup(name)
		if next == nil {
			continue
		}
		stack = append(stack, requiredNames(next.Dependencies)...)
	}
	return out, nil
}

// requiredNames returns the non-optional edge targets in reverse, so
// that popping them off a stack visits them in declaration order.
func requiredNames(deps []updatecenter.Dependency) []string {
	names := make([]string, 0, len(deps))
	for i := len(deps) - 1; i >= 0; i-- {
		if deps[i].Optional {
			continue
		}
		names = append(names, deps[i].Name)
	}
	return names
}
