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

package mirror

import (
	"github.com/pkg/errors"
)

// Selector tracks which mirror of a rotation downloads should use. The
// position is sticky across artifacts: after a failover the surviving
// mirror stays current, so a dead mirror is not retried first for every
// plugin in a run.
type Selector struct {
	mirrors []*Entry
	current int
	start   int
}

// NewSelector builds a Selector over the given rotation, starting at
// its first entry. The rotation must not be empty.
func NewSelector(mirrors []*Entry) (*Selector, error) {
	if len(mirrors) == 0 {
		return nil, errors.New("no mirrors configured")
	}
	return &Selector{mirrors: mirrors}, nil
}

// Current returns the mirror downloads should try next.
func (s *Selector) Current() *Entry {
	return s.mirrors[s.current]
}

// Begin marks the start of a new artifact's attempts at the current
// position. Advance reports exhaustion when the rotation wraps back
// here.
func (s *Selector) Begin() {
	s.start = s.current
}

// Advance moves to the next mirror in the rotation. It returns false
// when the rotation has wrapped around to where Begin marked the
// start, meaning every mirror has had its attempt.
func (s *Selector) Advance() bool {
	s.current = (s.current + 1) % len(s.mirrors)
	return s.current != s.start
}

// Len returns the rotation size.
func (s *Selector) Len() int {
	return len(s.mirrors)
}

// Mirrors returns the rotation in configuration order.
func (s *Selector) Mirrors() []*Entry {
	return s.mirrors
}
