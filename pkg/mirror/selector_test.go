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

import "testing"

func fourMirrors() []*Entry {
	return []*Entry{
		{Name: "m1", URL: "https://one.example.com/plugins"},
		{Name: "m2", URL: "https://two.example.com/plugins"},
		{Name: "m3", URL: "https://three.example.com/plugins"},
		{Name: "m4", URL: "https://four.example.com/plugins"},
	}
}

func TestNewSelectorEmpty(t *testing.T) {
	if _, err := NewSelector(nil); err == nil {
		t.Fatal("expected an error for an empty rotation")
	}
}

func TestSelectorAdvance(t *testing.T) {
	s, err := NewSelector(fourMirrors())
	if err != nil {
		t.Fatal(err)
	}

	s.Begin()
	// From a rotation of four, exactly three advances succeed before
	// the wrap reports exhaustion.
	for i, want := range []bool{true, true, true, false} {
		if got := s.Advance(); got != want {
			t.Fatalf("advance %d: expected %v, got %v", i, want, got)
		}
	}
	if s.Current().Name != "m1" {
		t.Errorf("exhausted rotation should be back at the start, got %s", s.Current().Name)
	}
}

func TestSelectorSticky(t *testing.T) {
	s, err := NewSelector(fourMirrors())
	if err != nil {
		t.Fatal(err)
	}

	// First artifact fails over twice and then succeeds on m3.
	s.Begin()
	s.Advance()
	s.Advance()
	if s.Current().Name != "m3" {
		t.Fatalf("expected to sit on m3, got %s", s.Current().Name)
	}

	// The next artifact starts from m3, not from the top.
	s.Begin()
	if s.Current().Name != "m3" {
		t.Errorf("expected the next artifact to start on m3, got %s", s.Current().Name)
	}

	// And from here the full rotation is available again.
	for i, want := range []bool{true, true, true, false} {
		if got := s.Advance(); got != want {
			t.Fatalf("advance %d: expected %v, got %v", i, want, got)
		}
	}
	if s.Current().Name != "m3" {
		t.Errorf("exhaustion should wrap back to m3, got %s", s.Current().Name)
	}
}

func TestSelectorSingle(t *testing.T) {
	s, err := NewSelector([]*Entry{{Name: "only", URL: "https://example.com/plugins"}})
	if err != nil {
		t.Fatal(err)
	}
	s.Begin()
	if s.Advance() {
		t.Error("a single mirror rotation should exhaust on the first advance")
	}
	if s.Current().Name != "only" {
		t.Errorf("unexpected current %s", s.Current().Name)
	}
}
