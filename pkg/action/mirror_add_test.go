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
	"os"
	"path/filepath"
	"sync"
	"testing"

	"sigs.k8s.io/yaml"

	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/mirror"
)

func TestMirrorAdd(t *testing.T) {
	mirrorsFile := filepath.Join(t.TempDir(), "mirrors.yaml")

	const testMirrorName = "test-name"

	o := &MirrorAddOptions{
		Name:        testMirrorName,
		URL:         "https://mirrors.example.com/jenkins/plugins",
		ForceUpdate: false,
		MirrorsFile: mirrorsFile,
	}

	if err := o.Run(io.Discard); err != nil {
		t.Error(err)
	}

	f, err := mirror.LoadFile(mirrorsFile)
	if err != nil {
		t.Fatal(err)
	}

	if !f.Has(testMirrorName) {
		t.Errorf("%s was not successfully inserted into %s", testMirrorName, mirrorsFile)
	}
	if f.APIVersion != mirror.APIVersionV1 {
		t.Errorf("expected apiVersion %q, got %q", mirror.APIVersionV1, f.APIVersion)
	}

	o.ForceUpdate = true

	if err := o.Run(io.Discard); err != nil {
		t.Errorf("Mirror was not updated: %s", err)
	}

	o.ForceUpdate = false

	if err := o.Run(io.Discard); err != nil {
		t.Errorf("Duplicate mirror name was added")
	}

	// Same name with a different URL must be rejected without --force-update.
	o.URL = "https://other.example.com/jenkins/plugins"
	if err := o.Run(io.Discard); err == nil {
		t.Error("expected an error for a conflicting mirror name")
	}
}

func TestMirrorAddCheckLegalName(t *testing.T) {
	const testMirrorName = "test-hub/test-name"

	mirrorsFile := filepath.Join(t.TempDir(), "mirrors.yaml")

	o := &MirrorAddOptions{
		Name:        testMirrorName,
		URL:         "https://mirrors.example.com/jenkins/plugins",
		ForceUpdate: false,
		MirrorsFile: mirrorsFile,
	}

	wantErrorMsg := fmt.Sprintf("mirror name (%s) contains '/', please specify a different name without '/'", testMirrorName)

	if err := o.Run(io.Discard); err != nil {
		if wantErrorMsg != err.Error() {
			t.Fatalf("Actual error %s, not equal to expected error %s", err, wantErrorMsg)
		}
	} else {
		t.Fatalf("expect reported an error.")
	}
}

func TestMirrorAddValidatesURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"scheme-less", "mirrors.example.com/plugins"},
		{"unsupported scheme", "ftp://mirrors.example.com/plugins"},
		{"no host", "https:///plugins"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &MirrorAddOptions{
				Name:        "test-name",
				URL:         tt.url,
				MirrorsFile: filepath.Join(t.TempDir(), "mirrors.yaml"),
			}
			if err := o.Run(io.Discard); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestMirrorAddTrimsTrailingSlash(t *testing.T) {
	mirrorsFile := filepath.Join(t.TempDir(), "mirrors.yaml")

	o := &MirrorAddOptions{
		Name:        "test-name",
		URL:         "https://mirrors.example.com/jenkins/plugins/",
		MirrorsFile: mirrorsFile,
	}
	if err := o.Run(io.Discard); err != nil {
		t.Fatal(err)
	}

	f, err := mirror.LoadFile(mirrorsFile)
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Get("test-name").URL; got != "https://mirrors.example.com/jenkins/plugins" {
		t.Errorf("expected the trailing slash to be trimmed, got %q", got)
	}
}

func TestMirrorAddConcurrentGoRoutines(t *testing.T) {
	const testName = "test-name"
	mirrorsFile := filepath.Join(t.TempDir(), "mirrors.yaml")
	mirrorAddConcurrent(t, testName, mirrorsFile)
}

func TestMirrorAddConcurrentDirNotExist(t *testing.T) {
	const testName = "test-name-2"
	mirrorsFile := filepath.Join(t.TempDir(), "foo", "mirrors.yaml")
	mirrorAddConcurrent(t, testName, mirrorsFile)
}

func TestMirrorAddConcurrentNoFileExtension(t *testing.T) {
	const testName = "test-name-3"
	mirrorsFile := filepath.Join(t.TempDir(), "mirrors")
	mirrorAddConcurrent(t, testName, mirrorsFile)
}

func TestMirrorAddConcurrentHiddenFile(t *testing.T) {
	const testName = "test-name-4"
	mirrorsFile := filepath.Join(t.TempDir(), ".mirrors")
	mirrorAddConcurrent(t, testName, mirrorsFile)
}

func mirrorAddConcurrent(t *testing.T, testName, mirrorsFile string) {
	var wg sync.WaitGroup
	wg.Add(3)
	for i := 0; i < 3; i++ {
		go func(name string) {
			defer wg.Done()
			o := &MirrorAddOptions{
				Name:        name,
				URL:         "https://mirrors.example.com/jenkins/plugins",
				ForceUpdate: false,
				MirrorsFile: mirrorsFile,
			}
			if err := o.Run(io.Discard); err != nil {
				t.Error(err)
			}
		}(fmt.Sprintf("%s-%d", testName, i))
	}
	wg.Wait()

	b, err := os.ReadFile(mirrorsFile)
	if err != nil {
		t.Error(err)
	}

	var f mirror.File
	if err := yaml.Unmarshal(b, &f); err != nil {
		t.Error(err)
	}

	var name string
	for i := 0; i < 3; i++ {
		name = fmt.Sprintf("%s-%d", testName, i)
		if !f.Has(name) {
			t.Errorf("%s was not successfully inserted into %s", name, mirrorsFile)
		}
	}
}
