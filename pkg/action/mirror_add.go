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
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"sigs.k8s.io/yaml"

	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/mirror"
)

// MirrorAddOptions configures 'jpd mirror add'.
type MirrorAddOptions struct {
	Name                 string
	URL                  string
	Username             string
	Password             string
	PasswordFromStdinOpt bool
	ForceUpdate          bool

	MirrorsFile string
}

// Run adds a mirror to the mirrors file. When a username is given
// without a password, the password is read from the terminal or, with
// PasswordFromStdinOpt, from stdin.
func (o *MirrorAddOptions) Run(out io.Writer) error {
	if err := validateMirrorURL(o.URL); err != nil {
		return err
	}

	// Ensure the file directory exists as it is required for file locking
	err := os.MkdirAll(filepath.Dir(o.MirrorsFile), os.ModePerm)
	if err != nil && !os.IsExist(err) {
		return err
	}

	// Acquire a file lock for process synchronization
	mirrorsFileExt := filepath.Ext(o.MirrorsFile)
	var lockPath string
	if len(mirrorsFileExt) > 0 && len(mirrorsFileExt) < len(o.MirrorsFile) {
		lockPath = strings.TrimSuffix(o.MirrorsFile, mirrorsFileExt) + ".lock"
	} else {
		lockPath = o.MirrorsFile + ".lock"
	}
	fileLock := flock.New(lockPath)
	lockCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	locked, err := fileLock.TryLockContext(lockCtx, time.Second)
	if err == nil && locked {
		defer fileLock.Unlock()
	}
	if err != nil {
		return err
	}

	b, err := os.ReadFile(o.MirrorsFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	var f mirror.File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return err
	}

	if o.Username != "" && o.Password == "" {
		if o.PasswordFromStdinOpt {
			passwordFromStdin, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			password := strings.TrimSuffix(string(passwordFromStdin), "\n")
			password = strings.TrimSuffix(password, "\r")
			o.Password = password
		} else {
			fd := int(os.Stdin.Fd())
			fmt.Fprint(out, "Password: ")
			password, err := term.ReadPassword(fd)
			fmt.Fprintln(out)
			if err != nil {
				return err
			}
			o.Password = string(password)
		}
	}

	c := mirror.Entry{
		Name:     o.Name,
		URL:      strings.TrimSuffix(o.URL, "/"),
		Username: o.Username,
		Password: o.Password,
	}

	// Check if the mirror name is legal
	if strings.Contains(o.Name, "/") {
		return errors.Errorf("mirror name (%s) contains '/', please specify a different name without '/'", o.Name)
	}

	// If the mirror exists do one of two things:
	// 1. If the configuration for the name is the same continue without error
	// 2. When the config is different require --force-update
	if !o.ForceUpdate && f.Has(o.Name) {
		existing := f.Get(o.Name)
		if c != *existing {

			// The input coming in for the name is different from what is already
			// configured. Return an error.
			return errors.Errorf("mirror name (%s) already exists, please specify a different name", o.Name)
		}

		// The add is idempotent so do nothing
		fmt.Fprintf(out, "%q already exists with the same configuration, skipping\n", o.Name)
		return nil
	}

	if f.APIVersion == "" {
		f.APIVersion = mirror.APIVersionV1
	}
	if f.Generated.IsZero() {
		f.Generated = time.Now()
	}

	f.Update(&c)

	if err := f.WriteFile(o.MirrorsFile, 0644); err != nil {
		return err
	}
	fmt.Fprintf(out, "%q has been added to your mirrors\n", o.Name)
	return nil
}

// validateMirrorURL rejects bases that could never serve an artifact.
// There is no index document to probe a Jenkins mirror with, so this is
// a shape check only.
func validateMirrorURL(u string) error {
	parsed, err := url.Parse(u)
	if err != nil {
		return errors.Wrapf(err, "invalid mirror URL %s", u)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.Errorf("mirror URL %s must use the http or https scheme", u)
	}
	if parsed.Host == "" {
		return errors.Errorf("mirror URL %s has no host", u)
	}
	return nil
}
