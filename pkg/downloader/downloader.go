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

package downloader

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"path"
	"sync/atomic"
	"time"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/getter"
	"github.com/jonggeun2001/jenkins-plugin-downloader/pkg/mirror"
)

const (
	// minTransferRate is the slowest acceptable transfer in bytes per
	// second. A mirror delivering less than this over a full
	// speedCheckInterval is abandoned in favor of the next one.
	minTransferRate = 1024

	// speedCheckInterval is how often the transfer rate is evaluated.
	speedCheckInterval = time.Second

	// stallTimeout bounds a single read. The rate check only runs when
	// a read returns, so a connection that goes completely silent needs
	// its own guard.
	stallTimeout = 30 * time.Second
)

// artifactTransport is shared by all artifact requests. Artifacts run
// without a whole-request timeout since a large plugin on a slow link
// can legitimately take many minutes, so connection setup and response
// headers get their own caps instead.
var artifactTransport = &http.Transport{
	DialContext: (&net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	ResponseHeaderTimeout: 30 * time.Second,
	Proxy:                 http.ProxyFromEnvironment,
	DisableCompression:    true,
}

// PluginDownloader retrieves a plugin artifact from a rotation of
// download mirrors, failing over until one of them delivers the whole
// file at an acceptable rate.
type PluginDownloader struct {
	// Out is the location to write warning and info messages.
	Out io.Writer
	// Mirrors is the rotation to walk. The position is shared across
	// calls, so a mirror that worked for one artifact is tried first
	// for the next.
	Mirrors *mirror.Selector
	// Getters collection for the operation.
	Getters getter.Providers
	// Options provide parameters to be passed along to the getter being
	// initialized.
	Options []getter.Option
}

// DownloadError reports that every mirror in the rotation was tried for
// an artifact and none delivered it.
type DownloadError struct {
	Name    string
	Version string
	// Errs aggregates the per-mirror causes in attempt order.
	Errs *multierror.Error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("could not download plugin %s %s from any mirror: %s", e.Name, e.Version, e.Errs)
}

// Unwrap exposes the per-mirror causes to errors.Is and errors.As.
func (e *DownloadError) Unwrap() error { return e.Errs }

// ResolveArchiveURL returns the location of a plugin artifact under a
// mirror base URL. Mirrors lay artifacts out as
// {base}/{name}/{version}/{name}.hpi.
func ResolveArchiveURL(base, name, version string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", errors.Wrapf(err, "invalid mirror URL %s", base)
	}
	u.Path = path.Join(u.Path, name, version, name+".hpi")
	return u.String(), nil
}

// DownloadTo fetches a plugin artifact and writes it to destDir as
// {name}.hpi, returning the path of the saved file.
//
// Mirrors are tried in rotation order starting from the selector's
// current position. A mirror that fails for any reason, a connection
// error, a bad status, a transfer below minTransferRate or a truncated
// body, is abandoned and the next one is tried from byte zero. When
// the rotation is exhausted the returned error is a *DownloadError
// carrying every per-mirror cause.
func (d *PluginDownloader) DownloadTo(name, version, destDir string) (string, error) {
	destfile, err := securejoin.SecureJoin(destDir, name+".hpi")
	if err != nil {
		return "", errors.Wrapf(err, "unable to construct a safe path for %s", name)
	}

	d.Mirrors.Begin()
	var failures *multierror.Error
	for {
		m := d.Mirrors.Current()
		err := d.attempt(m, name, version, destfile)
		if err == nil {
			return destfile, nil
		}
		failures = multierror.Append(failures, errors.Wrapf(err, "mirror %q", m.Name))
		if !d.Mirrors.Advance() {
			break
		}
		fmt.Fprintf(d.Out, "WARNING: mirror %q failed for %s: %s, trying next mirror\n", m.Name, name, err)
	}
	return "", &DownloadError{Name: name, Version: version, Errs: failures}
}

// attempt fetches the artifact from one mirror and streams it to
// destfile.
func (d *PluginDownloader) attempt(m *mirror.Entry, name, version, destfile string) error {
	href, err := ResolveArchiveURL(m.URL, name, version)
	if err != nil {
		return err
	}

	u, err := url.Parse(href)
	if err != nil {
		return errors.Wrapf(err, "invalid artifact URL %s", href)
	}
	g, err := d.Getters.ByScheme(u.Scheme)
	if err != nil {
		return err
	}

	opts := append([]getter.Option{}, d.Options...)
	if m.Username != "" && m.Password != "" {
		opts = append(opts, getter.WithBasicAuth(m.Username, m.Password))
	}
	opts = append(opts,
		getter.WithURL(m.URL),
		// No whole-request timeout; progress is supervised by the rate
		// check and the stall watchdog instead.
		getter.WithTimeout(0),
		getter.WithTransport(artifactTransport),
	)

	resp, err := g.Get(href, opts...)
	if err != nil {
		return err
	}
	return d.stream(resp, destfile)
}

// stream copies the response body to destfile while enforcing the
// transfer floor. The file is truncated first so a retry on another
// mirror always restarts from byte zero.
func (d *PluginDownloader) stream(resp *http.Response, destfile string) (err error) {
	defer resp.Body.Close()

	out, err := os.OpenFile(destfile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	// The rate check only runs between reads, so a read that never
	// returns would hang the download forever. The watchdog closes the
	// body to force such a read to fail.
	var stalled atomic.Bool
	watchdog := time.AfterFunc(stallTimeout, func() {
		stalled.Store(true)
		resp.Body.Close()
	})
	defer watchdog.Stop()

	var written, windowBytes int64
	lastCheck := time.Now()
	buf := make([]byte, 32*1024)
	for {
		n, rerr := resp.Body.Read(buf)
		watchdog.Reset(stallTimeout)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				return werr
			}
			written += int64(n)
			windowBytes += int64(n)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			if stalled.Load() {
				return errors.Errorf("no data received for %s", stallTimeout)
			}
			return rerr
		}

		if elapsed := time.Since(lastCheck); elapsed >= speedCheckInterval {
			rate := float64(windowBytes) / elapsed.Seconds()
			if rate < minTransferRate {
				return errors.Errorf("transfer rate %.0f B/s is below the minimum %d B/s", rate, minTransferRate)
			}
			windowBytes = 0
			lastCheck = time.Now()
		}
	}

	if resp.ContentLength >= 0 && written != resp.ContentLength {
		return errors.Errorf("incomplete download: got %d of %d bytes", written, resp.ContentLength)
	}
	return nil
}
