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

package getter

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonggeun2001/jenkins-plugin-downloader/internal/version"
)

func TestHTTPGetter(t *testing.T) {
	g, err := NewHTTPGetter(WithURL("http://example.com"))
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := g.(*HTTPGetter); !ok {
		t.Fatal("Expected NewHTTPGetter to produce an *HTTPGetter")
	}

	// Test with options
	g, err = NewHTTPGetter(
		WithBasicAuth("I", "Am"),
		WithPassCredentialsAll(false),
		WithUserAgent("Groot"),
		WithURL("http://example.com"),
		WithTimeout(time.Second*5),
	)
	if err != nil {
		t.Fatal(err)
	}

	hg, ok := g.(*HTTPGetter)
	if !ok {
		t.Fatal("expected NewHTTPGetter to produce an *HTTPGetter")
	}

	if hg.opts.username != "I" {
		t.Errorf("Expected NewHTTPGetter to contain %q as the username, got %q", "I", hg.opts.username)
	}
	if hg.opts.password != "Am" {
		t.Errorf("Expected NewHTTPGetter to contain %q as the password, got %q", "Am", hg.opts.password)
	}
	if hg.opts.passCredentialsAll {
		t.Errorf("Expected NewHTTPGetter to contain %t as PassCredentialsAll, got %t", false, hg.opts.passCredentialsAll)
	}
	if hg.opts.userAgent != "Groot" {
		t.Errorf("Expected NewHTTPGetter to contain %q as the user agent, got %q", "Groot", hg.opts.userAgent)
	}
	if hg.opts.timeout != time.Second*5 {
		t.Errorf("Expected NewHTTPGetter to contain %s as Timeout flag, got %s", time.Second*5, hg.opts.timeout)
	}

	// Test if setting a transport does not interfere with the per-call options
	transport := &http.Transport{}
	g, err = NewHTTPGetter(WithTransport(transport))
	if err != nil {
		t.Fatal(err)
	}
	hg = g.(*HTTPGetter)
	if hg.opts.transport != transport {
		t.Error("Expected NewHTTPGetter to contain the supplied transport")
	}
}

func TestHTTPGetterGet(t *testing.T) {
	defaultAgent := version.GetUserAgent()
	if !strings.HasPrefix(defaultAgent, "jpd/") {
		t.Fatalf("unexpected default user agent %q", defaultAgent)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		creds := ""
		if ok {
			creds = fmt.Sprintf("%s:%s", username, password)
		}
		fmt.Fprintf(w, "%s|%s", r.UserAgent(), creds)
	}))
	defer srv.Close()

	get := func(t *testing.T, g Getter, href string, opts ...Option) string {
		t.Helper()
		resp, err := g.Get(href, opts...)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		return string(body)
	}

	g, err := NewHTTPGetter(
		WithURL(srv.URL),
		WithBasicAuth("jenkins", "sw0rdf1sh"),
	)
	if err != nil {
		t.Fatal(err)
	}

	// Same scheme and host: credentials travel.
	got := get(t, g, srv.URL)
	if want := defaultAgent + "|jenkins:sw0rdf1sh"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	// The configured URL is elsewhere: credentials are withheld.
	g2, err := NewHTTPGetter(
		WithURL("http://mirror.example.test/plugins"),
		WithBasicAuth("jenkins", "sw0rdf1sh"),
	)
	if err != nil {
		t.Fatal(err)
	}
	got = get(t, g2, srv.URL)
	if want := defaultAgent + "|"; got != want {
		t.Errorf("expected credentials to be withheld, got %q", got)
	}

	// Unless explicitly passing credentials everywhere.
	got = get(t, g2, srv.URL, WithPassCredentialsAll(true))
	if want := defaultAgent + "|jenkins:sw0rdf1sh"; got != want {
		t.Errorf("expected credentials to be passed, got %q", got)
	}

	// A per-call user agent wins over the default.
	got = get(t, g, srv.URL, WithUserAgent("Groot"))
	if want := "Groot|jenkins:sw0rdf1sh"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestHTTPGetterGetNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	g, err := NewHTTPGetter(WithURL(srv.URL))
	if err != nil {
		t.Fatal(err)
	}
	resp, err := g.Get(srv.URL + "/ant/1.0/ant.hpi")
	if err == nil {
		resp.Body.Close()
		t.Fatal("expected an error for a 404")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("expected the status in the error, got %q", err)
	}
}

func TestHTTPGetterGetStreams(t *testing.T) {
	payload := strings.Repeat("jenkins-plugin-bytes", 1024)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, payload)
	}))
	defer srv.Close()

	g, err := NewHTTPGetter(WithURL(srv.URL))
	if err != nil {
		t.Fatal(err)
	}
	resp, err := g.Get(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != payload {
		t.Errorf("expected %d bytes back, got %d", len(payload), len(body))
	}
}
