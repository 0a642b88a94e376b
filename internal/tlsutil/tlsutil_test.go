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

package tlsutil

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeTestPair generates a self-signed certificate and key pair and
// writes them as PEM files under a temp dir.
func writeTestPair(t *testing.T) (certFile, keyFile string) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	tmpl := x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "tlsutil-test"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
	}
	der, err := x509.CreateCertificate(rand.Reader, &tmpl, &tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatal(err)
	}
	keyDER, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	certFile = filepath.Join(dir, "cert.pem")
	keyFile = filepath.Join(dir, "key.pem")
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})
	if err := os.WriteFile(certFile, certPEM, 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(keyFile, keyPEM, 0600); err != nil {
		t.Fatal(err)
	}
	return certFile, keyFile
}

func TestNewTLSConfigEmpty(t *testing.T) {
	cfg, err := NewTLSConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.InsecureSkipVerify {
		t.Error("verification should be on by default")
	}
	if len(cfg.Certificates) != 0 || cfg.RootCAs != nil {
		t.Error("expected no certificate material")
	}
}

func TestNewTLSConfigInsecure(t *testing.T) {
	cfg, err := NewTLSConfig(WithInsecureSkipVerify(true))
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.InsecureSkipVerify {
		t.Error("expected InsecureSkipVerify to be set")
	}
}

func TestNewTLSConfigCertKeyPair(t *testing.T) {
	certFile, keyFile := writeTestPair(t)

	cfg, err := NewTLSConfig(WithCertKeyPairFiles(certFile, keyFile))
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Certificates) != 1 {
		t.Fatalf("expected 1 client certificate, got %d", len(cfg.Certificates))
	}

	// Empty paths mean no client certificate, not an error.
	cfg, err = NewTLSConfig(WithCertKeyPairFiles("", ""))
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Certificates) != 0 {
		t.Error("expected no client certificate for empty paths")
	}
}

func TestNewTLSConfigCAFile(t *testing.T) {
	certFile, _ := writeTestPair(t)

	cfg, err := NewTLSConfig(WithCAFile(certFile))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RootCAs == nil {
		t.Error("expected a CA pool")
	}
}

func TestNewTLSConfigErrors(t *testing.T) {
	if _, err := NewTLSConfig(WithCAFile("testdata/does-not-exist.pem")); err == nil {
		t.Error("expected an error for a missing CA file")
	}
	if _, err := NewTLSConfig(WithCertKeyPairFiles("testdata/no.crt", "testdata/no.key")); err == nil {
		t.Error("expected an error for missing pair files")
	}

	junk := filepath.Join(t.TempDir(), "junk.pem")
	if err := os.WriteFile(junk, []byte("not a pem"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewTLSConfig(WithCAFile(junk)); err == nil {
		t.Error("expected an error for a PEM block without certificates")
	}
}
