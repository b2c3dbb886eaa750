package controller

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagacious-labs/hyperion/pkg/types"
)

func TestAcquireBinaryFileScheme(t *testing.T) {
	c := New("n/m/v1", Options{})
	m := testModule("file:///bin/true")

	path, err := c.acquireBinary(m)
	require.NoError(t, err)
	assert.Equal(t, "/bin/true", path)
}

func TestAcquireBinaryUnsupportedScheme(t *testing.T) {
	c := New("n/m/v1", Options{})
	m := testModule("ftp://example.com/bin")

	_, err := c.acquireBinary(m)
	assert.ErrorIs(t, err, ErrUnsupportedScheme)
}

func TestAcquireBinaryUnsupportedPlatform(t *testing.T) {
	c := New("n/m/v1", Options{})
	m := types.Module{
		Metadata: types.ModuleMetadata{Releases: types.ModuleReleases{}},
	}

	_, err := c.acquireBinary(m)
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
}

func TestAcquireBinaryHTTPVerifiesChecksum(t *testing.T) {
	body := []byte("fake-binary-contents")
	sum := sha256.Sum256(body)
	sumHex := hex.EncodeToString(sum[:])

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	tmp := t.TempDir()
	c := New("n/m/v1", Options{TempDir: tmp})

	m := testModule(srv.URL)
	m.Metadata.Releases[types.PlatformLinuxAMD64] = types.Release{Location: srv.URL, SHA256: sumHex}
	m.Metadata.Releases[types.PlatformLinuxARM64] = types.Release{Location: srv.URL, SHA256: sumHex}

	path, err := c.acquireBinary(m)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, body, got)
}

func TestAcquireBinaryHTTPChecksumMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("contents"))
	}))
	defer srv.Close()

	tmp := t.TempDir()
	c := New("n/m/v1", Options{TempDir: tmp})

	m := testModule(srv.URL)
	m.Metadata.Releases[types.PlatformLinuxAMD64] = types.Release{Location: srv.URL, SHA256: "deadbeef"}
	m.Metadata.Releases[types.PlatformLinuxARM64] = types.Release{Location: srv.URL, SHA256: "deadbeef"}

	_, err := c.acquireBinary(m)
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestAcquireBinarySkipsVerificationWhenSHA256Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("contents"))
	}))
	defer srv.Close()

	tmp := t.TempDir()
	c := New("n/m/v1", Options{TempDir: tmp})

	path, err := c.acquireBinary(testModule(srv.URL))
	require.NoError(t, err)
	assert.FileExists(t, path)
}
