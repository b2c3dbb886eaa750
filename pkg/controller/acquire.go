package controller

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/google/uuid"

	"github.com/sagacious-labs/hyperion/pkg/metrics"
	"github.com/sagacious-labs/hyperion/pkg/types"
)

// Sentinel errors for the semantic error kinds named in the controller's
// acquisition step.
var (
	ErrUnsupportedPlatform = errors.New("controller: unsupported os/arch")
	ErrUnsupportedScheme   = errors.New("controller: unsupported binary location scheme")
	ErrAcquisitionFailed   = errors.New("controller: failed to acquire binary")
	ErrChecksumMismatch    = errors.New("controller: downloaded binary failed sha256 verification")
)

// platformKey resolves the current (GOOS, GOARCH) to the release key the
// module's metadata is keyed by. Only linux/amd64 and linux/arm64 are
// supported, matching the two concrete release variants the platform
// schema carries.
func platformKey() (string, error) {
	switch {
	case runtime.GOOS == "linux" && runtime.GOARCH == "amd64":
		return types.PlatformLinuxAMD64, nil
	case runtime.GOOS == "linux" && runtime.GOARCH == "arm64":
		return types.PlatformLinuxARM64, nil
	default:
		return "", fmt.Errorf("%w: %s/%s", ErrUnsupportedPlatform, runtime.GOOS, runtime.GOARCH)
	}
}

// acquireBinary resolves the release for the host platform and returns a
// local filesystem path to the module's executable, downloading it first
// if necessary.
func (c *Controller) acquireBinary(m types.Module) (string, error) {
	key, err := platformKey()
	if err != nil {
		return "", err
	}

	release, ok := m.Metadata.Releases[key]
	if !ok {
		return "", fmt.Errorf("%w: no release for %s", ErrUnsupportedPlatform, key)
	}

	u, err := url.Parse(release.Location)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedScheme, err)
	}

	switch u.Scheme {
	case "file":
		return u.Path, nil
	case "http", "https":
		return c.downloadBinary(release)
	default:
		return "", fmt.Errorf("%w: %q (supported: file://, http://, https://)", ErrUnsupportedScheme, u.Scheme)
	}
}

// downloadBinary fetches release.Location over HTTP(S), bounded by the
// controller's configured download timeout, writes the body to
// {tempDir}/{sha256}/{uuid}, verifies its SHA-256 against release.SHA256
// when one is given, marks the file executable, and returns its path.
func (c *Controller) downloadBinary(release types.Release) (string, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.BinaryAcquisitionDuration)

	client := &http.Client{Timeout: c.downloadTimeout}

	resp, err := client.Get(release.Location)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAcquisitionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %s", ErrAcquisitionFailed, resp.Status)
	}

	dir := filepath.Join(c.tempDir, sanitizeDirComponent(release.SHA256))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAcquisitionFailed, err)
	}

	path := filepath.Join(dir, uuid.New().String())
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAcquisitionFailed, err)
	}

	hasher := sha256.New()
	if _, err := io.Copy(io.MultiWriter(f, hasher), resp.Body); err != nil {
		f.Close()
		return "", fmt.Errorf("%w: %v", ErrAcquisitionFailed, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAcquisitionFailed, err)
	}

	if release.SHA256 != "" {
		sum := hex.EncodeToString(hasher.Sum(nil))
		if sum != release.SHA256 {
			os.Remove(path)
			return "", fmt.Errorf("%w: got %s want %s", ErrChecksumMismatch, sum, release.SHA256)
		}
	}

	if err := os.Chmod(path, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAcquisitionFailed, err)
	}

	return path, nil
}

// sanitizeDirComponent guards against an empty (unverified) sha256
// producing an unintended path component; the download path always sits
// under a directory, even when release.sha256 is the empty string from S1.
func sanitizeDirComponent(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unverified"
	}
	return s
}
