// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch opens the PS3.6 DocBook source, either a local file or an
// http(s) URL.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/dicom-dict/internal/httputil"
	"github.com/pdiddy/dicom-dict/internal/logging"
	"github.com/pdiddy/dicom-dict/pkg/types"
)

// IsURL reports whether src names an http or https resource.
func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// NewClient returns an HTTP client with the configured timeout.
func NewClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

// Open returns a reader over src. URLs are fetched with retry; anything
// else is opened as a file. The caller closes the reader.
func Open(ctx context.Context, client *http.Client, src string, cfg types.HTTPConfig) (io.ReadCloser, error) {
	if !IsURL(src) {
		f, err := os.Open(src)
		if err != nil {
			return nil, fmt.Errorf("opening source: %w", err)
		}
		return f, nil
	}
	return get(ctx, client, src, cfg)
}

// Download saves url to dest. The body is written to a temporary file in
// the destination directory and renamed into place, so dest is either
// absent or complete.
func Download(ctx context.Context, client *http.Client, url, dest string, cfg types.HTTPConfig) (int64, error) {
	body, err := get(ctx, client, url, cfg)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".fetch-*.tmp")
	if err != nil {
		return 0, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	n, copyErr := io.Copy(tmpFile, body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("renaming temp file: %w", err)
	}

	logging.FromContext(ctx).Info("downloaded", "url", url, "path", dest, "bytes", n)
	return n, nil
}

func get(ctx context.Context, client *http.Client, url string, cfg types.HTTPConfig) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}
	req.Header.Set("Accept", "application/xml, text/xml")

	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	return resp.Body, nil
}
