// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads the lab database to a fixed local path.
package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/pdiddy/northwind-lab/internal/httputil"
	"github.com/pdiddy/northwind-lab/pkg/types"
)

// ErrChecksumMismatch is returned when the downloaded bytes do not hash to
// the configured digest. The destination file is left untouched.
var ErrChecksumMismatch = errors.New("checksum mismatch")

// Result describes a completed download.
type Result struct {
	Path   string
	Bytes  int64
	SHA256 string
}

// Download fetches cfg.DatabaseURL to destPath. The body is streamed to a
// temporary file next to destPath and renamed over it on success, so an
// existing file is replaced verbatim or not at all. There is no retry.
func Download(ctx context.Context, client *http.Client, cfg types.LabConfig, destPath string, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("downloading", zap.String("url", cfg.DatabaseURL), zap.String("dest", destPath))

	resp, err := httputil.Get(ctx, client, cfg.DatabaseURL, cfg.UserAgent)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".fetch-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	h := sha256.New()
	n, copyErr := io.Copy(io.MultiWriter(tmpFile, h), resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	sum := hex.EncodeToString(h.Sum(nil))
	if want := strings.TrimSpace(cfg.DatabaseSHA256); want != "" && !strings.EqualFold(want, sum) {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("%w: got %s, want %s", ErrChecksumMismatch, sum, strings.ToLower(want))
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("renaming temp file: %w", err)
	}

	logger.Debug("downloaded",
		zap.String("dest", destPath),
		zap.String("size", humanize.Bytes(uint64(n))),
		zap.String("sha256", sum))
	return &Result{Path: destPath, Bytes: n, SHA256: sum}, nil
}
