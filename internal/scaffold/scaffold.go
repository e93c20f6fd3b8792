// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scaffold builds the lab directory: it ensures the directory,
// downloads the sample database, touches the placeholder files and writes
// the fixed requirements and README files.
//
// Steps run strictly in order and the first failure stops the run. The
// completion message is printed only after every step has succeeded.
package scaffold

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pdiddy/northwind-lab/internal/fetch"
	"github.com/pdiddy/northwind-lab/pkg/types"
)

// CompletionMessage is printed to stdout after a successful run.
const CompletionMessage = "Lab setup complete!"

// PlanFor returns the artifacts a run with cfg produces, in order.
func PlanFor(cfg types.LabConfig) types.Plan {
	p := types.Plan{Dir: cfg.Dir}
	p.Artifacts = append(p.Artifacts,
		types.Artifact{Path: cfg.Dir, Kind: types.KindDirectory},
		types.Artifact{
			Path:   filepath.Join(cfg.Dir, cfg.DatabaseFile),
			Kind:   types.KindDownload,
			Source: cfg.DatabaseURL,
		},
	)
	for _, name := range cfg.Placeholders {
		p.Artifacts = append(p.Artifacts, types.Artifact{
			Path: filepath.Join(cfg.Dir, name),
			Kind: types.KindPlaceholder,
		})
	}
	for _, f := range Files() {
		p.Artifacts = append(p.Artifacts, types.Artifact{
			Path: filepath.Join(cfg.Dir, f.Name),
			Kind: types.KindLiteral,
		})
	}
	return p
}

// Run executes the scaffold for cfg and writes CompletionMessage to stdout
// on success.
func Run(ctx context.Context, client *http.Client, cfg types.LabConfig, stdout io.Writer, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Dir == "" {
		return fmt.Errorf("lab directory is not set")
	}
	if cfg.DatabaseFile == "" {
		return fmt.Errorf("database file name is not set")
	}

	if err := EnsureDir(cfg.Dir); err != nil {
		return err
	}
	logger.Debug("directory ready", zap.String("dir", cfg.Dir))

	dbPath := filepath.Join(cfg.Dir, cfg.DatabaseFile)
	if _, err := fetch.Download(ctx, client, cfg, dbPath, logger); err != nil {
		return fmt.Errorf("downloading %s: %w", cfg.DatabaseURL, err)
	}

	for _, name := range cfg.Placeholders {
		path := filepath.Join(cfg.Dir, name)
		if err := Touch(path); err != nil {
			return err
		}
		logger.Debug("placeholder ready", zap.String("path", path))
	}

	for _, f := range Files() {
		path := filepath.Join(cfg.Dir, f.Name)
		if err := WriteLiteral(path, f.Content); err != nil {
			return err
		}
		logger.Debug("wrote file", zap.String("path", path), zap.Int("bytes", len(f.Content)))
	}

	fmt.Fprintln(stdout, CompletionMessage)
	return nil
}
