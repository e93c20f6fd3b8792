// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/northwind-lab/internal/northwind"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the downloaded database carries the lab tables",
	Long: `Verify opens the lab database read-only, checks that every table the
lab queries exists, and prints the row count of each.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg := labConfig(viper.GetViper())
	path := filepath.Join(cfg.Dir, cfg.DatabaseFile)

	db, err := northwind.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()
	if err := db.Verify(ctx); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	counts, err := db.Counts(ctx)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, c := range counts {
		fmt.Fprintf(w, "%-20s %d\n", c.Table, c.Rows)
	}
	logger.Debug("database verified", zap.String("path", path), zap.Int("tables", len(counts)))
	return nil
}
