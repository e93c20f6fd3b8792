// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/northwind-lab/internal/scaffold"
)

func runScaffold(cmd *cobra.Command, args []string) error {
	cfg := labConfig(viper.GetViper())

	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	return scaffold.Run(cmd.Context(), client, cfg, cmd.OutOrStdout(), logger)
}
