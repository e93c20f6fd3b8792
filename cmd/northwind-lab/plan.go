// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/northwind-lab/internal/scaffold"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the files a scaffold run would produce",
	Long: `Plan prints, as YAML, the directory and files a scaffold run creates,
in the order it creates them. Nothing is written or downloaded.`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	p := scaffold.PlanFor(labConfig(viper.GetViper()))
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling plan: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
