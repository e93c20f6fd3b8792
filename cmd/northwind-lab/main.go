// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the northwind-lab CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/northwind-lab/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger writes diagnostics to stderr. Stdout is reserved for command output.
var logger = zap.NewNop()

// rootCmd scaffolds the lab when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "northwind-lab",
	Short: "Scaffold a local Ollama lab around the Northwind database",
	Long: `northwind-lab prepares a lab directory for an Ollama tool-calling
exercise. Run without arguments it creates ./lab/, downloads the Northwind
SQLite database to ./lab/northwind.db, creates empty app.py and test.py,
and writes requirements.txt and README.md.

Existing placeholder files are left untouched; requirements.txt, README.md
and the database are replaced on every run.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runScaffold,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		l, err := newLogger(verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./northwind-lab.yaml or ~/.config/northwind-lab/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log each step to stderr")

	setDefaults(viper.GetViper())
}

// newLogger builds a production logger on stderr. Only warnings and errors
// are shown unless verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("northwind-lab")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "northwind-lab"))
		}
	}

	viper.SetEnvPrefix("NORTHWIND_LAB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// Config keys.
const (
	keyDir          = "lab.dir"
	keyDatabaseURL  = "lab.database_url"
	keyDatabaseFile = "lab.database_file"
	keySHA256       = "lab.sha256"
	keyTimeout      = "lab.timeout"
	keyUserAgent    = "lab.user_agent"
	keyPlaceholders = "lab.placeholders"
)

func setDefaults(v *viper.Viper) {
	d := types.DefaultLabConfig()
	v.SetDefault(keyDir, d.Dir)
	v.SetDefault(keyDatabaseURL, d.DatabaseURL)
	v.SetDefault(keyDatabaseFile, d.DatabaseFile)
	v.SetDefault(keySHA256, "")
	v.SetDefault(keyTimeout, d.Timeout)
	v.SetDefault(keyUserAgent, "northwind-lab/"+version)
	v.SetDefault(keyPlaceholders, d.Placeholders)
}

// labConfig resolves the lab settings from defaults, config file and
// environment, in increasing precedence.
func labConfig(v *viper.Viper) types.LabConfig {
	return types.LabConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   v.GetDuration(keyTimeout),
			UserAgent: v.GetString(keyUserAgent),
		},
		Dir:            v.GetString(keyDir),
		DatabaseURL:    v.GetString(keyDatabaseURL),
		DatabaseFile:   v.GetString(keyDatabaseFile),
		DatabaseSHA256: v.GetString(keySHA256),
		Placeholders:   v.GetStringSlice(keyPlaceholders),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
