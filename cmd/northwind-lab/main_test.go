// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/northwind-lab/internal/northwind"
	"github.com/pdiddy/northwind-lab/internal/scaffold"
	"github.com/pdiddy/northwind-lab/pkg/types"
)

// resetViper restores the global configuration after a test mutates it.
func resetViper(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		viper.Reset()
		setDefaults(viper.GetViper())
	})
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

// northwindFixture returns the bytes of a SQLite file holding every
// required table with one row each.
func northwindFixture(t *testing.T) []byte {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	for _, table := range northwind.RequiredTables {
		_, err := db.Exec(fmt.Sprintf(`CREATE TABLE "%s" (id INTEGER PRIMARY KEY)`, table))
		require.NoError(t, err)
		_, err = db.Exec(fmt.Sprintf(`INSERT INTO "%s" (id) VALUES (1)`, table))
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func TestLabConfig_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := labConfig(v)
	assert.Equal(t, "lab", cfg.Dir)
	assert.Equal(t, types.DefaultDatabaseURL, cfg.DatabaseURL)
	assert.Equal(t, "northwind.db", cfg.DatabaseFile)
	assert.Equal(t, []string{"app.py", "test.py"}, cfg.Placeholders)
	assert.Empty(t, cfg.DatabaseSHA256)
	assert.Zero(t, cfg.Timeout)
	assert.Equal(t, "northwind-lab/"+version, cfg.UserAgent)
}

func TestLabConfig_Overrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set(keyDir, "sandbox")
	v.Set(keyTimeout, "30s")
	v.Set(keySHA256, "abc123")

	cfg := labConfig(v)
	assert.Equal(t, "sandbox", cfg.Dir)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "abc123", cfg.DatabaseSHA256)
}

func TestLabConfig_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "northwind-lab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lab:\n  dir: workshop\n  placeholders: [main.py]\n"), 0o644))

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg := labConfig(v)
	assert.Equal(t, "workshop", cfg.Dir)
	assert.Equal(t, []string{"main.py"}, cfg.Placeholders)
	assert.Equal(t, "northwind.db", cfg.DatabaseFile)
}

func TestNewLogger(t *testing.T) {
	quiet, err := newLogger(false)
	require.NoError(t, err)
	assert.False(t, quiet.Core().Enabled(zapcore.DebugLevel), "debug is off by default")
	assert.False(t, quiet.Core().Enabled(zapcore.InfoLevel), "info is off by default")

	loud, err := newLogger(true)
	require.NoError(t, err)
	assert.True(t, loud.Core().Enabled(zapcore.DebugLevel))
}

func TestScaffoldAndVerify(t *testing.T) {
	resetViper(t)
	fixture := northwindFixture(t)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write(fixture)
	}))
	defer ts.Close()

	dir := filepath.Join(t.TempDir(), "lab")
	viper.Set(keyDir, dir)
	viper.Set(keyDatabaseURL, ts.URL)

	out, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, scaffold.CompletionMessage+"\n", out)

	got, err := os.ReadFile(filepath.Join(dir, "northwind.db"))
	require.NoError(t, err)
	assert.Equal(t, fixture, got)

	out, err = execute(t, "verify")
	require.NoError(t, err)
	for _, table := range northwind.RequiredTables {
		assert.Contains(t, out, table)
	}
}

func TestScaffold_FetchFailure(t *testing.T) {
	resetViper(t)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	viper.Set(keyDir, filepath.Join(t.TempDir(), "lab"))
	viper.Set(keyDatabaseURL, ts.URL)

	out, err := execute(t)
	require.Error(t, err)
	assert.Empty(t, out)
}

func TestVerify_MissingDatabase(t *testing.T) {
	resetViper(t)
	viper.Set(keyDir, t.TempDir())

	_, err := execute(t, "verify")
	require.Error(t, err)
}

func TestPlanCommand(t *testing.T) {
	resetViper(t)

	out, err := execute(t, "plan")
	require.NoError(t, err)

	var p types.Plan
	require.NoError(t, yaml.Unmarshal([]byte(out), &p))
	assert.Equal(t, "lab", p.Dir)
	require.Len(t, p.Artifacts, 6)
	assert.Equal(t, types.KindDirectory, p.Artifacts[0].Kind)
	assert.Equal(t, types.KindDownload, p.Artifacts[1].Kind)
	assert.Equal(t, types.DefaultDatabaseURL, p.Artifacts[1].Source)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "northwind-lab "+version+"\n", out)
}
