package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, "results", cfg.ResultsDir)
	require.Len(t, cfg.SampleFiles, 6)
	require.Equal(t, "last", cfg.Parse.Duplicates)
	require.False(t, cfg.Parse.SkipOutOfRange)
	require.NoError(t, cfg.Validate())
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv(EnvResultsDir, "")
	t.Setenv(EnvLogLevel, "")

	path := filepath.Join(t.TempDir(), "nested", "sparsecalc.yaml")

	cfg := DefaultConfig()
	cfg.ResultsDir = "out"
	cfg.Parse.Duplicates = "sum"
	cfg.Parse.SkipOutOfRange = true
	cfg.Logging.Level = "debug"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	t.Setenv(EnvResultsDir, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(EnvResultsDir, "")
	t.Setenv(EnvLogLevel, "")

	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parse:\n  duplicates: first\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "first", cfg.Parse.Duplicates)
	require.Equal(t, "results", cfg.ResultsDir)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(EnvResultsDir, "")
	t.Setenv(EnvLogLevel, "")
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("results_dir: [unclosed\n"), 0o644))
	_, err := Load(bad)
	require.Error(t, err)

	policy := filepath.Join(dir, "policy.yaml")
	require.NoError(t, os.WriteFile(policy, []byte("parse:\n  duplicates: average\n"), 0o644))
	_, err = Load(policy)
	require.ErrorContains(t, err, "parse.duplicates")

	level := filepath.Join(dir, "level.yaml")
	require.NoError(t, os.WriteFile(level, []byte("logging:\n  level: loud\n"), 0o644))
	_, err = Load(level)
	require.ErrorContains(t, err, "logging.level")
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv(EnvResultsDir, "/tmp/sparse-results")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "/tmp/sparse-results", cfg.ResultsDir)
	lvl, err := cfg.Logging.ZapLevel()
	require.NoError(t, err)
	require.Equal(t, zapcore.WarnLevel, lvl)
}

func TestConfig_ValidateEmptyResultsDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ResultsDir = ""
	require.Error(t, cfg.Validate())
}

func TestConfig_ParseOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Parse.Duplicates = "sum"
	cfg.Parse.SkipOutOfRange = true

	o := sparse.NewOptions(cfg.ParseOptions()...)
	require.Equal(t, sparse.DuplicateSum, o.DuplicatePolicy())
	require.True(t, o.SkipOutOfRange())

	// Options drive the parser.
	m, err := sparse.ParseLines([]string{"rows=1", "cols=1", "(0,0,2)", "(0,0,3)", "(4,4,1)"}, cfg.ParseOptions()...)
	require.NoError(t, err)
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(5), v)
}
