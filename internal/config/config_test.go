package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "strict: true\nquiet: true\noutput_dir: "+dir+"\nfile_mode: \"0600\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.Strict)
	require.True(t, cfg.Quiet)
	require.Equal(t, dir, cfg.OutputDir)

	mode, err := cfg.Mode()
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), mode)
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "steps: 10\n")

	_, err := Load(path)
	require.ErrorContains(t, err, "parse config")
}

func TestLoadRejectsBadMode(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "file_mode: \"rw-r--r--\"\n")

	_, err := Load(path)
	require.ErrorContains(t, err, "file_mode must be octal")
}

func TestLoadOptional(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorContains(t, err, "open config")
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	cfg.OutputDir = "from-file"
	cfg.ApplyOverrides(Overrides{Strict: true})
	require.True(t, cfg.Strict)
	require.False(t, cfg.Quiet)
	require.Equal(t, "from-file", cfg.OutputDir)

	cfg.ApplyOverrides(Overrides{OutputDir: "from-flag", Quiet: true})
	require.Equal(t, "from-flag", cfg.OutputDir)
	require.True(t, cfg.Quiet)
}

func TestValidateOutputDir(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.OutputDir = filepath.Join(dir, "missing")
	require.Error(t, cfg.Validate())

	file := writeConfig(t, dir, "")
	cfg.OutputDir = file
	require.ErrorContains(t, cfg.Validate(), "is not a directory")

	cfg.OutputDir = dir
	require.NoError(t, cfg.Validate())
}

func writeConfig(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "snnspat2csv.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
