package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBatch(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "batch.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
size_range = "5..20"
output_dir = "/tmp/corpus"
force = true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "5..20", cfg.SizeRange)
	assert.Equal(t, "/tmp/corpus", cfg.OutputDir)
	assert.True(t, cfg.Force)
	// untouched fields keep their defaults
	assert.Equal(t, DefaultBatch().PAccept, cfg.PAccept)
}

func TestLoad_RejectsMalformedTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestRegisterFlags_OnlyAppliesChangedFlags(t *testing.T) {
	cfg := DefaultBatch()
	cfg.OutputDir = "from-file"

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	apply := RegisterFlags(fs, &cfg)
	require.NoError(t, fs.Parse([]string{"--force"}))
	apply()

	assert.True(t, cfg.Force)
	assert.Equal(t, "from-file", cfg.OutputDir)
}

func TestValidate_RejectsShareOutsideUnitInterval(t *testing.T) {
	cfg := DefaultBatch()
	cfg.PAccept = 1.5
	assert.Error(t, cfg.Validate())

	cfg = DefaultBatch()
	cfg.ReplaceShare = -0.1
	assert.Error(t, cfg.Validate())
}
