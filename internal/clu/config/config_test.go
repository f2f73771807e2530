package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "lemmas.json", cfg.DataFile)
	assert.Equal(t, ":3000", cfg.ListenAddr)
	assert.Empty(t, cfg.Mirror.Backend)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_file: /var/lib/clu/lemmas.json
mirror:
  backend: sqlite
  sqlite_path: /var/lib/clu/lemmas.db
`), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/clu/lemmas.json", cfg.DataFile)
	assert.Equal(t, ":3000", cfg.ListenAddr, "unset fields keep defaults")
	assert.Equal(t, "sqlite", cfg.Mirror.Backend)
	assert.Equal(t, "/var/lib/clu/lemmas.db", cfg.Mirror.SQLitePath)
}

func TestLoadFileRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_file: [unterminated"), 0644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
