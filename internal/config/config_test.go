package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
	assert.Equal(t, "data/revenue1.csv", cfg.Data.Path)
	assert.True(t, cfg.Data.Strict)
}

func TestLoadFileThenEnv(t *testing.T) {
	data := `data:
  path: exports/revenue2.csv
  layout_file: layouts/revenue2.yaml
  strict: false
logging:
  level: debug
  format: json
server:
  addr: ":9090"
`
	path := filepath.Join(t.TempDir(), "rvustruct.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	t.Setenv("RVU_LOGGING_LEVEL", "warn")
	t.Setenv("RVU_SERVER_READ_TIMEOUT", "5s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "exports/revenue2.csv", cfg.Data.Path)
	assert.Equal(t, "layouts/revenue2.yaml", cfg.Data.LayoutFile)
	assert.False(t, cfg.Data.Strict)
	assert.Equal(t, "warn", cfg.Logging.Level, "env overrides the file")
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout, "untouched fields keep defaults")
}

func TestLoadValidation(t *testing.T) {
	t.Setenv("RVU_LOGGING_FORMAT", "xml")

	_, err := Load("")
	assert.ErrorContains(t, err, "config validation failed")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
