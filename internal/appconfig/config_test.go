package appconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "impostor.hcl"))
	require.NoError(t, err)

	assert.Equal(t, BackendFile, config.Storage.Backend)
	assert.NotEmpty(t, config.Storage.Path)
	assert.Equal(t, "info", config.LogLevel)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "impostor.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "debug"

storage {
  backend = "sqlite"
  path    = "/tmp/impostor.db"
}
`), 0o644))

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, config.Storage.Backend)
	assert.Equal(t, "/tmp/impostor.db", config.Storage.Path)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "impostor.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
storage {
  backend = "file"
  path    = "/tmp/from-file"
}
`), 0o644))

	t.Setenv("IMPOSTOR_STORAGE_BACKEND", "memory")
	t.Setenv("IMPOSTOR_LOG_LEVEL", "warn")

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, config.Storage.Backend)
	assert.Equal(t, "warn", config.LogLevel)
}

func TestLoadRejectsBadHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "impostor.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`storage {`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	config := Default()
	require.NoError(t, config.Validate())

	config.Storage.Backend = "redis"
	assert.Error(t, config.Validate())

	config.Storage.Backend = BackendSQLite
	config.Storage.Path = ""
	assert.Error(t, config.Validate())

	config = Default()
	config.LogLevel = "loud"
	assert.Error(t, config.Validate())

	config = Default()
	config.Storage.Backend = BackendMemory
	config.Storage.Path = ""
	assert.NoError(t, config.Validate(), "memory backend needs no path")
}
