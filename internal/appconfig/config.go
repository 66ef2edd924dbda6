// Package appconfig loads the host application's configuration: which
// storage backend persists game state, where it lives, and how verbose
// logging is. File values come from HCL; environment variables override
// the file.
package appconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Backend names accepted by the storage block.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config is the complete host configuration.
type Config struct {
	Storage  StorageSettings `hcl:"storage,block"`
	LogLevel string          `hcl:"log_level,optional"`
}

// StorageSettings selects and locates the persistence backend.
type StorageSettings struct {
	Backend string `hcl:"backend,optional"`
	Path    string `hcl:"path,optional"`
}

// envOverrides are applied on top of whatever the file provided.
type envOverrides struct {
	Backend  string `env:"IMPOSTOR_STORAGE_BACKEND"`
	Path     string `env:"IMPOSTOR_STORAGE_PATH"`
	LogLevel string `env:"IMPOSTOR_LOG_LEVEL"`
}

// Default returns the configuration used when no file exists: file
// storage under the user config directory.
func Default() Config {
	return Config{
		Storage: StorageSettings{
			Backend: BackendFile,
			Path:    defaultStoragePath(),
		},
		LogLevel: "info",
	}
}

func defaultStoragePath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "impostor-data"
	}
	return filepath.Join(base, "impostor")
}

// Load reads the HCL file at filename, fills defaults for anything left
// unset, and applies environment overrides. A missing file is not an
// error; defaults plus environment apply.
func Load(filename string) (Config, error) {
	config := Default()

	if _, err := os.Stat(filename); err == nil {
		parser := hclparse.NewParser()
		file, diags := parser.ParseHCLFile(filename)
		if diags.HasErrors() {
			return Config{}, fmt.Errorf("parse config file: %s", diags.Error())
		}
		// Pointer block so a file without a storage block decodes cleanly.
		var fromFile struct {
			Storage  *StorageSettings `hcl:"storage,block"`
			LogLevel string           `hcl:"log_level,optional"`
		}
		if diags := gohcl.DecodeBody(file.Body, nil, &fromFile); diags.HasErrors() {
			return Config{}, fmt.Errorf("decode config file: %s", diags.Error())
		}
		if fromFile.Storage != nil {
			if fromFile.Storage.Backend != "" {
				config.Storage.Backend = fromFile.Storage.Backend
			}
			if fromFile.Storage.Path != "" {
				config.Storage.Path = fromFile.Storage.Path
			}
		}
		if fromFile.LogLevel != "" {
			config.LogLevel = fromFile.LogLevel
		}
	}

	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return Config{}, fmt.Errorf("parse env overrides: %w", err)
	}
	if overrides.Backend != "" {
		config.Storage.Backend = overrides.Backend
	}
	if overrides.Path != "" {
		config.Storage.Path = overrides.Path
	}
	if overrides.LogLevel != "" {
		config.LogLevel = overrides.LogLevel
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks the configuration is runnable.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory:
	case BackendFile, BackendSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage backend %q requires a path", c.Storage.Backend)
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
