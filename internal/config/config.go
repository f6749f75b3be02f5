package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvLocalDir names the IoTempower local directory. Unset means the
// current working directory.
const EnvLocalDir = "IOTEMPOWER_LOCAL"

// FileName is the optional tool settings file inside the local directory.
const FileName = "installcheck.toml"

type Config struct {
	Jobs     int    `toml:"jobs"`
	Format   string `toml:"format"`
	LogLevel string `toml:"log_level"`
}

// LocalDirFromEnv returns $IOTEMPOWER_LOCAL, or "" if unset.
func LocalDirFromEnv() string {
	return os.Getenv(EnvLocalDir)
}

func Default() *Config {
	return &Config{
		Jobs:     1,
		Format:   "text",
		LogLevel: "warn",
	}
}

// Load reads installcheck.toml from localDir on top of the defaults.
// A missing file is not an error.
func Load(localDir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(localDir, FileName)
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if cfg.Jobs < 1 {
			cfg.Jobs = 1
		}
		if cfg.Format == "" {
			cfg.Format = "text"
		}
	}

	return cfg, nil
}

func (c *Config) Save(localDir string) error {
	path := filepath.Join(localDir, FileName)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}
