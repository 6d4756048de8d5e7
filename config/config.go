// Package config loads the optional tarc defaults file.
package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config carries the optional defaults read from the tarc config file. Flags
// and environment variables always win over these.
type Config struct {
	// Storage is the path of the SQLite store.
	Storage string `toml:"storage"`
	// DefaultClient is the registered client name that scan falls back to
	// when no --name is given.
	DefaultClient string `toml:"default_client"`
	// MergeKey is the default file merge key ("path" or "tuple").
	MergeKey string `toml:"merge_key"`
}

// Path returns the config file location: $TARC_CONFIG when set, otherwise
// ~/.config/tarc.toml.
func Path() (string, error) {
	if path := os.Getenv("TARC_CONFIG"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "cannot determine home directory")
	}

	return filepath.Join(homeDir, ".config", "tarc.toml"), nil
}

// DefaultStorage returns the store location used when neither flag, env nor
// config file name one: ~/.tarch.db.
func DefaultStorage() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "cannot determine home directory")
	}

	return filepath.Join(homeDir, ".tarch.db"), nil
}

// Read decodes a Config from r.
func Read(r io.Reader) (*Config, error) {
	cfg := Config{}

	_, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	return &cfg, nil
}

// ReadFromFile reads a Config from path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config file")
	}
	defer f.Close()

	cfg, err := Read(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "config file: %s", path)
	}

	return cfg, nil
}

// Load reads the config file at its default location. A missing file is not
// an error: it yields an empty Config.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	cfg, err := ReadFromFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
