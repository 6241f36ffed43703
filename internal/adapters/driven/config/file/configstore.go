// Package file provides a TOML-backed implementation of
// driven.ConfigStore. Configuration lives in a single file inside the
// addrsearch config directory and is read once at startup.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/parcelworks/addrsearch-cli/internal/core/domain"
	"github.com/parcelworks/addrsearch-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

const (
	configDirName  = ".addrsearch"
	configFileName = "config.toml"
)

// ConfigStore is a file-based configuration store using TOML.
type ConfigStore struct {
	mu       sync.Mutex
	filePath string
}

// NewConfigStore creates a store rooted at configDir. If configDir is
// empty, it defaults to ~/.addrsearch.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, configDirName)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &ConfigStore{
		filePath: filepath.Join(configDir, configFileName),
	}, nil
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() driven.Config {
	return driven.Config{
		Lookup: driven.LookupConfig{
			Countries: []string{"GB"},
		},
		Search: domain.DefaultSearchConfig(),
	}
}

// Load reads the stored configuration merged over defaults. A missing
// file is not an error; it yields the defaults.
func (s *ConfigStore) Load() (driven.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *ConfigStore) loadLocked() (driven.Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", s.filePath, err)
	}
	cfg.Search = cfg.Search.Normalised()
	return cfg, nil
}

// Save persists the configuration.
func (s *ConfigStore) Save(cfg driven.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(cfg)
}

func (s *ConfigStore) saveLocked(cfg driven.Config) error {
	raw, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	// Config holds the API key, so keep it private to the user.
	if err := os.WriteFile(s.filePath, raw, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// SetAPIKey stores the lookup credential, preserving everything else.
func (s *ConfigStore) SetAPIKey(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.loadLocked()
	if err != nil {
		return err
	}
	cfg.Lookup.APIKey = key
	return s.saveLocked(cfg)
}

// Path returns the backing file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
