package safemocker

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is the name of the safemocker configuration file.
const ConfigFileName = "safemocker.toml"

// fileConfig mirrors Config with pointer fields so the merge can tell
// "absent from the file" apart from an explicit zero value.
type fileConfig struct {
	DefaultServerError *string        `toml:"default_server_error"`
	IsProduction       *bool          `toml:"is_production"`
	Auth               fileAuthConfig `toml:"auth"`
}

type fileAuthConfig struct {
	Enabled       *bool   `toml:"enabled"`
	TestUserID    *string `toml:"test_user_id"`
	TestUserEmail *string `toml:"test_user_email"`
	TestAuthToken *string `toml:"test_auth_token"`
}

// FindConfigFile walks up from startDir looking for safemocker.toml so a
// test run anywhere inside a project picks up the project's double
// configuration. Returns the absolute path, or an empty string when no
// file exists up to the filesystem root.
func FindConfigFile(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root.
			return "", nil
		}
		dir = parent
	}
}

// LoadConfigFile parses the TOML file at path and merges the fields it
// sets over the documented defaults. Fields absent from the file keep
// their defaults; the file's shape beyond the known keys is not validated,
// matching the engine's loose construction contract.
func LoadConfigFile(path string) (Config, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if fc.DefaultServerError != nil {
		cfg.DefaultServerError = *fc.DefaultServerError
	}
	if fc.IsProduction != nil {
		cfg.IsProduction = *fc.IsProduction
	}
	if fc.Auth.Enabled != nil {
		cfg.Auth.Enabled = *fc.Auth.Enabled
	}
	if fc.Auth.TestUserID != nil {
		cfg.Auth.TestUserID = *fc.Auth.TestUserID
	}
	if fc.Auth.TestUserEmail != nil {
		cfg.Auth.TestUserEmail = *fc.Auth.TestUserEmail
	}
	if fc.Auth.TestAuthToken != nil {
		cfg.Auth.TestAuthToken = *fc.Auth.TestAuthToken
	}
	return cfg, nil
}
