package safemocker

// Config holds client-wide settings. It is resolved once at client
// construction and never recomputed; callers mutate it only through
// client options or a loaded config file, both applied before first use.
type Config struct {
	// DefaultServerError is the message reported for runtime failures when
	// the real error message is unavailable or suppressed.
	DefaultServerError string `toml:"default_server_error"`
	// IsProduction suppresses real error messages in favor of
	// DefaultServerError, matching the framework's leak protection.
	IsProduction bool `toml:"is_production"`
	// Auth configures the test identity injected by the auth middleware.
	Auth AuthConfig `toml:"auth"`
}

// AuthConfig holds the fake identity the auth middleware places into the
// action context. No real authentication happens anywhere in this package.
type AuthConfig struct {
	Enabled       bool   `toml:"enabled"`
	TestUserID    string `toml:"test_user_id"`
	TestUserEmail string `toml:"test_user_email"`
	TestAuthToken string `toml:"test_auth_token"`
}

// DefaultConfig returns a Config populated with the documented defaults.
func DefaultConfig() Config {
	return Config{
		DefaultServerError: "Something went wrong",
		IsProduction:       false,
		Auth: AuthConfig{
			Enabled:       true,
			TestUserID:    "test-user-id",
			TestUserEmail: "test@example.com",
			TestAuthToken: "test-auth-token",
		},
	}
}
