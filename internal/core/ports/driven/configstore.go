package driven

// ConfigStore persists application configuration as key-value pairs.
// Keys use dot notation, e.g. "backend.url".
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns "" if the key is absent or not a string.
	GetString(key string) string

	// Set stores a configuration value and persists immediately.
	Set(key string, value any) error

	// Keys returns all configuration keys, sorted.
	Keys() []string
}
