package driven

// ConfigStore holds the user settings as dotted keys
// ("workers", "fixups.enabled", "storage.data_dir", "input.encoding").
// Typed getters return the zero value for a missing key or a value of
// another type.
type ConfigStore interface {
	// Get returns the raw value and whether key is set at all. An explicit
	// empty list is set; a missing key is not.
	Get(key string) (any, bool)

	GetString(key string) string
	GetInt(key string) int
	GetStringSlice(key string) []string

	// Set stores value. File-backed stores write it through before
	// returning and leave the previous value in place on failure.
	Set(key string, value any) error

	// Path identifies where the settings live, for display.
	Path() string
}
