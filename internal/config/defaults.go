package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile and environment.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Tools ToolsConfig `json:"tools" envconfig:"TOOLS"`
}

type ToolsConfig struct {
	// Repository detection
	RepoMarker string `json:"repo_marker" envconfig:"REPO_MARKER"` // Default: ".git"

	// Traversal
	WalkWorkers int `json:"walk_workers" envconfig:"WALK_WORKERS"` // Default: 0 (runtime.NumCPU)

	// Listing
	DefaultListLimit int `json:"default_list_limit" envconfig:"DEFAULT_LIST_LIMIT"` // Default: 500
	MaxListLimit     int `json:"max_list_limit" envconfig:"MAX_LIST_LIMIT"`         // Default: 50000

	// Finding
	DefaultFindLimit int `json:"default_find_limit" envconfig:"DEFAULT_FIND_LIMIT"` // Default: 200
	MaxFindLimit     int `json:"max_find_limit" envconfig:"MAX_FIND_LIMIT"`         // Default: 10000

	// Search
	DefaultSearchLimit        int `json:"default_search_limit" envconfig:"DEFAULT_SEARCH_LIMIT"`                 // Default: 200
	MaxSearchLimit            int `json:"max_search_limit" envconfig:"MAX_SEARCH_LIMIT"`                         // Default: 10000
	DefaultSearchContextLines int `json:"default_search_context_lines" envconfig:"DEFAULT_SEARCH_CONTEXT_LINES"` // Default: 2
	MaxContextLines           int `json:"max_context_lines" envconfig:"MAX_CONTEXT_LINES"`                       // Default: 50

	// Reading
	DefaultReadBytes int64 `json:"default_read_bytes" envconfig:"DEFAULT_READ_BYTES"` // Default: 64 * 1024
	MaxReadBytes     int64 `json:"max_read_bytes" envconfig:"MAX_READ_BYTES"`         // Default: 16 * 1024 * 1024
	DefaultReadLines int64 `json:"default_read_lines" envconfig:"DEFAULT_READ_LINES"` // Default: 200
	MaxReadLines     int64 `json:"max_read_lines" envconfig:"MAX_READ_LINES"`         // Default: 100000

	// Writing
	MaxWriteSize int64 `json:"max_write_size" envconfig:"MAX_WRITE_SIZE"` // Default: 20 * 1024 * 1024 (20MB)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Tools: ToolsConfig{
			RepoMarker:                ".git",
			WalkWorkers:               0,
			DefaultListLimit:          500,
			MaxListLimit:              50000,
			DefaultFindLimit:          200,
			MaxFindLimit:              10000,
			DefaultSearchLimit:        200,
			MaxSearchLimit:            10000,
			DefaultSearchContextLines: 2,
			MaxContextLines:           50,
			DefaultReadBytes:          64 * 1024,
			MaxReadBytes:              16 * 1024 * 1024,
			DefaultReadLines:          200,
			MaxReadLines:              100000,
			MaxWriteSize:              20 * 1024 * 1024,
		},
	}
}
