package config

import (
	"fmt"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	if c.Tools.RepoMarker == "" {
		errs = append(errs, "tools.repo_marker must not be empty")
	}
	if c.Tools.WalkWorkers < 0 {
		errs = append(errs, "tools.walk_workers must be >= 0")
	}

	// Limits
	if c.Tools.DefaultListLimit < 1 {
		errs = append(errs, "tools.default_list_limit must be >= 1")
	}
	if c.Tools.MaxListLimit < 1 {
		errs = append(errs, "tools.max_list_limit must be >= 1")
	}
	if c.Tools.DefaultFindLimit < 1 {
		errs = append(errs, "tools.default_find_limit must be >= 1")
	}
	if c.Tools.MaxFindLimit < 1 {
		errs = append(errs, "tools.max_find_limit must be >= 1")
	}
	if c.Tools.DefaultSearchLimit < 1 {
		errs = append(errs, "tools.default_search_limit must be >= 1")
	}
	if c.Tools.MaxSearchLimit < 1 {
		errs = append(errs, "tools.max_search_limit must be >= 1")
	}
	if c.Tools.DefaultSearchContextLines < 0 {
		errs = append(errs, "tools.default_search_context_lines must be >= 0")
	}
	if c.Tools.MaxContextLines < 0 {
		errs = append(errs, "tools.max_context_lines must be >= 0")
	}
	if c.Tools.DefaultReadBytes < 1 {
		errs = append(errs, "tools.default_read_bytes must be >= 1")
	}
	if c.Tools.MaxReadBytes < 1 {
		errs = append(errs, "tools.max_read_bytes must be >= 1")
	}
	if c.Tools.DefaultReadLines < 1 {
		errs = append(errs, "tools.default_read_lines must be >= 1")
	}
	if c.Tools.MaxReadLines < 1 {
		errs = append(errs, "tools.max_read_lines must be >= 1")
	}
	if c.Tools.MaxWriteSize < 1 {
		errs = append(errs, "tools.max_write_size must be >= 1")
	}

	// Semantic validation: Default <= Max constraints
	if c.Tools.DefaultListLimit > c.Tools.MaxListLimit {
		errs = append(errs, "tools.default_list_limit must be <= tools.max_list_limit")
	}
	if c.Tools.DefaultFindLimit > c.Tools.MaxFindLimit {
		errs = append(errs, "tools.default_find_limit must be <= tools.max_find_limit")
	}
	if c.Tools.DefaultSearchLimit > c.Tools.MaxSearchLimit {
		errs = append(errs, "tools.default_search_limit must be <= tools.max_search_limit")
	}
	if c.Tools.DefaultSearchContextLines > c.Tools.MaxContextLines {
		errs = append(errs, "tools.default_search_context_lines must be <= tools.max_context_lines")
	}
	if c.Tools.DefaultReadBytes > c.Tools.MaxReadBytes {
		errs = append(errs, "tools.default_read_bytes must be <= tools.max_read_bytes")
	}
	if c.Tools.DefaultReadLines > c.Tools.MaxReadLines {
		errs = append(errs, "tools.default_read_lines must be <= tools.max_read_lines")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
