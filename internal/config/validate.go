package config

import (
	"fmt"
	"os"

	"github.com/vmunix/vidcat/internal/catalog"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if len(c.Collections) == 0 {
		errs = append(errs, "collections: at least one collection must be configured")
	}

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	if c.Scan.Interval.Duration < 0 {
		errs = append(errs, fmt.Sprintf("scan.interval: must not be negative, got %s", c.Scan.Interval.Duration))
	}

	// Collection validation. An unknown type is a hard error, not a
	// skipped entry; a typo would otherwise silently drop a library.
	seen := make(map[string]int)
	for i, cc := range c.Collections {
		where := fmt.Sprintf("collections[%d]", i)
		if cc.Name == "" {
			errs = append(errs, where+".name: required")
		} else {
			where = fmt.Sprintf("collections[%d] (%s)", i, cc.Name)
		}
		if _, err := catalog.ParseType(cc.Type); err != nil {
			errs = append(errs, fmt.Sprintf("%s.type: must be %q or %q; got %q",
				where, catalog.TypeMovies, catalog.TypeShows, cc.Type))
		}
		if cc.Directory == "" {
			errs = append(errs, where+".directory: required")
		} else if _, err := os.Stat(cc.Directory); os.IsNotExist(err) {
			errs = append(errs, fmt.Sprintf("%s.directory: warning: directory %q does not exist", where, cc.Directory))
		}
		if cc.Name != "" {
			if prev, dup := seen[cc.Name]; dup {
				errs = append(errs, fmt.Sprintf("%s.name: duplicates collections[%d]", where, prev))
			}
			seen[cc.Name] = i
		}
	}

	return errs
}
