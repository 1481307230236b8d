package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nxkit/nxreport/internal/community"
)

var (
	validFormats         = []string{"text", "json"}
	validPackageManagers = []string{"npm", "yarn", "pnpm"}
)

// ValidationError collects every problem found in a Config.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}

// Validate checks enumerated values and parses every ignore entry the
// same way plugin detection will.
func (c *Config) Validate() error {
	var problems []string

	if c.Format != "" && !slices.Contains(validFormats, c.Format) {
		problems = append(problems, fmt.Sprintf("format %q must be one of %s", c.Format, strings.Join(validFormats, ", ")))
	}

	if c.PackageManager != "" && !slices.Contains(validPackageManagers, c.PackageManager) {
		problems = append(problems, fmt.Sprintf("package-manager %q must be one of %s", c.PackageManager, strings.Join(validPackageManagers, ", ")))
	}

	for i, entry := range c.Ignore {
		if _, err := community.ParseRule(entry); err != nil {
			problems = append(problems, fmt.Sprintf("ignore[%d]: %v", i, err))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
