// Package types holds the configuration and plan records shared by the
// northwind-lab packages.
package types

import "time"

// Default lab layout.
const (
	DefaultLabDir       = "lab"
	DefaultDatabaseURL  = "https://github.com/jpwhite3/northwind-SQLite3/raw/main/dist/northwind.db"
	DefaultDatabaseFile = "northwind.db"
	DefaultUserAgent    = "northwind-lab/0.1"
)

// DefaultPlaceholders lists the files reserved for the lab exercise.
var DefaultPlaceholders = []string{"app.py", "test.py"}

// HTTPConfig holds shared HTTP settings used for network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// LabConfig holds settings for scaffolding a lab directory.
type LabConfig struct {
	HTTPConfig `yaml:",inline"`

	// Dir is the lab directory, relative to the working directory.
	Dir string `json:"dir" yaml:"dir"`

	// DatabaseURL is the source of the sample SQLite database.
	DatabaseURL string `json:"database_url" yaml:"database_url"`

	// DatabaseFile is the file name of the database inside Dir.
	DatabaseFile string `json:"database_file" yaml:"database_file"`

	// DatabaseSHA256 is the expected hex digest of the database.
	// Empty disables verification.
	DatabaseSHA256 string `json:"sha256,omitempty" yaml:"sha256,omitempty"`

	// Placeholders are file names inside Dir created empty if absent.
	Placeholders []string `json:"placeholders" yaml:"placeholders"`
}

// DefaultLabConfig returns the fixed lab layout.
func DefaultLabConfig() LabConfig {
	return LabConfig{
		HTTPConfig: HTTPConfig{
			UserAgent: DefaultUserAgent,
		},
		Dir:          DefaultLabDir,
		DatabaseURL:  DefaultDatabaseURL,
		DatabaseFile: DefaultDatabaseFile,
		Placeholders: append([]string(nil), DefaultPlaceholders...),
	}
}
