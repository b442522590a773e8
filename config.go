package maskdict

import "github.com/coregx/maskdict/charset"

// DefaultMaxCandidateLen is the default cap on rendered candidate
// length, matching the usual downstream password length contract.
const DefaultMaxCandidateLen = 256

// Config controls compilation and rendering behavior.
//
// Example:
//
//	config := maskdict.DefaultConfig()
//	config.CustomCharsets[1] = "?d?dabcdef"  // defines ?2
//	gen, err := maskdict.CompileWithConfig("?2?W", data, config)
type Config struct {
	// CustomCharsets holds the definitions for the custom charset slots
	// ?1 to ?4; element 0 defines ?1. An empty string leaves the slot
	// undefined. Definitions use the same escape grammar as patterns,
	// minus ?W, and may reference earlier slots.
	CustomCharsets [charset.MaxCustom]string

	// MaxCandidateLen caps the length of candidates rendered through
	// NextCandidate. Longer combinations are silently truncated, never
	// rejected. Default: DefaultMaxCandidateLen.
	MaxCandidateLen int
}

// DefaultConfig returns a configuration with sensible defaults: no
// custom charsets and a 256-byte candidate cap.
func DefaultConfig() Config {
	return Config{
		MaxCandidateLen: DefaultMaxCandidateLen,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
func (c Config) Validate() error {
	if c.MaxCandidateLen < 1 || c.MaxCandidateLen > 1<<20 {
		return &ConfigError{
			Field:   "MaxCandidateLen",
			Message: "must be between 1 and 1,048,576",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "maskdict: invalid config: " + e.Field + ": " + e.Message
}
