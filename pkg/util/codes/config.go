package codes

import "github.com/resonara/resonara_backend/config"

// Config holds settings for link-token generation
type Config struct {

	// TokenLength is the number of characters in a generated link token
	TokenLength int

	// MaxAttempts bounds regeneration retries on uniqueness collisions
	MaxAttempts int

	// Charset is the character set used for tokens
	// If empty, defaults to the full alphanumeric set
	Charset string
}

// DefaultConfig returns sensible defaults for token generation
func DefaultConfig() Config {
	return Config{
		TokenLength: LinkTokenLength,
		MaxAttempts: defaultMaxAttempts,
		Charset:     charsetAlphanumeric,
	}
}

// GetCharset returns the configured charset or the default if empty
func (c Config) GetCharset() string {
	if c.Charset == "" {
		return charsetAlphanumeric
	}
	return c.Charset
}

// GetTokenLength returns the configured token length or the default if unset
func (c Config) GetTokenLength() int {
	if c.TokenLength <= 0 {
		return LinkTokenLength
	}
	return c.TokenLength
}

// GetMaxAttempts returns the configured retry bound or the default if unset
func (c Config) GetMaxAttempts() int {
	if c.MaxAttempts <= 0 {
		return defaultMaxAttempts
	}
	return c.MaxAttempts
}

// FromCentralConfig converts central config.LinksConfig to package Config
func FromCentralConfig(c config.LinksConfig) Config {
	return Config{
		TokenLength: c.TokenLength,
		MaxAttempts: c.MaxAttempts,
		Charset:     c.Charset,
	}
}
