package mwapi

import (
	"os"
	"time"
)

// Built-in endpoint defaults, overridable once at startup.
const (
	DefaultWikiURL     = "https://en.wikipedia.org/w/api.php"
	DefaultWikibaseURL = "https://www.wikidata.org/w/api.php"

	// DefaultTimeout bounds every upstream request. A hung upstream
	// request fails the calling operation instead of hanging it.
	DefaultTimeout = 30 * time.Second
)

// Config holds connection settings for both upstream API endpoints.
// It is immutable after startup.
type Config struct {
	// WikiURL is the content wiki API endpoint (e.g., https://wiki.example.com/api.php)
	WikiURL string

	// WikibaseURL is the knowledge base API endpoint
	WikibaseURL string

	// Username for bot password authentication (optional, required for writes)
	Username string

	// Password for bot password authentication (optional, required for writes)
	Password string

	// Timeout for upstream requests
	Timeout time.Duration

	// UserAgent identifies the adapter to the upstream on every request
	UserAgent string
}

// LoadConfig loads configuration from environment variables.
// Absent endpoint values keep the built-in defaults. Supplying only one of
// username/password is a configuration error: bot credentials are a pair.
func LoadConfig() (*Config, error) {
	wikiURL := os.Getenv("WIKI_API_URL")
	if wikiURL == "" {
		wikiURL = DefaultWikiURL
	}

	wikibaseURL := os.Getenv("WIKIBASE_API_URL")
	if wikibaseURL == "" {
		wikibaseURL = DefaultWikibaseURL
	}

	timeout := DefaultTimeout
	if t := os.Getenv("WIKI_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			timeout = d
		}
	}

	userAgent := os.Getenv("WIKI_USER_AGENT")
	if userAgent == "" {
		userAgent = "WikibaseMCPServer/1.0 (https://github.com/olgasafonova/wikibase-mcp-server)"
	}

	username := os.Getenv("WIKI_BOT_USERNAME")
	password := os.Getenv("WIKI_BOT_PASSWORD")

	if (username == "") != (password == "") {
		missing := "WIKI_BOT_PASSWORD"
		if username == "" {
			missing = "WIKI_BOT_USERNAME"
		}
		return nil, &ConfigurationError{
			Field:   missing,
			Message: "bot credentials must be provided as a pair; set both WIKI_BOT_USERNAME and WIKI_BOT_PASSWORD or neither",
		}
	}

	return &Config{
		WikiURL:     wikiURL,
		WikibaseURL: wikibaseURL,
		Username:    username,
		Password:    password,
		Timeout:     timeout,
		UserAgent:   userAgent,
	}, nil
}

// HasCredentials returns true if bot credentials are configured.
func (c *Config) HasCredentials() bool {
	return c.Username != "" && c.Password != ""
}
