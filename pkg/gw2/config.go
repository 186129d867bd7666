package gw2

import (
	"time"

	"github.com/fivetwenty-io/gw2api/internal/constants"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config holds the settings shared by every call of a session.
//
// A Config is plain data: setters never fail and nothing is validated until a
// request is dispatched (for example "auth required but no key" is reported
// by the call, not by SetAPIKey). The dispatcher reads the Config at call
// time and never writes to it, so one Config may be shared by concurrent
// calls as long as callers do not mutate it concurrently. Use Clone to give
// each goroutine its own copy when it needs to change settings.
type Config struct {
	baseURL   string
	apiKey    string
	hasAPIKey bool
	language  Language
	timeout   time.Duration
	logger    Logger
	debug     bool
	userAgent string
}

// NewConfig returns a Config with the official base URL, English, a 10
// second timeout and no API key.
func NewConfig() *Config {
	return &Config{
		baseURL:   constants.DefaultBaseURL,
		language:  LanguageEnglish,
		timeout:   constants.DefaultHTTPTimeout,
		userAgent: constants.DefaultUserAgent,
	}
}

// SetAPIKey sets the API key used by authenticated endpoints.
func (c *Config) SetAPIKey(apiKey string) *Config {
	c.apiKey = apiKey
	c.hasAPIKey = true

	return c
}

// ClearAPIKey removes the API key.
func (c *Config) ClearAPIKey() *Config {
	c.apiKey = ""
	c.hasAPIKey = false

	return c
}

// APIKey returns the API key and whether one has been set.
func (c *Config) APIKey() (string, bool) {
	return c.apiKey, c.hasAPIKey
}

// SetLanguage sets the language of localized responses.
func (c *Config) SetLanguage(language Language) *Config {
	c.language = language

	return c
}

// Language returns the configured language.
func (c *Config) Language() Language {
	return c.language
}

// SetBaseURL sets the API base URL, e.g. a mock server in tests.
func (c *Config) SetBaseURL(baseURL string) *Config {
	c.baseURL = baseURL

	return c
}

// BaseURL returns the API base URL.
func (c *Config) BaseURL() string {
	return c.baseURL
}

// SetTimeout sets the per-call timeout. A value <= 0 disables it and leaves
// cancellation to the caller's context.
func (c *Config) SetTimeout(timeout time.Duration) *Config {
	c.timeout = timeout

	return c
}

// Timeout returns the per-call timeout.
func (c *Config) Timeout() time.Duration {
	return c.timeout
}

// SetLogger sets an optional structured logger; nil disables logging.
func (c *Config) SetLogger(logger Logger) *Config {
	c.logger = logger

	return c
}

// Logger returns the configured logger, possibly nil.
func (c *Config) Logger() Logger {
	return c.logger
}

// SetDebug enables request/response logging when a Logger is set.
func (c *Config) SetDebug(debug bool) *Config {
	c.debug = debug

	return c
}

// Debug reports whether request/response logging is enabled.
func (c *Config) Debug() bool {
	return c.debug
}

// SetUserAgent overrides the User-Agent header.
func (c *Config) SetUserAgent(userAgent string) *Config {
	c.userAgent = userAgent

	return c
}

// UserAgent returns the User-Agent header value.
func (c *Config) UserAgent() string {
	return c.userAgent
}

// Clone returns an independent copy of the Config.
func (c *Config) Clone() *Config {
	clone := *c

	return &clone
}
