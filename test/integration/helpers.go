//go:build integration

package integration

import (
	"os"
	"testing"

	"github.com/fivetwenty-io/gw2api/pkg/gw2"
	"github.com/fivetwenty-io/gw2api/pkg/gw2client"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	BaseURL string
	APIKey  string
	Verbose bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		BaseURL: os.Getenv("GW2_INTEGRATION_BASE_URL"),
		APIKey:  os.Getenv("GW2_INTEGRATION_API_KEY"),
		Verbose: os.Getenv("GW2_VERBOSE") == "true",
	}
}

// SkipIfNoAPIKey skips tests that need an authenticated key.
func (config *TestConfig) SkipIfNoAPIKey(t *testing.T) {
	t.Helper()

	if config.APIKey == "" {
		t.Skip("GW2_INTEGRATION_API_KEY not set, skipping authenticated integration test")
	}
}

// NewClient creates a client against the live API, or the configured base URL.
func (config *TestConfig) NewClient(t *testing.T) *gw2client.Client {
	t.Helper()

	gw2Config := gw2.NewConfig()

	if config.BaseURL != "" {
		gw2Config.SetBaseURL(config.BaseURL)
	}

	if config.APIKey != "" {
		gw2Config.SetAPIKey(config.APIKey)
	}

	if config.Verbose {
		gw2Config.SetLogger(&testLogger{t: t}).SetDebug(true)
	}

	return gw2client.New(gw2Config)
}

// testLogger routes client logs to the test log.
type testLogger struct {
	t *testing.T
}

func (l *testLogger) Debug(msg string, fields map[string]interface{}) { l.t.Log("DEBUG", msg, fields) }

func (l *testLogger) Info(msg string, fields map[string]interface{}) { l.t.Log("INFO", msg, fields) }

func (l *testLogger) Warn(msg string, fields map[string]interface{}) { l.t.Log("WARN", msg, fields) }

func (l *testLogger) Error(msg string, fields map[string]interface{}) { l.t.Log("ERROR", msg, fields) }
