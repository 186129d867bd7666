package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/gw2api/internal/constants"
	"github.com/fivetwenty-io/gw2api/pkg/gw2"
)

// Configuration keys shared by flags, environment and config file.
const (
	KeyConfig   = "config"
	KeyAPIKey   = "api_key"
	KeyLanguage = "lang"
	KeyBaseURL  = "base_url"
	KeyTimeout  = "timeout"
	KeyOutput   = "output"
	KeyVerbose  = "verbose"
	KeyNoColor  = "no_color"
)

// persistedKeys are the keys "config set" and "config unset" accept.
var persistedKeys = []string{KeyAPIKey, KeyLanguage, KeyBaseURL, KeyTimeout, KeyOutput, KeyNoColor}

// Config represents the CLI configuration.
type Config struct {
	APIKey   string `json:"api_key,omitempty"  yaml:"api_key,omitempty"`
	Language string `json:"lang,omitempty"     yaml:"lang,omitempty"`
	BaseURL  string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Timeout  string `json:"timeout,omitempty"  yaml:"timeout,omitempty"`
	Output   string `json:"output,omitempty"   yaml:"output,omitempty"`
	NoColor  bool   `json:"no_color"           yaml:"no_color"`
	Verbose  bool   `json:"-"                  yaml:"-"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and persist the API key, language, base URL and output settings",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration after flags, environment and config file are merged",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.APIKey = maskAPIKey(config.APIKey)

			return writeOutput(cmd.OutOrStdout(), config.Output, config, func(table *tablewriter.Table) error {
				table.Header("Property", "Value")
				_ = table.Append("API Key", valueOrNA(config.APIKey))
				_ = table.Append("Language", valueOrNA(config.Language))
				_ = table.Append("Base URL", valueOrNA(config.BaseURL))
				_ = table.Append("Timeout", valueOrNA(config.Timeout))
				_ = table.Append("Output", valueOrNA(config.Output))
				_ = table.Append("No Color", strconv.FormatBool(config.NoColor))
				_ = table.Append("Config File", valueOrNA(viper.ConfigFileUsed()))

				return nil
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY [VALUE]",
		Short: "Set a configuration value",
		Long: fmt.Sprintf(`Persist a configuration value. Valid keys: %s.

Running "config set api_key" without a value prompts for the key without
echoing it.`, strings.Join(persistedKeys, ", ")),
		Args: cobra.RangeArgs(1, constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			var value string

			switch {
			case len(args) == constants.MinimumArgumentCount:
				value = args[1]
			case key == KeyAPIKey:
				prompted, err := promptAPIKey(cmd.ErrOrStderr())
				if err != nil {
					return err
				}

				value = prompted
			default:
				return fmt.Errorf("%w for %q", constants.ErrMissingConfigValue, key)
			}

			path, err := configFilePath()
			if err != nil {
				return err
			}

			config, err := readConfigFile(path)
			if err != nil {
				return err
			}

			err = setConfigValue(config, key, value)
			if err != nil {
				return err
			}

			err = writeConfigFile(path, config)
			if err != nil {
				return err
			}

			if key == KeyAPIKey {
				value = maskAPIKey(value)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s in %s\n", key, value, path)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a persisted configuration value so its default applies again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			path, err := configFilePath()
			if err != nil {
				return err
			}

			config, err := readConfigFile(path)
			if err != nil {
				return err
			}

			err = unsetConfigValue(config, key)
			if err != nil {
				return err
			}

			err = writeConfigFile(path, config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s in %s\n", key, path)

			return nil
		},
	}
}

// loadConfig returns the effective configuration from viper.
func loadConfig() *Config {
	return loadConfigFrom(viper.GetViper())
}

// loadConfigFrom reads the settings from v. The timeout is kept verbatim so
// GW2Config can reject malformed values.
func loadConfigFrom(v *viper.Viper) *Config {
	return &Config{
		APIKey:   v.GetString(KeyAPIKey),
		Language: v.GetString(KeyLanguage),
		BaseURL:  v.GetString(KeyBaseURL),
		Timeout:  strings.TrimSpace(v.GetString(KeyTimeout)),
		Output:   v.GetString(KeyOutput),
		NoColor:  v.GetBool(KeyNoColor),
		Verbose:  v.GetBool(KeyVerbose),
	}
}

// GW2Config converts the CLI settings into a client configuration. A non-nil
// logger is attached in verbose mode.
func (c *Config) GW2Config(logger gw2.Logger) (*gw2.Config, error) {
	config := gw2.NewConfig()

	if c.APIKey != "" {
		config.SetAPIKey(c.APIKey)
	}

	if c.Language != "" {
		language, err := gw2.ParseLanguage(c.Language)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidLanguage, c.Language)
		}

		config.SetLanguage(language)
	}

	if c.BaseURL != "" {
		config.SetBaseURL(c.BaseURL)
	}

	if c.Timeout != "" {
		timeout, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidTimeout, c.Timeout)
		}

		config.SetTimeout(timeout)
	}

	if c.Verbose && logger != nil {
		config.SetLogger(logger).SetDebug(true)
	}

	return config, nil
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case KeyAPIKey:
		config.APIKey = strings.TrimSpace(value)
	case KeyLanguage:
		language, err := gw2.ParseLanguage(value)
		if err != nil {
			return fmt.Errorf("%w: %q", constants.ErrInvalidLanguage, value)
		}

		config.Language = language.Code()
	case KeyBaseURL:
		config.BaseURL = strings.TrimSpace(value)
	case KeyTimeout:
		timeout, err := time.ParseDuration(value)
		if err != nil || timeout < 0 {
			return fmt.Errorf("%w: %q", constants.ErrInvalidTimeout, value)
		}

		config.Timeout = timeout.String()
	case KeyOutput:
		if !slices.Contains([]string{constants.FormatTable, constants.FormatJSON, constants.FormatYAML}, value) {
			return fmt.Errorf("%w: %q", constants.ErrInvalidOutput, value)
		}

		config.Output = value
	case KeyNoColor:
		noColor, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", key, err)
		}

		config.NoColor = noColor
	default:
		return fmt.Errorf("%w: %q", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func unsetConfigValue(config *Config, key string) error {
	switch key {
	case KeyAPIKey:
		config.APIKey = ""
	case KeyLanguage:
		config.Language = ""
	case KeyBaseURL:
		config.BaseURL = ""
	case KeyTimeout:
		config.Timeout = ""
	case KeyOutput:
		config.Output = ""
	case KeyNoColor:
		config.NoColor = false
	default:
		return fmt.Errorf("%w: %q", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func configFilePath() (string, error) {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", constants.ErrNoHomeDirectory, err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName+"."+constants.ConfigFileType), nil
}

// readConfigFile reads the persisted configuration. A missing file yields an
// empty configuration.
func readConfigFile(path string) (*Config, error) {
	config := &Config{}

	// path is built from the user's home directory or the --config flag
	// #nosec G304
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

func writeConfigFile(path string, config *Config) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func promptAPIKey(prompt io.Writer) (string, error) {
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return "", constants.ErrAPIKeyPromptNoTerm
	}

	_, _ = fmt.Fprint(prompt, "API key: ")

	keyBytes, err := term.ReadPassword(int(fd)) //nolint:gosec // stdin descriptor fits in int
	_, _ = fmt.Fprintln(prompt)

	if err != nil {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	return strings.TrimSpace(string(keyBytes)), nil
}

// maskAPIKey keeps only the last few characters of key visible.
func maskAPIKey(key string) string {
	if key == "" {
		return ""
	}

	if len(key) <= constants.VisibleKeyChars {
		return constants.MaskedSecret
	}

	return constants.MaskedSecret + key[len(key)-constants.VisibleKeyChars:]
}
