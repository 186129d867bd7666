package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/gw2api/cmd/gw2/commands"
	"github.com/fivetwenty-io/gw2api/internal/constants"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "gw2",
	Short: "Guild Wars 2 API CLI",
	Long: `A command-line interface for the Guild Wars 2 REST API.

Every catalogued endpoint can be queried by name with "gw2 get"; the API key,
language and base URL come from flags, GW2_* environment variables or
$HOME/.gw2/config.yml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.gw2/config.yml)")
	flags.StringP("api-key", "k", "", "API key for authenticated endpoints")
	flags.StringP("lang", "l", "", "response language (en, es, de, fr, zh)")
	flags.String("base-url", "", "API base URL")
	flags.Duration("timeout", constants.DefaultHTTPTimeout, "per-request timeout, 0 disables it")
	flags.StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	flags.BoolP("verbose", "v", false, "log requests and responses")
	flags.Bool("no-color", false, "disable colored output")

	// Bind flags to viper
	_ = viper.BindPFlag(commands.KeyConfig, flags.Lookup("config"))
	_ = viper.BindPFlag(commands.KeyAPIKey, flags.Lookup("api-key"))
	_ = viper.BindPFlag(commands.KeyLanguage, flags.Lookup("lang"))
	_ = viper.BindPFlag(commands.KeyBaseURL, flags.Lookup("base-url"))
	_ = viper.BindPFlag(commands.KeyTimeout, flags.Lookup("timeout"))
	_ = viper.BindPFlag(commands.KeyOutput, flags.Lookup("output"))
	_ = viper.BindPFlag(commands.KeyVerbose, flags.Lookup("verbose"))
	_ = viper.BindPFlag(commands.KeyNoColor, flags.Lookup("no-color"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewEndpointsCommand())
	rootCmd.AddCommand(commands.NewGetCommand())
	rootCmd.AddCommand(commands.NewFetchCommand())
}

func initConfig() {
	cfgFile := viper.GetString(commands.KeyConfig)

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.gw2/config.yml
		viper.AddConfigPath(filepath.Join(home, constants.ConfigDirName))
		viper.SetConfigType(constants.ConfigFileType)
		viper.SetConfigName(constants.ConfigFileName)
	}

	// GW2_API_KEY, GW2_LANG, GW2_BASE_URL, GW2_TIMEOUT, ...
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool(commands.KeyVerbose) {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
