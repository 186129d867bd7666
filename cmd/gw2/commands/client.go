package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/gw2api/pkg/gw2client"
)

// createClient builds a client from the effective configuration. Debug output
// goes to the command's stderr.
func createClient(cmd *cobra.Command, config *Config) (*gw2client.Client, error) {
	logger := newLogger(cmd.ErrOrStderr(), config.Verbose, config.NoColor)

	gw2Config, err := config.GW2Config(logger)
	if err != nil {
		return nil, err
	}

	return gw2client.New(gw2Config), nil
}
