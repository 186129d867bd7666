package commands

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/gw2api/pkg/gw2"
	"github.com/fivetwenty-io/gw2api/pkg/gw2client"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// newTestClient starts a server answering with handler and returns a client
// pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *gw2client.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return gw2client.New(gw2.NewConfig().SetBaseURL(server.URL).SetAPIKey("KEY"))
}
