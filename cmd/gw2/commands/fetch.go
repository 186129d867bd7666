package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fivetwenty-io/gw2api/internal/constants"
	"github.com/fivetwenty-io/gw2api/pkg/gw2"
)

const summaryWidth = 60

// fetchResult is the payload of one endpoint fetched by "fetch".
type fetchResult struct {
	Endpoint string          `json:"endpoint" yaml:"endpoint"`
	Payload  json.RawMessage `json:"payload"  yaml:"-"`
	Data     any             `json:"-"        yaml:"payload"`
}

// NewFetchCommand creates the fetch command.
func NewFetchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch ENDPOINT...",
		Short: "Query several endpoints concurrently",
		Long: `Fetch several endpoints at once with a plain Get each. The first failure
cancels the remaining requests.`,
		Example: `  gw2 fetch build worlds pvp/ranks`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptors := make([]gw2.Descriptor, 0, len(args))

			for _, name := range args {
				desc, err := lookupEndpoint(name)
				if err != nil {
					return err
				}

				descriptors = append(descriptors, desc)
			}

			config := loadConfig()

			client, err := createClient(cmd, config)
			if err != nil {
				return err
			}

			results, err := runFetch(cmd.Context(), client, descriptors)
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), config.Output, results, func(table *tablewriter.Table) error {
				table.Header("Endpoint", "Bytes", "Summary")

				for _, result := range results {
					_ = table.Append(result.Endpoint, fmt.Sprint(len(result.Payload)), summarize(result.Payload))
				}

				return nil
			})
		},
	}
}

// runFetch performs Get on every descriptor concurrently. Results keep the
// order of descriptors.
func runFetch(ctx context.Context, requester gw2.Requester, descriptors []gw2.Descriptor) ([]fetchResult, error) {
	if len(descriptors) == 0 {
		return nil, constants.ErrNoEndpointsSpecified
	}

	results := make([]fetchResult, len(descriptors))

	group, groupCtx := errgroup.WithContext(ctx)

	for i, desc := range descriptors {
		group.Go(func() error {
			payload, err := runGet(groupCtx, requester, desc, selection{})
			if err != nil {
				return err
			}

			var data any

			err = json.Unmarshal(payload, &data)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", desc.Name, err)
			}

			results[i] = fetchResult{Endpoint: desc.Name, Payload: payload, Data: data}

			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, fmt.Errorf("fetching endpoints: %w", err)
	}

	return results, nil
}

// summarize shortens payload to summaryWidth runes.
func summarize(payload json.RawMessage) string {
	summary := []rune(string(payload))
	if len(summary) > summaryWidth {
		return string(summary[:summaryWidth]) + "..."
	}

	return string(summary)
}
