package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/gw2api/internal/constants"
	"github.com/fivetwenty-io/gw2api/pkg/gw2"
)

// selection is the parsed set of "get" flags.
type selection struct {
	IDs      []string
	OtherIDs []string
	All      bool
	Params   []string
}

// NewGetCommand creates the get command.
func NewGetCommand() *cobra.Command {
	var sel selection

	cmd := &cobra.Command{
		Use:   "get ENDPOINT",
		Short: "Query an endpoint",
		Long: `Query a catalogued endpoint and print the raw payload.

Without selectors the endpoint is fetched as is, which for list endpoints
returns the id index. --ids and --other-ids address id-list and id-pair
endpoints, --all fetches every resource and --param key=value fills the
parameters of multi-param endpoints.`,
		Example: `  gw2 get build
  gw2 get worlds --ids 1001,2204 --lang de
  gw2 get pvp/games --all --api-key KEY
  gw2 get v1/map_floor --ids 1 --other-ids 1
  gw2 get v1/events --param world_id=1001 --param event_id=ABC`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := lookupEndpoint(args[0])
			if err != nil {
				return err
			}

			config := loadConfig()

			client, err := createClient(cmd, config)
			if err != nil {
				return err
			}

			payload, err := runGet(cmd.Context(), client, desc, sel)
			if err != nil {
				return err
			}

			return writeRawOutput(cmd.OutOrStdout(), config.Output, payload)
		},
	}

	cmd.Flags().StringSliceVar(&sel.IDs, "ids", nil, "comma-separated ids")
	cmd.Flags().StringSliceVar(&sel.OtherIDs, "other-ids", nil, "comma-separated ids of the second parameter")
	cmd.Flags().BoolVar(&sel.All, "all", false, "fetch every resource")
	cmd.Flags().StringArrayVar(&sel.Params, "param", nil, "parameter as key=value, repeatable")

	return cmd
}

// runGet picks the operation matching sel and performs it against desc.
func runGet(ctx context.Context, requester gw2.Requester, desc gw2.Descriptor, sel selection) (json.RawMessage, error) {
	endpoint, err := gw2.NewEndpoint[json.RawMessage](desc)
	if err != nil {
		return nil, fmt.Errorf("building endpoint: %w", err)
	}

	selectors := 0

	for _, set := range []bool{len(sel.IDs) > 0, sel.All, len(sel.Params) > 0} {
		if set {
			selectors++
		}
	}

	if selectors > 1 {
		return nil, constants.ErrConflictingSelectors
	}

	switch {
	case len(sel.OtherIDs) > 0 && len(sel.IDs) == 0:
		return nil, constants.ErrOtherIDsWithoutIDs
	case len(sel.Params) > 0:
		params, err := parseParams(sel.Params)
		if err != nil {
			return nil, err
		}

		return endpoint.GetByParams(ctx, requester, params)
	case sel.All:
		return endpoint.GetAll(ctx, requester)
	case len(sel.OtherIDs) > 0:
		return endpoint.GetByIDPairs(ctx, requester, sel.IDs, sel.OtherIDs)
	case len(sel.IDs) > 0:
		return endpoint.GetByIDs(ctx, requester, sel.IDs...)
	default:
		return endpoint.Get(ctx, requester)
	}
}

func parseParams(pairs []string) (map[string]string, error) {
	params := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidParamFormat, pair)
		}

		params[key] = value
	}

	return params, nil
}
