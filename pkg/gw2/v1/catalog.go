// Package v1 declares the legacy version 1 endpoints of the Guild Wars 2
// API that are still addressable.
package v1

import (
	_ "embed"

	"github.com/fivetwenty-io/gw2api/pkg/gw2"
)

//go:embed endpoints.yaml
var endpointsYAML []byte

var catalog = mustLoadCatalog()

func mustLoadCatalog() *gw2.Registry {
	registry, err := gw2.LoadRegistry(endpointsYAML)
	if err != nil {
		panic(err)
	}

	return registry
}

// Catalog returns the registry of version 1 endpoints.
func Catalog() *gw2.Registry {
	return catalog
}

// Endpoints.
var (
	Build      = gw2.MustEndpoint[BuildInfo](catalog.MustLookup("v1/build"))
	WorldNames = gw2.MustEndpoint[[]WorldName](catalog.MustLookup("v1/world_names"))
	Continents = gw2.MustEndpoint[ContinentList](catalog.MustLookup("v1/continents"))
	MapFloor   = gw2.MustEndpoint[Floor](catalog.MustLookup("v1/map_floor"))
	Events     = gw2.MustEndpoint[EventList](catalog.MustLookup("v1/events"))
)

// EventQuery selects events for Events.GetByParams via gw2.EncodeParams.
type EventQuery struct {
	WorldID int    `schema:"world_id,omitempty"`
	MapID   int    `schema:"map_id,omitempty"`
	EventID string `schema:"event_id,omitempty"`
}
