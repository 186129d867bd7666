// Package v2 declares the version 2 endpoints of the Guild Wars 2 API and
// the shapes of their responses.
package v2

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

// Catalog returns the registry of version 2 endpoints.
func Catalog() *gw2.Registry {
	return catalog
}

// Endpoints.
var (
	Build        = gw2.MustEndpoint[BuildInfo](catalog.MustLookup("build"))
	TokenInfo    = gw2.MustEndpoint[Token](catalog.MustLookup("tokeninfo"))
	Worlds       = gw2.MustEndpoint[[]World](catalog.MustLookup("worlds"))
	PvPAmulets   = gw2.MustEndpoint[[]Amulet](catalog.MustLookup("pvp/amulets"))
	PvPHeroes    = gw2.MustEndpoint[[]Hero](catalog.MustLookup("pvp/heroes"))
	PvPRanks     = gw2.MustEndpoint[[]Rank](catalog.MustLookup("pvp/ranks"))
	PvPGames     = gw2.MustEndpoint[[]Game](catalog.MustLookup("pvp/games"))
	PvPStandings = gw2.MustEndpoint[[]Standing](catalog.MustLookup("pvp/standings"))
	PvPSeasons   = gw2.MustEndpoint[[]Season](catalog.MustLookup("pvp/seasons"))
)
