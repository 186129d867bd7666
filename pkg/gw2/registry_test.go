package gw2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/gw2api/pkg/gw2"
)

const testCatalogue = `
endpoints:
  - name: build
    endpoint: /v2/build
    kind: no-id
  - name: tokeninfo
    endpoint: /v2/tokeninfo
    kind: no-id
    auth: true
    localized: true
  - name: worlds
    endpoint: /v2/worlds?ids={}
    kind: id-list
    localized: true
  - name: map_floor
    endpoint: /v1/map_floor?continent_id={}&floor={}
    kind: id-pair
`

func TestLoadRegistry(t *testing.T) {
	t.Parallel()

	registry, err := gw2.LoadRegistry([]byte(testCatalogue))
	require.NoError(t, err)

	assert.Equal(t, []string{"build", "tokeninfo", "worlds", "map_floor"}, registry.Names())
	assert.Equal(t, 4, registry.Len())

	tokeninfo, ok := registry.Lookup("tokeninfo")
	require.True(t, ok)
	assert.Equal(t, gw2.Descriptor{
		Name: "tokeninfo", Path: "/v2/tokeninfo", Kind: gw2.KindNoID, Auth: true, Localized: true,
	}, tokeninfo)

	floor := registry.MustLookup("map_floor")
	assert.Equal(t, gw2.KindIDPair, floor.Kind)
	assert.Equal(t, []string{"continent_id", "floor"}, floor.Params)

	_, ok = registry.Lookup("missing")
	assert.False(t, ok)
	assert.Panics(t, func() { registry.MustLookup("missing") })

	descs := registry.Descriptors()
	require.Len(t, descs, 4)
	assert.Equal(t, "worlds", descs[2].Name)
}

func TestLoadRegistry_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "arity mismatch",
			yaml:    "endpoints:\n  - name: build\n    endpoint: /v2/build?ids={}\n    kind: no-id\n",
			wantErr: gw2.ErrParamCountMismatch,
		},
		{
			name:    "duplicate",
			yaml:    "endpoints:\n  - name: a\n    endpoint: /a\n    kind: no-id\n  - name: a\n    endpoint: /b\n    kind: no-id\n",
			wantErr: gw2.ErrDuplicateEndpoint,
		},
		{
			name:    "bad template",
			yaml:    "endpoints:\n  - name: a\n    endpoint: /a?ids=1\n    kind: id-list\n",
			wantErr: gw2.ErrMalformedTemplate,
		},
		{
			name:    "unknown kind",
			yaml:    "endpoints:\n  - name: a\n    endpoint: /a\n    kind: several\n",
			wantErr: gw2.ErrUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := gw2.LoadRegistry([]byte(tt.yaml))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadRegistry_UnknownField(t *testing.T) {
	t.Parallel()

	_, err := gw2.LoadRegistry([]byte("endpoints:\n  - name: a\n    endpoint: /a\n    kind: no-id\n    cached: true\n"))
	require.Error(t, err)
}

func TestLoadRegistry_Empty(t *testing.T) {
	t.Parallel()

	registry, err := gw2.LoadRegistry(nil)
	require.NoError(t, err)
	assert.Empty(t, registry.Names())
}

func TestRegistry_LookupReturnsCopy(t *testing.T) {
	t.Parallel()

	registry := gw2.NewRegistry()
	require.NoError(t, registry.Register(gw2.Descriptor{
		Name: "worlds", Path: "/v2/worlds", Kind: gw2.KindIDList, Params: []string{"ids"},
	}))

	desc := registry.MustLookup("worlds")
	desc.Params[0] = "changed"

	assert.Equal(t, []string{"ids"}, registry.MustLookup("worlds").Params)
}
