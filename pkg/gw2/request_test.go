package gw2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fivetwenty-io/gw2api/pkg/gw2"
)

func TestNewRequest_Defaults(t *testing.T) {
	t.Parallel()

	spec := gw2.NewRequest("/v2/build")

	assert.Equal(t, "/v2/build", spec.Path())
	assert.False(t, spec.RequiresAuth())
	assert.False(t, spec.IsLocalized())
	assert.Empty(t, spec.Query())
	assert.Empty(t, spec.QueryParams())
}

func TestRequestSpec_FlagsAreLastWriteWins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		build         func(gw2.RequestSpec) gw2.RequestSpec
		wantAuth      bool
		wantLocalized bool
	}{
		{
			name:  "untouched",
			build: func(r gw2.RequestSpec) gw2.RequestSpec { return r },
		},
		{
			name:     "authenticated",
			build:    func(r gw2.RequestSpec) gw2.RequestSpec { return r.Authenticated(true) },
			wantAuth: true,
		},
		{
			name:          "both",
			build:         func(r gw2.RequestSpec) gw2.RequestSpec { return r.Localized(true).Authenticated(true) },
			wantAuth:      true,
			wantLocalized: true,
		},
		{
			name: "toggled back",
			build: func(r gw2.RequestSpec) gw2.RequestSpec {
				return r.Authenticated(true).Localized(true).Authenticated(false)
			},
			wantLocalized: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spec := tt.build(gw2.NewRequest("/v2/tokeninfo"))

			assert.Equal(t, tt.wantAuth, spec.RequiresAuth())
			assert.Equal(t, tt.wantLocalized, spec.IsLocalized())
			assert.Equal(t, "/v2/tokeninfo", spec.Path())
		})
	}
}

func TestRequestSpec_Query(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec gw2.RequestSpec
		want string
	}{
		{
			name: "id list keeps order and duplicates",
			spec: gw2.NewRequest("/v2/worlds").WithQuery("ids", "3", "1", "3"),
			want: "ids=3,1,3",
		},
		{
			name: "all",
			spec: gw2.NewRequest("/v2/worlds").WithQuery("ids", "all"),
			want: "ids=all",
		},
		{
			name: "two parameters",
			spec: gw2.NewRequest("/v1/map_floor").WithQuery("continent_id", "1").WithQuery("floor", "1", "2"),
			want: "continent_id=1&floor=1,2",
		},
		{
			name: "values are escaped individually",
			spec: gw2.NewRequest("/v2/pvp/games").WithQuery("ids", "a b", "c&d"),
			want: "ids=a+b,c%26d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.spec.Query())
		})
	}
}

func TestRequestSpec_ValueSemantics(t *testing.T) {
	t.Parallel()

	base := gw2.NewRequest("/v2/worlds")
	first := base.WithQuery("ids", "1")
	second := base.WithQuery("ids", "2")

	assert.Empty(t, base.Query())
	assert.Equal(t, "ids=1", first.Query())
	assert.Equal(t, "ids=2", second.Query())

	ids := []string{"1", "2"}
	spec := gw2.NewRequest("/v2/worlds").WithQuery("ids", ids...)
	ids[0] = "99"

	assert.Equal(t, "ids=1,2", spec.Query())

	params := spec.QueryParams()
	params[0].Values[0] = "42"

	assert.Equal(t, "ids=1,2", spec.Query())
}
