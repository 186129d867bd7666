package gw2_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/gw2api/pkg/gw2"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	config := gw2.NewConfig()

	assert.Equal(t, "https://api.guildwars2.com", config.BaseURL())
	assert.Equal(t, gw2.LanguageEnglish, config.Language())
	assert.Equal(t, 10*time.Second, config.Timeout())
	assert.Nil(t, config.Logger())
	assert.False(t, config.Debug())
	assert.NotEmpty(t, config.UserAgent())

	key, ok := config.APIKey()
	assert.False(t, ok)
	assert.Empty(t, key)
}

func TestConfig_Setters(t *testing.T) {
	t.Parallel()

	config := gw2.NewConfig().
		SetAPIKey("ABCD-1234").
		SetLanguage(gw2.LanguageGerman).
		SetBaseURL("http://localhost:8080").
		SetTimeout(3 * time.Second).
		SetDebug(true).
		SetUserAgent("test-agent")

	key, ok := config.APIKey()
	assert.True(t, ok)
	assert.Equal(t, "ABCD-1234", key)
	assert.Equal(t, gw2.LanguageGerman, config.Language())
	assert.Equal(t, "http://localhost:8080", config.BaseURL())
	assert.Equal(t, 3*time.Second, config.Timeout())
	assert.True(t, config.Debug())
	assert.Equal(t, "test-agent", config.UserAgent())

	config.ClearAPIKey()

	_, ok = config.APIKey()
	assert.False(t, ok)
}

func TestConfig_EmptyKeyIsPresent(t *testing.T) {
	t.Parallel()

	config := gw2.NewConfig().SetAPIKey("")

	key, ok := config.APIKey()
	assert.True(t, ok)
	assert.Empty(t, key)
}

func TestConfig_Clone(t *testing.T) {
	t.Parallel()

	original := gw2.NewConfig().SetAPIKey("original")
	clone := original.Clone()

	clone.SetAPIKey("changed").SetLanguage(gw2.LanguageChinese)

	key, _ := original.APIKey()
	assert.Equal(t, "original", key)
	assert.Equal(t, gw2.LanguageEnglish, original.Language())

	key, _ = clone.APIKey()
	assert.Equal(t, "changed", key)
	assert.Equal(t, gw2.LanguageChinese, clone.Language())
}

func TestLanguage_Codes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		language gw2.Language
		code     string
	}{
		{gw2.LanguageEnglish, "en"},
		{gw2.LanguageSpanish, "es"},
		{gw2.LanguageGerman, "de"},
		{gw2.LanguageFrench, "fr"},
		{gw2.LanguageChinese, "zh"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.code, tt.language.Code())
			assert.Equal(t, tt.code, tt.language.String())

			parsed, err := gw2.ParseLanguage(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.language, parsed)
		})
	}

	assert.Len(t, gw2.Languages(), len(tests))
}

func TestParseLanguage(t *testing.T) {
	t.Parallel()

	lang, err := gw2.ParseLanguage(" FR ")
	require.NoError(t, err)
	assert.Equal(t, gw2.LanguageFrench, lang)

	_, err = gw2.ParseLanguage("pt")
	require.Error(t, err)
	require.ErrorIs(t, err, gw2.ErrUnknownLanguage)
}
