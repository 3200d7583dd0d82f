package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/i18n"
)

func TestParserFor(t *testing.T) {
	assert.IsType(t, &i18n.YAMLParser{}, i18n.ParserFor("en.yaml"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.ParserFor("EN.YML"))
	assert.IsType(t, &i18n.JSONParser{}, i18n.ParserFor("dir/en.json"))
	assert.Nil(t, i18n.ParserFor("en.toml"))
}

func TestYAMLParser(t *testing.T) {
	p := i18n.NewYAMLParser()
	assert.True(t, p.SupportsFileExtension(".yaml"))
	assert.True(t, p.SupportsFileExtension("yml"))
	assert.False(t, p.SupportsFileExtension(".json"))

	t.Run("nested groups", func(t *testing.T) {
		data, err := p.Parse(context.Background(), []byte("en:\n  validation:\n    \"null\": Null.\n    1: one\n"))
		require.NoError(t, err)
		group := data["en"]["validation"].(map[string]any)
		assert.Equal(t, "Null.", group["null"])
		assert.Equal(t, "one", group["1"])
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := p.Parse(context.Background(), []byte(""))
		assert.ErrorIs(t, err, i18n.ErrNoTranslations)
	})

	t.Run("language without group", func(t *testing.T) {
		_, err := p.Parse(context.Background(), []byte("en: text\n"))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := p.Parse(context.Background(), []byte("en: [\n"))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})
}

func TestJSONParser(t *testing.T) {
	p := i18n.NewJSONParser()
	assert.True(t, p.SupportsFileExtension(".JSON"))
	assert.False(t, p.SupportsFileExtension(".yaml"))

	data, err := p.Parse(context.Background(), []byte(`{"en": {"validation": {"null": "Null."}}}`))
	require.NoError(t, err)
	assert.Equal(t, "Null.", data["en"]["validation"].(map[string]any)["null"])

	_, err = p.Parse(context.Background(), []byte(`{"en": 1}`))
	assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
}
