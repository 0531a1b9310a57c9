package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgonek/markwp/tokenstream"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}.applyDefaults()
	assert.Equal(t, tokenstream.BackendGoldmark, cfg.Tokenizer)
	require.NotNil(t, cfg.Logger)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{Tokenizer: tokenstream.BackendCommonMark}.Validate())

	err := Config{Tokenizer: "pandoc"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid tokenizer "pandoc"`)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{Tokenizer: "pandoc"})
	assert.Error(t, err)
}

func TestTokenizerOptions(t *testing.T) {
	opts := Config{}.tokenizerOptions()
	assert.True(t, opts.Typographer)
	assert.True(t, opts.Linkify)

	opts = Config{DisableTypographer: true, DisableLinkify: true}.tokenizerOptions()
	assert.False(t, opts.Typographer)
	assert.False(t, opts.Linkify)
}
