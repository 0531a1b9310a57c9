package converter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoldenConverter(t testing.TB, cfg Config) *Converter {
	t.Helper()
	conv, err := New(cfg)
	require.NoError(t, err)
	return conv
}

func goldenConfigForPath(path string) Config {
	cfg := Config{}
	if strings.Contains(path, string(filepath.Separator)+"pretty"+string(filepath.Separator)) {
		cfg.Pretty = true
	}
	return cfg
}

func TestGoldenFiles(t *testing.T) {
	fixtures := []string{
		"blocks/columns",
		"markdown/document",
		"mixed/blocks_and_markup",
		"pretty/heading_list",
	}

	for _, fixture := range fixtures {
		t.Run(fixture, func(t *testing.T) {
			mdPath := filepath.Join("testdata", filepath.FromSlash(fixture+".md"))
			htmlPath := filepath.Join("testdata", filepath.FromSlash(fixture+".html"))

			markdown, err := os.ReadFile(mdPath)
			require.NoError(t, err)

			expected, err := os.ReadFile(htmlPath)
			require.NoError(t, err)

			conv := newGoldenConverter(t, goldenConfigForPath(mdPath))
			result, err := conv.Convert(string(markdown))
			require.NoError(t, err)

			assert.Equal(t, strings.TrimSuffix(string(expected), "\n"), result.Content)
			assert.Empty(t, result.Warnings)

			again, err := conv.Convert(result.Content)
			require.NoError(t, err)
			assert.Equal(t, result.Content, again.Content, "converting the output again must not change it")
		})
	}
}
