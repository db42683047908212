package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortTOMLSections(t *testing.T) {
	in := "title = \"x\"\n\n[zeta]\n  a = 1\n\n[alpha]\n  b = 2\n"

	out := sortTOMLSections(in)

	assert.Equal(t, "title = \"x\"\n\n[alpha]\n  b = 2\n\n[zeta]\n  a = 1\n", out)
}

func TestWriteConfigOrdered_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Navigation.Root = "/srv/project"

	require.NoError(t, WriteConfigOrdered(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Less(t, strings.Index(text, "[database]"), strings.Index(text, "[file_server]"))
	assert.Less(t, strings.Index(text, "[logging]"), strings.Index(text, "[navigation]"))

	var decoded Config
	require.NoError(t, toml.Unmarshal(data, &decoded))
	assert.Equal(t, *cfg, decoded)
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "config.toml")))
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "crumbtrail configuration", doc["title"])
	assert.Contains(t, string(data), "max_entries")
	assert.Contains(t, string(data), "line_scroll_offset")
}

func TestWriteSchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.schema.json")

	require.NoError(t, WriteSchemaFile(path))

	assert.FileExists(t, path)
}
