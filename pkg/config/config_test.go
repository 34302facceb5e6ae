package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/doctags/pkg/config"
)

func TestNewSettingsDefaults(t *testing.T) {
	t.Parallel()

	settings := config.NewSettings()

	assert.Equal(t, config.DefaultMaxLineLength, settings.MaxLineLength)
	assert.True(t, settings.CompactSummaries)
	assert.True(t, settings.PreserveBlankLines)
	assert.Empty(t, settings.CustomAnchorTags)
	assert.Empty(t, settings.TagPrefixChars)
}

func TestResolvePerSettingOverride(t *testing.T) {
	t.Parallel()

	global := config.NewSettings()
	global.CustomAnchorTags = []string{"GLOBALTAG"}

	maxLen := 80
	overrides := &config.Overrides{MaxLineLength: &maxLen}

	resolved := config.Resolve(global, overrides)

	// Overridden setting takes the directory value.
	assert.Equal(t, 80, resolved.MaxLineLength)
	// Unset settings keep the global value.
	assert.Equal(t, []string{"GLOBALTAG"}, resolved.CustomAnchorTags)
	assert.True(t, resolved.CompactSummaries)
}

func TestResolveNilInputs(t *testing.T) {
	t.Parallel()

	resolved := config.Resolve(nil, nil)
	require.NotNil(t, resolved)
	assert.Equal(t, config.DefaultMaxLineLength, resolved.MaxLineLength)

	global := config.NewSettings()
	resolved = config.Resolve(global, nil)
	assert.Equal(t, *global, *resolved)
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	data := []byte(`
max_line_length: 100
compact_summaries: false
custom_anchor_tags:
  - mytag
  - other
custom_anchor_tag_prefixes:
  - "@"
`)

	settings, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, 100, settings.MaxLineLength)
	assert.False(t, settings.CompactSummaries)
	// Defaults survive for unset keys.
	assert.True(t, settings.PreserveBlankLines)
	assert.Equal(t, []string{"mytag", "other"}, settings.CustomAnchorTags)
	assert.Equal(t, []string{"@"}, settings.TagPrefixChars)
}

func TestFromYAMLMalformed(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("max_line_length: [not an int"))
	require.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	settings, err := config.LoadFile("/nonexistent/.doctags.yml")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultMaxLineLength, settings.MaxLineLength)
}
