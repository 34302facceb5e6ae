package dircfg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/doctags/pkg/config"
	"github.com/yaklabco/doctags/pkg/dircfg"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected config.Overrides
	}{
		{
			name:     "empty input",
			input:    "",
			expected: config.Overrides{},
		},
		{
			name:  "max line length",
			input: "max_line_length = 80\n",
			expected: config.Overrides{
				MaxLineLength: intPtr(80),
			},
		},
		{
			name:  "custom tags comma separated",
			input: "custom_anchor_tags = mytag, other\n",
			expected: config.Overrides{
				CustomAnchorTags: []string{"mytag", "other"},
			},
		},
		{
			name:  "prefix characters",
			input: "custom_anchor_tag_prefixes = @, !\n",
			expected: config.Overrides{
				TagPrefixChars: []string{"@", "!"},
			},
		},
		{
			name:     "comments and sections skipped",
			input:    "# comment\n; another\n[*.cs]\nunknown_key = 1\n",
			expected: config.Overrides{},
		},
		{
			name:     "malformed int skipped",
			input:    "max_line_length = wide\n",
			expected: config.Overrides{},
		},
		{
			name:     "negative length skipped",
			input:    "max_line_length = -5\n",
			expected: config.Overrides{},
		},
		{
			name:  "explicit empty list overrides",
			input: "custom_anchor_tags =\n",
			expected: config.Overrides{
				CustomAnchorTags: []string{},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := dircfg.Parse([]byte(testCase.input))
			require.NotNil(t, got)

			if testCase.expected.MaxLineLength != nil {
				require.NotNil(t, got.MaxLineLength)
				assert.Equal(t, *testCase.expected.MaxLineLength, *got.MaxLineLength)
			} else {
				assert.Nil(t, got.MaxLineLength)
			}
			assert.Equal(t, testCase.expected.CustomAnchorTags, got.CustomAnchorTags)
			assert.Equal(t, testCase.expected.TagPrefixChars, got.TagPrefixChars)
		})
	}
}

func TestForFileDiscoversUpward(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, dircfg.ConfigFileName),
		[]byte("max_line_length = 72\n"), 0o644))
	// VCS root marker stops the walk above the temp dir.
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))

	cache := dircfg.NewCache()
	o := cache.ForFile(filepath.Join(sub, "file.cs"))

	require.NotNil(t, o)
	require.NotNil(t, o.MaxLineLength)
	assert.Equal(t, 72, *o.MaxLineLength)
}

func TestForFileMissingConfig(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))

	cache := dircfg.NewCache()
	assert.Nil(t, cache.ForFile(filepath.Join(root, "file.cs")))
}

func TestCacheClear(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	cfgPath := filepath.Join(root, dircfg.ConfigFileName)
	require.NoError(t, os.WriteFile(cfgPath, []byte("max_line_length = 72\n"), 0o644))

	cache := dircfg.NewCache()
	first := cache.ForDir(root)
	require.NotNil(t, first)

	// Change on disk; cached value survives until Clear.
	require.NoError(t, os.WriteFile(cfgPath, []byte("max_line_length = 100\n"), 0o644))
	stale := cache.ForDir(root)
	assert.Equal(t, 72, *stale.MaxLineLength)

	cache.Clear()
	fresh := cache.ForDir(root)
	assert.Equal(t, 100, *fresh.MaxLineLength)
}

func intPtr(n int) *int { return &n }
