package blacklist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonBlacklist = `{
	// plants are not surfaces
	"blocks": ["tall_grass", "fern"],
	"all_keywords": ["glass", "torch"],
	"textures_keywords": ["_bottom", "destroy_stage"]
}`

const yamlBlacklist = `
blocks: [tall_grass, fern]
all_keywords:
  - glass
  - torch
textures_keywords:
  - _bottom
  - destroy_stage
`

func TestJSONCAndYAMLAgree(t *testing.T) {
	j, err := Parse([]byte(jsonBlacklist), ".json")
	require.NoError(t, err)
	y, err := Parse([]byte(yamlBlacklist), ".yml")
	require.NoError(t, err)
	assert.Equal(t, j, y)
	assert.Equal(t, []string{"tall_grass", "fern"}, j.Blocks)
}

func TestMatchesBlock(t *testing.T) {
	b, err := Parse([]byte(jsonBlacklist), ".json")
	require.NoError(t, err)
	assert.True(t, b.MatchesBlock("fern"))
	assert.False(t, b.MatchesBlock("large_fern"), "blocks are exact matches")
	assert.True(t, b.MatchesBlock("red_stained_glass_pane"), "keywords match anywhere")
	assert.True(t, b.MatchesBlock("wall_torch"))
	assert.False(t, b.MatchesBlock("stone"))
	assert.False(t, b.MatchesBlock("log_bottom"), "texture keywords do not apply to blocks")
}

func TestMatchesTexture(t *testing.T) {
	b, err := Parse([]byte(jsonBlacklist), ".json")
	require.NoError(t, err)
	assert.True(t, b.MatchesTexture("glass.png"))
	assert.True(t, b.MatchesTexture("piston_bottom.png"))
	assert.True(t, b.MatchesTexture("destroy_stage_0.png"))
	assert.False(t, b.MatchesTexture("fern.png"), "exact block names do not filter textures")
}

func TestLoadMissingIsEmpty(t *testing.T) {
	b, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.False(t, b.MatchesBlock("anything"))
	assert.False(t, b.MatchesTexture("anything.png"))
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()
	fpath := filepath.Join(dir, "blacklist.yaml")
	require.NoError(t, os.WriteFile(fpath, []byte(yamlBlacklist), 0644))
	b, err := Load(fpath)
	require.NoError(t, err)
	assert.True(t, b.MatchesBlock("tall_grass"))

	fpath = filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(fpath, []byte(`{"blocks": [`), 0644))
	_, err = Load(fpath)
	assert.Error(t, err)
}

func TestNilBlacklistMatchesNothing(t *testing.T) {
	var b *Blacklist
	assert.False(t, b.MatchesBlock("stone"))
	assert.False(t, b.MatchesTexture("stone.png"))
}
