package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/topmap/TopMap/blocks"
)

func mustBlock(t *testing.T, name string, props map[string]any) blocks.Block {
	t.Helper()
	if props == nil {
		props = map[string]any{}
	}
	b, err := blocks.New(blocks.Ref{BaseName: name, Properties: props})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestResolveCascade(t *testing.T) {
	p := Palette{
		"stone":           {128, 128, 128},
		"grass_block":     {90, 140, 60},
		"oak_log_top":     {150, 120, 70},
		"hay":             {170, 140, 20},
		"spruce_planks":   {110, 80, 50},
		"birch":           {200, 190, 130},
		"jungles":         {160, 110, 80},
		"dark_oak_fence":  {60, 40, 20},
		"red_wool":        {160, 40, 35},
		"terracotta":      {150, 90, 65},
		"dirt_path":       {148, 121, 65},
		"polished_stones": {1, 2, 3},
	}
	tests := []struct {
		name    string
		block   string
		props   map[string]any
		wantKey string
		wantOK  bool
	}{
		{"exact", "stone", nil, "stone", true},
		{"top face", "oak_log", nil, "oak_log_top", true},
		{"block infix removed", "hay_block", nil, "hay", true},
		{"material with base name", "fence", map[string]any{"material": "dark_oak"}, "dark_oak_fence", true},
		{"material alone", "log", map[string]any{"material": "birch"}, "birch", true},
		{"material plural", "log", map[string]any{"material": "jungle"}, "jungles", true},
		{"material planks", "stairs", map[string]any{"material": "spruce"}, "spruce_planks", true},
		{"dyed", "wool", map[string]any{"color": "red"}, "red_wool", true},
		{"alias", "grass_path", nil, "dirt_path", true},
		{"alias with color", "stained_terracotta", map[string]any{"color": "white"}, "terracotta", true},
		{"empty material ignored", "fence", map[string]any{"material": ""}, "", false},
		{"unknown", "mystery", nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, c, ok := ResolveKey(mustBlock(t, tt.block, tt.props), p)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
			if ok {
				assert.Equal(t, p[tt.wantKey], c)
			}
		})
	}
}

func TestResolveSpecificWins(t *testing.T) {
	p := Palette{
		"oak_log":     {1, 1, 1},
		"oak_log_top": {2, 2, 2},
		"oak":         {3, 3, 3},
	}
	b := mustBlock(t, "oak_log", map[string]any{"material": "oak"})
	for i := 0; i < 3; i++ {
		c, ok := Resolve(b, p)
		assert.True(t, ok)
		assert.Equal(t, RGB{1, 1, 1}, c)
	}
	delete(p, "oak_log")
	c, _ := Resolve(b, p)
	assert.Equal(t, RGB{2, 2, 2}, c)
}

func TestResolveRemovesEveryBlockInfix(t *testing.T) {
	p := Palette{"stone_stone": {9, 9, 9}}
	c, ok := Resolve(mustBlock(t, "stone_block_stone_block", nil), p)
	assert.True(t, ok)
	assert.Equal(t, RGB{9, 9, 9}, c)
}
