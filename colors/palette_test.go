package colors

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteSaveSortedAndLoad(t *testing.T) {
	p := Palette{}
	p.Set("stone", RGB{128, 128, 128})
	p.Set(KeyGrassBlockTop, RGB{90, 140, 60})
	p.AddReserved(DefaultColor)

	fpath := filepath.Join(t.TempDir(), "data", "colors.json")
	require.NoError(t, p.Save(fpath))

	raw, err := os.ReadFile(fpath)
	require.NoError(t, err)
	assert.Equal(t, `{"default":[255,0,255],"grass_block":[90,140,60],"grass_block_top":[90,140,60],"lava":[255,100,0],"stone":[128,128,128],"water":[63,118,228]}`, string(raw))

	loaded, err := LoadPalette(fpath)
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
	assert.Equal(t, []string{"default", "grass_block", "grass_block_top", "lava", "stone", "water"}, loaded.Keys())
}

func TestPaletteDefault(t *testing.T) {
	assert.Equal(t, DefaultColor, Palette{}.Default())
	assert.Equal(t, RGB{1, 2, 3}, Palette{KeyDefault: {1, 2, 3}}.Default())
}

func TestRGBUnmarshalRejectsBadValues(t *testing.T) {
	for _, in := range []string{`[1,2]`, `[1,2,3,4]`, `[256,0,0]`, `[-1,0,0]`} {
		var c RGB
		err := json.Unmarshal([]byte(in), &c)
		assert.True(t, errors.Is(err, ErrBadColor), in)
	}
}

func TestParseRGB(t *testing.T) {
	c, err := ParseRGB("255, 0,255")
	require.NoError(t, err)
	assert.Equal(t, RGB{255, 0, 255}, c)

	for _, in := range []string{"", "1,2", "a,b,c", "300,0,0"} {
		_, err := ParseRGB(in)
		assert.ErrorIs(t, err, ErrBadColor, in)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, RGB{0, 255, 100}, Clamp(-20, 300, 100))
}
