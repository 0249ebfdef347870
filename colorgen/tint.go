/*
	TopMap, top-down renderer for block game maps
	Copyright (C) 2022 Maxim Zhuchkov

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU Affero General Public License as published
	by the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU Affero General Public License for more details.

	You should have received a copy of the GNU Affero General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.

	Contact me via mail: q3.max.2011@yandex.ru or Discord: MaX#6717
*/

package colorgen

import (
	"strings"

	"github.com/topmap/TopMap/colors"
)

type tint struct {
	key   string
	color colors.RGB
}

// scanned in order for leaves
var tints = []tint{
	{"grass_block_top", colors.RGB{R: 124, G: 189, B: 107}},
	{"grass_block_side_overlay", colors.RGB{R: 124, G: 189, B: 107}},
	{"foliage", colors.RGB{R: 71, G: 160, B: 50}},
	{"water_still", colors.RGB{R: 63, G: 118, B: 228}},
	{"lava_still", colors.RGB{R: 255, G: 100, B: 0}},
	{"spruce_leaves", colors.RGB{R: 97, G: 153, B: 97}},
	{"birch_leaves", colors.RGB{R: 128, G: 167, B: 85}},
	{"oak_leaves", colors.RGB{R: 72, G: 181, B: 24}},
	{"jungle_leaves", colors.RGB{R: 48, G: 187, B: 11}},
	{"acacia_leaves", colors.RGB{R: 80, G: 203, B: 52}},
	{"dark_oak_leaves", colors.RGB{R: 72, G: 181, B: 24}},
}

func tintByKey(key string) colors.RGB {
	for _, t := range tints {
		if t.key == key {
			return t.color
		}
	}
	return colors.RGB{R: 255, G: 255, B: 255}
}

// Stem is the texture name without its extension.
func Stem(filename string) string {
	return strings.ReplaceAll(filename, ".png", "")
}

// TintFor picks the fixed biome tint baked into grass and leaves textures.
func TintFor(stem string) (colors.RGB, bool) {
	switch {
	case strings.Contains(stem, "grass") && strings.Contains(stem, "overlay"):
		return tintByKey("grass_block_top"), true
	case strings.Contains(stem, "grass_block_top"):
		return tintByKey("grass_block_top"), true
	case strings.Contains(stem, "leaves"):
		for _, t := range tints {
			if strings.Contains(stem, t.key) {
				return t.color, true
			}
		}
		if strings.Contains(stem, "oak") {
			return tintByKey("oak_leaves"), true
		}
	}
	return colors.RGB{}, false
}

// ApplyTint multiplies c by t channel-wise.
func ApplyTint(c, t colors.RGB) colors.RGB {
	return colors.RGB{
		R: uint8(int(c.R) * int(t.R) / 255),
		G: uint8(int(c.G) * int(t.G) / 255),
		B: uint8(int(c.B) * int(t.B) / 255),
	}
}
