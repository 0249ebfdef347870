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

package colors

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"sort"
)

const (
	KeyDefault         = "default"
	KeyWater           = "water"
	KeyLava            = "lava"
	KeyGrassBlock      = "grass_block"
	KeyGrassBlockTop   = "grass_block_top"
	defaultPermissions = 0764
)

var (
	DefaultColor = RGB{255, 0, 255}
	WaterColor   = RGB{63, 118, 228}
	LavaColor    = RGB{255, 100, 0}
)

// Palette maps block or texture names to their representative color.
// It is read-only once loaded.
type Palette map[string]RGB

func (p Palette) Get(key string) (RGB, bool) {
	c, ok := p[key]
	return c, ok
}

// Default is the "default" entry or magenta.
func (p Palette) Default() RGB {
	if c, ok := p[KeyDefault]; ok {
		return c
	}
	return DefaultColor
}

// Keys returns palette keys in sorted order.
func (p Palette) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set stores c under key, mirroring grass_block_top into grass_block.
func (p Palette) Set(key string, c RGB) {
	if key == KeyGrassBlockTop {
		p[KeyGrassBlock] = c
	}
	p[key] = c
}

// AddReserved writes the fixed entries that do not come from textures.
func (p Palette) AddReserved(def RGB) {
	p[KeyDefault] = def
	p[KeyWater] = WaterColor
	p[KeyLava] = LavaColor
}

func LoadPalette(fpath string) (Palette, error) {
	b, err := os.ReadFile(fpath)
	if err != nil {
		return nil, err
	}
	p := Palette{}
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("parsing palette %s: %w", fpath, err)
	}
	return p, nil
}

// Save writes the palette as JSON, encoding/json keeps map keys sorted.
func (p Palette) Save(fpath string) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if dir := path.Dir(fpath); dir != "." {
		if err := os.MkdirAll(dir, defaultPermissions); err != nil {
			return err
		}
	}
	return os.WriteFile(fpath, b, 0664)
}
