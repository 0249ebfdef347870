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

package blacklist

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/muhammadmuzzammil1998/jsonc"
	"gopkg.in/yaml.v3"
)

// Blacklist holds exclusion rules. Blocks are matched by exact base name,
// keywords by substring containment.
type Blacklist struct {
	Blocks           []string `json:"blocks" yaml:"blocks"`
	AllKeywords      []string `json:"all_keywords" yaml:"all_keywords"`
	TexturesKeywords []string `json:"textures_keywords" yaml:"textures_keywords"`
}

// Load reads a JSON (comments allowed) or YAML blacklist. A file that does
// not exist yields an empty blacklist.
func Load(fpath string) (*Blacklist, error) {
	b, err := os.ReadFile(fpath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Blacklist{}, nil
		}
		return nil, err
	}
	return Parse(b, path.Ext(fpath))
}

// Parse decodes data according to the file extension ext.
func Parse(data []byte, ext string) (*Blacklist, error) {
	ret := &Blacklist{}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, ret); err != nil {
			return nil, fmt.Errorf("parsing yaml blacklist: %w", err)
		}
	default:
		if err := jsonc.Unmarshal(data, ret); err != nil {
			return nil, fmt.Errorf("parsing json blacklist: %w", err)
		}
	}
	return ret, nil
}

// MatchesBlock reports whether a column scan should look past this block.
func (b *Blacklist) MatchesBlock(baseName string) bool {
	if b == nil {
		return false
	}
	for _, n := range b.Blocks {
		if n == baseName {
			return true
		}
	}
	return containsAny(baseName, b.AllKeywords)
}

// MatchesTexture reports whether a texture file is left out of the palette.
func (b *Blacklist) MatchesTexture(filename string) bool {
	if b == nil {
		return false
	}
	return containsAny(filename, b.AllKeywords) || containsAny(filename, b.TexturesKeywords)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
