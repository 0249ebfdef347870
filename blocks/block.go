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

package blocks

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidBlock = errors.New("invalid block data")

// Ref is a block as handed over by a world reader.
type Ref struct {
	BaseName   string
	Properties map[string]any
}

// Block is a normalized block identity, created per query and never mutated.
type Block struct {
	BaseName   string            `json:"base_name"`
	Properties map[string]string `json:"properties"`
}

type alias struct {
	from, to string
}

// checked in order, first match wins
var aliases = []alias{
	{"grass_path", "dirt_path"},
	{"stained_terracotta", "terracotta"},
}

// Normalize applies at most one alias substitution.
func Normalize(name string) string {
	for _, a := range aliases {
		if name == a.from {
			return a.to
		}
	}
	return name
}

// New normalizes r. Missing name or properties means the world data is
// corrupted and must not be rendered around.
func New(r Ref) (Block, error) {
	if r.BaseName == "" || r.Properties == nil {
		return Block{}, fmt.Errorf("%w: %+v", ErrInvalidBlock, r)
	}
	props := make(map[string]string, len(r.Properties))
	for k, v := range r.Properties {
		props[k] = fmt.Sprint(v)
	}
	return Block{
		BaseName:   Normalize(r.BaseName),
		Properties: props,
	}, nil
}

func (b Block) Property(key string) string {
	return b.Properties[key]
}

// JSON renders the block as one line with sorted keys, used for the
// unknown blocks report.
func (b Block) JSON() string {
	r, err := json.Marshal(b)
	if err != nil {
		return fmt.Sprintf(`{"base_name":%q}`, b.BaseName)
	}
	return string(r)
}
