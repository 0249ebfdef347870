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

package worldReader

import (
	"fmt"
	"math/bits"

	"github.com/Tnze/go-mc/level"
	"github.com/Tnze/go-mc/nbt"
	"github.com/Tnze/go-mc/save"
	"github.com/topmap/TopMap/blocks"
)

type decodedSection struct {
	palette []blocks.Ref
	states  *level.BitStorage
}

type decodedChunk struct {
	sections map[int]*decodedSection
}

func (c *decodedChunk) blockAt(lx, y, lz int) (blocks.Ref, error) {
	s, ok := c.sections[y>>4]
	if !ok {
		return airRef(), nil
	}
	return s.get(lx, y&15, lz)
}

func (s *decodedSection) get(lx, ly, lz int) (blocks.Ref, error) {
	if s.states == nil {
		return s.palette[0], nil
	}
	i := s.states.Get(ly*16*16 + lz*16 + lx)
	if i < 0 || i >= len(s.palette) {
		return blocks.Ref{}, fmt.Errorf("palette index %d of %d: %w", i, len(s.palette), ErrBrokenSection)
	}
	return s.palette[i], nil
}

// decodeRawChunk accepts region sector payloads (compression byte first) and
// bare NBT as stored by WebChunk, which starts with the root compound tag.
func decodeRawChunk(data []byte) (*decodedChunk, error) {
	if len(data) == 0 {
		return nil, ErrChunkNotFound
	}
	var c save.Chunk
	if data[0] == nbt.TagCompound {
		if err := nbt.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("unmarshaling chunk nbt: %w", err)
		}
		return decodeChunk(&c)
	}
	if err := c.Load(data); err != nil {
		return nil, fmt.Errorf("loading chunk nbt: %w", err)
	}
	return decodeChunk(&c)
}

func decodeChunk(c *save.Chunk) (ret *decodedChunk, err error) {
	defer func() {
		if r := recover(); r != nil {
			ret = nil
			err = fmt.Errorf("decoding chunk %d %d: %v: %w", c.XPos, c.ZPos, r, ErrBrokenSection)
		}
	}()
	ret = &decodedChunk{sections: map[int]*decodedSection{}}
	for i := range c.Sections {
		s, err := decodeSection(&c.Sections[i])
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", c.Sections[i].Y, err)
		}
		if s != nil {
			ret.sections[int(c.Sections[i].Y)] = s
		}
	}
	return ret, nil
}

func decodeSection(s *save.Section) (*decodedSection, error) {
	if len(s.BlockStates.Palette) == 0 {
		return nil, nil
	}
	ret := &decodedSection{palette: make([]blocks.Ref, len(s.BlockStates.Palette))}
	for i, v := range s.BlockStates.Palette {
		props := map[string]string{}
		if v.Properties.Data != nil {
			if err := v.Properties.Unmarshal(&props); err != nil {
				return nil, fmt.Errorf("properties of %s [%s]: %w", v.Name, v.Properties.String(), err)
			}
		}
		ret.palette[i] = stateRef(v.Name, props)
	}
	if len(ret.palette) == 1 || len(s.BlockStates.Data) == 0 {
		return ret, nil
	}
	const length = 16 * 16 * 16
	width := bitsPerValue(len(ret.palette))
	if (length+64/width-1)/(64/width) != len(s.BlockStates.Data) {
		return nil, fmt.Errorf("%d longs for %d entries: %w", len(s.BlockStates.Data), length, ErrBrokenSection)
	}
	ret.states = level.NewBitStorage(width, length, s.BlockStates.Data)
	return ret, nil
}

// bitsPerValue is the width of a palette index in stored sections, values
// never span two longs.
func bitsPerValue(paletteLen int) int {
	b := bits.Len(uint(paletteLen - 1))
	if b < 4 {
		return 4
	}
	return b
}

func stateRef(name string, props map[string]string) blocks.Ref {
	p := make(map[string]any, len(props))
	for k, v := range props {
		p[k] = v
	}
	return blocks.Ref{BaseName: TrimNamespace(name), Properties: p}
}
