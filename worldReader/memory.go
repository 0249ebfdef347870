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
	"sync"

	"github.com/topmap/TopMap/blocks"
)

type blockLocator struct {
	dim     string
	x, y, z int
}

// MemoryReader is a map-backed world. Unset positions read as air.
type MemoryReader struct {
	lock     sync.RWMutex
	blocks   map[blockLocator]blocks.Ref
	failures map[blockLocator]error
	bounds   *[2]int
}

func NewMemoryReader() *MemoryReader {
	return &MemoryReader{
		blocks:   map[blockLocator]blocks.Ref{},
		failures: map[blockLocator]error{},
	}
}

func (m *MemoryReader) SetBlock(x, y, z int, dim string, ref blocks.Ref) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.blocks[blockLocator{TrimNamespace(dim), x, y, z}] = ref
}

// SetStack places names from top downwards, one per y.
func (m *MemoryReader) SetStack(x, top, z int, dim string, names ...string) {
	for i, n := range names {
		m.SetBlock(x, top-i, z, dim, blocks.Ref{BaseName: n, Properties: map[string]any{}})
	}
}

// SetFailure makes reads at the position return err.
func (m *MemoryReader) SetFailure(x, y, z int, dim string, err error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.failures[blockLocator{TrimNamespace(dim), x, y, z}] = err
}

// SetBounds overrides the vertical range of every dimension.
func (m *MemoryReader) SetBounds(minY, maxY int) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.bounds = &[2]int{minY, maxY}
}

func (m *MemoryReader) GetBlock(x, y, z int, dim string) (blocks.Ref, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	l := blockLocator{TrimNamespace(dim), x, y, z}
	if err, ok := m.failures[l]; ok {
		return blocks.Ref{}, err
	}
	if b, ok := m.blocks[l]; ok {
		return b, nil
	}
	return airRef(), nil
}

func (m *MemoryReader) Bounds(dim string) (int, int) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	if m.bounds != nil {
		return m.bounds[0], m.bounds[1]
	}
	return DimensionBounds(dim)
}

func (m *MemoryReader) Close() error {
	return nil
}
